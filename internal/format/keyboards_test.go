package format

import (
	"testing"

	"FaffinityBot/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDelete(t *testing.T) {
	assert.Equal(t, "delete", EncodeDelete())
	assert.Equal(t, "delete_10", EncodeDelete(10))
	assert.Equal(t, "delete_10_11", EncodeDelete(10, 11))
	// At most two linked ids fit the payload.
	assert.Equal(t, "delete_10_11", EncodeDelete(10, 11, 12))
}

func TestSearchResultKeyboard(t *testing.T) {
	result := []domain.MovieSummary{
		{ID: "1", Title: "Uno"},
		{ID: "2", Title: "Dos"},
	}

	kb := SearchResultKeyboard(echoT, result)

	require.Len(t, kb.Buttons, 3)
	assert.Equal(t, "film_1", kb.Buttons[0][0].Data)
	assert.Equal(t, "Uno", kb.Buttons[0][0].Text)
	assert.Equal(t, "film_2", kb.Buttons[1][0].Data)
	assert.Equal(t, "delete", kb.Buttons[2][0].Data, "last row is always the hide action")
}

func TestMovieKeyboard_LinkedIDsReachHidePayload(t *testing.T) {
	kb := MovieKeyboard(echoT, "42", 7)

	require.Len(t, kb.Buttons, 4)
	assert.Equal(t, "synopsis_42", kb.Buttons[0][0].Data)
	assert.Equal(t, "awards_42", kb.Buttons[1][0].Data)
	assert.Equal(t, "reviews_42", kb.Buttons[1][1].Data)
	assert.Equal(t, "images_42", kb.Buttons[2][0].Data)
	assert.Equal(t, "delete_7", kb.Buttons[3][0].Data)
}

func TestTopsKeyboard_CoversEveryProvider(t *testing.T) {
	kb := TopsKeyboard(echoT)

	require.Len(t, kb.Buttons, len(TopProviders)+1)
	for i, provider := range TopProviders {
		assert.Equal(t, "top_"+provider, kb.Buttons[i][0].Data)
	}
}

func TestSelectLangKeyboard(t *testing.T) {
	kb := SelectLangKeyboard()

	require.Len(t, kb.Buttons, 2)
	assert.Equal(t, "lang_es", kb.Buttons[0][0].Data)
	assert.Equal(t, "lang_en", kb.Buttons[1][0].Data)
}

func TestInlineDetailsKeyboard(t *testing.T) {
	kb := InlineDetailsKeyboard(echoT, "testbot", "es", "9")

	require.Len(t, kb.Buttons, 1)
	assert.Equal(t, "https://t.me/testbot?start=lang_es_id_9", kb.Buttons[0][0].URL)
	assert.Empty(t, kb.Buttons[0][0].Data)
}
