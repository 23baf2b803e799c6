package format

import (
	"fmt"
	"strconv"
	"strings"

	"FaffinityBot/internal/core/domain"
	"FaffinityBot/internal/core/ports"
)

// EncodeDelete builds the hide action's payload. Up to two extra message
// ids may be linked so pressing the button removes up to three related
// messages at once.
func EncodeDelete(linked ...int) string {
	parts := []string{"delete"}
	for i, id := range linked {
		if i == 2 {
			break
		}
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, "_")
}

// HideRow is the shared bottom row of most keyboards.
func HideRow(t Localize, linked ...int) []ports.Button {
	return []ports.Button{{Text: t("btn_hide"), Data: EncodeDelete(linked...)}}
}

// HideKeyboard is a keyboard with only the hide action.
func HideKeyboard(t Localize, linked ...int) *ports.ReplyMarkup {
	return &ports.ReplyMarkup{Buttons: [][]ports.Button{HideRow(t, linked...)}}
}

// SearchResultKeyboard lists one button per matched movie.
func SearchResultKeyboard(t Localize, result []domain.MovieSummary) *ports.ReplyMarkup {
	buttons := make([][]ports.Button, 0, len(result)+1)
	for _, movie := range result {
		buttons = append(buttons, []ports.Button{
			{Text: movie.Title, Data: "film_" + movie.ID},
		})
	}
	buttons = append(buttons, HideRow(t))
	return &ports.ReplyMarkup{Buttons: buttons}
}

// MovieKeyboard carries the detail message's actions. Linked ids are
// threaded into the hide payload so a split detail (poster + text) is
// removed together.
func MovieKeyboard(t Localize, movieID string, linked ...int) *ports.ReplyMarkup {
	return &ports.ReplyMarkup{Buttons: [][]ports.Button{
		{{Text: t("btn_synopsis"), Data: "synopsis_" + movieID}},
		{
			{Text: t("btn_awards"), Data: "awards_" + movieID},
			{Text: t("btn_reviews"), Data: "reviews_" + movieID},
		},
		{{Text: t("btn_images"), Data: "images_" + movieID}},
		HideRow(t, linked...),
	}}
}

// SelectLangKeyboard offers the closed language set.
func SelectLangKeyboard() *ports.ReplyMarkup {
	return &ports.ReplyMarkup{Buttons: [][]ports.Button{
		{{Text: "🇪🇸 Español", Data: "lang_es"}},
		{{Text: "🇬🇧 English", Data: "lang_en"}},
	}}
}

// TopProviders are the external top lists the bot can fetch, in keyboard
// order.
var TopProviders = []string{"HBO", "Netflix", "Filmin", "Movistar", "Rakuten"}

// TopsKeyboard offers one button per provider top list.
func TopsKeyboard(t Localize) *ports.ReplyMarkup {
	buttons := make([][]ports.Button, 0, len(TopProviders)+1)
	for _, provider := range TopProviders {
		buttons = append(buttons, []ports.Button{
			{Text: provider, Data: "top_" + provider},
		})
	}
	buttons = append(buttons, HideRow(t))
	return &ports.ReplyMarkup{Buttons: buttons}
}

// InlineDetailsKeyboard links an inline result back to the bot with a
// language-and-subject deep link.
func InlineDetailsKeyboard(t Localize, botName, lang, movieID string) *ports.ReplyMarkup {
	url := fmt.Sprintf("https://t.me/%s?start=lang_%s_id_%s", botName, lang, movieID)
	return &ports.ReplyMarkup{Buttons: [][]ports.Button{
		{{Text: t("btn_details"), URL: url}},
	}}
}
