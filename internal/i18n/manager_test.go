package i18n

import (
	"testing"

	"FaffinityBot/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	nopLogger := zerolog.Nop()
	m, err := NewManager(&nopLogger)
	require.NoError(t, err, "embedded locales must pass startup validation")
	return m
}

func TestNewManager_ValidatesEveryKeyForEveryLanguage(t *testing.T) {
	m := newTestManager(t)

	for _, lang := range domain.SupportedLangs {
		for _, id := range messageIDs {
			text := m.T(lang, id)
			assert.NotEmpty(t, text, "%s/%s", lang, id)
			assert.NotEqual(t, id, text, "%s/%s degraded to the raw key", lang, id)
		}
	}
}

func TestT_LanguagesDiffer(t *testing.T) {
	m := newTestManager(t)

	assert.NotEqual(t, m.T("es", "help"), m.T("en", "help"))
}

func TestTd_TemplateData(t *testing.T) {
	m := newTestManager(t)

	text := m.Td("en", "synopsis_title", map[string]interface{}{"Title": "Casa"})
	assert.Contains(t, text, "Casa")
}

func TestTd_UnknownLanguageFallsBackToDefault(t *testing.T) {
	m := newTestManager(t)

	assert.Equal(t, m.T(domain.DefaultLang, "help"), m.T("fr", "help"))
}

func TestTd_UnknownKeyDegradesToRawKey(t *testing.T) {
	m := newTestManager(t)

	assert.Equal(t, "no_such_key", m.T("es", "no_such_key"))
}
