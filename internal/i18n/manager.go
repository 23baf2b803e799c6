package i18n

import (
	"embed"
	"fmt"

	"FaffinityBot/internal/core/domain"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localesFS embed.FS

// messageIDs is the closed set of keys handlers look up. Startup validation
// requires every one of them to exist for every supported language; a gap is
// a configuration error, never a runtime one.
var messageIDs = []string{
	"start",
	"help",
	"support",
	"fa_error",
	"no_matches",
	"query_results",
	"inline_result",
	"movie_template",
	"synopsis_title",
	"awards_title",
	"reviews_title",
	"see_at_fa",
	"no_awards",
	"no_reviews",
	"no_images",
	"select_lang",
	"lang_selected",
	"select_top",
	"btn_hide",
	"btn_synopsis",
	"btn_awards",
	"btn_reviews",
	"btn_images",
	"btn_details",
	"default_ad",
}

// Manager is the immutable message-key × language → template store, loaded
// once at startup from the embedded locale files.
type Manager struct {
	bundle     *goi18n.Bundle
	localizers map[string]*goi18n.Localizer
	log        zerolog.Logger
}

// NewManager loads and validates every embedded locale file.
func NewManager(baseLogger *zerolog.Logger) (*Manager, error) {
	log := baseLogger.With().Str("component", "i18n").Logger()

	bundle := goi18n.NewBundle(language.Spanish)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	localizers := make(map[string]*goi18n.Localizer, len(domain.SupportedLangs))
	for _, lang := range domain.SupportedLangs {
		filename := fmt.Sprintf("locales/active.%s.toml", lang)

		data, err := localesFS.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("read locale file %s: %w", filename, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, filename); err != nil {
			return nil, fmt.Errorf("parse locale file %s: %w", filename, err)
		}

		localizers[lang] = goi18n.NewLocalizer(bundle, lang)
		log.Info().Str("filename", filename).Msg("Loaded locale file")
	}

	m := &Manager{bundle: bundle, localizers: localizers, log: log}
	if err := m.validate(); err != nil {
		return nil, err
	}

	log.Info().Int("keys", len(messageIDs)).Msg("Localization store validated")
	return m, nil
}

// validate checks the full key set against every supported language.
func (m *Manager) validate() error {
	for lang, localizer := range m.localizers {
		for _, id := range messageIDs {
			if _, err := localizer.Localize(&goi18n.LocalizeConfig{MessageID: id}); err != nil {
				return fmt.Errorf("locale %q is missing message %q: %w", lang, id, err)
			}
		}
	}
	return nil
}

// T returns the template for a message key in the given language.
func (m *Manager) T(lang, messageID string) string {
	return m.Td(lang, messageID, nil)
}

// Td returns the template with template data applied. A lookup failure is
// logged and degrades to the raw key so a response is still produced.
func (m *Manager) Td(lang, messageID string, data map[string]interface{}) string {
	localizer, ok := m.localizers[lang]
	if !ok {
		localizer = m.localizers[domain.DefaultLang]
	}

	msg, err := localizer.Localize(&goi18n.LocalizeConfig{MessageID: messageID, TemplateData: data})
	if err != nil {
		m.log.Error().Err(err).Str("message_id", messageID).Str("lang", lang).Msg("Failed to localize message")
		return messageID
	}
	return msg
}
