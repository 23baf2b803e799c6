package domain

// Supported language codes. Spanish is the default for first-contact users.
const (
	LangSpanish = "es"
	LangEnglish = "en"

	DefaultLang = LangSpanish
)

// SupportedLangs lists every language the bot has templates for.
var SupportedLangs = []string{LangSpanish, LangEnglish}

// IsSupportedLang reports whether code is one of the closed language set.
func IsSupportedLang(code string) bool {
	for _, l := range SupportedLangs {
		if l == code {
			return true
		}
	}
	return false
}
