// Package format holds the pure functions that turn structured film data
// into message text and keyboard descriptions. Nothing here touches the
// network or the store.
package format

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"FaffinityBot/internal/core/domain"
)

// CaptionLimit is the platform's cap on photo captions. Details longer than
// this are split into a photo-only send followed by a text send.
const CaptionLimit = 1024

// NoPosterURL replaces an empty poster attribute when sending the detail
// photo.
const NoPosterURL = "https://www.filmaffinity.com/imgs/movies/noimgfull.jpg"

// Localize resolves one message key; Localized templates come from the
// event context built by the dispatcher.
type Localize func(messageID string) string

// LocalizeData is Localize with template data.
type LocalizeData func(messageID string, data map[string]interface{}) string

// MovieCaption renders the localized detail template for a humanized movie.
func MovieCaption(td LocalizeData, lang string, m HumanMovie) string {
	return td("movie_template", map[string]interface{}{
		"ID":             m.ID,
		"Lang":           lang,
		"Title":          m.Title,
		"Rating":         m.Rating,
		"Votes":          m.Votes,
		"Year":           m.Year,
		"Duration":       m.Duration,
		"Country":        m.Country,
		"Directors":      m.Directors,
		"Writers":        m.Writers,
		"Music":          m.Music,
		"Cinematography": m.Cinematography,
		"Actors":         m.Actors,
		"Genre":          m.Genre,
		"Producers":      m.Producers,
	})
}

// ExceedsCaptionLimit reports whether a caption must take the two-message
// fallback path.
func ExceedsCaptionLimit(caption string) bool {
	return utf8.RuneCountInString(caption) > CaptionLimit
}

// SynopsisText renders the synopsis message for a humanized movie.
func SynopsisText(td LocalizeData, m HumanMovie) string {
	title := td("synopsis_title", map[string]interface{}{"Title": m.Title})
	return title + "\n\n" + m.Synopsis
}

// AwardsText renders the award list. Records whose year is not alphanumeric
// are the provider's trailing "see more" rows; the last of those becomes the
// closing link label instead of a list row.
func AwardsText(t Localize, td LocalizeData, lang string, movie *domain.Movie) string {
	human := Humanize(*movie)
	text := td("awards_title", map[string]interface{}{"Title": human.Title}) + "\n\n"

	var trailing string
	for _, a := range movie.Awards {
		if isAlphanumeric(a.Year) {
			text += fmt.Sprintf("🔸 `%s`: %s\n", a.Year, a.Award)
		} else {
			trailing = "↗ " + a.Year
		}
	}

	label := trailing
	if label == "" {
		label = t("see_at_fa")
	}
	text += fmt.Sprintf(
		"\n[%s](https://www.filmaffinity.com/%s/film%s.html)",
		label, lang, movie.ID,
	)
	return text
}

// ReviewsText renders the professional review list. Square brackets are
// stripped from review bodies so they cannot break the markdown links.
func ReviewsText(t Localize, td LocalizeData, lang string, movie *domain.Movie) string {
	human := Humanize(*movie)
	text := td("reviews_title", map[string]interface{}{"Title": human.Title}) + "\n"

	for _, r := range movie.Reviews {
		body := strings.NewReplacer("[", "", "]", "").Replace(r.Review)
		url := r.URL
		if url == "" {
			url = fmt.Sprintf("https://www.filmaffinity.com/%s/film%s.html", lang, movie.ID)
		}
		text += fmt.Sprintf("\n👤 [%s](%s)\n💭 _%s_\n", r.Author, url, body)
	}

	text += fmt.Sprintf(
		"\n[%s](https://www.filmaffinity.com/%s/pro-reviews.php?movie-id=%s)",
		t("see_at_fa"), lang, movie.ID,
	)
	return text
}

// TopText renders a ranked top list with deep links back to the bot.
func TopText(botName, lang, provider string, movies []domain.MovieSummary) string {
	rows := make([]string, 0, len(movies))
	for i, m := range movies {
		rows = append(rows, fmt.Sprintf(
			"`%2d.` [%s](https://t.me/%s?start=lang_%s_id_%s)\n📅 %s      ⭐ %s/10",
			i+1, m.Title, botName, lang, m.ID, orPlaceholder(m.Year), orPlaceholder(m.Rating),
		))
	}
	return fmt.Sprintf("🔝 Top %s 🔝\n\n", provider) + strings.Join(rows, "\n\n")
}

// InlineResultText renders the body of one inline-query article.
func InlineResultText(td LocalizeData, m domain.MovieSummary) string {
	return td("inline_result", map[string]interface{}{
		"Title":  orPlaceholder(m.Title),
		"Year":   orPlaceholder(m.Year),
		"Rating": orPlaceholder(m.Rating),
	})
}

func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}
