package format

import (
	"strings"

	"FaffinityBot/internal/core/domain"
)

// Placeholder is the glyph substituted for any empty movie attribute.
const Placeholder = "`-`"

// HumanMovie is a Movie after the humanize pass: every list attribute
// collapsed to one display string, every empty attribute replaced by the
// placeholder glyph. Ready for templating.
type HumanMovie struct {
	ID             string
	Title          string
	Poster         string
	Rating         string
	Votes          string
	Year           string
	Duration       string
	Country        string
	Directors      string
	Writers        string
	Music          string
	Cinematography string
	Actors         string
	Genre          string
	Producers      string
	Synopsis       string
}

// Humanize normalizes a movie for display. List fields are deduplicated
// preserving first-seen order and joined with ", "; empty fields become the
// placeholder. The input is not modified.
func Humanize(m domain.Movie) HumanMovie {
	return HumanMovie{
		ID:             orPlaceholder(m.ID),
		Title:          orPlaceholder(m.Title),
		Poster:         orPlaceholder(m.Poster),
		Rating:         orPlaceholder(m.Rating),
		Votes:          orPlaceholder(m.Votes),
		Year:           orPlaceholder(m.Year),
		Duration:       orPlaceholder(m.Duration),
		Country:        orPlaceholder(m.Country),
		Directors:      joinDistinct(m.Directors),
		Writers:        joinDistinct(m.Writers),
		Music:          joinDistinct(m.Music),
		Cinematography: joinDistinct(m.Cinematography),
		Actors:         joinDistinct(m.Actors),
		Genre:          joinDistinct(m.Genre),
		Producers:      joinDistinct(m.Producers),
		Synopsis:       orPlaceholder(m.Synopsis),
	}
}

// Humanize re-applies the placeholder pass to already-humanized data. No
// list fields remain, so this is a no-op for any output of Humanize; it
// exists so the transform is idempotent by construction.
func (h HumanMovie) Humanize() HumanMovie {
	return HumanMovie{
		ID:             orPlaceholder(h.ID),
		Title:          orPlaceholder(h.Title),
		Poster:         orPlaceholder(h.Poster),
		Rating:         orPlaceholder(h.Rating),
		Votes:          orPlaceholder(h.Votes),
		Year:           orPlaceholder(h.Year),
		Duration:       orPlaceholder(h.Duration),
		Country:        orPlaceholder(h.Country),
		Directors:      orPlaceholder(h.Directors),
		Writers:        orPlaceholder(h.Writers),
		Music:          orPlaceholder(h.Music),
		Cinematography: orPlaceholder(h.Cinematography),
		Actors:         orPlaceholder(h.Actors),
		Genre:          orPlaceholder(h.Genre),
		Producers:      orPlaceholder(h.Producers),
		Synopsis:       orPlaceholder(h.Synopsis),
	}
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

// joinDistinct deduplicates preserving first-seen order and joins with ", ".
func joinDistinct(values []string) string {
	if len(values) == 0 {
		return Placeholder
	}

	seen := make(map[string]struct{}, len(values))
	distinct := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		distinct = append(distinct, v)
	}

	if len(distinct) == 0 {
		return Placeholder
	}
	return strings.Join(distinct, ", ")
}
