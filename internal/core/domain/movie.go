package domain

// MovieSummary is the lightweight shape returned by searches and top lists.
// Only what a result keyboard needs.
type MovieSummary struct {
	ID     string
	Title  string
	Poster string
	Year   string
	Rating string
}

// Award is one award record of a movie. Year may carry free text for the
// provider's trailing "see more" row instead of a calendar year.
type Award struct {
	Year  string
	Award string
}

// Review is one professional review of a movie.
type Review struct {
	Author string
	URL    string
	Review string
}

// Movie is the full detail record fetched from the film-data provider.
// It is an opaque value to the bot: fetched fresh per request, never
// mutated after the formatter's humanize pass.
type Movie struct {
	ID             string
	Title          string
	Poster         string
	Rating         string
	Votes          string
	Year           string
	Duration       string
	Country        string
	Directors      []string
	Writers        []string
	Music          []string
	Cinematography []string
	Actors         []string
	Genre          []string
	Producers      []string
	Synopsis       string
	Awards         []Award
	Reviews        []Review
	Images         []string
}
