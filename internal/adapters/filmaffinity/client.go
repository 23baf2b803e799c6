// Package filmaffinity is the HTTP client for the companion FilmAffinity
// scraper service. The service owns the HTML parsing and rate limiting; this
// client only speaks its JSON API.
package filmaffinity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"FaffinityBot/internal/core/domain"
	"FaffinityBot/internal/core/ports"

	"github.com/rs/zerolog"
)

// Client implements ports.FilmProvider against the scraper service.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

var _ ports.FilmProvider = (*Client)(nil)

// NewClient creates a provider client. baseURL is the scraper service root,
// e.g. "http://localhost:8080/api".
func NewClient(baseURL string, baseLogger *zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: baseLogger.With().Str("component", "fa_client").Logger(),
	}
}

// movieJSON mirrors the scraper service's wire format, which in turn
// mirrors the provider's field names.
type movieJSON struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Poster         string   `json:"poster"`
	Rating         string   `json:"rating"`
	Votes          string   `json:"votes"`
	Year           string   `json:"year"`
	Duration       string   `json:"duration"`
	Country        string   `json:"country"`
	Directors      []string `json:"directors"`
	Writers        []string `json:"writers"`
	Music          []string `json:"music"`
	Cinematography []string `json:"cinematography"`
	Actors         []string `json:"actors"`
	Genre          []string `json:"genre"`
	Producers      []string `json:"producers"`
	Description    string   `json:"description"`
	Awards         []struct {
		Year  string `json:"year"`
		Award string `json:"award"`
	} `json:"awards"`
	Reviews []struct {
		Author string `json:"author"`
		URL    string `json:"url"`
		Review string `json:"review"`
	} `json:"reviews"`
	Images struct {
		Stills []struct {
			Image string `json:"image"`
		} `json:"stills"`
	} `json:"images"`
}

type summaryJSON struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Poster string `json:"poster"`
	Year   string `json:"year"`
	Rating string `json:"rating"`
}

// Search queries one axis (title, cast or director).
func (c *Client) Search(ctx context.Context, lang string, limit int, q ports.SearchQuery) ([]domain.MovieSummary, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	switch {
	case q.Title != "":
		params.Set("title", q.Title)
	case q.Cast != "":
		params.Set("cast", q.Cast)
	case q.Director != "":
		params.Set("director", q.Director)
	}

	body, err := c.get(ctx, fmt.Sprintf("/%s/search?%s", lang, params.Encode()))
	if err != nil {
		return nil, err
	}

	var raw []summaryJSON
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	result := make([]domain.MovieSummary, 0, len(raw))
	for _, s := range raw {
		result = append(result, domain.MovieSummary(s))
	}
	return result, nil
}

// GetMovie fetches the full detail record, optionally with still images.
func (c *Client) GetMovie(ctx context.Context, lang, id string, includeImages bool) (*domain.Movie, error) {
	path := fmt.Sprintf("/%s/movie/%s", lang, url.PathEscape(id))
	if includeImages {
		path += "?images=true"
	}

	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}

	var raw movieJSON
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode movie response: %w", err)
	}
	return raw.toDomain(), nil
}

// Top fetches the named provider's current ranked listing.
func (c *Client) Top(ctx context.Context, lang, provider string, limit int) ([]domain.MovieSummary, error) {
	path := fmt.Sprintf("/%s/top/%s?limit=%d", lang, url.PathEscape(provider), limit)

	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}

	var raw []summaryJSON
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode top response: %w", err)
	}

	result := make([]domain.MovieSummary, 0, len(raw))
	for _, s := range raw {
		result = append(result, domain.MovieSummary(s))
	}
	return result, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	const op = "Client.get"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	req.Header.Add("accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: request failed: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%s: bad status %d, response: %s", op, resp.StatusCode, body)
	}

	return io.ReadAll(resp.Body)
}

func (m *movieJSON) toDomain() *domain.Movie {
	movie := &domain.Movie{
		ID:             m.ID,
		Title:          m.Title,
		Poster:         m.Poster,
		Rating:         m.Rating,
		Votes:          m.Votes,
		Year:           m.Year,
		Duration:       m.Duration,
		Country:        m.Country,
		Directors:      m.Directors,
		Writers:        m.Writers,
		Music:          m.Music,
		Cinematography: m.Cinematography,
		Actors:         m.Actors,
		Genre:          m.Genre,
		Producers:      m.Producers,
		Synopsis:       m.Description,
	}
	for _, a := range m.Awards {
		movie.Awards = append(movie.Awards, domain.Award(a))
	}
	for _, r := range m.Reviews {
		movie.Reviews = append(movie.Reviews, domain.Review(r))
	}
	for _, s := range m.Images.Stills {
		if s.Image != "" {
			movie.Images = append(movie.Images, s.Image)
		}
	}
	return movie
}
