package filmaffinity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"FaffinityBot/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	nopLogger := zerolog.Nop()
	return NewClient(server.URL, &nopLogger), server
}

func TestSearch_BuildsQueryAndDecodes(t *testing.T) {
	var gotPath, gotQuery string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"1","title":"Casa","poster":"p","year":"2001","rating":"7.2"}]`))
	})
	defer server.Close()

	result, err := client.Search(context.Background(), "es", 20, ports.SearchQuery{Title: "casa"})

	require.NoError(t, err)
	assert.Equal(t, "/es/search", gotPath)
	assert.Contains(t, gotQuery, "title=casa")
	assert.Contains(t, gotQuery, "limit=20")
	require.Len(t, result, 1)
	assert.Equal(t, "Casa", result[0].Title)
	assert.Equal(t, "7.2", result[0].Rating)
}

func TestSearch_CastAxis(t *testing.T) {
	var gotQuery string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	})
	defer server.Close()

	_, err := client.Search(context.Background(), "en", 20, ports.SearchQuery{Cast: "bardem"})

	require.NoError(t, err)
	assert.Contains(t, gotQuery, "cast=bardem")
	assert.NotContains(t, gotQuery, "title=")
}

func TestGetMovie_DecodesNestedRecord(t *testing.T) {
	var gotPath string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{
			"id": "42",
			"title": "Casa",
			"genre": ["Drama", "Comedy"],
			"description": "Una casa.",
			"awards": [{"year": "2001", "award": "Goya"}],
			"reviews": [{"author": "A", "url": "https://u", "review": "Bien"}],
			"images": {"stills": [{"image": "https://i/1.jpg"}, {"image": ""}]}
		}`))
	})
	defer server.Close()

	movie, err := client.GetMovie(context.Background(), "es", "42", false)

	require.NoError(t, err)
	assert.Equal(t, "/es/movie/42", gotPath)
	assert.Equal(t, "Casa", movie.Title)
	assert.Equal(t, []string{"Drama", "Comedy"}, movie.Genre)
	assert.Equal(t, "Una casa.", movie.Synopsis)
	require.Len(t, movie.Awards, 1)
	assert.Equal(t, "Goya", movie.Awards[0].Award)
	require.Len(t, movie.Reviews, 1)
	assert.Equal(t, "A", movie.Reviews[0].Author)
	// Blank still entries are dropped.
	assert.Equal(t, []string{"https://i/1.jpg"}, movie.Images)
}

func TestGetMovie_ImagesFlag(t *testing.T) {
	var gotQuery string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"id":"42"}`))
	})
	defer server.Close()

	_, err := client.GetMovie(context.Background(), "es", "42", true)

	require.NoError(t, err)
	assert.Equal(t, "images=true", gotQuery)
}

func TestTop_PathAndLimit(t *testing.T) {
	var gotPath, gotQuery string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[{"id":"1","title":"Uno"}]`))
	})
	defer server.Close()

	result, err := client.Top(context.Background(), "en", "HBO", 40)

	require.NoError(t, err)
	assert.Equal(t, "/en/top/HBO", gotPath)
	assert.Equal(t, "limit=40", gotQuery)
	assert.Len(t, result, 1)
}

func TestGet_BadStatusIsError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "scraper overloaded", http.StatusBadGateway)
	})
	defer server.Close()

	_, err := client.Search(context.Background(), "es", 20, ports.SearchQuery{Title: "casa"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestGet_MalformedBodyIsError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})
	defer server.Close()

	_, err := client.GetMovie(context.Background(), "es", "42", false)
	require.Error(t, err)
}
