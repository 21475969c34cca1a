package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/mvolkov/kinobot/internal/config"
	"github.com/mvolkov/kinobot/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	client, err := NewClient(&config.Config{
		TMDBAPIKey:   "test-key",
		TMDBBaseURL:  server.URL,
		Language:     "ru",
		APIRateLimit: 4,
	}, logger)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client, server
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	logger := logrus.New()
	if _, err := NewClient(&config.Config{APIRateLimit: 1}, logger); err == nil {
		t.Fatal("Expected error for missing API key")
	}
}

func TestSearchMulti(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/multi" {
			t.Errorf("Unexpected path %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("api_key") != "test-key" {
			t.Error("api_key missing from request")
		}
		if q.Get("language") != "ru" {
			t.Error("language missing from request")
		}
		if q.Get("query") != "matrix" {
			t.Errorf("query = %q, want matrix", q.Get("query"))
		}
		if q.Get("include_adult") != "false" {
			t.Error("include_adult should be false")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"page": 1,
			"results": [
				{"id": 603, "media_type": "movie", "title": "The Matrix",
				 "release_date": "1999-03-31", "popularity": 82.4, "vote_average": 8.2},
				{"id": 2034, "media_type": "tv", "name": "Matrix",
				 "first_air_date": "1993-03-01", "popularity": 11.1, "vote_average": 7.0}
			],
			"total_pages": 1,
			"total_results": 2
		}`))
	})

	results, err := client.SearchMulti(context.Background(), "matrix")
	if err != nil {
		t.Fatalf("SearchMulti failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	movie := results[0].Item("")
	if movie.Title != "The Matrix" || movie.MediaType != models.MediaTypeMovie {
		t.Errorf("Movie conversion wrong: %+v", movie)
	}
	if movie.Year() != 1999 {
		t.Errorf("Movie year = %d, want 1999", movie.Year())
	}

	show := results[1].Item("")
	if show.Title != "Matrix" || show.MediaType != models.MediaTypeTV {
		t.Errorf("Show conversion wrong: %+v", show)
	}
	if show.ReleaseDate != "1993-03-01" {
		t.Errorf("Show date should come from first_air_date, got %q", show.ReleaseDate)
	}
}

func TestDiscoverMovieParams(t *testing.T) {
	var query map[string]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = map[string]string{}
		for key := range r.URL.Query() {
			query[key] = r.URL.Query().Get(key)
		}
		w.Write([]byte(`{"page":1,"results":[]}`))
	})

	genre := 28
	rating := models.RatingMedium
	_, err := client.DiscoverMovie(context.Background(), DiscoverParams{
		GenreID: &genre,
		Country: "US",
		Years:   &models.YearRange{Start: 2010, End: 2019},
		Rating:  &rating,
		Sort:    models.SortReleaseDate,
	})
	if err != nil {
		t.Fatalf("DiscoverMovie failed: %v", err)
	}

	expect := map[string]string{
		"sort_by":             "primary_release_date.desc",
		"with_genres":         "28",
		"with_origin_country": "US",
		"release_date.gte":    "2010-01-01",
		"release_date.lte":    "2019-12-31",
		"vote_average.gte":    "5.0",
		"vote_average.lte":    "8.0",
	}
	for key, want := range expect {
		if query[key] != want {
			t.Errorf("Param %s = %q, want %q", key, query[key], want)
		}
	}
}

func TestDiscoverTVDateField(t *testing.T) {
	var query map[string]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = map[string]string{}
		for key := range r.URL.Query() {
			query[key] = r.URL.Query().Get(key)
		}
		w.Write([]byte(`{"page":1,"results":[]}`))
	})

	_, err := client.DiscoverTV(context.Background(), DiscoverParams{
		Years: &models.YearRange{Start: 2000, End: 2009},
		Sort:  models.SortReleaseDate,
	})
	if err != nil {
		t.Fatalf("DiscoverTV failed: %v", err)
	}

	if query["first_air_date.gte"] != "2000-01-01" {
		t.Errorf("first_air_date.gte = %q", query["first_air_date.gte"])
	}
	if query["sort_by"] != "first_air_date.desc" {
		t.Errorf("sort_by = %q, want first_air_date.desc", query["sort_by"])
	}
}

func TestDiscoverTVGenreAlias(t *testing.T) {
	var query map[string]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = map[string]string{}
		for key := range r.URL.Query() {
			query[key] = r.URL.Query().Get(key)
		}
		w.Write([]byte(`{"page":1,"results":[]}`))
	})
	ctx := context.Background()

	// Action carries the movie-taxonomy id; the tv endpoint needs 10759
	genre := 28
	if _, err := client.DiscoverTV(ctx, DiscoverParams{GenreID: &genre}); err != nil {
		t.Fatalf("DiscoverTV failed: %v", err)
	}
	if query["with_genres"] != "10759" {
		t.Errorf("with_genres = %q, want the tv taxonomy id 10759", query["with_genres"])
	}
	if genre != 28 {
		t.Errorf("Caller's genre id mutated to %d", genre)
	}

	// Ids shared by both taxonomies pass through unchanged
	drama := 18
	if _, err := client.DiscoverTV(ctx, DiscoverParams{GenreID: &drama}); err != nil {
		t.Fatalf("DiscoverTV failed: %v", err)
	}
	if query["with_genres"] != "18" {
		t.Errorf("with_genres = %q, want 18", query["with_genres"])
	}
}

func TestGatewayErrorOnNonOKStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status_message":"Invalid API key"}`, http.StatusUnauthorized)
	})

	_, err := client.SearchMulti(context.Background(), "anything")
	if err == nil {
		t.Fatal("Expected error for 401 response")
	}

	var gwErr *GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("Expected GatewayError, got %T", err)
	}
	if gwErr.Op != "search/multi" {
		t.Errorf("Op = %q, want search/multi", gwErr.Op)
	}
}

func TestGatewayErrorOnMalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	_, err := client.SearchMulti(context.Background(), "anything")
	var gwErr *GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("Expected GatewayError for undecodable body, got %v", err)
	}
}

func TestGatewayErrorOnCancelledContext(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"page":1,"results":[]}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.SearchMulti(ctx, "anything")
	var gwErr *GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("Expected GatewayError for cancelled context, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled in the chain, got %v", err)
	}
}

func TestMovieDetailsConversion(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/603" {
			t.Errorf("Unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{
			"id": 603,
			"title": "The Matrix",
			"release_date": "1999-03-31",
			"vote_average": 8.2,
			"overview": "A hacker learns the truth.",
			"genres": [{"id": 28, "name": "Action"}, {"id": 878, "name": "Science Fiction"}],
			"production_countries": [{"iso_3166_1": "US", "name": "United States of America"}]
		}`))
	})

	resp, err := client.MovieDetails(context.Background(), 603)
	if err != nil {
		t.Fatalf("MovieDetails failed: %v", err)
	}

	details := resp.Details(models.MediaTypeMovie)
	if details.Title != "The Matrix" || details.Year() != 1999 {
		t.Errorf("Details conversion wrong: %+v", details)
	}
	if len(details.Genres) != 2 || details.Genres[0].ID != 28 {
		t.Errorf("Genres conversion wrong: %+v", details.Genres)
	}
	if len(details.ProductionCountries) != 1 || details.ProductionCountries[0].ISOCode != "US" {
		t.Errorf("Countries conversion wrong: %+v", details.ProductionCountries)
	}
}
