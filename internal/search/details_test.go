package search

import (
	"context"
	"testing"

	"github.com/mvolkov/kinobot/internal/models"
	"github.com/mvolkov/kinobot/internal/services/tmdb"
)

func TestDetailsCachedAfterFirstFetch(t *testing.T) {
	catalog := &fakeCatalog{
		details: &tmdb.DetailsResponse{
			ID:          603,
			Title:       "The Matrix",
			ReleaseDate: "1999-03-31",
			VoteAverage: 8.2,
			Overview:    "A hacker learns the truth.",
		},
	}
	service := newTestService(t, catalog)
	ctx := context.Background()

	first, err := service.Details(ctx, 603, models.MediaTypeMovie)
	if err != nil {
		t.Fatalf("Details failed: %v", err)
	}
	if first.Title != "The Matrix" || first.MediaType != models.MediaTypeMovie {
		t.Errorf("Unexpected details: %+v", first)
	}

	second, err := service.Details(ctx, 603, models.MediaTypeMovie)
	if err != nil {
		t.Fatalf("Cached details failed: %v", err)
	}
	if second.Title != first.Title {
		t.Errorf("Cached record differs: %q vs %q", second.Title, first.Title)
	}
	if catalog.detailsCalls != 1 {
		t.Errorf("Expected 1 gateway call, got %d", catalog.detailsCalls)
	}
}

func TestDetailsKeyedByType(t *testing.T) {
	catalog := &fakeCatalog{
		details: &tmdb.DetailsResponse{ID: 42, Name: "Show", FirstAirDate: "2018-01-01"},
	}
	service := newTestService(t, catalog)
	ctx := context.Background()

	if _, err := service.Details(ctx, 42, models.MediaTypeMovie); err != nil {
		t.Fatalf("Details failed: %v", err)
	}
	// Same id, different type: must not be served from the movie entry
	if _, err := service.Details(ctx, 42, models.MediaTypeTV); err != nil {
		t.Fatalf("Details failed: %v", err)
	}
	if catalog.detailsCalls != 2 {
		t.Errorf("Expected per-type cache keys, got %d gateway calls", catalog.detailsCalls)
	}
}

func TestCreditsCachedSeparatelyFromDetails(t *testing.T) {
	catalog := &fakeCatalog{
		details: &tmdb.DetailsResponse{ID: 603, Title: "The Matrix"},
		credits: &tmdb.CreditsResponse{
			ID: 603,
			Cast: []struct {
				Name  string `json:"name"`
				Order int    `json:"order"`
			}{
				{Name: "Keanu Reeves", Order: 0},
			},
			Crew: []struct {
				Name string `json:"name"`
				Job  string `json:"job"`
			}{
				{Name: "Lana Wachowski", Job: "Director"},
			},
		},
	}
	service := newTestService(t, catalog)
	ctx := context.Background()

	if _, err := service.Details(ctx, 603, models.MediaTypeMovie); err != nil {
		t.Fatalf("Details failed: %v", err)
	}

	credits, err := service.Credits(ctx, 603, models.MediaTypeMovie)
	if err != nil {
		t.Fatalf("Credits failed: %v", err)
	}
	if len(credits.Cast) != 1 || credits.Cast[0].Name != "Keanu Reeves" {
		t.Errorf("Unexpected cast: %+v", credits.Cast)
	}
	if len(credits.Crew) != 1 || credits.Crew[0].Job != "Director" {
		t.Errorf("Unexpected crew: %+v", credits.Crew)
	}

	if _, err := service.Credits(ctx, 603, models.MediaTypeMovie); err != nil {
		t.Fatalf("Cached credits failed: %v", err)
	}
	if catalog.creditsCalls != 1 {
		t.Errorf("Expected 1 credits gateway call, got %d", catalog.creditsCalls)
	}
}
