package controllers

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mvolkov/kinobot/internal/cache"
	"github.com/mvolkov/kinobot/internal/models"
	"github.com/mvolkov/kinobot/internal/presenter"
	"github.com/mvolkov/kinobot/internal/search"
	"github.com/mvolkov/kinobot/internal/session"
	"github.com/mvolkov/kinobot/internal/services/tmdb"
)

// fakeCatalog serves scripted discovery results
type fakeCatalog struct {
	movieResults  []tmdb.SearchResult
	tvResults     []tmdb.SearchResult
	discoverCalls int
}

func (f *fakeCatalog) SearchMulti(ctx context.Context, query string) ([]tmdb.SearchResult, error) {
	return nil, nil
}

func (f *fakeCatalog) DiscoverMovie(ctx context.Context, p tmdb.DiscoverParams) ([]tmdb.SearchResult, error) {
	f.discoverCalls++
	return f.movieResults, nil
}

func (f *fakeCatalog) DiscoverTV(ctx context.Context, p tmdb.DiscoverParams) ([]tmdb.SearchResult, error) {
	f.discoverCalls++
	return f.tvResults, nil
}

func (f *fakeCatalog) MovieDetails(ctx context.Context, id int64) (*tmdb.DetailsResponse, error) {
	return &tmdb.DetailsResponse{ID: id, Title: "Stub"}, nil
}

func (f *fakeCatalog) TVDetails(ctx context.Context, id int64) (*tmdb.DetailsResponse, error) {
	return &tmdb.DetailsResponse{ID: id, Name: "Stub"}, nil
}

func (f *fakeCatalog) MovieCredits(ctx context.Context, id int64) (*tmdb.CreditsResponse, error) {
	return &tmdb.CreditsResponse{ID: id}, nil
}

func (f *fakeCatalog) TVCredits(ctx context.Context, id int64) (*tmdb.CreditsResponse, error) {
	return &tmdb.CreditsResponse{ID: id}, nil
}

// passthroughTranslator keeps names as-is
type passthroughTranslator struct{}

func (passthroughTranslator) Translate(ctx context.Context, text string) string { return text }

func newFilterFixture(t *testing.T, catalog *fakeCatalog) (*FilterController, *session.Manager) {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	db, err := models.NewDatabase(t.TempDir() + "/cache.db")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	searchSvc := search.NewService(catalog, cache.NewResultCache(time.Minute), db, time.Minute, logger)
	pres := presenter.NewPresenter(searchSvc, passthroughTranslator{}, 10, 200, logger)
	sessions := session.NewManager()

	return NewFilterController(searchSvc, sessions, pres, logger), sessions
}

func TestFilterWizardCompletes(t *testing.T) {
	catalog := &fakeCatalog{
		movieResults: []tmdb.SearchResult{
			{ID: 1, Title: "Inception", ReleaseDate: "2010-07-16", Popularity: 80, VoteAverage: 8.4},
			{ID: 2, Title: "Interstellar", ReleaseDate: "2014-11-07", Popularity: 95, VoteAverage: 8.6},
		},
	}
	ctrl, sessions := newFilterFixture(t, catalog)
	ctx := context.Background()

	view := ctrl.Start(42)
	if !strings.Contains(view.Text, "Выберите тип") {
		t.Fatalf("Start should prompt for type, got %q", view.Text)
	}

	walk := []string{"type_movie", "genre_878", "year_2010-2019", "rating_high", "skip"}
	for _, data := range walk {
		view = ctrl.HandleEvent(ctx, 42, data)
	}
	// At the sort step now
	if !strings.Contains(view.Text, "сортировк") {
		t.Fatalf("Expected sort prompt, got %q", view.Text)
	}

	view = ctrl.HandleEvent(ctx, 42, "sort_rating")
	if !strings.Contains(view.Text, "Результаты поиска") {
		t.Fatalf("Completed wizard should render results, got %q", view.Text)
	}
	if !strings.Contains(view.Text, "Фильтры:") {
		t.Errorf("Result header should carry the filter summary, got %q", view.Text)
	}

	sess, err := sessions.Get(42)
	if err != nil {
		t.Fatalf("Session missing after completion: %v", err)
	}
	if len(sess.Results) != 2 {
		t.Errorf("Expected 2 stored results, got %d", len(sess.Results))
	}
	// Rating sort puts Interstellar first
	if sess.Results[0].ID != 2 {
		t.Errorf("Expected rating sort, first id = %d", sess.Results[0].ID)
	}
}

func TestFilterWizardDoneIsSticky(t *testing.T) {
	catalog := &fakeCatalog{
		movieResults: []tmdb.SearchResult{
			{ID: 1, Title: "Inception", ReleaseDate: "2010-07-16", Popularity: 80},
		},
	}
	ctrl, _ := newFilterFixture(t, catalog)
	ctx := context.Background()

	ctrl.Start(5)
	for _, data := range []string{"type_movie", "skip", "skip", "skip", "skip", "sort_popularity"} {
		ctrl.HandleEvent(ctx, 5, data)
	}
	if catalog.discoverCalls != 1 {
		t.Fatalf("Expected 1 discovery call, got %d", catalog.discoverCalls)
	}

	// Stray presses after completion re-render without touching the gateway
	for _, data := range []string{"sort_popularity", "sort_rating", "skip", "back"} {
		view := ctrl.HandleEvent(ctx, 5, data)
		if !strings.Contains(view.Text, "Результаты поиска") {
			t.Errorf("Press %q after completion rendered %q", data, view.Text)
		}
	}
	if catalog.discoverCalls != 1 {
		t.Errorf("Duplicate presses reran discovery: %d calls", catalog.discoverCalls)
	}

	// Home still leaves the completed wizard
	view := ctrl.HandleEvent(ctx, 5, "home")
	if !strings.Contains(view.Text, "двумя способами") {
		t.Errorf("Home after completion should render the main menu, got %q", view.Text)
	}
}

func TestFilterWizardEmptyResults(t *testing.T) {
	ctrl, _ := newFilterFixture(t, &fakeCatalog{})
	ctx := context.Background()

	ctrl.Start(1)
	for _, data := range []string{"type_movie", "skip", "skip", "skip", "skip", "sort_popularity"} {
		if view := ctrl.HandleEvent(ctx, 1, data); data == "sort_popularity" {
			if !strings.Contains(view.Text, "ничего не найдено") {
				t.Errorf("Expected no-results view, got %q", view.Text)
			}
		}
	}
}

func TestFilterWizardHome(t *testing.T) {
	ctrl, sessions := newFilterFixture(t, &fakeCatalog{})
	ctx := context.Background()

	ctrl.Start(1)
	ctrl.HandleEvent(ctx, 1, "type_movie")

	view := ctrl.HandleEvent(ctx, 1, "home")
	if !strings.Contains(view.Text, "двумя способами") {
		t.Errorf("Home should render the main menu, got %q", view.Text)
	}
	if _, err := sessions.Get(1); err == nil {
		t.Error("Home should clear the session")
	}
}

func TestFilterWizardExpiredSession(t *testing.T) {
	ctrl, _ := newFilterFixture(t, &fakeCatalog{})

	view := ctrl.HandleEvent(context.Background(), 99, "type_movie")
	if !strings.Contains(view.Text, "Сессия поиска истекла") {
		t.Errorf("Expected session-expired view, got %q", view.Text)
	}
}

func TestFilterWizardUnknownInputRepeatsPrompt(t *testing.T) {
	ctrl, sessions := newFilterFixture(t, &fakeCatalog{})
	ctx := context.Background()

	start := ctrl.Start(1)
	repeat := ctrl.HandleEvent(ctx, 1, "rating_high")
	if repeat.Text != start.Text {
		t.Errorf("Foreign payload should re-emit the prompt: %q vs %q", repeat.Text, start.Text)
	}

	sess, _ := sessions.Get(1)
	if sess.Criteria.Rating != nil {
		t.Error("Foreign payload must not mutate criteria")
	}
}
