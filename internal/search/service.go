// Package search executes free-text and criteria-based catalog queries and
// serves cached detail records through the two cache tiers.
package search

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mvolkov/kinobot/internal/cache"
	"github.com/mvolkov/kinobot/internal/models"
	"github.com/mvolkov/kinobot/internal/services/tmdb"
)

// Catalog is the slice of the gateway this service consumes
type Catalog interface {
	SearchMulti(ctx context.Context, query string) ([]tmdb.SearchResult, error)
	DiscoverMovie(ctx context.Context, p tmdb.DiscoverParams) ([]tmdb.SearchResult, error)
	DiscoverTV(ctx context.Context, p tmdb.DiscoverParams) ([]tmdb.SearchResult, error)
	MovieDetails(ctx context.Context, id int64) (*tmdb.DetailsResponse, error)
	TVDetails(ctx context.Context, id int64) (*tmdb.DetailsResponse, error)
	MovieCredits(ctx context.Context, id int64) (*tmdb.CreditsResponse, error)
	TVCredits(ctx context.Context, id int64) (*tmdb.CreditsResponse, error)
}

// Service is the search and ranking layer in front of the catalog gateway
type Service struct {
	catalog Catalog
	results *cache.ResultCache
	details *models.Database
	ttl     time.Duration
	logger  *logrus.Logger
}

// NewService creates a new search service
func NewService(catalog Catalog, results *cache.ResultCache, details *models.Database, ttl time.Duration, logger *logrus.Logger) *Service {
	return &Service{
		catalog: catalog,
		results: results,
		details: details,
		ttl:     ttl,
		logger:  logger,
	}
}
