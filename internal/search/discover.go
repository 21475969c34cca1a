package search

import (
	"context"
	"sort"
	"time"

	"github.com/mvolkov/kinobot/internal/models"
	"github.com/mvolkov/kinobot/internal/services/tmdb"
)

// Discover executes a criteria-based discovery query. For mediaType=any it
// issues both discovery calls and merges the type-stamped results. Items
// with a missing or future release date are dropped, as are items outside
// the year range when one is set; the catalog applies these bounds too but
// is inconsistent around missing and partial dates.
func (s *Service) Discover(ctx context.Context, criteria models.Criteria) ([]models.MediaItem, error) {
	params := tmdb.DiscoverParams{
		GenreID: criteria.GenreID,
		Country: criteria.Country,
		Years:   criteria.Years,
		Rating:  criteria.Rating,
		Sort:    criteria.Sort,
	}

	var items []models.MediaItem

	if criteria.MediaType == models.MediaTypeMovie || criteria.MediaType == models.MediaTypeAny {
		raw, err := s.catalog.DiscoverMovie(ctx, params)
		if err != nil {
			return nil, err
		}
		for _, r := range raw {
			items = append(items, r.Item(models.MediaTypeMovie))
		}
	}

	if criteria.MediaType == models.MediaTypeTV || criteria.MediaType == models.MediaTypeAny {
		raw, err := s.catalog.DiscoverTV(ctx, params)
		if err != nil {
			return nil, err
		}
		for _, r := range raw {
			items = append(items, r.Item(models.MediaTypeTV))
		}
	}

	filtered := filterByDate(items, criteria.Years, time.Now())
	sortItems(filtered, criteria.Sort)

	s.logger.WithFields(map[string]interface{}{
		"media_type": criteria.MediaType,
		"fetched":    len(items),
		"kept":       len(filtered),
	}).Info("Discovery completed")

	return filtered, nil
}

// filterByDate drops unreleased items and, when years is set, items whose
// release year falls outside the range
func filterByDate(items []models.MediaItem, years *models.YearRange, now time.Time) []models.MediaItem {
	var kept []models.MediaItem
	for _, item := range items {
		if !item.Released(now) {
			continue
		}
		if years != nil {
			year := item.Year()
			if year < years.Start || year > years.End {
				continue
			}
		}
		kept = append(kept, item)
	}
	return kept
}

// sortItems applies the final ordering for the given sort key
func sortItems(items []models.MediaItem, key models.SortKey) {
	switch key {
	case models.SortRating:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].VoteAverage > items[j].VoteAverage
		})
	case models.SortReleaseDate:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].ReleaseDate > items[j].ReleaseDate
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Popularity > items[j].Popularity
		})
	}
}
