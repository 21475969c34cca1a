package search

import (
	"context"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/mvolkov/kinobot/internal/models"
)

// topRelevant is how many results are ranked by relevance before the
// popularity re-sort; anything past it keeps its relevance order
const topRelevant = 10

// Search executes a free-text query. Results are cached under the exact
// query string. An empty result list is a normal outcome, not a failure;
// an error is returned only when the gateway fails.
func (s *Service) Search(ctx context.Context, query string) ([]models.MediaItem, error) {
	if cached, found := s.results.Get(query); found {
		s.logger.WithField("query", query).Debug("Search cache hit")
		return cached, nil
	}

	raw, err := s.catalog.SearchMulti(ctx, query)
	if err != nil {
		return nil, err
	}

	// Keep only movies and tv shows (multi-search also returns people)
	var items []models.MediaItem
	for _, r := range raw {
		if r.MediaType != string(models.MediaTypeMovie) && r.MediaType != string(models.MediaTypeTV) {
			continue
		}
		items = append(items, r.Item(""))
	}

	ranked := rank(query, items)
	s.results.Set(query, ranked)

	s.logger.WithFields(map[string]interface{}{
		"query": query,
		"count": len(ranked),
	}).Info("Search completed")

	return ranked, nil
}

// rank orders items by fuzzy relevance to the query, re-sorts the top ten
// by popularity, and appends the remainder in relevance order
func rank(query string, items []models.MediaItem) []models.MediaItem {
	sort.SliceStable(items, func(i, j int) bool {
		return similarity(query, items[i].Title) > similarity(query, items[j].Title)
	})

	if len(items) <= topRelevant {
		top := make([]models.MediaItem, len(items))
		copy(top, items)
		sort.SliceStable(top, func(i, j int) bool {
			return top[i].Popularity > top[j].Popularity
		})
		return top
	}

	top := make([]models.MediaItem, topRelevant)
	copy(top, items[:topRelevant])
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Popularity > top[j].Popularity
	})

	return append(top, items[topRelevant:]...)
}

// similarity is a fuzzy match score in [0,1] based on edit distance
func similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 1
	}

	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1
	}

	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}
