package search

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mvolkov/kinobot/internal/models"
)

// Details fetches the detail record for an item through the persistent
// cache tier
func (s *Service) Details(ctx context.Context, id int64, mediaType models.MediaType) (*models.MediaDetails, error) {
	key := fmt.Sprintf("%s_%d", mediaType, id)

	if payload, err := s.details.GetDetail(key, s.ttl); err == nil {
		var details models.MediaDetails
		if err := json.Unmarshal(payload, &details); err == nil {
			return &details, nil
		}
		// Corrupt entry; fall through to a fresh fetch
		s.logger.WithField("key", key).Warn("Discarding unreadable detail cache entry")
	}

	var details *models.MediaDetails
	if mediaType == models.MediaTypeTV {
		resp, err := s.catalog.TVDetails(ctx, id)
		if err != nil {
			return nil, err
		}
		details = resp.Details(models.MediaTypeTV)
	} else {
		resp, err := s.catalog.MovieDetails(ctx, id)
		if err != nil {
			return nil, err
		}
		details = resp.Details(models.MediaTypeMovie)
	}

	s.store(key, details)
	return details, nil
}

// Credits fetches the credits for an item through the persistent cache tier
func (s *Service) Credits(ctx context.Context, id int64, mediaType models.MediaType) (*models.Credits, error) {
	key := fmt.Sprintf("credits_%s_%d", mediaType, id)

	if payload, err := s.details.GetDetail(key, s.ttl); err == nil {
		var credits models.Credits
		if err := json.Unmarshal(payload, &credits); err == nil {
			return &credits, nil
		}
		s.logger.WithField("key", key).Warn("Discarding unreadable credits cache entry")
	}

	var credits *models.Credits
	if mediaType == models.MediaTypeTV {
		resp, err := s.catalog.TVCredits(ctx, id)
		if err != nil {
			return nil, err
		}
		credits = resp.Credits()
	} else {
		resp, err := s.catalog.MovieCredits(ctx, id)
		if err != nil {
			return nil, err
		}
		credits = resp.Credits()
	}

	s.store(key, credits)
	return credits, nil
}

// store writes a payload into the persistent tier; failures are logged and
// otherwise ignored, the caller already has the data
func (s *Service) store(key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Error("Failed to marshal cache payload")
		return
	}
	if err := s.details.PutDetail(key, payload); err != nil {
		s.logger.WithError(err).WithField("key", key).Error("Failed to write detail cache")
	}
}
