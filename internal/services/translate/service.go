package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

const (
	maxAttempts   = 3
	cacheTTL      = 24 * time.Hour
	retryInterval = 100 * time.Millisecond
)

// Service translates non-Cyrillic names to the display language. It never
// fails: on bad candidates it retries, and on exhaustion it falls back to
// the original text. The cache is process-wide and shared by all callers.
type Service struct {
	model  Model
	cache  *gocache.Cache
	logger *logrus.Logger
}

// NewService creates a translation service around the given model
func NewService(model Model, logger *logrus.Logger) *Service {
	return &Service{
		model:  model,
		cache:  gocache.New(cacheTTL, 10*time.Minute),
		logger: logger,
	}
}

// Translate returns the translation of text, or text itself when the input
// needs no translation or no valid candidate could be produced. Only
// validated translations are cached, so a fallback is not memoized and a
// later call may succeed.
func (s *Service) Translate(ctx context.Context, text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return text
	}
	if IsCyrillic(text) {
		return text
	}

	if cached, found := s.cache.Get(text); found {
		return cached.(string)
	}

	var result string
	operation := func() error {
		candidate, err := s.model.Translate(ctx, text)
		if err != nil {
			return err
		}
		candidate = strings.TrimSpace(candidate)
		if !IsValidTranslation(text, candidate) {
			return fmt.Errorf("candidate failed validation: %q", candidate)
		}
		result = candidate
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(retryInterval), maxAttempts-1),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		s.logger.WithError(err).WithField("text", text).Warn("Translation failed, using original text")
		return text
	}

	s.cache.SetDefault(text, result)
	s.logger.WithFields(logrus.Fields{
		"text":   text,
		"result": result,
	}).Debug("Translation cached")

	return result
}
