package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Model produces a translation candidate for a piece of text. Candidates
// are not trusted; the service validates every one before use.
type Model interface {
	Translate(ctx context.Context, text string) (string, error)
}

// HTTPModel calls an external translation endpoint (LibreTranslate-style
// POST) serving the en->ru model
type HTTPModel struct {
	url        string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewHTTPModel creates a translation model client
func NewHTTPModel(url string, logger *logrus.Logger) *HTTPModel {
	return &HTTPModel{
		url: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

type translateRequest struct {
	Text   string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// Translate requests a single translation candidate from the model
func (m *HTTPModel) Translate(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(translateRequest{
		Text:   text,
		Source: "en",
		Target: "ru",
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("translation API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode translation response: %w", err)
	}

	return result.TranslatedText, nil
}
