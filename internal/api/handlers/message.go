package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mvolkov/kinobot/internal/controllers"
	"github.com/mvolkov/kinobot/internal/presenter"
)

// MessageRequest is an inbound free-text message from a user
type MessageRequest struct {
	UserID int64  `json:"user_id"`
	Text   string `json:"text"`
}

// MessageHandler handles inbound text messages
type MessageHandler struct {
	searchCtrl *controllers.SearchController
	logger     *logrus.Logger
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(searchCtrl *controllers.SearchController, logger *logrus.Logger) *MessageHandler {
	return &MessageHandler{
		searchCtrl: searchCtrl,
		logger:     logger,
	}
}

// ServeHTTP handles the message endpoint. "/start" opens the main menu,
// anything else runs a free-text search.
func (h *MessageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithError(err).Error("Failed to decode message payload")
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	if req.UserID == 0 {
		http.Error(w, "Missing user_id", http.StatusBadRequest)
		return
	}

	var view presenter.View
	if strings.TrimSpace(req.Text) == "/start" {
		view = h.searchCtrl.MainMenu(req.UserID)
	} else {
		view = h.searchCtrl.HandleQuery(r.Context(), req.UserID, req.Text)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}
