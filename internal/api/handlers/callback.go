package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mvolkov/kinobot/internal/controllers"
	"github.com/mvolkov/kinobot/internal/models"
	"github.com/mvolkov/kinobot/internal/presenter"
)

// CallbackRequest is an inbound button press from a user
type CallbackRequest struct {
	UserID int64  `json:"user_id"`
	Data   string `json:"data"`
}

// CallbackHandler routes button payloads to the search and filter
// controllers
type CallbackHandler struct {
	searchCtrl *controllers.SearchController
	filterCtrl *controllers.FilterController
	logger     *logrus.Logger
}

// NewCallbackHandler creates a new callback handler
func NewCallbackHandler(searchCtrl *controllers.SearchController, filterCtrl *controllers.FilterController, logger *logrus.Logger) *CallbackHandler {
	return &CallbackHandler{
		searchCtrl: searchCtrl,
		filterCtrl: filterCtrl,
		logger:     logger,
	}
}

// ServeHTTP handles the callback endpoint
func (h *CallbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CallbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithError(err).Error("Failed to decode callback payload")
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	if req.UserID == 0 || req.Data == "" {
		http.Error(w, "Missing user_id or data", http.StatusBadRequest)
		return
	}

	view := h.dispatch(r.Context(), req.UserID, req.Data)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

// dispatch maps a button payload to a controller action. Payloads without
// a dedicated route are fed to the wizard, which treats anything it does
// not recognize as a no-op.
func (h *CallbackHandler) dispatch(ctx context.Context, userID int64, data string) presenter.View {
	switch data {
	case "home":
		return h.searchCtrl.MainMenu(userID)
	case "search_by_title":
		return h.searchCtrl.AskQuery()
	case "search_by_filter":
		return h.filterCtrl.Start(userID)
	case "back_to_list":
		return h.searchCtrl.BackToList(userID)
	case "current_page":
		// Page indicator; pressing it changes nothing
		return presenter.View{}
	}

	if raw, ok := strings.CutPrefix(data, "page_"); ok {
		page, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.WithField("data", data).Warn("Malformed page payload")
			return presenter.TryAgain()
		}
		return h.searchCtrl.HandlePage(userID, page)
	}

	if id, mediaType, ok := parseItemRef(data, "details_"); ok {
		return h.searchCtrl.HandleDetails(ctx, id, mediaType)
	}
	if id, mediaType, ok := parseItemRef(data, "expand_"); ok {
		return h.searchCtrl.HandleExpand(ctx, id, mediaType)
	}
	if id, mediaType, ok := parseItemRef(data, "collapse_"); ok {
		return h.searchCtrl.HandleCollapse(ctx, id, mediaType)
	}

	return h.filterCtrl.HandleEvent(ctx, userID, data)
}

// parseItemRef decodes "<prefix><id>_<media_type>" payloads
func parseItemRef(data, prefix string) (int64, models.MediaType, bool) {
	raw, ok := strings.CutPrefix(data, prefix)
	if !ok {
		return 0, "", false
	}

	idPart, typePart, ok := strings.Cut(raw, "_")
	if !ok {
		return 0, "", false
	}

	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return 0, "", false
	}

	mediaType := models.MediaType(typePart)
	if mediaType != models.MediaTypeMovie && mediaType != models.MediaTypeTV {
		return 0, "", false
	}

	return id, mediaType, true
}
