package controllers

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mvolkov/kinobot/internal/models"
	"github.com/mvolkov/kinobot/internal/presenter"
	"github.com/mvolkov/kinobot/internal/search"
	"github.com/mvolkov/kinobot/internal/session"
)

// SearchController handles free-text queries, result pagination and
// detail cards
type SearchController struct {
	searchSvc *search.Service
	sessions  *session.Manager
	presenter *presenter.Presenter
	logger    *logrus.Logger
}

// NewSearchController creates a new search controller
func NewSearchController(searchSvc *search.Service, sessions *session.Manager, p *presenter.Presenter, logger *logrus.Logger) *SearchController {
	return &SearchController{
		searchSvc: searchSvc,
		sessions:  sessions,
		presenter: p,
		logger:    logger,
	}
}

// MainMenu returns the initial dialog
func (c *SearchController) MainMenu(userID int64) presenter.View {
	c.sessions.Clear(userID)
	return presenter.MainMenu()
}

// AskQuery prompts for a free-text query
func (c *SearchController) AskQuery() presenter.View {
	return presenter.AskQuery()
}

// HandleQuery runs a free-text search and renders the first result page
func (c *SearchController) HandleQuery(ctx context.Context, userID int64, text string) (view presenter.View) {
	defer recoverView(c.logger, "query", &view)

	query := strings.TrimSpace(text)
	if query == "" {
		return presenter.AskQuery()
	}

	c.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"query":   query,
	}).Info("Free-text search")

	results, err := c.searchSvc.Search(ctx, query)
	if err != nil {
		c.logger.WithError(err).Error("Search failed")
		return presenter.TryAgain()
	}
	if len(results) == 0 {
		return presenter.NoResults()
	}

	sess := c.sessions.GetOrCreate(userID)
	sess.Results = results
	sess.Query = query

	return c.presenter.RenderPage(results, query, 0)
}

// HandlePage renders the requested page of the user's last result set
func (c *SearchController) HandlePage(userID int64, page int) (view presenter.View) {
	defer recoverView(c.logger, "page", &view)

	sess, err := c.sessions.Get(userID)
	if err != nil || len(sess.Results) == 0 {
		return presenter.SessionExpired()
	}

	return c.presenter.RenderPage(sess.Results, sess.Query, page)
}

// BackToList returns to the first page of the user's last result set
func (c *SearchController) BackToList(userID int64) presenter.View {
	return c.HandlePage(userID, 0)
}

// HandleDetails renders the summary detail card for an item
func (c *SearchController) HandleDetails(ctx context.Context, id int64, mediaType models.MediaType) (view presenter.View) {
	defer recoverView(c.logger, "details", &view)

	view, err := c.presenter.RenderDetails(ctx, id, mediaType)
	if err != nil {
		c.logger.WithError(err).WithField("id", id).Error("Failed to render details")
		return presenter.TryAgain()
	}
	return view
}

// HandleExpand renders the expanded detail card for an item
func (c *SearchController) HandleExpand(ctx context.Context, id int64, mediaType models.MediaType) (view presenter.View) {
	defer recoverView(c.logger, "expand", &view)

	view, err := c.presenter.RenderExpandedDetails(ctx, id, mediaType)
	if err != nil {
		c.logger.WithError(err).WithField("id", id).Error("Failed to render expanded details")
		return presenter.TryAgain()
	}
	return view
}

// HandleCollapse returns from the expanded card to the summary card
func (c *SearchController) HandleCollapse(ctx context.Context, id int64, mediaType models.MediaType) presenter.View {
	return c.HandleDetails(ctx, id, mediaType)
}
