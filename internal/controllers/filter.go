package controllers

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mvolkov/kinobot/internal/presenter"
	"github.com/mvolkov/kinobot/internal/search"
	"github.com/mvolkov/kinobot/internal/session"
	"github.com/mvolkov/kinobot/internal/wizard"
)

// FilterController drives the filter wizard: it feeds user events into the
// state machine and executes the discovery search once the dialog completes
type FilterController struct {
	searchSvc *search.Service
	sessions  *session.Manager
	presenter *presenter.Presenter
	logger    *logrus.Logger
}

// NewFilterController creates a new filter controller
func NewFilterController(searchSvc *search.Service, sessions *session.Manager, p *presenter.Presenter, logger *logrus.Logger) *FilterController {
	return &FilterController{
		searchSvc: searchSvc,
		sessions:  sessions,
		presenter: p,
		logger:    logger,
	}
}

// Start opens the wizard at its first step, discarding any prior progress
func (c *FilterController) Start(userID int64) presenter.View {
	sess := c.sessions.Reset(userID)
	return presenter.WizardPrompt(sess.State)
}

// HandleEvent applies one user event to the wizard. Completed dialogs run
// the discovery search and render its first page; unrecognized input
// re-emits the current prompt.
func (c *FilterController) HandleEvent(ctx context.Context, userID int64, data string) (view presenter.View) {
	defer recoverView(c.logger, "wizard", &view)

	sess, err := c.sessions.Get(userID)
	if err != nil {
		return presenter.SessionExpired()
	}

	event := wizard.ParseEvent(data)

	// A completed wizard stays completed: stray or duplicate presses
	// re-render the stored results instead of rerunning the search
	if sess.State == wizard.StateDone && event.Kind != wizard.EventHome && event.Kind != wizard.EventCancel {
		return c.presenter.RenderPage(sess.Results, sess.Query, 0)
	}

	next := wizard.Advance(sess.State, event, &sess.Criteria)

	c.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"from":    sess.State.String(),
		"to":      next.String(),
		"event":   data,
	}).Debug("Wizard transition")

	switch next {
	case wizard.StateHome:
		c.sessions.Clear(userID)
		return presenter.MainMenu()
	case wizard.StateCancelled:
		c.sessions.Clear(userID)
		return presenter.Cancelled()
	case wizard.StateDone:
		return c.finish(ctx, sess)
	}

	sess.State = next
	return presenter.WizardPrompt(next)
}

// finish executes the collected criteria and stores the result set on the
// session so pagination and detail callbacks keep working afterwards
func (c *FilterController) finish(ctx context.Context, sess *session.Session) presenter.View {
	results, err := c.searchSvc.Discover(ctx, sess.Criteria)
	if err != nil {
		c.logger.WithError(err).Error("Discovery search failed")
		return presenter.TryAgain()
	}

	sess.State = wizard.StateDone
	sess.Results = results
	sess.Query = presenter.FilterSummary(sess.Criteria)

	if len(results) == 0 {
		return presenter.NoResults()
	}
	return c.presenter.RenderPage(results, sess.Query, 0)
}
