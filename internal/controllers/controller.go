// Package controllers ties inbound user input to the search engine and the
// presenter, producing outbound views. One controller handles free-text
// search and result navigation, the other the filter wizard.
package controllers

import (
	"github.com/sirupsen/logrus"

	"github.com/mvolkov/kinobot/internal/presenter"
)

// recoverView converts a panic inside a rendering step into the generic
// try-again view. A failing render must never crash the owning session or
// affect other sessions.
func recoverView(logger *logrus.Logger, op string, view *presenter.View) {
	if r := recover(); r != nil {
		logger.WithFields(logrus.Fields{
			"op":    op,
			"panic": r,
		}).Error("Recovered panic in handler")
		*view = presenter.TryAgain()
	}
}
