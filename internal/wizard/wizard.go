// Package wizard drives the step-by-step criteria-collection dialog as an
// explicit state machine. It is pure: states and events in, states and
// criteria mutations out, with no knowledge of the transport or rendering.
package wizard

import (
	"strconv"
	"strings"
	"time"

	"github.com/mvolkov/kinobot/internal/models"
)

// State is a step of the filter dialog
type State int

const (
	StateChooseType State = iota
	StateChooseGenre
	StateChooseYear
	StateChooseRating
	StateChooseCountry
	StateChooseSort
	StateDone // terminal: sort chosen, search ready to execute
	StateCancelled
	StateHome
)

// String returns the state name for logging
func (s State) String() string {
	switch s {
	case StateChooseType:
		return "choose_type"
	case StateChooseGenre:
		return "choose_genre"
	case StateChooseYear:
		return "choose_year"
	case StateChooseRating:
		return "choose_rating"
	case StateChooseCountry:
		return "choose_country"
	case StateChooseSort:
		return "choose_sort"
	case StateDone:
		return "done"
	case StateCancelled:
		return "cancelled"
	case StateHome:
		return "home"
	}
	return "unknown"
}

// Terminal reports whether the wizard has finished at this state
func (s State) Terminal() bool {
	return s == StateDone || s == StateCancelled || s == StateHome
}

// step describes one row of the transition table: where "back" leads,
// where a stored or skipped value advances to, and how a selection payload
// is applied to the criteria. apply returns false for payloads that do not
// belong to this step, which leaves the state unchanged.
type step struct {
	prev  State
	next  State
	apply func(c *models.Criteria, value string) bool
	clear func(c *models.Criteria)
}

var steps = map[State]step{
	StateChooseType: {
		prev:  StateHome, // backing out of the first step leaves the wizard
		next:  StateChooseGenre,
		apply: applyType,
		clear: func(c *models.Criteria) { c.MediaType = models.MediaTypeAny },
	},
	StateChooseGenre: {
		prev:  StateChooseType,
		next:  StateChooseYear,
		apply: applyGenre,
		clear: func(c *models.Criteria) { c.GenreID = nil },
	},
	StateChooseYear: {
		prev:  StateChooseGenre,
		next:  StateChooseRating,
		apply: applyYear,
		clear: func(c *models.Criteria) { c.Years = nil },
	},
	StateChooseRating: {
		prev:  StateChooseYear,
		next:  StateChooseCountry,
		apply: applyRating,
		clear: func(c *models.Criteria) { c.Rating = nil },
	},
	StateChooseCountry: {
		prev:  StateChooseRating,
		next:  StateChooseSort,
		apply: applyCountry,
		clear: func(c *models.Criteria) { c.Country = "" },
	},
	StateChooseSort: {
		prev:  StateChooseCountry,
		next:  StateDone,
		apply: applySort,
		// Sort has no skip affordance; the default stands in for it
		clear: func(c *models.Criteria) { c.Sort = models.SortPopularity },
	},
}

// Advance applies an event to the current state and mutates the criteria
// accordingly. Unrecognized input is a no-op: the returned state equals the
// input state and the caller re-emits its prompt.
func Advance(state State, event Event, criteria *models.Criteria) State {
	switch event.Kind {
	case EventHome:
		*criteria = models.Criteria{}
		return StateHome
	case EventCancel:
		*criteria = models.Criteria{}
		return StateCancelled
	}

	current, ok := steps[state]
	if !ok {
		return state
	}

	switch event.Kind {
	case EventBack:
		return current.prev
	case EventSkip:
		current.clear(criteria)
		return current.next
	case EventSelect:
		if current.apply(criteria, event.Value) {
			return current.next
		}
	}

	return state
}

func applyType(c *models.Criteria, value string) bool {
	switch strings.TrimPrefix(value, "type_") {
	case "movie":
		c.MediaType = models.MediaTypeMovie
	case "tv":
		c.MediaType = models.MediaTypeTV
	case "any":
		c.MediaType = models.MediaTypeAny
	default:
		return false
	}
	return true
}

func applyGenre(c *models.Criteria, value string) bool {
	raw, ok := strings.CutPrefix(value, "genre_")
	if !ok {
		return false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return false
	}
	c.GenreID = &id
	return true
}

// YearPresets are the selectable release-year ranges. The current decade
// preset is open-ended up to the current year.
func YearPresets() map[string]models.YearRange {
	return map[string]models.YearRange{
		"2020":      {Start: 2020, End: time.Now().Year()},
		"2010-2019": {Start: 2010, End: 2019},
		"2000-2009": {Start: 2000, End: 2009},
		"pre2000":   {Start: 1900, End: 1999},
	}
}

func applyYear(c *models.Criteria, value string) bool {
	raw, ok := strings.CutPrefix(value, "year_")
	if !ok {
		return false
	}
	years, ok := YearPresets()[raw]
	if !ok {
		return false
	}
	c.Years = &years
	return true
}

func applyRating(c *models.Criteria, value string) bool {
	var band models.RatingBand
	switch strings.TrimPrefix(value, "rating_") {
	case "high":
		band = models.RatingHigh
	case "medium":
		band = models.RatingMedium
	case "low":
		band = models.RatingLow
	default:
		return false
	}
	c.Rating = &band
	return true
}

func applyCountry(c *models.Criteria, value string) bool {
	code, ok := strings.CutPrefix(value, "country_")
	if !ok || len(code) != 2 {
		return false
	}
	if code != strings.ToUpper(code) {
		return false
	}
	c.Country = code
	return true
}

func applySort(c *models.Criteria, value string) bool {
	switch strings.TrimPrefix(value, "sort_") {
	case "popularity":
		c.Sort = models.SortPopularity
	case "rating":
		c.Sort = models.SortRating
	case "date":
		c.Sort = models.SortReleaseDate
	default:
		return false
	}
	return true
}
