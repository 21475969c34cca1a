package wizard

// EventKind distinguishes the inputs a wizard step accepts
type EventKind int

const (
	EventSelect EventKind = iota // a criterion value was chosen
	EventSkip                    // leave the criterion unset and advance
	EventBack                    // return to the previous step
	EventHome                    // abandon the wizard, back to the main dialog
	EventCancel                  // abandon the wizard entirely
	EventUnknown
)

// Event is a single wizard input. Value carries the raw payload for
// selections (e.g. "genre_28") and is empty for navigation events.
type Event struct {
	Kind  EventKind
	Value string
}

// ParseEvent maps a button payload onto a tagged event. Navigation tokens
// are matched exactly before any value parsing, so a criterion value can
// never alias a navigation input.
func ParseEvent(data string) Event {
	switch data {
	case "home":
		return Event{Kind: EventHome}
	case "back":
		return Event{Kind: EventBack}
	case "skip":
		return Event{Kind: EventSkip}
	case "cancel":
		return Event{Kind: EventCancel}
	}
	if data == "" {
		return Event{Kind: EventUnknown}
	}
	return Event{Kind: EventSelect, Value: data}
}
