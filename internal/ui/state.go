package ui

import "github.com/sells-group/zorah/internal/model"

// Phase is the lifecycle position of the client.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseBusy
	PhaseDisplaying
	PhaseDisplayingError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseBusy:
		return "busy"
	case PhaseDisplaying:
		return "displaying"
	case PhaseDisplayingError:
		return "displaying_error"
	default:
		return "unknown"
	}
}

// State is the single UI state. Items is set only while Displaying and
// Message only while DisplayingError.
type State struct {
	Phase   Phase
	Items   []model.CrawlResultItem
	Message string
}

func idle() State { return State{Phase: PhaseIdle} }

func busy() State { return State{Phase: PhaseBusy} }

func displaying(items []model.CrawlResultItem) State {
	return State{Phase: PhaseDisplaying, Items: items}
}

func displayingError(msg string) State {
	return State{Phase: PhaseDisplayingError, Message: msg}
}
