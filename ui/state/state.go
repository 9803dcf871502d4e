// Package state holds the window's single-shot interaction state machine:
// Idle, AwaitingFileChoice, then Cancelled or Splitting, then Succeeded or
// Failed, then Terminated. It has no window dependency.
package state

import (
	"fmt"

	"text-splitter/services"
)

type State int

const (
	Idle State = iota
	AwaitingFileChoice
	Splitting
	Cancelled
	Succeeded
	Failed
	Terminated
)

var stateNames = [...]string{
	Idle:               "idle",
	AwaitingFileChoice: "awaiting file choice",
	Splitting:          "splitting",
	Cancelled:          "cancelled",
	Succeeded:          "succeeded",
	Failed:             "failed",
	Terminated:         "terminated",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Finished reports whether an outcome is on screen waiting to be dismissed.
func (s State) Finished() bool {
	switch s {
	case Cancelled, Succeeded, Failed:
		return true
	}
	return false
}

type EventKind int

const (
	Browse EventKind = iota
	FileChosen
	Progress
	Done
	Dismiss
	Destroy
)

type Event struct {
	Kind    EventKind
	Path    string
	Status  string
	Outcome services.Outcome
}

// Next returns the state after event. Events that do not apply to the
// current state leave it unchanged, so a late FileChosen can never pull a
// finished interaction back into Splitting.
func Next(current State, event Event) State {
	switch event.Kind {
	case Browse:
		if current == Idle {
			return AwaitingFileChoice
		}
	case FileChosen:
		if current == AwaitingFileChoice {
			return Splitting
		}
	case Done:
		switch current {
		case AwaitingFileChoice, Splitting:
			return outcomeState(event.Outcome.Kind)
		}
	case Dismiss:
		if current.Finished() {
			return Terminated
		}
	case Destroy:
		return Terminated
	}
	return current
}

func outcomeState(kind services.OutcomeKind) State {
	switch kind {
	case services.OutcomeSucceeded:
		return Succeeded
	case services.OutcomeCancelled:
		return Cancelled
	}
	return Failed
}
