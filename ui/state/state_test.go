package state

import (
	"testing"

	"text-splitter/services"

	"github.com/stretchr/testify/assert"
)

func done(kind services.OutcomeKind) Event {
	return Event{Kind: Done, Outcome: services.Outcome{Kind: kind}}
}

func run(events ...Event) State {
	current := Idle
	for _, event := range events {
		current = Next(current, event)
	}
	return current
}

func TestNext(t *testing.T) {
	tests := []struct {
		name    string
		current State
		event   Event
		want    State
	}{
		{"browse from idle", Idle, Event{Kind: Browse}, AwaitingFileChoice},
		{"second browse ignored", AwaitingFileChoice, Event{Kind: Browse}, AwaitingFileChoice},
		{"file chosen", AwaitingFileChoice, Event{Kind: FileChosen, Path: "a.txt"}, Splitting},
		{"file chosen before browse ignored", Idle, Event{Kind: FileChosen}, Idle},
		{"progress keeps splitting", Splitting, Event{Kind: Progress, Status: "x"}, Splitting},
		{"cancelled", AwaitingFileChoice, done(services.OutcomeCancelled), Cancelled},
		{"chooser failure", AwaitingFileChoice, done(services.OutcomeFailed), Failed},
		{"succeeded", Splitting, done(services.OutcomeSucceeded), Succeeded},
		{"failed", Splitting, done(services.OutcomeFailed), Failed},
		{"late file chosen after success", Succeeded, Event{Kind: FileChosen}, Succeeded},
		{"late file chosen after failure", Failed, Event{Kind: FileChosen}, Failed},
		{"late progress after success", Succeeded, Event{Kind: Progress}, Succeeded},
		{"second outcome ignored", Succeeded, done(services.OutcomeFailed), Succeeded},
		{"done while idle ignored", Idle, done(services.OutcomeSucceeded), Idle},
		{"dismiss outcome", Cancelled, Event{Kind: Dismiss}, Terminated},
		{"dismiss while splitting ignored", Splitting, Event{Kind: Dismiss}, Splitting},
		{"destroy while splitting", Splitting, Event{Kind: Destroy}, Terminated},
		{"terminated stays", Terminated, Event{Kind: Browse}, Terminated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Next(tt.current, tt.event))
		})
	}
}

func TestNextOutOfOrderDelivery(t *testing.T) {
	chosen := Event{Kind: FileChosen, Path: "book.txt"}
	progress := Event{Kind: Progress, Status: "Created file"}
	succeeded := done(services.OutcomeSucceeded)
	browse := Event{Kind: Browse}

	assert.Equal(t, Succeeded, run(browse, chosen, progress, succeeded))
	assert.Equal(t, Succeeded, run(browse, succeeded, chosen, progress))
	assert.Equal(t, Succeeded, run(browse, progress, succeeded, chosen))
	assert.Equal(t, Failed, run(browse, done(services.OutcomeFailed), chosen))
	assert.Equal(t, Terminated, run(browse, succeeded, chosen, Event{Kind: Dismiss}))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "awaiting file choice", AwaitingFileChoice.String())
	assert.Equal(t, "State(42)", State(42).String())
	assert.True(t, Failed.Finished())
	assert.False(t, Splitting.Finished())
}
