package services

import (
	"errors"
	"fmt"
)

var ErrSelectionCancelled = errors.New("file selection was cancelled")

// FileChooser asks the user for an input file. It returns
// ErrSelectionCancelled when the user declines.
type FileChooser func() (string, error)

type OutcomeKind int

const (
	OutcomeSucceeded OutcomeKind = iota
	OutcomeCancelled
	OutcomeFailed
)

func (kind OutcomeKind) String() string {
	switch kind {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeFailed:
		return "failed"
	}
	return fmt.Sprintf("OutcomeKind(%d)", int(kind))
}

type Outcome struct {
	Kind    OutcomeKind
	Title   string
	Message string
	Result  *Result
	Err     error
}

type Interaction struct {
	Choose       FileChooser
	Service      *TextService
	LinesPerFile int
	// Prefix overrides the prefix derived from the chosen file name.
	Prefix string
	// OnSplitting is called once a file was chosen, before splitting starts.
	OnSplitting func(path string)
}

// BrowseAndSplit runs a single choose-then-split interaction.
func BrowseAndSplit(choose FileChooser, textService *TextService, linesPerFile int) Outcome {
	return Interaction{Choose: choose, Service: textService, LinesPerFile: linesPerFile}.Run()
}

func (interaction Interaction) Run() Outcome {
	path, err := interaction.Choose()
	if err != nil {
		if errors.Is(err, ErrSelectionCancelled) {
			return Outcome{Kind: OutcomeCancelled, Title: "Cancelled", Message: "File selection was cancelled."}
		}
		return failedOutcome(fmt.Errorf("failed to choose file: %w", err))
	}
	if interaction.OnSplitting != nil {
		interaction.OnSplitting(path)
	}
	prefix := interaction.Prefix
	if prefix == "" {
		prefix = PrefixFromPath(path)
	}
	linesPerFile := interaction.LinesPerFile
	if linesPerFile == 0 {
		linesPerFile = DefaultLinesPerFile
	}
	result, err := interaction.Service.SplitFile(path, prefix, linesPerFile)
	if err != nil {
		outcome := failedOutcome(err)
		outcome.Result = result
		return outcome
	}
	return Outcome{
		Kind:    OutcomeSucceeded,
		Title:   "Success",
		Message: fmt.Sprintf("File splitting complete!\nCheck the '%s' folder.", result.OutputDir),
		Result:  result,
	}
}

func failedOutcome(err error) Outcome {
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return Outcome{
			Kind:    OutcomeFailed,
			Title:   "Error",
			Message: fmt.Sprintf("The file '%s' was not found.", notFound.Path),
			Err:     err,
		}
	}
	return Outcome{
		Kind:    OutcomeFailed,
		Title:   "An Error Occurred",
		Message: fmt.Sprintf("An unexpected error occurred: %s", err),
		Err:     err,
	}
}
