package types

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCharacter is returned when the session has no primary character.
	ErrNoCharacter = errors.New("no primary character selected on the remote account")

	// ErrCancelled is returned by a run stopped through Cancel.
	ErrCancelled = errors.New("export run cancelled")

	// ErrRunInProgress is returned when a second run is started on a busy worker.
	ErrRunInProgress = errors.New("export run already in progress")

	// ErrInvalidMode is returned for an unknown or unset export mode.
	ErrInvalidMode = errors.New("invalid export mode (want tpose, all or query)")

	// ErrQueryRequired is returned when query mode has no search query.
	ErrQueryRequired = errors.New("query mode requires a search query")
)

// JobFailedError reports an export job the service marked as failed, or one
// that completed without a download link.
type JobFailedError struct {
	Product string
	Status  JobStatus
	Message string
}

func (e *JobFailedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("export of %q ended with status %q: %s", e.Product, e.Status, e.Message)
	}
	return fmt.Sprintf("export of %q ended with status %q", e.Product, e.Status)
}

// PollTimeoutError reports a job still unfinished after the poll budget.
type PollTimeoutError struct {
	Product  string
	Attempts int
	Status   JobStatus
}

func (e *PollTimeoutError) Error() string {
	return fmt.Sprintf("export of %q not completed after %d polls (last status %q)", e.Product, e.Attempts, e.Status)
}
