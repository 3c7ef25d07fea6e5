// Package export runs bulk animation exports against the primary character.
//
// A Worker is configured with an output directory, a mode and (for query
// mode) a search query, then Run drives one sequential pass:
//
//  1. resolve the primary character
//  2. load the catalog for the mode (manifest, search or T-pose)
//  3. per animation: build the payload, submit the export, poll the
//     character's monitor until the job completes, download the result
//
// Exactly one export is outstanding at a time. Progress is reported through
// a domain.ProgressObserver: TotalCount once before the loop, TaskCompleted
// after each download, and Done exactly once however the run ends.
//
// Cancel is cooperative and checked at the top of each iteration, so the
// animation in flight always finishes. Cancelling the context passed to Run
// interrupts waits immediately.
//
// Polling stops on a completed status, on a failed status (*JobFailedError)
// or after Config.MaxPolls attempts (*PollTimeoutError). MaxPolls of zero
// polls forever.
package export
