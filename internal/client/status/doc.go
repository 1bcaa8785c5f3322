// Package status keeps locally held task state current without the caller
// managing timers or re-fetching by hand.
//
// Polling is the baseline strategy: Watch repeatedly fetches the full task
// record on a fixed interval until the status turns terminal. A failed poll
// is NOT a task failure; it is retried on the next tick, bounded by a
// consecutive-failure budget after which ErrGaveUp is reported. Push
// reconciliation is layered on top: Apply merges server-sent fragments into
// the same local records field by field and stops any concurrent polling
// once a fragment carries a terminal status.
//
// A watch loop is cancelled cooperatively through its context; a poll result
// that resolves after cancellation is discarded rather than applied.
package status
