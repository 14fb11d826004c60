// Package control implements the state-synchronization loop between the
// gripper control service and the display.
//
// A Session owns the single mutable DisplayState and feeds it from two
// independent triggers:
//
//  1. a timer-driven poll of GET /api/status every 500ms for the lifetime
//     of the session, and
//  2. a forced poll fired once per successful command dispatch, after a
//     200ms settle delay.
//
// Commands are named events placed on a single-consumer queue. The consumer
// launches every dispatch as its own goroutine, so concurrent dispatches
// (and their forced polls) remain unserialized: last write wins on the
// display, with no sequence numbers, staleness checks, retries or backoff.
//
// A failed poll keeps the stale snapshot and sets "Status error: <msg>";
// a failed dispatch sets the failure message and skips the settle/re-poll
// sequence. Errors never escalate beyond the visible error line.
//
// The session stops when its context is cancelled, which also abandons any
// in-flight settle wait.
package control
