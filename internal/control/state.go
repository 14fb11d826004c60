package control

import (
	"time"

	"github.com/RBEGamer/OnRobot3FG15/internal/gripper"
)

// DisplayState is the last rendered projection of the device: the most
// recent status snapshot plus an optional last-error message.
//
// The session owns the single mutable instance; everything outside the
// session sees value copies taken under the session lock. A failed poll
// never clears Status, so the display degrades to stale data instead of
// going blank.
type DisplayState struct {
	// Status is the last successfully polled snapshot, nil until the
	// first poll succeeds
	Status *gripper.Status

	// LastError is the visible error line, empty when there is none
	LastError string

	// UpdatedAt is when either half of the state last changed
	UpdatedAt time.Time
}

// HasError reports whether an error line should be displayed
func (d DisplayState) HasError() bool {
	return d.LastError != ""
}

// clone returns a deep copy so the session's instance stays single-owner
func (d DisplayState) clone() DisplayState {
	out := d
	if d.Status != nil {
		st := *d.Status
		out.Status = &st
	}
	return out
}
