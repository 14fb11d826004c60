// Package tui implements the interactive control panel.
//
// The panel is a bubbletea program layered on top of a control.Session.
// It renders the last known device snapshot plus the error line, offers
// single-key actuation (open, close, move, flex, stop) and inline editing
// of the three device parameters (force, diameter, grip type).
//
// # Architecture
//
// The panel is strictly a display projector:
//
//   - key presses enqueue command events on the session, nothing more
//   - the session's notify hook sends a StateMsg per display-state write
//   - View renders the last StateMsg received; it performs no I/O and
//     holds no state beyond what DisplayState provides
//
// Wiring (see cmd/gripperctl):
//
//	sess := control.NewSession(client, control.Options{})
//	model := tui.NewPanelModel(sess, "192.168.1.40:8080", cfg.Params)
//	program := tea.NewProgram(model, tea.WithAltScreen())
//	sess.SetNotify(func(st control.DisplayState) {
//	    program.Send(tui.StateMsg(st))
//	})
package tui
