package gripper

import (
	"fmt"
	"strings"
)

// MotionState returns a one-word description of the finger position
func (s *Status) MotionState() string {
	switch {
	case s.Gripped:
		return "GRIPPED"
	case s.Open:
		return "OPEN"
	case s.Closed:
		return "CLOSED"
	default:
		return "MOVING"
	}
}

// Summary returns a one-line summary of the snapshot
func (s *Status) Summary() string {
	ready := "ready"
	if !s.Ready {
		ready = "not ready"
	}
	return fmt.Sprintf("3FG15 %s, %s, width %.1f mm, force %d, diameter %.1f mm, grip %s",
		ready, strings.ToLower(s.MotionState()), s.WidthMM(), s.Force, s.DiameterMM(), s.GripType())
}

// FormatCompact returns a compact multi-line format suitable for terminal display
func (s *Status) FormatCompact() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("State:    %s (ready: %v)\n", s.MotionState(), s.Ready))
	b.WriteString(fmt.Sprintf("Width:    %.1f mm\n", s.WidthMM()))
	b.WriteString(fmt.Sprintf("Force:    %d\n", s.Force))
	b.WriteString(fmt.Sprintf("Diameter: %.1f mm\n", s.DiameterMM()))
	b.WriteString(fmt.Sprintf("Grip:     %s\n", s.GripType()))

	return b.String()
}

// FormatDetailed returns a comprehensive formatted string with every snapshot field
func (s *Status) FormatDetailed() string {
	var b strings.Builder

	b.WriteString("=== Gripper Status ===\n")
	b.WriteString(fmt.Sprintf("Ready:       %v\n", s.Ready))
	b.WriteString(fmt.Sprintf("Open:        %v\n", s.Open))
	b.WriteString(fmt.Sprintf("Closed:      %v\n", s.Closed))
	b.WriteString(fmt.Sprintf("Gripped:     %v\n", s.Gripped))
	b.WriteString(fmt.Sprintf("Width:       %.1f mm (%d x 0.1mm)\n", s.WidthMM(), s.Width01MM))
	b.WriteString("\n")
	b.WriteString("=== Target Parameters ===\n")
	b.WriteString(fmt.Sprintf("Force:       %d (0-1000 = 0-100%%)\n", s.Force))
	b.WriteString(fmt.Sprintf("Diameter:    %.1f mm (%d x 0.1mm)\n", s.DiameterMM(), s.Diameter01MM))
	b.WriteString(fmt.Sprintf("Grip Type:   %s (%d)\n", s.GripType(), s.GripTypeRaw))

	return b.String()
}
