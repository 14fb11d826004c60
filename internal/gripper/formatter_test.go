package gripper

import (
	"strings"
	"testing"
)

func TestStatus_MotionState(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   string
	}{
		{"gripped wins", Status{Gripped: true, Closed: true}, "GRIPPED"},
		{"open", Status{Open: true}, "OPEN"},
		{"closed", Status{Closed: true}, "CLOSED"},
		{"in between", Status{}, "MOVING"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.MotionState(); got != tt.want {
				t.Errorf("MotionState() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatus_Summary(t *testing.T) {
	status := Status{
		Ready:        true,
		Open:         true,
		Width01MM:    500,
		Force:        50,
		Diameter01MM: 100,
		GripTypeRaw:  1,
	}

	got := status.Summary()
	for _, want := range []string{"ready", "open", "50.0 mm", "force 50", "10.0 mm", "internal"} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary() = %q, missing %q", got, want)
		}
	}
}

func TestStatus_FormatCompact(t *testing.T) {
	status := Status{Ready: true, Closed: true, Width01MM: 342, Force: 500, Diameter01MM: 350}

	got := status.FormatCompact()
	for _, want := range []string{"CLOSED", "34.2 mm", "500", "35.0 mm", "external"} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatCompact() missing %q in:\n%s", want, got)
		}
	}
}

func TestStatus_FormatDetailed(t *testing.T) {
	status := Status{Ready: true, Gripped: true, Width01MM: 342, Force: 500, Diameter01MM: 350, GripTypeRaw: 1}

	got := status.FormatDetailed()
	for _, want := range []string{
		"Gripper Status",
		"Ready:       true",
		"Gripped:     true",
		"34.2 mm",
		"Target Parameters",
		"internal",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatDetailed() missing %q in:\n%s", want, got)
		}
	}
}
