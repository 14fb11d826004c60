package gripper

import "fmt"

// GripType selects between the two gripping directions of the 3FG15.
type GripType int

const (
	// GripExternal grips from the outside of the workpiece (fingers close onto it)
	GripExternal GripType = 0

	// GripInternal grips from the inside of the workpiece (fingers open into it)
	GripInternal GripType = 1
)

// String returns the lowercase name used on the CLI and in config files
func (g GripType) String() string {
	switch g {
	case GripExternal:
		return "external"
	case GripInternal:
		return "internal"
	default:
		return fmt.Sprintf("griptype(%d)", int(g))
	}
}

// ParseGripType converts a CLI/config string into a GripType
func ParseGripType(s string) (GripType, error) {
	switch s {
	case "external":
		return GripExternal, nil
	case "internal":
		return GripInternal, nil
	default:
		return GripExternal, fmt.Errorf("invalid grip type %q (want external or internal)", s)
	}
}

// Status is one complete snapshot of the gripper's observable state, as
// returned by GET /api/status. A snapshot always replaces the previous one
// wholesale; fields are never merged across polls.
//
// Width and diameter are reported in 0.1 mm units, matching the device's
// register resolution.
type Status struct {
	// Ready indicates the gripper has calibrated and accepts commands
	Ready bool `json:"ready"`

	// Open indicates the fingers are at the fully open position
	Open bool `json:"open"`

	// Closed indicates the fingers are at the fully closed position.
	// At most one of Open/Closed is true; the device enforces this.
	Closed bool `json:"closed"`

	// Gripped indicates an object is detected between the fingers
	Gripped bool `json:"gripped"`

	// Width01MM is the current finger width in 0.1 mm units
	Width01MM int `json:"width_01mm"`

	// Force is the target grip force (0-1000 = 0-100%)
	Force int `json:"force"`

	// Diameter01MM is the target diameter in 0.1 mm units
	Diameter01MM int `json:"diameter_01mm"`

	// GripTypeRaw is the configured grip type (0=external, 1=internal)
	GripTypeRaw int `json:"grip_type"`
}

// WidthMM returns the current finger width in millimeters
func (s *Status) WidthMM() float64 {
	return float64(s.Width01MM) / 10.0
}

// DiameterMM returns the target diameter in millimeters
func (s *Status) DiameterMM() float64 {
	return float64(s.Diameter01MM) / 10.0
}

// GripType returns the configured grip type as an enum
func (s *Status) GripType() GripType {
	return GripType(s.GripTypeRaw)
}
