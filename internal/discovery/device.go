package discovery

import (
	"fmt"
	"time"
)

// Device represents a discovered gripper control service on the network
type Device struct {
	// Serial is the gripper serial number (e.g. "230041577")
	Serial string

	// Hostname is the mDNS hostname (e.g. "3fg15-230041577.local")
	Hostname string

	// IP is the IPv4 address (e.g. "192.168.1.40")
	IP string

	// Port is the HTTP port of the control service (typically 8080)
	Port int

	// Metadata contains additional mDNS TXT record data
	// Common fields: "model=3FG15", "api=v1"
	Metadata map[string]string

	// DiscoveredAt is when the service was discovered
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the device
func (d *Device) String() string {
	return fmt.Sprintf("Gripper %s (%s) at %s:%d", d.Serial, d.Hostname, d.IP, d.Port)
}

// BaseURL returns the HTTP base URL for the control service
func (d *Device) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", d.IP, d.Port)
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (d *Device) GetMetadata(key string) string {
	if d.Metadata == nil {
		return ""
	}
	return d.Metadata[key]
}
