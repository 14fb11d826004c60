package discovery

import (
	"net"
	"testing"
	"time"

	"github.com/grandcat/zeroconf"
)

func TestScanner_parseServiceEntry(t *testing.T) {
	scanner := NewScanner()

	tests := []struct {
		name       string
		entry      *zeroconf.ServiceEntry
		wantNil    bool
		wantSerial string
		wantIP     string
		wantPort   int
	}{
		{
			name: "valid control service with IPv4",
			entry: &zeroconf.ServiceEntry{
				HostName: "3fg15-230041577.local.",
				Port:     8080,
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.40")},
				Text:     []string{"model=3FG15", "api=v1"},
			},
			wantNil:    false,
			wantSerial: "230041577",
			wantIP:     "192.168.1.40",
			wantPort:   8080,
		},
		{
			name: "valid service without trailing dot",
			entry: &zeroconf.ServiceEntry{
				HostName: "3fg15-123456789.local",
				Port:     8080,
				AddrIPv4: []net.IP{net.ParseIP("10.0.0.5")},
				Text:     []string{},
			},
			wantNil:    false,
			wantSerial: "123456789",
			wantIP:     "10.0.0.5",
			wantPort:   8080,
		},
		{
			name: "custom port",
			entry: &zeroconf.ServiceEntry{
				HostName: "3fg15-999999999.local",
				Port:     9090,
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.100")},
			},
			wantNil:    false,
			wantSerial: "999999999",
			wantIP:     "192.168.1.100",
			wantPort:   9090,
		},
		{
			name: "no port specified (should default to 8080)",
			entry: &zeroconf.ServiceEntry{
				HostName: "3fg15-111111111.local",
				Port:     0,
				AddrIPv4: []net.IP{net.ParseIP("172.16.0.1")},
			},
			wantNil:    false,
			wantSerial: "111111111",
			wantIP:     "172.16.0.1",
			wantPort:   8080,
		},
		{
			name: "unrelated device (wrong hostname pattern)",
			entry: &zeroconf.ServiceEntry{
				HostName: "someotherdevice.local",
				Port:     80,
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.1")},
			},
			wantNil: true,
		},
		{
			name: "empty hostname",
			entry: &zeroconf.ServiceEntry{
				HostName: "",
				Port:     8080,
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.1")},
			},
			wantNil: true,
		},
		{
			name: "no IP address",
			entry: &zeroconf.ServiceEntry{
				HostName: "3fg15-230041577.local",
				Port:     8080,
				AddrIPv4: []net.IP{},
				AddrIPv6: []net.IP{},
			},
			wantNil: true,
		},
		{
			name: "IPv6 only service",
			entry: &zeroconf.ServiceEntry{
				HostName: "3fg15-222222222.local",
				Port:     8080,
				AddrIPv6: []net.IP{net.ParseIP("fe80::1")},
			},
			wantNil:    false,
			wantSerial: "222222222",
			wantIP:     "fe80::1",
			wantPort:   8080,
		},
		{
			name: "both IPv4 and IPv6 (should prefer IPv4)",
			entry: &zeroconf.ServiceEntry{
				HostName: "3fg15-333333333.local",
				Port:     8080,
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.50")},
				AddrIPv6: []net.IP{net.ParseIP("fe80::2")},
			},
			wantNil:    false,
			wantSerial: "333333333",
			wantIP:     "192.168.1.50",
			wantPort:   8080,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device := scanner.parseServiceEntry(tt.entry)

			if tt.wantNil {
				if device != nil {
					t.Errorf("parseServiceEntry() = %+v, want nil", device)
				}
				return
			}

			if device == nil {
				t.Fatal("parseServiceEntry() = nil, want device")
			}
			if device.Serial != tt.wantSerial {
				t.Errorf("Serial = %v, want %v", device.Serial, tt.wantSerial)
			}
			if device.IP != tt.wantIP {
				t.Errorf("IP = %v, want %v", device.IP, tt.wantIP)
			}
			if device.Port != tt.wantPort {
				t.Errorf("Port = %v, want %v", device.Port, tt.wantPort)
			}
		})
	}
}

func TestScanner_parseServiceEntry_Metadata(t *testing.T) {
	scanner := NewScanner()

	entry := &zeroconf.ServiceEntry{
		HostName: "3fg15-230041577.local",
		Port:     8080,
		AddrIPv4: []net.IP{net.ParseIP("192.168.1.40")},
		Text:     []string{"model=3FG15", "api=v1", "flag"},
	}

	device := scanner.parseServiceEntry(entry)
	if device == nil {
		t.Fatal("parseServiceEntry() = nil, want device")
	}

	if device.GetMetadata("model") != "3FG15" {
		t.Errorf("model = %v, want 3FG15", device.GetMetadata("model"))
	}
	if device.GetMetadata("api") != "v1" {
		t.Errorf("api = %v, want v1", device.GetMetadata("api"))
	}

	// Valueless TXT keys are recorded with an empty value
	if _, ok := device.Metadata["flag"]; !ok {
		t.Error("valueless TXT key should be present in metadata")
	}
}

func TestNewScanner_Defaults(t *testing.T) {
	scanner := NewScanner()

	if scanner.Timeout != DefaultScanTimeout {
		t.Errorf("Timeout = %v, want %v", scanner.Timeout, DefaultScanTimeout)
	}
}

func TestQuickScanTimeout(t *testing.T) {
	// QuickScan uses a 3-second scanner; just verify the constructor math
	scanner := NewScanner()
	scanner.Timeout = 3 * time.Second

	if scanner.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", scanner.Timeout)
	}
}
