// Package discovery provides mDNS-based discovery of gripper control services.
//
// This package implements multicast DNS (mDNS) service discovery to locate
// 3FG15 control services on the local network. The control service advertises
// itself using the "_http._tcp" service type under a "3fg15-{serial}.local"
// hostname.
//
// # Discovery Process
//
// The discovery process works as follows:
//  1. Broadcasts mDNS queries on the local network
//  2. Listens for service advertisements
//  3. Filters responses by the control service hostname pattern
//  4. Collects service information (hostname, IP, port, serial, TXT metadata)
//  5. Returns a list of discovered services after the timeout period
//
// # Usage Example
//
//	devices, err := discovery.ScanForDevices(10 * time.Second)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, device := range devices {
//	    fmt.Printf("Found: %s at %s (Serial: %s)\n",
//	        device.Hostname, device.IP, device.Serial)
//	}
//
// # Network Requirements
//
//   - Requires multicast support on the network interface
//   - The control service must be on the same local network segment
//   - Firewall must allow mDNS (UDP port 5353)
//
// Discovery is optional: every command also accepts an explicit --device
// address, which bypasses this package entirely.
//
// # Thread Safety
//
// This package is safe for concurrent use. Multiple discovery sessions can
// run simultaneously without interference.
package discovery
