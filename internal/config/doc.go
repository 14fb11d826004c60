// Package config loads the control panel configuration.
//
// Configuration lives in an optional YAML file:
//
//	device:
//	  host: 192.168.1.40
//	  port: 8080
//	poll:
//	  interval_ms: 500
//	  settle_ms: 200
//	defaults:
//	  force: 500
//	  diameter_01mm: 1000
//	  grip_type: external
//
// A missing file is not an error; every field has a built-in default.
// Durations are expressed in integer milliseconds in the file and exposed
// as time.Duration via PollInterval and SettleDelay.
package config
