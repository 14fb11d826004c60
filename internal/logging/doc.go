// Package logging provides structured logging for the gripper control client.
//
// This package wraps zap logger with convenience functions for the logging
// patterns used throughout the client. Output goes to stderr so that log
// lines never corrupt the control panel TUI, and logging is silent unless
// explicitly enabled.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (API requests/responses, poll cycles)
//   - Info: Normal operations (command dispatches, session start/stop)
//   - Warn: Non-fatal issues (failed polls, rejected commands)
//   - Error: Fatal issues (startup failures)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Session started",
//	    zap.String("device", "192.168.1.40:8080"),
//	    zap.Duration("interval", 500*time.Millisecond),
//	)
//
// # Specialized Logging
//
// The package provides domain-specific logging functions:
//
//	logging.LogDispatch("close", 0, err)
//	logging.LogPoll(true, nil)
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Verbosity is controlled by the GRIPPER_LOG_LEVEL environment variable;
// when it is unset the logger is a no-op.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
