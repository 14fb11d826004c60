// Package gripper implements the JSON/HTTP client for the 3FG15 gripper
// control service.
//
// The control service exposes the gripper under /api/*: a status endpoint
// returning the full device snapshot, five actuation endpoints
// (open, close, move, flex, stop) and three parameter endpoints
// (set_force, set_diameter, set_griptype).
//
// # Failure Convention
//
// Every endpoint signals failure in one of two ways:
//   - an HTTP status outside the 2xx range, or
//   - a JSON body whose "ok" field is missing or false.
//
// The error text is taken from the body's "error" field when present,
// otherwise from the HTTP status line. Responses that are not valid JSON
// are treated as an empty object; the HTTP status alone then decides the
// outcome.
//
// # Usage Example
//
//	client := gripper.NewClient("192.168.1.40", 8080)
//
//	status, err := client.FetchStatus(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("width: %.1f mm\n", status.WidthMM())
//
//	if err := client.SetForce(ctx, 500); err != nil {
//	    log.Fatal(err)
//	}
//	if err := client.Close(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// Client is stateless apart from its configuration and is safe for
// concurrent use.
package gripper
