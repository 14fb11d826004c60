package control

import (
	"context"
	"sync"
	"time"

	"github.com/RBEGamer/OnRobot3FG15/internal/gripper"
	"github.com/RBEGamer/OnRobot3FG15/internal/logging"
)

const (
	// DefaultPollInterval is the cadence of the timer-driven status poll
	DefaultPollInterval = 500 * time.Millisecond

	// DefaultSettleDelay is the wait between a command's acknowledgment and
	// the forced re-poll, giving the device time to reach its new state
	DefaultSettleDelay = 200 * time.Millisecond

	// commandQueueSize bounds the dispatch queue. Rapid button mashing
	// beyond this backs up the producer, not the poller.
	commandQueueSize = 32
)

// API is the slice of the gripper client the session drives. The session
// depends on command semantics only, not on HTTP details.
type API interface {
	FetchStatus(ctx context.Context) (*gripper.Status, error)
	Open(ctx context.Context) error
	Close(ctx context.Context) error
	Move(ctx context.Context) error
	Flex(ctx context.Context) error
	Stop(ctx context.Context) error
	SetForce(ctx context.Context, value int) error
	SetDiameter(ctx context.Context, value int) error
	SetGripType(ctx context.Context, value int) error
}

// Options configures a Session. Zero values fall back to defaults.
type Options struct {
	// PollInterval is the cadence of the timer-driven poll (default 500ms)
	PollInterval time.Duration

	// SettleDelay is the wait after a successful dispatch before the forced
	// re-poll (default 200ms)
	SettleDelay time.Duration
}

// Session runs the state-synchronization loop for one gripper device.
//
// Two independent triggers feed the display: a fixed-interval timer poll
// and a forced poll after every successful command dispatch. The triggers
// are deliberately not coordinated; when both are in flight, whichever
// response lands last wins. There are no sequence numbers, no staleness
// checks, no retries and no dispatch serialization.
type Session struct {
	api      API
	interval time.Duration
	settle   time.Duration

	mu     sync.Mutex
	state  DisplayState
	notify func(DisplayState)

	commands chan Command
}

// NewSession creates a session for the given API endpoint
func NewSession(api API, opts Options) *Session {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.SettleDelay < 0 {
		opts.SettleDelay = DefaultSettleDelay
	}
	if opts.SettleDelay == 0 {
		opts.SettleDelay = DefaultSettleDelay
	}
	return &Session{
		api:      api,
		interval: opts.PollInterval,
		settle:   opts.SettleDelay,
		commands: make(chan Command, commandQueueSize),
	}
}

// SetNotify registers a hook invoked with a state copy after every write.
// The hook runs on the writing goroutine; keep it cheap (e.g. a channel
// send into a UI program).
func (s *Session) SetNotify(fn func(DisplayState)) {
	s.mu.Lock()
	s.notify = fn
	s.mu.Unlock()
}

// Run drives the session until ctx is cancelled: it fires the timer-driven
// poll on every tick and consumes the command queue. Each poll and each
// dispatch runs as its own goroutine, so a hung request stalls only itself,
// never the timer.
func (s *Session) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Prime the display before the first tick
	go s.pollOnce(ctx, false)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			go s.pollOnce(ctx, false)
		case cmd := <-s.commands:
			go s.dispatch(ctx, cmd)
		}
	}
}

// Dispatch places a command event on the queue. Multiple rapid dispatches
// produce independent, unserialized dispatch+settle+poll sequences.
func (s *Session) Dispatch(cmd Command) {
	s.commands <- cmd
}

// PollOnce performs exactly one forced status poll
func (s *Session) PollOnce(ctx context.Context) {
	s.pollOnce(ctx, true)
}

// Snapshot returns a copy of the current display state
func (s *Session) Snapshot() DisplayState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// pollOnce fetches the status and projects the outcome onto the display.
// Success replaces the snapshot wholesale and clears the error line;
// failure leaves the stale snapshot in place and only sets the error line.
func (s *Session) pollOnce(ctx context.Context, forced bool) {
	status, err := s.api.FetchStatus(ctx)
	logging.LogPoll(forced, err)
	if err != nil {
		s.setError("Status error: " + gripper.ErrorMessage(err))
		return
	}
	s.setStatus(status)
}

// dispatch runs one command's dispatch+settle+re-poll sequence
func (s *Session) dispatch(ctx context.Context, cmd Command) {
	err := s.send(ctx, cmd)
	logging.LogDispatch(cmd.Action.String(), cmd.Value, err)
	if err != nil {
		// No settle, no re-poll; the stale snapshot stays on display
		s.setError(gripper.ErrorMessage(err))
		return
	}

	// The device acknowledges before it has physically settled
	select {
	case <-ctx.Done():
		return
	case <-time.After(s.settle):
	}

	// Exactly one forced poll; its success clears the error line
	s.pollOnce(ctx, true)
}

// send maps a command event to its API call
func (s *Session) send(ctx context.Context, cmd Command) error {
	switch cmd.Action {
	case ActionOpen:
		return s.api.Open(ctx)
	case ActionClose:
		return s.api.Close(ctx)
	case ActionMove:
		return s.api.Move(ctx)
	case ActionFlex:
		return s.api.Flex(ctx)
	case ActionStop:
		return s.api.Stop(ctx)
	case ActionSetForce:
		return s.api.SetForce(ctx, cmd.Value)
	case ActionSetDiameter:
		return s.api.SetDiameter(ctx, cmd.Value)
	case ActionSetGripType:
		return s.api.SetGripType(ctx, cmd.Value)
	default:
		return gripper.NewProtocolError("unknown command " + cmd.Action.String())
	}
}

// setStatus replaces the snapshot and clears the error line
func (s *Session) setStatus(status *gripper.Status) {
	s.mu.Lock()
	s.state.Status = status
	s.state.LastError = ""
	s.state.UpdatedAt = time.Now()
	snap := s.state.clone()
	fn := s.notify
	s.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
}

// setError sets the error line, leaving the snapshot untouched
func (s *Session) setError(msg string) {
	s.mu.Lock()
	s.state.LastError = msg
	s.state.UpdatedAt = time.Now()
	snap := s.state.clone()
	fn := s.notify
	s.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
}
