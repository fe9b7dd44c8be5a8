// SPDX-License-Identifier: EPL-2.0

package engine

import "sync"

// State of an engine lifecycle. The progression is strictly forward:
// Uninitialized -> Initialized -> ShutDown. A shut down engine cannot be
// initialized again.
type State int

const (
	Uninitialized State = iota
	Initialized
	ShutDown
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	case ShutDown:
		return "shut down"
	default:
		return "unknown"
	}
}

// StatusSuccess is the status code reported by successful lifecycle
// transitions, matching the sox convention of 0 for success.
const StatusSuccess = 0

// Lifecycle guards the tri-state engine lifetime. Transitions are explicit
// and caller managed; nothing is registered to run at process exit, so a
// caller that never shuts down simply leaks the engine until the process
// ends.
type Lifecycle struct {
	mu    sync.Mutex
	state State
}

func NewLifecycle() *Lifecycle {
	return &Lifecycle{}
}

// Initialize moves to Initialized. Calling it again while initialized is a
// no-op reporting success. Initializing after Shutdown fails with
// ErrShutDown.
func (l *Lifecycle) Initialize() (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == ShutDown {
		return 0, ErrShutDown
	}
	l.state = Initialized
	return StatusSuccess, nil
}

// Shutdown permanently retires an initialized engine. It is safe to call
// repeatedly; shutting down an engine that was never initialized reports
// success and leaves it usable.
func (l *Lifecycle) Shutdown() (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == Initialized {
		l.state = ShutDown
	}
	return StatusSuccess, nil
}

// State reports the current lifecycle phase.
func (l *Lifecycle) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.state
}
