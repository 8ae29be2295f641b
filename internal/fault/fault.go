// Package fault implements the process-wide fail-stop policy. The hosting
// runtime offers no safe unwinding path across the foreign boundary, so an
// internal-invariant violation must never propagate as a panic into caller
// code. Trap transitions the process into a terminal halt state instead:
// an observable hang is preferable to silent corruption, and partial results
// must never be returned after a fault.
package fault

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// State values. The state machine is Running -> Faulted, terminal and
// irreversible; there is exactly one fault state for the whole process.
const (
	StateRunning uint32 = iota
	StateFaulted
)

var (
	state atomic.Uint32

	trapMu sync.Mutex
	trapFn func(reason string) = spin
)

// State reports whether the process is Running or Faulted.
func State() uint32 {
	return state.Load()
}

// Trap records the fault and halts. The default halt is a tight spin loop
// that never returns control; it does not allocate and does not unwind.
func Trap(reason string) {
	state.Store(StateFaulted)
	trapMu.Lock()
	fn := trapFn
	trapMu.Unlock()
	fn(reason)
}

// Guard converts an escaped panic into a trap. It must be deferred at every
// exported entry point:
//
//	defer fault.Guard()
func Guard() {
	if r := recover(); r != nil {
		Trap(fmt.Sprintf("unhandled panic: %v", r))
	}
}

// spin is the terminal halt loop.
func spin(string) {
	for {
	}
}

// SetTrapForTesting replaces the halt routine and returns a restore
// function. For test harnesses only: it is the only way to observe the
// Running -> Faulted transition without hanging the test process.
func SetTrapForTesting(fn func(reason string)) (restore func()) {
	trapMu.Lock()
	prev := trapFn
	trapFn = fn
	trapMu.Unlock()
	return func() {
		trapMu.Lock()
		trapFn = prev
		trapMu.Unlock()
	}
}

// Reset returns the state machine to Running. For test harnesses only;
// production code has no transition out of Faulted.
func Reset() {
	state.Store(StateRunning)
}
