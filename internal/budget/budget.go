// Package budget enforces the per-run resource ceilings. Checks are
// cooperative: the analysis loop calls Check between document and
// section level steps rather than being preempted.
package budget

import (
	"fmt"
	"runtime"
	"time"

	"github.com/custodia-labs/docrank-cli/internal/core/domain"
)

// Tracker watches one analysis run against a wall-clock budget and a
// heap allocation ceiling. The zero value is not usable; construct
// with New.
type Tracker struct {
	start     time.Time
	wallClock time.Duration
	memBytes  uint64

	now      func() time.Time
	memInUse func() uint64
}

// New starts a tracker for a run beginning now. A non-positive
// wallClock or zero memBytes disables the respective check.
func New(wallClock time.Duration, memBytes uint64) *Tracker {
	t := &Tracker{
		wallClock: wallClock,
		memBytes:  memBytes,
		now:       time.Now,
		memInUse:  heapInUse,
	}
	t.start = t.now()
	return t
}

// heapInUse reads the current heap allocation from the runtime.
func heapInUse() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

// Check returns an error wrapping domain.ErrBudgetExceeded when either
// ceiling has been crossed. The caller aborts the run; nothing is
// retried.
func (t *Tracker) Check() error {
	if t.wallClock > 0 {
		if elapsed := t.Elapsed(); elapsed > t.wallClock {
			return fmt.Errorf("%w: wall clock %s over budget %s",
				domain.ErrBudgetExceeded, elapsed.Round(time.Millisecond), t.wallClock)
		}
	}
	if t.memBytes > 0 {
		if used := t.memInUse(); used > t.memBytes {
			return fmt.Errorf("%w: memory %d bytes over budget %d",
				domain.ErrBudgetExceeded, used, t.memBytes)
		}
	}
	return nil
}

// Elapsed returns the wall-clock time since the tracker was started.
func (t *Tracker) Elapsed() time.Duration {
	return t.now().Sub(t.start)
}

// WithinTime reports whether the run is still inside its wall-clock
// budget.
func (t *Tracker) WithinTime() bool {
	return t.wallClock <= 0 || t.Elapsed() <= t.wallClock
}

// WithinMemory reports whether the run is still inside its memory
// ceiling.
func (t *Tracker) WithinMemory() bool {
	return t.memBytes == 0 || t.memInUse() <= t.memBytes
}
