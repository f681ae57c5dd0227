package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/mkozlowski/cleansweep/internal/catalog"
	"github.com/mkozlowski/cleansweep/pkg/size"
)

// State is the engine's run lifecycle. Completed and Cancelled are retained
// states: results stay visible until the caller explicitly resets.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateCompleted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	}
	return "idle"
}

// RingCapacity bounds the cleaned-entry audit buffer.
const RingCapacity = 1000

// RunState aggregates one run's progress. Reset at the start of each run
// and frozen, not discarded, when the run finishes.
type RunState struct {
	IsRunning       bool
	IsPaused        bool
	StartedAt       time.Time
	TotalBytesFreed uint64
	TotalItemsFreed int
	Errors          []string
}

// Engine drives execution of selected items one at a time in selection
// order. It is single-threaded by design: callers obtain work via Next,
// perform the blocking action, and report back via Finish. Pause and
// cancellation take effect between items, never mid-action.
type Engine struct {
	state     State
	run       RunState
	entries   *Ring
	log       []string
	queue     []*Item
	next      int
	current   *Item
	cancelled bool

	privileged bool

	// elapsed accumulates across pause segments; segmentStart marks the
	// beginning of the live segment while unpaused.
	elapsed      time.Duration
	segmentStart time.Time

	now func() time.Time
}

// New creates an idle engine.
func New() *Engine {
	return &Engine{
		entries: NewRing(RingCapacity),
		now:     time.Now,
	}
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Run returns a copy of the current run state.
func (e *Engine) Run() RunState {
	return e.run
}

// Entries returns the audit records, oldest first.
func (e *Engine) Entries() []CleanedEntry {
	return e.entries.Entries()
}

// Log returns the operation log lines, oldest first.
func (e *Engine) Log() []string {
	return e.log
}

// Current returns the in-flight item, nil when none.
func (e *Engine) Current() *Item {
	return e.current
}

// Start begins a run over the given items in order. It fails with
// ErrInvalidState when a run is active and ErrNothingSelected when items
// is empty. Privileged reports whether the process holds elevated rights;
// items requiring them fail per-item with PermissionError instead of
// aborting the run.
func (e *Engine) Start(items []*Item, privileged bool) error {
	if e.state == StateRunning {
		return ErrInvalidState
	}
	if len(items) == 0 {
		return ErrNothingSelected
	}

	e.run = RunState{IsRunning: true, StartedAt: e.now()}
	e.entries.Clear()
	e.log = nil
	e.queue = items
	e.next = 0
	e.current = nil
	e.cancelled = false
	e.privileged = privileged
	e.elapsed = 0
	e.segmentStart = e.run.StartedAt
	e.state = StateRunning

	for _, it := range items {
		it.Status = StatusPending
		it.FailReason = ""
		it.BytesFreed = 0
		it.StartedAt = time.Time{}
		it.FinishedAt = time.Time{}
	}

	e.logf("Run started: %d cleaner(s) queued", len(items))
	return nil
}

// Next hands out the next item to execute, marking it Running. It returns
// nil while paused, while an item is in flight, or when the queue is
// drained. Items whose privilege requirement is not met fail immediately
// without invoking their action.
func (e *Engine) Next() *Item {
	if e.state != StateRunning || e.run.IsPaused || e.current != nil {
		return nil
	}

	for e.next < len(e.queue) {
		it := e.queue[e.next]
		e.next++

		if it.Catalog.RequiresPrivilege && !e.privileged {
			it.StartedAt = e.now()
			e.fail(it, &PermissionError{Item: it.Catalog.Name})
			continue
		}

		it.Status = StatusRunning
		it.StartedAt = e.now()
		e.current = it
		e.logf("Starting: %s", it.Catalog.Name)
		return it
	}

	e.maybeComplete()
	return nil
}

// Finish records the outcome of the in-flight item. A catalog action that
// found nothing to clean counts as success with zero bytes, not an error.
func (e *Engine) Finish(it *Item, result catalog.Result, err error) {
	if it != e.current {
		return
	}
	e.current = nil

	switch {
	case err == nil:
		e.succeed(it, result)
	case errors.Is(err, catalog.ErrNotApplicable):
		e.succeed(it, catalog.Result{})
		e.logf("Nothing to clean for %s", it.Catalog.Name)
	default:
		e.fail(it, &ActionError{Item: it.Catalog.Name, Err: err})
	}

	if e.cancelled {
		e.skipPending()
	}
	e.maybeComplete()
}

// Pause stops scheduling between items; the in-flight item is allowed to
// finish. Elapsed time accumulation stops while paused.
func (e *Engine) Pause() {
	if e.state != StateRunning || e.run.IsPaused {
		return
	}
	e.run.IsPaused = true
	e.elapsed += e.now().Sub(e.segmentStart)
	e.logf("Run paused")
}

// Resume restarts scheduling after a pause.
func (e *Engine) Resume() {
	if e.state != StateRunning || !e.run.IsPaused {
		return
	}
	e.run.IsPaused = false
	e.segmentStart = e.now()
	e.logf("Run resumed")
}

// Cancel stops scheduling further pending items. Non-preemptive: the
// in-flight item always finishes; remaining pending items are skipped.
func (e *Engine) Cancel() {
	if e.state != StateRunning {
		return
	}
	e.cancelled = true
	e.logf("Run cancelled: pending cleaners will be skipped")
	if e.current == nil {
		e.skipPending()
		e.maybeComplete()
	}
}

// Reset returns a finished engine to idle so a new run can be prepared.
// Results are dropped; callers keep the completed screen visible until the
// user asks for this explicitly.
func (e *Engine) Reset() {
	if e.state == StateRunning {
		return
	}
	e.state = StateIdle
	e.run = RunState{}
	e.queue = nil
	e.next = 0
	e.current = nil
	e.cancelled = false
	e.elapsed = 0
}

// Elapsed returns run wall time, excluding paused intervals. Frozen once
// the run finishes.
func (e *Engine) Elapsed() time.Duration {
	if e.state == StateRunning && !e.run.IsPaused {
		return e.elapsed + e.now().Sub(e.segmentStart)
	}
	return e.elapsed
}

// Summary counts items by terminal status for the current run.
func (e *Engine) Summary() (success, failed, skipped int) {
	for _, it := range e.queue {
		switch it.Status {
		case StatusSuccess:
			success++
		case StatusFailed:
			failed++
		case StatusSkipped:
			skipped++
		}
	}
	return success, failed, skipped
}

func (e *Engine) succeed(it *Item, result catalog.Result) {
	it.Status = StatusSuccess
	it.BytesFreed = result.BytesFreed
	it.FinishedAt = e.now()
	e.run.TotalBytesFreed += result.BytesFreed

	entries := result.Entries
	if len(entries) == 0 && result.BytesFreed > 0 {
		// Action freed space without enumerating paths; keep one summary
		// record so the audit view still accounts for it.
		entries = []catalog.Entry{{
			Path: fmt.Sprintf("%s (cleaned files)", it.Catalog.Name),
			Size: result.BytesFreed,
			Kind: it.Catalog.Kind,
		}}
	}
	for _, entry := range entries {
		e.entries.Append(CleanedEntry{
			Path:      entry.Path,
			Size:      entry.Size,
			Category:  it.Category,
			Cleaner:   it.Catalog.Name,
			Kind:      entry.Kind,
			Timestamp: e.now(),
		})
		e.run.TotalItemsFreed++
	}

	e.logf("Completed %s: %s freed", it.Catalog.Name, size.FormatSize(result.BytesFreed))
}

func (e *Engine) fail(it *Item, err error) {
	it.Status = StatusFailed
	it.FailReason = err.Error()
	it.FinishedAt = e.now()
	e.run.Errors = append(e.run.Errors, err.Error())
	e.logf("Failed %s: %v", it.Catalog.Name, err)
}

func (e *Engine) skipPending() {
	for e.next < len(e.queue) {
		it := e.queue[e.next]
		e.next++
		if it.Status == StatusPending {
			it.Status = StatusSkipped
			it.FinishedAt = e.now()
			e.logf("Skipped %s", it.Catalog.Name)
		}
	}
}

// maybeComplete freezes the run once no item is pending or running.
// Completion is a retained state: results stay visible until Reset.
func (e *Engine) maybeComplete() {
	if e.state != StateRunning || e.current != nil || e.next < len(e.queue) {
		return
	}

	e.run.IsRunning = false
	if !e.run.IsPaused {
		e.elapsed += e.now().Sub(e.segmentStart)
	}
	e.run.IsPaused = false

	if e.cancelled {
		e.state = StateCancelled
	} else {
		e.state = StateCompleted
	}

	success, failed, skipped := e.Summary()
	e.logf("Run %s: %d ok, %d failed, %d skipped, %s freed",
		e.state, success, failed, skipped, size.FormatSize(e.run.TotalBytesFreed))
}

func (e *Engine) logf(format string, args ...any) {
	e.log = append(e.log, fmt.Sprintf(format, args...))
}
