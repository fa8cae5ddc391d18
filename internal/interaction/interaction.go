// Package interaction classifies tab gestures and owns the selection
// state for the overlay. A press either commits as a tap or, after the
// hold threshold, becomes a long-press that must not move the selection.
package interaction

import (
	"sync"
	"time"

	"github.com/cristianoliveira/tabstrip/internal/logging"
	"github.com/cristianoliveira/tabstrip/internal/ports"
	"github.com/cristianoliveira/tabstrip/internal/tabs"
)

// holdDelay is how long a press must be held before it counts as a
// long-press instead of a tap.
const holdDelay = 450 * time.Millisecond

// SelectionState is the single source of truth for which tab is
// selected. Empty ids mean no selection.
type SelectionState struct {
	SelectedID string
	PreviousID string
}

// Highlighter moves the widget's visual selection. ports.Toolkit
// satisfies it.
type Highlighter interface {
	SetHighlight(index int) error
	ClearHighlight() error
}

type gesturePhase int

const (
	phaseIdle gesturePhase = iota
	phasePossibleLongPress
	phaseLongPress
)

// Coordinator runs the gesture state machine and keeps selection
// bookkeeping consistent across taps, long-presses, programmatic
// selection and list reconfiguration. Events and highlight updates are
// performed outside the internal lock.
type Coordinator struct {
	mu           sync.Mutex
	list         *tabs.List
	selected     string
	previous     string
	phase        gesturePhase
	candidate    int
	seq          uint64
	timer        ports.Timer
	suppressNext bool

	clock       ports.Clock
	sink        ports.EventSink
	highlighter Highlighter
	logger      logging.Logger
}

// CoordinatorOptions wires the coordinator's collaborators. All fields
// are optional: the clock defaults to the system clock, and a nil sink
// or highlighter simply receives nothing.
type CoordinatorOptions struct {
	Clock       ports.Clock
	Sink        ports.EventSink
	Highlighter Highlighter
	Logger      logging.Logger
}

// NewCoordinator creates a Coordinator with no tabs and no selection.
func NewCoordinator(opts CoordinatorOptions) *Coordinator {
	clock := opts.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Noop()
	}
	return &Coordinator{
		clock:       clock,
		sink:        opts.Sink,
		highlighter: opts.Highlighter,
		logger:      logger,
	}
}

// Selection returns the current selection state.
func (c *Coordinator) Selection() SelectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return SelectionState{SelectedID: c.selected, PreviousID: c.previous}
}

// Reconfigure replaces the tab list and recomputes the selection:
// initialID when it names a tab, otherwise the previously selected tab
// when it survived, otherwise the first tab, otherwise none. The
// previous-id always resets. Any active gesture and pending suppression
// are abandoned.
func (c *Coordinator) Reconfigure(list *tabs.List, initialID string) SelectionState {
	c.mu.Lock()
	c.stopTimerLocked()
	c.phase = phaseIdle
	c.suppressNext = false
	c.list = list

	selected := ""
	if initialID != "" {
		if _, ok := list.IndexOf(initialID); ok {
			selected = initialID
		}
	}
	if selected == "" && c.selected != "" {
		if _, ok := list.IndexOf(c.selected); ok {
			selected = c.selected
		}
	}
	if selected == "" && list.Len() > 0 {
		if spec, ok := list.At(0); ok {
			selected = spec.ID
		}
	}
	c.selected = selected
	c.previous = ""
	state := SelectionState{SelectedID: c.selected}
	c.mu.Unlock()

	c.applyHighlight(selected)
	return state
}

// Select applies a programmatic selection. Unknown ids are a no-op and
// no event is emitted either way; events are reserved for user gestures.
func (c *Coordinator) Select(id string) bool {
	c.mu.Lock()
	if _, ok := c.list.IndexOf(id); !ok {
		c.mu.Unlock()
		c.logger.Debug("ignoring select for unknown tab", "tab", id)
		return false
	}
	c.previous = c.selected
	c.selected = id
	c.mu.Unlock()

	c.applyHighlight(id)
	return true
}

// PressDown arms the long-press timer for the tab at index. A press on
// an index outside the current list is ignored.
func (c *Coordinator) PressDown(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.list.At(index); !ok {
		c.logger.Debug("ignoring press outside tab range", "index", index)
		return
	}
	c.stopTimerLocked()
	c.seq++
	seq := c.seq
	c.candidate = index
	c.phase = phasePossibleLongPress
	c.timer = c.clock.AfterFunc(holdDelay, func() {
		c.holdElapsed(seq)
	})
}

// Release ends the active gesture. A release before the hold threshold
// commits the candidate tab as a tap; a release after a recognized
// long-press changes nothing further. The suppression flag armed by a
// long-press stays armed for the toolkit's trailing selection signal.
func (c *Coordinator) Release() {
	c.mu.Lock()
	switch c.phase {
	case phasePossibleLongPress:
		c.stopTimerLocked()
		c.phase = phaseIdle
		spec, ok := c.list.At(c.candidate)
		if !ok {
			c.mu.Unlock()
			return
		}
		c.previous = c.selected
		c.selected = spec.ID
		c.mu.Unlock()

		c.applyHighlight(spec.ID)
		c.emit(tabs.InteractionEvent{TabID: spec.ID, Kind: tabs.InteractionTap})
	case phaseLongPress:
		c.phase = phaseIdle
		c.mu.Unlock()
	default:
		c.mu.Unlock()
	}
}

// Cancel aborts the active gesture: the timer stops, the suppression
// flag clears and no event is emitted. The highlight snaps back to the
// selected tab.
func (c *Coordinator) Cancel() {
	c.mu.Lock()
	c.stopTimerLocked()
	c.phase = phaseIdle
	c.suppressNext = false
	selected := c.selected
	c.mu.Unlock()

	c.applyHighlight(selected)
}

// NativeSelectionChanged consumes the toolkit's own selection signal.
// It returns true when the signal was suppressed because a long-press
// just fired; the highlight is restored and the selection does not move.
// Unsuppressed signals return false and mutate nothing: selection
// changes only through Release, Select or Reconfigure.
func (c *Coordinator) NativeSelectionChanged(id string) bool {
	c.mu.Lock()
	if !c.suppressNext {
		c.mu.Unlock()
		return false
	}
	c.suppressNext = false
	selected := c.selected
	c.mu.Unlock()

	c.logger.Debug("suppressing native selection after long-press", "tab", id)
	c.applyHighlight(selected)
	return true
}

// holdElapsed fires when the press has been held past the threshold.
// The long-press arms the one-shot suppression flag, restores the
// highlight to the selected tab and emits without touching selection
// state. Stale timers from a superseded gesture do nothing.
func (c *Coordinator) holdElapsed(seq uint64) {
	c.mu.Lock()
	if seq != c.seq || c.phase != phasePossibleLongPress {
		c.mu.Unlock()
		return
	}
	c.phase = phaseLongPress
	c.suppressNext = true
	c.timer = nil
	spec, ok := c.list.At(c.candidate)
	selected := c.selected
	c.mu.Unlock()

	if !ok {
		return
	}
	c.applyHighlight(selected)
	c.emit(tabs.InteractionEvent{TabID: spec.ID, Kind: tabs.InteractionLongPress})
}

// stopTimerLocked stops a pending hold timer. Callers must hold c.mu.
func (c *Coordinator) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// applyHighlight points the widget highlight at the tab with the given
// id, or clears it when the id is empty or gone.
func (c *Coordinator) applyHighlight(id string) {
	if c.highlighter == nil {
		return
	}
	c.mu.Lock()
	index, ok := c.list.IndexOf(id)
	c.mu.Unlock()

	if id == "" || !ok {
		if err := c.highlighter.ClearHighlight(); err != nil {
			c.logger.Warn("clearing highlight failed", "error", err)
		}
		return
	}
	if err := c.highlighter.SetHighlight(index); err != nil {
		c.logger.Warn("setting highlight failed", "tab", id, "error", err)
	}
}

func (c *Coordinator) emit(event tabs.InteractionEvent) {
	if c.sink == nil {
		return
	}
	c.sink.TabSelected(event)
}
