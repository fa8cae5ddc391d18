package interaction

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/tabstrip/internal/ports"
	"github.com/cristianoliveira/tabstrip/internal/tabs"
)

// fakeClock drives hold timers deterministically from the test.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	clock    *fakeClock
	deadline time.Time
	fn       func()
	stopped  bool
	fired    bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) AfterFunc(d time.Duration, fn func()) ports.Timer {
	f.mu.Lock()
	defer f.mu.Unlock()
	timer := &fakeTimer{clock: f, deadline: f.now.Add(d), fn: fn}
	f.timers = append(f.timers, timer)
	return timer
}

// Advance moves the clock and fires any due timers synchronously.
func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	var due []*fakeTimer
	for _, timer := range f.timers {
		if !timer.stopped && !timer.fired && !f.now.Before(timer.deadline) {
			timer.fired = true
			due = append(due, timer)
		}
	}
	f.mu.Unlock()

	for _, timer := range due {
		timer.fn()
	}
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

type recordingSink struct {
	mu     sync.Mutex
	events []tabs.InteractionEvent
}

func (r *recordingSink) TabSelected(event tabs.InteractionEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingSink) all() []tabs.InteractionEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]tabs.InteractionEvent(nil), r.events...)
}

type recordingHighlighter struct {
	mu     sync.Mutex
	sets   []int
	clears int
}

func (r *recordingHighlighter) SetHighlight(index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets = append(r.sets, index)
	return nil
}

func (r *recordingHighlighter) ClearHighlight() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clears++
	return nil
}

func (r *recordingHighlighter) lastSet() (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sets) == 0 {
		return 0, false
	}
	return r.sets[len(r.sets)-1], true
}

func threeTabs(t *testing.T) *tabs.List {
	t.Helper()
	list, err := tabs.NewList([]tabs.Spec{
		{ID: "a", SymbolicIcon: "house"},
		{ID: "b", SymbolicIcon: "star"},
		{ID: "c", SymbolicIcon: "gear"},
	})
	require.NoError(t, err)
	return list
}

type fixture struct {
	clock       *fakeClock
	sink        *recordingSink
	highlighter *recordingHighlighter
	coord       *Coordinator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		clock:       newFakeClock(),
		sink:        &recordingSink{},
		highlighter: &recordingHighlighter{},
	}
	f.coord = NewCoordinator(CoordinatorOptions{
		Clock:       f.clock,
		Sink:        f.sink,
		Highlighter: f.highlighter,
	})
	f.coord.Reconfigure(threeTabs(t), "a")
	return f
}

func TestCoordinator_TapCommitsSelection(t *testing.T) {
	f := newFixture(t)

	f.coord.PressDown(1)
	f.clock.Advance(200 * time.Millisecond)
	f.coord.Release()

	events := f.sink.all()
	require.Len(t, events, 1)
	assert.Equal(t, tabs.InteractionEvent{TabID: "b", Kind: tabs.InteractionTap}, events[0])

	state := f.coord.Selection()
	assert.Equal(t, "b", state.SelectedID)
	assert.Equal(t, "a", state.PreviousID)

	index, ok := f.highlighter.lastSet()
	require.True(t, ok)
	assert.Equal(t, 1, index)
}

func TestCoordinator_TapTimerDoesNotFireLate(t *testing.T) {
	f := newFixture(t)

	f.coord.PressDown(1)
	f.clock.Advance(200 * time.Millisecond)
	f.coord.Release()
	f.clock.Advance(time.Second)

	events := f.sink.all()
	require.Len(t, events, 1, "The hold timer should be stopped by the tap")
	assert.Equal(t, tabs.InteractionTap, events[0].Kind)
	assert.False(t, f.coord.NativeSelectionChanged("b"), "A tap should not arm suppression")
}

func TestCoordinator_LongPressKeepsSelection(t *testing.T) {
	f := newFixture(t)

	f.coord.PressDown(2)
	f.clock.Advance(holdDelay)

	events := f.sink.all()
	require.Len(t, events, 1)
	assert.Equal(t, tabs.InteractionEvent{TabID: "c", Kind: tabs.InteractionLongPress}, events[0])

	state := f.coord.Selection()
	assert.Equal(t, "a", state.SelectedID, "Long-press should not move the selection")
	assert.Empty(t, state.PreviousID)

	index, ok := f.highlighter.lastSet()
	require.True(t, ok)
	assert.Equal(t, 0, index, "Highlight should be restored to the selected tab")
}

func TestCoordinator_LongPressSuppressesNextNativeSelection(t *testing.T) {
	f := newFixture(t)

	f.coord.PressDown(2)
	f.clock.Advance(holdDelay)
	f.coord.Release()

	require.Len(t, f.sink.all(), 1, "Release after a long-press should not emit again")

	assert.True(t, f.coord.NativeSelectionChanged("c"), "The first native signal should be suppressed")
	assert.False(t, f.coord.NativeSelectionChanged("c"), "The suppression flag is one-shot")

	state := f.coord.Selection()
	assert.Equal(t, "a", state.SelectedID)
}

func TestCoordinator_NativeSelectionWithoutGesture(t *testing.T) {
	f := newFixture(t)

	assert.False(t, f.coord.NativeSelectionChanged("b"))
	assert.Equal(t, "a", f.coord.Selection().SelectedID)
	assert.Empty(t, f.sink.all())
}

func TestCoordinator_CancelBeforeThreshold(t *testing.T) {
	f := newFixture(t)

	f.coord.PressDown(1)
	f.clock.Advance(100 * time.Millisecond)
	f.coord.Cancel()
	f.clock.Advance(time.Second)

	assert.Empty(t, f.sink.all(), "A canceled gesture should not emit")
	assert.Equal(t, "a", f.coord.Selection().SelectedID)
}

func TestCoordinator_CancelClearsSuppression(t *testing.T) {
	f := newFixture(t)

	f.coord.PressDown(2)
	f.clock.Advance(holdDelay)
	require.Len(t, f.sink.all(), 1)

	f.coord.Cancel()
	assert.False(t, f.coord.NativeSelectionChanged("c"), "Cancel should clear the suppression flag")
}

func TestCoordinator_Select(t *testing.T) {
	f := newFixture(t)

	require.True(t, f.coord.Select("b"))
	state := f.coord.Selection()
	assert.Equal(t, "b", state.SelectedID)
	assert.Equal(t, "a", state.PreviousID)
	assert.Empty(t, f.sink.all(), "Programmatic selection should not emit an event")

	index, ok := f.highlighter.lastSet()
	require.True(t, ok)
	assert.Equal(t, 1, index)
}

func TestCoordinator_SelectUnknownIDIsNoOp(t *testing.T) {
	f := newFixture(t)
	before := f.coord.Selection()

	assert.False(t, f.coord.Select("missing-id"))
	assert.Equal(t, before, f.coord.Selection())
	assert.Empty(t, f.sink.all())
}

func TestCoordinator_PressOutsideRangeIsIgnored(t *testing.T) {
	f := newFixture(t)

	f.coord.PressDown(9)
	f.clock.Advance(time.Second)
	f.coord.Release()

	assert.Empty(t, f.sink.all())
	assert.Equal(t, "a", f.coord.Selection().SelectedID)
}

func TestCoordinator_Reconfigure(t *testing.T) {
	tests := []struct {
		name         string
		prepare      func(t *testing.T, f *fixture)
		list         func(t *testing.T) *tabs.List
		initialID    string
		wantSelected string
	}{
		{
			name:         "initial id wins",
			list:         threeTabs,
			initialID:    "c",
			wantSelected: "c",
		},
		{
			name: "surviving selection is kept",
			prepare: func(t *testing.T, f *fixture) {
				require.True(t, f.coord.Select("b"))
			},
			list:         threeTabs,
			wantSelected: "b",
		},
		{
			name: "vanished selection falls back to first tab",
			prepare: func(t *testing.T, f *fixture) {
				require.True(t, f.coord.Select("b"))
			},
			list: func(t *testing.T) *tabs.List {
				list, err := tabs.NewList([]tabs.Spec{
					{ID: "x", SymbolicIcon: "folder"},
					{ID: "y", SymbolicIcon: "bell"},
				})
				require.NoError(t, err)
				return list
			},
			wantSelected: "x",
		},
		{
			name:         "unknown initial id falls back to first tab",
			list:         threeTabs,
			initialID:    "missing",
			wantSelected: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.prepare != nil {
				tt.prepare(t, f)
			}

			state := f.coord.Reconfigure(tt.list(t), tt.initialID)

			assert.Equal(t, tt.wantSelected, state.SelectedID)
			assert.Empty(t, state.PreviousID, "Reconfiguration should reset the previous id")
			assert.Equal(t, state, f.coord.Selection())
		})
	}
}

func TestCoordinator_ReconfigureWithNilListClearsSelection(t *testing.T) {
	f := newFixture(t)

	state := f.coord.Reconfigure(nil, "")

	assert.Empty(t, state.SelectedID)
	assert.Empty(t, state.PreviousID)
	f.highlighter.mu.Lock()
	clears := f.highlighter.clears
	f.highlighter.mu.Unlock()
	assert.Positive(t, clears, "Clearing the list should clear the highlight")
}

func TestCoordinator_ReconfigureAbandonsActiveGesture(t *testing.T) {
	f := newFixture(t)

	f.coord.PressDown(1)
	f.coord.Reconfigure(threeTabs(t), "a")
	f.clock.Advance(time.Second)

	assert.Empty(t, f.sink.all(), "A gesture interrupted by reconfiguration should not emit")
}
