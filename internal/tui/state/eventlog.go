package state

import (
	"sync"
	"time"

	"github.com/cristianoliveira/tabstrip/internal/tabs"
)

type eventRecord struct {
	at    time.Time
	event tabs.InteractionEvent
}

// eventLog is the demo's event sink: it keeps the most recent selection
// events for the events panel. Events arrive on the gesture goroutine,
// so access is guarded.
type eventLog struct {
	mu       sync.Mutex
	capacity int
	records  []eventRecord
}

func newEventLog(capacity int) *eventLog {
	return &eventLog{capacity: capacity}
}

// TabSelected implements ports.EventSink.
func (l *eventLog) TabSelected(event tabs.InteractionEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append(l.records, eventRecord{at: time.Now(), event: event})
	if len(l.records) > l.capacity {
		l.records = l.records[len(l.records)-l.capacity:]
	}
}

// Recent returns up to n records, oldest first.
func (l *eventLog) Recent(n int) []eventRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n > len(l.records) {
		n = len(l.records)
	}
	out := make([]eventRecord, n)
	copy(out, l.records[len(l.records)-n:])
	return out
}

// Len returns the number of retained records.
func (l *eventLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
