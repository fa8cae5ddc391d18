// Package ports defines application boundary interfaces used by core services.
package ports

import (
	"time"

	"github.com/cristianoliveira/tabstrip/internal/tabs"
)

// Clock abstracts time reads and one-shot timer scheduling so gesture
// classification and cache expiry can be driven deterministically in tests.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a cancellable one-shot timer armed through a Clock.
type Timer interface {
	Stop() bool
}

// SystemClock is the Clock backed by the time package.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// AfterFunc arms a one-shot timer that runs fn on its own goroutine.
func (SystemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// TabView is the minimal per-tab display payload handed to the toolkit
// when a configuration is applied. Icon pixels follow asynchronously.
type TabView struct {
	ID    string
	Title string
	Glyph string
	Badge string
}

// Toolkit defines the widget operations the strip drives on the host.
type Toolkit interface {
	ApplyTabs(views []TabView) error
	SetHighlight(index int) error
	ClearHighlight() error
	SetBadge(index int, badge string) error
	SetVisible(visible bool) error
	SetIconImage(index int, selected, unselected []byte) error
	SetSymbolicIcon(index int, glyph string) error
	SafeAreaInsets() (tabs.Insets, error)
}

// EventSink receives user-originated selection events for the host bridge.
type EventSink interface {
	TabSelected(event tabs.InteractionEvent)
}

// AssetCatalog resolves bundled image references to their raw bytes.
type AssetCatalog interface {
	Asset(ref string) ([]byte, error)
}

// SymbolSource resolves symbolic icon names.
type SymbolSource interface {
	Has(name string) bool
	SVG(name string) ([]byte, error)
}
