// Package strip assembles the overlay facade the host talks to: it
// validates configurations, marshals tab views and resolved icons to the
// toolkit, and routes gestures and programmatic calls through the
// interaction coordinator.
package strip

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/cristianoliveira/tabstrip/internal/icon"
	"github.com/cristianoliveira/tabstrip/internal/interaction"
	"github.com/cristianoliveira/tabstrip/internal/logging"
	"github.com/cristianoliveira/tabstrip/internal/ports"
	"github.com/cristianoliveira/tabstrip/internal/tabs"
)

// Options is one atomic configuration request. Nil optional fields keep
// their current values. Colors arrive parsed; string parsing and opacity
// clamping belong to the caller.
type Options struct {
	Items           []tabs.Spec
	InitialID       string
	Visible         *bool
	SelectedColor   color.Color
	UnselectedColor color.Color
	TitleOpacity    *float64
}

// Snapshot is a read-only view of the strip for hosts and the status
// panel.
type Snapshot struct {
	Items        []tabs.Spec
	Selection    interaction.SelectionState
	Visible      bool
	TitleOpacity float64
	Badges       map[string]tabs.Badge
	LoadStates   map[string]icon.LoadState
	IconKinds    map[string]icon.Kind
}

// Deps wires a Strip. Toolkit is required; a nil cache gets a default
// one, and nil optional collaborators stay inert.
type Deps struct {
	Toolkit  ports.Toolkit
	Cache    *icon.Cache
	Symbols  ports.SymbolSource
	Catalog  ports.AssetCatalog
	Sink     ports.EventSink
	Clock    ports.Clock
	IconSize int
	Logger   logging.Logger
}

// Strip owns the configured tab list, badges and visibility, and drives
// the icon and interaction coordinators.
type Strip struct {
	mu       sync.Mutex
	list     *tabs.List
	badges   map[string]tabs.Badge
	visible  bool
	opacity  float64
	selected color.Color
	dimmed   color.Color
	iconSize int

	toolkit  ports.Toolkit
	icons    *icon.Coordinator
	gestures *interaction.Coordinator
	logger   logging.Logger
}

// New creates an empty, visible Strip. It panics when the toolkit is
// missing.
func New(deps Deps) *Strip {
	if deps.Toolkit == nil {
		panic("strip: Toolkit is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = logging.Noop()
	}
	cache := deps.Cache
	if cache == nil {
		cache = icon.NewCache(icon.CacheOptions{Logger: logger})
	}

	s := &Strip{
		badges:   make(map[string]tabs.Badge),
		visible:  true,
		opacity:  1.0,
		iconSize: deps.IconSize,
		toolkit:  deps.Toolkit,
		logger:   logger,
	}
	s.icons = icon.NewCoordinator(icon.CoordinatorOptions{
		Cache:      cache,
		Symbols:    deps.Symbols,
		Catalog:    deps.Catalog,
		OnResolved: s.iconResolved,
		Logger:     logger,
	})
	s.gestures = interaction.NewCoordinator(interaction.CoordinatorOptions{
		Clock:       deps.Clock,
		Sink:        deps.Sink,
		Highlighter: deps.Toolkit,
		Logger:      logger,
	})
	return s
}

// Configure atomically replaces the tab set. Validation failures reject
// the whole call and leave the previous configuration untouched; on
// success badges reset to spec values, the selection mapping rebuilds
// and icon resolution restarts under a new generation.
func (s *Strip) Configure(opts Options) error {
	list, err := tabs.NewList(opts.Items)
	if err != nil {
		return fmt.Errorf("configuring tab strip: %w", err)
	}

	s.mu.Lock()
	s.list = list
	s.badges = make(map[string]tabs.Badge, list.Len())
	for _, spec := range list.Specs() {
		if !spec.Badge.IsZero() {
			s.badges[spec.ID] = spec.Badge
		}
	}
	if opts.Visible != nil {
		s.visible = *opts.Visible
	}
	if opts.TitleOpacity != nil {
		s.opacity = *opts.TitleOpacity
	}
	if opts.SelectedColor != nil {
		s.selected = opts.SelectedColor
	}
	if opts.UnselectedColor != nil {
		s.dimmed = opts.UnselectedColor
	}
	views := s.viewsLocked()
	visible := s.visible
	appearance := icon.Appearance{
		IconSize:        s.iconSize,
		SelectedColor:   s.selected,
		UnselectedColor: s.dimmed,
	}
	s.mu.Unlock()

	if err := s.toolkit.ApplyTabs(views); err != nil {
		s.logger.Warn("applying tab views failed", "error", err)
	}
	if err := s.toolkit.SetVisible(visible); err != nil {
		s.logger.Warn("applying visibility failed", "error", err)
	}
	s.gestures.Reconfigure(list, opts.InitialID)

	// Fallback glyphs are on screen already; resolved images swap in as
	// they complete.
	s.icons.Configure(list, appearance)
	return nil
}

// Select applies a programmatic selection. Unknown ids are a no-op and
// never emit an event.
func (s *Strip) Select(id string) bool {
	return s.gestures.Select(id)
}

// SetBadge updates one tab's badge. Unknown ids are a logged no-op; a
// negative count normalizes to no badge.
func (s *Strip) SetBadge(id string, badge tabs.Badge) {
	if badge.Kind == tabs.BadgeCount && badge.Count < 0 {
		badge = tabs.NoBadge()
	}

	s.mu.Lock()
	index, ok := s.list.IndexOf(id)
	if !ok {
		s.mu.Unlock()
		s.logger.Debug("ignoring badge for unknown tab", "tab", id)
		return
	}
	if badge.IsZero() {
		delete(s.badges, id)
	} else {
		s.badges[id] = badge
	}
	s.mu.Unlock()

	if err := s.toolkit.SetBadge(index, badge.String()); err != nil {
		s.logger.Warn("applying badge failed", "tab", id, "error", err)
	}
}

// Show makes the overlay visible.
func (s *Strip) Show() {
	s.setVisible(true)
}

// Hide conceals the overlay without dropping any state.
func (s *Strip) Hide() {
	s.setVisible(false)
}

func (s *Strip) setVisible(visible bool) {
	s.mu.Lock()
	s.visible = visible
	s.mu.Unlock()

	if err := s.toolkit.SetVisible(visible); err != nil {
		s.logger.Warn("applying visibility failed", "error", err)
	}
}

// SafeAreaInsets reports the host's safe-area insets, clamped to
// non-negative values.
func (s *Strip) SafeAreaInsets() (tabs.Insets, error) {
	insets, err := s.toolkit.SafeAreaInsets()
	if err != nil {
		return tabs.Insets{}, fmt.Errorf("reading safe-area insets: %w", err)
	}
	return insets.Clamped(), nil
}

// PressDown forwards a press on the tab at index to the gesture machine.
func (s *Strip) PressDown(index int) {
	s.gestures.PressDown(index)
}

// Release ends the active gesture; before the hold threshold it commits
// a tap.
func (s *Strip) Release() {
	s.gestures.Release()
}

// CancelGesture aborts the active gesture without emitting.
func (s *Strip) CancelGesture() {
	s.gestures.Cancel()
}

// NativeSelectionChanged feeds the toolkit's own selection signal
// through the suppression logic. It reports whether the signal was
// swallowed.
func (s *Strip) NativeSelectionChanged(id string) bool {
	return s.gestures.NativeSelectionChanged(id)
}

// Selection returns the current selection state.
func (s *Strip) Selection() interaction.SelectionState {
	return s.gestures.Selection()
}

// LoadState reports the icon pipeline state for one tab.
func (s *Strip) LoadState(id string) (icon.LoadState, bool) {
	return s.icons.LoadState(id)
}

// Snapshot captures the current strip for read-only consumers.
func (s *Strip) Snapshot() Snapshot {
	s.mu.Lock()
	items := s.list.Specs()
	snapshot := Snapshot{
		Items:        items,
		Visible:      s.visible,
		TitleOpacity: s.opacity,
		Badges:       make(map[string]tabs.Badge, len(s.badges)),
		LoadStates:   make(map[string]icon.LoadState, len(items)),
		IconKinds:    make(map[string]icon.Kind, len(items)),
	}
	for id, badge := range s.badges {
		snapshot.Badges[id] = badge
	}
	s.mu.Unlock()

	snapshot.Selection = s.gestures.Selection()
	for _, spec := range items {
		if state, ok := s.icons.LoadState(spec.ID); ok {
			snapshot.LoadStates[spec.ID] = state
		}
		if resolved, ok := s.icons.Icon(spec.ID); ok {
			snapshot.IconKinds[spec.ID] = resolved.Kind
		}
	}
	return snapshot
}

// iconResolved marshals a finished resolution onto the toolkit.
func (s *Strip) iconResolved(id string, resolved icon.Icon) {
	s.mu.Lock()
	index, ok := s.list.IndexOf(id)
	s.mu.Unlock()
	if !ok {
		return
	}

	switch resolved.Kind {
	case icon.KindRendered:
		if err := s.toolkit.SetIconImage(index, resolved.Selected, resolved.Unselected); err != nil {
			s.logger.Warn("applying icon image failed", "tab", id, "error", err)
		}
	case icon.KindSymbolic:
		if err := s.toolkit.SetSymbolicIcon(index, resolved.Glyph); err != nil {
			s.logger.Warn("applying symbolic icon failed", "tab", id, "error", err)
		}
	default:
		if err := s.toolkit.SetSymbolicIcon(index, ""); err != nil {
			s.logger.Warn("applying placeholder icon failed", "tab", id, "error", err)
		}
	}
}

// viewsLocked builds the toolkit views for the current list. Callers
// must hold s.mu.
func (s *Strip) viewsLocked() []ports.TabView {
	views := make([]ports.TabView, 0, s.list.Len())
	for _, spec := range s.list.Specs() {
		badge := ""
		if b, ok := s.badges[spec.ID]; ok {
			badge = b.String()
		}
		views = append(views, ports.TabView{
			ID:    spec.ID,
			Title: spec.Title,
			Glyph: spec.SymbolicIcon,
			Badge: badge,
		})
	}
	return views
}
