package icon

import (
	"context"
	"image"
	"image/color"
	"sync"

	"github.com/cristianoliveira/tabstrip/internal/logging"
	"github.com/cristianoliveira/tabstrip/internal/ports"
	"github.com/cristianoliveira/tabstrip/internal/tabs"
)

// defaultIconSize is used when the appearance does not name one.
const defaultIconSize = 48

// LoadState tracks where a tab sits in the resolution pipeline.
type LoadState string

const (
	LoadIdle    LoadState = "idle"
	LoadLoading LoadState = "loading"
	LoadLoaded  LoadState = "loaded"
	LoadError   LoadState = "error"
)

// Kind says which fallback stage produced an icon.
type Kind string

const (
	// KindRendered carries pixel variants from an icon source or a
	// bundled image.
	KindRendered Kind = "rendered"
	// KindSymbolic names a glyph the host resolves itself.
	KindSymbolic Kind = "symbolic"
	// KindPlaceholder is the terminal fallback.
	KindPlaceholder Kind = "placeholder"
)

// Icon is the outcome of resolving one tab. Rendered icons carry PNG
// bytes for both selection states; symbolic ones carry only the glyph
// name.
type Icon struct {
	Kind       Kind
	Selected   []byte
	Unselected []byte
	Glyph      string
}

// Appearance carries the render parameters shared by every tab of one
// configuration.
type Appearance struct {
	IconSize        int
	SelectedColor   color.Color
	UnselectedColor color.Color
}

// Coordinator resolves icons for a set of tabs. Each Configure call
// starts a new generation; results still in flight from an earlier
// generation are discarded when they land.
type Coordinator struct {
	mu     sync.Mutex
	gen    uint64
	states map[string]LoadState
	icons  map[string]Icon

	cache      *Cache
	symbols    ports.SymbolSource
	catalog    ports.AssetCatalog
	onResolved func(id string, icon Icon)
	logger     logging.Logger
}

// CoordinatorOptions wires the coordinator's collaborators. Cache is
// required; the rest default to inert implementations.
type CoordinatorOptions struct {
	Cache      *Cache
	Symbols    ports.SymbolSource
	Catalog    ports.AssetCatalog
	OnResolved func(id string, icon Icon)
	Logger     logging.Logger
}

// NewCoordinator creates a Coordinator. It panics when the cache is nil.
func NewCoordinator(opts CoordinatorOptions) *Coordinator {
	if opts.Cache == nil {
		panic("icon: Cache is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Noop()
	}
	return &Coordinator{
		states:     make(map[string]LoadState),
		icons:      make(map[string]Icon),
		cache:      opts.Cache,
		symbols:    opts.Symbols,
		catalog:    opts.Catalog,
		onResolved: opts.OnResolved,
		logger:     logger,
	}
}

// Configure replaces the tracked tab set and starts resolution for every
// tab. Resolution runs concurrently and is not awaited; outcomes arrive
// through the OnResolved callback.
func (c *Coordinator) Configure(list *tabs.List, appearance Appearance) {
	specs := list.Specs()

	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.states = make(map[string]LoadState, len(specs))
	c.icons = make(map[string]Icon, len(specs))
	for _, spec := range specs {
		c.states[spec.ID] = LoadIdle
	}
	c.mu.Unlock()

	for _, spec := range specs {
		go c.resolve(gen, spec, appearance)
	}
}

// LoadState reports the pipeline state for a tab id.
func (c *Coordinator) LoadState(id string) (LoadState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	state, ok := c.states[id]
	return state, ok
}

// Icon returns the resolved icon for a tab id, if resolution finished.
func (c *Coordinator) Icon(id string) (Icon, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	icon, ok := c.icons[id]
	return icon, ok
}

// resolve walks the fallback chain for one tab: icon source, then
// symbolic glyph, then bundled image, then placeholder. A failed icon
// source marks the tab errored even when a later stage produces an icon.
func (c *Coordinator) resolve(gen uint64, spec tabs.Spec, appearance Appearance) {
	if !c.enter(gen, spec.ID) {
		return
	}

	var sourceFailed bool
	if spec.Icon != nil {
		icon, err := c.resolveSource(*spec.Icon, appearance)
		if err == nil {
			c.complete(gen, spec.ID, icon, LoadLoaded)
			return
		}
		sourceFailed = true
		c.logger.Debug("icon source failed, falling back", "tab", spec.ID, "error", err)
	}

	finalState := LoadLoaded
	if sourceFailed {
		finalState = LoadError
	}

	if spec.SymbolicIcon != "" && c.symbols != nil && c.symbols.Has(spec.SymbolicIcon) {
		c.complete(gen, spec.ID, Icon{Kind: KindSymbolic, Glyph: spec.SymbolicIcon}, finalState)
		return
	}

	if spec.BundledImageRef != "" && c.catalog != nil {
		icon, err := c.resolveBundled(spec, appearance)
		if err == nil {
			c.complete(gen, spec.ID, icon, finalState)
			return
		}
		c.logger.Debug("bundled image failed, falling back", "tab", spec.ID, "ref", spec.BundledImageRef, "error", err)
	}

	c.complete(gen, spec.ID, Icon{Kind: KindPlaceholder}, finalState)
}

// resolveSource fetches and renders a declared icon source.
func (c *Coordinator) resolveSource(source tabs.IconSource, appearance Appearance) (Icon, error) {
	if err := source.Validate(); err != nil {
		return Icon{}, err
	}
	classified, err := Classify(source.Raw)
	if err != nil {
		return Icon{}, err
	}

	data := classified.Data
	if classified.Kind == tabs.SourceRemote {
		data, err = c.cache.Resolve(context.Background(), classified.Key)
		if err != nil {
			return Icon{}, err
		}
	}

	selected, unselected, err := renderVariantsFor(data, source, appearance)
	if err != nil {
		return Icon{}, err
	}
	return Icon{Kind: KindRendered, Selected: selected, Unselected: unselected}, nil
}

// resolveBundled renders a bundled catalog image, reusing the tab's
// declared shape and ring when it has an icon source.
func (c *Coordinator) resolveBundled(spec tabs.Spec, appearance Appearance) (Icon, error) {
	data, err := c.catalog.Asset(spec.BundledImageRef)
	if err != nil {
		return Icon{}, err
	}

	source := tabs.IconSource{Shape: tabs.ShapeSquare, Scale: tabs.ScaleCover}
	if spec.Icon != nil {
		source = *spec.Icon
	}
	selected, unselected, err := renderVariantsFor(data, source, appearance)
	if err != nil {
		return Icon{}, err
	}
	return Icon{Kind: KindRendered, Selected: selected, Unselected: unselected}, nil
}

func renderVariantsFor(data []byte, source tabs.IconSource, appearance Appearance) (selected, unselected []byte, err error) {
	size := appearance.IconSize
	if size <= 0 {
		size = defaultIconSize
	}
	opts := RenderOptions{
		Shape:  source.Shape,
		Scale:  source.Scale,
		Target: image.Pt(size, size),
		Ring:   source.Ring,
	}
	return RenderVariants(data, opts, appearance.SelectedColor, appearance.UnselectedColor)
}

// enter flips a tab to loading, unless the generation has moved on.
func (c *Coordinator) enter(gen uint64, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.states[id] = LoadLoading
	return true
}

// complete records the outcome and notifies the listener. The callback
// runs outside the lock.
func (c *Coordinator) complete(gen uint64, id string, icon Icon, state LoadState) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		c.logger.Debug("discarding stale icon result", "tab", id)
		return
	}
	c.states[id] = state
	c.icons[id] = icon
	onResolved := c.onResolved
	c.mu.Unlock()

	if onResolved != nil {
		onResolved(id, icon)
	}
}
