// Package tabstrip provides tabstrip library initialization and orchestration.
package tabstrip

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/cristianoliveira/tabstrip/internal/catalog"
	"github.com/cristianoliveira/tabstrip/internal/colors"
	"github.com/cristianoliveira/tabstrip/internal/config"
	"github.com/cristianoliveira/tabstrip/internal/errors"
	"github.com/cristianoliveira/tabstrip/internal/hooks"
	"github.com/cristianoliveira/tabstrip/internal/icon"
	"github.com/cristianoliveira/tabstrip/internal/logging"
	"github.com/cristianoliveira/tabstrip/internal/ports"
	"github.com/cristianoliveira/tabstrip/internal/strip"
	"github.com/cristianoliveira/tabstrip/internal/symbols"
	"github.com/cristianoliveira/tabstrip/internal/tabs"
)

// Theme color fallbacks when the configured value does not parse.
const (
	defaultSelectedColor   = "#3478f6"
	defaultUnselectedColor = "#8e8e93"
)

// reporter receives non-fatal runtime problems. Defaults to console
// output through the colors package.
var reporter errors.ErrorHandler = errors.NewDefaultCLIHandler()

// SetErrorHandler replaces the handler used for non-fatal runtime
// problems. The demo TUI installs its own handler so warnings land in
// the status line instead of stdout. Pass nil to restore the default.
func SetErrorHandler(handler errors.ErrorHandler) {
	if handler == nil {
		reporter = errors.NewDefaultCLIHandler()
		return
	}
	reporter = handler
}

// Init initializes all internal packages in the correct order.
// It loads configuration, sets up colors debugging, initializes file
// logging, and starts the hooks subsystem.
// Returns an error if any initialization step fails.
func Init() error {
	// Load configuration first
	config.Load()

	// Set debug and quiet modes based on configuration
	colors.SetDebug(config.GetBool("debug", false))
	colors.SetQuiet(config.GetBool("quiet", false))

	// Initialize file logging; a failed log file is not fatal
	if err := logging.InitGlobal(); err != nil {
		reporter.Warning(fmt.Sprintf("logging initialization failed: %v", err))
	}

	// Initialize hooks subsystem
	if err := hooks.Init(); err != nil {
		return fmt.Errorf("hooks initialization failed: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the library, cleaning up resources.
// It should be called before program exit.
func Shutdown() {
	hooks.Shutdown()
	if err := logging.ShutdownGlobal(); err != nil {
		reporter.Warning(fmt.Sprintf("logging shutdown failed: %v", err))
	}
}

// Deps carries the host-provided collaborators for New. Toolkit is
// required; Sink and Clock may be nil.
type Deps struct {
	Toolkit ports.Toolkit
	Sink    ports.EventSink
	Clock   ports.Clock
}

// New builds a strip wired from configuration: icon geometry and fetch
// timeout, the embedded symbol library, the bundled asset catalog with
// the user icon directory layered on top, and a sink that fires selection
// hook scripts before forwarding events to the host.
func New(deps Deps) (*strip.Strip, error) {
	if deps.Toolkit == nil {
		return nil, fmt.Errorf("tabstrip: toolkit is required")
	}
	config.Load()
	logger := logging.GetGlobal()

	cache := icon.NewCache(icon.CacheOptions{
		FetchTimeout: config.GetDuration("fetch_timeout", 30*time.Second),
		Logger:       logger,
	})

	iconsDir := ""
	if dir := config.Get("config_dir", ""); dir != "" {
		iconsDir = filepath.Join(dir, "icons")
	}

	s := strip.New(strip.Deps{
		Toolkit:  deps.Toolkit,
		Cache:    cache,
		Symbols:  symbols.NewLibrary(),
		Catalog:  catalog.New(iconsDir),
		Sink:     &hookSink{next: deps.Sink},
		Clock:    deps.Clock,
		IconSize: config.GetInt("icon_size", 48),
		Logger:   logger,
	})
	return s, nil
}

// OptionsFromConfig builds configure options from the loaded
// configuration: the given items and initial selection plus the parsed
// theme colors, visibility, and title opacity.
func OptionsFromConfig(items []tabs.Spec, initialID string) strip.Options {
	config.Load()
	visible := config.GetBool("visible", true)
	opacity := config.GetFloat("title_opacity", 1.0)
	return strip.Options{
		Items:           items,
		InitialID:       initialID,
		Visible:         &visible,
		SelectedColor:   parseColor(config.Get("selected_color", defaultSelectedColor), defaultSelectedColor),
		UnselectedColor: parseColor(config.Get("unselected_color", defaultUnselectedColor), defaultUnselectedColor),
		TitleOpacity:    &opacity,
	}
}

// Configure applies the options to the strip and fires the
// post-configure hook point once the new tab set is in place.
func Configure(s *strip.Strip, opts strip.Options) error {
	if err := s.Configure(opts); err != nil {
		return err
	}
	envVars := []string{hooks.EnvTabCount + "=" + strconv.Itoa(len(opts.Items))}
	if err := hooks.Run(hooks.PointPostConfigure, envVars...); err != nil {
		return fmt.Errorf("post-configure hook failed: %w", err)
	}
	return nil
}

// Select fires the pre-select hook point, then applies a programmatic
// selection. A hook failure under the abort failure mode cancels the
// selection.
func Select(s *strip.Strip, id string) (bool, error) {
	if err := hooks.Run(hooks.PointPreSelect, hooks.EnvTabID+"="+id); err != nil {
		return false, fmt.Errorf("pre-select hook aborted: %w", err)
	}
	return s.Select(id), nil
}

// hookSink fires selection hook scripts before forwarding the event to
// the host sink. Hook failures never swallow the event.
type hookSink struct {
	next ports.EventSink
}

func (h *hookSink) TabSelected(event tabs.InteractionEvent) {
	if err := hooks.RunSelection(event); err != nil {
		reporter.Warning(fmt.Sprintf("selection hook failed: %v", err))
	}
	if h.next != nil {
		h.next.TabSelected(event)
	}
}

// parseColor parses a hex color, substituting the fallback when the
// value does not parse.
func parseColor(value, fallback string) color.Color {
	c, err := colorful.Hex(value)
	if err != nil {
		c, _ = colorful.Hex(fallback)
	}
	return c
}
