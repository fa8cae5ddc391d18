package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristianoliveira/tabstrip/internal/config"
	"github.com/cristianoliveira/tabstrip/internal/errors"
	"github.com/cristianoliveira/tabstrip/internal/search"
	"github.com/cristianoliveira/tabstrip/internal/settings"
	"github.com/cristianoliveira/tabstrip/internal/strip"
	"github.com/cristianoliveira/tabstrip/internal/symbols"
	"github.com/cristianoliveira/tabstrip/internal/tabs"
	"github.com/cristianoliveira/tabstrip/internal/tabstrip"
	"github.com/cristianoliveira/tabstrip/internal/toolkit"
	"github.com/cristianoliveira/tabstrip/internal/tui/render"
)

const (
	defaultViewportWidth  = 80
	defaultViewportHeight = 24
	eventPanelHeight      = 6
	eventLogCapacity      = 32
	statusClearDuration   = 5 * time.Second
	// refreshInterval paces the redraw loop that picks up async icon
	// resolutions and long-press highlights between input events.
	refreshInterval    = 250 * time.Millisecond
	maxBadgeCycleCount = 3
)

// Model represents the demo TUI model for bubbletea. It drives a live
// strip through the same operations a host would use and renders the
// widget model the strip marshals onto.
type Model struct {
	// Core state
	uiState           *UIState
	errorHandler      *errors.TUIHandler
	statusMessage     string
	statusMessageType errors.MessageType
	hasStatusMessage  bool

	// Strip wiring
	strip   *strip.Strip
	widget  *toolkit.Model
	events  *eventLog
	symbols *symbols.Library

	searchProvider search.Provider

	// Settings fields (non-UI state)
	position       string
	statusFormat   string
	matcher        string
	titles         string
	badges         string
	loadedSettings *settings.Settings
	settingsSvc    *settingsService

	// Hard configuration gates. Unlike the settings above they have no
	// runtime toggle; the config file decides for the whole session.
	statusEnabled bool
	showBadges    bool

	// Mouse gesture tracking. stripLine and spans cache the strip's
	// position from the last View call for hit testing.
	pressedIndex int
	stripLine    int
	spans        []render.Span
}

// Init starts the redraw loop.
func (m *Model) Init() tea.Cmd {
	return refreshTick()
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	case saveSettingsSuccessMsg:
		return m.handleSaveSettingsSuccess(msg)
	case saveSettingsFailedMsg:
		return m.handleSaveSettingsFailed(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case statusClearMsg:
		m.statusMessage = ""
		m.hasStatusMessage = false
		return m, nil
	case refreshTickMsg:
		return m, refreshTick()
	}
	return m, nil
}

// NewModel creates a new demo TUI model wired to a live strip. The specs
// become the initial configuration and the first tab starts selected.
func NewModel(specs []tabs.Spec) (*Model, error) {
	uiState := NewUIState()
	widget := toolkit.NewModel()
	events := newEventLog(eventLogCapacity)

	s, err := tabstrip.New(tabstrip.Deps{Toolkit: widget, Sink: events})
	if err != nil {
		return nil, err
	}

	// An empty spec list is rejected at the configuration boundary, so
	// the demo simply starts with an unconfigured strip.
	if len(specs) > 0 {
		if err := tabstrip.Configure(s, tabstrip.OptionsFromConfig(specs, specs[0].ID)); err != nil {
			return nil, err
		}
	}

	defaults := settings.DefaultSettings()
	m := Model{
		uiState:       uiState,
		strip:         s,
		widget:        widget,
		events:        events,
		symbols:       symbols.NewLibrary(),
		position:      defaults.Position,
		statusFormat:  defaults.StatusFormat,
		matcher:       defaults.Matcher,
		titles:        defaults.Titles,
		badges:        defaults.Badges,
		settingsSvc:   newSettingsService(),
		statusEnabled: config.GetBool("status_enabled", true),
		showBadges:    config.GetBool("show_badges", true),
		pressedIndex:  -1,
		stripLine:     -1,
	}
	m.searchProvider = providerForMatcher(m.matcher)

	// Error handler callback routes messages into the status line.
	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.statusMessage = msg.Text
		m.statusMessageType = msg.Type
		m.hasStatusMessage = msg.Text != ""
	})

	// Route hook warnings from the strip into the status line while the
	// TUI owns the terminal.
	tabstrip.SetErrorHandler(m.errorHandler)

	return &m, nil
}

// Strip exposes the live strip, mainly for tests.
func (m *Model) Strip() *strip.Strip {
	return m.strip
}

// Widget exposes the toolkit model the strip renders onto.
func (m *Model) Widget() *toolkit.Model {
	return m.widget
}

// providerForMatcher builds the search provider for a matcher setting.
func providerForMatcher(matcher string) search.Provider {
	opts := []search.Option{search.WithCaseInsensitive(true)}
	switch matcher {
	case settings.MatcherToken:
		return search.NewTokenProvider(opts...)
	case settings.MatcherRegex:
		return search.NewRegexProvider(opts...)
	default:
		return search.NewSubstringProvider(opts...)
	}
}
