// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/chartdeck/internal/application/port"
	"github.com/bnema/chartdeck/internal/chart"
	"github.com/bnema/chartdeck/internal/cli/styles"
	"github.com/bnema/chartdeck/internal/domain/entity"
	"github.com/bnema/chartdeck/internal/infrastructure/config"
	"github.com/bnema/chartdeck/internal/logging"
	"github.com/bnema/chartdeck/internal/ui/carousel"
	"github.com/bnema/chartdeck/internal/ui/mainloop"
)

const (
	frameInterval = 16 * time.Millisecond

	zoneTrack = "track"
	zonePrev  = "prev"
	zoneNext  = "next"
)

func navZone(i int) string { return fmt.Sprintf("nav-%d", i) }

type (
	queueReadyMsg struct{}
	animTickMsg   time.Time
)

// ConfigMsg carries a reloaded configuration into a running model.
type ConfigMsg struct {
	Config *config.Config
}

// DeckOptions holds the collaborators and settings of a DeckModel.
type DeckOptions struct {
	Theme    *styles.Theme
	Registry *chart.Registry
	Sources  port.DataProviderResolver
	Toolkit  chart.ToolkitSource
	Queue    *mainloop.Queue
	Hits     HitTester

	Radius         int
	SwipeThreshold float64
	Transition     time.Duration
	Easing         config.Easing
	CoalesceResize bool
	Mouse          bool

	// Width and Height size the viewer before the first WindowSizeMsg.
	Width  int
	Height int
}

// DeckModel is the Bubble Tea model for the deck viewer. It owns the
// widgets and the carousel controller; every mutation happens in Update.
type DeckModel struct {
	// UI components
	help    help.Model
	keys    styles.DeckKeyMap
	spinner spinner.Model
	theme   *styles.Theme
	hits    HitTester

	// Widgets driven by the carousel
	canvases *styles.Canvases
	track    *styles.Track
	viewport *styles.Viewport
	prev     *styles.Button
	next     *styles.Button
	navbar   *styles.NavBar
	status   *styles.StatusLabel

	// Controller
	nav     *carousel.Navigator
	gesture *carousel.Gesture
	layout  *carousel.LayoutSync
	window  *carousel.WindowManager

	// State
	width     int
	height    int
	mouse     bool
	ticking   bool
	spinning  bool
	lastFrame time.Time
	closed    bool

	// Dependencies
	ctx       context.Context
	deck      *entity.Deck
	queue     *mainloop.Queue
	coalescer *mainloop.Coalescer
}

// NewDeckModel wires the carousel onto terminal widgets and mounts the
// first panels.
func NewDeckModel(ctx context.Context, deck *entity.Deck, opts DeckOptions) (*DeckModel, error) {
	if deck == nil || len(deck.Panels) == 0 {
		return nil, carousel.ErrNoPanels
	}
	if opts.Queue == nil {
		return nil, fmt.Errorf("deck model: queue is required")
	}
	if opts.Theme == nil {
		opts.Theme = styles.NewTheme(config.DefaultConfig())
	}
	if opts.Registry == nil {
		opts.Registry = chart.DefaultRegistry()
	}
	if opts.Hits == nil {
		opts.Hits = NewZoneHitTester()
	}
	ctx = logging.WithComponent(ctx, "viewer")

	m := &DeckModel{
		help:     styles.NewStyledHelp(opts.Theme),
		keys:     styles.DefaultDeckKeyMap(),
		spinner:  styles.NewDefaultSpinner(opts.Theme),
		theme:    opts.Theme,
		hits:     opts.Hits,
		canvases: styles.NewCanvases(),
		track:    styles.NewTrack(opts.Transition, styles.Easing(opts.Easing)),
		viewport: &styles.Viewport{},
		prev:     styles.NewButton(styles.GlyphPrev),
		next:     styles.NewButton(styles.GlyphNext),
		navbar:   &styles.NavBar{},
		status:   &styles.StatusLabel{},
		width:    max(opts.Width, 1),
		height:   max(opts.Height, 1),
		mouse:    opts.Mouse,
		ctx:      ctx,
		deck:     deck,
		queue:    opts.Queue,
	}

	// Size the canvases before the first mount so charts draw at full size.
	vh := m.viewportHeight()
	m.canvases.Layout(deck.Panels, m.width, vh)
	m.viewport.SetSize(m.width, vh)

	mounter := chart.NewMounter(opts.Registry, m.canvases, opts.Sources, opts.Queue, opts.Toolkit)
	m.window = carousel.NewWindowManager(ctx, mounter, carousel.WithRadius(opts.Radius))

	nav, err := carousel.NewNavigator(ctx, carousel.Host{
		Track:    m.track,
		Viewport: m.viewport,
		Prev:     m.prev,
		Next:     m.next,
		NavBar:   m.navbar,
		Status:   m.status,
		Factory:  styles.Factory{},
	}, deck.Panels, carousel.WithListener(m.window.HandleIndexChange))
	if err != nil {
		m.window.Close()
		return nil, fmt.Errorf("build navigator: %w", err)
	}
	m.nav = nav
	m.gesture = carousel.NewGesture(ctx, nav, carousel.WithSwipeThreshold(opts.SwipeThreshold))

	var layoutOpts []carousel.LayoutOption
	if opts.CoalesceResize {
		m.coalescer = mainloop.NewCoalescer(opts.Queue.Post)
		layoutOpts = append(layoutOpts, carousel.WithCoalescer(m.coalescer))
	}
	m.layout = carousel.NewLayoutSync(nav, layoutOpts...)

	return m, nil
}

// Init starts listening for loop work.
func (m *DeckModel) Init() tea.Cmd {
	return tea.Batch(m.waitQueue(), m.kick())
}

// Update handles messages.
func (m *DeckModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
		return m, m.kick()

	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)

	case tea.MouseMsg:
		if m.mouse {
			m.handleMouseMsg(msg)
		}
		return m, m.kick()

	case queueReadyMsg:
		if m.closed {
			return m, nil
		}
		m.queue.Drain()
		return m, tea.Batch(m.waitQueue(), m.kick())

	case animTickMsg:
		now := time.Time(msg)
		dt := now.Sub(m.lastFrame)
		m.lastFrame = now
		if m.track.Advance(dt) {
			return m, animTick()
		}
		m.ticking = false
		return m, nil

	case spinner.TickMsg:
		if m.queue.Pending() == 0 {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ConfigMsg:
		m.ApplyConfig(msg.Config)
		return m, nil
	}

	return m, nil
}

func (m *DeckModel) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.Resize(m.width, m.height)

	case key.Matches(msg, m.keys.Cancel):
		m.gesture.Cancel()

	case key.Matches(msg, m.keys.Prev):
		m.nav.HandleKey(carousel.KeyLeft)

	case key.Matches(msg, m.keys.Next):
		m.nav.HandleKey(carousel.KeyRight)

	case key.Matches(msg, m.keys.First):
		m.nav.GoTo(0)

	case key.Matches(msg, m.keys.Last):
		m.nav.GoTo(m.nav.Count() - 1)

	case key.Matches(msg, m.keys.Jump):
		if n, err := strconv.Atoi(msg.String()); err == nil {
			m.nav.GoTo(n - 1)
		}
	}
	return m.kick()
}

func (m *DeckModel) handleMouseMsg(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if m.clickControl(msg) {
				m.gesture.Start(msg.X, true)
				return
			}
			if m.hits.InBounds(zoneTrack, msg) {
				m.gesture.Start(msg.X, false)
			}
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			m.nav.HandleKey(carousel.KeyLeft)
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			m.nav.HandleKey(carousel.KeyRight)
		}

	case tea.MouseActionMotion:
		m.gesture.Move(msg.X)

	case tea.MouseActionRelease:
		m.gesture.End(msg.X)
	}
}

// clickControl clicks the control under the pointer, if any, and reports
// whether the press landed on a control.
func (m *DeckModel) clickControl(msg tea.MouseMsg) bool {
	switch {
	case m.hits.InBounds(zonePrev, msg):
		m.prev.Click()
		return true
	case m.hits.InBounds(zoneNext, msg):
		m.next.Click()
		return true
	}
	for i, item := range m.navbar.Items() {
		if !m.hits.InBounds(navZone(i), msg) {
			continue
		}
		if ni, ok := item.(*styles.NavItem); ok {
			ni.Click()
		}
		return true
	}
	return false
}

// kick starts the animation and spinner tickers when they have work.
func (m *DeckModel) kick() tea.Cmd {
	var cmds []tea.Cmd
	if m.track.Animating() && !m.ticking {
		m.ticking = true
		m.lastFrame = time.Now()
		cmds = append(cmds, animTick())
	}
	if !m.closed && m.queue.Pending() > 0 && !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func animTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return animTickMsg(t) })
}

// waitQueue blocks off the loop until work is posted to the queue.
func (m *DeckModel) waitQueue() tea.Cmd {
	q, ctx := m.queue, m.ctx
	return func() tea.Msg {
		if err := q.Wait(ctx); err != nil {
			return nil
		}
		return queueReadyMsg{}
	}
}

// chromeHeight is the rows taken by the header, controls and help.
func (m *DeckModel) chromeHeight() int {
	return 2 + lipgloss.Height(m.help.View(m.keys))
}

func (m *DeckModel) viewportHeight() int {
	return max(m.height-m.chromeHeight(), 1)
}

// Resize lays the viewer out for a width x height terminal.
func (m *DeckModel) Resize(width, height int) {
	m.width, m.height = max(width, 1), max(height, 1)
	m.help.Width = m.width
	vh := m.viewportHeight()
	m.canvases.Layout(m.deck.Panels, m.width, vh)
	m.layout.Resize(m.width, vh)
}

// GoTo activates panel i.
func (m *DeckModel) GoTo(i int) { m.nav.GoTo(i) }

// Index is the active panel.
func (m *DeckModel) Index() int { return m.nav.Index() }

// Window exposes the window manager for inspection.
func (m *DeckModel) Window() *carousel.WindowManager { return m.window }

// SlideView renders panel i's slots without chrome. Panels outside the
// mount window render empty.
func (m *DeckModel) SlideView(i int) string { return m.canvases.PanelView(i) }

// ApplyConfig applies settings that can change while the viewer runs.
// Window radius and mouse capture are fixed at startup.
func (m *DeckModel) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	showAll := m.help.ShowAll
	m.theme = styles.NewTheme(cfg)
	m.help = styles.NewStyledHelp(m.theme)
	m.help.ShowAll = showAll
	m.help.Width = m.width
	m.spinner.Style = lipgloss.NewStyle().Foreground(m.theme.Accent)
	m.track.SetTiming(time.Duration(cfg.Carousel.TransitionMs)*time.Millisecond, styles.Easing(cfg.Carousel.Easing))
}

// Close disposes every mounted chart and stops loop work.
func (m *DeckModel) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.window.Close()
	if m.coalescer != nil {
		m.coalescer.Destroy()
	}
	m.queue.Close()
	m.hits.Close()
}

// View renders the viewer.
func (m *DeckModel) View() string {
	if m.closed {
		return ""
	}

	panels := make([]string, len(m.deck.Panels))
	for i := range panels {
		panels[i] = m.canvases.PanelView(i)
	}
	body := m.hits.Mark(zoneTrack, m.track.View(panels, m.viewport.Width(), m.viewport.Height()))

	return m.hits.Scan(lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderControls(),
		m.help.View(m.keys),
	))
}

func (m *DeckModel) renderHeader() string {
	title := m.deck.Title
	if title == "" {
		title = "chartdeck"
	}
	parts := []string{
		m.theme.Title.Render(title),
		m.theme.SlideBadge(m.nav.Index(), m.nav.Count()),
		m.theme.Subtle.Render(m.status.Text()),
	}
	if m.queue.Pending() > 0 {
		parts = append(parts, m.spinner.View())
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(strings.Join(parts, "  "))
}

func (m *DeckModel) renderControls() string {
	prev := m.hits.Mark(zonePrev, m.prev.View(m.theme))
	next := m.hits.Mark(zoneNext, m.next.View(m.theme))
	room := m.width - lipgloss.Width(prev) - lipgloss.Width(next) - 2
	nav := m.navbar.View(m.theme, room, func(i int, s string) string {
		return m.hits.Mark(navZone(i), s)
	})
	return lipgloss.JoinHorizontal(lipgloss.Center, prev, " ", nav, " ", next)
}
