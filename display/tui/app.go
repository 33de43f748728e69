// Package tui implements the sysdeck dashboard: a grid of metric tiles
// polled once a second, rearrangeable and restylable from the keyboard,
// with mouse clicks cycling a tile's visualization mode.
package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/sysdeck/collectors"
	"gitlab.com/tinyland/lab/sysdeck/config"
	"gitlab.com/tinyland/lab/sysdeck/display/colormap"
	"gitlab.com/tinyland/lab/sysdeck/display/widgets"
)

const (
	// refreshInterval is the dashboard tick rate.
	refreshInterval = 1 * time.Second

	// historyLen caps the per-tile sparkline ring.
	historyLen = 30

	// pollTimeout bounds one collection round.
	pollTimeout = 900 * time.Millisecond
)

type tickMsg time.Time

type snapshotMsg collectors.Snapshot

// Model is the top-level Bubbletea model for the sysdeck dashboard.
type Model struct {
	cfg    *config.Config
	themes *colormap.Registry
	theme  colormap.Theme
	poller *collectors.Poller
	logger *slog.Logger
	zones  *zone.Manager
	help   help.Model

	snapshot  collectors.Snapshot
	histories map[string][]float64

	width   int
	height  int
	ready   bool
	sampled bool
	focused int
}

// NewModel builds the dashboard model. If logger is nil, a no-op logger is
// used.
func NewModel(cfg *config.Config, themes *colormap.Registry, poller *collectors.Poller, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := Model{
		cfg:       cfg,
		themes:    themes,
		poller:    poller,
		logger:    logger,
		zones:     zone.New(),
		help:      help.New(),
		histories: make(map[string][]float64),
	}
	m.theme = themes.Get(cfg.Theme)
	return m
}

// Init implements tea.Model. It fires an immediate poll and starts the tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.pollCmd(), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// pollCmd runs one collection round off the update loop.
func (m Model) pollCmd() tea.Cmd {
	poller := m.poller
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), pollTimeout)
		defer cancel()
		return snapshotMsg(poller.Poll(ctx))
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.pollCmd(), tickCmd())

	case snapshotMsg:
		m.applySnapshot(collectors.Snapshot(msg))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// applySnapshot stores the newest snapshot and feeds the sparkline rings.
func (m *Model) applySnapshot(snap collectors.Snapshot) {
	m.snapshot = snap
	m.sampled = true

	for name, metric := range snap.Metrics {
		if !metric.OK {
			continue
		}
		hist := append(m.histories[name], metric.Percent)
		if len(hist) > historyLen {
			hist = hist[len(hist)-historyLen:]
		}
		m.histories[name] = hist
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	order := m.order()

	switch {
	case key.Matches(msg, keys.Quit):
		m.zones.Close()
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, keys.CycleLayout):
		m.cfg.Layout = nextIn(config.Layouts, m.cfg.Layout)
		m.focused = 0
		m.saveConfig()

	case key.Matches(msg, keys.CycleMode):
		mode, _ := widgets.ParseVisMode(m.cfg.VisMode)
		m.cfg.VisMode = mode.Cycle().String()
		m.saveConfig()

	case key.Matches(msg, keys.CycleTileMode):
		if len(order) > 0 {
			m.cycleTileMode(order[m.focused])
		}

	case key.Matches(msg, keys.CycleTheme):
		next := m.themes.Next(m.cfg.Theme)
		m.cfg.Theme = next.Name
		m.theme = next
		m.saveConfig()

	case key.Matches(msg, keys.Autostart):
		if err := m.cfg.SetAutostart(!m.cfg.Autostart, config.AutostartPath()); err != nil {
			m.logger.Warn("autostart toggle failed", "error", err)
		} else {
			m.saveConfig()
		}

	case key.Matches(msg, keys.FocusNext):
		if len(order) > 0 {
			m.focused = (m.focused + 1) % len(order)
		}

	case key.Matches(msg, keys.FocusPrev):
		if len(order) > 0 {
			m.focused = (m.focused - 1 + len(order)) % len(order)
		}

	case key.Matches(msg, keys.MoveLeft):
		if m.focused > 0 {
			m.cfg.SwapTiles(m.cfg.Layout, order[m.focused], order[m.focused-1])
			m.focused--
			m.saveConfig()
		}

	case key.Matches(msg, keys.MoveRight):
		if m.focused < len(order)-1 {
			m.cfg.SwapTiles(m.cfg.Layout, order[m.focused], order[m.focused+1])
			m.focused++
			m.saveConfig()
		}
	}

	return m, nil
}

// handleMouse cycles a tile's visualization mode when the tile is clicked.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	for i, tile := range m.order() {
		if m.zones.Get(tile).InBounds(msg) {
			m.focused = i
			m.cycleTileMode(tile)
			break
		}
	}
	return m, nil
}

// cycleTileMode advances one tile's override past its current effective mode.
// I/O tiles have a fixed rendering and are left alone.
func (m *Model) cycleTileMode(tile string) {
	if tile == collectors.TileDisk || tile == collectors.TileNet {
		return
	}
	mode, _ := widgets.ParseVisMode(m.cfg.TileMode(tile))
	m.cfg.SetTileMode(tile, mode.Cycle().String())
	m.saveConfig()
}

func (m *Model) saveConfig() {
	if err := m.cfg.Save(); err != nil {
		m.logger.Warn("config save failed", "error", err)
	}
}

func (m Model) order() []string {
	return m.cfg.TileOrder(m.cfg.Layout)
}

// SetSize primes the terminal dimensions without a WindowSizeMsg. Used by
// one-shot rendering and tests.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.ready = true
}

// SetSnapshot injects a snapshot directly. Used by one-shot rendering and
// tests.
func (m *Model) SetSnapshot(snap collectors.Snapshot) {
	m.applySnapshot(snap)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()

	width := tileWidth(m.cfg.Layout)
	var rows []string
	for _, row := range layoutRows(m.cfg.Layout, m.order()) {
		var cells []string
		for _, tile := range row {
			cells = append(cells, m.renderTile(tile, width))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	footer := m.renderFooter()

	parts := append([]string{header}, rows...)
	parts = append(parts, footer)
	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) renderHeader() string {
	title := styleHeader.Render("sysdeck")
	info := styleFooter.Render(fmt.Sprintf("  %s · %s", m.cfg.Layout, m.cfg.Theme))
	if m.snapshot.Uptime > 0 {
		info += styleFooter.Render(fmt.Sprintf(" · up %s", m.snapshot.Uptime.Truncate(time.Minute)))
	}
	return title + info
}

func (m Model) renderTile(name string, width int) string {
	body := m.renderTileBody(name, width)

	style := styleTile
	if order := m.order(); m.focused < len(order) && order[m.focused] == name {
		style = styleFocusedTile
	}
	return m.zones.Mark(name, style.Width(width+2).Render(body))
}

func (m Model) renderTileBody(name string, width int) string {
	switch name {
	case collectors.TileDisk:
		rate := m.snapshot.Rate(name)
		return widgets.RenderIO(widgets.IOData{
			Label:      tileLabel(name),
			ReadLabel:  "R",
			WriteLabel: "W",
			ReadBps:    rate.ReadBps,
			WriteBps:   rate.WriteBps,
			OK:         rate.OK,
		}, m.theme, width)

	case collectors.TileNet:
		rate := m.snapshot.Rate(name)
		return widgets.RenderIO(widgets.IOData{
			Label:      tileLabel(name),
			ReadLabel:  "↓",
			WriteLabel: "↑",
			ReadBps:    rate.ReadBps,
			WriteBps:   rate.WriteBps,
			OK:         rate.OK,
		}, m.theme, width)

	default:
		metric := m.snapshot.Metric(name)
		mode, _ := widgets.ParseVisMode(m.cfg.TileMode(name))
		return widgets.RenderTile(mode, widgets.TileData{
			Label:   tileLabel(name),
			Percent: metric.Percent,
			Detail:  metric.Detail,
			OK:      metric.OK && m.sampled,
			History: m.histories[name],
		}, m.theme, width)
	}
}

func (m Model) renderFooter() string {
	footer := m.help.View(keys)
	if n := len(m.snapshot.Warnings); n > 0 {
		footer += styleWarning.Render(fmt.Sprintf("  %d collector warning(s)", n))
	}
	return footer
}

// nextIn returns the element after current in vals, wrapping at the end.
func nextIn(vals []string, current string) string {
	for i, v := range vals {
		if v == current {
			return vals[(i+1)%len(vals)]
		}
	}
	return vals[0]
}
