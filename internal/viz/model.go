package viz

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/typist/internal/config"
	"github.com/san-kum/typist/internal/driver"
	"github.com/san-kum/typist/internal/typing"
)

// FrameMsg carries a settled animation state from the driver.
type FrameMsg typing.State

// ReloadMsg delivers a config reloaded from disk, or the error that
// prevented the reload.
type ReloadMsg struct {
	Config *config.Config
	Err    error
}

type driverStartedMsg struct {
	drv *driver.Driver
	cfg *config.Config
}

type driverStoppedMsg struct{}

type driverErrMsg struct{ err error }

// Model is the hero view. It starts its driver on Init and stops it when the
// user quits; the context passed to NewModel bounds the driver's lifetime on
// every other exit path.
type Model struct {
	ctx      context.Context
	cfg      *config.Config
	opts     []driver.Option
	drv      *driver.Driver
	state    typing.State
	theme    Theme
	keys     keyMap
	showHelp bool
	width    int
	height   int
	err      error // shown under the panel
	fatal    error // ends the program
}

// NewModel builds the view. Driver options are passed through to
// driver.Start untouched.
func NewModel(ctx context.Context, cfg *config.Config, opts ...driver.Option) Model {
	return Model{
		ctx:   ctx,
		cfg:   cfg.Clone(),
		opts:  opts,
		state: typing.Initial(),
		theme: GetTheme(cfg.Theme),
		keys:  defaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return startDriver(m.ctx, m.cfg, m.opts)
}

func startDriver(ctx context.Context, cfg *config.Config, opts []driver.Option) tea.Cmd {
	return func() tea.Msg {
		drv, err := driver.Start(ctx, cfg.Phrases, cfg.Timing.Durations(), opts...)
		if err != nil {
			return driverErrMsg{err}
		}
		return driverStartedMsg{drv: drv, cfg: cfg}
	}
}

// waitForFrame blocks on the next driver update. Each FrameMsg schedules
// exactly one more wait, so frames are consumed serially.
func waitForFrame(updates <-chan typing.State) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-updates
		if !ok {
			return driverStoppedMsg{}
		}
		return FrameMsg(s)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case driverStartedMsg:
		m.drv = msg.drv
		// a reload handled while the driver was starting only reached m.cfg
		if msg.cfg != m.cfg {
			if err := m.drv.Reconfigure(m.cfg.Phrases, m.cfg.Timing.Durations()); err != nil {
				m.err = err
			} else {
				m.state = m.drv.Snapshot()
			}
		}
		return m, waitForFrame(m.drv.Updates())

	case driverErrMsg:
		m.err, m.fatal = msg.err, msg.err
		return m, tea.Quit

	case FrameMsg:
		m.state = typing.State(msg)
		if m.drv == nil {
			return m, nil
		}
		return m, waitForFrame(m.drv.Updates())

	case driverStoppedMsg:
		return m, nil

	case ReloadMsg:
		m.applyReload(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Theme):
			m.theme = NextTheme(m.theme.Name)
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		}
	}
	return m, nil
}

func (m *Model) applyReload(msg ReloadMsg) {
	if msg.Err != nil {
		m.err = msg.Err
		return
	}
	cfg := msg.Config
	if m.drv != nil {
		if err := m.drv.Reconfigure(cfg.Phrases, cfg.Timing.Durations()); err != nil {
			m.err = err
			return
		}
		m.state = m.drv.Snapshot()
	}
	m.err = nil
	m.cfg = cfg.Clone()
	m.theme = GetTheme(cfg.Theme)
}

// Close stops the driver if one was acquired. Safe to call repeatedly.
func (m Model) Close() {
	if m.drv != nil {
		m.drv.Stop()
	}
}

// Err returns the error that prevented the driver from starting.
func (m Model) Err() error { return m.fatal }

// Text returns the text currently on screen.
func (m Model) Text() string { return m.state.Text }

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(RenderHero(Hero{
		Headline: m.cfg.Headline,
		Text:     m.state.Text,
		Theme:    m.theme,
	}))

	if m.err != nil {
		s.WriteString("\n" + errorStyle(m.theme).Render(m.err.Error()))
	}
	if m.showHelp {
		s.WriteString("\n" + mutedStyle(m.theme).Render(m.helpLine()))
	}

	if m.width == 0 || m.height == 0 {
		return s.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s.String())
}

func (m Model) helpLine() string {
	parts := make([]string, 0, 3)
	for _, b := range m.keys.bindings() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ") + " · theme: " + m.theme.Name
}

// Run shows the hero view until the user quits or ctx is cancelled.
// reloads, when non-nil, feeds config changes into the running view.
func Run(ctx context.Context, cfg *config.Config, reloads <-chan ReloadMsg, opts ...driver.Option) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(NewModel(ctx, cfg, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	if reloads != nil {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case msg, ok := <-reloads:
					if !ok {
						return
					}
					p.Send(msg)
				}
			}
		}()
	}

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.Close()
		if err == nil {
			err = m.Err()
		}
	}
	return err
}
