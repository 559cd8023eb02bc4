package viz

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/typist/internal/config"
	"github.com/san-kum/typist/internal/driver"
	"github.com/san-kum/typist/internal/typing"
)

func testConfig(phrases ...string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Phrases = phrases
	return cfg
}

// started runs Init and feeds the resulting message back into Update.
func started(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.Init()()
	if _, ok := msg.(driverStartedMsg); !ok {
		t.Fatalf("expected driverStartedMsg, got %T", msg)
	}
	next, cmd := m.Update(msg)
	if cmd == nil {
		t.Fatal("expected a command waiting for frames")
	}
	return next.(Model)
}

func TestModel_InitStartsDriver(t *testing.T) {
	m := started(t, NewModel(context.Background(), testConfig("ab"), driver.WithClock(clock.NewMock())))
	defer m.Close()

	if m.drv == nil || !m.drv.Running() {
		t.Fatal("expected a running driver after Init")
	}
}

func TestModel_InitFailsOnEmptyPhrases(t *testing.T) {
	m := NewModel(context.Background(), testConfig())
	msg := m.Init()()

	next, cmd := m.Update(msg)
	if cmd == nil || cmd() != tea.Quit() {
		t.Error("expected program to quit")
	}
	if !errors.Is(next.(Model).Err(), typing.ErrNoPhrases) {
		t.Errorf("expected ErrNoPhrases, got %v", next.(Model).Err())
	}
}

func TestModel_FrameUpdatesView(t *testing.T) {
	m := NewModel(context.Background(), testConfig("hello"))

	next, _ := m.Update(FrameMsg(typing.State{CharCount: 3, Text: "hel"}))
	m = next.(Model)

	if m.Text() != "hel" {
		t.Errorf("expected text hel, got %q", m.Text())
	}
	view := m.View()
	if !strings.Contains(view, "hel"+Caret) {
		t.Errorf("view missing text and caret:\n%s", view)
	}
}

func TestModel_ReceivesDriverFrames(t *testing.T) {
	clk := clock.NewMock()
	armed := make(chan time.Duration, 8)
	m := started(t, NewModel(context.Background(), testConfig("ab"),
		driver.WithClock(clk),
		driver.WithOnSchedule(func(d time.Duration) { armed <- d })))
	defer m.Close()

	// drain the initial frame published by Start
	next, _ := m.Update(waitForFrame(m.drv.Updates())())
	m = next.(Model)

	clk.Add(<-armed)
	<-armed

	next, _ = m.Update(waitForFrame(m.drv.Updates())())
	m = next.(Model)
	if m.Text() != "a" {
		t.Errorf("expected text a, got %q", m.Text())
	}
}

func TestModel_QuitStopsDriver(t *testing.T) {
	m := started(t, NewModel(context.Background(), testConfig("ab"), driver.WithClock(clock.NewMock())))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil || cmd() != tea.Quit() {
		t.Error("expected quit command")
	}
	if next.(Model).drv.Running() {
		t.Error("driver still running after quit")
	}

	for range m.drv.Updates() {
	}
	if msg := waitForFrame(m.drv.Updates())(); msg != (driverStoppedMsg{}) {
		t.Errorf("expected driverStoppedMsg, got %T", msg)
	}
}

func TestModel_ThemeAndHelpKeys(t *testing.T) {
	m := NewModel(context.Background(), testConfig("ab"))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	m = next.(Model)
	if m.theme.Name != NextTheme(ThemeHero.Name).Name {
		t.Errorf("expected theme to advance, got %s", m.theme.Name)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	m = next.(Model)
	if !strings.Contains(m.View(), "q quit") {
		t.Error("expected help line in view")
	}
}

func TestModel_Reload(t *testing.T) {
	m := started(t, NewModel(context.Background(), testConfig("ab"), driver.WithClock(clock.NewMock())))
	defer m.Close()

	cfg := testConfig("xyz")
	cfg.Theme = "ocean"
	cfg.Headline = "Reloaded"
	next, _ := m.Update(ReloadMsg{Config: cfg})
	m = next.(Model)

	if m.theme.Name != "ocean" {
		t.Errorf("expected ocean theme, got %s", m.theme.Name)
	}
	if !strings.Contains(m.View(), "Reloaded") {
		t.Error("expected new headline in view")
	}
	if m.drv.Snapshot() != typing.Initial() {
		t.Errorf("expected driver reset for new phrases, got %+v", m.drv.Snapshot())
	}

	next, _ = m.Update(ReloadMsg{Err: errors.New("bad yaml")})
	m = next.(Model)
	if !strings.Contains(m.View(), "bad yaml") {
		t.Error("expected reload error in view")
	}
	if m.Err() != nil {
		t.Error("reload errors should not end the program")
	}
}

func TestModel_ReloadBeforeDriverStarts(t *testing.T) {
	clk := clock.NewMock()
	armed := make(chan time.Duration, 8)
	m := NewModel(context.Background(), testConfig("old"),
		driver.WithClock(clk),
		driver.WithOnSchedule(func(d time.Duration) { armed <- d }))
	start := m.Init()

	next, _ := m.Update(ReloadMsg{Config: testConfig("new")})
	m = next.(Model)
	next, _ = m.Update(start())
	m = next.(Model)
	defer m.Close()

	// one timer for the original phrases, one after the catch-up reconfigure
	<-armed
	clk.Add(<-armed)
	<-armed

	if got := m.drv.Text(); got != "n" {
		t.Errorf("expected driver to type the reloaded phrase, got %q", got)
	}
}

func TestModel_CloseWithoutDriver(t *testing.T) {
	m := NewModel(context.Background(), testConfig("ab"))
	m.Close()
}
