package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hackingproject/hackingos/pkg/event"
	"github.com/hackingproject/hackingos/pkg/game"
	"github.com/hackingproject/hackingos/pkg/notify"
	gamewin "github.com/hackingproject/hackingos/pkg/window"
)

// TickMsg drives the simulation clock.
type TickMsg time.Time

// CatalogChangedMsg is sent when the catalog watcher detects changes.
type CatalogChangedMsg struct{}

const tickInterval = 100 * time.Millisecond

// toast is one on-screen notification.
type toast struct {
	message string
	level   notify.Level
	expires time.Time
}

// uiState is shared by pointer between Model copies so event-bus handlers
// registered at construction keep feeding the live state.
type uiState struct {
	toasts []toast
}

// mousePointerID is the single pointer a terminal mouse provides.
const mousePointerID = 0

// Model is the Bubble Tea model for the desktop shell.
type Model struct {
	game *game.Game
	keys KeyMap
	ui   *uiState

	width  int
	height int

	// One controller per open window, keyed by app id.
	contents map[string]contentController

	// Main menu state
	menuCursor int

	// App launcher overlay
	launcherOpen   bool
	launcherCursor int

	lastTick time.Time
}

// NewModel wires the shell to an initialized game.
func NewModel(g *game.Game) Model {
	ui := &uiState{}
	event.Subscribe(g.Bus, func(evt notify.PostedEvent) {
		ui.toasts = append(ui.toasts, toast{
			message: evt.Message,
			level:   evt.Level,
			expires: time.Now().Add(4 * time.Second),
		})
	})
	return Model{
		game:     g,
		keys:     DefaultKeyMap(),
		ui:       ui,
		contents: make(map[string]contentController),
		lastTick: time.Now(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// The bottom row is the taskbar; windows live above it.
		m.game.Windows.SetContainerBounds(cellToPoint(msg.Width, msg.Height-1))
		return m, tea.ClearScreen

	case TickMsg:
		now := time.Time(msg)
		dt := now.Sub(m.lastTick).Seconds()
		m.lastTick = now
		m.game.Tick(dt)
		m.expireToasts(now)
		return m, tickCmd()

	case CatalogChangedMsg:
		m.game.Notify.Info("Catalog files changed. Restart to load new content.")
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *Model) expireToasts(now time.Time) {
	kept := m.ui.toasts[:0]
	for _, t := range m.ui.toasts {
		if now.Before(t.expires) {
			kept = append(kept, t)
		}
	}
	m.ui.toasts = kept
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.game.States.Current() != game.StateGameplay {
		return m.handleMenuKey(msg)
	}

	if m.launcherOpen {
		return m.handleLauncherKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.game.Shutdown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Launcher):
		m.launcherOpen = true
		m.launcherCursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Save):
		m.game.SaveNow()
		m.game.Notify.Info("Progress saved.")
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		// Cycle focus: the bottom window comes to the top.
		if views := m.game.Windows.Windows(); len(views) > 1 {
			m.game.Windows.BringToFront(views[0])
		}
		return m, nil

	case key.Matches(msg, m.keys.CloseWindow):
		if top := m.game.Windows.Topmost(); top != nil {
			delete(m.contents, top.AppID)
			m.game.Launch.Close(top.AppID)
		}
		return m, nil
	}

	// Everything else goes to the focused window's content.
	if top := m.game.Windows.Topmost(); top != nil {
		return m, m.controllerFor(top.AppID).HandleKey(msg)
	}
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.menuItems()
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.game.Shutdown()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.menuCursor < len(items)-1 {
			m.menuCursor++
		}
	case key.Matches(msg, m.keys.Enter):
		switch items[m.menuCursor] {
		case menuStart, menuContinue:
			m.game.StartSession()
		case menuReset:
			if err := m.game.ResetSave(); err != nil {
				m.game.Notify.Warning("Reset failed: " + err.Error())
			} else {
				m.game.Notify.Info("Save wiped.")
			}
		case menuQuit:
			m.game.Shutdown()
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) handleLauncherKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	apps := m.launchableApps()
	switch msg.String() {
	case "esc", "ctrl+a":
		m.launcherOpen = false
	case "up":
		if m.launcherCursor > 0 {
			m.launcherCursor--
		}
	case "down":
		if m.launcherCursor < len(apps)-1 {
			m.launcherCursor++
		}
	case "enter":
		if m.launcherCursor < len(apps) {
			m.game.Launch.LaunchOrFocus(apps[m.launcherCursor].ID)
		}
		m.launcherOpen = false
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.game.States.Current() != game.StateGameplay {
		return m, nil
	}
	p := cellToPoint(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		v := m.game.Windows.HitTest(p)
		if v == nil {
			return m, nil
		}
		if m.onCloseButton(v, msg.X, msg.Y) {
			delete(m.contents, v.AppID)
			m.game.Launch.Close(v.AppID)
			return m, nil
		}
		m.game.Windows.PointerDown(v, mousePointerID, p)

	case tea.MouseActionMotion:
		if v := m.interactingView(); v != nil {
			m.game.Windows.PointerMove(v, mousePointerID, p)
		} else if v := m.game.Windows.HitTest(p); v != nil {
			m.game.Windows.PointerMove(v, mousePointerID, p)
		}

	case tea.MouseActionRelease:
		if v := m.interactingView(); v != nil {
			m.game.Windows.PointerUp(v, mousePointerID)
		}
	}
	return m, nil
}

// interactingView returns the window that currently owns a drag or resize.
func (m Model) interactingView() *gamewin.View {
	for _, v := range m.game.Windows.Windows() {
		if v.IsDragging() || v.IsResizing() {
			return v
		}
	}
	return nil
}

// onCloseButton reports whether the cell is the ✕ at the right end of the
// window's titlebar.
func (m Model) onCloseButton(v *gamewin.View, cx, cy int) bool {
	col, row, cols, _ := frameRect(v)
	return cy == row && cx >= col+cols-3 && cx < col+cols
}

func (m Model) controllerFor(appID string) contentController {
	if c, ok := m.contents[appID]; ok {
		return c
	}
	c := newContent(appID, m.game)
	m.contents[appID] = c
	return c
}

// Main menu entries.
const (
	menuStart    = "New Session"
	menuContinue = "Continue"
	menuReset    = "Wipe Save"
	menuQuit     = "Quit"
)

func (m Model) menuItems() []string {
	if len(m.game.Data.LastSavedUtcIso) > 0 {
		return []string{menuContinue, menuReset, menuQuit}
	}
	return []string{menuStart, menuQuit}
}

// launchableApps is the registry filtered to apps the player can open.
func (m Model) launchableApps() []appEntry {
	var apps []appEntry
	for _, def := range m.game.Apps.All() {
		apps = append(apps, appEntry{
			ID:         def.ID,
			Name:       def.DisplayName,
			Launchable: m.game.Launch.CanLaunch(def.ID),
		})
	}
	return apps
}

type appEntry struct {
	ID         string
	Name       string
	Launchable bool
}
