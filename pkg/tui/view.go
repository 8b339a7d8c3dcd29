package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hackingproject/hackingos/pkg/clock"
	"github.com/hackingproject/hackingos/pkg/game"
	"github.com/hackingproject/hackingos/pkg/notify"
	gamewin "github.com/hackingproject/hackingos/pkg/window"
)

const minWidth = 60
const minHeight = 16

// View implements tea.Model.
func (m Model) View() string {
	w := m.width
	h := m.height
	if w < minWidth {
		w = minWidth
	}
	if h < minHeight {
		h = minHeight
	}

	if m.game.States.Current() != game.StateGameplay {
		return m.renderMainMenu(w, h)
	}

	canvas := m.renderDesktopBackground(w, h-1)

	// Windows bottom to top so the topmost is drawn last.
	for _, v := range m.game.Windows.Windows() {
		col, row, cols, rows := frameRect(v)
		block := m.renderWindow(v, cols, rows)
		overlayBlock(canvas, block, col, row, w)
	}

	if m.launcherOpen {
		overlay := m.renderLauncher()
		x := (w - lipgloss.Width(overlay)) / 2
		y := (h - lipgloss.Height(overlay)) / 2
		overlayBlock(canvas, overlay, x, y, w)
	}

	m.renderToasts(canvas, w)

	var b strings.Builder
	for _, line := range canvas {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.renderTaskbar(w))
	return b.String()
}

func (m Model) renderDesktopBackground(w, h int) []string {
	row := DesktopStyle.Render(strings.Repeat("·", w))
	canvas := make([]string, h)
	for i := range canvas {
		canvas[i] = row
	}
	return canvas
}

// renderWindow draws one frame: titlebar with close button, content body,
// and the resize handle in the bottom-right corner.
func (m Model) renderWindow(v *gamewin.View, cols, rows int) string {
	focused := m.game.Windows.Topmost() == v

	title := " " + v.Title
	closeBtn := " ✕ "
	gap := cols - ansiWidth(title) - ansiWidth(closeBtn)
	if gap < 0 {
		title = ansiTrunc(title, cols-ansiWidth(closeBtn))
		gap = 0
	}
	bar := title + strings.Repeat(" ", gap) + closeBtn
	barStyle := TitlebarStyle
	if focused {
		barStyle = TitlebarFocusedStyle
	}

	body := m.controllerFor(v.AppID).Render(cols, rows-1)
	bodyLines := strings.Split(body, "\n")
	for i, line := range bodyLines {
		bodyLines[i] = WindowBodyStyle.Render(truncPad(line, cols))
	}

	// Resize handle replaces the last cell of the last row.
	if len(bodyLines) > 0 {
		last := bodyLines[len(bodyLines)-1]
		handle := IconResize
		if v.ResizeHot() || v.IsResizing() {
			handle = ResizeHandleStyle.Render(IconResize)
		} else {
			handle = WindowBodyStyle.Render(IconResize)
		}
		bodyLines[len(bodyLines)-1] = overlayLine(last, handle, cols-1, cols)
	}

	return barStyle.Render(bar) + "\n" + strings.Join(bodyLines, "\n")
}

func (m Model) renderLauncher() string {
	apps := m.launchableApps()
	var b strings.Builder
	b.WriteString(MenuTitleStyle.Render("Applications"))
	b.WriteString("\n\n")
	for i, a := range apps {
		label := a.Name
		if !a.Launchable {
			label = IconLocked + " " + label
		}
		switch {
		case i == m.launcherCursor:
			b.WriteString(MenuSelectedStyle.Render(label))
		case !a.Launchable:
			b.WriteString(DimStyle.Render("  " + label))
		default:
			b.WriteString(MenuItemStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(DimStyle.Render("enter launch · esc close"))
	return ToastStyle.Render(b.String())
}

func (m Model) renderToasts(canvas []string, w int) {
	y := 0
	for _, t := range m.ui.toasts {
		style := ToastStyle
		if t.level == notify.LevelWarning {
			style = ToastWarningStyle
		}
		block := style.Render(t.message)
		x := w - lipgloss.Width(block) - 1
		overlayBlock(canvas, block, x, y, w)
		y += lipgloss.Height(block)
	}
}

func (m Model) renderTaskbar(w int) string {
	var open []string
	for _, v := range m.game.Windows.Windows() {
		name := v.Title
		if m.game.Windows.Topmost() == v {
			name = "[" + name + "]"
		}
		open = append(open, name)
	}
	left := " ⌂ " + strings.Join(open, "  ")

	var hint string
	if active := m.game.Mission.ActiveMission(); active != nil {
		hint = " · " + active.Title
	}
	right := fmt.Sprintf("%s%s  %s ",
		TaskbarCreditsStyle.Render(fmt.Sprintf("%d cr", m.game.Wallet.Credits())),
		TaskbarStyle.Render(hint),
		TaskbarClockStyle.Render(clock.FormatTime(m.game.Clock.TotalSeconds())),
	)

	gap := w - ansiWidth(left) - ansiWidth(right)
	if gap < 0 {
		left = ansiTrunc(left, w-ansiWidth(right))
		gap = 0
	}
	return TaskbarStyle.Render(left) + TaskbarStyle.Render(strings.Repeat(" ", gap)) + right
}

func (m Model) renderMainMenu(w, h int) string {
	items := m.menuItems()
	var b strings.Builder
	b.WriteString(MenuTitleStyle.Render("H A C K I N G   O S"))
	b.WriteString("\n\n")
	if m.game.Data.LastSavedUtcIso != "" {
		b.WriteString(DimStyle.Render("last save: " + m.game.Data.LastSavedUtcIso))
		b.WriteString("\n\n")
	}
	for i, item := range items {
		if i == m.menuCursor {
			b.WriteString(MenuSelectedStyle.Render(item))
		} else {
			b.WriteString(MenuItemStyle.Render("  " + item))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(DimStyle.Render(m.keys.ShortHelp()))

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, b.String())
}
