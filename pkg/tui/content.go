package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/hackingproject/hackingos/pkg/event"
	"github.com/hackingproject/hackingos/pkg/game"
	"github.com/hackingproject/hackingos/pkg/vfs"
)

// contentController renders the inside of one window and consumes key input
// while that window is focused. Controllers are created per open window and
// dropped when it closes.
type contentController interface {
	HandleKey(msg tea.KeyMsg) tea.Cmd
	Render(width, height int) string
}

// newContent builds the controller for an app id. Apps without a dedicated
// surface get a plain placeholder.
func newContent(appID string, g *game.Game) contentController {
	switch appID {
	case "terminal":
		return newTerminalContent(g)
	case "files":
		return newFilesContent(g)
	case "missions":
		return &missionsContent{game: g}
	case "store":
		return newStoreContent(g)
	case "notes":
		return &notesContent{game: g}
	default:
		return &toolContent{appID: appID, game: g}
	}
}

// terminalContent is the shell prompt: an input line over a scrollback of
// output lines.
type terminalContent struct {
	game   *game.Game
	input  textinput.Model
	output []string
}

func newTerminalContent(g *game.Game) *terminalContent {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 128
	ti.Focus()
	return &terminalContent{
		game:   g,
		input:  ti,
		output: []string{"HackingOS terminal. Type 'help' for commands."},
	}
}

func (c *terminalContent) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEnter {
		line := c.input.Value()
		c.input.Reset()
		result := c.game.Shell.Execute(line)
		if result.Clear {
			c.output = nil
			return nil
		}
		if strings.TrimSpace(line) != "" {
			c.output = append(c.output, c.prompt()+line)
			c.output = append(c.output, result.Lines...)
		}
		return nil
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

func (c *terminalContent) prompt() string {
	return c.game.Session.CurrentPath() + " $ "
}

func (c *terminalContent) Render(width, height int) string {
	var b strings.Builder
	visible := c.output
	if len(visible) > height-1 {
		visible = visible[len(visible)-(height-1):]
	}
	for _, line := range visible {
		b.WriteString(truncPad(line, width))
		b.WriteString("\n")
	}
	for i := len(visible); i < height-1; i++ {
		b.WriteString(strings.Repeat(" ", width))
		b.WriteString("\n")
	}
	b.WriteString(truncPad(PromptStyle.Render(c.prompt())+c.input.View(), width))
	return b.String()
}

// filesContent is the file manager: a cursor over the cwd's children plus a
// ".." entry, with a preview of the last opened file.
type filesContent struct {
	game    *game.Game
	cursor  int
	preview []string
}

func newFilesContent(g *game.Game) *filesContent {
	if g.Data.OsSession.FileManagerPath == "" {
		g.Data.OsSession.FileManagerPath = vfs.HomePath
	}
	return &filesContent{game: g}
}

func (c *filesContent) dir() *vfs.Directory {
	if dir, ok := c.game.FS.Resolve(c.game.Data.OsSession.FileManagerPath).(*vfs.Directory); ok {
		return dir
	}
	return c.game.FS.Root()
}

// entries is ".." (unless at root) followed by the cwd's children in order.
func (c *filesContent) entries() []vfs.Node {
	dir := c.dir()
	var nodes []vfs.Node
	if dir.Parent() != nil {
		nodes = append(nodes, dir.Parent())
	}
	return append(nodes, dir.Children()...)
}

func (c *filesContent) HandleKey(msg tea.KeyMsg) tea.Cmd {
	entries := c.entries()
	switch msg.String() {
	case "up":
		if c.cursor > 0 {
			c.cursor--
		}
	case "down":
		if c.cursor < len(entries)-1 {
			c.cursor++
		}
	case "enter":
		if c.cursor >= len(entries) {
			break
		}
		switch node := entries[c.cursor].(type) {
		case *vfs.Directory:
			c.game.Data.OsSession.FileManagerPath = node.Path()
			c.cursor = 0
			c.preview = nil
		case *vfs.File:
			c.preview = strings.Split(node.Content(), "\n")
			event.Publish(c.game.Bus, vfs.FileOpenedEvent{Name: node.Name(), FullPath: node.Path()})
		}
	}
	return nil
}

func (c *filesContent) Render(width, height int) string {
	dir := c.dir()
	entries := c.entries()

	lines := []string{DimStyle.Render(truncPad(dir.Path(), width))}
	for i, node := range entries {
		name := node.Name()
		style := PendingStyle
		if d, ok := node.(*vfs.Directory); ok {
			style = DirStyle
			if d == dir.Parent() {
				name = ".."
			} else {
				name += "/"
			}
		}
		row := "  " + name
		if i == c.cursor {
			row = IconSelected + " " + name
			style = SelectedStyle
		}
		lines = append(lines, style.Render(truncPad(row, width)))
	}
	if len(c.preview) > 0 {
		lines = append(lines, DimStyle.Render(truncPad(strings.Repeat("-", width), width)))
		lines = append(lines, c.preview...)
	}
	return fitLines(lines, width, height)
}

// missionsContent shows the active mission and its objective checklist.
type missionsContent struct {
	game *game.Game
}

func (c *missionsContent) HandleKey(tea.KeyMsg) tea.Cmd { return nil }

func (c *missionsContent) Render(width, height int) string {
	active := c.game.Mission.ActiveMission()
	if active == nil {
		return fitLines([]string{DimStyle.Render("No active mission.")}, width, height)
	}
	lines := []string{
		MenuTitleStyle.Render(truncPad(active.Title, width)),
		truncPad(active.Description, width),
		"",
	}
	for i, obj := range active.Objectives {
		icon := IconPending
		style := PendingStyle
		if c.game.Mission.IsObjectiveCompleted(i) {
			icon = IconDone
			style = DoneStyle
		}
		lines = append(lines, style.Render(truncPad(fmt.Sprintf(" %s %s", icon, obj.Description), width)))
	}
	if c.game.Mission.IsMissionCompleted() {
		lines = append(lines, "", DoneStyle.Render("Mission complete!"))
	} else if active.RewardCredits != 0 {
		lines = append(lines, "", DimStyle.Render(fmt.Sprintf("Reward: %d credits", active.RewardCredits)))
	}
	return fitLines(lines, width, height)
}

// storeContent lists catalog items; enter purchases the selection.
type storeContent struct {
	game   *game.Game
	cursor int
	status string
}

func newStoreContent(g *game.Game) *storeContent {
	return &storeContent{game: g}
}

func (c *storeContent) HandleKey(msg tea.KeyMsg) tea.Cmd {
	items := c.game.Catalog.Items
	switch msg.String() {
	case "up":
		if c.cursor > 0 {
			c.cursor--
		}
	case "down":
		if c.cursor < len(items)-1 {
			c.cursor++
		}
	case "enter":
		if c.cursor >= len(items) {
			break
		}
		item := items[c.cursor]
		switch {
		case c.game.Store.IsOwned(item.AppID):
			c.status = item.DisplayName + " is already owned."
		case !c.game.Store.CanPurchase(item):
			c.status = "Not enough credits for " + item.DisplayName + "."
		case c.game.Store.Purchase(item):
			c.status = "Purchased " + item.DisplayName + ". Run its installer from downloads."
		default:
			c.status = "Purchase failed."
		}
	}
	return nil
}

func (c *storeContent) Render(width, height int) string {
	lines := []string{
		TaskbarCreditsStyle.Render(truncPad(fmt.Sprintf(" Credits: %d ", c.game.Wallet.Credits()), width)),
		"",
	}
	for i, item := range c.game.Catalog.Items {
		label := fmt.Sprintf("%s — %d cr", item.DisplayName, item.Price)
		style := PendingStyle
		switch {
		case c.game.Store.IsOwned(item.AppID):
			label = IconDone + " " + label + " (owned)"
			style = DoneStyle
		case !c.game.Store.CanPurchase(item):
			label = IconLocked + " " + label
			style = DimStyle
		default:
			label = "  " + label
		}
		if i == c.cursor {
			style = SelectedStyle
		}
		lines = append(lines, style.Render(truncPad(label, width)))
		lines = append(lines, DimStyle.Render(truncPad("    "+item.Description, width)))
	}
	if c.status != "" {
		lines = append(lines, "", truncPad(c.status, width))
	}
	return fitLines(lines, width, height)
}

// notesContent renders the in-game field manual through glamour. The
// renderer is cached per width because building one is expensive.
type notesContent struct {
	game     *game.Game
	renderer *glamour.TermRenderer
	width    int
	rendered string
}

const fieldManual = `# Field Manual

Welcome, operator.

- Open the **Terminal** and type ` + "`help`" + ` to see what it can do.
- The **Files** app browses the same virtual disk as the terminal.
- Finish mission objectives to earn credits, then spend them in the **Store**.
- Purchased tools arrive as ` + "`.installer`" + ` files in your downloads folder;
  run ` + "`install <file>`" + ` from the terminal to unlock them.

Progress saves on its own a moment after anything important happens.
`

func (c *notesContent) HandleKey(tea.KeyMsg) tea.Cmd { return nil }

func (c *notesContent) Render(width, height int) string {
	if c.renderer == nil || c.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStylePath("dark"),
			glamour.WithWordWrap(width),
		)
		if err == nil {
			c.renderer = r
			c.width = width
			if out, err := r.Render(fieldManual); err == nil {
				c.rendered = out
			}
		}
	}
	if c.rendered == "" {
		return fitLines(strings.Split(fieldManual, "\n"), width, height)
	}
	return fitLines(strings.Split(strings.Trim(c.rendered, "\n"), "\n"), width, height)
}

// toolContent is the surface for purchased tools that have no dedicated UI.
type toolContent struct {
	appID string
	game  *game.Game
}

func (c *toolContent) HandleKey(tea.KeyMsg) tea.Cmd { return nil }

func (c *toolContent) Render(width, height int) string {
	def, _ := c.game.Apps.Get(c.appID)
	return fitLines([]string{
		MenuTitleStyle.Render(truncPad(def.DisplayName, width)),
		"",
		DimStyle.Render(truncPad("Online and ready.", width)),
	}, width, height)
}

// truncPad clips line to width and pads it with spaces.
func truncPad(line string, width int) string {
	out := ansiTrunc(line, width)
	if pad := width - ansiWidth(out); pad > 0 {
		out += strings.Repeat(" ", pad)
	}
	return out
}

// fitLines clips a line slice to exactly height rows of width columns.
func fitLines(lines []string, width, height int) string {
	if len(lines) > height {
		lines = lines[:height]
	}
	var b strings.Builder
	for i := 0; i < height; i++ {
		if i > 0 {
			b.WriteString("\n")
		}
		if i < len(lines) {
			b.WriteString(truncPad(lines[i], width))
		} else {
			b.WriteString(strings.Repeat(" ", width))
		}
	}
	return b.String()
}
