package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackingproject/hackingos/pkg/event"
	"github.com/hackingproject/hackingos/pkg/save"
	"github.com/hackingproject/hackingos/pkg/store"
	"github.com/hackingproject/hackingos/pkg/vfs"
)

func setupProcessor(t *testing.T) (*Processor, *event.Bus, *save.GameData) {
	t.Helper()
	bus := event.NewBus()
	fs := vfs.DefaultTree()
	data := save.NewGameData()
	session := NewSession(fs, vfs.HomePath)
	installer := store.NewInstallService(bus, nil, data, nil)
	return NewProcessor(bus, nil, fs, session, installer, data), bus, data
}

func TestSessionFallsBackToRoot(t *testing.T) {
	fs := vfs.DefaultTree()
	s := NewSession(fs, "/no/such/dir")
	assert.Equal(t, "/", s.CurrentPath())
}

func TestPwdAndCd(t *testing.T) {
	p, _, data := setupProcessor(t)

	assert.Equal(t, []string{vfs.HomePath}, p.Execute("pwd").Lines)

	assert.Empty(t, p.Execute("cd downloads").Lines)
	assert.Equal(t, vfs.DownloadsPath, p.Session().CurrentPath())
	assert.Equal(t, vfs.DownloadsPath, data.OsSession.TerminalCwdPath)

	assert.Empty(t, p.Execute("cd ..").Lines)
	assert.Equal(t, vfs.HomePath, p.Session().CurrentPath())

	assert.Equal(t, []string{"cd: no such directory: nope"}, p.Execute("cd nope").Lines)
	assert.Equal(t, []string{"cd: path required"}, p.Execute("cd").Lines)
}

func TestLsMarksDirectories(t *testing.T) {
	p, _, _ := setupProcessor(t)

	lines := p.Execute("ls").Lines
	assert.Contains(t, lines, "downloads/")
	assert.Contains(t, lines, "readme.txt")
}

func TestLsEmptyDirectory(t *testing.T) {
	bus := event.NewBus()
	root := vfs.NewRoot("root")
	fs := vfs.New(root)
	p := NewProcessor(bus, nil, fs, NewSession(fs, "/"), nil, nil)

	assert.Equal(t, []string{"(empty)"}, p.Execute("ls").Lines)
}

func TestCatOutputsFileContent(t *testing.T) {
	p, _, _ := setupProcessor(t)

	lines := p.Execute("cat readme.txt").Lines
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "Welcome to HackingOS")

	assert.Equal(t, []string{"cat: no such file: ghost.txt"}, p.Execute("cat ghost.txt").Lines)
	assert.Equal(t, []string{"cat: not a file: downloads"}, p.Execute("cat downloads").Lines)
}

func TestClearAndUnknownAndEmpty(t *testing.T) {
	p, _, _ := setupProcessor(t)

	result := p.Execute("clear")
	assert.True(t, result.Clear)
	assert.Empty(t, result.Lines)

	assert.Equal(t, []string{"Unknown command: frobnicate"}, p.Execute("frobnicate").Lines)
	assert.Equal(t, Result{}, p.Execute("   "))
}

func TestCommandNameIsCaseInsensitive(t *testing.T) {
	p, _, _ := setupProcessor(t)
	assert.Equal(t, []string{vfs.HomePath}, p.Execute("PWD").Lines)
}

func TestEveryCommandPublishesExecutionEvent(t *testing.T) {
	p, bus, _ := setupProcessor(t)

	var events []CommandExecutedEvent
	event.Subscribe(bus, func(evt CommandExecutedEvent) {
		events = append(events, evt)
	})

	p.Execute("cat readme.txt")
	p.Execute("bogus stuff")
	p.Execute("")

	require.Len(t, events, 2, "empty input must not publish")
	assert.Equal(t, "cat", events[0].Command)
	assert.Equal(t, vfs.HomePath+"/readme.txt", events[0].ResolvedPath)
	assert.Equal(t, vfs.HomePath, events[0].Cwd)
	assert.Equal(t, "bogus", events[1].Command)
	assert.Empty(t, events[1].ResolvedPath)
}

func TestCdEventResolvesAgainstStartingDirectory(t *testing.T) {
	p, bus, _ := setupProcessor(t)

	var events []CommandExecutedEvent
	event.Subscribe(bus, func(evt CommandExecutedEvent) {
		events = append(events, evt)
	})

	// The event carries the cwd the command was typed in, not the one it
	// moved to, so relative cd arguments resolve against the right base.
	p.Execute("cd docs")

	require.Len(t, events, 1)
	assert.Equal(t, vfs.HomePath, events[0].Cwd)
	assert.Equal(t, vfs.DocsPath, events[0].ResolvedPath)
	assert.Equal(t, vfs.DocsPath, p.Session().CurrentPath())
}

func TestInstallCommand(t *testing.T) {
	p, _, data := setupProcessor(t)
	data.OwnedAppIDs = append(data.OwnedAppIDs, "decryptor")

	downloads := p.fs.Resolve(vfs.DownloadsPath).(*vfs.Directory)
	downloads.AddFile("decryptor.installer", `{"appId":"decryptor","displayName":"Decryptor","version":1}`)
	downloads.AddFile("junk.installer", "garbage")

	assert.Equal(t, []string{"Installed Decryptor"}, p.Execute("install downloads/decryptor.installer").Lines)
	assert.Equal(t, []string{"Already installed: Decryptor"}, p.Execute("install downloads/decryptor.installer").Lines)
	assert.Equal(t, []string{"install: invalid installer: downloads/junk.installer"}, p.Execute("install downloads/junk.installer").Lines)
	assert.Equal(t, []string{"install: not an installer file: readme.txt"}, p.Execute("install readme.txt").Lines)
	assert.Equal(t, []string{"install: path required"}, p.Execute("install").Lines)
}
