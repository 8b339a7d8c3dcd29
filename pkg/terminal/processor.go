package terminal

import (
	"strings"

	"go.uber.org/zap"

	"github.com/hackingproject/hackingos/pkg/event"
	"github.com/hackingproject/hackingos/pkg/save"
	"github.com/hackingproject/hackingos/pkg/store"
	"github.com/hackingproject/hackingos/pkg/vfs"
)

// Result is the outcome of one executed command line.
type Result struct {
	Lines []string
	Clear bool
}

// CommandExecutedEvent is published for every non-empty command line, valid
// or not. Cwd is the working directory the line was typed in, and
// ResolvedPath is the absolute path the first argument named there, or empty
// when there were no arguments or nothing resolved. Mission objectives key
// on Command and ResolvedPath.
type CommandExecutedEvent struct {
	Command      string
	Args         []string
	Cwd          string
	ResolvedPath string
}

const helpText = "Commands: help, pwd, ls, cd <path>, cat <path>, install <path>, clear"

// Processor dispatches command lines against a session. Unknown commands and
// bad paths come back as output lines, never as errors.
type Processor struct {
	bus       *event.Bus
	log       *zap.Logger
	fs        *vfs.FS
	session   *Session
	installer *store.InstallService
	data      *save.GameData
}

func NewProcessor(bus *event.Bus, log *zap.Logger, fs *vfs.FS, session *Session, installer *store.InstallService, data *save.GameData) *Processor {
	if bus == nil {
		panic("terminal: nil event bus")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{bus: bus, log: log, fs: fs, session: session, installer: installer, data: data}
}

// Session returns the processor's session.
func (p *Processor) Session() *Session { return p.session }

// Execute runs one command line and returns its output. Empty input is a
// silent no-op.
func (p *Processor) Execute(input string) Result {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return Result{}
	}
	name := strings.ToLower(fields[0])
	args := fields[1:]

	// Snapshot before dispatch: cd changes the cwd, and the event must carry
	// the directory the command was typed in and the path its argument named
	// there.
	cwd := p.session.CurrentPath()
	resolved := ""
	if len(args) > 0 {
		if node := p.resolveArg(args[0]); node != nil {
			resolved = node.Path()
		}
	}

	var result Result
	switch name {
	case "help":
		result = Result{Lines: []string{helpText}}
	case "pwd":
		result = Result{Lines: []string{p.session.CurrentPath()}}
	case "ls":
		result = p.list()
	case "cd":
		result = p.changeDirectory(args)
	case "cat":
		result = p.readFile(args)
	case "install":
		result = p.installPackage(args)
	case "clear":
		result = Result{Clear: true}
	default:
		result = Result{Lines: []string{"Unknown command: " + fields[0]}}
	}

	p.log.Debug("command executed",
		zap.String("command", name),
		zap.Strings("args", args),
		zap.String("cwd", cwd))
	event.Publish(p.bus, CommandExecutedEvent{
		Command:      name,
		Args:         args,
		Cwd:          cwd,
		ResolvedPath: resolved,
	})
	return result
}

// resolveArg resolves a path argument relative to the cwd when it is not
// absolute.
func (p *Processor) resolveArg(arg string) vfs.Node {
	return p.fs.Resolve(vfs.Join(p.session.CurrentPath(), arg))
}

func (p *Processor) list() Result {
	children := p.session.CurrentDirectory().Children()
	if len(children) == 0 {
		return Result{Lines: []string{"(empty)"}}
	}
	lines := make([]string, 0, len(children))
	for _, child := range children {
		name := child.Name()
		if _, ok := child.(*vfs.Directory); ok {
			name += "/"
		}
		lines = append(lines, name)
	}
	return Result{Lines: lines}
}

func (p *Processor) changeDirectory(args []string) Result {
	if len(args) == 0 {
		return Result{Lines: []string{"cd: path required"}}
	}
	dir, ok := p.resolveArg(args[0]).(*vfs.Directory)
	if !ok {
		return Result{Lines: []string{"cd: no such directory: " + args[0]}}
	}
	p.session.SetCurrentDirectory(dir)
	if p.data != nil {
		p.data.OsSession.TerminalCwdPath = dir.Path()
	}
	return Result{}
}

func (p *Processor) readFile(args []string) Result {
	if len(args) == 0 {
		return Result{Lines: []string{"cat: path required"}}
	}
	node := p.resolveArg(args[0])
	if node == nil {
		return Result{Lines: []string{"cat: no such file: " + args[0]}}
	}
	file, ok := node.(*vfs.File)
	if !ok {
		return Result{Lines: []string{"cat: not a file: " + args[0]}}
	}
	return Result{Lines: []string{file.Content()}}
}

func (p *Processor) installPackage(args []string) Result {
	if len(args) == 0 {
		return Result{Lines: []string{"install: path required"}}
	}
	file, ok := p.resolveArg(args[0]).(*vfs.File)
	if !ok || !strings.HasSuffix(file.Name(), store.InstallerSuffix) {
		return Result{Lines: []string{"install: not an installer file: " + args[0]}}
	}
	pkg, err := store.ParseInstaller(file.Content())
	if err != nil {
		return Result{Lines: []string{"install: invalid installer: " + args[0]}}
	}
	if p.installer == nil {
		return Result{Lines: []string{"Install failed: " + pkg.DisplayName}}
	}
	if p.installer.IsInstalled(pkg.AppID) {
		return Result{Lines: []string{"Already installed: " + pkg.DisplayName}}
	}
	if !p.installer.Install(pkg.AppID) {
		return Result{Lines: []string{"Install failed: " + pkg.DisplayName}}
	}
	return Result{Lines: []string{"Installed " + pkg.DisplayName}}
}
