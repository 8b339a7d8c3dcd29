package game

import (
	"go.uber.org/zap"

	"github.com/hackingproject/hackingos/pkg/app"
	"github.com/hackingproject/hackingos/pkg/autosave"
	"github.com/hackingproject/hackingos/pkg/catalog"
	"github.com/hackingproject/hackingos/pkg/clock"
	"github.com/hackingproject/hackingos/pkg/event"
	"github.com/hackingproject/hackingos/pkg/mission"
	"github.com/hackingproject/hackingos/pkg/notify"
	"github.com/hackingproject/hackingos/pkg/save"
	"github.com/hackingproject/hackingos/pkg/store"
	"github.com/hackingproject/hackingos/pkg/terminal"
	"github.com/hackingproject/hackingos/pkg/vfs"
	"github.com/hackingproject/hackingos/pkg/wallet"
	"github.com/hackingproject/hackingos/pkg/window"
)

// Config controls construction. Zero values pick sensible defaults.
type Config struct {
	DataDir         string
	Catalog         *catalog.Catalog
	StartingCredits int
	DebounceSeconds float64
	Log             *zap.Logger
}

// DefaultStartingCredits is the wallet balance of a brand new game.
const DefaultStartingCredits = 50

// Game owns the full service graph. All fields are wired once in New and
// never swapped.
type Game struct {
	Log     *zap.Logger
	Bus     *event.Bus
	States  *StateMachine
	FS      *vfs.FS
	Data    *save.GameData
	Saves   *save.Service
	Wallet  *wallet.Service
	Notify  *notify.Service
	Store   *store.Service
	Install *store.InstallService
	Session *terminal.Session
	Shell   *terminal.Processor
	Windows *window.Manager
	Apps    *app.Registry
	Launch  *app.Launcher
	Mission *mission.Service
	Auto    *autosave.Service
	Clock   *clock.Service
	Catalog *catalog.Catalog
}

// New builds the whole graph. It does not touch the disk; call Initialize.
func New(cfg Config) *Game {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.Default()
	}
	if cfg.DataDir == "" {
		cfg.DataDir = save.DefaultDataDir()
	}
	if cfg.StartingCredits == 0 {
		cfg.StartingCredits = DefaultStartingCredits
	}

	g := &Game{Log: log, Catalog: cfg.Catalog}
	g.Bus = event.NewBus()
	g.States = NewStateMachine(g.Bus)
	g.FS = vfs.DefaultTree()
	g.Data = save.NewGameData()
	g.Saves = save.NewService(cfg.DataDir, log)
	g.Wallet = wallet.NewService(g.Bus, log, cfg.StartingCredits)
	g.Notify = notify.NewService(g.Bus, log)
	g.Store = store.NewService(g.Bus, log, g.Wallet, g.FS, g.Data, g.Notify)
	g.Install = store.NewInstallService(g.Bus, log, g.Data, g.Notify)
	g.Session = terminal.NewSession(g.FS, vfs.HomePath)
	g.Shell = terminal.NewProcessor(g.Bus, log, g.FS, g.Session, g.Install, g.Data)
	g.Windows = window.NewManager(log)
	g.Apps = app.NewRegistry()
	for _, def := range cfg.Catalog.Apps {
		if err := g.Apps.Register(def); err != nil {
			log.Warn("skipping app definition", zap.Error(err))
		}
	}
	g.Launch = app.NewLauncher(g.Bus, log, g.Windows, g.Apps, g.Install.IsInstalled)
	g.Mission = mission.NewService(g.Bus, log, g.Wallet, cfg.Catalog.Missions)
	g.Auto = autosave.NewService(g.Bus, log, g.Saves, g.Data, cfg.DebounceSeconds)
	g.Clock = clock.NewService(g.Bus)

	event.Subscribe(g.Bus, func(evt wallet.ChangedEvent) {
		g.Data.Credits = evt.Current
	})
	return g
}

// Initialize loads the save if one exists and moves to the main menu. On a
// loaded save the wallet is reconciled to the persisted balance.
func (g *Game) Initialize() {
	if loaded, ok := g.Saves.TryLoad(); ok {
		save.Migrate(loaded)
		*g.Data = *loaded
		g.Wallet.AddCredits(loaded.Credits-g.Wallet.Credits(), "save restore")
		g.Log.Info("save loaded",
			zap.Stringer("source", g.Saves.LastLoadSource()),
			zap.Int("version", g.Saves.LastLoadVersion()))
	} else {
		g.Data.Credits = g.Wallet.Credits()
		g.Log.Info("no save found, starting fresh")
	}
	event.Publish(g.Bus, save.LoadedEvent{Data: g.Data, Source: g.Saves.LastLoadSource()})
	g.States.Set(StateMainMenu)
}

// StartSession enters gameplay: restores the captured desktop session and
// activates the first open mission.
func (g *Game) StartSession() {
	if dir, ok := g.FS.Resolve(g.Data.OsSession.TerminalCwdPath).(*vfs.Directory); ok {
		g.Session.SetCurrentDirectory(dir)
	}
	g.Launch.RestoreSession(g.Data.OsSession)
	g.Mission.StartFirstAvailable()
	g.States.Set(StateGameplay)
}

// Tick advances time-driven services by dt seconds.
func (g *Game) Tick(dt float64) {
	g.Clock.Tick(dt)
	g.Auto.Tick(dt)
}

// SaveNow forces an immediate save, capturing the live session first.
func (g *Game) SaveNow() {
	g.Auto.SaveNow()
}

// ResetSave deletes the save files and resets the in-memory snapshot.
func (g *Game) ResetSave() error {
	if err := g.Saves.DeleteAll(); err != nil {
		return err
	}
	fresh := save.NewGameData()
	*g.Data = *fresh
	g.Wallet.AddCredits(DefaultStartingCredits-g.Wallet.Credits(), "save reset")
	return nil
}

// Shutdown writes a final save and flushes the log.
func (g *Game) Shutdown() {
	g.SaveNow()
	g.Bus.CloseAll()
	_ = g.Log.Sync()
}
