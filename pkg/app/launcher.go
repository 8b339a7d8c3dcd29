package app

import (
	"sort"

	"go.uber.org/zap"

	"github.com/hackingproject/hackingos/pkg/event"
	"github.com/hackingproject/hackingos/pkg/save"
	"github.com/hackingproject/hackingos/pkg/window"
)

// LaunchedEvent is published when a launch opens a new window. Focusing an
// already-open app does not publish.
type LaunchedEvent struct {
	AppID string
	View  *window.View
}

// cascade spacing between successive launch positions.
const cascadeStep = 32.0

// Launcher opens at most one window per app. It subscribes to session
// capture so window positions land in the save snapshot, and it restores a
// captured session on load.
type Launcher struct {
	bus       *event.Bus
	log       *zap.Logger
	manager   *window.Manager
	registry  *Registry
	installed func(appID string) bool

	open     map[string]*window.View
	launches int
}

// NewLauncher wires the launcher. installed gates non-builtin apps; nil
// means everything is launchable.
func NewLauncher(bus *event.Bus, log *zap.Logger, manager *window.Manager, registry *Registry, installed func(string) bool) *Launcher {
	if bus == nil {
		panic("app: nil event bus")
	}
	if log == nil {
		log = zap.NewNop()
	}
	l := &Launcher{
		bus:       bus,
		log:       log,
		manager:   manager,
		registry:  registry,
		installed: installed,
		open:      map[string]*window.View{},
	}
	event.Subscribe(bus, func(evt save.SessionCaptureEvent) {
		l.CaptureSession(evt.Session)
	})
	return l
}

// CanLaunch reports whether appID is registered and, for non-builtin apps,
// installed.
func (l *Launcher) CanLaunch(appID string) bool {
	def, ok := l.registry.Get(appID)
	if !ok {
		return false
	}
	if def.Builtin || l.installed == nil {
		return true
	}
	return l.installed(appID)
}

// LaunchOrFocus opens appID's window, or focuses it when already open.
// Returns nil when the app cannot launch.
func (l *Launcher) LaunchOrFocus(appID string) *window.View {
	if v, ok := l.open[appID]; ok && !v.Closed() {
		l.manager.BringToFront(v)
		return v
	}
	if !l.CanLaunch(appID) {
		l.log.Debug("launch refused", zap.String("app", appID))
		return nil
	}
	def, _ := l.registry.Get(appID)
	v := l.launchAt(def, l.nextCascade())
	return v
}

func (l *Launcher) launchAt(def Definition, pos window.Vec) *window.View {
	v := l.manager.CreateWindow(def.ID, def.Title(), pos)
	l.open[def.ID] = v
	l.log.Info("app launched", zap.String("app", def.ID))
	event.Publish(l.bus, LaunchedEvent{AppID: def.ID, View: v})
	return v
}

// nextCascade staggers successive windows down-right so they do not stack.
func (l *Launcher) nextCascade() window.Vec {
	offset := float64(l.launches%8) * cascadeStep
	l.launches++
	return window.Vec{X: 64 + offset, Y: 48 + offset}
}

// Close closes the app's window and cancels any interaction it held.
func (l *Launcher) Close(appID string) {
	v, ok := l.open[appID]
	if !ok {
		return
	}
	l.manager.CaptureLost(v)
	l.manager.CloseWindow(v)
	delete(l.open, appID)
}

// View returns the open window for appID, or nil.
func (l *Launcher) View(appID string) *window.View {
	if v, ok := l.open[appID]; ok && !v.Closed() {
		return v
	}
	return nil
}

// CaptureSession refreshes session.OpenWindows from live window state.
func (l *Launcher) CaptureSession(session *save.OsSession) {
	l.manager.CaptureSession(session)
}

// RestoreSession reopens the captured windows in saved z-order at their
// saved positions. Apps that are unregistered or no longer launchable are
// skipped.
func (l *Launcher) RestoreSession(session save.OsSession) {
	windows := append([]save.OpenWindow(nil), session.OpenWindows...)
	sort.SliceStable(windows, func(i, j int) bool {
		return windows[i].ZOrder < windows[j].ZOrder
	})
	for _, w := range windows {
		if l.View(w.AppID) != nil || !l.CanLaunch(w.AppID) {
			continue
		}
		def, _ := l.registry.Get(w.AppID)
		l.launchAt(def, window.Vec{X: w.X, Y: w.Y})
	}
}
