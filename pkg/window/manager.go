package window

import (
	"go.uber.org/zap"

	"github.com/hackingproject/hackingos/pkg/save"
)

// Manager owns the window list. List order is z-order: the last element is
// the topmost window. A window appears at most once.
type Manager struct {
	log     *zap.Logger
	windows []*View
	bounds  Vec
}

func NewManager(log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{log: log}
}

// Windows returns the z-ordered window list, bottom first.
func (m *Manager) Windows() []*View { return m.windows }

// Topmost returns the focused window, or nil when none are open.
func (m *Manager) Topmost() *View {
	if len(m.windows) == 0 {
		return nil
	}
	return m.windows[len(m.windows)-1]
}

// CreateWindow opens a window at position and puts it on top. The initial
// bounds clamp is deferred to the next Layout call, when container and
// window dimensions are known.
func (m *Manager) CreateWindow(appID, title string, position Vec) *View {
	v := &View{
		AppID:      appID,
		Title:      title,
		Position:   position,
		Size:       Vec{X: MinWidth, Y: MinHeight},
		pointerID:  noPointer,
		needsClamp: true,
	}
	m.windows = append(m.windows, v)
	m.log.Debug("window created", zap.String("app", appID), zap.String("title", title))
	return v
}

// SetContainerBounds records the desktop size and runs a layout pass.
func (m *Manager) SetContainerBounds(bounds Vec) {
	m.bounds = bounds
	m.Layout()
}

// Layout applies any deferred clamps. Skipped while the container is
// degenerate.
func (m *Manager) Layout() {
	if m.bounds.X <= 0 || m.bounds.Y <= 0 {
		return
	}
	for _, v := range m.windows {
		if v.needsClamp {
			v.needsClamp = false
			m.clamp(v)
		}
	}
}

// BringToFront moves v to the z-order tail and re-clamps it. Untracked or
// closed views are ignored.
func (m *Manager) BringToFront(v *View) {
	idx := m.indexOf(v)
	if idx < 0 {
		return
	}
	m.windows = append(append(m.windows[:idx:idx], m.windows[idx+1:]...), v)
	m.clamp(v)
}

// CloseWindow removes v from the z-order and cancels any interaction it
// owns. Closing twice is a no-op.
func (m *Manager) CloseWindow(v *View) {
	idx := m.indexOf(v)
	if idx < 0 {
		return
	}
	v.clearInteraction()
	v.closed = true
	m.windows = append(m.windows[:idx:idx], m.windows[idx+1:]...)
	m.log.Debug("window closed", zap.String("app", v.AppID))
}

// HitTest returns the topmost window containing p, or nil.
func (m *Manager) HitTest(p Vec) *View {
	for i := len(m.windows) - 1; i >= 0; i-- {
		if m.windows[i].Contains(p) {
			return m.windows[i]
		}
	}
	return nil
}

// PointerDown begins an interaction on v with the given pointer. The window
// is focused first so it is on top before any drag or resize starts. A
// pointer-down while another pointer holds an interaction on this window is
// ignored. The resize hot-zone wins over drag.
func (m *Manager) PointerDown(v *View, pointerID int, p Vec) {
	if v == nil || v.closed {
		return
	}
	m.BringToFront(v)
	if v.mode != modeIdle {
		return
	}
	v.pointerID = pointerID
	v.startPointer = p
	if v.inResizeZone(p) {
		v.mode = modeResizing
		v.startSize = v.Size
	} else {
		v.mode = modeDragging
		v.startPos = v.Position
	}
}

// PointerMove updates an in-progress drag or resize. Moves from any other
// pointer are ignored. An idle move only refreshes the resize-corner hover
// affordance on the topmost window under the pointer.
func (m *Manager) PointerMove(v *View, pointerID int, p Vec) {
	if v == nil || v.closed {
		return
	}
	if v.mode == modeIdle {
		v.resizeHot = v.inResizeZone(p)
		return
	}
	if v.pointerID != pointerID {
		return
	}
	delta := p.Sub(v.startPointer)
	switch v.mode {
	case modeDragging:
		v.Position = v.startPos.Add(delta)
	case modeResizing:
		v.Size = Vec{
			X: max(MinWidth, v.startSize.X+delta.X),
			Y: max(MinHeight, v.startSize.Y+delta.Y),
		}
	}
	m.clamp(v)
}

// PointerUp ends the interaction owned by pointerID. Ups from other pointers
// are ignored so the owning pointer keeps its claim.
func (m *Manager) PointerUp(v *View, pointerID int) {
	if v == nil || v.mode == modeIdle || v.pointerID != pointerID {
		return
	}
	v.clearInteraction()
	m.clamp(v)
}

// CaptureLost cancels any interaction on v unconditionally. Called when the
// platform revokes pointer capture, for example when a window closes
// mid-drag.
func (m *Manager) CaptureLost(v *View) {
	if v == nil {
		return
	}
	v.clearInteraction()
}

// clamp keeps at least MinVisibleWidth of the window's horizontal extent and
// the full titlebar inside the container. Skipped while the container has no
// size yet.
func (m *Manager) clamp(v *View) {
	if m.bounds.X <= 0 || m.bounds.Y <= 0 {
		return
	}
	minX := MinVisibleWidth - v.Size.X
	maxX := m.bounds.X - MinVisibleWidth
	v.Position.X = min(max(v.Position.X, minX), maxX)

	maxY := m.bounds.Y - TitlebarHeight
	v.Position.Y = min(max(v.Position.Y, 0), maxY)
}

func (m *Manager) indexOf(v *View) int {
	for i, w := range m.windows {
		if w == v {
			return i
		}
	}
	return -1
}

// CaptureSession snapshots the open windows into session data, z-order
// bottom first.
func (m *Manager) CaptureSession(session *save.OsSession) {
	session.OpenWindows = session.OpenWindows[:0]
	for z, v := range m.windows {
		session.OpenWindows = append(session.OpenWindows, save.OpenWindow{
			AppID:  v.AppID,
			X:      v.Position.X,
			Y:      v.Position.Y,
			ZOrder: z,
		})
	}
}
