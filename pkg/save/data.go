// Package save persists the game snapshot to disk with crash safety: writes
// go through a temp file and an atomic promote that keeps the previous valid
// save as a backup, and every load verifies a sha-256 digest before trusting
// the payload.
package save

// CurrentVersion is stamped into every written snapshot and is the target
// of migration.
const CurrentVersion = 1

// OpenWindow records one window of the desktop session.
type OpenWindow struct {
	AppID  string  `json:"appId"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	ZOrder int     `json:"zOrder"`
}

// OsSession is the restorable desktop state: which windows were open and
// where, plus the working paths of the terminal and file manager.
type OsSession struct {
	OpenWindows     []OpenWindow `json:"openWindows"`
	TerminalCwdPath string       `json:"terminalCwdPath"`
	FileManagerPath string       `json:"fileManagerPath"`
}

// GameData is the full persisted snapshot. It is mutated in place throughout
// a session and written on save events; the owned/installed lists are the
// source of truth for the store and install services.
type GameData struct {
	Version         int       `json:"version"`
	LastSavedUtcIso string    `json:"lastSavedUtcIso"`
	Credits         int       `json:"credits"`
	OsSession       OsSession `json:"osSession"`
	OwnedAppIDs     []string  `json:"ownedAppIds"`
	InstalledAppIDs []string  `json:"installedAppIds"`
}

// NewGameData returns a fresh default snapshot.
func NewGameData() *GameData {
	return &GameData{
		Version: CurrentVersion,
		OsSession: OsSession{
			TerminalCwdPath: "/home/user",
			FileManagerPath: "/home/user",
		},
		OwnedAppIDs:     []string{},
		InstalledAppIDs: []string{},
	}
}

// Owns reports whether appID is in the owned list.
func (d *GameData) Owns(appID string) bool {
	return contains(d.OwnedAppIDs, appID)
}

// Installed reports whether appID is in the installed list.
func (d *GameData) Installed(appID string) bool {
	return contains(d.InstalledAppIDs, appID)
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

// LoadedEvent is published once at startup after the snapshot is loaded or
// defaulted.
type LoadedEvent struct {
	Data   *GameData
	Source LoadSource
}

// CompletedEvent is published after a successful write.
type CompletedEvent struct {
	Data *GameData
}

// SessionCaptureEvent asks session owners (the app launcher) to refresh the
// OsSession snapshot just before it is written.
type SessionCaptureEvent struct {
	Session *OsSession
}
