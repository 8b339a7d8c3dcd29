package save

// Migrate brings a loaded snapshot up to CurrentVersion and fills in fields
// that older saves lack. It is idempotent so calling it on a current snapshot
// is harmless.
func Migrate(data *GameData) {
	if data.OwnedAppIDs == nil {
		data.OwnedAppIDs = []string{}
	}
	if data.InstalledAppIDs == nil {
		data.InstalledAppIDs = []string{}
	}
	if data.OsSession.TerminalCwdPath == "" {
		data.OsSession.TerminalCwdPath = "/home/user"
	}
	if data.OsSession.FileManagerPath == "" {
		data.OsSession.FileManagerPath = "/home/user"
	}
	if data.Credits < 0 {
		data.Credits = 0
	}
	data.Version = CurrentVersion
}
