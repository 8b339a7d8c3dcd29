// Package terminal implements the in-simulation command line: a session that
// tracks a working directory inside the virtual filesystem and a processor
// that dispatches typed commands. It is not a process shell; commands operate
// only on in-game state.
package terminal

import "github.com/hackingproject/hackingos/pkg/vfs"

// Session tracks the current working directory. It always points at a
// Directory; a start path that does not resolve falls back to the VFS root.
type Session struct {
	fs  *vfs.FS
	cwd *vfs.Directory
}

// NewSession creates a session rooted at startPath, or at the VFS root when
// startPath does not resolve to a directory.
func NewSession(fs *vfs.FS, startPath string) *Session {
	s := &Session{fs: fs, cwd: fs.Root()}
	if dir, ok := fs.Resolve(startPath).(*vfs.Directory); ok {
		s.cwd = dir
	}
	return s
}

// CurrentDirectory returns the session's working directory.
func (s *Session) CurrentDirectory() *vfs.Directory { return s.cwd }

// CurrentPath returns the absolute path of the working directory.
func (s *Session) CurrentPath() string { return s.cwd.Path() }

// SetCurrentDirectory moves the session. Nil directories are ignored.
func (s *Session) SetCurrentDirectory(dir *vfs.Directory) {
	if dir != nil {
		s.cwd = dir
	}
}
