package vfs

import "strings"

// FS resolves absolute paths against a directory tree.
type FS struct {
	root *Directory
}

// New wraps an existing root directory. A nil root is a programming error.
func New(root *Directory) *FS {
	if root == nil {
		panic("vfs: nil root")
	}
	return &FS{root: root}
}

// Root returns the tree root.
func (fs *FS) Root() *Directory { return fs.root }

// Resolve walks an absolute path and returns the node it names, or nil.
//
// Grammar: "" and "/" mean the root; anything else must start with "/".
// Empty segments (from "//" or a trailing slash) are skipped, "." is a
// no-op, ".." moves to the parent and stays put at the root. Traversal
// through a File fails. Relative paths resolve to nil by contract — callers
// join them onto a cwd first (see Join).
func (fs *FS) Resolve(path string) Node {
	if strings.TrimSpace(path) == "" || path == "/" {
		return fs.root
	}
	if !strings.HasPrefix(path, "/") {
		return nil
	}

	var current Node = fs.root
	for _, segment := range strings.Split(path, "/") {
		switch segment {
		case "", ".":
			continue
		case "..":
			if dir, ok := current.(*Directory); ok && dir.Parent() != nil {
				current = dir.Parent()
			}
			continue
		}

		dir, ok := current.(*Directory)
		if !ok {
			return nil
		}
		child := dir.Child(segment)
		if child == nil {
			return nil
		}
		current = child
	}
	return current
}

// ListChildren returns the ordered children of the directory at path, or nil
// if path does not name a directory.
func (fs *FS) ListChildren(path string) []Node {
	dir, ok := fs.Resolve(path).(*Directory)
	if !ok {
		return nil
	}
	return dir.Children()
}

// Join makes path absolute by prefixing base when it is relative. Base is
// assumed to be an absolute directory path ("/" or "/a/b").
func Join(base, path string) string {
	if strings.TrimSpace(path) == "" {
		return base
	}
	if strings.HasPrefix(path, "/") {
		return path
	}
	if base == "" || base == "/" {
		return "/" + path
	}
	return base + "/" + path
}

// FileOpenedEvent is published when the file manager opens a file. Mission
// objectives of the file-open kind key on FullPath.
type FileOpenedEvent struct {
	Name     string
	FullPath string
}
