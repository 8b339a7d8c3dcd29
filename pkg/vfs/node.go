// Package vfs implements the in-memory file tree the simulated OS runs on.
// It is not backed by the real filesystem: the terminal, file manager and
// installer all operate on this tree and nothing else.
package vfs

// Node is either a *Directory or a *File. Parents own their children; nodes
// are created only through Directory.AddDirectory / Directory.AddFile, which
// keeps the tree acyclic.
type Node interface {
	Name() string
	Parent() *Directory
	// Path is derived from the parent chain; the root is "/".
	Path() string
}

type node struct {
	name   string
	parent *Directory
}

func (n *node) Name() string       { return n.name }
func (n *node) Parent() *Directory { return n.parent }

func (n *node) Path() string {
	if n.parent == nil {
		return "/"
	}
	parentPath := n.parent.Path()
	if parentPath == "/" {
		return "/" + n.name
	}
	return parentPath + "/" + n.name
}

// Directory holds an ordered list of children. Insertion order is the
// listing order; sibling names are not deduplicated and lookup is
// first-match.
type Directory struct {
	node
	children []Node
}

// NewRoot creates a parentless directory. Its path is "/" regardless of name.
func NewRoot(name string) *Directory {
	return &Directory{node: node{name: name}}
}

// Children returns the ordered child list. Callers must not mutate it.
func (d *Directory) Children() []Node { return d.children }

// AddDirectory appends a new empty subdirectory.
func (d *Directory) AddDirectory(name string) *Directory {
	child := &Directory{node: node{name: name, parent: d}}
	d.children = append(d.children, child)
	return child
}

// AddFile appends a new file. Content is fixed at creation.
func (d *Directory) AddFile(name, content string) *File {
	child := &File{node: node{name: name, parent: d}, content: content}
	d.children = append(d.children, child)
	return child
}

// Child returns the first child with the given name, or nil.
func (d *Directory) Child(name string) Node {
	if name == "" {
		return nil
	}
	for _, c := range d.children {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// File is a leaf node with immutable string content.
type File struct {
	node
	content string
}

// Content returns the file body.
func (f *File) Content() string { return f.content }
