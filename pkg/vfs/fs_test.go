package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestFS() *FS {
	root := NewRoot("root")
	a := root.AddDirectory("a")
	b := a.AddDirectory("b")
	b.AddFile("file.txt", "hello")
	root.AddFile("top.txt", "top")
	return New(root)
}

func TestResolveRoot(t *testing.T) {
	fs := buildTestFS()

	assert.Equal(t, fs.Root(), fs.Resolve("/"))
	assert.Equal(t, fs.Root(), fs.Resolve(""))
	assert.Equal(t, fs.Root(), fs.Resolve("   "))
}

func TestResolveNestedPath(t *testing.T) {
	fs := buildTestFS()

	node := fs.Resolve("/a/b/file.txt")
	require.NotNil(t, node)
	file, ok := node.(*File)
	require.True(t, ok)
	assert.Equal(t, "hello", file.Content())
	assert.Equal(t, "/a/b/file.txt", file.Path())
}

func TestResolveRelativePathIsNil(t *testing.T) {
	fs := buildTestFS()
	assert.Nil(t, fs.Resolve("a/b"))
}

func TestResolveMissingSegment(t *testing.T) {
	fs := buildTestFS()
	assert.Nil(t, fs.Resolve("/a/nope"))
	assert.Nil(t, fs.Resolve("/nope/b"))
}

func TestResolveDotAndDotDot(t *testing.T) {
	fs := buildTestFS()

	assert.Equal(t, fs.Resolve("/a"), fs.Resolve("/a/./."))
	assert.Equal(t, fs.Resolve("/a"), fs.Resolve("/a/b/.."))
	assert.Equal(t, fs.Resolve("/a"), fs.Resolve("/a/../a"))

	// ".." at the root stays at the root.
	assert.Equal(t, fs.Root(), fs.Resolve("/.."))
	assert.Equal(t, fs.Resolve("/a"), fs.Resolve("/../../a"))
}

func TestResolveSkipsEmptySegments(t *testing.T) {
	fs := buildTestFS()

	assert.Equal(t, fs.Resolve("/a/b"), fs.Resolve("//a//b/"))
	assert.Equal(t, fs.Resolve("/a"), fs.Resolve("/a/"))
}

func TestResolveThroughFileFails(t *testing.T) {
	fs := buildTestFS()
	assert.Nil(t, fs.Resolve("/top.txt/anything"))
}

func TestListChildrenOrder(t *testing.T) {
	root := NewRoot("root")
	root.AddDirectory("z")
	root.AddFile("a.txt", "")
	root.AddDirectory("m")
	fs := New(root)

	children := fs.ListChildren("/")
	require.Len(t, children, 3)
	assert.Equal(t, "z", children[0].Name())
	assert.Equal(t, "a.txt", children[1].Name())
	assert.Equal(t, "m", children[2].Name())
}

func TestListChildrenNonDirectory(t *testing.T) {
	fs := buildTestFS()
	assert.Empty(t, fs.ListChildren("/top.txt"))
	assert.Empty(t, fs.ListChildren("/missing"))
}

func TestChildFirstMatch(t *testing.T) {
	root := NewRoot("root")
	first := root.AddFile("dup", "one")
	root.AddFile("dup", "two")

	assert.Equal(t, Node(first), root.Child("dup"))
	assert.Nil(t, root.Child(""))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "/abs", Join("/home", "/abs"))
	assert.Equal(t, "/home/rel", Join("/home", "rel"))
	assert.Equal(t, "/rel", Join("/", "rel"))
	assert.Equal(t, "/home", Join("/home", ""))
}

func TestDefaultTree(t *testing.T) {
	fs := DefaultTree()

	downloads, ok := fs.Resolve(DownloadsPath).(*Directory)
	require.True(t, ok)
	assert.NotNil(t, downloads.Child("installer.log"))

	readme, ok := fs.Resolve(HomePath + "/readme.txt").(*File)
	require.True(t, ok)
	assert.Equal(t, "Welcome to HackingOS.", readme.Content())

	notes, ok := fs.Resolve(DocsPath + "/notes.txt").(*File)
	require.True(t, ok)
	assert.NotEmpty(t, notes.Content())
}
