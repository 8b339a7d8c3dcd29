package vfs

// Default filesystem layout for a fresh session.
const (
	HomePath      = "/home/user"
	DownloadsPath = "/home/user/downloads"
	DocsPath      = "/home/user/docs"
)

// DefaultTree builds the stock HackingOS filesystem.
func DefaultTree() *FS {
	root := NewRoot("root")
	home := root.AddDirectory("home")
	user := home.AddDirectory("user")
	docs := user.AddDirectory("docs")
	downloads := user.AddDirectory("downloads")

	user.AddFile("readme.txt", "Welcome to HackingOS.")
	docs.AddFile("notes.txt", "Remember to check new messages.")
	docs.AddFile("todo.txt", "- Learn the terminal\n- Organize files")
	downloads.AddFile("installer.log", "Download complete.")

	return New(root)
}
