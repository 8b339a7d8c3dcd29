package catalog

import (
	"github.com/hackingproject/hackingos/pkg/app"
	"github.com/hackingproject/hackingos/pkg/mission"
	"github.com/hackingproject/hackingos/pkg/store"
	"github.com/hackingproject/hackingos/pkg/vfs"
)

// DefaultMissions is the built-in mission chain.
func DefaultMissions() []*mission.Definition {
	return []*mission.Definition{
		{
			ID:            "orientation",
			Title:         "Orientation",
			Description:   "Get familiar with the terminal.",
			RewardCredits: 25,
			Objectives: []mission.Objective{
				{Type: mission.ObjectiveTerminalCommand, Description: "List the home directory", Command: "ls"},
				{Type: mission.ObjectiveTerminalCommand, Description: "Read the readme", Command: "cat", Path: vfs.HomePath + "/readme.txt"},
			},
		},
		{
			ID:            "first-lead",
			Title:         "First Lead",
			Description:   "Someone left notes lying around. Find them.",
			RewardCredits: 50,
			Objectives: []mission.Objective{
				{Type: mission.ObjectiveTerminalCommand, Description: "Move into the docs directory", Command: "cd", Path: vfs.DocsPath},
				{Type: mission.ObjectiveFileOpened, Description: "Open the notes", Path: vfs.DocsPath + "/notes.txt"},
			},
		},
		{
			ID:            "tool-up",
			Title:         "Tool Up",
			Description:   "Buy the decryptor from the store and install it.",
			RewardCredits: 40,
			Objectives: []mission.Objective{
				{Type: mission.ObjectiveTerminalCommand, Description: "Install the decryptor", Command: "install"},
			},
		},
	}
}

// DefaultItems is the built-in store stock.
func DefaultItems() []store.Item {
	return []store.Item{
		{
			ID:          "store-decryptor",
			DisplayName: "Decryptor",
			Description: "Cracks weak ciphers on downloaded files.",
			Price:       25,
			AppID:       "decryptor",
		},
		{
			ID:          "store-netmapper",
			DisplayName: "NetMapper",
			Description: "Maps remote hosts onto the desktop.",
			Price:       120,
			AppID:       "netmapper",
		},
	}
}

// DefaultApps is the built-in app registry content. Builtin apps ship with
// the OS; the rest arrive through the store.
func DefaultApps() []app.Definition {
	return []app.Definition{
		{ID: "terminal", DisplayName: "Terminal", Builtin: true},
		{ID: "files", DisplayName: "Files", DefaultTitle: "File Manager", Builtin: true},
		{ID: "missions", DisplayName: "Missions", Builtin: true},
		{ID: "store", DisplayName: "Store", Builtin: true},
		{ID: "notes", DisplayName: "Notes", Builtin: true},
		{ID: "decryptor", DisplayName: "Decryptor"},
		{ID: "netmapper", DisplayName: "NetMapper"},
	}
}
