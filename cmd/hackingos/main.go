package main

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hackingproject/hackingos/pkg/catalog"
	"github.com/hackingproject/hackingos/pkg/game"
	"github.com/hackingproject/hackingos/pkg/save"
	"github.com/hackingproject/hackingos/pkg/tui"
)

var (
	flagDataDir    string
	flagCatalogDir string
	flagDebug      bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hackingos",
		Short: "A simulated hacking desktop that runs in your terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesktop()
		},
	}
	root.PersistentFlags().StringVar(&flagDataDir, "dir", "", "data directory (default: OS data dir)")
	root.PersistentFlags().StringVar(&flagCatalogDir, "catalog", "", "directory with missions.yaml/store.yaml/apps.yaml overrides")
	root.Flags().BoolVar(&flagDebug, "debug", false, "verbose logging")

	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "Inspect or reset the save file",
	}
	saveCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the decoded save snapshot as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showSave()
		},
	})
	saveCmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Delete the save and its backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			return resetSave()
		},
	})
	root.AddCommand(saveCmd)
	return root
}

func dataDir() string {
	if flagDataDir != "" {
		return flagDataDir
	}
	if dir := os.Getenv("HACKINGOS_DIR"); dir != "" {
		return dir
	}
	return save.DefaultDataDir()
}

func runDesktop() error {
	dir := dataDir()
	log, err := game.NewLogger(dir, flagDebug)
	if err != nil {
		return err
	}

	content := catalog.Default()
	if flagCatalogDir != "" {
		content, err = catalog.Load(flagCatalogDir)
		if err != nil {
			return err
		}
	}

	g := game.New(game.Config{
		DataDir: dir,
		Catalog: content,
		Log:     log,
	})
	g.Initialize()

	p := tea.NewProgram(tui.NewModel(g), tea.WithAltScreen(), tea.WithMouseCellMotion())

	if flagCatalogDir != "" {
		cleanup, err := tui.StartCatalogWatcher(flagCatalogDir, p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: catalog watcher failed: %v\n", err)
		} else {
			defer cleanup()
		}
	}

	_, err = p.Run()
	return err
}

func showSave() error {
	svc := save.NewService(dataDir(), nil)
	data, ok := svc.TryLoad()
	if !ok {
		return fmt.Errorf("no readable save in %s", dataDir())
	}
	fmt.Printf("loaded from: %s\n", svc.LastLoadSource())
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func resetSave() error {
	svc := save.NewService(dataDir(), nil)
	if err := svc.DeleteAll(); err != nil {
		return err
	}
	fmt.Println("Save deleted.")
	return nil
}
