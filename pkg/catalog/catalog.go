// Package catalog loads the game's content definitions (missions, store
// items, apps) from YAML files, with built-in defaults when no files exist.
// Catalog data is immutable once loaded; services take it by value at
// startup.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hackingproject/hackingos/pkg/app"
	"github.com/hackingproject/hackingos/pkg/mission"
	"github.com/hackingproject/hackingos/pkg/store"
)

const (
	missionsFile = "missions.yaml"
	storeFile    = "store.yaml"
	appsFile     = "apps.yaml"
)

// Catalog is the full content set.
type Catalog struct {
	Missions []*mission.Definition `yaml:"missions"`
	Items    []store.Item          `yaml:"items"`
	Apps     []app.Definition      `yaml:"apps"`
}

// Load reads the three catalog files from dir. A missing file falls back to
// its built-in default; a malformed file is an error.
func Load(dir string) (*Catalog, error) {
	c := &Catalog{}

	var missions struct {
		Missions []*mission.Definition `yaml:"missions"`
	}
	if err := readYAML(filepath.Join(dir, missionsFile), &missions); err != nil {
		return nil, err
	}
	c.Missions = missions.Missions
	if c.Missions == nil {
		c.Missions = DefaultMissions()
	}

	var items struct {
		Items []store.Item `yaml:"items"`
	}
	if err := readYAML(filepath.Join(dir, storeFile), &items); err != nil {
		return nil, err
	}
	c.Items = items.Items
	if c.Items == nil {
		c.Items = DefaultItems()
	}

	var apps struct {
		Apps []app.Definition `yaml:"apps"`
	}
	if err := readYAML(filepath.Join(dir, appsFile), &apps); err != nil {
		return nil, err
	}
	c.Apps = apps.Apps
	if c.Apps == nil {
		c.Apps = DefaultApps()
	}

	return c, nil
}

// Default returns the built-in content set.
func Default() *Catalog {
	return &Catalog{
		Missions: DefaultMissions(),
		Items:    DefaultItems(),
		Apps:     DefaultApps(),
	}
}

func readYAML(path string, out any) error {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading catalog file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing catalog file %s: %w", path, err)
	}
	return nil
}
