package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Settings *SettingsConfig
	Entities *EntitiesConfig
	Stage    *StageConfig
}

// Loader loads game configuration using fs.FS interface.
// settings.json and entities.json are JSON, stages are YAML.
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadSettings loads settings.json on top of DefaultSettings
func (l *Loader) LoadSettings() (*SettingsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "settings.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read settings.json: %w", err)
	}

	cfg := DefaultSettings()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings.json: %w", err)
	}

	return &cfg, nil
}

// LoadEntities loads entities.json
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	data, err := fs.ReadFile(l.fsys, "entities.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read entities.json: %w", err)
	}

	var cfg EntitiesConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse entities.json: %w", err)
	}

	return &cfg, nil
}

// LoadStage loads and validates stages/<name>.yaml
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".yaml"
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}
	defer f.Close()

	var cfg StageConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}
	if cfg.ID == "" {
		cfg.ID = name
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid stage %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads settings, entities and the named stage concurrently
func (l *Loader) LoadAll(stage string) (*GameConfig, error) {
	var (
		g   errgroup.Group
		cfg GameConfig
	)

	g.Go(func() (err error) {
		cfg.Settings, err = l.LoadSettings()
		return err
	})
	g.Go(func() (err error) {
		cfg.Entities, err = l.LoadEntities()
		return err
	})
	g.Go(func() (err error) {
		cfg.Stage, err = l.LoadStage(stage)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
