package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const manifestName = "rsyn.toml"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Roundtrip roundtripConfig `toml:"roundtrip"`
}

// roundtripConfig mirrors the roundtrip command flags; flags win.
type roundtripConfig struct {
	Cases          []string `toml:"cases"`
	Pattern        string   `toml:"pattern"`
	Jobs           int      `toml:"jobs"`
	Cache          string   `toml:"cache"`
	MaxDiagnostics int      `toml:"max_diagnostics"`
}

func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg projectConfig
	meta, err := toml.DecodeFile(manifestPath, &cfg)
	if err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", manifestPath, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, true, fmt.Errorf("%s: unknown key %q", manifestPath, undecoded[0].String())
	}
	if cfg.Roundtrip.Jobs < 0 {
		return nil, true, fmt.Errorf("%s: roundtrip.jobs must not be negative", manifestPath)
	}
	m := &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}
	// пути в манифесте считаются от его каталога
	for i, c := range m.Config.Roundtrip.Cases {
		if !filepath.IsAbs(c) {
			m.Config.Roundtrip.Cases[i] = filepath.Join(m.Root, c)
		}
	}
	if c := m.Config.Roundtrip.Cache; c != "" && c != cacheAuto && !filepath.IsAbs(c) {
		m.Config.Roundtrip.Cache = filepath.Join(m.Root, c)
	}
	return m, true, nil
}
