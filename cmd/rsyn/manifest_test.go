package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadProjectManifest(t *testing.T) {
	root := t.TempDir()
	data := `# test manifest
[roundtrip]
cases = ["tests/cases", "/abs/cases"]
pattern = "*.rs"
jobs = 3
cache = ".cache"
max_diagnostics = 7
`
	require.NoError(t, os.WriteFile(filepath.Join(root, manifestName), []byte(data), 0o600))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	m, found, err := loadProjectManifest(nested)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, root, m.Root)

	cfg := m.Config.Roundtrip
	require.Equal(t, []string{filepath.Join(root, "tests", "cases"), "/abs/cases"}, cfg.Cases)
	require.Equal(t, "*.rs", cfg.Pattern)
	require.Equal(t, 3, cfg.Jobs)
	require.Equal(t, filepath.Join(root, ".cache"), cfg.Cache)
	require.Equal(t, 7, cfg.MaxDiagnostics)
}

func TestLoadProjectManifestErrors(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, manifestName)

	require.NoError(t, os.WriteFile(path, []byte("[roundtrip]\ncases = 1\n"), 0o600))
	_, found, err := loadProjectManifest(root)
	require.True(t, found)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("[roundtrip]\ntypo = true\n"), 0o600))
	_, _, err = loadProjectManifest(root)
	require.ErrorContains(t, err, "roundtrip.typo")

	require.NoError(t, os.WriteFile(path, []byte("[roundtrip]\ncache = \"auto\"\n"), 0o600))
	m, _, err := loadProjectManifest(root)
	require.NoError(t, err)
	require.Equal(t, cacheAuto, m.Config.Roundtrip.Cache)
}
