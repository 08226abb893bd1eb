package roundtrip

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
)

// DefaultPattern matches every source file below the root.
const DefaultPattern = "**/*.rs"

// Discover returns the files under root matching pattern, sorted.
// Paths are root-joined so they can be opened directly.
func Discover(root, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Newf("invalid pattern %q", pattern)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, "corpus root %s", root)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}
	matches, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Wrapf(err, "glob %s in %s", pattern, root)
	}
	files := make([]string, len(matches))
	for i, m := range matches {
		files[i] = filepath.Join(root, filepath.FromSlash(m))
	}
	sort.Strings(files)
	return files, nil
}
