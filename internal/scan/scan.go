package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	lockerrors "github.com/mkerring/envelock/internal/errors"
	"github.com/mkerring/envelock/internal/patterns"
	"github.com/mkerring/envelock/internal/vault"
)

// Candidate is one file selected for transformation. EncExists records
// whether a sibling artifact already exists; it only drives the
// new-vs-overwrite annotation in the selection listing, never selection
// itself.
type Candidate struct {
	Path      string
	EncExists bool
}

// Discover walks root and returns every regular file whose basename is
// selected by the pattern set, excluding encrypted artifacts themselves.
// Results are deduplicated and sorted by path so repeated runs over the
// same tree produce identical selections.
func Discover(root string, set *patterns.Set) ([]Candidate, error) {
	if err := checkDir(root); err != nil {
		return nil, err
	}

	paths, err := walkMatching(root, func(name string) bool {
		return set.Matches(name) && !vault.IsEncrypted(name)
	})
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(paths))
	for _, p := range paths {
		_, statErr := os.Stat(p + vault.Suffix)
		candidates = append(candidates, Candidate{Path: p, EncExists: statErr == nil})
	}

	return candidates, nil
}

// DiscoverEncrypted walks root and returns every encrypted artifact,
// sorted by path. Decrypt mode targets all artifacts unconditionally and
// never consults the pattern set.
func DiscoverEncrypted(root string) ([]string, error) {
	if err := checkDir(root); err != nil {
		return nil, err
	}

	return walkMatching(root, vault.IsEncrypted)
}

func checkDir(root string) error {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", lockerrors.ErrDirectoryNotFound, root)
	}
	return nil
}

// walkMatching collects regular files under root whose basename satisfies
// match. WalkDir never follows symlinks, so symlink loops cannot trap the
// walk, and irregular files are skipped outright.
func walkMatching(root string, match func(name string) bool) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		if match(d.Name()) && !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}
