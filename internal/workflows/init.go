package workflows

import (
	"fmt"
	"os"
	"path/filepath"

	lockerrors "github.com/mkerring/envelock/internal/errors"
	"github.com/mkerring/envelock/internal/patterns"
)

// Init writes the default pattern file into dir and returns its path.
//
// Returns ErrDirectoryNotFound if dir does not exist or is not a
// directory, and ErrPatternFileExists if a pattern file is already present
// and force is false.
func Init(dir string, force bool) (string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", lockerrors.ErrDirectoryNotFound, dir)
	}

	path := filepath.Join(dir, patterns.DefaultFileName)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%w: %s", lockerrors.ErrPatternFileExists, path)
		}
	}

	// #nosec G306 -- the pattern file is configuration, not a secret.
	if err := os.WriteFile(path, []byte(patterns.DefaultContent), 0644); err != nil {
		return "", fmt.Errorf("writing pattern file %s: %w", path, err)
	}

	return path, nil
}
