package workflows

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mkerring/envelock/internal/patterns"
	"github.com/mkerring/envelock/internal/scan"
	"github.com/mkerring/envelock/internal/vault"
)

// StatusReport is a read-only view of the selection state under a root.
type StatusReport struct {
	// Candidates is the current pattern-selected plaintext set. EncExists
	// distinguishes files already covered by an artifact from new ones.
	Candidates []scan.Candidate

	// Orphans lists artifacts whose plaintext sibling is gone. They are
	// still decryptable but will never be refreshed by an encrypt run.
	Orphans []string

	// NoIncludeRules mirrors the encrypt-plan warning condition.
	NoIncludeRules bool
}

// Status inspects the tree without touching any file contents. It uses the
// same pattern file as encrypt mode, so its output predicts exactly what
// an encrypt batch would select.
func Status(root, patternPath string) (*StatusReport, error) {
	if patternPath == "" {
		patternPath = filepath.Join(root, patterns.DefaultFileName)
	}

	set, err := patterns.Load(patternPath)
	if err != nil {
		return nil, err
	}

	report := &StatusReport{NoIncludeRules: !set.HasIncludes()}

	report.Candidates, err = scan.Discover(root, set)
	if err != nil {
		return nil, err
	}

	artifacts, err := scan.DiscoverEncrypted(root)
	if err != nil {
		return nil, err
	}
	for _, artifact := range artifacts {
		plain := strings.TrimSuffix(artifact, vault.Suffix)
		if _, err := os.Stat(plain); os.IsNotExist(err) {
			report.Orphans = append(report.Orphans, artifact)
		}
	}

	return report, nil
}
