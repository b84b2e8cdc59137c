package workflows

import (
	"context"
	"path/filepath"

	"github.com/mkerring/envelock/internal/patterns"
	"github.com/mkerring/envelock/internal/scan"
	"github.com/mkerring/envelock/internal/vault"
)

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	// Root is the directory to search for sensitive files.
	Root string

	// PatternPath overrides the pattern file location. If empty, the
	// default pattern file in Root is used.
	PatternPath string

	// Config carries the cipher parameters. Zero value means DefaultConfig.
	Config vault.Config
}

// EncryptPlan is the resolved selection for an encrypt batch, built before
// any password is requested so an empty selection never prompts.
type EncryptPlan struct {
	// Root is the directory that was searched.
	Root string

	// Candidates is the path-sorted selection.
	Candidates []scan.Candidate

	// NoIncludeRules is set when the pattern file parsed but contains no
	// include rules. The selection is necessarily empty; callers report a
	// configuration warning rather than a fatal error.
	NoIncludeRules bool

	config vault.Config
}

// PlanEncrypt loads the pattern set and discovers the candidate files.
//
// Returns ErrPatternFileNotFound if the pattern file is missing and
// ErrDirectoryNotFound if Root does not exist or is not a directory.
func PlanEncrypt(opts EncryptOptions) (*EncryptPlan, error) {
	patternPath := opts.PatternPath
	if patternPath == "" {
		patternPath = filepath.Join(opts.Root, patterns.DefaultFileName)
	}

	set, err := patterns.Load(patternPath)
	if err != nil {
		return nil, err
	}

	cfg := opts.Config
	if cfg.Iterations == 0 {
		cfg = vault.DefaultConfig()
	}

	plan := &EncryptPlan{Root: opts.Root, config: cfg}

	if !set.HasIncludes() {
		// Still stat the root so a bad directory outranks the warning.
		if _, err := scan.Discover(opts.Root, set); err != nil {
			return nil, err
		}
		plan.NoIncludeRules = true
		return plan, nil
	}

	plan.Candidates, err = scan.Discover(opts.Root, set)
	if err != nil {
		return nil, err
	}

	return plan, nil
}

// Run encrypts every candidate in the plan. One file's failure never halts
// the batch; each outcome is recorded and processing continues. The
// context is checked between files only, so no artifact is ever abandoned
// mid-write.
func (p *EncryptPlan) Run(ctx context.Context, password []byte) Summary {
	var summary Summary

	for _, c := range p.Candidates {
		if ctx.Err() != nil {
			summary.Aborted = true
			break
		}

		output, err := p.config.EncryptFile(c.Path, password)
		summary.record(Outcome{Path: c.Path, Output: output, Err: err})
	}

	return summary
}
