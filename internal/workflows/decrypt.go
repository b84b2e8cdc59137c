package workflows

import (
	"context"

	"github.com/mkerring/envelock/internal/scan"
	"github.com/mkerring/envelock/internal/vault"
)

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// Root is the directory to search for encrypted artifacts.
	Root string

	// Config carries the cipher parameters. Zero value means DefaultConfig.
	Config vault.Config
}

// DecryptPlan is the resolved artifact list for a decrypt batch. Decrypt
// mode targets every artifact under Root and never consults the pattern
// file.
type DecryptPlan struct {
	// Root is the directory that was searched.
	Root string

	// Artifacts is the path-sorted list of encrypted files.
	Artifacts []string

	config vault.Config
}

// PlanDecrypt discovers every encrypted artifact under the root.
//
// Returns ErrDirectoryNotFound if Root does not exist or is not a
// directory.
func PlanDecrypt(opts DecryptOptions) (*DecryptPlan, error) {
	artifacts, err := scan.DiscoverEncrypted(opts.Root)
	if err != nil {
		return nil, err
	}

	cfg := opts.Config
	if cfg.Iterations == 0 {
		cfg = vault.DefaultConfig()
	}

	return &DecryptPlan{Root: opts.Root, Artifacts: artifacts, config: cfg}, nil
}

// Run decrypts every artifact in the plan with per-file failure isolation.
// Each file is decrypted atomically: the plaintext lands under its final
// name only once fully written, so a wrong password leaves any existing
// plaintext byte-for-byte unchanged. The context is checked between files
// only.
func (p *DecryptPlan) Run(ctx context.Context, password []byte) Summary {
	var summary Summary

	for _, artifact := range p.Artifacts {
		if ctx.Err() != nil {
			summary.Aborted = true
			break
		}

		output, err := p.config.DecryptFile(artifact, password)
		summary.record(Outcome{Path: artifact, Output: output, Err: err})
	}

	return summary
}
