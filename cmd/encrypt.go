package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	lockerrors "github.com/mkerring/envelock/internal/errors"
	"github.com/mkerring/envelock/internal/password"
	"github.com/mkerring/envelock/internal/utils"
	"github.com/mkerring/envelock/internal/vault"
	"github.com/mkerring/envelock/internal/workflows"
)

var (
	encryptDryRun      bool
	encryptYes         bool
	encryptPatternPath string
)

func init() {
	encryptCmd.Flags().BoolVar(&encryptDryRun, "dry-run", false, "list the files that would be encrypted and stop")
	encryptCmd.Flags().BoolVarP(&encryptYes, "yes", "y", false, "skip the confirmation prompt")
	encryptCmd.Flags().StringVar(&encryptPatternPath, "patterns", "", "path to the pattern file (default: <directory>/.sensitive-file-patterns)")
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt <directory>",
	Short: "Encrypts every sensitive file under the directory into .enc siblings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")
		spinner, cleanup := startSpinner("Scanning for sensitive files...", verbose)
		defer cleanup()

		root := args[0]
		plan, err := workflows.PlanEncrypt(workflows.EncryptOptions{
			Root:        root,
			PatternPath: encryptPatternPath,
		})
		if err != nil {
			switch {
			case errors.Is(err, lockerrors.ErrPatternFileNotFound):
				spinner.FinalMSG = color.RedString("✗") + " No pattern file found in " + color.YellowString(root) + "\n" +
					color.CyanString("→") + " Run " + color.YellowString("envelock init "+root) + " to create one"
			case errors.Is(err, lockerrors.ErrDirectoryNotFound):
				spinner.FinalMSG = color.RedString("✗") + " " + color.YellowString(root) + " does not exist or is not a directory"
			default:
				Logger.Errorf("Failed to plan encryption: %v", err)
			}
			return err
		}

		if plan.NoIncludeRules {
			Logger.WarnfAlways("Pattern file contains no include rules; nothing can be selected")
			spinner.FinalMSG = color.RedString("✗") + " No sensitive files found in " + color.YellowString(root)
			return nil
		}

		if len(plan.Candidates) == 0 {
			spinner.FinalMSG = color.RedString("✗") + " No sensitive files found in " + color.YellowString(root)
			return nil
		}
		Logger.Debugf("Found %d candidate files", len(plan.Candidates))

		paths := make([]string, len(plan.Candidates))
		annotations := make([]string, len(plan.Candidates))
		for i, c := range plan.Candidates {
			paths[i] = c.Path
			if c.EncExists {
				annotations[i] = "overwrites " + filepath.Base(c.Path) + vault.Suffix
			} else {
				annotations[i] = "new"
			}
		}

		resume := pauseSpinner(spinner)
		fmt.Printf("Found %d sensitive file(s) in %s:%s",
			len(plan.Candidates), color.YellowString(root),
			utils.FormatAnnotatedPaths(paths, annotations))

		if encryptDryRun {
			spinner.FinalMSG = color.CyanString("→") + " Dry run: no files were modified"
			return nil
		}

		if !encryptYes && !utils.Confirm(fmt.Sprintf("Encrypt %d file(s)?", len(plan.Candidates))) {
			spinner.FinalMSG = color.CyanString("→") + " Aborted, no files were modified"
			return nil
		}

		// Password prompting happens only after files are confirmed to
		// exist, so an empty tree never asks anyone to mint a secret.
		secret, err := password.Acquire(utils.ReadPassphrase, password.DefaultPolicy(), Logger)
		if err != nil {
			Logger.Errorf("Password entry failed: %v", err)
			return err
		}
		defer password.Wipe(secret)

		resume("Encrypting files...")
		summary := plan.Run(cmd.Context(), secret)

		if summary.Aborted {
			spinner.FinalMSG = color.RedString("✗") + fmt.Sprintf(" Interrupted: %d file(s) encrypted, %d failed",
				summary.Succeeded, summary.Failed)
			return nil
		}

		for _, o := range summary.Outcomes {
			if o.Err != nil {
				Logger.WarnfAlways("Failed to encrypt %s: %v", o.Path, o.Err)
			}
		}

		if summary.Failed > 0 {
			// Partial encryption still exits zero: every artifact that was
			// written is valid, and the summary names the stragglers.
			spinner.FinalMSG = color.YellowString("⚠") + fmt.Sprintf(" Encrypted %d of %d file(s); %d failed",
				summary.Succeeded, len(plan.Candidates), summary.Failed)
			return nil
		}

		spinner.FinalMSG = color.GreenString("✓") + fmt.Sprintf(" Encrypted %d file(s) successfully!\n", summary.Succeeded) +
			color.CyanString("→") + " You can now safely commit the " + color.YellowString(vault.Suffix) + " files to version control"
		return nil
	},
}
