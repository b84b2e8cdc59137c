package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	lockerrors "github.com/mkerring/envelock/internal/errors"
	"github.com/mkerring/envelock/internal/utils"
	"github.com/mkerring/envelock/internal/workflows"
)

var statusPatternPath string

func init() {
	statusCmd.Flags().StringVar(&statusPatternPath, "patterns", "", "path to the pattern file (default: <directory>/.sensitive-file-patterns)")
}

var statusCmd = &cobra.Command{
	Use:   "status <directory>",
	Short: "Shows which files would be encrypted and which artifacts are orphaned",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := args[0]

		report, err := workflows.Status(root, statusPatternPath)
		if err != nil {
			switch {
			case errors.Is(err, lockerrors.ErrPatternFileNotFound):
				Logger.Errorf("No pattern file found in %s; run 'envelock init %s' to create one", root, root)
			case errors.Is(err, lockerrors.ErrDirectoryNotFound):
				Logger.Errorf("%s does not exist or is not a directory", root)
			default:
				Logger.Errorf("Failed to inspect %s: %v", root, err)
			}
			return err
		}

		if report.NoIncludeRules {
			Logger.WarnfAlways("Pattern file contains no include rules; nothing can be selected")
		}

		if len(report.Candidates) == 0 {
			fmt.Println(color.YellowString("⚠") + " No sensitive files found in " + color.YellowString(root))
		} else {
			paths := make([]string, len(report.Candidates))
			annotations := make([]string, len(report.Candidates))
			for i, c := range report.Candidates {
				paths[i] = c.Path
				if c.EncExists {
					annotations[i] = "encrypted copy exists"
				} else {
					annotations[i] = "not yet encrypted"
				}
			}
			fmt.Printf("%s %d sensitive file(s) under %s:%s",
				color.GreenString("✓"), len(report.Candidates), color.YellowString(root),
				utils.FormatAnnotatedPaths(paths, annotations))
		}

		if len(report.Orphans) > 0 {
			fmt.Printf("%s %d orphaned artifact(s) with no plaintext sibling:%s",
				color.YellowString("⚠"), len(report.Orphans), utils.FormatPaths(report.Orphans))
			fmt.Println(color.CyanString("→") + " Run " + color.YellowString("envelock decrypt "+root) + " to restore them")
		}

		return nil
	},
}
