package cmd

import (
	"errors"
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	lockerrors "github.com/mkerring/envelock/internal/errors"
	"github.com/mkerring/envelock/internal/workflows"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing pattern file")
}

var initCmd = &cobra.Command{
	Use:   "init <directory>",
	Short: "Writes a default .sensitive-file-patterns file into the directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]

		path, err := workflows.Init(dir, initForce)
		if err != nil {
			switch {
			case errors.Is(err, lockerrors.ErrDirectoryNotFound):
				Logger.Errorf("%s does not exist or is not a directory", dir)
			case errors.Is(err, lockerrors.ErrPatternFileExists):
				Logger.Errorf("%v", err)
				Logger.WarnfAlways("Use --force to overwrite it")
			default:
				Logger.Errorf("Failed to initialize: %v", err)
			}
			return err
		}

		figure.NewFigure("envelock", "", true).Print()
		fmt.Println()
		fmt.Println(color.GreenString("✓") + " Created " + color.YellowString(path))
		fmt.Println(color.CyanString("→") + " Edit it to match your project, then run " + color.YellowString("envelock encrypt "+dir))

		return nil
	},
}
