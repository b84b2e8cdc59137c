package cmd

import (
	logger "github.com/mkerring/envelock/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "envelock",
		Short: "Encrypt sensitive files so only their .enc siblings get committed",
		Long: `Envelock finds files matching the patterns in .sensitive-file-patterns
and encrypts each one into a sibling .enc artifact with a password of your
choosing. The artifacts are safe to commit to version control; the
originals stay untracked.

Run 'envelock init <directory>' once to scaffold the pattern file, then
'envelock encrypt <directory>' and 'envelock decrypt <directory>' as part
of your normal workflow.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing envelock with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(statusCmd)
}
