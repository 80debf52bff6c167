package main

import (
	"github.com/spf13/cobra"

	"github.com/uiforge/uiforge/internal/logger"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "uiforge",
		Short:         "UIForge generates framework-specific UI components and manages design-token themes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.verbose {
				log.EnableDebug()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newGenerateCmd(flags, log))
	cmd.AddCommand(newScaffoldCmd(flags, log))
	cmd.AddCommand(newThemeCmd(flags, log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
