package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootFlags struct {
	configPath string
	theme      string
	fromRepo   string
	verbose    bool
}

// isTerminal decides whether the bare command opens the interactive UI.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "devfinder",
		Short:         "devfinder looks up GitHub user profiles",
		Long:          "devfinder looks up a GitHub user profile by username and renders it in the terminal or a browser.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if isTerminal(cmd.OutOrStdout()) {
				return runTUI(cmd, flags)
			}
			return runLookup(cmd, flags, lookupOptions{UseSeed: true})
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to the configuration file (default is the user config directory)")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Initial theme: light or dark")
	cmd.PersistentFlags().StringVar(&flags.fromRepo, "from-repo", "", "Seed the first lookup with the GitHub owner of this repository's origin remote")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newLookupCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
