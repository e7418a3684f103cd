package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

// New builds the engagement command tree.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "engagement <command> <subcommand> [flags]",
		Short:         "Reactions, views and comments for community content",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: heredoc.Doc(`
			Engagement serves reactions, view counters and threaded comments
			for events, news and directory listings.`),
	}

	cmd.AddCommand(
		ServerCmd(),
		JobCmd(),
	)

	return cmd
}
