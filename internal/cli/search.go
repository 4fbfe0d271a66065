package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/trigrman/granola-meetings/internal/output"
)

func NewSearchCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search meetings by title, notes, or overview",
		Long: `Search meetings with a case-insensitive substring match over the title,
plain-text notes and overview. All arguments form one query.

Examples:
  granola search standup
  granola search quarterly planning`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(cmd.OutOrStdout())
			query := strings.Join(args, " ")

			results, err := deps.App.SearchMeetings.Execute(query)
			if err != nil {
				return err
			}

			if deps.Format != output.FormatText {
				return formatter.Structured(deps.Format, results)
			}
			formatter.SearchResults(query, results)
			return nil
		},
	}
}
