package cli

import (
	"github.com/spf13/cobra"

	"github.com/trigrman/granola-meetings/internal/output"
)

func NewListCmd(deps *Dependencies) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent meetings grouped by day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(cmd.OutOrStdout())

			if limit <= 0 {
				limit = deps.Config.ListLimit
			}
			meetings, err := deps.App.ListMeetings.Execute(limit)
			if err != nil {
				return err
			}

			if deps.Format != output.FormatText {
				return formatter.Structured(deps.Format, meetings)
			}
			if len(meetings) == 0 {
				formatter.Info("No meetings found")
				return nil
			}
			formatter.MeetingList(meetings)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of meetings to list (default from config)")

	return cmd
}
