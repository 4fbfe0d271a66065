package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/trigrman/granola-meetings/internal/output"
)

func NewNotesCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "notes [limit]",
		Short: "Print the AI-generated notes of recent meetings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(cmd.OutOrStdout())

			limit := deps.Config.NotesLimit
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					return fmt.Errorf("invalid limit %q: must be a positive number", args[0])
				}
				limit = n
			}

			entries, err := deps.App.RecentNotes.Execute(limit)
			if err != nil {
				return err
			}

			if deps.Format != output.FormatText {
				return formatter.Structured(deps.Format, entries)
			}
			formatter.NotesList(entries)
			return nil
		},
	}
}
