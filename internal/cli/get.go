package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trigrman/granola-meetings/internal/domain/meeting/usecases"
	"github.com/trigrman/granola-meetings/internal/output"
)

func NewGetCmd(deps *Dependencies) *cobra.Command {
	var transcript bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one meeting with its notes",
		Long:  "Show one meeting with its AI-generated notes. With --transcript the raw transcript is appended, cut to the configured character budget.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(cmd.OutOrStdout())
			id := args[0]

			detail, ok, err := deps.App.GetMeeting.Execute(id, usecases.GetOptions{
				IncludeTranscript: transcript,
			})
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("meeting %s not found", id)
			}

			if deps.Format != output.FormatText {
				return formatter.Structured(deps.Format, detail)
			}
			formatter.MeetingDetail(detail, deps.Config.TranscriptBudget)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&transcript, "transcript", "t", false, "include the raw transcript")

	return cmd
}
