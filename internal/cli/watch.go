package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trigrman/granola-meetings/internal/domain/meeting/usecases"
	"github.com/trigrman/granola-meetings/internal/output"
)

func NewWatchCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print new meetings as the Granola app saves them",
		Long:  "Watch the cache file and reload it on every change, printing meetings that were not there before. Stop with Ctrl+C.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(cmd.OutOrStdout())

			return deps.App.WatchCache.Execute(cmd.Context(), func(u usecases.WatchUpdate) {
				if u.Initial {
					formatter.Info(fmt.Sprintf("Watching %s (%d meetings)", deps.App.WatchCache.Path, u.Total))
					return
				}
				if deps.Format != output.FormatText {
					if err := formatter.Structured(deps.Format, u.Added); err != nil {
						formatter.Error(err.Error())
					}
					return
				}
				formatter.MeetingList(u.Added)
			})
		},
	}
}
