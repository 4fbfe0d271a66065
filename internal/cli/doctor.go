package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trigrman/granola-meetings/config"
	"github.com/trigrman/granola-meetings/internal/output"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the Granola cache is readable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(cmd.OutOrStdout())
			ok := true

			if path := config.FilePath(); path != "" {
				if _, err := os.Stat(path); err == nil {
					f.SetupCheck("Config file", true, path)
				} else {
					f.SetupCheck("Config file", true, "not present, using defaults ("+path+")")
				}
			}

			path := deps.Config.CachePath
			if _, err := os.Stat(path); err != nil {
				f.SetupCheck("Cache file", false, "not found at "+path+". Is the Granola app installed? Set GRANOLA_CACHE_PATH or cache_path in config")
				ok = false
			} else {
				f.SetupCheck("Cache file", true, path)

				store, err := deps.App.Loader.Load()
				if err != nil {
					f.SetupCheck("Cache format", false, err.Error())
					ok = false
				} else {
					f.SetupCheck("Cache format", true, fmt.Sprintf("%d meetings", len(store.List())))
				}
			}

			if deps.Config.LogFile != "" {
				f.SetupCheck("Log file", true, deps.Config.LogFile)
			}

			if ok {
				f.Success("\nAll checks passed.")
			} else {
				f.Warning("\nSome checks failed.")
			}
			return nil
		},
	}
}
