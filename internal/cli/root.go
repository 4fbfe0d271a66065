package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trigrman/granola-meetings/config"
	"github.com/trigrman/granola-meetings/internal/app"
	"github.com/trigrman/granola-meetings/internal/logger"
	"github.com/trigrman/granola-meetings/internal/output"
	"github.com/trigrman/granola-meetings/internal/version"
)

type Dependencies struct {
	App    *app.App
	Config *config.Config
	// Format is the --format value: text, json or yaml.
	Format string
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	var cachePath string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "granola",
		Short: "Read meeting notes and transcripts from the Granola cache",
		Long:  "A CLI tool that reads the local Granola cache and prints meetings, AI-generated notes, and transcripts.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch deps.Format {
			case output.FormatText, output.FormatJSON, output.FormatYAML:
			default:
				return fmt.Errorf("unknown format %q: use text, json or yaml", deps.Format)
			}

			level := deps.Config.LogLevel
			if verbose {
				level = "debug"
			}
			if err := logger.Setup(logger.Options{Level: level, File: deps.Config.LogFile}); err != nil {
				return fmt.Errorf("setting up logging: %w", err)
			}

			if cachePath != "" {
				deps.Config.CachePath = cachePath
				deps.App = app.New(deps.Config)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.PersistentFlags().StringVar(&cachePath, "cache", "", "path to the Granola cache file (default from config)")
	rootCmd.PersistentFlags().StringVarP(&deps.Format, "format", "o", output.FormatText, "output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(NewListCmd(deps))
	rootCmd.AddCommand(NewNotesCmd(deps))
	rootCmd.AddCommand(NewSearchCmd(deps))
	rootCmd.AddCommand(NewGetCmd(deps))
	rootCmd.AddCommand(NewWatchCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}
