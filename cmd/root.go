package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soocke/detect-filter-go/cmd/filter"
	"github.com/soocke/detect-filter-go/cmd/ui"
	"github.com/soocke/detect-filter-go/config"
)

// DefaultConfigPath is used when --config is not given.
const DefaultConfigPath = "detect-filter.json"

// RootCommand creates and returns the root command
func RootCommand(ctx *config.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "detect-filter",
		Short:         "Confidence and label filtering for detection results",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var debug bool
	rootCmd.PersistentFlags().StringVar(&ctx.Path, "config", DefaultConfigPath, "Path to the JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug output")

	rootCmd.AddCommand(ui.Command(ctx), filter.Command(ctx))

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(ctx.Path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		// command-line flag wins over the file
		if cmd.Flags().Changed("debug") {
			cfg.Debug = debug
		}
		ctx.Apply(cfg)
		ctx.Logger.Debug("config loaded", "path", ctx.Path, "threshold", cfg.DefaultThreshold)
		return nil
	}

	return rootCmd
}
