package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soocke/detect-filter-go/app"
	"github.com/soocke/detect-filter-go/assets"
	"github.com/soocke/detect-filter-go/config"
)

// Command creates the ui command which opens the filter window.
func Command(ctx *config.Context) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the detection filter window",
		Long:  "Open a window with the confidence slider, the label checklist and the filtered results.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = ctx.Settings.DetectionsPath
			}
			set, err := assets.Detections(path)
			if err != nil {
				return fmt.Errorf("load detections: %w", err)
			}
			app.NewApp("Detection Filter", ctx.Settings, ctx.Path, ctx.Logger, set).Start()
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "detections", "", "Detections file (.json, .yaml); defaults to the config value or the bundled sample")
	return cmd
}
