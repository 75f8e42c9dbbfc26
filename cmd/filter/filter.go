package filter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/soocke/detect-filter-go/assets"
	"github.com/soocke/detect-filter-go/config"
	"github.com/soocke/detect-filter-go/domain/detection"
	"github.com/soocke/detect-filter-go/ui/model"
)

// Result is what the filter command prints.
type Result struct {
	Threshold float64           `json:"threshold" yaml:"threshold"`
	Labels    []string          `json:"labels" yaml:"labels"`
	Enabled   map[string]bool   `json:"enabled_labels" yaml:"enabled_labels"`
	Boxes2D   []detection.Box2D `json:"boxes_2d" yaml:"boxes_2d"`
	Boxes3D   []detection.Box3D `json:"boxes_3d" yaml:"boxes_3d"`
	Masks     []detection.Mask  `json:"masks" yaml:"masks"`
	Points    []detection.Point `json:"points" yaml:"points"`
}

// Command creates the filter command which applies the filter state to a
// detections file and prints the visible items.
func Command(ctx *config.Context) *cobra.Command {
	var (
		path      string
		threshold float64
		disabled  []string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter a detections file and print the visible items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = ctx.Settings.DetectionsPath
			}
			set, err := assets.Detections(path)
			if err != nil {
				return fmt.Errorf("load detections: %w", err)
			}
			m := model.NewFilterModel(ctx.Settings.DefaultThreshold, ctx.Logger)
			m.SetDetections(set)
			if cmd.Flags().Changed("threshold") {
				if threshold < 0 || threshold > 1 {
					return fmt.Errorf("threshold %v out of range [0, 1]", threshold)
				}
				m.SetThreshold(threshold)
			}
			for _, label := range lo.Uniq(disabled) {
				m.SetLabelEnabled(label, false)
			}
			return Write(cmd.OutOrStdout(), output, Snapshot(m))
		},
	}

	cmd.Flags().StringVar(&path, "detections", "", "Detections file (.json, .yaml); defaults to the config value or the bundled sample")
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", model.DefaultThreshold, "Confidence threshold between 0.0 and 1.0 (defaults to the config value)")
	cmd.Flags().StringArrayVar(&disabled, "disable", nil, "Label to hide (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format: json or yaml")
	return cmd
}

// Snapshot captures the model's filter state and visible items.
func Snapshot(m *model.FilterModel) Result {
	vis := m.Filtered()
	return Result{
		Threshold: m.Threshold(),
		Labels:    m.Labels(),
		Enabled:   m.EnabledLabels(),
		Boxes2D:   vis.Boxes2D,
		Boxes3D:   vis.Boxes3D,
		Masks:     vis.Masks,
		Points:    vis.Points,
	}
}

// Write encodes r to w in the named format.
func Write(w io.Writer, format string, r Result) error {
	switch format {
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(r)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
