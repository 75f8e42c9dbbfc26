package filter

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/soocke/detect-filter-go/config"
)

const sample = `{
  "boxes_2d": [
    {"x": 0.1, "y": 0.1, "width": 0.2, "height": 0.2, "label": "cat", "confidence": 0.9},
    {"x": 0.4, "y": 0.1, "width": 0.2, "height": 0.2, "label": "dog", "confidence": 0.3},
    {"x": 0.6, "y": 0.5, "width": 0.1, "height": 0.1, "label": "cat", "confidence": 0.6}
  ],
  "points": [
    {"point": {"x": 0.5, "y": 0.5}, "label": "cup", "confidence": 0.8}
  ]
}`

func newContext(t *testing.T) *config.Context {
	t.Helper()
	return config.NewContext(nil, slog.New(slog.DiscardHandler))
}

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "detections.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	return path
}

func run(t *testing.T, ctx *config.Context, args ...string) (string, error) {
	t.Helper()
	cmd := Command(ctx)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFilterCommand_ThresholdAndDisable(t *testing.T) {
	out, err := run(t, newContext(t), "--detections", writeSample(t), "--threshold", "0.5", "--disable", "cup", "--disable", "cup")
	require.NoError(t, err)

	var got Result
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 0.5, got.Threshold)
	assert.Equal(t, []string{"cat", "cup", "dog"}, got.Labels)
	assert.Equal(t, map[string]bool{"cat": true, "cup": false, "dog": true}, got.Enabled)
	require.Len(t, got.Boxes2D, 2)
	assert.Equal(t, 0.9, got.Boxes2D[0].Confidence)
	assert.Equal(t, 0.6, got.Boxes2D[1].Confidence)
	assert.Empty(t, got.Points)
	assert.Contains(t, out, `"points": []`)
}

func TestFilterCommand_DefaultThresholdFromConfig(t *testing.T) {
	ctx := newContext(t)
	ctx.Settings.DefaultThreshold = 0.2
	out, err := run(t, ctx, "--detections", writeSample(t))
	require.NoError(t, err)

	var got Result
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 0.2, got.Threshold)
	assert.Len(t, got.Boxes2D, 3)
	assert.Len(t, got.Points, 1)
}

func TestFilterCommand_YAMLOutput(t *testing.T) {
	out, err := run(t, newContext(t), "--detections", writeSample(t), "-o", "yaml", "--disable", "cat")
	require.NoError(t, err)

	var got Result
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Empty(t, got.Boxes2D)
	require.Len(t, got.Points, 1)
	assert.Equal(t, "cup", got.Points[0].Label)
}

func TestFilterCommand_Errors(t *testing.T) {
	path := writeSample(t)

	_, err := run(t, newContext(t), "--detections", path, "--threshold", "1.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")

	_, err = run(t, newContext(t), "--detections", path, "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")

	_, err = run(t, newContext(t), "--detections", filepath.Join(t.TempDir(), "none.json"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "load detections"))
}

func TestFilterCommand_BundledSample(t *testing.T) {
	out, err := run(t, newContext(t))
	require.NoError(t, err)
	var got Result
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.NotEmpty(t, got.Labels)
	assert.Len(t, got.Enabled, len(got.Labels))
}
