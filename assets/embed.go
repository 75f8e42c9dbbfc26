package assets

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/soocke/detect-filter-go/domain/detection"
)

// SampleDetectionsJSON contains the raw bytes of the bundled detections file.
//
//go:embed sample_detections.json
var SampleDetectionsJSON []byte

// SampleDetections decodes the embedded detections into a detection.Set.
func SampleDetections() (detection.Set, error) {
	if len(SampleDetectionsJSON) == 0 {
		return detection.Set{}, fmt.Errorf("embedded sample_detections.json is empty")
	}
	return detection.Decode(bytes.NewReader(SampleDetectionsJSON), detection.FormatJSON)
}

// Detections loads path, or the embedded sample when path is empty.
func Detections(path string) (detection.Set, error) {
	if path == "" {
		return SampleDetections()
	}
	return detection.Load(path)
}
