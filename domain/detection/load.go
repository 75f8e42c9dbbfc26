package detection

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for files whose extension names no supported encoding.
var ErrUnknownFormat = errors.New("unknown detections format")

// Format is the encoding of a detections file.
type Format int

const (
	FormatJSON Format = iota + 1
	FormatYAML
)

// FormatFor picks the encoding from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Decode reads a Set in the given encoding. An empty document yields an empty Set.
func Decode(r io.Reader, f Format) (Set, error) {
	var s Set
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return Set{}, fmt.Errorf("decode json detections: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return Set{}, fmt.Errorf("decode yaml detections: %w", err)
		}
	default:
		return Set{}, ErrUnknownFormat
	}
	return s, nil
}

// Load reads a detections file, choosing the decoder by extension.
func Load(path string) (Set, error) {
	f, err := FormatFor(path)
	if err != nil {
		return Set{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return Set{}, fmt.Errorf("open detections: %w", err)
	}
	defer file.Close()
	s, err := Decode(file, f)
	if err != nil {
		return Set{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
