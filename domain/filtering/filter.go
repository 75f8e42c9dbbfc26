// Package filtering holds the pure functions behind the filter views: the
// confidence/label predicate, label aggregation and the enabled-label sync step.
package filtering

import (
	"maps"
	"slices"

	"github.com/soocke/detect-filter-go/domain/detection"
)

// Items returns the items whose confidence reaches threshold and whose label
// is not explicitly disabled. A label missing from enabled counts as enabled.
// A nil input yields an empty slice. Order is preserved.
func Items[T detection.Item](items []T, threshold float64, enabled map[string]bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		c := it.Classification()
		if c.Confidence >= threshold && Enabled(enabled, c.Label) {
			out = append(out, it)
		}
	}
	return out
}

// Enabled reports the effective state of label: only an explicit false disables.
func Enabled(enabled map[string]bool, label string) bool {
	on, ok := enabled[label]
	return !ok || on
}

// LabelsOf extracts the label of every item, duplicates included.
func LabelsOf[T detection.Item](items []T) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Classification().Label)
	}
	return out
}

// Labels merges label groups into a sorted, duplicate-free slice.
func Labels(groups ...[]string) []string {
	seen := make(map[string]struct{})
	for _, g := range groups {
		for _, l := range g {
			seen[l] = struct{}{}
		}
	}
	out := slices.Collect(maps.Keys(seen))
	if out == nil {
		out = []string{}
	}
	slices.Sort(out)
	return out
}

// SyncEnabled adds a true entry for every label missing from enabled. Existing
// entries are kept as they are. When nothing is missing it returns enabled
// itself and false; otherwise a new map and true. The input map is never mutated.
func SyncEnabled(labels []string, enabled map[string]bool) (map[string]bool, bool) {
	var next map[string]bool
	for _, l := range labels {
		if _, ok := enabled[l]; ok {
			continue
		}
		if next == nil {
			next = make(map[string]bool, len(enabled)+len(labels))
			maps.Copy(next, enabled)
		}
		next[l] = true
	}
	if next == nil {
		return enabled, false
	}
	return next, true
}

// Toggle returns a copy of enabled with label flipped relative to its
// effective state. Other entries are untouched.
func Toggle(enabled map[string]bool, label string) map[string]bool {
	next := make(map[string]bool, len(enabled)+1)
	maps.Copy(next, enabled)
	next[label] = !Enabled(enabled, label)
	return next
}
