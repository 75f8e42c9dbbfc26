package model

import (
	"log/slog"
	"maps"

	"github.com/soocke/detect-filter-go/domain/detection"
	"github.com/soocke/detect-filter-go/domain/filtering"
	"github.com/soocke/detect-filter-go/reactive"
)

// DefaultThreshold is the confidence threshold a fresh FilterModel starts with.
const DefaultThreshold = 0.5

// LabelToggle is one row of the label checklist.
type LabelToggle struct {
	Label   string
	Checked bool
}

// KindCount is the visible/total item count of one modality.
type KindCount struct {
	Kind    detection.Kind
	Visible int
	Total   int
}

// GraphStats counts work done by the filter graph, for diagnostics.
type GraphStats struct {
	LabelComputes  uint64
	FilterComputes uint64
	SyncRuns       uint64
	SyncWrites     uint64
}

// FilterModel owns the detection stores, the filter state and every view
// derived from them. It is not safe for concurrent use: all access happens on
// the UI thread tick (or the CLI goroutine).
type FilterModel struct {
	logger           *slog.Logger
	defaultThreshold float64

	boxes2D *reactive.State[[]detection.Box2D]
	boxes3D *reactive.State[[]detection.Box3D]
	masks   *reactive.State[[]detection.Mask]
	points  *reactive.State[[]detection.Point]

	threshold *reactive.State[float64]
	enabled   *reactive.State[map[string]bool]

	labels     *reactive.Derived[[]string]
	filtered2D *reactive.Derived[[]detection.Box2D]
	filtered3D *reactive.Derived[[]detection.Box3D]
	filteredMk *reactive.Derived[[]detection.Mask]
	filteredPt *reactive.Derived[[]detection.Point]

	sync       *reactive.Effect
	syncRuns   uint64
	syncWrites uint64
}

// NewFilterModel builds the filter graph with empty stores. defaultThreshold
// is used initially and on Reset.
func NewFilterModel(defaultThreshold float64, logger *slog.Logger) *FilterModel {
	m := &FilterModel{logger: logger, defaultThreshold: defaultThreshold}
	m.boxes2D = reactive.NewState[[]detection.Box2D](nil, nil)
	m.boxes3D = reactive.NewState[[]detection.Box3D](nil, nil)
	m.masks = reactive.NewState[[]detection.Mask](nil, nil)
	m.points = reactive.NewState[[]detection.Point](nil, nil)
	m.threshold = reactive.NewState(defaultThreshold, func(a, b float64) bool { return a == b })
	m.enabled = reactive.NewState(map[string]bool{}, func(a, b map[string]bool) bool { return maps.Equal(a, b) })

	m.labels = reactive.NewDerived(func() []string {
		return filtering.Labels(
			filtering.LabelsOf(m.boxes2D.Get()),
			filtering.LabelsOf(m.boxes3D.Get()),
			filtering.LabelsOf(m.masks.Get()),
			filtering.LabelsOf(m.points.Get()),
		)
	}, m.boxes2D, m.boxes3D, m.masks, m.points)

	m.filtered2D = filteredView(m.boxes2D, m.threshold, m.enabled)
	m.filtered3D = filteredView(m.boxes3D, m.threshold, m.enabled)
	m.filteredMk = filteredView(m.masks, m.threshold, m.enabled)
	m.filteredPt = filteredView(m.points, m.threshold, m.enabled)

	m.sync = reactive.NewEffect(func() { m.SyncLabels() }, m.labels, m.enabled)
	return m
}

func filteredView[T detection.Item](items *reactive.State[[]T], threshold *reactive.State[float64], enabled *reactive.State[map[string]bool]) *reactive.Derived[[]T] {
	return reactive.NewDerived(func() []T {
		return filtering.Items(items.Get(), threshold.Get(), enabled.Get())
	}, items, threshold, enabled)
}

// SetBoxes2D replaces the 2D box store.
func (m *FilterModel) SetBoxes2D(items []detection.Box2D) {
	if m == nil {
		return
	}
	m.boxes2D.Set(items)
}

// SetBoxes3D replaces the 3D box store.
func (m *FilterModel) SetBoxes3D(items []detection.Box3D) {
	if m == nil {
		return
	}
	m.boxes3D.Set(items)
}

// SetMasks replaces the mask store.
func (m *FilterModel) SetMasks(items []detection.Mask) {
	if m == nil {
		return
	}
	m.masks.Set(items)
}

// SetPoints replaces the point store.
func (m *FilterModel) SetPoints(items []detection.Point) {
	if m == nil {
		return
	}
	m.points.Set(items)
}

// SetDetections replaces all four stores.
func (m *FilterModel) SetDetections(s detection.Set) {
	if m == nil {
		return
	}
	m.boxes2D.Set(s.Boxes2D)
	m.boxes3D.Set(s.Boxes3D)
	m.masks.Set(s.Masks)
	m.points.Set(s.Points)
	if m.logger != nil {
		m.logger.Debug("detections replaced", "items", s.Len(), "labels", len(m.Labels()))
	}
}

// Detections returns the raw, unfiltered stores.
func (m *FilterModel) Detections() detection.Set {
	if m == nil {
		return detection.Set{}
	}
	return detection.Set{
		Boxes2D: m.boxes2D.Get(),
		Boxes3D: m.boxes3D.Get(),
		Masks:   m.masks.Get(),
		Points:  m.points.Get(),
	}
}

// Clear empties all four stores.
func (m *FilterModel) Clear() { m.SetDetections(detection.Set{}) }

// Reset restores the filter state to its initial value. Stores are untouched;
// labels still present are re-enabled by the sync effect.
func (m *FilterModel) Reset() {
	if m == nil {
		return
	}
	m.threshold.Set(m.defaultThreshold)
	m.enabled.Set(map[string]bool{})
}

// SetDefaultThreshold changes the value Reset restores. The current
// threshold is left alone.
func (m *FilterModel) SetDefaultThreshold(v float64) {
	if m == nil {
		return
	}
	m.defaultThreshold = v
}

// Labels returns the sorted unique labels across all stores. The slice is
// shared with the memo and must not be modified.
func (m *FilterModel) Labels() []string {
	if m == nil {
		return []string{}
	}
	return m.labels.Get()
}

// Threshold returns the current confidence threshold.
func (m *FilterModel) Threshold() float64 {
	if m == nil {
		return 0
	}
	return m.threshold.Get()
}

// SetThreshold stores v as is. Range checks are the caller's concern.
func (m *FilterModel) SetThreshold(v float64) {
	if m == nil {
		return
	}
	m.threshold.Set(v)
}

// EnabledLabels returns a copy of the label enable map.
func (m *FilterModel) EnabledLabels() map[string]bool {
	if m == nil {
		return map[string]bool{}
	}
	return maps.Clone(m.enabled.Get())
}

// LabelEnabled reports the effective state of label (absent means enabled).
func (m *FilterModel) LabelEnabled(label string) bool {
	if m == nil {
		return true
	}
	return filtering.Enabled(m.enabled.Get(), label)
}

// SetLabelEnabled sets one label's entry, leaving the others untouched.
func (m *FilterModel) SetLabelEnabled(label string, on bool) {
	if m == nil {
		return
	}
	m.enabled.Update(func(cur map[string]bool) map[string]bool {
		next := maps.Clone(cur)
		if next == nil {
			next = map[string]bool{}
		}
		next[label] = on
		return next
	})
}

// ToggleLabel flips one label relative to its effective state.
func (m *FilterModel) ToggleLabel(label string) {
	if m == nil {
		return
	}
	m.enabled.Update(func(cur map[string]bool) map[string]bool {
		return filtering.Toggle(cur, label)
	})
}

// Toggles returns the checklist rows for the current labels.
func (m *FilterModel) Toggles() []LabelToggle {
	if m == nil {
		return nil
	}
	labels := m.Labels()
	enabled := m.enabled.Get()
	out := make([]LabelToggle, 0, len(labels))
	for _, l := range labels {
		out = append(out, LabelToggle{Label: l, Checked: filtering.Enabled(enabled, l)})
	}
	return out
}

// SyncLabels gives every label without an entry a true entry. It writes only
// when an entry was added, which keeps the sync effect from retriggering
// itself forever. It reports whether a write happened.
func (m *FilterModel) SyncLabels() bool {
	if m == nil {
		return false
	}
	m.syncRuns++
	labels := m.labels.Get()
	if len(labels) == 0 {
		return false
	}
	next, changed := filtering.SyncEnabled(labels, m.enabled.Get())
	if !changed {
		return false
	}
	m.syncWrites++
	m.enabled.Set(next)
	if m.logger != nil {
		m.logger.Debug("label filters synced", "labels", len(labels))
	}
	return true
}

// FilteredBoxes2D returns the visible 2D boxes.
func (m *FilterModel) FilteredBoxes2D() []detection.Box2D {
	if m == nil {
		return []detection.Box2D{}
	}
	return m.filtered2D.Get()
}

// FilteredBoxes3D returns the visible 3D boxes.
func (m *FilterModel) FilteredBoxes3D() []detection.Box3D {
	if m == nil {
		return []detection.Box3D{}
	}
	return m.filtered3D.Get()
}

// FilteredMasks returns the visible masks.
func (m *FilterModel) FilteredMasks() []detection.Mask {
	if m == nil {
		return []detection.Mask{}
	}
	return m.filteredMk.Get()
}

// FilteredPoints returns the visible points.
func (m *FilterModel) FilteredPoints() []detection.Point {
	if m == nil {
		return []detection.Point{}
	}
	return m.filteredPt.Get()
}

// Filtered returns all four visible collections as one Set.
func (m *FilterModel) Filtered() detection.Set {
	return detection.Set{
		Boxes2D: m.FilteredBoxes2D(),
		Boxes3D: m.FilteredBoxes3D(),
		Masks:   m.FilteredMasks(),
		Points:  m.FilteredPoints(),
	}
}

// Version changes whenever any store or filter state is written.
// Presenters compare it to skip redundant view updates.
func (m *FilterModel) Version() uint64 {
	if m == nil {
		return 0
	}
	return m.boxes2D.Version() + m.boxes3D.Version() + m.masks.Version() +
		m.points.Version() + m.threshold.Version() + m.enabled.Version()
}

// Stats returns the graph's work counters.
func (m *FilterModel) Stats() GraphStats {
	if m == nil {
		return GraphStats{}
	}
	return GraphStats{
		LabelComputes: m.labels.Computes(),
		FilterComputes: m.filtered2D.Computes() + m.filtered3D.Computes() +
			m.filteredMk.Computes() + m.filteredPt.Computes(),
		SyncRuns:   m.syncRuns,
		SyncWrites: m.syncWrites,
	}
}
