package model

import (
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/soocke/detect-filter-go/domain/detection"
)

var discardLogger = slog.New(slog.DiscardHandler)

func cls(label string, conf float64) detection.Class {
	return detection.Class{Label: label, Confidence: conf}
}

func petBoxes() []detection.Box2D {
	return []detection.Box2D{{Class: cls("cat", 0.9)}, {Class: cls("dog", 0.3)}, {Class: cls("cat", 0.4)}}
}

func TestFilterModel_InitialState(t *testing.T) {
	m := NewFilterModel(DefaultThreshold, discardLogger)
	if m.Threshold() != 0.5 {
		t.Fatalf("expected threshold 0.5, got %v", m.Threshold())
	}
	if len(m.EnabledLabels()) != 0 || len(m.Labels()) != 0 {
		t.Fatalf("expected empty labels and filters, got %v %v", m.Labels(), m.EnabledLabels())
	}
	if got := m.FilteredBoxes2D(); got == nil || len(got) != 0 {
		t.Fatalf("empty store should give empty non-nil view, got %#v", got)
	}
	if m.Stats().SyncWrites != 0 {
		t.Fatalf("empty label set must not write")
	}
}

func TestFilterModel_ThresholdScenario(t *testing.T) {
	m := NewFilterModel(DefaultThreshold, discardLogger)
	m.SetBoxes2D(petBoxes())

	if diff := cmp.Diff([]string{"cat", "dog"}, m.Labels()); diff != "" {
		t.Fatalf("labels (-want +got):\n%s", diff)
	}
	// the sync effect runs as part of the store write
	if diff := cmp.Diff(map[string]bool{"cat": true, "dog": true}, m.EnabledLabels()); diff != "" {
		t.Fatalf("enabled labels (-want +got):\n%s", diff)
	}
	want := []detection.Box2D{{Class: cls("cat", 0.9)}}
	if diff := cmp.Diff(want, m.FilteredBoxes2D()); diff != "" {
		t.Fatalf("filtered (-want +got):\n%s", diff)
	}
}

func TestFilterModel_ExplicitDisableScenario(t *testing.T) {
	m := NewFilterModel(DefaultThreshold, discardLogger)
	m.SetBoxes2D(petBoxes())
	m.SetLabelEnabled("cat", false)
	m.SetThreshold(0)

	want := []detection.Box2D{{Class: cls("dog", 0.3)}}
	if diff := cmp.Diff(want, m.FilteredBoxes2D()); diff != "" {
		t.Fatalf("filtered (-want +got):\n%s", diff)
	}
	if m.LabelEnabled("cat") || !m.LabelEnabled("dog") || !m.LabelEnabled("never-seen") {
		t.Fatalf("unexpected effective states: %v", m.EnabledLabels())
	}
}

func TestFilterModel_SyncIsIdempotent(t *testing.T) {
	m := NewFilterModel(DefaultThreshold, discardLogger)
	m.SetBoxes2D(petBoxes())
	writes := m.Stats().SyncWrites
	if writes != 1 {
		t.Fatalf("expected one sync write after new labels, got %d", writes)
	}
	if m.SyncLabels() || m.SyncLabels() {
		t.Fatalf("sync without label changes must not write")
	}
	if m.Stats().SyncWrites != writes {
		t.Fatalf("sync writes grew from %d to %d", writes, m.Stats().SyncWrites)
	}
}

func TestFilterModel_SyncKeepsUserChoice(t *testing.T) {
	m := NewFilterModel(DefaultThreshold, discardLogger)
	m.SetBoxes2D(petBoxes())
	m.ToggleLabel("dog")
	m.SetPoints([]detection.Point{{Class: cls("dog", 0.99)}, {Class: cls("cup", 0.8)}})

	want := map[string]bool{"cat": true, "dog": false, "cup": true}
	if diff := cmp.Diff(want, m.EnabledLabels()); diff != "" {
		t.Fatalf("enabled (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"cat", "cup", "dog"}, m.Labels()); diff != "" {
		t.Fatalf("labels (-want +got):\n%s", diff)
	}
	if got := m.FilteredPoints(); len(got) != 1 || got[0].Label != "cup" {
		t.Fatalf("expected only cup point, got %+v", got)
	}
}

func TestFilterModel_ViewsFollowWrites(t *testing.T) {
	m := NewFilterModel(0, discardLogger)
	m.SetDetections(detection.Set{
		Boxes2D: []detection.Box2D{{Class: cls("a", 0.2)}},
		Boxes3D: []detection.Box3D{{Class: cls("b", 0.4)}},
		Masks:   []detection.Mask{{Class: cls("a", 0.6)}},
		Points:  []detection.Point{{Class: cls("c", 0.8)}},
	})
	counts := func() [4]int {
		f := m.Filtered()
		return [4]int{len(f.Boxes2D), len(f.Boxes3D), len(f.Masks), len(f.Points)}
	}
	if got := counts(); got != [4]int{1, 1, 1, 1} {
		t.Fatalf("threshold 0 should show everything, got %v", got)
	}
	m.SetThreshold(0.5)
	if got := counts(); got != [4]int{0, 0, 1, 1} {
		t.Fatalf("threshold 0.5: got %v", got)
	}
	m.ToggleLabel("a")
	if got := counts(); got != [4]int{0, 0, 0, 1} {
		t.Fatalf("after disabling a: got %v", got)
	}
	m.SetMasks(nil)
	if got := m.FilteredMasks(); got == nil || len(got) != 0 {
		t.Fatalf("nil store should give empty view, got %#v", got)
	}
}

func TestFilterModel_ViewsAreMemoized(t *testing.T) {
	m := NewFilterModel(DefaultThreshold, discardLogger)
	m.SetBoxes2D(petBoxes())
	m.FilteredBoxes2D()
	before := m.Stats().FilterComputes
	m.FilteredBoxes2D()
	m.FilteredBoxes2D()
	if got := m.Stats().FilterComputes; got != before {
		t.Fatalf("repeated reads recomputed: %d -> %d", before, got)
	}
	m.SetThreshold(0.5) // same value, dropped
	m.FilteredBoxes2D()
	if got := m.Stats().FilterComputes; got != before {
		t.Fatalf("equal threshold write recomputed: %d -> %d", before, got)
	}
}

func TestFilterModel_ResetAndClear(t *testing.T) {
	m := NewFilterModel(0.25, discardLogger)
	m.SetBoxes2D(petBoxes())
	m.SetThreshold(0.8)
	m.ToggleLabel("cat")

	m.Reset()
	if m.Threshold() != 0.25 {
		t.Fatalf("reset threshold: got %v", m.Threshold())
	}
	if diff := cmp.Diff(map[string]bool{"cat": true, "dog": true}, m.EnabledLabels()); diff != "" {
		t.Fatalf("reset should re-enable present labels (-want +got):\n%s", diff)
	}

	m.Clear()
	m.Reset()
	if len(m.Labels()) != 0 || len(m.EnabledLabels()) != 0 {
		t.Fatalf("clear+reset should leave nothing, got %v %v", m.Labels(), m.EnabledLabels())
	}
	if got := m.Toggles(); len(got) != 0 {
		t.Fatalf("expected no toggles, got %v", got)
	}
}

func TestFilterModel_Toggles(t *testing.T) {
	m := NewFilterModel(DefaultThreshold, discardLogger)
	m.SetMasks([]detection.Mask{{Class: cls("b", 1)}, {Class: cls("a", 1)}})
	m.ToggleLabel("b")
	want := []LabelToggle{{Label: "a", Checked: true}, {Label: "b", Checked: false}}
	if diff := cmp.Diff(want, m.Toggles()); diff != "" {
		t.Fatalf("toggles (-want +got):\n%s", diff)
	}
}

func TestFilterModel_VersionAdvances(t *testing.T) {
	m := NewFilterModel(DefaultThreshold, discardLogger)
	v0 := m.Version()
	m.SetThreshold(0.5)
	if m.Version() != v0 {
		t.Fatalf("no-op write changed version")
	}
	m.SetThreshold(0.6)
	if m.Version() == v0 {
		t.Fatalf("threshold write did not change version")
	}
}

func TestFilterModel_NilSafe(t *testing.T) {
	var m *FilterModel
	m.SetBoxes2D(petBoxes())
	m.SetThreshold(1)
	m.ToggleLabel("x")
	m.Reset()
	m.Clear()
	if m.SyncLabels() || len(m.Labels()) != 0 || m.Version() != 0 || len(m.Filtered().Boxes2D) != 0 {
		t.Fatalf("nil model should be inert")
	}
}
