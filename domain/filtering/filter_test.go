package filtering

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soocke/detect-filter-go/domain/detection"
)

func box(label string, conf float64) detection.Box2D {
	return detection.Box2D{Class: detection.Class{Label: label, Confidence: conf}}
}

func petStore() []detection.Box2D {
	return []detection.Box2D{box("cat", 0.9), box("dog", 0.3), box("cat", 0.4)}
}

func TestItems_ThresholdScenario(t *testing.T) {
	store := petStore()
	labels := Labels(LabelsOf(store))
	assert.Equal(t, []string{"cat", "dog"}, labels)

	enabled, changed := SyncEnabled(labels, map[string]bool{})
	require.True(t, changed)
	assert.Equal(t, map[string]bool{"cat": true, "dog": true}, enabled)

	got := Items(store, 0.5, enabled)
	assert.Equal(t, []detection.Box2D{box("cat", 0.9)}, got)
}

func TestItems_ExplicitDisableScenario(t *testing.T) {
	got := Items(petStore(), 0, map[string]bool{"cat": false, "dog": true})
	assert.Equal(t, []detection.Box2D{box("dog", 0.3)}, got)
}

func TestItems_NilAndEmpty(t *testing.T) {
	got := Items[detection.Point](nil, 0.5, nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestItems_DefaultEnabled(t *testing.T) {
	store := []detection.Mask{
		{Class: detection.Class{Label: "unseen", Confidence: 0.8}},
		{Class: detection.Class{Label: "unseen", Confidence: 0.1}},
	}
	got := Items(store, 0.5, map[string]bool{"other": false})
	require.Len(t, got, 1)
	assert.Equal(t, 0.8, got[0].Confidence)
}

func TestItems_ThresholdIsInclusive(t *testing.T) {
	got := Items([]detection.Box2D{box("a", 0.5)}, 0.5, nil)
	assert.Len(t, got, 1)
}

func TestItems_OutOfRangeThreshold(t *testing.T) {
	store := petStore()
	assert.Len(t, Items(store, -1, nil), 3)
	assert.Empty(t, Items(store, 1.5, nil))
}

func TestItems_MonotoneInThreshold(t *testing.T) {
	store := []detection.Box2D{
		box("a", 0), box("b", 0.1), box("a", 0.25), box("c", 0.5),
		box("b", 0.51), box("a", 0.75), box("c", 0.99), box("b", 1),
	}
	enabled := map[string]bool{"b": false}
	prev := len(store) + 1
	for i := 0; i <= 100; i++ {
		n := len(Items(store, float64(i)/100, enabled))
		assert.LessOrEqual(t, n, prev, "threshold %d%%", i)
		prev = n
	}
}

func TestItems_LabelIsolation(t *testing.T) {
	store := []detection.Box2D{
		box("cat", 0.9), box("dog", 0.8), box("cat", 0.7), box("bird", 0.6), box("dog", 0.2),
	}
	before := map[string]bool{"cat": true, "dog": true, "bird": true}
	after := Toggle(before, "dog")
	require.Equal(t, map[string]bool{"cat": true, "dog": false, "bird": true}, after)
	require.True(t, before["dog"], "input map must not be mutated")

	in := func(items []detection.Box2D, b detection.Box2D) bool { return slices.Contains(items, b) }
	gotBefore := Items(store, 0.5, before)
	gotAfter := Items(store, 0.5, after)
	for _, b := range store {
		if b.Label == "dog" {
			continue
		}
		assert.Equal(t, in(gotBefore, b), in(gotAfter, b), "item %+v changed inclusion", b)
	}
	assert.False(t, in(gotAfter, box("dog", 0.8)))
}

func TestToggle_AbsentLabelFlipsToDisabled(t *testing.T) {
	got := Toggle(nil, "cat")
	assert.Equal(t, map[string]bool{"cat": false}, got)
	assert.Equal(t, map[string]bool{"cat": true}, Toggle(got, "cat"))
}

func TestLabels_SortedUnique(t *testing.T) {
	got := Labels(
		[]string{"zebra", "apple", "zebra"},
		nil,
		[]string{"Banana", "apple", ""},
		[]string{"mango"},
	)
	assert.Equal(t, []string{"", "Banana", "apple", "mango", "zebra"}, got)
	assert.True(t, slices.IsSorted(got))
	assert.Equal(t, len(got), len(slices.Compact(slices.Clone(got))))
}

func TestLabels_Empty(t *testing.T) {
	got := Labels()
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSyncEnabled_PreservesAndIsIdempotent(t *testing.T) {
	start := map[string]bool{"cat": false}
	next, changed := SyncEnabled([]string{"cat", "dog"}, start)
	require.True(t, changed)
	assert.Equal(t, map[string]bool{"cat": false, "dog": true}, next)
	assert.Equal(t, map[string]bool{"cat": false}, start, "input map must not be mutated")

	again, changed := SyncEnabled([]string{"cat", "dog"}, next)
	assert.False(t, changed)
	assert.Equal(t, next, again)

	none, changed := SyncEnabled(nil, start)
	assert.False(t, changed)
	assert.Equal(t, start, none)
}

func TestEnabled(t *testing.T) {
	m := map[string]bool{"on": true, "off": false}
	assert.True(t, Enabled(m, "on"))
	assert.False(t, Enabled(m, "off"))
	assert.True(t, Enabled(m, "missing"))
	assert.True(t, Enabled(nil, "missing"))
}
