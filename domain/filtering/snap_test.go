package filtering

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soocke/detect-filter-go/domain/detection"
)

func TestSnap_MatchesDisplayedPercent(t *testing.T) {
	for i := 0; i <= 100; i++ {
		want, err := strconv.ParseFloat(fmt.Sprintf("%d.%02d", i/100, i%100), 64)
		require.NoError(t, err)
		// raw slider positions carry float noise
		raw := float64(i)*0.01 + 0.0004
		got := Snap(raw, 0.01)
		require.Equal(t, want, got, "position %d", i)

		// an item sitting exactly on the shown threshold stays visible
		kept := Items([]detection.Box2D{box("cat", want)}, got, nil)
		require.Len(t, kept, 1, "position %d hides confidence %v", i, want)
	}
}

func TestSnap_OtherSteps(t *testing.T) {
	assert.Equal(t, 0.36, Snap(0.355, 0.03))
	assert.Equal(t, 0.25, Snap(0.26, 0.05))
	assert.Equal(t, 0.5, Snap(0.5, 0.5))
	assert.Equal(t, 1.0, Snap(0.97, 0.1))
}

func TestSnap_ClampsAndIgnoresBadStep(t *testing.T) {
	assert.Equal(t, 0.0, Snap(-0.2, 0.01))
	assert.Equal(t, 1.0, Snap(1.3, 0.01))
	assert.Equal(t, 0.123, Snap(0.123, 0))
	assert.Equal(t, 0.0, Snap(-1, -0.1))
}
