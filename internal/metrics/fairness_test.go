package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJainIndex(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"equal values", []float64{1, 1, 1}, 1},
		{"one of two", []float64{1, 0}, 0.5},
		{"empty", nil, 0},
		{"all zero", []float64{0, 0}, 0},
		{"single", []float64{0.2}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JainIndex(tt.values))
		})
	}
}

func TestJainIndex_BoundedForPositiveValues(t *testing.T) {
	sets := [][]float64{
		{1, 0.5, 0.25},
		{1, 1e-6},
		{0.3, 0.3, 0.9, 0.1, 0.05},
	}
	for _, values := range sets {
		j := JainIndex(values)
		assert.Greater(t, j, 0.0)
		assert.LessOrEqual(t, j, 1.0)
	}
}

func TestFairnessByWaiting_FCFSScenario(t *testing.T) {
	// waiting 0, 3, 5 -> equity 1, 1/4, 1/6
	assert.Equal(t, 0.614, FairnessByWaiting(classicSet(), fcfsTrace()))
}
