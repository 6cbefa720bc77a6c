package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRampColor(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want string
	}{
		{name: "start", t: 0, want: Viridis[0]},
		{name: "end", t: 1, want: Viridis[len(Viridis)-1]},
		{name: "clamped below", t: -0.5, want: Viridis[0]},
		{name: "clamped above", t: 1.5, want: Viridis[len(Viridis)-1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rampColor(Viridis, tt.t))
		})
	}
}

func TestRampColor_Interpolates(t *testing.T) {
	// Halfway between black and white on a two-stop ramp.
	got := rampColor([]string{"#000000", "#ffffff"}, 0.5)
	assert.Equal(t, "#7f7f7f", got)
}

func TestRampColor_Degenerate(t *testing.T) {
	assert.Equal(t, "#000000", rampColor(nil, 0.5))
	assert.Equal(t, "#ff0000", rampColor([]string{"#ff0000"}, 0.8))
}

func TestValueColors(t *testing.T) {
	colors := valueColors([]float64{10, 20, 30}, Viridis)
	require.Len(t, colors, 3)

	assert.Equal(t, Viridis[0], colors[0])
	assert.Equal(t, Viridis[len(Viridis)-1], colors[2])
	assert.NotEqual(t, colors[0], colors[1])
}

func TestValueColors_EqualValues(t *testing.T) {
	// A flat slice maps everything to the ramp midpoint.
	colors := valueColors([]float64{5, 5, 5}, Viridis)
	require.Len(t, colors, 3)
	assert.Equal(t, rampColor(Viridis, 0.5), colors[0])
	assert.Equal(t, colors[0], colors[1])
	assert.Equal(t, colors[0], colors[2])
}

func TestValueColors_Empty(t *testing.T) {
	assert.Nil(t, valueColors(nil, Viridis))
}
