package chart

import (
	"fmt"
	"strconv"
)

// Color ramps used by the dashboard. Viridis colors the value-ranked bar
// charts, Blues colors the funding treemap.
var (
	Viridis = []string{
		"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
		"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
	}
	Blues = []string{
		"#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6",
		"#4292c6", "#2171b5", "#08519c", "#08306b",
	}
)

type rgb struct {
	r, g, b float64
}

func parseHex(s string) rgb {
	if len(s) != 7 || s[0] != '#' {
		return rgb{}
	}
	r, _ := strconv.ParseUint(s[1:3], 16, 8)
	g, _ := strconv.ParseUint(s[3:5], 16, 8)
	b, _ := strconv.ParseUint(s[5:7], 16, 8)
	return rgb{r: float64(r), g: float64(g), b: float64(b)}
}

// rampColor maps t in [0, 1] onto the ramp, interpolating linearly between
// adjacent stops. Out-of-range t clamps to the ends.
func rampColor(ramp []string, t float64) string {
	if len(ramp) == 0 {
		return "#000000"
	}
	if t <= 0 || len(ramp) == 1 {
		return ramp[0]
	}
	if t >= 1 {
		return ramp[len(ramp)-1]
	}
	pos := t * float64(len(ramp)-1)
	lo := int(pos)
	frac := pos - float64(lo)
	a := parseHex(ramp[lo])
	b := parseHex(ramp[lo+1])
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(a.r+(b.r-a.r)*frac),
		uint8(a.g+(b.g-a.g)*frac),
		uint8(a.b+(b.b-a.b)*frac))
}

// valueColors assigns each value a ramp color scaled over the slice's own
// min..max range, matching a continuous color scale with the legend hidden.
func valueColors(values []float64, ramp []string) []string {
	if len(values) == 0 {
		return nil
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	colors := make([]string, len(values))
	for i, v := range values {
		t := 0.5
		if max > min {
			t = (v - min) / (max - min)
		}
		colors[i] = rampColor(ramp, t)
	}
	return colors
}
