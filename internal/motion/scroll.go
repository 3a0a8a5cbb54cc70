package motion

// ScrollRange maps page scroll progress in [Start, End] linearly onto hero
// opacity and scale. Outside the range the values are clamped.
type ScrollRange struct {
	Start, End             float64
	FromOpacity, ToOpacity float64
	FromScale, ToScale     float64
}

// At returns the hero opacity and scale for a scroll progress in [0, 1].
func (r ScrollRange) At(progress float64) (opacity, scale float64) {
	t := 1.0
	if r.End > r.Start {
		t = (progress - r.Start) / (r.End - r.Start)
	}
	t = clamp(t, 0, 1)
	return lerp(r.FromOpacity, r.ToOpacity, t), lerp(r.FromScale, r.ToScale, t)
}

// Progress converts a scroll offset into a fraction of the scrollable height.
// A page that does not scroll reports 0.
func Progress(scrollY, docHeight, viewportHeight float64) float64 {
	scrollable := docHeight - viewportHeight
	if scrollable <= 0 {
		return 0
	}
	return clamp(scrollY/scrollable, 0, 1)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
