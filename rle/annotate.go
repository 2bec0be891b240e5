package rle

// Annotate attaches durations to intervals recorded at sampleRate Hz.
//
// Errors:
//   - ErrSampleRate — sampleRate ≤ 0 (or NaN).
func Annotate[V comparable](ivs []Interval[V], sampleRate float64) ([]Segment[V], error) {
	if !(sampleRate > 0) {
		return nil, ErrSampleRate
	}

	msPerSample := 1000 / sampleRate
	out := make([]Segment[V], len(ivs))
	for i, iv := range ivs {
		n := iv.Len()
		out[i] = Segment[V]{
			Interval: iv,
			Samples:  n,
			Millis:   msPerSample * float64(n),
		}
	}

	return out, nil
}
