package table

import "math"

// Summary holds single-curve statistics over the wavelength axis.
type Summary struct {
	Min        float64
	MinAt      float64 // wavelength of Min
	Max        float64
	MaxAt      float64 // wavelength of Max (peak)
	Mean       float64
	Area       float64 // trapezoidal integral over wavelength
	Wavelength [2]float64
}

// SummarizeCurve computes statistics of curve values sampled at wl in a
// single pass. wl and values must have the same length.
func SummarizeCurve(wl, values []float64) Summary {
	n := len(values)
	if n == 0 || len(wl) != n {
		return Summary{Min: math.NaN(), Max: math.NaN(), Mean: math.NaN()}
	}

	s := Summary{
		Min:        values[0],
		MinAt:      wl[0],
		Max:        values[0],
		MaxAt:      wl[0],
		Wavelength: [2]float64{wl[0], wl[n-1]},
	}
	sum := values[0]
	for i := 1; i < n; i++ {
		v := values[i]
		sum += v
		if v < s.Min {
			s.Min, s.MinAt = v, wl[i]
		}
		if v > s.Max {
			s.Max, s.MaxAt = v, wl[i]
		}
		s.Area += 0.5 * (v + values[i-1]) * (wl[i] - wl[i-1])
	}
	s.Mean = sum / float64(n)
	return s
}

// Summarize returns one Summary per curve of t.
func Summarize(t *Table) []Summary {
	out := make([]Summary, t.NumCurves())
	wl := t.Wavelengths()
	for i := range out {
		out[i] = SummarizeCurve(wl, t.Curve(i))
	}
	return out
}
