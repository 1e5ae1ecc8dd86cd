package analytics

import "math"

// Change is the percent change at Index of the input series.
type Change struct {
	Index   int
	Percent float64
}

// PercentChange computes the change of every value against its predecessor, in percent.
// The first entry is 0 because it has no predecessor. A zero predecessor yields 0
// instead of dividing by zero. Non-finite results are dropped, so Index must be used
// to line the output back up with the input.
func PercentChange(data []float64) []Change {
	result := make([]Change, 0, len(data))
	for i, curr := range data {
		change := 0.0
		if i > 0 {
			prev := data[i-1]
			if prev != 0 {
				change = (curr - prev) / prev * 100
			}
		}
		if math.IsNaN(change) || math.IsInf(change, 0) {
			continue
		}
		result = append(result, Change{Index: i, Percent: change})
	}
	return result
}
