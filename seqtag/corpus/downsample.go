package corpus

import "math"

// Downsample keeps an item whenever the integer part of the running sum of
// proportion changes, starting with the first item. A proportion of 0.25 keeps
// items 0, 3, 7, 11 and so on; 1 keeps everything.
func Downsample(src Source, proportion float64) Sentences {
	out := Sentences{}
	counter := 0.0
	last, seen := 0.0, false
	for s := range orEmpty(src).Sentences() {
		counter += proportion
		whole := math.Trunc(counter)
		if !seen || whole != last {
			out = append(out, s)
			last, seen = whole, true
		}
	}
	return out
}
