package colour

import "iter"

// FrequencyTable counts samples per quantized colour.
// Iteration follows the order in which each colour was first added, which
// keeps the greedy merge reproducible.
type FrequencyTable struct {
	order  []RGB
	counts map[RGB]int
}

// NewFrequencyTable creates an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[RGB]int)}
}

// Add increments the count for c by n. Non-positive n is ignored so every
// stored count stays at least 1.
func (t *FrequencyTable) Add(c RGB, n int) {
	if n <= 0 {
		return
	}
	if _, ok := t.counts[c]; !ok {
		t.order = append(t.order, c)
	}
	t.counts[c] += n
}

// Len returns the number of distinct colours.
func (t *FrequencyTable) Len() int {
	return len(t.order)
}

// Count returns the count for c, or 0 if it was never added.
func (t *FrequencyTable) Count(c RGB) int {
	return t.counts[c]
}

// Total returns the sum of all counts.
func (t *FrequencyTable) Total() int {
	total := 0
	for _, n := range t.counts {
		total += n
	}
	return total
}

// All iterates over colours and counts in first-seen order.
func (t *FrequencyTable) All() iter.Seq2[RGB, int] {
	return func(yield func(RGB, int) bool) {
		for _, c := range t.order {
			if !yield(c, t.counts[c]) {
				return
			}
		}
	}
}

// Aggregate quantizes every opaque sample of buf at BucketLevels and counts it.
func Aggregate(buf PixelBuffer, s Sampling) *FrequencyTable {
	table := NewFrequencyTable()
	for _, p := range buf.Samples(s) {
		table.Add(Quantize(p.R, p.G, p.B, BucketLevels), 1)
	}
	return table
}
