package colour

import (
	"cmp"
	"slices"
)

// TopClusters is the number of clusters reported in a result.
const TopClusters = 3

// ColourPercentage is one ranked entry of an analysis result.
type ColourPercentage struct {
	// Colour is the canonical "rgb(r,g,b)" key of the cluster colour.
	Colour     string  `json:"colour"`
	Hex        string  `json:"hex"`
	RGB        RGB     `json:"rgb"`
	Percentage float64 `json:"percentage"`
}

// Rank orders clusters by weight, keeps the TopClusters heaviest and converts
// their weights to percentages of population. The percentages are then
// rescaled to sum to 100. Clusters of equal weight keep their input order.
//
// The first pass divides by the whole sampled population, so smaller clusters
// and transparent samples shrink the values until the rescale. With no
// clusters (or a zero population) the result is empty.
func Rank(clusters []Cluster, population float64) []ColourPercentage {
	if len(clusters) == 0 || population <= 0 {
		return []ColourPercentage{}
	}

	sorted := slices.Clone(clusters)
	slices.SortStableFunc(sorted, func(a, b Cluster) int {
		return cmp.Compare(b.Weight, a.Weight)
	})
	sorted = sorted[:min(TopClusters, len(sorted))]

	ranked := make([]ColourPercentage, len(sorted))
	sum := 0.0
	for i, c := range sorted {
		pct := float64(c.Weight) / population * 100
		ranked[i] = ColourPercentage{
			Colour:     c.Colour.String(),
			Hex:        c.Colour.Hex(),
			RGB:        c.Colour,
			Percentage: pct,
		}
		sum += pct
	}

	if sum == 0 {
		return []ColourPercentage{}
	}
	for i := range ranked {
		ranked[i].Percentage = ranked[i].Percentage / sum * 100
	}

	return ranked
}
