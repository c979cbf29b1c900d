package colour

import "math"

// MergeDistance is the maximum Euclidean distance between a seed bucket and
// another bucket for the two to be merged.
const MergeDistance = 30.0

// Cluster is a group of merged frequency buckets.
type Cluster struct {
	// Colour is the weighted mean re-quantized at CentroidLevels.
	Colour RGB
	// Mean is the weighted mean of the members, rounded half up.
	Mean RGB
	// Weight is the sum of the member counts.
	Weight int
	// Members is the number of buckets folded into the cluster.
	Members int
}

// weightedSum accumulates count-weighted channel totals.
type weightedSum struct {
	r, g, b int
	weight  int
	members int
}

func (s *weightedSum) add(c RGB, count int) {
	s.r += int(c.R) * count
	s.g += int(c.G) * count
	s.b += int(c.B) * count
	s.weight += count
	s.members++
}

func (s *weightedSum) mean() RGB {
	w := float64(s.weight)
	return RGB{
		R: roundChannel(float64(s.r) / w),
		G: roundChannel(float64(s.g) / w),
		B: roundChannel(float64(s.b) / w),
	}
}

// roundChannel rounds half up and clamps to the channel range.
func roundChannel(v float64) uint8 {
	return uint8(min(255, max(0, math.Floor(v+0.5))))
}

// MergeClusters partitions the table's buckets into clusters in one greedy pass.
//
// Buckets are visited in first-seen order. Each bucket not yet claimed seeds a
// cluster and claims every other unclaimed bucket within MergeDistance of the
// seed's own colour. Candidates are never compared against the growing
// centroid, so the result depends on visiting order: this is single-link
// grouping around seeds, not k-means. Clusters are returned in seed order.
func MergeClusters(table *FrequencyTable) []Cluster {
	type bucket struct {
		colour RGB
		count  int
	}

	buckets := make([]bucket, 0, table.Len())
	for c, n := range table.All() {
		buckets = append(buckets, bucket{colour: c, count: n})
	}

	processed := make([]bool, len(buckets))
	var clusters []Cluster

	for i, seed := range buckets {
		if processed[i] {
			continue
		}
		processed[i] = true

		var sum weightedSum
		sum.add(seed.colour, seed.count)

		for j, other := range buckets {
			if processed[j] {
				continue
			}
			if seed.colour.Distance(other.colour) <= MergeDistance {
				sum.add(other.colour, other.count)
				processed[j] = true
			}
		}

		mean := sum.mean()
		clusters = append(clusters, Cluster{
			Colour:  mean.Quantize(CentroidLevels),
			Mean:    mean,
			Weight:  sum.weight,
			Members: sum.members,
		})
	}

	return clusters
}
