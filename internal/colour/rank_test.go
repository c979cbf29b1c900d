package colour

import (
	"math"
	"testing"
)

const pctTolerance = 1e-6

func sumPercentages(colours []ColourPercentage) float64 {
	sum := 0.0
	for _, c := range colours {
		sum += c.Percentage
	}
	return sum
}

func TestRankTopThreeNormalised(t *testing.T) {
	clusters := []Cluster{
		{Colour: RGB{R: 8}, Weight: 10},
		{Colour: RGB{R: 16}, Weight: 30},
		{Colour: RGB{R: 24}, Weight: 5},
		{Colour: RGB{R: 32}, Weight: 20},
	}

	// Population 100 leaves 30/20/10 before rescaling.
	ranked := Rank(clusters, 100)

	if len(ranked) != 3 {
		t.Fatalf("got %d entries, want 3", len(ranked))
	}

	wantColours := []string{"rgb(16,0,0)", "rgb(32,0,0)", "rgb(8,0,0)"}
	wantPct := []float64{50, 100.0 / 3, 100.0 / 6}
	for i := range ranked {
		if ranked[i].Colour != wantColours[i] {
			t.Errorf("entry %d colour = %s, want %s", i, ranked[i].Colour, wantColours[i])
		}
		if math.Abs(ranked[i].Percentage-wantPct[i]) > pctTolerance {
			t.Errorf("entry %d percentage = %v, want %v", i, ranked[i].Percentage, wantPct[i])
		}
	}

	if sum := sumPercentages(ranked); math.Abs(sum-100) > pctTolerance {
		t.Errorf("percentages sum to %v, want 100", sum)
	}
}

func TestRankTiesKeepInputOrder(t *testing.T) {
	clusters := []Cluster{
		{Colour: RGB{R: 1}, Weight: 5},
		{Colour: RGB{R: 2}, Weight: 7},
		{Colour: RGB{R: 3}, Weight: 5},
		{Colour: RGB{R: 4}, Weight: 5},
	}

	ranked := Rank(clusters, 22)

	want := []string{"rgb(2,0,0)", "rgb(1,0,0)", "rgb(3,0,0)"}
	for i := range want {
		if ranked[i].Colour != want[i] {
			t.Errorf("entry %d = %s, want %s", i, ranked[i].Colour, want[i])
		}
	}
}

func TestRankDoesNotReorderInput(t *testing.T) {
	clusters := []Cluster{
		{Colour: RGB{R: 1}, Weight: 1},
		{Colour: RGB{R: 2}, Weight: 9},
	}
	Rank(clusters, 10)
	if clusters[0].Weight != 1 {
		t.Error("Rank modified its input slice")
	}
}

func TestRankFewerThanThree(t *testing.T) {
	ranked := Rank([]Cluster{{Colour: RGB{G: 8}, Weight: 5}}, 20)

	if len(ranked) != 1 {
		t.Fatalf("got %d entries, want 1", len(ranked))
	}
	if math.Abs(ranked[0].Percentage-100) > pctTolerance {
		t.Errorf("percentage = %v, want 100", ranked[0].Percentage)
	}
	if ranked[0].Hex != "#000800" {
		t.Errorf("Hex = %s, want #000800", ranked[0].Hex)
	}
}

func TestRankEmpty(t *testing.T) {
	tests := []struct {
		name       string
		clusters   []Cluster
		population float64
	}{
		{name: "no clusters", population: 100},
		{name: "zero population", clusters: []Cluster{{Weight: 1}}, population: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := Rank(tt.clusters, tt.population)
			if ranked == nil || len(ranked) != 0 {
				t.Errorf("Rank() = %#v, want empty non-nil slice", ranked)
			}
		})
	}
}
