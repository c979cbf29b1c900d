package colour

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// AnalysisResult is the output of one analysis.
type AnalysisResult struct {
	// Source optionally names the analysed image; the pipeline never sets it.
	Source string `json:"source,omitempty"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	// Colours holds at most TopClusters entries ordered by descending percentage.
	Colours []ColourPercentage `json:"colours"`

	// TotalDistinctColours is the number of quantized buckets before merging.
	TotalDistinctColours int `json:"total_distinct_colours"`

	Stride        int     `json:"stride"`
	Population    float64 `json:"population"`
	OpaqueSamples int     `json:"opaque_samples"`
	Clusters      int     `json:"clusters"`
}

// Evaluate checks the result against the 60/30/10 rule.
func (r *AnalysisResult) Evaluate() Evaluation {
	return Evaluate(r.Colours)
}

// FollowsRule reports whether the result conforms to the 60/30/10 rule.
func (r *AnalysisResult) FollowsRule() bool {
	return CheckRule(r.Colours)
}

// MarshalJSON includes the rule evaluation alongside the result fields.
func (r *AnalysisResult) MarshalJSON() ([]byte, error) {
	type plain AnalysisResult
	return json.Marshal(struct {
		*plain
		Rule Evaluation `json:"rule"`
	}{(*plain)(r), r.Evaluate()})
}

// ToJSON converts the result and its evaluation to indented JSON.
func (r *AnalysisResult) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Analyser runs the palette pipeline over pixel buffers.
// It holds no state between calls; the same buffer always yields the same result.
type Analyser struct {
	logger hclog.Logger
}

// Option configures an Analyser.
type Option func(*Analyser)

// WithLogger sets the logger used for pipeline statistics.
func WithLogger(logger hclog.Logger) Option {
	return func(a *Analyser) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAnalyser creates an Analyser. Without options it logs nothing.
func NewAnalyser(opts ...Option) *Analyser {
	a := &Analyser{logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyse samples buf, groups its colours and ranks the three most dominant.
// A buffer with no opaque samples yields an empty result, not an error.
func (a *Analyser) Analyse(buf PixelBuffer) (*AnalysisResult, error) {
	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("failed to analyse buffer: %w", err)
	}

	sampling := SamplingFor(buf.Len())
	table := Aggregate(buf, sampling)
	a.logger.Debug("sampled pixels",
		"width", buf.Width, "height", buf.Height,
		"stride", sampling.Stride, "population", sampling.Population,
		"opaque", table.Total(), "buckets", table.Len())

	clusters := MergeClusters(table)
	for i, c := range clusters {
		a.logger.Trace("cluster", "index", i, "colour", c.Colour.String(), "weight", c.Weight, "members", c.Members)
	}

	colours := Rank(clusters, sampling.Population)
	a.logger.Debug("ranked clusters", "clusters", len(clusters), "reported", len(colours))

	return &AnalysisResult{
		Width:                buf.Width,
		Height:               buf.Height,
		Colours:              colours,
		TotalDistinctColours: table.Len(),
		Stride:               sampling.Stride,
		Population:           sampling.Population,
		OpaqueSamples:        table.Total(),
		Clusters:             len(clusters),
	}, nil
}

// Analyse runs the pipeline with a default Analyser.
func Analyse(buf PixelBuffer) (*AnalysisResult, error) {
	return NewAnalyser().Analyse(buf)
}
