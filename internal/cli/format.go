package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jmylchreest/triad/internal/colour"
)

const swatchWidth = 6

// formatResults renders results in the requested format. A single JSON
// result is written as an object, several as an array.
func formatResults(results []*colour.AnalysisResult, format string, preview bool) (string, error) {
	switch format {
	case formatText:
		blocks := make([]string, len(results))
		for i, r := range results {
			blocks[i] = renderText(r, preview)
		}
		return strings.Join(blocks, "\n"), nil
	case formatJSON:
		var (
			data []byte
			err  error
		)
		if len(results) == 1 {
			data, err = results[0].ToJSON()
		} else {
			data, err = json.MarshalIndent(results, "", "  ")
		}
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: %s, %s)", format, formatText, formatJSON)
	}
}

// renderText renders one result as a summary, a colour table and the verdict.
func renderText(r *colour.AnalysisResult, preview bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Image: %s (%dx%d)\n", r.Source, r.Width, r.Height)
	if r.TotalDistinctColours > colour.TopClusters {
		fmt.Fprintf(&sb, "Detected %d distinct colours; similar colours were grouped and the %d most dominant groups are checked.\n",
			r.TotalDistinctColours, colour.TopClusters)
	} else {
		fmt.Fprintf(&sb, "Detected %d distinct colours.\n", r.TotalDistinctColours)
	}
	sb.WriteString("\n")

	eval := r.Evaluate()

	if len(r.Colours) == 0 {
		sb.WriteString("No opaque pixels to analyse.\n")
	} else {
		headers := []string{"Role", "Target", "Colour", "Hex", "Share", "Variance", ""}
		if preview {
			headers = append([]string{""}, headers...)
		}
		table := NewTable(headers)
		offset := len(headers) - 7
		for _, col := range []int{1, 4, 5} {
			table.SetAlignment(col+offset, AlignRight)
		}

		for i, c := range r.Colours {
			e := eval.Entries[i]
			row := []string{
				string(e.Role),
				fmt.Sprintf("%.0f%%", e.Target),
				c.Colour,
				c.Hex,
				fmt.Sprintf("%.1f%%", c.Percentage),
				e.VarianceString(),
				colour.Mark(e.InMargin, preview),
			}
			if preview {
				row = append([]string{colour.ColourPreview(c.RGB, swatchWidth)}, row...)
			}
			table.AddRow(row)
		}
		sb.WriteString(table.Render())
		sb.WriteString("\n")
	}

	verdict := "does not follow the 60/30/10 rule"
	if eval.Conforms {
		verdict = "follows the 60/30/10 rule"
	}
	fmt.Fprintf(&sb, "%s Palette %s (margin ±%.0f%%)\n", colour.Mark(eval.Conforms, preview), verdict, colour.RuleMargin)
	if len(r.Colours) < colour.TopClusters {
		fmt.Fprintf(&sb, "  only %d colour group(s) found, %d are needed\n", len(r.Colours), colour.TopClusters)
	}

	return sb.String()
}

// isTerminal reports whether w is a terminal that accepts colour output.
func isTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 - file descriptors fit in int
}
