package cli

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Alignment controls how a column's cells are padded.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// ansiEscape matches SGR sequences, which take no space on screen.
var ansiEscape = regexp.MustCompile("\x1b\\[[0-9;]*m")

// Table renders rows as aligned columns. Cells may contain ANSI colour codes;
// widths are measured on the visible text.
type Table struct {
	headers []string
	rows    [][]string
	align   map[int]Alignment
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		align:   make(map[int]Alignment),
		padding: 2,
	}
}

// SetAlignment sets the alignment of a column.
func (t *Table) SetAlignment(colIndex int, a Alignment) {
	t.align[colIndex] = a
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	normalised := make([]string, len(t.headers))
	copy(normalised, row)
	t.rows = append(t.rows, normalised)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = visibleLen(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], visibleLen(cell))
		}
	}

	var sb strings.Builder
	t.writeLine(&sb, t.headers, widths)

	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	t.writeLine(&sb, sep, widths)

	for _, row := range t.rows {
		t.writeLine(&sb, row, widths)
	}

	return sb.String()
}

func (t *Table) writeLine(sb *strings.Builder, cells []string, widths []int) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = pad(cell, widths[i], t.align[i])
	}
	sb.WriteString(strings.TrimRight(strings.Join(parts, strings.Repeat(" ", t.padding)), " "))
	sb.WriteString("\n")
}

// pad pads s with spaces to width visible characters.
func pad(s string, width int, a Alignment) string {
	n := visibleLen(s)
	if n >= width {
		return s
	}
	fill := strings.Repeat(" ", width-n)
	if a == AlignRight {
		return fill + s
	}
	return s + fill
}

// visibleLen returns the number of runes in s once ANSI escapes are removed.
func visibleLen(s string) int {
	return utf8.RuneCountInString(ansiEscape.ReplaceAllString(s, ""))
}
