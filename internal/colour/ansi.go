package colour

import (
	"fmt"
	"math"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Verdict colours used by Mark.
var (
	passColour = RGB{R: 34, G: 197, B: 94}
	failColour = RGB{R: 239, G: 68, B: 68}
)

// ColourPreview returns an ANSI-coloured preview string for a colour.
// Width specifies how many characters wide the colour block should be.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bgColour + strings.Repeat(" ", width) + ansiReset
}

// ColourPreviewWithText returns a colour block with centred text whose
// colour contrasts with the background.
func ColourPreviewWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := RGB{R: 255, G: 255, B: 255}
	if relativeLuminance(c) > 0.5 {
		fg = RGB{}
	}

	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bgColour + Foreground(fg, displayText) + ansiReset
}

// Foreground wraps text in a 24-bit foreground colour.
func Foreground(c RGB, text string) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix) + text + ansiReset
}

// Mark returns a pass or fail marker, coloured when colourise is set.
func Mark(ok, colourise bool) string {
	mark, c := "✗", failColour
	if ok {
		mark, c = "✓", passColour
	}
	if !colourise {
		return mark
	}
	return Foreground(c, mark)
}

// relativeLuminance calculates WCAG 2.0 relative luminance in [0, 1].
func relativeLuminance(c RGB) float64 {
	linear := func(v uint8) float64 {
		f := float64(v) / 255.0
		if f <= 0.03928 {
			return f / 12.92
		}
		return math.Pow((f+0.055)/1.055, 2.4)
	}
	return 0.2126*linear(c.R) + 0.7152*linear(c.G) + 0.0722*linear(c.B)
}
