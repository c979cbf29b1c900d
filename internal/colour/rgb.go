// Package colour implements the palette analysis pipeline: sampling,
// quantization, frequency aggregation, cluster merging, ranking and the
// 60/30/10 rule check.
package colour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedColourKey is returned when a colour key cannot be parsed back
// into channel values.
var ErrMalformedColourKey = errors.New("malformed colour key")

// RGB represents a colour in RGB format.
// Quantized colours are RGB values whose channels sit on a grid; equality is
// structural so RGB is used directly as a map key.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the canonical key form "rgb(r,g,b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Distance returns the Euclidean distance between two colours in raw channel space.
func (rgb RGB) Distance(other RGB) float64 {
	dr := float64(rgb.R) - float64(other.R)
	dg := float64(rgb.G) - float64(other.G)
	db := float64(rgb.B) - float64(other.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// ParseColourKey parses a key in the form produced by RGB.String.
// Whitespace around the channel values is tolerated.
func ParseColourKey(key string) (RGB, error) {
	inner, ok := strings.CutPrefix(key, "rgb(")
	if !ok {
		return RGB{}, fmt.Errorf("%w: %q", ErrMalformedColourKey, key)
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return RGB{}, fmt.Errorf("%w: %q", ErrMalformedColourKey, key)
	}

	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("%w: %q has %d channels", ErrMalformedColourKey, key, len(parts))
	}

	var channels [3]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q: %w", ErrMalformedColourKey, key, err)
		}
		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}
