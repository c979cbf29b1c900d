package colour

import "fmt"

const (
	// BucketLevels is the grid used when counting sampled pixels.
	BucketLevels = 16

	// CentroidLevels is the finer grid used for a merged cluster's reported colour.
	CentroidLevels = 32
)

// Quantize snaps each channel down to the nearest multiple of 256/levels.
// Quantizing an already quantized colour at the same level is a no-op.
func Quantize(r, g, b uint8, levels int) RGB {
	step := quantizeStep(levels)
	return RGB{
		R: uint8(int(r) / step * step),
		G: uint8(int(g) / step * step),
		B: uint8(int(b) / step * step),
	}
}

// Quantize returns the colour snapped to the given grid.
func (rgb RGB) Quantize(levels int) RGB {
	return Quantize(rgb.R, rgb.G, rgb.B, levels)
}

// ValidateLevels reports whether levels divides the 0-255 channel range evenly.
func ValidateLevels(levels int) error {
	if levels < 1 || levels > 256 || 256%levels != 0 {
		return fmt.Errorf("quantization levels must be a power of two between 1 and 256, got %d", levels)
	}
	return nil
}

// quantizeStep panics on invalid levels; callers only pass package constants
// or values checked with ValidateLevels.
func quantizeStep(levels int) int {
	if err := ValidateLevels(levels); err != nil {
		panic(err)
	}
	return 256 / levels
}
