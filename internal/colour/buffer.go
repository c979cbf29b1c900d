package colour

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

// ErrInvalidBuffer is returned when a pixel buffer's length does not match its dimensions.
var ErrInvalidBuffer = errors.New("invalid pixel buffer")

// opaqueThreshold is the minimum alpha for a sampled pixel to be counted.
const opaqueThreshold = 128

// Pixel is a single non-premultiplied RGBA sample.
type Pixel struct {
	R, G, B, A uint8
}

// PixelBuffer is a decoded raster: Width*Height pixels, four bytes each
// (R, G, B, A), row-major with no padding between rows.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewPixelBuffer wraps pix as a Width x Height buffer after validating its length.
func NewPixelBuffer(width, height int, pix []uint8) (PixelBuffer, error) {
	buf := PixelBuffer{Width: width, Height: height, Pix: pix}
	if err := buf.Validate(); err != nil {
		return PixelBuffer{}, err
	}
	return buf, nil
}

// Validate checks the dimensions against the length of Pix.
func (b PixelBuffer) Validate() error {
	if b.Width < 0 || b.Height < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidBuffer, b.Width, b.Height)
	}
	if want := b.Width * b.Height * 4; len(b.Pix) != want {
		return fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrInvalidBuffer, b.Width, b.Height, want, len(b.Pix))
	}
	return nil
}

// Len returns the number of pixels in the buffer.
func (b PixelBuffer) Len() int {
	return b.Width * b.Height
}

// At returns the pixel at flat index i.
func (b PixelBuffer) At(i int) Pixel {
	p := b.Pix[i*4 : i*4+4 : i*4+4]
	return Pixel{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Sampling describes how a buffer was sampled.
type Sampling struct {
	// Stride is the distance, in pixels, between visited pixels.
	Stride int
	// Population is Len()/Stride and is the denominator of every percentage,
	// whether or not the visited pixels turned out to be transparent.
	Population float64
}

// SamplingFor returns the sampling used for a buffer of totalPixels pixels.
// The stride keeps the number of visited pixels near 100*100 regardless of
// resolution or aspect ratio.
func SamplingFor(totalPixels int) Sampling {
	stride := max(1, int(math.Floor(math.Sqrt(float64(totalPixels))/100)))
	return Sampling{
		Stride:     stride,
		Population: float64(totalPixels) / float64(stride),
	}
}

// Samples iterates over every stride-th pixel, skipping any with alpha below 128.
// The yielded index is the pixel's flat position in the buffer.
func (b PixelBuffer) Samples(s Sampling) iter.Seq2[int, Pixel] {
	return func(yield func(int, Pixel) bool) {
		for i := 0; i < b.Len(); i += s.Stride {
			p := b.At(i)
			if p.A < opaqueThreshold {
				continue
			}
			if !yield(i, p) {
				return
			}
		}
	}
}
