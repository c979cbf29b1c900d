package colour

import (
	"errors"
	"testing"
)

func TestSamplingFor(t *testing.T) {
	tests := []struct {
		name           string
		totalPixels    int
		wantStride     int
		wantPopulation float64
	}{
		{name: "empty", totalPixels: 0, wantStride: 1, wantPopulation: 0},
		{name: "tiny", totalPixels: 4, wantStride: 1, wantPopulation: 4},
		{name: "100x100", totalPixels: 10000, wantStride: 1, wantPopulation: 10000},
		{name: "just under 200x200", totalPixels: 39999, wantStride: 1, wantPopulation: 39999},
		{name: "200x200", totalPixels: 40000, wantStride: 2, wantPopulation: 20000},
		{name: "1920x1080", totalPixels: 1920 * 1080, wantStride: 14, wantPopulation: 1920 * 1080 / 14.0},
		{name: "wide strip", totalPixels: 10000 * 4, wantStride: 2, wantPopulation: 20000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SamplingFor(tt.totalPixels)
			if got.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", got.Stride, tt.wantStride)
			}
			if got.Population != tt.wantPopulation {
				t.Errorf("Population = %v, want %v", got.Population, tt.wantPopulation)
			}
		})
	}
}

func TestNewPixelBuffer(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		pixLen        int
		wantErr       bool
	}{
		{name: "valid", width: 2, height: 3, pixLen: 24},
		{name: "empty", width: 0, height: 0, pixLen: 0},
		{name: "short", width: 2, height: 2, pixLen: 15, wantErr: true},
		{name: "long", width: 2, height: 2, pixLen: 17, wantErr: true},
		{name: "negative", width: -1, height: 4, pixLen: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPixelBuffer(tt.width, tt.height, make([]uint8, tt.pixLen))
			if tt.wantErr && !errors.Is(err, ErrInvalidBuffer) {
				t.Errorf("NewPixelBuffer() error = %v, want ErrInvalidBuffer", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("NewPixelBuffer() unexpected error: %v", err)
			}
		})
	}
}

func TestSamplesSkipsTransparentPixels(t *testing.T) {
	buf := pixelRow(
		Pixel{R: 1, A: 255},
		Pixel{R: 2, A: 127},
		Pixel{R: 3, A: 128},
		Pixel{R: 4, A: 0},
	)

	var got []uint8
	for _, p := range buf.Samples(Sampling{Stride: 1, Population: 4}) {
		got = append(got, p.R)
	}

	want := []uint8{1, 3}
	if len(got) != len(want) {
		t.Fatalf("sampled %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSamplesHonoursStride(t *testing.T) {
	pixels := make([]Pixel, 10)
	for i := range pixels {
		pixels[i] = Pixel{R: uint8(i), A: 255}
	}
	buf := pixelRow(pixels...)

	var indices []int
	for i, p := range buf.Samples(Sampling{Stride: 3}) {
		if int(p.R) != i {
			t.Errorf("pixel at %d has R=%d", i, p.R)
		}
		indices = append(indices, i)
	}

	want := []int{0, 3, 6, 9}
	if len(indices) != len(want) {
		t.Fatalf("visited %v, want %v", indices, want)
	}
	for i := range want {
		if indices[i] != want[i] {
			t.Errorf("visit %d = %d, want %d", i, indices[i], want[i])
		}
	}
}

// pixelRow builds a single-row buffer from pixels.
func pixelRow(pixels ...Pixel) PixelBuffer {
	pix := make([]uint8, 0, len(pixels)*4)
	for _, p := range pixels {
		pix = append(pix, p.R, p.G, p.B, p.A)
	}
	return PixelBuffer{Width: len(pixels), Height: 1, Pix: pix}
}
