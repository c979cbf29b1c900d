package colour

import "testing"

func TestQuantize(t *testing.T) {
	tests := []struct {
		name   string
		in     RGB
		levels int
		want   RGB
	}{
		{
			name:   "black stays black",
			levels: 16,
			want:   RGB{},
		},
		{
			name:   "white at 16 levels",
			in:     RGB{R: 255, G: 255, B: 255},
			levels: 16,
			want:   RGB{R: 240, G: 240, B: 240},
		},
		{
			name:   "white at 32 levels",
			in:     RGB{R: 255, G: 255, B: 255},
			levels: 32,
			want:   RGB{R: 248, G: 248, B: 248},
		},
		{
			name:   "mixed channels at 16 levels",
			in:     RGB{R: 200, G: 50, B: 15},
			levels: 16,
			want:   RGB{R: 192, G: 48, B: 0},
		},
		{
			name:   "mixed channels at 32 levels",
			in:     RGB{R: 103, G: 100, B: 7},
			levels: 32,
			want:   RGB{R: 96, G: 96, B: 0},
		},
		{
			name:   "grid boundary is kept",
			in:     RGB{R: 16, G: 32, B: 48},
			levels: 16,
			want:   RGB{R: 16, G: 32, B: 48},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quantize(tt.in.R, tt.in.G, tt.in.B, tt.levels); got != tt.want {
				t.Errorf("Quantize(%+v, %d) = %+v, want %+v", tt.in, tt.levels, got, tt.want)
			}
		})
	}
}

func TestQuantizeIdempotent(t *testing.T) {
	for _, levels := range []int{BucketLevels, CentroidLevels} {
		for v := 0; v < 256; v++ {
			c := uint8(v)
			once := Quantize(c, 255-c, c/2, levels)
			if twice := once.Quantize(levels); twice != once {
				t.Fatalf("levels %d: re-quantizing %+v gave %+v", levels, once, twice)
			}
		}
	}
}

func TestQuantizeBucketsAreOnCentroidGrid(t *testing.T) {
	// Every 16-level value is also a 32-level value.
	for v := 0; v < 256; v++ {
		c := Quantize(uint8(v), uint8(v), uint8(v), BucketLevels)
		if got := c.Quantize(CentroidLevels); got != c {
			t.Fatalf("Quantize(%+v, 32) = %+v, want unchanged", c, got)
		}
	}
}

func TestValidateLevels(t *testing.T) {
	tests := []struct {
		levels  int
		wantErr bool
	}{
		{levels: 1},
		{levels: 16},
		{levels: 32},
		{levels: 256},
		{levels: 0, wantErr: true},
		{levels: 3, wantErr: true},
		{levels: 512, wantErr: true},
		{levels: -16, wantErr: true},
	}

	for _, tt := range tests {
		err := ValidateLevels(tt.levels)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateLevels(%d) error = %v, wantErr %v", tt.levels, err, tt.wantErr)
		}
	}
}
