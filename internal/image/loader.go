// Package image provides utilities for admitting, loading and decoding images.
package image

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/image/draw"

	"github.com/jmylchreest/triad/internal/colour"
	httputil "github.com/jmylchreest/triad/internal/util/http"
)

// DefaultMaxSize is the largest encoded image accepted, in bytes.
const DefaultMaxSize int64 = 5 * 1024 * 1024

var (
	// ErrUnsupportedFormat is returned for images that are not JPEG or PNG.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrTooLarge is returned for images over the size limit.
	ErrTooLarge = errors.New("image too large")
)

// supportedFormats are the decoder names accepted by the loader.
var supportedFormats = []string{"jpeg", "png"}

// Loader handles loading images from various sources.
type Loader interface {
	// Load loads an image from the given path or URL.
	Load(ctx context.Context, path string) (image.Image, error)
}

// SmartLoader loads JPEG and PNG images from local files and HTTP(S) URLs.
type SmartLoader struct {
	maxSize     int64
	validateURL func(string) error
}

// LoaderOption configures a SmartLoader.
type LoaderOption func(*SmartLoader)

// WithURLValidator rejects URLs for which validate returns an error before
// anything is fetched.
func WithURLValidator(validate func(string) error) LoaderOption {
	return func(l *SmartLoader) {
		l.validateURL = validate
	}
}

// NewSmartLoader creates a SmartLoader. A maxSize of zero or less uses DefaultMaxSize.
func NewSmartLoader(maxSize int64, opts ...LoaderOption) *SmartLoader {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	l := &SmartLoader{maxSize: maxSize}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// MaxSize returns the size limit in bytes.
func (l *SmartLoader) MaxSize() int64 {
	return l.maxSize
}

// Load reads, admits and decodes the image at path.
func (l *SmartLoader) Load(ctx context.Context, path string) (image.Image, error) {
	data, err := l.read(ctx, path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

func (l *SmartLoader) read(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	if IsURL(path) {
		if l.validateURL != nil {
			if err := l.validateURL(path); err != nil {
				return nil, fmt.Errorf("refusing to fetch %s: %w", path, err)
			}
		}
		data, err := httputil.Fetch(ctx, path, httputil.FetchOptions{MaxBytes: l.maxSize})
		if errors.Is(err, httputil.ErrBodyTooLarge) {
			return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, path, l.maxSize)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to fetch image from URL: %w", err)
		}
		return data, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if info.Size() > l.maxSize {
		return nil, fmt.Errorf("%w: %s is %d bytes (maximum: %d)", ErrTooLarge, path, info.Size(), l.maxSize)
	}

	data, err := os.ReadFile(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}
	return data, nil
}

// Decode admits and decodes encoded image data.
// The format is sniffed from the content, not taken from a file extension.
func Decode(data []byte) (image.Image, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}
	if !slices.Contains(supportedFormats, format) {
		return nil, fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedFormat, format, strings.Join(supportedFormats, ", "))
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}
	return img, nil
}

// ToPixelBuffer converts a decoded image into a tightly packed,
// non-premultiplied RGBA buffer.
func ToPixelBuffer(img image.Image) colour.PixelBuffer {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == width*4 && bounds.Min == (image.Point{}) {
		return colour.PixelBuffer{Width: width, Height: height, Pix: nrgba.Pix[:width*height*4]}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return colour.PixelBuffer{Width: width, Height: height, Pix: dst.Pix}
}

// IsURL reports whether path is an HTTP(S) URL.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// SupportedImageExtensions returns a list of supported image file extensions.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png"}
}

// isImageFile checks if a file has a supported image extension.
func isImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(SupportedImageExtensions(), ext)
}

// ScanDirectoryForImages returns the supported image files in a directory,
// sorted by name. It does not recurse into subdirectories, but follows symlinks.
func ScanDirectoryForImages(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var imageFiles []string
	for _, entry := range entries {
		fullPath := filepath.Join(dirPath, entry.Name())

		// For symlinks, stat the target to determine if it's a file.
		info, err := os.Stat(fullPath)
		if err != nil {
			continue
		}
		if info.IsDir() {
			continue
		}
		if isImageFile(entry.Name()) {
			imageFiles = append(imageFiles, fullPath)
		}
	}

	if len(imageFiles) == 0 {
		return nil, fmt.Errorf("no supported image files found in directory: %s", dirPath)
	}

	slices.Sort(imageFiles)
	return imageFiles, nil
}

// ResolveImagePaths expands directories into the images they contain.
// Files and URLs are returned as-is, in argument order.
func ResolveImagePaths(paths []string) ([]string, error) {
	var resolved []string
	for _, path := range paths {
		if IsURL(path) {
			resolved = append(resolved, path)
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to access path: %w", err)
		}
		if !info.IsDir() {
			resolved = append(resolved, path)
			continue
		}

		images, err := ScanDirectoryForImages(path)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, images...)
	}
	return resolved, nil
}
