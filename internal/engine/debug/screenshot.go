// Package debug provides debug utilities for the running demo.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/draw"
)

// ScreenshotCapture writes frames to timestamped PNG files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	// Scale resizes the image before saving. Values <= 0 or 1 keep the size.
	Scale float32

	now       func() time.Time
	last      string
	seq       int
}

// NewScreenshotCapture creates a new screenshot capture handler.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		Scale:     1,
		now:       time.Now,
	}
}

// CaptureFromPixels saves bottom-up RGBA rows (as read from OpenGL) as a PNG
// and returns the file path.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}

	return sc.save(sc.resize(img))
}

func (sc *ScreenshotCapture) resize(img *image.RGBA) image.Image {
	if sc.Scale <= 0 || sc.Scale == 1 {
		return img
	}
	b := img.Bounds()
	w := max(int(float32(b.Dx())*sc.Scale), 1)
	h := max(int(float32(b.Dy())*sc.Scale), 1)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func (sc *ScreenshotCapture) save(img image.Image) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.nextFilename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return filename, nil
}

// nextFilename returns prefix_timestamp.png, adding a counter when several
// shots land in the same second.
func (sc *ScreenshotCapture) nextFilename() string {
	stamp := sc.now().Format("2006-01-02_15-04-05")
	name := fmt.Sprintf("%s_%s.png", sc.prefix, stamp)
	if stamp == sc.last {
		sc.seq++
		name = fmt.Sprintf("%s_%s_%d.png", sc.prefix, stamp, sc.seq)
	} else {
		sc.last = stamp
		sc.seq = 0
	}
	return filepath.Join(sc.outputDir, name)
}
