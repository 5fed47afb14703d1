package debug

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/image/bmp"
)

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func TestFlipRGBA(t *testing.T) {
	// Two rows, bottom row red, top row blue, as OpenGL returns them.
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}
	img, err := FlipRGBA(pixels, 2, 2)
	if err != nil {
		t.Fatalf("FlipRGBA: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top-left = %v, want blue", got)
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom-right = %v, want red", got)
	}
}

func TestFlipRGBASizeMismatch(t *testing.T) {
	if _, err := FlipRGBA(make([]byte, 10), 2, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestCaptureFromPixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "water")
	sc.now = fixedClock(time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC))

	pixels := make([]byte, 4*3*4)
	for i := range pixels {
		pixels[i] = 200
	}

	path, err := sc.CaptureFromPixels(pixels, 4, 3)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	if want := filepath.Join(dir, "water_2024-05-01_12-30-00.png"); path != want {
		t.Errorf("path = %s, want %s", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open capture: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode capture: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("capture size = %v, want 4x3", b)
	}
}

func TestGenerateFilenameSameSecond(t *testing.T) {
	sc := NewScreenshotCapture("", "water")
	sc.now = fixedClock(time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC))

	names := []string{sc.GenerateFilename(), sc.GenerateFilename(), sc.GenerateFilename()}
	want := []string{
		"water_2024-05-01_12-30-00.png",
		"water_2024-05-01_12-30-00_1.png",
		"water_2024-05-01_12-30-00_2.png",
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("name %d = %s, want %s", i, names[i], want[i])
		}
	}

	sc.now = fixedClock(time.Date(2024, 5, 1, 12, 30, 1, 0, time.UTC))
	if got := sc.GenerateFilename(); got != "water_2024-05-01_12-30-01.png" {
		t.Errorf("next second name = %s", got)
	}
}

func TestSaveImageFormats(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 5, 4))
	img.Set(2, 2, color.RGBA{45, 129, 174, 255})

	tests := []struct {
		name   string
		decode func(*os.File) (image.Image, error)
	}{
		{"out.png", func(f *os.File) (image.Image, error) { return png.Decode(f) }},
		{"OUT.BMP", func(f *os.File) (image.Image, error) { return bmp.Decode(f) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			if err := SaveImage(path, img); err != nil {
				t.Fatalf("SaveImage: %v", err)
			}
			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			got, err := tt.decode(f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			r, g, b, _ := got.At(2, 2).RGBA()
			if r>>8 != 45 || g>>8 != 129 || b>>8 != 174 {
				t.Errorf("pixel = (%d,%d,%d), want (45,129,174)", r>>8, g>>8, b>>8)
			}
		})
	}
}

func TestSaveImageUnknownFormat(t *testing.T) {
	err := SaveImage(filepath.Join(t.TempDir(), "out.jpg"), image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}
