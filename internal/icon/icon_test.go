package icon

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return img
}

func pixelAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestCircleCenterAndCornerViaFile(t *testing.T) {
	// End-to-end: generate, persist, read back, decode.
	green := color.NRGBA{52, 199, 89, 255}
	data, err := EncodePNG(Circle(green, 22))
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	path := filepath.Join(t.TempDir(), "icon-green-22.png")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	read, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	img := decodePNG(t, read)
	if got := pixelAt(img, 11, 11); got != green {
		t.Errorf("center pixel = %v, want %v", got, green)
	}
	if got := pixelAt(img, 0, 0); got != (color.NRGBA{}) {
		t.Errorf("corner pixel = %v, want transparent", got)
	}
}

func TestPresetDimensions(t *testing.T) {
	c := color.NRGBA{255, 59, 48, 255}
	presets := []struct {
		name string
		draw func(size int) *image.RGBA
	}{
		{"circle", func(s int) *image.RGBA { return Circle(c, s) }},
		{"document", func(s int) *image.RGBA { return Document(c, s) }},
		{"menubar", func(s int) *image.RGBA { return MenuBar(c, s) }},
		{"app", App},
	}
	for _, p := range presets {
		for _, size := range []int{22, 44, 128} {
			img := p.draw(size)
			b := img.Bounds()
			if b.Dx() != size || b.Dy() != size {
				t.Errorf("%s(%d): bounds %dx%d, want %dx%d", p.name, size, b.Dx(), b.Dy(), size, size)
			}
		}
	}
}

func TestPresetCornersTransparent(t *testing.T) {
	c := color.NRGBA{255, 204, 0, 255}
	presets := map[string]*image.RGBA{
		"circle":   Circle(c, 22),
		"document": Document(c, 22),
		"menubar":  MenuBar(c, 22),
	}
	corners := [][2]int{{0, 0}, {21, 0}, {0, 21}, {21, 21}}
	for name, img := range presets {
		for _, xy := range corners {
			if got := pixelAt(img, xy[0], xy[1]); got != (color.NRGBA{}) {
				t.Errorf("%s corner (%d,%d) = %v, want transparent", name, xy[0], xy[1], got)
			}
		}
	}
}

func TestEncodePNGDeterministic(t *testing.T) {
	c := color.NRGBA{52, 199, 89, 255}
	images := map[string]*image.RGBA{
		"circle":   Circle(c, 22),
		"document": Document(c, 22),
		"menubar":  MenuBar(c, 22),
		"app":      App(64),
	}
	for name, img := range images {
		a, err := EncodePNG(img)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		b, err := EncodePNG(img)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%s: repeated encode differs", name)
		}
	}
}

func TestDocumentLayout(t *testing.T) {
	red := color.NRGBA{255, 59, 48, 255}
	img := Document(red, 22)

	if got, want := pixelAt(img, 8, 8), (color.NRGBA{160, 160, 160, 255}); got != want {
		t.Errorf("body pixel = %v, want %v", got, want)
	}
	if got, want := pixelAt(img, 17, 5), (color.NRGBA{100, 100, 100, 255}); got != want {
		t.Errorf("fold pixel = %v, want %v", got, want)
	}
	if got := pixelAt(img, 14, 14); got != red {
		t.Errorf("dot pixel = %v, want %v", got, red)
	}
}

func TestMenuBarLayout(t *testing.T) {
	yellow := color.NRGBA{255, 214, 10, 255}
	img := MenuBar(yellow, 22)

	black := color.NRGBA{0, 0, 0, 255}
	// Left edge of the tablet outline, straight section.
	if got := pixelAt(img, 2, 10); got != black {
		t.Errorf("tablet outline pixel = %v, want %v", got, black)
	}
	// Middle of the pen stroke.
	if got := pixelAt(img, 12, 9); got != black {
		t.Errorf("pen pixel = %v, want %v", got, black)
	}
	// Center of the status dot.
	if got := pixelAt(img, 18, 5); got != yellow {
		t.Errorf("dot pixel = %v, want %v", got, yellow)
	}
	// Halo region left of the dot: translucent white.
	halo := pixelAt(img, 14, 5)
	if halo.A == 0 || halo.A == 255 {
		t.Errorf("halo alpha = %d, want translucent", halo.A)
	}
	if halo.R != halo.G || halo.G != halo.B {
		t.Errorf("halo pixel = %v, want neutral white", halo)
	}
	// Inside the tablet, away from pen and dot: template leaves it clear.
	if got := pixelAt(img, 5, 16); got != (color.NRGBA{}) {
		t.Errorf("tablet interior pixel = %v, want transparent", got)
	}
}
