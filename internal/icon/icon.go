// Package icon draws the Legible menu bar and application icons. Every
// preset is a pure function from (color, size) to an in-memory raster;
// PNG encoding and batch iteration are kept separate so callers can
// compose them.
package icon

import (
	"image"
	"image/color"
)

// MenuBarSize is the standard macOS menu bar icon edge in pixels. All
// menu bar geometry is designed on the 22 px grid and scaled from there.
const MenuBarSize = 22

// Status pairs a symbolic state name with its indicator color.
type Status struct {
	Name  string
	Color color.NRGBA
}

// Statuses is the classic status palette (Apple system colors): idle,
// syncing, error.
var Statuses = []Status{
	{"green", color.NRGBA{52, 199, 89, 255}},
	{"yellow", color.NRGBA{255, 204, 0, 255}},
	{"red", color.NRGBA{255, 59, 48, 255}},
}

// DarkStatuses swaps in a more vibrant yellow and red so the dot reads on
// dark menu bars as well as light ones.
var DarkStatuses = []Status{
	{"green", color.NRGBA{52, 199, 89, 255}},
	{"yellow", color.NRGBA{255, 214, 10, 255}},
	{"red", color.NRGBA{255, 69, 58, 255}},
}

// ink is the template color: black with full alpha, so macOS can tint the
// glyph for the active theme.
var ink = color.NRGBA{0, 0, 0, 255}

// Circle draws the minimal status icon: a filled circle with 3 px of
// padding on the 22 px grid.
func Circle(c color.NRGBA, size int) *image.RGBA {
	img := canvas(size)
	s := float64(size) / MenuBarSize
	half := float64(size) / 2
	r := half - 3*s
	fillEllipse(img, c, half, half, r, r)
	return img
}

// Document draws the document-style status icon: a light paper shape with
// a folded corner and a status dot at the bottom right.
func Document(c color.NRGBA, size int) *image.RGBA {
	img := canvas(size)
	s := float64(size) / MenuBarSize

	body := color.NRGBA{160, 160, 160, 255}
	fold := color.NRGBA{100, 100, 100, 255}

	pad := 4 * s
	w := float64(size) - 2*pad
	fillRoundRect(img, body, pad, pad, w, w, 0)

	// Folded corner, top right.
	fillPolygon(img, fold, [][2]float64{
		{14 * s, 4 * s},
		{18 * s, 4 * s},
		{18 * s, 8 * s},
	})

	// Status dot, bottom right.
	fillEllipse(img, c, 14.5*s, 14.5*s, 3.5*s, 3.5*s)
	return img
}

// MenuBar draws the tablet+pen glyph with a colored status dot. The glyph
// itself is template-compatible (pure black, shape carried by alpha); the
// dot sits on a translucent white halo so it stays visible against a dark
// menu bar, with a thin ink outline for definition.
func MenuBar(c color.NRGBA, size int) *image.RGBA {
	img := canvas(size)
	s := float64(size) / MenuBarSize

	// Tablet outline.
	strokeRoundRect(img, ink, 2*s, 4*s, 14*s, 15*s, 2*s, s)

	// Pen across the tablet, round tip at the lower end.
	fillLine(img, ink, 6.5*s, 3.5*s, 17.5*s, 14.5*s, 2*s)
	fillEllipse(img, ink, 17.5*s, 14.5*s, 1.5*s, 1.5*s)

	// Status dot over its halo.
	cx, cy := 18.5*s, 5.5*s
	r := 3 * s
	fillEllipse(img, color.NRGBA{255, 255, 255, 180}, cx, cy, r+s, r+s)
	fillEllipse(img, c, cx, cy, r, r)
	strokeEllipse(img, ink, cx, cy, r, r, s)
	return img
}
