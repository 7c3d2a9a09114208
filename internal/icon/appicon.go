package icon

import (
	"image"
	"image/color"
)

// appDesignSize is the reference edge for the app icon; every coordinate
// below is scaled by size/appDesignSize.
const appDesignSize = 512

// App draws the application bundle icon: a tablet with a lit screen,
// handwriting strokes, a stylus, and the green brand accent. All geometry
// derives from a single scale factor, so any square size renders the same
// composition.
func App(size int) *image.RGBA {
	img := canvas(size)
	s := float64(size) / appDesignSize

	tablet := color.NRGBA{60, 60, 60, 255}
	screen := color.NRGBA{240, 240, 240, 255}
	pen := color.NRGBA{100, 100, 100, 255}
	penTip := color.NRGBA{40, 40, 40, 255}
	accent := color.NRGBA{52, 199, 89, 255}
	stroke := color.NRGBA{100, 100, 100, 180}
	shadow := color.NRGBA{0, 0, 0, 60}

	pad := 40 * s
	w := float64(size) - 2*pad
	rad := 40 * s

	// Drop shadow first, tablet body over it.
	off := 6 * s
	fillRoundRect(img, shadow, pad+off, pad+off, w, w, rad)
	fillRoundRect(img, tablet, pad, pad, w, w, rad)

	// Screen inset.
	inset := 20 * s
	fillRoundRect(img, screen, pad+inset, pad+inset, w-2*inset, w-2*inset, 20*s)

	// Handwriting: three wavy rows across the screen.
	screenTop := pad + inset
	screenBottom := float64(size) - pad - inset
	xStart := pad + inset + 40*s
	xEnd := float64(size) - pad - inset - 40*s
	width := 4 * s
	if width < 2 {
		width = 2
	}
	for i := 0; i < 3; i++ {
		y := screenTop + 60*s + float64(i)*50*s
		if y+20*s >= screenBottom {
			break
		}
		const segments = 20
		pts := make([][2]float64, 0, segments+1)
		for j := 0; j <= segments; j++ {
			x := xStart + (xEnd-xStart)*float64(j)/segments
			wave := 8 * s
			if (j/3)%2 != 0 {
				wave = -wave
			}
			pts = append(pts, [2]float64{x, y + wave})
		}
		fillPolyline(img, stroke, pts, width)
	}

	// Stylus across the upper right, dark tip at the lower end.
	penX0 := float64(size) - pad - 100*s
	penY0 := pad + 50*s
	penX1 := penX0 + 140*s
	penY1 := penY0 + 140*s
	fillLine(img, pen, penX0, penY0, penX1, penY1, 12*s)
	fillEllipse(img, penTip, penX1, penY1, 8*s, 8*s)

	// Brand accent dot.
	fillEllipse(img, accent, pad+30*s, pad+30*s, 12*s, 12*s)
	return img
}
