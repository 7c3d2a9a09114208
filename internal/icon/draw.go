package icon

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// kappa approximates a quarter circle with a single cubic Bézier.
const kappa = 0.5522847498307936

// canvas returns a transparent size×size RGBA buffer.
func canvas(size int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, size, size))
}

// rast wraps vector.Rasterizer so path geometry can stay in float64.
type rast struct {
	*vector.Rasterizer
}

func (r rast) moveTo(x, y float64) { r.MoveTo(float32(x), float32(y)) }
func (r rast) lineTo(x, y float64) { r.LineTo(float32(x), float32(y)) }
func (r rast) cubeTo(x1, y1, x2, y2, x, y float64) {
	r.CubeTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x), float32(y))
}

// fill rasterizes every path added by build and composites it over dst in
// a single pass, so self-overlapping shapes keep a uniform alpha.
func fill(dst *image.RGBA, c color.NRGBA, build func(r rast)) {
	b := dst.Bounds()
	r := rast{vector.NewRasterizer(b.Dx(), b.Dy())}
	build(r)
	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// addEllipse appends an ellipse contour. Contours added clockwise and
// counter-clockwise cancel where they overlap, which is how the stroke
// helpers cut out ring interiors.
func addEllipse(r rast, cx, cy, rx, ry float64, clockwise bool) {
	kx, ky := kappa*rx, kappa*ry
	r.moveTo(cx+rx, cy)
	if clockwise {
		r.cubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
		r.cubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
		r.cubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
		r.cubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	} else {
		r.cubeTo(cx+rx, cy-ky, cx+kx, cy-ry, cx, cy-ry)
		r.cubeTo(cx-kx, cy-ry, cx-rx, cy-ky, cx-rx, cy)
		r.cubeTo(cx-rx, cy+ky, cx-kx, cy+ry, cx, cy+ry)
		r.cubeTo(cx+kx, cy+ry, cx+rx, cy+ky, cx+rx, cy)
	}
	r.ClosePath()
}

// addRoundRect appends a rounded-rectangle contour with corner radius rad.
// rad may be zero for a plain rectangle.
func addRoundRect(r rast, x, y, w, h, rad float64, clockwise bool) {
	if max := math.Min(w, h) / 2; rad > max {
		rad = max
	}
	k := kappa * rad
	if clockwise {
		r.moveTo(x+rad, y)
		r.lineTo(x+w-rad, y)
		r.cubeTo(x+w-rad+k, y, x+w, y+rad-k, x+w, y+rad)
		r.lineTo(x+w, y+h-rad)
		r.cubeTo(x+w, y+h-rad+k, x+w-rad+k, y+h, x+w-rad, y+h)
		r.lineTo(x+rad, y+h)
		r.cubeTo(x+rad-k, y+h, x, y+h-rad+k, x, y+h-rad)
		r.lineTo(x, y+rad)
		r.cubeTo(x, y+rad-k, x+rad-k, y, x+rad, y)
	} else {
		r.moveTo(x+rad, y)
		r.cubeTo(x+rad-k, y, x, y+rad-k, x, y+rad)
		r.lineTo(x, y+h-rad)
		r.cubeTo(x, y+h-rad+k, x+rad-k, y+h, x+rad, y+h)
		r.lineTo(x+w-rad, y+h)
		r.cubeTo(x+w-rad+k, y+h, x+w, y+h-rad+k, x+w, y+h-rad)
		r.lineTo(x+w, y+rad)
		r.cubeTo(x+w, y+rad-k, x+w-rad+k, y, x+w-rad, y)
	}
	r.ClosePath()
}

// addSegment appends the quad covering a thick line segment with butt caps.
// The contour is clockwise regardless of segment direction.
func addSegment(r rast, x0, y0, x1, y1, width float64) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Perpendicular half-width offset.
	nx := -dy / length * width / 2
	ny := dx / length * width / 2
	r.moveTo(x0-nx, y0-ny)
	r.lineTo(x1-nx, y1-ny)
	r.lineTo(x1+nx, y1+ny)
	r.lineTo(x0+nx, y0+ny)
	r.ClosePath()
}

func fillEllipse(dst *image.RGBA, c color.NRGBA, cx, cy, rx, ry float64) {
	fill(dst, c, func(r rast) { addEllipse(r, cx, cy, rx, ry, true) })
}

// strokeEllipse draws an ellipse outline of the given width, inset from
// the rx/ry outer edge.
func strokeEllipse(dst *image.RGBA, c color.NRGBA, cx, cy, rx, ry, width float64) {
	fill(dst, c, func(r rast) {
		addEllipse(r, cx, cy, rx, ry, true)
		addEllipse(r, cx, cy, rx-width, ry-width, false)
	})
}

func fillRoundRect(dst *image.RGBA, c color.NRGBA, x, y, w, h, rad float64) {
	fill(dst, c, func(r rast) { addRoundRect(r, x, y, w, h, rad, true) })
}

// strokeRoundRect draws a rounded-rectangle outline of the given width,
// inset from the outer edge.
func strokeRoundRect(dst *image.RGBA, c color.NRGBA, x, y, w, h, rad, width float64) {
	fill(dst, c, func(r rast) {
		addRoundRect(r, x, y, w, h, rad, true)
		inner := rad - width
		if inner < 0 {
			inner = 0
		}
		addRoundRect(r, x+width, y+width, w-2*width, h-2*width, inner, false)
	})
}

func fillLine(dst *image.RGBA, c color.NRGBA, x0, y0, x1, y1, width float64) {
	fill(dst, c, func(r rast) { addSegment(r, x0, y0, x1, y1, width) })
}

// fillPolyline draws connected thick segments with round joints. Segments
// and joints go into one rasterizer pass so a translucent color stays
// uniform where they overlap.
func fillPolyline(dst *image.RGBA, c color.NRGBA, pts [][2]float64, width float64) {
	if len(pts) < 2 {
		return
	}
	fill(dst, c, func(r rast) {
		for i := 1; i < len(pts); i++ {
			addSegment(r, pts[i-1][0], pts[i-1][1], pts[i][0], pts[i][1], width)
		}
		for i := 1; i < len(pts)-1; i++ {
			addEllipse(r, pts[i][0], pts[i][1], width/2, width/2, true)
		}
	})
}

func fillPolygon(dst *image.RGBA, c color.NRGBA, pts [][2]float64) {
	if len(pts) < 3 {
		return
	}
	fill(dst, c, func(r rast) {
		r.moveTo(pts[0][0], pts[0][1])
		for _, p := range pts[1:] {
			r.lineTo(p[0], p[1])
		}
		r.ClosePath()
	})
}
