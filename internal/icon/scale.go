package icon

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Downscale resamples img onto a size×size canvas with Catmull-Rom
// interpolation. The small app icon sizes render through this from a
// larger canvas: the stylus stroke is thinner than a pixel at 16 px and
// aliases badly when rasterized at final resolution.
func Downscale(img image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return dst
}
