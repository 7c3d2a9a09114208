// Package iconset renders the full set of app icon resolutions that
// iconutil later bundles into a single .icns file.
package iconset

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/platinummonkey/legible-icons/internal/icon"
	"github.com/platinummonkey/legible-icons/internal/paths"
)

// Sizes are the square resolutions an .icns bundle carries. Every size up
// to 512 also gets an @2x retina sibling rendered at double resolution.
var Sizes = []int{16, 32, 64, 128, 256, 512, 1024}

// retinaMax is the largest size that gets an @2x variant.
const retinaMax = 512

// Sizes below supersampleBelow render at supersample× resolution and are
// downscaled, since the stylus stroke disappears at direct scale.
const (
	supersampleBelow = 64
	supersample      = 4
)

// render returns the app icon at size.
func render(size int) *image.RGBA {
	if size < supersampleBelow {
		return icon.Downscale(icon.App(size*supersample), size)
	}
	return icon.App(size)
}

// Generate writes icon_NxN.png for every entry in Sizes, plus the @2x
// variants, into dir (created if needed). It returns the filenames
// written, in order; on error the returned list covers the files written
// before the failure.
func Generate(dir string) ([]string, error) {
	var files []string
	for _, size := range Sizes {
		name := fmt.Sprintf("icon_%dx%d.png", size, size)
		if err := write(filepath.Join(dir, name), render(size)); err != nil {
			return files, err
		}
		files = append(files, name)

		if size <= retinaMax {
			name = fmt.Sprintf("icon_%dx%d@2x.png", size, size)
			if err := write(filepath.Join(dir, name), render(size*2)); err != nil {
				return files, err
			}
			files = append(files, name)
		}
	}
	return files, nil
}

func write(path string, img *image.RGBA) error {
	data, err := icon.EncodePNG(img)
	if err != nil {
		return err
	}
	if err := paths.AtomicWrite(path, data); err != nil {
		return fmt.Errorf("iconset: write %s: %w", path, err)
	}
	return nil
}
