// mkappicon renders the full application iconset under the temp dir,
// ready for iconutil to bundle into Legible.icns.
package main

import (
	"github.com/platinummonkey/legible-icons/internal/iconset"
	"github.com/platinummonkey/legible-icons/internal/logger"
	"github.com/platinummonkey/legible-icons/internal/paths"
)

func main() {
	defer logger.Sync()

	dir := paths.IconsetDir()
	files, err := iconset.Generate(dir)
	for _, f := range files {
		logger.Infof("generated %s", f)
	}
	if err != nil {
		logger.Fatalf("mkappicon: %v", err)
	}

	logger.Infof("iconset created at %s", dir)
	logger.Infof("to convert to .icns, run: iconutil -c icns %s", dir)
}
