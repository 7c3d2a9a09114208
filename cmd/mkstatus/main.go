// mkstatus generates the simple menu bar status icons: one filled circle
// per status color, plus the document-style alternative. Files land in
// the working directory as icon-<color>-22.png and icon-<color>-doc-22.png.
package main

import (
	"image"

	"github.com/platinummonkey/legible-icons/internal/icon"
	"github.com/platinummonkey/legible-icons/internal/logger"
	"github.com/platinummonkey/legible-icons/internal/paths"
)

func main() {
	defer logger.Sync()

	logger.Infof("generating menu bar icons (simple circles)")
	for _, st := range icon.Statuses {
		writeIcon(paths.StatusIconName(st.Name), icon.Circle(st.Color, icon.MenuBarSize))
	}

	logger.Infof("generating document-style icons (alternative)")
	for _, st := range icon.Statuses {
		writeIcon(paths.DocIconName(st.Name), icon.Document(st.Color, icon.MenuBarSize))
	}

	logger.Infof("all icons generated")
}

func writeIcon(name string, img *image.RGBA) {
	data, err := icon.EncodePNG(img)
	if err != nil {
		logger.Fatalf("mkstatus: %v", err)
	}
	if err := paths.AtomicWrite(name, data); err != nil {
		logger.Fatalf("mkstatus: %v", err)
	}
	logger.Infof("created %s", name)
}
