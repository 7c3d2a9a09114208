// mkmenubar generates the dark-mode compatible tablet+pen menu bar icons
// and prints each one as an embeddable Go byte-array function on stdout,
// ready to paste into the menu bar app. A PNG copy of each icon is saved
// under the temp dir for visual inspection.
package main

import (
	"fmt"
	"os"

	"github.com/platinummonkey/legible-icons/internal/gosrc"
	"github.com/platinummonkey/legible-icons/internal/icon"
	"github.com/platinummonkey/legible-icons/internal/logger"
	"github.com/platinummonkey/legible-icons/internal/paths"
)

func main() {
	// Stdout carries the Go snippets.
	logger.ToStderr()
	defer logger.Sync()

	logger.Infof("generating dark mode compatible menu bar icons")

	for _, st := range icon.DarkStatuses {
		data, err := icon.EncodePNG(icon.MenuBar(st.Color, icon.MenuBarSize))
		if err != nil {
			logger.Fatalf("mkmenubar: %v", err)
		}

		name := gosrc.FuncName(st.Name)
		fmt.Printf("// %s - %d bytes\n", name, len(data))
		gosrc.WriteFunc(os.Stdout, name, data)
		fmt.Println()

		p := paths.MenuBarIconPath(st.Name)
		if err := paths.AtomicWrite(p, data); err != nil {
			logger.Fatalf("mkmenubar: %v", err)
		}
		logger.Infof("saved %s", p)
	}
}
