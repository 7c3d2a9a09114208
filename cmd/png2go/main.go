// png2go converts the generated status icon PNGs in the working directory
// into Go byte-array functions for embedding in the menu bar app. Output
// goes to stdout; a missing input file is reported to stderr and skipped,
// and the exit status stays zero.
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

	fmt.Println("// Generated icon data - DO NOT EDIT MANUALLY")
	fmt.Println("// Generated from assets/menubar-icons/*.png")
	fmt.Println()

	for _, st := range icon.Statuses {
		file := paths.StatusIconName(st.Name)
		data, err := os.ReadFile(file)
		if err != nil {
			logger.Errorf("png2go: %s: %v", file, err)
			continue
		}

		name := gosrc.FuncName(st.Name)
		fmt.Printf("// %s returns a %s status icon.\n", name, st.Name)
		fmt.Println("// 22x22 PNG with transparency, optimized for macOS menu bar.")
		gosrc.WriteFunc(os.Stdout, name, data)
		fmt.Println()
	}
}
