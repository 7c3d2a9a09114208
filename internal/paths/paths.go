package paths

import (
	"os"
	"path/filepath"
)

const (
	// IconsetDirName is the staging directory iconutil consumes to build
	// the .icns bundle.
	IconsetDirName = "Legible.iconset"
	DirPerm        = 0755
	FilePerm       = 0644
)

// StatusIconName returns the working-directory filename for a simple
// circle status icon, e.g. "icon-green-22.png".
func StatusIconName(status string) string {
	return "icon-" + status + "-22.png"
}

// DocIconName returns the filename for the document-style variant,
// e.g. "icon-green-doc-22.png".
func DocIconName(status string) string {
	return "icon-" + status + "-doc-22.png"
}

// IconsetDir returns the fixed temp-dir staging location for the app
// iconset.
func IconsetDir() string {
	return filepath.Join(os.TempDir(), IconsetDirName)
}

// MenuBarIconPath returns the temp-dir path where a generated dark-mode
// menu bar icon is saved for visual inspection.
func MenuBarIconPath(status string) string {
	return filepath.Join(os.TempDir(), "menubar_icon_"+status+"_v2.png")
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
