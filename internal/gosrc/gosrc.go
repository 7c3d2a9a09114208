// Package gosrc formats raw icon bytes as Go source snippets for
// embedding in the menu bar app.
package gosrc

import (
	"fmt"
	"io"
	"strings"
)

const (
	// bytesPerLine is how many hex literals each emitted line carries.
	bytesPerLine = 12
	// indent matches the nesting depth of the embedded slice literal.
	indent = "\t\t"
)

// FormatBytes renders data as text lines of up to 12 comma-separated
// uppercase hex literals, each prefixed with two tabs. Full lines end
// with a comma; a trailing partial line is emitted without one.
// Concatenating the values in order reconstructs data exactly.
func FormatBytes(data []byte) []string {
	lines := make([]string, 0, (len(data)+bytesPerLine-1)/bytesPerLine)
	for i := 0; i < len(data); i += bytesPerLine {
		end := i + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		var b strings.Builder
		b.WriteString(indent)
		for j, v := range data[i:end] {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "0x%02X", v)
		}
		if end < len(data) {
			b.WriteByte(',')
		}
		lines = append(lines, b.String())
	}
	return lines
}

// FuncName returns the embedded accessor name for a status, e.g.
// "green" → "iconGreen".
func FuncName(status string) string {
	return "icon" + TitleCase(status)
}

// TitleCase uppercases the first byte of s.
func TitleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// WriteFunc emits a complete Go function returning data as a byte slice:
//
//	func iconGreen() []byte {
//		return []byte{
//			0x89, 0x50, ...
//		}
//	}
//
// The closing brace sits on its own line, so every value line gets a
// trailing comma to keep the literal valid Go.
func WriteFunc(w io.Writer, name string, data []byte) error {
	var b strings.Builder
	fmt.Fprintf(&b, "func %s() []byte {\n", name)
	b.WriteString("\treturn []byte{\n")
	for _, line := range FormatBytes(data) {
		b.WriteString(line)
		if !strings.HasSuffix(line, ",") {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("\t}\n")
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}
