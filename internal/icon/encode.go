package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
)

// EncodePNG renders img to PNG bytes. Encoding is deterministic: equal
// images always produce identical bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("icon: encode png: %w", err)
	}
	return buf.Bytes(), nil
}
