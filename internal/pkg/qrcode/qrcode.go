package qrcode

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

const defaultSize = 256

// GeneratePNG renders the content as a QR code PNG. Scanner stations
// read these from printed badges, so medium error correction is used
// to survive wear.
func GeneratePNG(content string) ([]byte, error) {
	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr content: %w", err)
	}

	code, err = barcode.Scale(code, defaultSize, defaultSize)
	if err != nil {
		return nil, fmt.Errorf("failed to scale qr code: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, code); err != nil {
		return nil, fmt.Errorf("failed to render qr png: %w", err)
	}

	return buf.Bytes(), nil
}
