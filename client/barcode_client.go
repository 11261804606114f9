package client

import (
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// BarcodeClient decodes machine-readable payloads from page images. Airline
// e-tickets and insurance certificates frequently carry the booking code and
// dates only inside a QR code.
type BarcodeClient struct{}

func NewBarcodeClient() *BarcodeClient {
	return &BarcodeClient{}
}

// DecodePayload attempts a QR decode on the page image. Decoding is strictly
// best-effort: most pages carry no code and that is not an error.
func (bc *BarcodeClient) DecodePayload(img image.Image) (string, bool) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", false
	}

	reader := qrcode.NewQRCodeReader()
	result, err := reader.Decode(bmp, nil)
	if err != nil || result == nil {
		return "", false
	}

	text := result.GetText()
	if text == "" {
		return "", false
	}
	return text, true
}
