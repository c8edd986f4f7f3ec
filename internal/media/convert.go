package media

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
)

// FromBase64 decodes a standard base64 payload into raw bytes. Payloads
// arriving as full data URLs are accepted too.
func FromBase64(s string) ([]byte, error) {
	if strings.HasPrefix(s, "data:") {
		var err error
		if _, s, err = ParseDataURL(s); err != nil {
			return nil, err
		}
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("media: decode base64: %w", err)
	}
	return data, nil
}

// ToBase64 encodes raw bytes as standard base64.
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DataURL builds a data URL for the given payload and MIME type.
func DataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + ToBase64(data)
}

// ParseDataURL splits a data URL into its MIME type and base64 body.
func ParseDataURL(s string) (mimeType, b64 string, err error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", "", fmt.Errorf("media: not a data url")
	}
	meta, body, ok := strings.Cut(rest, ",")
	if !ok {
		return "", "", fmt.Errorf("media: malformed data url")
	}
	mimeType = strings.TrimSuffix(meta, ";base64")
	return mimeType, body, nil
}

// DetectImageType sniffs the MIME type of an image payload.
func DetectImageType(data []byte) string {
	return http.DetectContentType(data)
}

// Dimensions reads the pixel size of a PNG, JPEG, or GIF payload without
// decoding the full image.
func Dimensions(data []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("media: read image dimensions: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// ToPNG re-encodes any supported image payload as PNG. PNG input is
// returned unchanged.
func ToPNG(data []byte) ([]byte, error) {
	if DetectImageType(data) == "image/png" {
		return data, nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("media: decode image: %w", err)
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("media: encode png: %w", err)
	}
	return buf.Bytes(), nil
}
