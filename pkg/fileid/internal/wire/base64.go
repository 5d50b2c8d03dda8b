package wire

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeBase64 encodes data with the URL-safe alphabet and no padding.
func EncodeBase64(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeBase64 decodes URL-safe base64, with or without trailing padding.
func DecodeBase64(s string) ([]byte, error) {
	data, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return data, nil
}
