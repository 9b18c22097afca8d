// internal/utils/image.go
package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const MaxImageBytes = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// ValidateImageRef checks an embedded image reference before it reaches the
// catalog create/update path. Data URIs must carry an allowed MIME type and
// decode to at most 5 MiB. Anything that is not a data URI is treated as an
// opaque reference and passed through.
func ValidateImageRef(ref string) error {
	if !strings.HasPrefix(ref, "data:") {
		return nil
	}

	meta, payload, ok := strings.Cut(strings.TrimPrefix(ref, "data:"), ",")
	if !ok {
		return fmt.Errorf("malformed image data URI")
	}

	mimeType, _, _ := strings.Cut(meta, ";")
	if !allowedImageTypes[mimeType] {
		return fmt.Errorf("image type %s is not allowed (use JPEG, PNG, or WebP)", mimeType)
	}

	if !strings.Contains(meta, "base64") {
		return fmt.Errorf("image data URI must be base64-encoded")
	}

	size := base64.StdEncoding.DecodedLen(len(payload))
	if size > MaxImageBytes {
		return fmt.Errorf("image size %d bytes exceeds maximum allowed size %d bytes", size, MaxImageBytes)
	}

	return nil
}
