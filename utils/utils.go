package utils

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/nfnt/resize"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeFace scales an image to exactly size x size, ignoring aspect
// ratio. Every stored face and every probe goes through this so that the
// pixel comparison always sees grids of the same shape.
func NormalizeFace(img image.Image, size uint) image.Image {
	return resize.Resize(size, size, img, resize.Lanczos3)
}

func EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DecodeImage(reader io.Reader) (image.Image, error) {
	img, _, err := image.Decode(reader)
	return img, err
}

// RemoveDiacritics removes diacritical marks from a string (e.g., "Jiří" -> "Jiri").
func RemoveDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

var unsafeKeyChars = regexp.MustCompile(`[^a-z0-9_-]+`)

// SanitizeName turns a user-entered name into a storage key:
// diacritics stripped, lowercased, spaces to dashes, everything else dropped.
// Returns "" when nothing usable remains.
func SanitizeName(name string) string {
	name = RemoveDiacritics(name)
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "-")
	name = unsafeKeyChars.ReplaceAllString(name, "")
	return strings.Trim(name, "-")
}
