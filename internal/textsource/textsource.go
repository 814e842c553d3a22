// Package textsource resolves input files to UTF-8 text for the
// detection engine. The encoding is named explicitly by the caller; no
// auto-detection is performed here.
package textsource

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding is returned for encoding names this package does
// not support.
var ErrUnknownEncoding = fmt.Errorf("unknown encoding")

// decoderFor maps a normalized encoding name to its decoder. UTF-8 input
// needs no transform and returns nil.
func decoderFor(name string) (*encoding.Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "euc-kr", "euckr", "cp949":
		return korean.EUCKR.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
	}
}

// Load reads the file and returns its contents as UTF-8 text, decoding
// from the named encoding when one is given.
func Load(path, encodingName string) (string, error) {
	dec, err := decoderFor(encodingName)
	if err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open text file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if dec != nil {
		r = transform.NewReader(f, dec)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// Supported lists the encoding names Load accepts.
func Supported() []string {
	return []string{"utf-8", "euc-kr", "cp949"}
}
