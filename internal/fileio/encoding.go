package fileio

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

const (
	EncodingUTF8 = "UTF-8"
	EncodingDBCS = "legacy-DBCS"
)

var ErrEncodingDetect = errors.New("encoding detection failed")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Document is decoded file content plus the encoding it was read with.
type Document struct {
	Text     string
	Encoding string
}

// Resolve decodes raw statement bytes. UTF-8 (with or without BOM) is tried
// strictly first; invalid UTF-8 falls back to Shift-JIS. Input that survives
// neither decode fails with ErrEncodingDetect instead of returning mojibake.
func Resolve(b []byte) (Document, error) {
	if bytes.HasPrefix(b, utf8BOM) {
		rest := b[len(utf8BOM):]
		if !utf8.Valid(rest) {
			return Document{}, fmt.Errorf("BOM present but body is not UTF-8: %w", ErrEncodingDetect)
		}
		return Document{Text: string(rest), Encoding: EncodingUTF8}, nil
	}
	if utf8.Valid(b) {
		return Document{Text: string(b), Encoding: EncodingUTF8}, nil
	}
	text, _, err := transform.String(japanese.ShiftJIS.NewDecoder(), string(b))
	if err != nil || strings.ContainsRune(text, utf8.RuneError) {
		return Document{}, fmt.Errorf("not UTF-8 and not Shift-JIS (looks like %s): %w", detectCharset(b), ErrEncodingDetect)
	}
	return Document{Text: text, Encoding: EncodingDBCS}, nil
}

// detectCharset labels undecodable input for the error message.
func detectCharset(b []byte) string {
	if len(b) > 2048 {
		b = b[:2048]
	}
	det, err := chardet.NewTextDetector().DetectBest(b)
	if err != nil || det == nil || det.Charset == "" {
		return "unknown"
	}
	return strings.ToLower(det.Charset)
}
