package capacity

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeWorkload converts an uploaded payload to a string. Spreadsheet exports
// arrive as Windows-1252 (what browsers use for an ISO-8859-1 label); payloads
// carrying a UTF-8 BOM or that are already valid UTF-8 are passed through.
func DecodeWorkload(raw []byte) (string, error) {
	if bytes.HasPrefix(raw, utf8BOM) {
		return string(raw[len(utf8BOM):]), nil
	}
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode windows-1252 payload: %w", err)
	}
	return string(decoded), nil
}

// EncodeWorkload renders text in Windows-1252 so it re-imports unchanged.
// Characters outside the code page are replaced.
func EncodeWorkload(text string) ([]byte, error) {
	encoder := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	out, err := encoder.Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode windows-1252 payload: %w", err)
	}
	return out, nil
}
