package repository

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// RawRecord is one recipe object as found in the data file, keys untouched.
type RawRecord map[string]any

var utf8BOM = []byte("\xef\xbb\xbf")

// Decode parses a JSON array of objects. Anything else is ErrInvalidFormat.
// A leading UTF-8 byte order mark is ignored.
func Decode(data []byte) ([]RawRecord, error) {
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(data, utf8BOM))
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrInvalidFormat
	}

	var records []RawRecord
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if records == nil {
		records = []RawRecord{}
	}
	return records, nil
}
