package record

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Delimiter separates fields within one persisted record line.
	Delimiter = "|"

	// Substitute replaces literal delimiter characters inside free-text
	// fields on encode. The substitution is lossy and one-way: a field
	// that originally contained the delimiter does not round-trip.
	Substitute = "/"
)

// Codec serializes one record to a single line and back. Decode returns an
// error wrapping ErrMalformedRecord for lines with the wrong field count or
// unparseable typed fields; the store drops such lines silently during load.
type Codec[T Entity] interface {
	Encode(rec T) string
	Decode(line string) (T, error)
}

// Escape makes a free-text field safe to embed in a record line.
func Escape(field string) string {
	return strings.ReplaceAll(field, Delimiter, Substitute)
}

// Join assembles fields into one record line.
func Join(fields ...string) string {
	return strings.Join(fields, Delimiter)
}

// Split breaks a line into exactly want fields.
func Split(line string, want int) ([]string, error) {
	fields := strings.Split(line, Delimiter)
	if len(fields) != want {
		return nil, fmt.Errorf("%w: %d fields, want %d", ErrMalformedRecord, len(fields), want)
	}
	return fields, nil
}

// ParseInt decodes an integer field.
func ParseInt(field string) (int, error) {
	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%w: bad integer %q", ErrMalformedRecord, field)
	}
	return v, nil
}

// ParseFloat decodes a decimal field.
func ParseFloat(field string) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad number %q", ErrMalformedRecord, field)
	}
	return v, nil
}

// ParseFlag decodes a 0/1 flag field. Any nonzero integer reads as true,
// since the data files can be hand-edited.
func ParseFlag(field string) (bool, error) {
	v, err := ParseInt(field)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// FormatFlag encodes a flag as 0 or 1.
func FormatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// FormatAmount encodes a decimal with two fixed fraction digits.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
