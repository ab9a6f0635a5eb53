package record

import (
	"errors"
	"testing"
)

func TestEscapeReplacesDelimiter(t *testing.T) {
	got := Escape("a|b|c")
	if got != "a/b/c" {
		t.Errorf("expected a/b/c, got %q", got)
	}
}

func TestEscapePassthrough(t *testing.T) {
	if got := Escape("plain text"); got != "plain text" {
		t.Errorf("unexpected change: %q", got)
	}
}

func TestJoinSplitRoundTrip(t *testing.T) {
	line := Join("1", "Aspirin", "10", "2.50")
	fields, err := Split(line, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fields[1] != "Aspirin" || fields[3] != "2.50" {
		t.Errorf("unexpected fields: %v", fields)
	}
}

func TestSplit_WrongArity(t *testing.T) {
	_, err := Split("1|two|3", 4)
	if !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestParseInt_BadValue(t *testing.T) {
	_, err := ParseInt("abc")
	if !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestParseFloat_BadValue(t *testing.T) {
	_, err := ParseFloat("9.5x")
	if !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestParseFlag(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"0", false},
		{"1", true},
		{"7", true},
	} {
		got, err := ParseFlag(tc.in)
		if err != nil {
			t.Fatalf("ParseFlag(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseFlag(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseFlag("yes"); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestFormatFlag(t *testing.T) {
	if FormatFlag(true) != "1" || FormatFlag(false) != "0" {
		t.Error("flag formatting mismatch")
	}
}

func TestFormatAmount(t *testing.T) {
	for _, tc := range []struct {
		in   float64
		want string
	}{
		{9.5, "9.50"},
		{28.5, "28.50"},
		{0, "0.00"},
		{1234.567, "1234.57"},
	} {
		if got := FormatAmount(tc.in); got != tc.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
