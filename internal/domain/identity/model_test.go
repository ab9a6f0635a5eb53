package identity

import (
	"errors"
	"testing"

	"github.com/clinicdesk/clinicdesk/internal/platform/record"
)

func TestPatientCodecRoundTrip(t *testing.T) {
	p := &Patient{
		ID:       4,
		Name:     "Ann Smith",
		Age:      31,
		Gender:   "F",
		Phone:    "555-0101",
		Address:  "12 Main St",
		Admitted: true,
		RoomNo:   7,
	}
	line := patientCodec{}.Encode(p)
	if line != "4|Ann Smith|31|F|555-0101|12 Main St|1|7" {
		t.Errorf("unexpected line: %q", line)
	}
	got, err := patientCodec{}.Decode(line)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if *got != *p {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestPatientCodec_EscapesDelimiter(t *testing.T) {
	p := &Patient{ID: 1, Name: "A|B", Address: "c|d", RoomNo: -1}
	line := patientCodec{}.Encode(p)
	got, err := patientCodec{}.Decode(line)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != "A/B" || got.Address != "c/d" {
		t.Errorf("expected lossy substitution, got %q %q", got.Name, got.Address)
	}
}

func TestPatientCodec_Malformed(t *testing.T) {
	for _, line := range []string{
		"1|OnlyName",
		"x|Ann|31|F|p|a|0|-1",
		"1|Ann|old|F|p|a|0|-1",
		"1|Ann|31|F|p|a|maybe|-1",
	} {
		if _, err := (patientCodec{}).Decode(line); !errors.Is(err, record.ErrMalformedRecord) {
			t.Errorf("expected ErrMalformedRecord for %q, got %v", line, err)
		}
	}
}

func TestDoctorCodecRoundTrip(t *testing.T) {
	d := &Doctor{ID: 2, Name: "Gregory House", Specialization: "Diagnostics", Phone: "555-0199"}
	line := doctorCodec{}.Encode(d)
	if line != "2|Gregory House|Diagnostics|555-0199" {
		t.Errorf("unexpected line: %q", line)
	}
	got, err := doctorCodec{}.Decode(line)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if *got != *d {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestDoctorCodec_Malformed(t *testing.T) {
	if _, err := (doctorCodec{}).Decode("NaN|x|y|z"); !errors.Is(err, record.ErrMalformedRecord) {
		t.Errorf("expected ErrMalformedRecord, got %v", err)
	}
}
