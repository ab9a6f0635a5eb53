package scheduling

import (
	"errors"
	"testing"

	"github.com/clinicdesk/clinicdesk/internal/platform/record"
)

func TestAppointmentCodecRoundTrip(t *testing.T) {
	a := &Appointment{
		ID:        5,
		PatientID: 2,
		DoctorID:  3,
		Date:      "2026-09-14",
		Time:      "10:30",
		Notes:     "follow-up",
		Canceled:  false,
	}
	line := appointmentCodec{}.Encode(a)
	if line != "5|2|3|2026-09-14|10:30|follow-up|0" {
		t.Errorf("unexpected line: %q", line)
	}
	got, err := appointmentCodec{}.Decode(line)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if *got != *a {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestAppointmentCodec_NotesEscaped(t *testing.T) {
	a := &Appointment{ID: 1, PatientID: 1, DoctorID: 1, Date: "2026-01-01", Time: "09:00", Notes: "bp 120|80"}
	got, err := appointmentCodec{}.Decode(appointmentCodec{}.Encode(a))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Notes != "bp 120/80" {
		t.Errorf("expected lossy substitution, got %q", got.Notes)
	}
}

func TestAppointmentCodec_Malformed(t *testing.T) {
	for _, line := range []string{
		"1|2|3|2026-01-01|09:00|notes",
		"1|two|3|2026-01-01|09:00|notes|0",
		"1|2|3|2026-01-01|09:00|notes|canceled",
	} {
		if _, err := (appointmentCodec{}).Decode(line); !errors.Is(err, record.ErrMalformedRecord) {
			t.Errorf("expected ErrMalformedRecord for %q, got %v", line, err)
		}
	}
}
