// Package scheduling holds appointment records and their lifecycle.
package scheduling

import (
	"strconv"

	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinicdesk/internal/platform/record"
)

// Appointment maps to one line of appointments.db:
// id|patientId|doctorId|date|time|notes|canceled
//
// Date and Time stay in their persisted string forms (YYYY-MM-DD, HH:MM);
// the service validates shape on the way in, and a hand-edited file with an
// odd date must not take the whole store down at load.
type Appointment struct {
	ID        int
	PatientID int
	DoctorID  int
	Date      string
	Time      string
	Notes     string
	Canceled  bool
}

func (a *Appointment) RecordID() int      { return a.ID }
func (a *Appointment) SetRecordID(id int) { a.ID = id }

type appointmentCodec struct{}

func (appointmentCodec) Encode(a *Appointment) string {
	return record.Join(
		strconv.Itoa(a.ID),
		strconv.Itoa(a.PatientID),
		strconv.Itoa(a.DoctorID),
		record.Escape(a.Date),
		record.Escape(a.Time),
		record.Escape(a.Notes),
		record.FormatFlag(a.Canceled),
	)
}

func (appointmentCodec) Decode(line string) (*Appointment, error) {
	f, err := record.Split(line, 7)
	if err != nil {
		return nil, err
	}
	id, err := record.ParseInt(f[0])
	if err != nil {
		return nil, err
	}
	patientID, err := record.ParseInt(f[1])
	if err != nil {
		return nil, err
	}
	doctorID, err := record.ParseInt(f[2])
	if err != nil {
		return nil, err
	}
	canceled, err := record.ParseFlag(f[6])
	if err != nil {
		return nil, err
	}
	return &Appointment{
		ID:        id,
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      f[3],
		Time:      f[4],
		Notes:     f[5],
		Canceled:  canceled,
	}, nil
}

// NewAppointmentStore builds the appointment store over the given persistence.
func NewAppointmentStore(p record.Persistence, capacity int, logger zerolog.Logger) *record.Store[*Appointment] {
	return record.NewStore("appointments", appointmentCodec{}, p, capacity, logger)
}
