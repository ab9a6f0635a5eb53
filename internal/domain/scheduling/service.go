package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/clinicdesk/clinicdesk/internal/platform/audit"
	"github.com/clinicdesk/clinicdesk/internal/platform/record"
)

const (
	// DateLayout is the persisted calendar date form.
	DateLayout = "2006-01-02"
	// TimeLayout is the persisted hour:minute form.
	TimeLayout = "15:04"
)

// PatientDirectory resolves patient references owned by another domain.
type PatientDirectory interface {
	PatientExists(ctx context.Context, id int) bool
}

// DoctorDirectory resolves doctor references owned by another domain.
type DoctorDirectory interface {
	DoctorExists(ctx context.Context, id int) bool
}

type Service struct {
	appointments *record.Store[*Appointment]
	patients     PatientDirectory
	doctors      DoctorDirectory
	audit        audit.Recorder
}

func NewService(appointments *record.Store[*Appointment], patients PatientDirectory, doctors DoctorDirectory, rec audit.Recorder) *Service {
	if rec == nil {
		rec = audit.Nop{}
	}
	return &Service{appointments: appointments, patients: patients, doctors: doctors, audit: rec}
}

// Schedule creates an appointment. Both references must resolve at this
// instant; on any failure nothing is created. The references are not
// re-validated later, so deleting the patient or doctor afterwards leaves a
// dangling appointment.
func (s *Service) Schedule(ctx context.Context, patientID, doctorID int, date, at, notes string) (*Appointment, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
	}
	if _, err := time.Parse(TimeLayout, at); err != nil {
		return nil, fmt.Errorf("invalid time %q, want HH:MM", at)
	}
	if !s.patients.PatientExists(ctx, patientID) {
		return nil, fmt.Errorf("patient %d: %w", patientID, record.ErrInvalidReference)
	}
	if !s.doctors.DoctorExists(ctx, doctorID) {
		return nil, fmt.Errorf("doctor %d: %w", doctorID, record.ErrInvalidReference)
	}
	a := &Appointment{PatientID: patientID, DoctorID: doctorID, Date: date, Time: at, Notes: notes}
	if err := s.appointments.Add(a); err != nil {
		return nil, err
	}
	s.audit.Record(audit.Entry{
		Action:   "schedule",
		Entity:   "appointment",
		RecordID: a.ID,
		Detail:   fmt.Sprintf("patient %d with doctor %d on %s %s", patientID, doctorID, date, at),
	})
	return a, nil
}

// Cancel marks the appointment canceled. Canceling one that is already
// canceled is a no-op that still persists; there is no un-cancel.
func (s *Service) Cancel(ctx context.Context, id int) error {
	if err := s.appointments.Update(id, func(a *Appointment) { a.Canceled = true }); err != nil {
		return err
	}
	s.audit.Record(audit.Entry{Action: "cancel", Entity: "appointment", RecordID: id})
	return nil
}

func (s *Service) Get(ctx context.Context, id int) (*Appointment, error) {
	return s.appointments.FindByID(id)
}

func (s *Service) List(ctx context.Context) []*Appointment {
	return s.appointments.All()
}
