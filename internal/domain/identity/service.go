package identity

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/clinicdesk/clinicdesk/internal/platform/audit"
	"github.com/clinicdesk/clinicdesk/internal/platform/record"
)

// Service exposes patient and doctor operations to the shell and to the
// other domains, which resolve people references through it.
type Service struct {
	patients *record.Store[*Patient]
	doctors  *record.Store[*Doctor]
	audit    audit.Recorder
}

func NewService(patients *record.Store[*Patient], doctors *record.Store[*Doctor], rec audit.Recorder) *Service {
	if rec == nil {
		rec = audit.Nop{}
	}
	return &Service{patients: patients, doctors: doctors, audit: rec}
}

// -- Patients --

func (s *Service) AddPatient(ctx context.Context, p *Patient) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Age < 0 {
		return fmt.Errorf("age must be non-negative")
	}
	// New patients start not admitted with no room, whatever the caller set.
	p.Admitted = false
	p.RoomNo = -1
	if err := s.patients.Add(p); err != nil {
		return err
	}
	s.audit.Record(audit.Entry{Action: "create", Entity: "patient", RecordID: p.ID, Detail: p.Name})
	return nil
}

func (s *Service) GetPatient(ctx context.Context, id int) (*Patient, error) {
	return s.patients.FindByID(id)
}

func (s *Service) ListPatients(ctx context.Context) []*Patient {
	return s.patients.All()
}

// UpdatePatientParams carries optional field changes; a nil field is left
// unchanged.
type UpdatePatientParams struct {
	Name     *string
	Age      *int
	Gender   *string
	Phone    *string
	Address  *string
	Admitted *bool
	RoomNo   *int
}

func (s *Service) UpdatePatient(ctx context.Context, id int, params UpdatePatientParams) error {
	if params.Age != nil && *params.Age < 0 {
		return fmt.Errorf("age must be non-negative")
	}
	err := s.patients.Update(id, func(p *Patient) {
		if params.Name != nil {
			p.Name = *params.Name
		}
		if params.Age != nil {
			p.Age = *params.Age
		}
		if params.Gender != nil {
			p.Gender = *params.Gender
		}
		if params.Phone != nil {
			p.Phone = *params.Phone
		}
		if params.Address != nil {
			p.Address = *params.Address
		}
		if params.Admitted != nil {
			p.Admitted = *params.Admitted
		}
		if params.RoomNo != nil {
			p.RoomNo = *params.RoomNo
		}
	})
	if err != nil {
		return err
	}
	s.audit.Record(audit.Entry{Action: "update", Entity: "patient", RecordID: id})
	return nil
}

func (s *Service) DeletePatient(ctx context.Context, id int) error {
	if err := s.patients.Remove(id); err != nil {
		return err
	}
	s.audit.Record(audit.Entry{Action: "delete", Entity: "patient", RecordID: id})
	return nil
}

// SearchPatientsByName yields patients whose name contains the query,
// case-insensitively, in collection order.
func (s *Service) SearchPatientsByName(ctx context.Context, query string) iter.Seq[*Patient] {
	q := strings.ToLower(query)
	return s.patients.Search(func(p *Patient) bool {
		return strings.Contains(strings.ToLower(p.Name), q)
	})
}

// PatientExists resolves a patient reference for cross-entity checks.
func (s *Service) PatientExists(ctx context.Context, id int) bool {
	_, err := s.patients.FindByID(id)
	return err == nil
}

// -- Doctors --

func (s *Service) AddDoctor(ctx context.Context, d *Doctor) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	if err := s.doctors.Add(d); err != nil {
		return err
	}
	s.audit.Record(audit.Entry{Action: "create", Entity: "doctor", RecordID: d.ID, Detail: d.Name})
	return nil
}

func (s *Service) GetDoctor(ctx context.Context, id int) (*Doctor, error) {
	return s.doctors.FindByID(id)
}

func (s *Service) ListDoctors(ctx context.Context) []*Doctor {
	return s.doctors.All()
}

// UpdateDoctorParams carries optional field changes; a nil field is left
// unchanged.
type UpdateDoctorParams struct {
	Name           *string
	Specialization *string
	Phone          *string
}

func (s *Service) UpdateDoctor(ctx context.Context, id int, params UpdateDoctorParams) error {
	err := s.doctors.Update(id, func(d *Doctor) {
		if params.Name != nil {
			d.Name = *params.Name
		}
		if params.Specialization != nil {
			d.Specialization = *params.Specialization
		}
		if params.Phone != nil {
			d.Phone = *params.Phone
		}
	})
	if err != nil {
		return err
	}
	s.audit.Record(audit.Entry{Action: "update", Entity: "doctor", RecordID: id})
	return nil
}

func (s *Service) DeleteDoctor(ctx context.Context, id int) error {
	if err := s.doctors.Remove(id); err != nil {
		return err
	}
	s.audit.Record(audit.Entry{Action: "delete", Entity: "doctor", RecordID: id})
	return nil
}

// DoctorExists resolves a doctor reference for cross-entity checks.
func (s *Service) DoctorExists(ctx context.Context, id int) bool {
	_, err := s.doctors.FindByID(id)
	return err == nil
}
