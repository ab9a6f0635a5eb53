// Package identity holds the people records: patients and doctors.
package identity

import (
	"strconv"

	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinicdesk/internal/platform/record"
)

// Patient maps to one line of patients.db:
// id|name|age|gender|phone|address|admitted|roomNo
type Patient struct {
	ID       int
	Name     string
	Age      int
	Gender   string
	Phone    string
	Address  string
	Admitted bool
	RoomNo   int // -1 when unassigned
}

func (p *Patient) RecordID() int      { return p.ID }
func (p *Patient) SetRecordID(id int) { p.ID = id }

type patientCodec struct{}

func (patientCodec) Encode(p *Patient) string {
	return record.Join(
		strconv.Itoa(p.ID),
		record.Escape(p.Name),
		strconv.Itoa(p.Age),
		record.Escape(p.Gender),
		record.Escape(p.Phone),
		record.Escape(p.Address),
		record.FormatFlag(p.Admitted),
		strconv.Itoa(p.RoomNo),
	)
}

func (patientCodec) Decode(line string) (*Patient, error) {
	f, err := record.Split(line, 8)
	if err != nil {
		return nil, err
	}
	id, err := record.ParseInt(f[0])
	if err != nil {
		return nil, err
	}
	age, err := record.ParseInt(f[2])
	if err != nil {
		return nil, err
	}
	admitted, err := record.ParseFlag(f[6])
	if err != nil {
		return nil, err
	}
	roomNo, err := record.ParseInt(f[7])
	if err != nil {
		return nil, err
	}
	return &Patient{
		ID:       id,
		Name:     f[1],
		Age:      age,
		Gender:   f[3],
		Phone:    f[4],
		Address:  f[5],
		Admitted: admitted,
		RoomNo:   roomNo,
	}, nil
}

// Doctor maps to one line of doctors.db: id|name|specialization|phone
type Doctor struct {
	ID             int
	Name           string
	Specialization string
	Phone          string
}

func (d *Doctor) RecordID() int      { return d.ID }
func (d *Doctor) SetRecordID(id int) { d.ID = id }

type doctorCodec struct{}

func (doctorCodec) Encode(d *Doctor) string {
	return record.Join(
		strconv.Itoa(d.ID),
		record.Escape(d.Name),
		record.Escape(d.Specialization),
		record.Escape(d.Phone),
	)
}

func (doctorCodec) Decode(line string) (*Doctor, error) {
	f, err := record.Split(line, 4)
	if err != nil {
		return nil, err
	}
	id, err := record.ParseInt(f[0])
	if err != nil {
		return nil, err
	}
	return &Doctor{ID: id, Name: f[1], Specialization: f[2], Phone: f[3]}, nil
}

// NewPatientStore builds the patient store over the given persistence.
func NewPatientStore(p record.Persistence, capacity int, logger zerolog.Logger) *record.Store[*Patient] {
	return record.NewStore("patients", patientCodec{}, p, capacity, logger)
}

// NewDoctorStore builds the doctor store over the given persistence.
func NewDoctorStore(p record.Persistence, capacity int, logger zerolog.Logger) *record.Store[*Doctor] {
	return record.NewStore("doctors", doctorCodec{}, p, capacity, logger)
}
