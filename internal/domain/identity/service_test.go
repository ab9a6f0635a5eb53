package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinicdesk/internal/platform/record"
)

func newTestService() *Service {
	patients := NewPatientStore(record.NewMemory(), 0, zerolog.Nop())
	doctors := NewDoctorStore(record.NewMemory(), 0, zerolog.Nop())
	return NewService(patients, doctors, nil)
}

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }
func boolPtr(b bool) *bool    { return &b }

func TestAddPatient(t *testing.T) {
	svc := newTestService()
	p := &Patient{Name: "Ann", Age: 31, Gender: "F", Admitted: true, RoomNo: 12}
	if err := svc.AddPatient(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 1 {
		t.Errorf("expected id 1, got %d", p.ID)
	}
	if p.Admitted || p.RoomNo != -1 {
		t.Errorf("expected admission fields reset on add, got admitted=%v room=%d", p.Admitted, p.RoomNo)
	}
}

func TestAddPatient_NameRequired(t *testing.T) {
	svc := newTestService()
	if err := svc.AddPatient(context.Background(), &Patient{Age: 10}); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestAddPatient_NegativeAge(t *testing.T) {
	svc := newTestService()
	if err := svc.AddPatient(context.Background(), &Patient{Name: "X", Age: -1}); err == nil {
		t.Error("expected error for negative age")
	}
	if len(svc.ListPatients(context.Background())) != 0 {
		t.Error("expected no patient added")
	}
}

func TestUpdatePatient_PartialFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	p := &Patient{Name: "Ann", Age: 31, Gender: "F", Phone: "111"}
	if err := svc.AddPatient(ctx, p); err != nil {
		t.Fatalf("add: %v", err)
	}

	err := svc.UpdatePatient(ctx, p.ID, UpdatePatientParams{
		Phone:    strPtr("222"),
		Admitted: boolPtr(true),
		RoomNo:   intPtr(4),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := svc.GetPatient(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Ann" || got.Age != 31 {
		t.Errorf("untouched fields changed: %+v", got)
	}
	if got.Phone != "222" || !got.Admitted || got.RoomNo != 4 {
		t.Errorf("updated fields not applied: %+v", got)
	}
}

func TestUpdatePatient_NotFound(t *testing.T) {
	svc := newTestService()
	err := svc.UpdatePatient(context.Background(), 99, UpdatePatientParams{Name: strPtr("x")})
	if !errors.Is(err, record.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeletePatient(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	p := &Patient{Name: "Ann"}
	if err := svc.AddPatient(ctx, p); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.DeletePatient(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if svc.PatientExists(ctx, p.ID) {
		t.Error("patient still resolves after delete")
	}
}

func TestSearchPatientsByName_CaseInsensitiveSubstring(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	for _, name := range []string{"Ann Smith", "Bob Jones", "Susanna Field"} {
		if err := svc.AddPatient(ctx, &Patient{Name: name}); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	var got []string
	for p := range svc.SearchPatientsByName(ctx, "aN") {
		got = append(got, p.Name)
	}
	if len(got) != 2 || got[0] != "Ann Smith" || got[1] != "Susanna Field" {
		t.Errorf("unexpected matches: %v", got)
	}
}

func TestAddDoctor(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	d := &Doctor{Name: "House", Specialization: "Diagnostics"}
	if err := svc.AddDoctor(ctx, d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID != 1 {
		t.Errorf("expected id 1, got %d", d.ID)
	}
	if !svc.DoctorExists(ctx, d.ID) {
		t.Error("doctor does not resolve")
	}
}

func TestUpdateDoctor_PartialFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	d := &Doctor{Name: "House", Specialization: "Diagnostics", Phone: "111"}
	if err := svc.AddDoctor(ctx, d); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.UpdateDoctor(ctx, d.ID, UpdateDoctorParams{Phone: strPtr("999")}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := svc.GetDoctor(ctx, d.ID)
	if got.Name != "House" || got.Phone != "999" {
		t.Errorf("unexpected doctor after update: %+v", got)
	}
}

func TestDeleteDoctor_NotFound(t *testing.T) {
	svc := newTestService()
	if err := svc.DeleteDoctor(context.Background(), 42); !errors.Is(err, record.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
