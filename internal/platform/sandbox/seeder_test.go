package sandbox

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinicdesk/internal/domain/billing"
	"github.com/clinicdesk/clinicdesk/internal/domain/identity"
	"github.com/clinicdesk/clinicdesk/internal/domain/pharmacy"
	"github.com/clinicdesk/clinicdesk/internal/domain/scheduling"
	"github.com/clinicdesk/clinicdesk/internal/platform/record"
)

type fixture struct {
	seeder     *Seeder
	identity   *identity.Service
	scheduling *scheduling.Service
	pharmacy   *pharmacy.Service
	billing    *billing.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := zerolog.Nop()
	patients := identity.NewPatientStore(record.NewMemory(), 0, logger)
	doctors := identity.NewDoctorStore(record.NewMemory(), 0, logger)
	appointments := scheduling.NewAppointmentStore(record.NewMemory(), 0, logger)
	medicines := pharmacy.NewMedicineStore(record.NewMemory(), 0, logger)
	invoices := billing.NewInvoiceStore(record.NewMemory(), 0, logger)

	idSvc := identity.NewService(patients, doctors, nil)
	billSvc := billing.NewService(invoices, idSvc, nil)
	schedSvc := scheduling.NewService(appointments, idSvc, idSvc, nil)
	pharmSvc := pharmacy.NewService(medicines, idSvc, billSvc, nil, logger)

	return &fixture{
		seeder:     NewSeeder(idSvc, schedSvc, pharmSvc, billSvc),
		identity:   idSvc,
		scheduling: schedSvc,
		pharmacy:   pharmSvc,
		billing:    billSvc,
	}
}

func TestSeeder_CountsMatchConfig(t *testing.T) {
	f := newFixture(t)
	cfg := SeedConfig{
		PatientCount:     10,
		DoctorCount:      3,
		MedicineCount:    6,
		AppointmentCount: 12,
		InvoiceCount:     8,
		Seed:             42,
	}

	report, err := f.seeder.Seed(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if report.Patients != 10 || report.Doctors != 3 || report.Medicines != 6 || report.Appointments != 12 {
		t.Errorf("unexpected report: %+v", report)
	}
	if got := len(f.identity.ListPatients(context.Background())); got != 10 {
		t.Errorf("patients in store = %d, want 10", got)
	}
	if got := len(f.scheduling.List(context.Background())); got != 12 {
		t.Errorf("appointments in store = %d, want 12", got)
	}
	// Sales add invoices on top of the plain ones.
	if got := len(f.billing.List(context.Background())); got < 8 {
		t.Errorf("invoices in store = %d, want at least 8", got)
	}
}

func TestSeeder_DeterministicForSameSeed(t *testing.T) {
	cfg := DefaultSeedConfig()
	cfg.Seed = 7

	a := newFixture(t)
	if _, err := a.seeder.Seed(context.Background(), cfg); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	b := newFixture(t)
	if _, err := b.seeder.Seed(context.Background(), cfg); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	pa := a.identity.ListPatients(context.Background())
	pb := b.identity.ListPatients(context.Background())
	if len(pa) != len(pb) {
		t.Fatalf("patient counts differ: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i].Name != pb[i].Name || pa[i].Phone != pb[i].Phone {
			t.Errorf("patient %d differs: %q/%q vs %q/%q", i, pa[i].Name, pa[i].Phone, pb[i].Name, pb[i].Phone)
		}
	}
}

func TestSeeder_EmptyConfigProducesNothing(t *testing.T) {
	f := newFixture(t)
	report, err := f.seeder.Seed(context.Background(), SeedConfig{})
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if report != (SeedReport{}) {
		t.Errorf("report = %+v, want zero", report)
	}
}
