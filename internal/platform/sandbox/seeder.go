// Package sandbox generates reproducible synthetic clinic data for demo and
// development environments.
package sandbox

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/clinicdesk/clinicdesk/internal/domain/billing"
	"github.com/clinicdesk/clinicdesk/internal/domain/identity"
	"github.com/clinicdesk/clinicdesk/internal/domain/pharmacy"
	"github.com/clinicdesk/clinicdesk/internal/domain/scheduling"
)

// SeedConfig controls the volume of generated synthetic records. The same
// Seed value yields the same data.
type SeedConfig struct {
	PatientCount     int
	DoctorCount      int
	MedicineCount    int
	AppointmentCount int
	InvoiceCount     int
	Seed             int64
}

// DefaultSeedConfig returns a small but representative data set.
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		PatientCount:     25,
		DoctorCount:      8,
		MedicineCount:    15,
		AppointmentCount: 40,
		InvoiceCount:     30,
	}
}

// SeedReport counts what was actually created.
type SeedReport struct {
	Patients     int
	Doctors      int
	Medicines    int
	Appointments int
	Invoices     int
}

type Seeder struct {
	identity   *identity.Service
	scheduling *scheduling.Service
	pharmacy   *pharmacy.Service
	billing    *billing.Service
}

func NewSeeder(id *identity.Service, sched *scheduling.Service, pharm *pharmacy.Service, bill *billing.Service) *Seeder {
	return &Seeder{identity: id, scheduling: sched, pharmacy: pharm, billing: bill}
}

var (
	firstNames = []string{
		"Aarav", "Ana", "Carlos", "Diego", "Elena", "Fatima", "Grace", "Hiro",
		"Ines", "James", "Kavya", "Liam", "Maria", "Noah", "Olga", "Priya",
		"Quentin", "Rosa", "Samuel", "Tara",
	}
	lastNames = []string{
		"Almeida", "Brown", "Chen", "Dubois", "Eriksen", "Fernandez", "Garcia",
		"Hassan", "Ivanov", "Johnson", "Kim", "Lopez", "Mehta", "Nguyen",
		"Okafor", "Patel", "Rossi", "Sato", "Tanaka", "Ueda",
	}
	genders         = []string{"M", "F", "Other"}
	streets         = []string{"Main St", "Oak Ave", "Hill Rd", "Lake View", "Station Rd", "Garden Lane"}
	specializations = []string{
		"General Medicine", "Pediatrics", "Cardiology", "Dermatology",
		"Orthopedics", "Neurology", "Gynecology", "ENT",
	}
	medicineNames = []string{
		"Paracetamol 500mg", "Ibuprofen 200mg", "Amoxicillin 250mg",
		"Cetirizine 10mg", "Omeprazole 20mg", "Metformin 500mg",
		"Atorvastatin 10mg", "Azithromycin 500mg", "Salbutamol Inhaler",
		"Vitamin D3", "Insulin Glargine", "Losartan 50mg",
		"Amlodipine 5mg", "Pantoprazole 40mg", "Diclofenac Gel",
	}
	visitReasons = []string{
		"General checkup", "Fever and cough", "Blood pressure review",
		"Vaccination", "Back pain", "Follow-up visit", "Skin rash",
	}
	invoiceDescriptions = []string{
		"Consultation fee", "Lab tests", "X-ray", "Dressing change",
		"Physiotherapy session", "Vaccination charge",
	}
)

// Seed populates the services in dependency order: people first, then
// inventory, then the records that reference them.
func (s *Seeder) Seed(ctx context.Context, cfg SeedConfig) (SeedReport, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	var report SeedReport

	var patientIDs []int
	for i := 0; i < cfg.PatientCount; i++ {
		p := &identity.Patient{
			Name:    pick(rng, firstNames) + " " + pick(rng, lastNames),
			Age:     1 + rng.Intn(90),
			Gender:  pick(rng, genders),
			Phone:   phone(rng),
			Address: fmt.Sprintf("%d %s", 1+rng.Intn(200), pick(rng, streets)),
		}
		if err := s.identity.AddPatient(ctx, p); err != nil {
			return report, fmt.Errorf("seed patient: %w", err)
		}
		patientIDs = append(patientIDs, p.ID)
		report.Patients++
	}

	var doctorIDs []int
	for i := 0; i < cfg.DoctorCount; i++ {
		d := &identity.Doctor{
			Name:           "Dr. " + pick(rng, firstNames) + " " + pick(rng, lastNames),
			Specialization: pick(rng, specializations),
			Phone:          phone(rng),
		}
		if err := s.identity.AddDoctor(ctx, d); err != nil {
			return report, fmt.Errorf("seed doctor: %w", err)
		}
		doctorIDs = append(doctorIDs, d.ID)
		report.Doctors++
	}

	var medicineIDs []int
	for i := 0; i < cfg.MedicineCount; i++ {
		name := medicineNames[i%len(medicineNames)]
		m, err := s.pharmacy.Add(ctx, name, 10+rng.Intn(190), 1+float64(rng.Intn(4900))/100)
		if err != nil {
			return report, fmt.Errorf("seed medicine: %w", err)
		}
		medicineIDs = append(medicineIDs, m.ID)
		report.Medicines++
	}

	base := time.Now()
	for i := 0; i < cfg.AppointmentCount && len(patientIDs) > 0 && len(doctorIDs) > 0; i++ {
		date := base.AddDate(0, 0, 1+rng.Intn(60)).Format(scheduling.DateLayout)
		at := fmt.Sprintf("%02d:%02d", 8+rng.Intn(9), 30*rng.Intn(2))
		a, err := s.scheduling.Schedule(ctx, pick(rng, patientIDs), pick(rng, doctorIDs), date, at, pick(rng, visitReasons))
		if err != nil {
			return report, fmt.Errorf("seed appointment: %w", err)
		}
		// A few canceled appointments make the listing realistic.
		if rng.Intn(10) == 0 {
			if err := s.scheduling.Cancel(ctx, a.ID); err != nil {
				return report, fmt.Errorf("seed cancel: %w", err)
			}
		}
		report.Appointments++
	}

	for i := 0; i < cfg.InvoiceCount && len(patientIDs) > 0; i++ {
		amount := 5 + float64(rng.Intn(49500))/100
		if _, err := s.billing.Create(ctx, pick(rng, patientIDs), amount, pick(rng, invoiceDescriptions), ""); err != nil {
			return report, fmt.Errorf("seed invoice: %w", err)
		}
		report.Invoices++
	}

	// Exercise the sale flow so seeded data includes medicine invoices.
	for i := 0; i < len(medicineIDs)/3 && len(patientIDs) > 0; i++ {
		if _, err := s.pharmacy.Sell(ctx, pick(rng, patientIDs), pick(rng, medicineIDs), 1+rng.Intn(3)); err != nil {
			return report, fmt.Errorf("seed sale: %w", err)
		}
		report.Invoices++
	}

	return report, nil
}

func pick[T any](rng *rand.Rand, from []T) T {
	return from[rng.Intn(len(from))]
}

func phone(rng *rand.Rand) string {
	return fmt.Sprintf("555-%04d", rng.Intn(10000))
}
