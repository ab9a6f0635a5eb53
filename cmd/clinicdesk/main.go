package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clinicdesk/clinicdesk/internal/config"
	"github.com/clinicdesk/clinicdesk/internal/domain/billing"
	"github.com/clinicdesk/clinicdesk/internal/domain/identity"
	"github.com/clinicdesk/clinicdesk/internal/domain/pharmacy"
	"github.com/clinicdesk/clinicdesk/internal/domain/scheduling"
	"github.com/clinicdesk/clinicdesk/internal/platform/audit"
	"github.com/clinicdesk/clinicdesk/internal/platform/record"
	"github.com/clinicdesk/clinicdesk/internal/platform/sandbox"
	"github.com/clinicdesk/clinicdesk/internal/shell"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinicdesk",
		Short: "ClinicDesk - flat-file clinic records manager",
	}
	rootCmd.AddCommand(shellCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.Context())
		},
	}
}

func seedCmd() *cobra.Command {
	cfg := sandbox.DefaultSeedConfig()
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the data directory with synthetic records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), cfg)
		},
	}
	cmd.Flags().IntVar(&cfg.PatientCount, "patients", cfg.PatientCount, "number of patients to create")
	cmd.Flags().IntVar(&cfg.DoctorCount, "doctors", cfg.DoctorCount, "number of doctors to create")
	cmd.Flags().IntVar(&cfg.MedicineCount, "medicines", cfg.MedicineCount, "number of medicines to create")
	cmd.Flags().IntVar(&cfg.AppointmentCount, "appointments", cfg.AppointmentCount, "number of appointments to create")
	cmd.Flags().IntVar(&cfg.InvoiceCount, "invoices", cfg.InvoiceCount, "number of invoices to create")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducible data")
	return cmd
}

// app bundles the wired services behind one data directory.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger

	identity   *identity.Service
	scheduling *scheduling.Service
	pharmacy   *pharmacy.Service
	billing    *billing.Service
}

func buildApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	logger := newLogger(cfg)

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dataFile := func(name string) *record.File {
		return record.NewFile(filepath.Join(cfg.DataDir, name))
	}
	patients := identity.NewPatientStore(dataFile("patients.db"), cfg.MaxPatients, logger)
	doctors := identity.NewDoctorStore(dataFile("doctors.db"), cfg.MaxDoctors, logger)
	appointments := scheduling.NewAppointmentStore(dataFile("appointments.db"), cfg.MaxAppointments, logger)
	medicines := pharmacy.NewMedicineStore(dataFile("medicines.db"), cfg.MaxMedicines, logger)
	invoices := billing.NewInvoiceStore(dataFile("invoices.db"), cfg.MaxInvoices, logger)

	// A store whose file cannot be read starts empty; the session must not
	// be blocked by one unreadable data file.
	for name, load := range map[string]func() error{
		"patients.db":     patients.Load,
		"doctors.db":      doctors.Load,
		"appointments.db": appointments.Load,
		"medicines.db":    medicines.Load,
		"invoices.db":     invoices.Load,
	} {
		if err := load(); err != nil {
			logger.Warn().Err(err).Str("file", name).Msg("load failed; starting with empty store")
		}
	}

	rec := audit.NewLogger(logger)
	idSvc := identity.NewService(patients, doctors, rec)
	billSvc := billing.NewService(invoices, idSvc, rec)
	schedSvc := scheduling.NewService(appointments, idSvc, idSvc, rec)
	pharmSvc := pharmacy.NewService(medicines, idSvc, billSvc, rec, logger)

	return &app{
		cfg:        cfg,
		logger:     logger,
		identity:   idSvc,
		scheduling: schedSvc,
		pharmacy:   pharmSvc,
		billing:    billSvc,
	}, nil
}

func runShell(ctx context.Context) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	sh := shell.New(os.Stdin, os.Stdout, a.logger, a.identity, a.scheduling, a.pharmacy, a.billing)
	return sh.Run(ctx)
}

func runSeed(ctx context.Context, cfg sandbox.SeedConfig) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	seeder := sandbox.NewSeeder(a.identity, a.scheduling, a.pharmacy, a.billing)
	report, err := seeder.Seed(ctx, cfg)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	a.logger.Info().
		Int("patients", report.Patients).
		Int("doctors", report.Doctors).
		Int("medicines", report.Medicines).
		Int("appointments", report.Appointments).
		Int("invoices", report.Invoices).
		Msg("sandbox data created")
	return nil
}

// newLogger writes to stderr so log lines never interleave with menu output.
func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return logger
}
