// Package shell implements the interactive text menu that drives the clinic
// services from a terminal.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinicdesk/internal/domain/billing"
	"github.com/clinicdesk/clinicdesk/internal/domain/identity"
	"github.com/clinicdesk/clinicdesk/internal/domain/pharmacy"
	"github.com/clinicdesk/clinicdesk/internal/domain/scheduling"
)

type Shell struct {
	in     *bufio.Reader
	out    io.Writer
	logger zerolog.Logger

	identity   *identity.Service
	scheduling *scheduling.Service
	pharmacy   *pharmacy.Service
	billing    *billing.Service
}

func New(in io.Reader, out io.Writer, logger zerolog.Logger, id *identity.Service, sched *scheduling.Service, pharm *pharmacy.Service, bill *billing.Service) *Shell {
	return &Shell{
		in:         bufio.NewReader(in),
		out:        out,
		logger:     logger,
		identity:   id,
		scheduling: sched,
		pharmacy:   pharm,
		billing:    bill,
	}
}

// Run drives the main menu until the user exits or input ends. An input
// stream ending (EOF) is a normal way to leave, not an error.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "\n=== ClinicDesk ===")
	for {
		fmt.Fprintln(s.out, "\nMain Menu\n 1) Patients\n 2) Doctors\n 3) Appointments\n 4) Pharmacy\n 5) Billing\n 9) About\n 0) Exit")
		ch, err := s.promptInt("Choose: ")
		if err != nil {
			return nil
		}
		switch ch {
		case 1:
			if err := s.patientsMenu(ctx); err != nil {
				return nil
			}
		case 2:
			if err := s.doctorsMenu(ctx); err != nil {
				return nil
			}
		case 3:
			if err := s.appointmentsMenu(ctx); err != nil {
				return nil
			}
		case 4:
			if err := s.pharmacyMenu(ctx); err != nil {
				return nil
			}
		case 5:
			if err := s.billingMenu(ctx); err != nil {
				return nil
			}
		case 9:
			fmt.Fprintln(s.out, "Single-user clinic records manager backed by plain text files.")
		case 0:
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice.")
		}
	}
}

// readLine prompts and returns one trimmed line. io.EOF means the input
// stream is gone and the caller should unwind.
func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptInt keeps asking until it gets an integer.
func (s *Shell) promptInt(prompt string) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil {
			fmt.Fprintln(s.out, "  Invalid integer. Try again.")
			continue
		}
		return n, nil
	}
}

// promptFloat keeps asking until it gets a number.
func (s *Shell) promptFloat(prompt string) (float64, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, convErr := strconv.ParseFloat(line, 64)
		if convErr != nil {
			fmt.Fprintln(s.out, "  Invalid number. Try again.")
			continue
		}
		return v, nil
	}
}

// optString returns nil when the user leaves the field blank, keeping the
// current value during edits.
func (s *Shell) optString(prompt string) (*string, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return nil, err
	}
	if line == "" {
		return nil, nil
	}
	return &line, nil
}

func (s *Shell) optInt(prompt string) (*int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return nil, err
		}
		if line == "" {
			return nil, nil
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil {
			fmt.Fprintln(s.out, "  Invalid integer. Try again.")
			continue
		}
		return &n, nil
	}
}
