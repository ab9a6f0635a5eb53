package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/clinicdesk/clinicdesk/internal/platform/record"
)

func (s *Shell) appointmentsMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(s.out, "\n[Appointments]\n 1) List\n 2) Schedule\n 3) Cancel\n 0) Back")
		ch, err := s.promptInt("Choose: ")
		if err != nil {
			return err
		}
		var actErr error
		switch ch {
		case 1:
			actErr = s.listAppointments(ctx)
		case 2:
			actErr = s.scheduleAppointment(ctx)
		case 3:
			actErr = s.cancelAppointment(ctx)
		case 0:
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid.")
		}
		if actErr != nil {
			return actErr
		}
	}
}

func (s *Shell) listAppointments(ctx context.Context) error {
	appointments := s.scheduling.List(ctx)
	fmt.Fprintf(s.out, "\n-- Appointments (%d) --\n", len(appointments))
	fmt.Fprintf(s.out, "%-4s %-6s %-6s %-10s %-5s %-8s %s\n", "ID", "PatID", "DocID", "Date", "Time", "Canceled", "Notes")
	for _, a := range appointments {
		canceled := "No"
		if a.Canceled {
			canceled = "Yes"
		}
		fmt.Fprintf(s.out, "%-4d %-6d %-6d %-10s %-5s %-8s %-40.40s\n", a.ID, a.PatientID, a.DoctorID, a.Date, a.Time, canceled, a.Notes)
	}
	return nil
}

func (s *Shell) scheduleAppointment(ctx context.Context) error {
	patientID, err := s.promptInt("Patient ID: ")
	if err != nil {
		return err
	}
	doctorID, err := s.promptInt("Doctor ID: ")
	if err != nil {
		return err
	}
	date, err := s.readLine("Date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	at, err := s.readLine("Time (HH:MM): ")
	if err != nil {
		return err
	}
	notes, err := s.readLine("Notes: ")
	if err != nil {
		return err
	}
	if _, schedErr := s.scheduling.Schedule(ctx, patientID, doctorID, date, at, notes); schedErr != nil {
		switch {
		case errors.Is(schedErr, record.ErrInvalidReference):
			fmt.Fprintf(s.out, "Invalid reference: %v\n", schedErr)
		case errors.Is(schedErr, record.ErrCapacityExceeded):
			fmt.Fprintln(s.out, "Appointment capacity reached.")
		default:
			fmt.Fprintf(s.out, "Could not schedule: %v\n", schedErr)
		}
		return nil
	}
	fmt.Fprintln(s.out, "Appointment scheduled.")
	return nil
}

func (s *Shell) cancelAppointment(ctx context.Context) error {
	id, err := s.promptInt("Appointment ID to cancel: ")
	if err != nil {
		return err
	}
	if cancelErr := s.scheduling.Cancel(ctx, id); cancelErr != nil {
		fmt.Fprintln(s.out, "Not found.")
		return nil
	}
	fmt.Fprintln(s.out, "Canceled.")
	return nil
}
