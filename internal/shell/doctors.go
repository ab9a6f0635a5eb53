package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/clinicdesk/clinicdesk/internal/domain/identity"
	"github.com/clinicdesk/clinicdesk/internal/platform/record"
)

func (s *Shell) doctorsMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(s.out, "\n[Doctors]\n 1) List\n 2) Add\n 3) Edit\n 4) Delete\n 0) Back")
		ch, err := s.promptInt("Choose: ")
		if err != nil {
			return err
		}
		var actErr error
		switch ch {
		case 1:
			actErr = s.listDoctors(ctx)
		case 2:
			actErr = s.addDoctor(ctx)
		case 3:
			actErr = s.editDoctor(ctx)
		case 4:
			actErr = s.deleteDoctor(ctx)
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

func (s *Shell) listDoctors(ctx context.Context) error {
	doctors := s.identity.ListDoctors(ctx)
	fmt.Fprintf(s.out, "\n-- Doctors (%d) --\n", len(doctors))
	fmt.Fprintf(s.out, "%-5s %-22s %-18s %-14s\n", "ID", "Name", "Specialization", "Phone")
	for _, d := range doctors {
		fmt.Fprintf(s.out, "%-5d %-22.22s %-18.18s %-14.14s\n", d.ID, d.Name, d.Specialization, d.Phone)
	}
	return nil
}

func (s *Shell) addDoctor(ctx context.Context) error {
	d := &identity.Doctor{}
	var err error
	if d.Name, err = s.readLine("Name: "); err != nil {
		return err
	}
	if d.Specialization, err = s.readLine("Specialization: "); err != nil {
		return err
	}
	if d.Phone, err = s.readLine("Phone: "); err != nil {
		return err
	}
	if addErr := s.identity.AddDoctor(ctx, d); addErr != nil {
		if errors.Is(addErr, record.ErrCapacityExceeded) {
			fmt.Fprintln(s.out, "Doctor capacity reached.")
			return nil
		}
		fmt.Fprintf(s.out, "Could not add doctor: %v\n", addErr)
		return nil
	}
	fmt.Fprintf(s.out, "Added doctor with ID %d\n", d.ID)
	return nil
}

func (s *Shell) editDoctor(ctx context.Context) error {
	id, err := s.promptInt("Enter doctor ID to edit: ")
	if err != nil {
		return err
	}
	d, getErr := s.identity.GetDoctor(ctx, id)
	if getErr != nil {
		fmt.Fprintln(s.out, "Not found.")
		return nil
	}
	fmt.Fprintf(s.out, "Editing doctor %d (%s). Leave blank to keep.\n", d.ID, d.Name)
	var params identity.UpdateDoctorParams
	if params.Name, err = s.optString("Name: "); err != nil {
		return err
	}
	if params.Specialization, err = s.optString("Specialization: "); err != nil {
		return err
	}
	if params.Phone, err = s.optString("Phone: "); err != nil {
		return err
	}
	if updErr := s.identity.UpdateDoctor(ctx, id, params); updErr != nil {
		fmt.Fprintf(s.out, "Could not update: %v\n", updErr)
		return nil
	}
	fmt.Fprintln(s.out, "Updated.")
	return nil
}

func (s *Shell) deleteDoctor(ctx context.Context) error {
	id, err := s.promptInt("Enter doctor ID to delete: ")
	if err != nil {
		return err
	}
	if delErr := s.identity.DeleteDoctor(ctx, id); delErr != nil {
		fmt.Fprintln(s.out, "Not found.")
		return nil
	}
	fmt.Fprintln(s.out, "Deleted.")
	return nil
}
