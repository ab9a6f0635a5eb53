package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/clinicdesk/clinicdesk/internal/domain/identity"
	"github.com/clinicdesk/clinicdesk/internal/platform/record"
)

func (s *Shell) patientsMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(s.out, "\n[Patients]\n 1) List\n 2) Add\n 3) Edit\n 4) Delete\n 5) Search by name\n 0) Back")
		ch, err := s.promptInt("Choose: ")
		if err != nil {
			return err
		}
		var actErr error
		switch ch {
		case 1:
			actErr = s.listPatients(ctx)
		case 2:
			actErr = s.addPatient(ctx)
		case 3:
			actErr = s.editPatient(ctx)
		case 4:
			actErr = s.deletePatient(ctx)
		case 5:
			actErr = s.searchPatients(ctx)
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

func (s *Shell) listPatients(ctx context.Context) error {
	patients := s.identity.ListPatients(ctx)
	fmt.Fprintf(s.out, "\n-- Patients (%d) --\n", len(patients))
	fmt.Fprintf(s.out, "%-5s %-20s %-3s %-7s %-14s %s\n", "ID", "Name", "Age", "Gender", "Phone", "Address")
	for _, p := range patients {
		room := "-"
		if p.Admitted {
			room = fmt.Sprintf("room %d", p.RoomNo)
		}
		fmt.Fprintf(s.out, "%-5d %-20.20s %-3d %-7.7s %-14.14s %-30.30s %s\n", p.ID, p.Name, p.Age, p.Gender, p.Phone, p.Address, room)
	}
	return nil
}

func (s *Shell) addPatient(ctx context.Context) error {
	p := &identity.Patient{}
	var err error
	if p.Name, err = s.readLine("Name: "); err != nil {
		return err
	}
	if p.Age, err = s.promptInt("Age: "); err != nil {
		return err
	}
	if p.Gender, err = s.readLine("Gender (M/F/Other): "); err != nil {
		return err
	}
	if p.Phone, err = s.readLine("Phone: "); err != nil {
		return err
	}
	if p.Address, err = s.readLine("Address: "); err != nil {
		return err
	}
	if addErr := s.identity.AddPatient(ctx, p); addErr != nil {
		if errors.Is(addErr, record.ErrCapacityExceeded) {
			fmt.Fprintln(s.out, "Patient capacity reached.")
			return nil
		}
		fmt.Fprintf(s.out, "Could not add patient: %v\n", addErr)
		return nil
	}
	fmt.Fprintf(s.out, "Added patient with ID %d\n", p.ID)
	return nil
}

func (s *Shell) editPatient(ctx context.Context) error {
	id, err := s.promptInt("Enter patient ID to edit: ")
	if err != nil {
		return err
	}
	p, getErr := s.identity.GetPatient(ctx, id)
	if getErr != nil {
		fmt.Fprintln(s.out, "Not found.")
		return nil
	}
	fmt.Fprintf(s.out, "Editing patient %d (%s). Leave blank to keep.\n", p.ID, p.Name)
	var params identity.UpdatePatientParams
	if params.Name, err = s.optString("Name: "); err != nil {
		return err
	}
	if params.Age, err = s.optInt("Age: "); err != nil {
		return err
	}
	if params.Gender, err = s.optString("Gender: "); err != nil {
		return err
	}
	if params.Phone, err = s.optString("Phone: "); err != nil {
		return err
	}
	if params.Address, err = s.optString("Address: "); err != nil {
		return err
	}
	admitted, err := s.optString("Admitted (y/n): ")
	if err != nil {
		return err
	}
	if admitted != nil {
		v := *admitted == "y" || *admitted == "Y"
		params.Admitted = &v
		if v {
			if params.RoomNo, err = s.optInt("Room number: "); err != nil {
				return err
			}
		} else {
			unassigned := -1
			params.RoomNo = &unassigned
		}
	}
	if updErr := s.identity.UpdatePatient(ctx, id, params); updErr != nil {
		fmt.Fprintf(s.out, "Could not update: %v\n", updErr)
		return nil
	}
	fmt.Fprintln(s.out, "Updated.")
	return nil
}

func (s *Shell) deletePatient(ctx context.Context) error {
	id, err := s.promptInt("Enter patient ID to delete: ")
	if err != nil {
		return err
	}
	if delErr := s.identity.DeletePatient(ctx, id); delErr != nil {
		fmt.Fprintln(s.out, "Not found.")
		return nil
	}
	fmt.Fprintln(s.out, "Deleted.")
	return nil
}

func (s *Shell) searchPatients(ctx context.Context) error {
	query, err := s.readLine("Enter name (partial ok): ")
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Results for '%s':\n", query)
	for p := range s.identity.SearchPatientsByName(ctx, query) {
		fmt.Fprintf(s.out, "  #%d  %s, %d, %s, %s\n", p.ID, p.Name, p.Age, p.Gender, p.Phone)
	}
	return nil
}
