package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/clinicdesk/clinicdesk/internal/platform/record"
)

func (s *Shell) billingMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(s.out, "\n[Billing]\n 1) List invoices\n 2) New invoice (manual)\n 3) Patient total billed\n 0) Back")
		ch, err := s.promptInt("Choose: ")
		if err != nil {
			return err
		}
		var actErr error
		switch ch {
		case 1:
			actErr = s.listInvoices(ctx)
		case 2:
			actErr = s.newInvoice(ctx)
		case 3:
			actErr = s.patientBalance(ctx)
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

func (s *Shell) listInvoices(ctx context.Context) error {
	invoices := s.billing.List(ctx)
	fmt.Fprintf(s.out, "\n-- Invoices (%d) --\n", len(invoices))
	fmt.Fprintf(s.out, "%-4s %-6s %-10s %s\n", "ID", "PatID", "Amount", "Description")
	for _, iv := range invoices {
		fmt.Fprintf(s.out, "%-4d %-6d %-10.2f %-40.40s (%s)\n", iv.ID, iv.PatientID, iv.Amount, iv.Description, iv.IssueDate)
	}
	return nil
}

func (s *Shell) newInvoice(ctx context.Context) error {
	patientID, err := s.promptInt("Patient ID: ")
	if err != nil {
		return err
	}
	amount, err := s.promptFloat("Amount: ")
	if err != nil {
		return err
	}
	description, err := s.readLine("Description: ")
	if err != nil {
		return err
	}
	iv, createErr := s.billing.Create(ctx, patientID, amount, description, "")
	if createErr != nil {
		switch {
		case errors.Is(createErr, record.ErrInvalidReference):
			fmt.Fprintln(s.out, "Invalid patient.")
		case errors.Is(createErr, record.ErrCapacityExceeded):
			fmt.Fprintln(s.out, "Invoice capacity reached.")
		default:
			fmt.Fprintf(s.out, "Could not create invoice: %v\n", createErr)
		}
		return nil
	}
	fmt.Fprintf(s.out, "Invoice created: #%d\n", iv.ID)
	return nil
}

func (s *Shell) patientBalance(ctx context.Context) error {
	patientID, err := s.promptInt("Patient ID: ")
	if err != nil {
		return err
	}
	sum, balErr := s.billing.PatientBalance(ctx, patientID)
	if balErr != nil {
		fmt.Fprintln(s.out, "Invalid patient.")
		return nil
	}
	fmt.Fprintf(s.out, "Total billed to patient %d: %.2f\n", patientID, sum)
	return nil
}
