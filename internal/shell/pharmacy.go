package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/clinicdesk/clinicdesk/internal/domain/pharmacy"
	"github.com/clinicdesk/clinicdesk/internal/platform/record"
)

func (s *Shell) pharmacyMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(s.out, "\n[Pharmacy]\n 1) List medicines\n 2) Add medicine\n 3) Restock medicine\n 4) Sell medicine (creates invoice)\n 0) Back")
		ch, err := s.promptInt("Choose: ")
		if err != nil {
			return err
		}
		var actErr error
		switch ch {
		case 1:
			actErr = s.listMedicines(ctx)
		case 2:
			actErr = s.addMedicine(ctx)
		case 3:
			actErr = s.restockMedicine(ctx)
		case 4:
			actErr = s.sellMedicine(ctx)
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

func (s *Shell) listMedicines(ctx context.Context) error {
	medicines := s.pharmacy.List(ctx)
	fmt.Fprintf(s.out, "\n-- Medicines (%d) --\n", len(medicines))
	fmt.Fprintf(s.out, "%-4s %-22s %-8s %-8s\n", "ID", "Name", "Stock", "Price")
	for _, m := range medicines {
		fmt.Fprintf(s.out, "%-4d %-22.22s %-8d %-8.2f\n", m.ID, m.Name, m.Stock, m.Price)
	}
	return nil
}

func (s *Shell) addMedicine(ctx context.Context) error {
	name, err := s.readLine("Name: ")
	if err != nil {
		return err
	}
	stock, err := s.promptInt("Initial stock: ")
	if err != nil {
		return err
	}
	price, err := s.promptFloat("Price per unit: ")
	if err != nil {
		return err
	}
	m, addErr := s.pharmacy.Add(ctx, name, stock, price)
	if addErr != nil {
		switch {
		case errors.Is(addErr, record.ErrCapacityExceeded):
			fmt.Fprintln(s.out, "Medicine capacity reached.")
		case errors.Is(addErr, pharmacy.ErrInvalidQuantity):
			fmt.Fprintln(s.out, "Invalid stock quantity.")
		default:
			fmt.Fprintf(s.out, "Could not add medicine: %v\n", addErr)
		}
		return nil
	}
	fmt.Fprintf(s.out, "Added medicine ID %d\n", m.ID)
	return nil
}

func (s *Shell) restockMedicine(ctx context.Context) error {
	id, err := s.promptInt("Medicine ID: ")
	if err != nil {
		return err
	}
	qty, err := s.promptInt("Add quantity: ")
	if err != nil {
		return err
	}
	if restockErr := s.pharmacy.Restock(ctx, id, qty); restockErr != nil {
		switch {
		case errors.Is(restockErr, record.ErrNotFound):
			fmt.Fprintln(s.out, "Not found.")
		case errors.Is(restockErr, pharmacy.ErrInvalidQuantity):
			fmt.Fprintln(s.out, "Invalid.")
		default:
			fmt.Fprintf(s.out, "Could not restock: %v\n", restockErr)
		}
		return nil
	}
	fmt.Fprintln(s.out, "Restocked.")
	return nil
}

func (s *Shell) sellMedicine(ctx context.Context) error {
	patientID, err := s.promptInt("Patient ID: ")
	if err != nil {
		return err
	}
	medicineID, err := s.promptInt("Medicine ID: ")
	if err != nil {
		return err
	}
	qty, err := s.promptInt("Quantity: ")
	if err != nil {
		return err
	}
	res, sellErr := s.pharmacy.Sell(ctx, patientID, medicineID, qty)
	if sellErr != nil {
		switch {
		case errors.Is(sellErr, record.ErrInvalidReference):
			fmt.Fprintf(s.out, "Invalid reference: %v\n", sellErr)
		case errors.Is(sellErr, pharmacy.ErrInvalidQuantity):
			fmt.Fprintln(s.out, "Invalid quantity.")
		case errors.Is(sellErr, pharmacy.ErrInsufficientStock):
			fmt.Fprintln(s.out, "Insufficient stock.")
		default:
			fmt.Fprintf(s.out, "Could not sell: %v\n", sellErr)
		}
		return nil
	}
	if !res.Invoiced {
		fmt.Fprintln(s.out, "Invoice capacity reached; sale recorded without invoice.")
		return nil
	}
	fmt.Fprintf(s.out, "Sold. Invoice #%d Amount: %.2f\n", res.InvoiceID, res.Total)
	return nil
}
