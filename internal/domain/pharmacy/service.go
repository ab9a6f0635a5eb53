package pharmacy

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinicdesk/internal/platform/audit"
	"github.com/clinicdesk/clinicdesk/internal/platform/record"
)

var (
	// ErrInvalidQuantity reports a sale or restock quantity outside the
	// allowed range.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInsufficientStock reports a sale quantity above the current stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// PatientDirectory resolves patient references owned by another domain.
type PatientDirectory interface {
	PatientExists(ctx context.Context, id int) bool
}

// InvoiceIssuer creates a sale invoice in the billing domain and returns the
// new invoice identifier.
type InvoiceIssuer interface {
	IssueInvoice(ctx context.Context, patientID int, amount float64, description string) (int, error)
}

// SaleResult reports a completed sale. Invoiced is false when the invoice
// store was at capacity: the stock deduction stands and the sale carries no
// bill.
type SaleResult struct {
	MedicineID int
	Quantity   int
	Total      float64
	InvoiceID  int
	Invoiced   bool
}

type Service struct {
	medicines *record.Store[*Medicine]
	patients  PatientDirectory
	invoices  InvoiceIssuer
	audit     audit.Recorder
	logger    zerolog.Logger
}

func NewService(medicines *record.Store[*Medicine], patients PatientDirectory, invoices InvoiceIssuer, rec audit.Recorder, logger zerolog.Logger) *Service {
	if rec == nil {
		rec = audit.Nop{}
	}
	return &Service{medicines: medicines, patients: patients, invoices: invoices, audit: rec, logger: logger}
}

func (s *Service) Add(ctx context.Context, name string, stock int, price float64) (*Medicine, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if stock < 0 {
		return nil, fmt.Errorf("initial stock %d: %w", stock, ErrInvalidQuantity)
	}
	if price < 0 {
		return nil, fmt.Errorf("price must be non-negative")
	}
	m := &Medicine{Name: name, Stock: stock, Price: price}
	if err := s.medicines.Add(m); err != nil {
		return nil, err
	}
	s.audit.Record(audit.Entry{Action: "create", Entity: "medicine", RecordID: m.ID, Detail: name})
	return m, nil
}

func (s *Service) Get(ctx context.Context, id int) (*Medicine, error) {
	return s.medicines.FindByID(id)
}

func (s *Service) List(ctx context.Context) []*Medicine {
	return s.medicines.All()
}

// Restock adds qty units. Zero is allowed; negative quantities are rejected
// so stock can never be driven down through this path.
func (s *Service) Restock(ctx context.Context, id, qty int) error {
	if qty < 0 {
		return fmt.Errorf("restock quantity %d: %w", qty, ErrInvalidQuantity)
	}
	if err := s.medicines.Update(id, func(m *Medicine) { m.Stock += qty }); err != nil {
		return err
	}
	s.audit.Record(audit.Entry{Action: "restock", Entity: "medicine", RecordID: id, Detail: fmt.Sprintf("+%d units", qty)})
	return nil
}

// Sell checks every precondition before touching state: the patient and
// medicine must resolve, the quantity must be positive and within stock.
// Then the deduction is persisted and an invoice issued for price x qty.
// When the invoice store is full the deduction stands and the sale goes
// through unbilled rather than rolling the stock change back.
func (s *Service) Sell(ctx context.Context, patientID, medicineID, qty int) (SaleResult, error) {
	if !s.patients.PatientExists(ctx, patientID) {
		return SaleResult{}, fmt.Errorf("patient %d: %w", patientID, record.ErrInvalidReference)
	}
	m, err := s.medicines.FindByID(medicineID)
	if err != nil {
		return SaleResult{}, fmt.Errorf("medicine %d: %w", medicineID, record.ErrInvalidReference)
	}
	if qty <= 0 {
		return SaleResult{}, fmt.Errorf("sale quantity %d: %w", qty, ErrInvalidQuantity)
	}
	if qty > m.Stock {
		return SaleResult{}, fmt.Errorf("quantity %d exceeds stock %d: %w", qty, m.Stock, ErrInsufficientStock)
	}

	total := m.Price * float64(qty)
	if err := s.medicines.Update(medicineID, func(m *Medicine) { m.Stock -= qty }); err != nil {
		return SaleResult{}, err
	}
	s.audit.Record(audit.Entry{
		Action:   "sell",
		Entity:   "medicine",
		RecordID: medicineID,
		Detail:   fmt.Sprintf("%d units to patient %d", qty, patientID),
	})
	res := SaleResult{MedicineID: medicineID, Quantity: qty, Total: total}

	invoiceID, err := s.invoices.IssueInvoice(ctx, patientID, total, fmt.Sprintf("Medicine: %s x %d", m.Name, qty))
	if err != nil {
		if errors.Is(err, record.ErrCapacityExceeded) {
			s.logger.Warn().
				Int("patient_id", patientID).
				Int("medicine_id", medicineID).
				Int("quantity", qty).
				Msg("invoice capacity reached; sale recorded without invoice")
			return res, nil
		}
		return res, err
	}
	res.InvoiceID = invoiceID
	res.Invoiced = true
	return res, nil
}
