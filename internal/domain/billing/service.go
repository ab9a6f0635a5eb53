package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/clinicdesk/clinicdesk/internal/platform/audit"
	"github.com/clinicdesk/clinicdesk/internal/platform/record"
)

const dateLayout = "2006-01-02"

// PatientDirectory resolves patient references owned by another domain.
type PatientDirectory interface {
	PatientExists(ctx context.Context, id int) bool
}

type Service struct {
	invoices *record.Store[*Invoice]
	patients PatientDirectory
	audit    audit.Recorder
	now      func() time.Time
}

func NewService(invoices *record.Store[*Invoice], patients PatientDirectory, rec audit.Recorder) *Service {
	if rec == nil {
		rec = audit.Nop{}
	}
	return &Service{invoices: invoices, patients: patients, audit: rec, now: time.Now}
}

// Create issues an invoice. The patient must resolve; a blank issueDate
// defaults to today.
func (s *Service) Create(ctx context.Context, patientID int, amount float64, description, issueDate string) (*Invoice, error) {
	if !s.patients.PatientExists(ctx, patientID) {
		return nil, fmt.Errorf("patient %d: %w", patientID, record.ErrInvalidReference)
	}
	if issueDate == "" {
		issueDate = s.now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, issueDate); err != nil {
		return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD", issueDate)
	}
	inv := &Invoice{PatientID: patientID, Amount: amount, Description: description, IssueDate: issueDate}
	if err := s.invoices.Add(inv); err != nil {
		return nil, err
	}
	s.audit.Record(audit.Entry{
		Action:   "create",
		Entity:   "invoice",
		RecordID: inv.ID,
		Detail:   fmt.Sprintf("patient %d amount %.2f", patientID, amount),
	})
	return inv, nil
}

// IssueInvoice creates a system-generated invoice dated today. It exists so
// the pharmacy's sale flow can bill without importing this package's types.
func (s *Service) IssueInvoice(ctx context.Context, patientID int, amount float64, description string) (int, error) {
	inv, err := s.Create(ctx, patientID, amount, description, "")
	if err != nil {
		return 0, err
	}
	return inv.ID, nil
}

func (s *Service) List(ctx context.Context) []*Invoice {
	return s.invoices.All()
}

// PatientBalance sums the amounts of every invoice for the patient. It is
// recomputed from a full scan on each call.
func (s *Service) PatientBalance(ctx context.Context, patientID int) (float64, error) {
	if !s.patients.PatientExists(ctx, patientID) {
		return 0, fmt.Errorf("patient %d: %w", patientID, record.ErrInvalidReference)
	}
	var sum float64
	for _, inv := range s.invoices.All() {
		if inv.PatientID == patientID {
			sum += inv.Amount
		}
	}
	return sum, nil
}
