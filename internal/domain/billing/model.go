// Package billing holds invoices. Invoices are append-only: created and
// listed, never edited.
package billing

import (
	"strconv"

	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinicdesk/internal/platform/record"
)

// Invoice maps to one line of invoices.db: id|patientId|amount|description|date
type Invoice struct {
	ID          int
	PatientID   int
	Amount      float64
	Description string
	IssueDate   string // YYYY-MM-DD
}

func (i *Invoice) RecordID() int      { return i.ID }
func (i *Invoice) SetRecordID(id int) { i.ID = id }

type invoiceCodec struct{}

func (invoiceCodec) Encode(i *Invoice) string {
	return record.Join(
		strconv.Itoa(i.ID),
		strconv.Itoa(i.PatientID),
		record.FormatAmount(i.Amount),
		record.Escape(i.Description),
		record.Escape(i.IssueDate),
	)
}

func (invoiceCodec) Decode(line string) (*Invoice, error) {
	f, err := record.Split(line, 5)
	if err != nil {
		return nil, err
	}
	id, err := record.ParseInt(f[0])
	if err != nil {
		return nil, err
	}
	patientID, err := record.ParseInt(f[1])
	if err != nil {
		return nil, err
	}
	amount, err := record.ParseFloat(f[2])
	if err != nil {
		return nil, err
	}
	return &Invoice{ID: id, PatientID: patientID, Amount: amount, Description: f[3], IssueDate: f[4]}, nil
}

// NewInvoiceStore builds the invoice store over the given persistence.
func NewInvoiceStore(p record.Persistence, capacity int, logger zerolog.Logger) *record.Store[*Invoice] {
	return record.NewStore("invoices", invoiceCodec{}, p, capacity, logger)
}
