// Package pharmacy holds the medicine inventory and the sale flow.
package pharmacy

import (
	"strconv"

	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinicdesk/internal/platform/record"
)

// Medicine maps to one line of medicines.db: id|name|stock|price
type Medicine struct {
	ID    int
	Name  string
	Stock int
	Price float64 // per unit
}

func (m *Medicine) RecordID() int      { return m.ID }
func (m *Medicine) SetRecordID(id int) { m.ID = id }

type medicineCodec struct{}

func (medicineCodec) Encode(m *Medicine) string {
	return record.Join(
		strconv.Itoa(m.ID),
		record.Escape(m.Name),
		strconv.Itoa(m.Stock),
		record.FormatAmount(m.Price),
	)
}

func (medicineCodec) Decode(line string) (*Medicine, error) {
	f, err := record.Split(line, 4)
	if err != nil {
		return nil, err
	}
	id, err := record.ParseInt(f[0])
	if err != nil {
		return nil, err
	}
	stock, err := record.ParseInt(f[2])
	if err != nil {
		return nil, err
	}
	price, err := record.ParseFloat(f[3])
	if err != nil {
		return nil, err
	}
	return &Medicine{ID: id, Name: f[1], Stock: stock, Price: price}, nil
}

// NewMedicineStore builds the medicine store over the given persistence.
func NewMedicineStore(p record.Persistence, capacity int, logger zerolog.Logger) *record.Store[*Medicine] {
	return record.NewStore("medicines", medicineCodec{}, p, capacity, logger)
}
