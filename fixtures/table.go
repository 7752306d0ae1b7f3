package fixtures

import "github.com/mmdatafocus/tracking_backend/models"

// Table is an ordered pin -> record mapping. It is not modified after it is built.
type Table struct {
	order   []string
	records map[string]models.ShipmentScan
}

// NewTable keys records by their Piece Pin, last write wins.
func NewTable(records ...models.ShipmentScan) *Table {
	t := newTable(len(records))
	for _, r := range records {
		t.put(r.PiecePin, r)
	}
	return t
}

func newTable(capacity int) *Table {
	return &Table{
		order:   make([]string, 0, capacity),
		records: make(map[string]models.ShipmentScan, capacity),
	}
}

// put overwrites on collision; the pin keeps its first position.
func (t *Table) put(pin string, r models.ShipmentScan) {
	if _, exists := t.records[pin]; !exists {
		t.order = append(t.order, pin)
	}
	t.records[pin] = r
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Get looks up a record by pin.
func (t *Table) Get(pin string) (models.ShipmentScan, bool) {
	if t == nil {
		return models.ShipmentScan{}, false
	}
	r, ok := t.records[pin]
	return r, ok
}

// Keys returns the pins in insertion order.
func (t *Table) Keys() []string {
	if t == nil {
		return []string{}
	}
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Records returns the records in insertion order.
func (t *Table) Records() []models.ShipmentScan {
	if t == nil {
		return []models.ShipmentScan{}
	}
	out := make([]models.ShipmentScan, 0, len(t.order))
	for _, pin := range t.order {
		out = append(out, t.records[pin])
	}
	return out
}
