package entity

import "time"

// BillRow is one presentable row of a compiled bill: the resolved item name
// with the total split into the integer rupee part and the two-digit paise
// part. Blank padding rows carry only the index.
type BillRow struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
	Rupees   string `json:"rupees"`
	Paise    string `json:"paise"`
	Blank    bool   `json:"blank"`
}

// BillDocument is the finalized, ordered row set plus header metadata that
// the print view, PDF export and thermal printer consume. It is a snapshot:
// it holds no reference back to the live row list.
type BillDocument struct {
	CustomerName string    `json:"customer_name"`
	HasteName    string    `json:"haste_name,omitempty"`
	Rows         []BillRow `json:"rows"`
	GrandTotal   string    `json:"grand_total"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// ItemRows returns only the non-blank rows
func (b *BillDocument) ItemRows() []BillRow {
	rows := make([]BillRow, 0, len(b.Rows))
	for _, r := range b.Rows {
		if !r.Blank {
			rows = append(rows, r)
		}
	}
	return rows
}
