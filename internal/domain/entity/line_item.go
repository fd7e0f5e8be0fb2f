package entity

import (
	"github.com/narmadatraders/billing-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// LineItem represents one editable billing row. Quantity, price and total are
// kept as the user's text; an empty string means "unset", not zero.
type LineItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Quantity    string `json:"quantity"`
	Price       string `json:"price"`
	Total       string `json:"total"`
	Decimal     string `json:"decimal"`
	ManualTotal bool   `json:"is_manual_total"`
}

// NewLineItem creates a blank row with the given id
func NewLineItem(id int) *LineItem {
	return &LineItem{ID: id}
}

// Clear resets every field in place. The id is kept, and the row re-enters
// auto-total mode.
func (li *LineItem) Clear() {
	li.Name = ""
	li.Quantity = ""
	li.Price = ""
	li.Total = ""
	li.Decimal = ""
	li.ManualTotal = false
}

// SetField updates one field and re-derives the dependent fields.
//
// Editing quantity or price recomputes the total while the row is in auto
// mode. Editing the total directly switches the row to manual mode, which is
// sticky: quantity and price edits no longer overwrite the total until the
// row is cleared or removed. The paise part is re-derived whenever the total
// changes, by either path.
func (li *LineItem) SetField(field enum.ItemField, value string) {
	switch field {
	case enum.FieldName:
		li.Name = value
	case enum.FieldQuantity:
		li.Quantity = value
	case enum.FieldPrice:
		li.Price = value
	case enum.FieldTotal:
		li.Total = value
	}

	if (field == enum.FieldQuantity || field == enum.FieldPrice) && !li.ManualTotal {
		total := ParseAmount(li.Quantity).Mul(ParseAmount(li.Price))
		if total.IsPositive() {
			li.Total = total.StringFixed(2)
		} else {
			li.Total = ""
		}
		li.Decimal = PaisePart(total)
	}

	if field == enum.FieldTotal {
		li.ManualTotal = true
		li.Decimal = PaisePart(ParseAmount(value))
	}
}

// TotalAmount returns the row's numeric total, zero when empty or unparseable
func (li *LineItem) TotalAmount() decimal.Decimal {
	return ParseAmount(li.Total)
}

// Complete reports whether name, quantity and price are all filled in
func (li *LineItem) Complete() bool {
	return li.Name != "" && li.Quantity != "" && li.Price != ""
}

// ParseAmount parses a text-encoded amount, treating empty or unparseable
// input as zero.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// PaisePart derives the two-digit paise string from a total: the fractional
// part times 100, rounded and zero-padded. A zero or negative total yields an
// empty string.
func PaisePart(total decimal.Decimal) string {
	if !total.IsPositive() {
		return ""
	}
	paise := total.Mod(decimal.NewFromInt(1)).Mul(decimal.NewFromInt(100)).Round(0)
	s := paise.String()
	if len(s) < 2 {
		s = "0" + s
	}
	return s
}
