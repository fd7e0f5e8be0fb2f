package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/narmadatraders/billing-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// FocusTarget names the field that should next receive input focus
type FocusTarget struct {
	ItemID int            `json:"item_id"`
	Field  enum.ItemField `json:"field"`
}

// Session is one editing session: the ordered row list, the bill header
// fields and the grand-total state. All of it is transient; nothing survives
// the session. Row ids are assigned monotonically per session and never
// reused.
type Session struct {
	ID           uuid.UUID   `json:"id"`
	CustomerName string      `json:"customer_name"`
	HasteName    string      `json:"haste_name"`
	Items        []*LineItem `json:"items"`

	// GrandTotal is the last explicitly computed total. TotalValid is
	// cleared whenever the row list is structurally mutated and set only by
	// an aggregation call, so the displayed total may lag row edits.
	GrandTotal string `json:"grand_total"`
	TotalValid bool   `json:"total_valid"`
	ShowTotal  bool   `json:"show_total"`

	// PendingFocus is the single-slot deferred focus request: the latest
	// commit overwrites it, claiming it clears it.
	PendingFocus *FocusTarget `json:"pending_focus,omitempty"`

	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"-"`

	nextID int
}

// NewSession creates a session with a single blank row. The row list is never
// empty while the session is active.
func NewSession() *Session {
	s := &Session{
		ID:         uuid.New(),
		GrandTotal: "0",
		CreatedAt:  time.Now(),
		LastActive: time.Now(),
		nextID:     1,
	}
	s.InsertItem()
	return s
}

// InsertItem appends a blank row with a fresh id and returns it
func (s *Session) InsertItem() *LineItem {
	item := NewLineItem(s.nextID)
	s.nextID++
	s.Items = append(s.Items, item)
	s.TotalValid = false
	return item
}

// RemoveItem deletes the row with the given id, preserving the order of the
// rest. The sole remaining row is cleared in place instead of removed.
// An unknown id is ignored.
func (s *Session) RemoveItem(id int) {
	item := s.FindItem(id)
	if item == nil {
		return
	}
	if len(s.Items) <= 1 {
		item.Clear()
	} else {
		items := s.Items[:0]
		for _, it := range s.Items {
			if it.ID != id {
				items = append(items, it)
			}
		}
		s.Items = items
	}
	s.TotalValid = false
}

// UpdateField sets one field on the row with the given id and re-derives the
// dependent fields. An unknown id is ignored.
func (s *Session) UpdateField(id int, field enum.ItemField, value string) *LineItem {
	item := s.FindItem(id)
	if item == nil {
		return nil
	}
	item.SetField(field, value)
	return item
}

// FindItem returns the row with the given id, or nil
func (s *Session) FindItem(id int) *LineItem {
	for _, it := range s.Items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// IsLastItem reports whether the given id belongs to the final row
func (s *Session) IsLastItem(id int) bool {
	return len(s.Items) > 0 && s.Items[len(s.Items)-1].ID == id
}

// NextItemAfter returns the row following the given id in list order, or nil
func (s *Session) NextItemAfter(id int) *LineItem {
	for i, it := range s.Items {
		if it.ID == id && i+1 < len(s.Items) {
			return s.Items[i+1]
		}
	}
	return nil
}

// ComputeGrandTotal sums the numeric totals of all rows in list order. Rows
// with an empty or unparseable total contribute zero.
func (s *Session) ComputeGrandTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range s.Items {
		sum = sum.Add(it.TotalAmount())
	}
	return sum
}
