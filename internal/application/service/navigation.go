package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/narmadatraders/billing-api/internal/domain/entity"
	"github.com/narmadatraders/billing-api/internal/domain/enum"
)

// CommitField runs the focus sequencer after a field commit (the Enter key in
// the editor) and returns the next focus target, if any.
//
// Committing a non-blank name moves to the row's quantity, quantity to price.
// Committing a non-blank price on the last, fully filled row appends a new
// row and targets its name field; on an earlier row it targets the next row's
// name. A blank commit, a stale row id or a removed row never advances and
// never errors.
//
// The chosen target also overwrites the session's single-slot pending focus,
// so rapid successive commits collapse to the latest one.
func (s *SessionService) CommitField(id uuid.UUID, itemID int, field enum.ItemField) (*entity.FocusTarget, error) {
	var target *entity.FocusTarget
	err := s.with(id, func(session *entity.Session) {
		target = nextFocus(session, itemID, field)
		if target != nil {
			session.PendingFocus = target
		}
	})
	if err != nil {
		return nil, err
	}
	return target, nil
}

// ClaimPendingFocus returns the deferred focus request and clears the slot
func (s *SessionService) ClaimPendingFocus(id uuid.UUID) (*entity.FocusTarget, error) {
	var target *entity.FocusTarget
	err := s.with(id, func(session *entity.Session) {
		target = session.PendingFocus
		session.PendingFocus = nil
	})
	if err != nil {
		return nil, err
	}
	return target, nil
}

func nextFocus(session *entity.Session, itemID int, field enum.ItemField) *entity.FocusTarget {
	item := session.FindItem(itemID)
	if item == nil {
		return nil
	}

	switch field {
	case enum.FieldName:
		if strings.TrimSpace(item.Name) != "" {
			return &entity.FocusTarget{ItemID: itemID, Field: enum.FieldQuantity}
		}
	case enum.FieldQuantity:
		if strings.TrimSpace(item.Quantity) != "" {
			return &entity.FocusTarget{ItemID: itemID, Field: enum.FieldPrice}
		}
	case enum.FieldPrice:
		if strings.TrimSpace(item.Price) == "" {
			return nil
		}
		if session.IsLastItem(itemID) {
			if item.Complete() {
				inserted := session.InsertItem()
				return &entity.FocusTarget{ItemID: inserted.ID, Field: enum.FieldName}
			}
			return nil
		}
		if next := session.NextItemAfter(itemID); next != nil {
			return &entity.FocusTarget{ItemID: next.ID, Field: enum.FieldName}
		}
	}
	return nil
}
