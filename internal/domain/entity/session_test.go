package entity

import (
	"testing"

	"github.com/narmadatraders/billing-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_StartsWithOneBlankRow(t *testing.T) {
	s := NewSession()
	require.Len(t, s.Items, 1)
	assert.Equal(t, 1, s.Items[0].ID)
	assert.False(t, s.Items[0].ManualTotal)
}

func TestSession_InsertAssignsMonotonicIDs(t *testing.T) {
	s := NewSession()
	a := s.InsertItem()
	b := s.InsertItem()
	assert.Equal(t, 2, a.ID)
	assert.Equal(t, 3, b.ID)

	// Removing a row must not allow its id to be reused.
	s.RemoveItem(3)
	c := s.InsertItem()
	assert.Equal(t, 4, c.ID)
}

func TestSession_RemoveKeepsOrder(t *testing.T) {
	s := NewSession()
	s.InsertItem()
	s.InsertItem() // ids 1, 2, 3

	s.RemoveItem(2)
	require.Len(t, s.Items, 2)
	assert.Equal(t, 1, s.Items[0].ID)
	assert.Equal(t, 3, s.Items[1].ID)
}

func TestSession_RemoveSoleRowClearsInPlace(t *testing.T) {
	s := NewSession()
	s.UpdateField(1, enum.FieldName, "Chair")
	s.UpdateField(1, enum.FieldTotal, "50")

	s.RemoveItem(1)
	require.Len(t, s.Items, 1, "the row list is never empty")
	assert.Equal(t, 1, s.Items[0].ID, "clearing keeps the row's id")
	assert.Equal(t, "", s.Items[0].Name)
	assert.False(t, s.Items[0].ManualTotal)
}

func TestSession_RemoveUnknownIDIsNoop(t *testing.T) {
	s := NewSession()
	s.InsertItem()
	s.RemoveItem(99)
	assert.Len(t, s.Items, 2)
}

func TestSession_UpdateUnknownIDIsNoop(t *testing.T) {
	s := NewSession()
	assert.Nil(t, s.UpdateField(99, enum.FieldName, "x"))
	assert.Equal(t, "", s.Items[0].Name)
}

func TestSession_StructuralMutationsInvalidateTotal(t *testing.T) {
	s := NewSession()
	s.TotalValid = true
	s.InsertItem()
	assert.False(t, s.TotalValid)

	s.TotalValid = true
	s.RemoveItem(2)
	assert.False(t, s.TotalValid)
}

func TestSession_ComputeGrandTotal(t *testing.T) {
	s := NewSession()
	s.InsertItem()
	s.InsertItem()
	s.UpdateField(1, enum.FieldTotal, "10.50")
	s.UpdateField(2, enum.FieldTotal, "")
	s.UpdateField(3, enum.FieldTotal, "5.00")

	assert.Equal(t, "15.5", s.ComputeGrandTotal().String())
}

func TestSession_ComputeGrandTotal_AllBlank(t *testing.T) {
	s := NewSession()
	assert.True(t, s.ComputeGrandTotal().IsZero())
}
