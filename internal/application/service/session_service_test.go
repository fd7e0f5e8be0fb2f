package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/narmadatraders/billing-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSessionService() *SessionService {
	return NewSessionService(SessionServiceConfig{TTL: time.Hour, CleanupInterval: time.Hour})
}

func TestSessionService_CreateStartsWithOneBlankRow(t *testing.T) {
	svc := testSessionService()

	session := svc.Create()
	require.Len(t, session.Items, 1)
	assert.Equal(t, 1, session.Items[0].ID)
	assert.Empty(t, session.Items[0].Name)
	assert.False(t, session.TotalValid)
	assert.Equal(t, 1, svc.Count())
}

func TestSessionService_GetUnknownSession(t *testing.T) {
	_, err := testSessionService().Get(uuid.New())
	assert.Error(t, err)
}

func TestSessionService_Delete(t *testing.T) {
	svc := testSessionService()
	session := svc.Create()

	require.NoError(t, svc.Delete(session.ID))
	assert.Zero(t, svc.Count())
	assert.Error(t, svc.Delete(session.ID))
}

func TestSessionService_UpdateHeader(t *testing.T) {
	svc := testSessionService()
	session := svc.Create()

	got, err := svc.UpdateHeader(session.ID, "Ramesh", "Suresh")
	require.NoError(t, err)
	assert.Equal(t, "Ramesh", got.CustomerName)
	assert.Equal(t, "Suresh", got.HasteName)
}

func TestSessionService_InsertItemRequestsFocus(t *testing.T) {
	svc := testSessionService()
	session := svc.Create()

	item, err := svc.InsertItem(session.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, item.ID)

	focus, err := svc.ClaimPendingFocus(session.ID)
	require.NoError(t, err)
	require.NotNil(t, focus)
	assert.Equal(t, item.ID, focus.ItemID)
	assert.Equal(t, enum.FieldName, focus.Field)

	// The slot is single-use.
	focus, err = svc.ClaimPendingFocus(session.ID)
	require.NoError(t, err)
	assert.Nil(t, focus)
}

func TestSessionService_UpdateItemFieldDerivesTotal(t *testing.T) {
	svc := testSessionService()
	session := svc.Create()
	itemID := session.Items[0].ID

	_, err := svc.UpdateItemField(session.ID, itemID, enum.FieldQuantity, "2")
	require.NoError(t, err)
	got, err := svc.UpdateItemField(session.ID, itemID, enum.FieldPrice, "150.00")
	require.NoError(t, err)

	assert.Equal(t, "300.00", got.Items[0].Total)
	assert.Equal(t, "00", got.Items[0].Decimal)
}

func TestSessionService_RecalculateTotal(t *testing.T) {
	svc := testSessionService()
	session := svc.Create()
	itemID := session.Items[0].ID

	_, err := svc.UpdateItemField(session.ID, itemID, enum.FieldQuantity, "2")
	require.NoError(t, err)
	_, err = svc.UpdateItemField(session.ID, itemID, enum.FieldPrice, "150.00")
	require.NoError(t, err)

	got, err := svc.RecalculateTotal(session.ID)
	require.NoError(t, err)
	assert.Equal(t, "300.00", got.GrandTotal)
	assert.True(t, got.TotalValid)
	assert.True(t, got.ShowTotal)
}

func TestSessionService_RecalculateTotalAllBlank(t *testing.T) {
	svc := testSessionService()
	session := svc.Create()

	got, err := svc.RecalculateTotal(session.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.00", got.GrandTotal)
	assert.True(t, got.TotalValid)
	assert.False(t, got.ShowTotal)
}

func TestSessionService_StructuralMutationInvalidatesTotal(t *testing.T) {
	svc := testSessionService()
	session := svc.Create()

	_, err := svc.RecalculateTotal(session.ID)
	require.NoError(t, err)

	_, err = svc.InsertItem(session.ID)
	require.NoError(t, err)
	got, err := svc.Get(session.ID)
	require.NoError(t, err)
	assert.False(t, got.TotalValid, "inserting a row stales the total")

	_, err = svc.RecalculateTotal(session.ID)
	require.NoError(t, err)
	got, err = svc.RemoveItem(session.ID, 2)
	require.NoError(t, err)
	assert.False(t, got.TotalValid, "removing a row stales the total")
}

func TestSessionService_RemoveSoleRowClearsInPlace(t *testing.T) {
	svc := testSessionService()
	session := svc.Create()
	itemID := session.Items[0].ID

	_, err := svc.UpdateItemField(session.ID, itemID, enum.FieldName, "Chair")
	require.NoError(t, err)

	got, err := svc.RemoveItem(session.ID, itemID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, itemID, got.Items[0].ID)
	assert.Empty(t, got.Items[0].Name)
}

func TestSessionService_SnapshotIsolation(t *testing.T) {
	svc := testSessionService()
	session := svc.Create()
	itemID := session.Items[0].ID

	snap, err := svc.Get(session.ID)
	require.NoError(t, err)
	snap.Items[0].Name = "mutated"

	got, err := svc.Get(session.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Items[0].Name, "callers cannot reach the live row list")

	_, err = svc.UpdateItemField(session.ID, itemID, enum.FieldName, "Chair")
	require.NoError(t, err)
	assert.Equal(t, "mutated", snap.Items[0].Name, "snapshots do not track later edits")
}

func TestSessionService_CleanupReapsIdleSessions(t *testing.T) {
	svc := NewSessionService(SessionServiceConfig{TTL: time.Nanosecond, CleanupInterval: time.Hour})
	svc.Create()

	time.Sleep(time.Millisecond)
	svc.cleanup()
	assert.Zero(t, svc.Count())
}
