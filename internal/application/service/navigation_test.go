package service

import (
	"testing"

	"github.com/narmadatraders/billing-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitField_NameToQuantityToPrice(t *testing.T) {
	svc := testSessionService()
	session := svc.Create()
	itemID := session.Items[0].ID

	_, err := svc.UpdateItemField(session.ID, itemID, enum.FieldName, "Chair")
	require.NoError(t, err)
	target, err := svc.CommitField(session.ID, itemID, enum.FieldName)
	require.NoError(t, err)
	require.NotNil(t, target)
	assert.Equal(t, enum.FieldQuantity, target.Field)
	assert.Equal(t, itemID, target.ItemID)

	_, err = svc.UpdateItemField(session.ID, itemID, enum.FieldQuantity, "2")
	require.NoError(t, err)
	target, err = svc.CommitField(session.ID, itemID, enum.FieldQuantity)
	require.NoError(t, err)
	require.NotNil(t, target)
	assert.Equal(t, enum.FieldPrice, target.Field)
}

func TestCommitField_BlankFieldDoesNotAdvance(t *testing.T) {
	svc := testSessionService()
	session := svc.Create()
	itemID := session.Items[0].ID

	target, err := svc.CommitField(session.ID, itemID, enum.FieldName)
	require.NoError(t, err)
	assert.Nil(t, target)

	_, err = svc.UpdateItemField(session.ID, itemID, enum.FieldName, "   ")
	require.NoError(t, err)
	target, err = svc.CommitField(session.ID, itemID, enum.FieldName)
	require.NoError(t, err)
	assert.Nil(t, target, "whitespace counts as blank")
}

func TestCommitField_PriceOnCompleteLastRowAppends(t *testing.T) {
	svc := testSessionService()
	session := svc.Create()
	itemID := session.Items[0].ID

	for _, update := range []struct {
		field enum.ItemField
		value string
	}{
		{enum.FieldName, "Chair"},
		{enum.FieldQuantity, "2"},
		{enum.FieldPrice, "150.00"},
	} {
		_, err := svc.UpdateItemField(session.ID, itemID, update.field, update.value)
		require.NoError(t, err)
	}

	target, err := svc.CommitField(session.ID, itemID, enum.FieldPrice)
	require.NoError(t, err)
	require.NotNil(t, target)
	assert.Equal(t, 2, target.ItemID)
	assert.Equal(t, enum.FieldName, target.Field)

	got, err := svc.Get(session.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 2, "a new blank row was appended")
}

func TestCommitField_PriceOnIncompleteLastRowStays(t *testing.T) {
	svc := testSessionService()
	session := svc.Create()
	itemID := session.Items[0].ID

	// Price filled but name still blank: the row is not complete.
	_, err := svc.UpdateItemField(session.ID, itemID, enum.FieldPrice, "150.00")
	require.NoError(t, err)

	target, err := svc.CommitField(session.ID, itemID, enum.FieldPrice)
	require.NoError(t, err)
	assert.Nil(t, target)

	got, err := svc.Get(session.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
}

func TestCommitField_PriceOnEarlierRowMovesToNextName(t *testing.T) {
	svc := testSessionService()
	session := svc.Create()
	firstID := session.Items[0].ID

	second, err := svc.InsertItem(session.ID)
	require.NoError(t, err)
	_, err = svc.UpdateItemField(session.ID, firstID, enum.FieldPrice, "150.00")
	require.NoError(t, err)

	target, err := svc.CommitField(session.ID, firstID, enum.FieldPrice)
	require.NoError(t, err)
	require.NotNil(t, target)
	assert.Equal(t, second.ID, target.ItemID)
	assert.Equal(t, enum.FieldName, target.Field)
}

func TestCommitField_StaleRowIsIgnored(t *testing.T) {
	svc := testSessionService()
	session := svc.Create()

	target, err := svc.CommitField(session.ID, 99, enum.FieldName)
	require.NoError(t, err)
	assert.Nil(t, target)
}

func TestCommitField_LatestCommitWinsThePendingSlot(t *testing.T) {
	svc := testSessionService()
	session := svc.Create()
	itemID := session.Items[0].ID

	_, err := svc.UpdateItemField(session.ID, itemID, enum.FieldName, "Chair")
	require.NoError(t, err)
	_, err = svc.UpdateItemField(session.ID, itemID, enum.FieldQuantity, "2")
	require.NoError(t, err)

	_, err = svc.CommitField(session.ID, itemID, enum.FieldName)
	require.NoError(t, err)
	_, err = svc.CommitField(session.ID, itemID, enum.FieldQuantity)
	require.NoError(t, err)

	focus, err := svc.ClaimPendingFocus(session.ID)
	require.NoError(t, err)
	require.NotNil(t, focus)
	assert.Equal(t, enum.FieldPrice, focus.Field, "only the latest requested focus survives")
}
