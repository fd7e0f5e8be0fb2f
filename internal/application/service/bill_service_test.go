package service

import (
	"testing"

	"github.com/narmadatraders/billing-api/internal/domain/entity"
	"github.com/narmadatraders/billing-api/internal/domain/enum"
	"github.com/narmadatraders/billing-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBillService() *BillService {
	return NewBillService(testCatalog(), 5)
}

func makeItem(t *testing.T, id int, name, quantity, price string) *entity.LineItem {
	t.Helper()
	item := entity.NewLineItem(id)
	item.SetField(enum.FieldName, name)
	item.SetField(enum.FieldQuantity, quantity)
	item.SetField(enum.FieldPrice, price)
	return item
}

func TestBillService_CompileResolvesAndSplits(t *testing.T) {
	items := []*entity.LineItem{makeItem(t, 1, "Chair", "2", "150.00")}

	doc, err := testBillService().Compile(items, "Ramesh", "Suresh", decimal.RequireFromString("300.00"))
	require.NoError(t, err)

	assert.Equal(t, "Ramesh", doc.CustomerName)
	assert.Equal(t, "Suresh", doc.HasteName)
	assert.Equal(t, "300.00", doc.GrandTotal)

	row := doc.Rows[0]
	assert.Equal(t, 1, row.Index)
	assert.Equal(t, "खुर्ची", row.Name)
	assert.Equal(t, "2", row.Quantity)
	assert.Equal(t, "150.00", row.Price)
	assert.Equal(t, "300", row.Rupees)
	assert.Equal(t, "00", row.Paise)
	assert.False(t, row.Blank)
}

func TestBillService_CompileFractionalPaise(t *testing.T) {
	items := []*entity.LineItem{makeItem(t, 1, "Table", "3", "15.25")}

	doc, err := testBillService().Compile(items, "Ramesh", "", decimal.RequireFromString("45.75"))
	require.NoError(t, err)

	row := doc.Rows[0]
	assert.Equal(t, "45", row.Rupees)
	assert.Equal(t, "75", row.Paise)
}

func TestBillService_CompilePadsToMinimumRows(t *testing.T) {
	items := []*entity.LineItem{
		makeItem(t, 1, "Chair", "1", "100"),
		makeItem(t, 2, "Table", "1", "200"),
	}

	doc, err := testBillService().Compile(items, "Ramesh", "", decimal.RequireFromString("300"))
	require.NoError(t, err)
	require.Len(t, doc.Rows, 5)

	for i, row := range doc.Rows {
		assert.Equal(t, i+1, row.Index)
		assert.Equal(t, i >= 2, row.Blank)
	}
	assert.Len(t, doc.ItemRows(), 2)
}

func TestBillService_CompileSkipsIncompleteRows(t *testing.T) {
	blank := entity.NewLineItem(2)
	nameOnly := entity.NewLineItem(3)
	nameOnly.SetField(enum.FieldName, "Table")

	items := []*entity.LineItem{
		makeItem(t, 1, "Chair", "1", "100"),
		blank,
		nameOnly,
		makeItem(t, 4, "Cupboard", "1", "50"),
	}

	doc, err := testBillService().Compile(items, "Ramesh", "", decimal.RequireFromString("150"))
	require.NoError(t, err)

	rows := doc.ItemRows()
	require.Len(t, rows, 2)
	assert.Equal(t, "खुर्ची", rows[0].Name)
	assert.Equal(t, 1, rows[0].Index)
	assert.Equal(t, "कपाट", rows[1].Name)
	assert.Equal(t, 2, rows[1].Index, "indices are renumbered after filtering")
}

func TestBillService_CompileUnknownNamePassesThrough(t *testing.T) {
	items := []*entity.LineItem{makeItem(t, 1, "custom widget", "1", "10")}

	doc, err := testBillService().Compile(items, "Ramesh", "", decimal.RequireFromString("10"))
	require.NoError(t, err)
	assert.Equal(t, "custom widget", doc.Rows[0].Name)
}

func TestBillService_CompileBlankCustomerName(t *testing.T) {
	items := []*entity.LineItem{makeItem(t, 1, "Chair", "1", "100")}

	_, err := testBillService().Compile(items, "   ", "", decimal.RequireFromString("100"))
	assert.ErrorIs(t, err, apperror.ErrBlankCustomerName)
}

func TestBillService_CompileNoBillableItems(t *testing.T) {
	_, err := testBillService().Compile([]*entity.LineItem{entity.NewLineItem(1)}, "Ramesh", "", decimal.Zero)
	assert.ErrorIs(t, err, apperror.ErrNoBillableItems)
}

func TestBillService_CompileForExportRejectsNonPositiveTotal(t *testing.T) {
	items := []*entity.LineItem{makeItem(t, 1, "Chair", "1", "100")}

	_, err := testBillService().CompileForExport(items, "Ramesh", "", decimal.Zero)
	assert.ErrorIs(t, err, apperror.ErrTotalNotPositive)
}

func TestBillService_CompileForExportHappyPath(t *testing.T) {
	items := []*entity.LineItem{makeItem(t, 1, "Chair", "2", "150.00")}

	doc, err := testBillService().CompileForExport(items, "Ramesh", "", decimal.RequireFromString("300.00"))
	require.NoError(t, err)
	assert.Equal(t, "300.00", doc.GrandTotal)
}
