package service

import (
	"strings"
	"time"

	"github.com/narmadatraders/billing-api/internal/domain/entity"
	"github.com/narmadatraders/billing-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// BillService compiles the live row list into a finalized BillDocument for
// the print view, PDF export and thermal printer.
type BillService struct {
	catalogService *CatalogService
	minRows        int
}

// NewBillService creates a new bill compiler. minRows is the minimum number
// of presentation rows a bill is padded to.
func NewBillService(catalogService *CatalogService, minRows int) *BillService {
	if minRows <= 0 {
		minRows = 5
	}
	return &BillService{
		catalogService: catalogService,
		minRows:        minRows,
	}
}

// Compile transforms the rows plus header metadata into an immutable bill.
//
// Rows without both a name and a total are dropped; surviving names are
// canonicalized through the catalog, and each total is split into the integer
// rupee part and the two-digit paise part. The row set is padded with blank
// rows up to the minimum display count, indices continuing.
//
// A blank customer name or an empty surviving row set is a user-correctable
// validation error, not a fault.
func (s *BillService) Compile(items []*entity.LineItem, customerName, hasteName string, grandTotal decimal.Decimal) (*entity.BillDocument, error) {
	if strings.TrimSpace(customerName) == "" {
		return nil, apperror.ErrBlankCustomerName
	}

	var rows []entity.BillRow
	for _, item := range items {
		if item.Name == "" || item.Total == "" {
			continue
		}

		paise := item.Decimal
		if paise == "" {
			paise = "00"
		}

		rows = append(rows, entity.BillRow{
			Index:    len(rows) + 1,
			Name:     s.catalogService.Resolve(item.Name),
			Quantity: item.Quantity,
			Price:    item.Price,
			Rupees:   item.TotalAmount().Floor().String(),
			Paise:    paise,
		})
	}

	if len(rows) == 0 {
		return nil, apperror.ErrNoBillableItems
	}

	for len(rows) < s.minRows {
		rows = append(rows, entity.BillRow{
			Index: len(rows) + 1,
			Blank: true,
		})
	}

	return &entity.BillDocument{
		CustomerName: customerName,
		HasteName:    hasteName,
		Rows:         rows,
		GrandTotal:   grandTotal.StringFixed(2),
		GeneratedAt:  time.Now(),
	}, nil
}

// CompileForExport applies the stricter export preconditions: besides the
// compile validations, the grand total must be positive.
func (s *BillService) CompileForExport(items []*entity.LineItem, customerName, hasteName string, grandTotal decimal.Decimal) (*entity.BillDocument, error) {
	if !grandTotal.IsPositive() {
		return nil, apperror.ErrTotalNotPositive
	}
	return s.Compile(items, customerName, hasteName, grandTotal)
}
