package repository

import (
	"context"

	"github.com/narmadatraders/billing-api/internal/domain/entity"
)

// CatalogRepository defines the interface for catalog data access. The
// catalog is read-only reference data loaded once at startup; there are no
// write operations beyond seeding.
type CatalogRepository interface {
	ListAll(ctx context.Context) ([]entity.CatalogItem, error)
	Count(ctx context.Context) (int64, error)
}
