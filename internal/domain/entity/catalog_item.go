package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogItem is one entry of the bilingual item catalog: a pair of
// equivalent names, English for typing convenience and Marathi as the
// canonical display form. The catalog is read-only reference data; Position
// preserves its natural order.
type CatalogItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	English  string    `gorm:"size:255;not null" json:"english"`
	Marathi  string    `gorm:"size:255;not null" json:"marathi"`
	Position int       `gorm:"not null;index" json:"position"`
}

// BeforeCreate generates a UUID before inserting a catalog item
func (ci *CatalogItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CatalogItem model
func (CatalogItem) TableName() string {
	return "catalog_items"
}

// DefaultCatalog is the built-in item catalog, used to seed the database and
// as a fallback when no database is reachable.
func DefaultCatalog() []CatalogItem {
	names := []struct {
		english string
		marathi string
	}{
		{"Chair", "खुर्ची"},
		{"Table", "टेबल"},
		{"Cupboard", "कपाट"},
		{"Fan", "पंखा"},
		{"Door", "दरवाजा"},
		{"Window", "खिडकी"},
		{"Pipe", "पाईप"},
		{"Wire", "वायर"},
		{"Paint", "रंग"},
		{"Brush", "ब्रश"},
		{"Nails", "खिळे"},
		{"Hammer", "हातोडा"},
		{"Lock", "कुलूप"},
		{"Bucket", "बादली"},
		{"Rope", "दोरी"},
		{"Plywood", "प्लायवूड"},
		{"Glass", "काच"},
		{"Cement", "सिमेंट"},
		{"Sand", "वाळू"},
		{"Bricks", "विटा"},
		{"Sheet", "पत्रा"},
		{"Ladder", "शिडी"},
	}

	items := make([]CatalogItem, len(names))
	for i, n := range names {
		items[i] = CatalogItem{
			English:  n.english,
			Marathi:  n.marathi,
			Position: i,
		}
	}
	return items
}
