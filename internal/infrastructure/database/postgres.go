package database

import (
	"fmt"
	"log"
	"os"

	"github.com/narmadatraders/billing-api/internal/config"
	"github.com/narmadatraders/billing-api/internal/domain/entity"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(&entity.CatalogItem{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// catalogFile is the YAML shape of an external catalog file: an ordered list
// of bilingual name pairs.
type catalogFile struct {
	Items []struct {
		English string `yaml:"english"`
		Marathi string `yaml:"marathi"`
	} `yaml:"items"`
}

// LoadCatalogFile reads a YAML catalog file into ordered catalog items.
func LoadCatalogFile(path string) ([]entity.CatalogItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	items := make([]entity.CatalogItem, len(cf.Items))
	for i, it := range cf.Items {
		items[i] = entity.CatalogItem{
			English:  it.English,
			Marathi:  it.Marathi,
			Position: i,
		}
	}
	return items, nil
}

// SeedCatalog seeds the catalog table when it is empty. The catalog comes
// from the configured YAML file when one is set, otherwise from the built-in
// list.
func SeedCatalog(db *gorm.DB, cfg *config.CatalogConfig) error {
	var count int64
	if err := db.Model(&entity.CatalogItem{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count catalog items: %w", err)
	}
	if count > 0 {
		return nil
	}

	items := entity.DefaultCatalog()
	if cfg.Path != "" {
		loaded, err := LoadCatalogFile(cfg.Path)
		if err != nil {
			log.Printf("Warning: %v, seeding built-in catalog instead", err)
		} else {
			items = loaded
		}
	}

	log.Printf("Seeding catalog with %d items...", len(items))
	if err := db.Create(&items).Error; err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	return nil
}
