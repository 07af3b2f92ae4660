package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Sami-Mannila/webscraper/domain"
	"github.com/Sami-Mannila/webscraper/models"
)

// DBRepository is the optional relational sink: all records of a run are
// batch-inserted into a single listings table.
type DBRepository struct {
	db        *gorm.DB
	batchSize int
}

func NewDBRepository(db *gorm.DB, batchSize int) *DBRepository {
	if batchSize <= 0 {
		batchSize = 100 // Default
	}
	return &DBRepository{
		db:        db,
		batchSize: batchSize,
	}
}

func (r *DBRepository) Write(properties []domain.Property) error {
	listings := make([]models.Listing, 0, len(properties))
	for _, p := range properties {
		listings = append(listings, models.FromProperty(p))
	}

	if err := r.db.CreateInBatches(listings, r.batchSize).Error; err != nil {
		return fmt.Errorf("failed to insert listings: %w", err)
	}
	return nil
}
