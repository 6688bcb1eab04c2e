package migration

import (
	"github.com/carmarket-mw/carmarket-backend/internal/domain"
	"gorm.io/gorm"
)

// Run creates or updates the marketplace schema. The unique index on
// car_favorites (user_id, car_id) comes from the model tags and is what the
// favorite coordinator relies on for correctness.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Seller{},
		&domain.Car{},
		&domain.CarImage{},
		&domain.CarFavorite{},
	)
}
