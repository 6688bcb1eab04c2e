package repository

import (
	"errors"

	"github.com/carmarket-mw/carmarket-backend/internal/common"
	"github.com/carmarket-mw/carmarket-backend/internal/domain"
	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// FavoriteRepository manages the (user, car) favorite relation. The unique
// index on (user_id, car_id) is the only concurrency control: a racing
// duplicate insert surfaces as ErrAlreadyFavorited, never as a second row.
type FavoriteRepository interface {
	Has(userID, carID string) (bool, error)
	Create(userID, carID string) error
	Delete(userID, carID string) error
	ListByUser(userID string, offset, limit int) ([]*domain.CarFavorite, int64, error)
	ReconcileLikeCounts() (int64, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new FavoriteRepository
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Has(userID, carID string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.CarFavorite{}).
		Where("user_id = ? AND car_id = ?", userID, carID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *favoriteRepository) Create(userID, carID string) error {
	fav := &domain.CarFavorite{UserID: userID, CarID: carID}
	if err := r.db.Create(fav).Error; err != nil {
		if isDuplicateKey(err) {
			return common.ErrAlreadyFavorited
		}
		return err
	}
	return nil
}

func (r *favoriteRepository) Delete(userID, carID string) error {
	result := r.db.
		Where("user_id = ? AND car_id = ?", userID, carID).
		Delete(&domain.CarFavorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFavorited
	}
	return nil
}

func (r *favoriteRepository) ListByUser(userID string, offset, limit int) ([]*domain.CarFavorite, int64, error) {
	var total int64
	base := r.db.Model(&domain.CarFavorite{}).Where("user_id = ?", userID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var favorites []*domain.CarFavorite
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC, id ASC").
		Preload("Car").
		Preload("Car.Images", "is_primary = ?", true).
		Preload("Car.Seller").
		Offset(offset).
		Limit(limit).
		Find(&favorites).Error
	if err != nil {
		return nil, 0, err
	}
	return favorites, total, nil
}

// ReconcileLikeCounts rewrites every like_count from the relation table and
// returns how many rows changed. The counter is only an approximate
// popularity signal; this is an operator tool, not part of the toggle path.
func (r *favoriteRepository) ReconcileLikeCounts() (int64, error) {
	result := r.db.Exec(`
		UPDATE cars c
		SET like_count = (
			SELECT COUNT(*) FROM car_favorites f WHERE f.car_id = c.id
		)
		WHERE like_count != (
			SELECT COUNT(*) FROM car_favorites f WHERE f.car_id = c.id
		)`)
	return result.RowsAffected, result.Error
}

// isDuplicateKey detects a unique-constraint violation from either GORM's
// translated error or the raw MySQL error code.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysqldriver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
