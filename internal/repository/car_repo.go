package repository

import (
	"errors"

	"github.com/carmarket-mw/carmarket-backend/internal/common"
	"github.com/carmarket-mw/carmarket-backend/internal/domain"
	"github.com/carmarket-mw/carmarket-backend/internal/query"
	"gorm.io/gorm"
)

// CarRepository defines car data access. Listing queries take the compiled
// predicate/sort description so the repository stays a thin translation
// layer.
type CarRepository interface {
	Find(clause query.Clause, orders []query.Order, offset, limit int) ([]*domain.Car, int64, error)
	FindByID(id string) (*domain.Car, error)
	FindSimilar(car *domain.Car, limit int) ([]*domain.Car, error)
	Exists(id string) (bool, error)
	IncrementViewCount(id string) error
	IncrementLikeCount(id string) error
	DecrementLikeCount(id string) error
	Stats() (*domain.StatsResponse, error)
}

type carRepository struct {
	db *gorm.DB
}

// NewCarRepository creates a new CarRepository
func NewCarRepository(db *gorm.DB) CarRepository {
	return &carRepository{db: db}
}

// Find returns one listing page plus the total match count. Cards only need
// the primary image, so other images are not loaded here.
func (r *carRepository) Find(clause query.Clause, orders []query.Order, offset, limit int) ([]*domain.Car, int64, error) {
	var total int64
	base := query.ApplyClause(r.db.Model(&domain.Car{}), clause)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var cars []*domain.Car
	q := query.ApplyClause(r.db.Model(&domain.Car{}), clause)
	q = query.ApplyOrder(q, orders).
		Preload("Seller").
		Preload("Images", "is_primary = ?", true).
		Offset(offset).
		Limit(limit)
	if err := q.Find(&cars).Error; err != nil {
		return nil, 0, err
	}
	return cars, total, nil
}

func (r *carRepository) FindByID(id string) (*domain.Car, error) {
	var car domain.Car
	err := r.db.
		Preload("Seller").
		Preload("Images").
		Where("id = ?", id).
		First(&car).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrCarNotFound
		}
		return nil, err
	}
	return &car, nil
}

// FindSimilar returns active cars of the same make within ±30% of the price,
// excluding the car itself.
func (r *carRepository) FindSimilar(car *domain.Car, limit int) ([]*domain.Car, error) {
	price := car.Price.InexactFloat64()
	var cars []*domain.Car
	err := r.db.
		Where("make = ? AND id != ? AND status = ?", car.Make, car.ID, domain.StatusActive).
		Where("price BETWEEN ? AND ?", price*0.7, price*1.3).
		Order("created_at DESC, id ASC").
		Preload("Images", "is_primary = ?", true).
		Limit(limit).
		Find(&cars).Error
	return cars, err
}

func (r *carRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Car{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *carRepository) IncrementViewCount(id string) error {
	result := r.db.Model(&domain.Car{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrCarNotFound
	}
	return nil
}

func (r *carRepository) IncrementLikeCount(id string) error {
	return r.db.Model(&domain.Car{}).Where("id = ?", id).
		UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error
}

func (r *carRepository) DecrementLikeCount(id string) error {
	return r.db.Model(&domain.Car{}).Where("id = ?", id).
		UpdateColumn("like_count", gorm.Expr("GREATEST(like_count - 1, 0)")).Error
}

func (r *carRepository) Stats() (*domain.StatsResponse, error) {
	var stats domain.StatsResponse

	active := r.db.Model(&domain.Car{}).Where("status = ?", domain.StatusActive)
	if err := active.Count(&stats.TotalCars).Error; err != nil {
		return nil, err
	}

	var avg struct {
		AveragePrice float64 `gorm:"column:average_price"`
	}
	if err := r.db.Model(&domain.Car{}).
		Select("COALESCE(AVG(price), 0) AS average_price").
		Where("status = ?", domain.StatusActive).
		Scan(&avg).Error; err != nil {
		return nil, err
	}
	stats.AveragePrice = avg.AveragePrice

	if err := r.db.Model(&domain.Car{}).
		Where("status = ?", domain.StatusActive).
		Distinct("district").
		Count(&stats.DistrictCount).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&domain.Car{}).
		Where("status = ? AND featured = ?", domain.StatusActive, true).
		Count(&stats.FeaturedCars).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
