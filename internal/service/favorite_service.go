package service

import (
	"context"

	"github.com/carmarket-mw/carmarket-backend/internal/common"
	"github.com/carmarket-mw/carmarket-backend/internal/domain"
	"github.com/carmarket-mw/carmarket-backend/internal/repository"
	"github.com/carmarket-mw/carmarket-backend/pkg/cache"
	"github.com/carmarket-mw/carmarket-backend/pkg/logger"
)

// FavoriteService coordinates the favorite relation and the denormalized like
// counter. The relation row is authoritative; the counter is advisory and is
// written after the relation, sequentially and without a transaction, so it
// can drift under partial failure.
type FavoriteService interface {
	Check(userID, carID string) (bool, error)
	Add(userID, carID string) error
	Remove(userID, carID string) error
	ListByUser(userID string, page, limit int) ([]domain.CarResponse, common.Pagination, error)
	Reconcile() (int64, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	carRepo      repository.CarRepository
	cache        cache.Service
}

// NewFavoriteService creates a new FavoriteService
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, carRepo repository.CarRepository, cacheSvc cache.Service) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		carRepo:      carRepo,
		cache:        cacheSvc,
	}
}

// Check reports the favorite state. A signed-out caller is simply not
// favorited; that is not an error.
func (s *favoriteService) Check(userID, carID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	return s.favoriteRepo.Has(userID, carID)
}

// Add transitions (user, car) to favorited. A duplicate toggle from a stale
// client comes back as ErrAlreadyFavorited so the caller can reconcile its
// local state instead of retrying.
func (s *favoriteService) Add(userID, carID string) error {
	if userID == "" {
		return common.ErrUnauthorized
	}

	exists, err := s.carRepo.Exists(carID)
	if err != nil {
		return err
	}
	if !exists {
		return common.ErrCarNotFound
	}

	if err := s.favoriteRepo.Create(userID, carID); err != nil {
		return err
	}

	// The relation write has committed at this point. A counter failure is
	// logged, not surfaced: like_count is only an approximate signal.
	if err := s.carRepo.IncrementLikeCount(carID); err != nil {
		logger.Warn("like count increment failed for car %s: %v", carID, err)
	}
	s.invalidateCar(carID)
	return nil
}

// Remove transitions (user, car) to not-favorited. Removing a relation that
// does not exist reports ErrNotFavorited, again for client-side
// reconciliation.
func (s *favoriteService) Remove(userID, carID string) error {
	if userID == "" {
		return common.ErrUnauthorized
	}

	if err := s.favoriteRepo.Delete(userID, carID); err != nil {
		return err
	}

	if err := s.carRepo.DecrementLikeCount(carID); err != nil {
		logger.Warn("like count decrement failed for car %s: %v", carID, err)
	}
	s.invalidateCar(carID)
	return nil
}

func (s *favoriteService) ListByUser(userID string, page, limit int) ([]domain.CarResponse, common.Pagination, error) {
	if userID == "" {
		return nil, common.Pagination{}, common.ErrUnauthorized
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	favorites, total, err := s.favoriteRepo.ListByUser(userID, (page-1)*limit, limit)
	if err != nil {
		return nil, common.Pagination{}, err
	}

	cars := make([]domain.CarResponse, 0, len(favorites))
	for _, fav := range favorites {
		if fav.Car == nil {
			continue
		}
		cars = append(cars, fav.Car.ToResponse())
	}
	return cars, common.NewPagination(page, limit, total), nil
}

// Reconcile recomputes every like counter from the relation table
func (s *favoriteService) Reconcile() (int64, error) {
	fixed, err := s.favoriteRepo.ReconcileLikeCounts()
	if err != nil {
		return 0, err
	}
	if fixed > 0 {
		logger.Info("reconciled like counters on %d cars", fixed)
	}
	return fixed, nil
}

func (s *favoriteService) invalidateCar(carID string) {
	if s.cache == nil || !s.cache.IsAvailable() {
		return
	}
	if err := s.cache.InvalidateCar(context.Background(), carID); err != nil {
		logger.Warn("car cache invalidation failed for %s: %v", carID, err)
	}
}
