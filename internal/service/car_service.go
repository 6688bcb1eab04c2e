package service

import (
	"context"
	"time"

	"github.com/carmarket-mw/carmarket-backend/internal/common"
	"github.com/carmarket-mw/carmarket-backend/internal/domain"
	"github.com/carmarket-mw/carmarket-backend/internal/query"
	"github.com/carmarket-mw/carmarket-backend/internal/repository"
	"github.com/carmarket-mw/carmarket-backend/pkg/cache"
	"github.com/carmarket-mw/carmarket-backend/pkg/logger"
)

// CarService defines the interface for listing business logic
type CarService interface {
	List(f query.Filter) ([]domain.CarResponse, common.Pagination, error)
	Get(id string) (*domain.CarResponse, error)
	ListSimilar(id string, limit int) ([]domain.CarResponse, error)
	RecordView(id string) error
	Stats() (*domain.StatsResponse, error)
}

// ListingPage is the cached shape of one listing page
type ListingPage struct {
	Cars       []domain.CarResponse `json:"cars"`
	Pagination common.Pagination    `json:"pagination"`
}

type carService struct {
	carRepo repository.CarRepository
	cache   cache.Service
}

// NewCarService creates a new CarService. cache may be nil when Redis is not
// configured; every cache interaction is best-effort.
func NewCarService(carRepo repository.CarRepository, cacheSvc cache.Service) CarService {
	return &carService{carRepo: carRepo, cache: cacheSvc}
}

// List compiles the filter into a predicate and sort descriptor, queries one
// page and serializes it. Identical filters served within the cache TTL skip
// the database entirely.
func (s *carService) List(f query.Filter) ([]domain.CarResponse, common.Pagination, error) {
	cacheKey := f.CacheKey()
	if s.cacheAvailable() {
		var page ListingPage
		if err := s.cache.GetListing(context.Background(), cacheKey, &page); err == nil {
			return page.Cars, page.Pagination, nil
		}
	}

	clause, orders := query.Compile(f, time.Now())
	offset := (f.Page - 1) * f.Limit

	cars, total, err := s.carRepo.Find(clause, orders, offset, f.Limit)
	if err != nil {
		return nil, common.Pagination{}, err
	}

	responses := domain.ToResponses(cars)
	pagination := common.NewPagination(f.Page, f.Limit, total)

	if s.cacheAvailable() {
		page := ListingPage{Cars: responses, Pagination: pagination}
		if err := s.cache.SetListing(context.Background(), cacheKey, page); err != nil {
			logger.Warn("listing cache write failed: %v", err)
		}
	}

	return responses, pagination, nil
}

func (s *carService) Get(id string) (*domain.CarResponse, error) {
	if s.cacheAvailable() {
		var cached domain.CarResponse
		if err := s.cache.GetCar(context.Background(), id, &cached); err == nil {
			return &cached, nil
		}
	}

	car, err := s.carRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	resp := car.ToResponse()
	if s.cacheAvailable() {
		if err := s.cache.SetCar(context.Background(), id, resp); err != nil {
			logger.Warn("car cache write failed: %v", err)
		}
	}
	return &resp, nil
}

func (s *carService) ListSimilar(id string, limit int) ([]domain.CarResponse, error) {
	if limit < 1 || limit > query.MaxLimit {
		limit = 4
	}
	car, err := s.carRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	similar, err := s.carRepo.FindSimilar(car, limit)
	if err != nil {
		return nil, err
	}
	return domain.ToResponses(similar), nil
}

// RecordView bumps the view counter. The existence check is synchronous so a
// bogus car id still fails the request; the increment itself runs detached
// and its errors are logged and swallowed. View tracking must never slow down
// or fail a page load.
func (s *carService) RecordView(id string) error {
	exists, err := s.carRepo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return common.ErrCarNotFound
	}

	go func() {
		if err := s.carRepo.IncrementViewCount(id); err != nil {
			logger.Warn("view count increment failed for car %s: %v", id, err)
		}
		if s.cacheAvailable() {
			_ = s.cache.InvalidateCar(context.Background(), id)
		}
	}()
	return nil
}

func (s *carService) Stats() (*domain.StatsResponse, error) {
	if s.cacheAvailable() {
		var cached domain.StatsResponse
		if err := s.cache.Get(context.Background(), cache.PrefixStats, &cached); err == nil {
			return &cached, nil
		}
	}

	stats, err := s.carRepo.Stats()
	if err != nil {
		return nil, err
	}

	if s.cacheAvailable() {
		if err := s.cache.Set(context.Background(), cache.PrefixStats, stats, cache.TTLStats); err != nil {
			logger.Warn("stats cache write failed: %v", err)
		}
	}
	return stats, nil
}

func (s *carService) cacheAvailable() bool {
	return s.cache != nil && s.cache.IsAvailable()
}
