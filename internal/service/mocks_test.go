package service

import (
	"github.com/carmarket-mw/carmarket-backend/internal/domain"
	"github.com/carmarket-mw/carmarket-backend/internal/query"
	"github.com/carmarket-mw/carmarket-backend/internal/repository"
	"github.com/stretchr/testify/mock"
)

// --- Mock CarRepository ---

type mockCarRepo struct {
	mock.Mock
}

var _ repository.CarRepository = (*mockCarRepo)(nil)

func (m *mockCarRepo) Find(clause query.Clause, orders []query.Order, offset, limit int) ([]*domain.Car, int64, error) {
	args := m.Called(clause, orders, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Car), args.Get(1).(int64), args.Error(2)
}

func (m *mockCarRepo) FindByID(id string) (*domain.Car, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func (m *mockCarRepo) FindSimilar(car *domain.Car, limit int) ([]*domain.Car, error) {
	args := m.Called(car, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Car), args.Error(1)
}

func (m *mockCarRepo) Exists(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *mockCarRepo) IncrementViewCount(id string) error {
	return m.Called(id).Error(0)
}

func (m *mockCarRepo) IncrementLikeCount(id string) error {
	return m.Called(id).Error(0)
}

func (m *mockCarRepo) DecrementLikeCount(id string) error {
	return m.Called(id).Error(0)
}

func (m *mockCarRepo) Stats() (*domain.StatsResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatsResponse), args.Error(1)
}

// --- Mock FavoriteRepository ---

type mockFavoriteRepo struct {
	mock.Mock
}

var _ repository.FavoriteRepository = (*mockFavoriteRepo)(nil)

func (m *mockFavoriteRepo) Has(userID, carID string) (bool, error) {
	args := m.Called(userID, carID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFavoriteRepo) Create(userID, carID string) error {
	return m.Called(userID, carID).Error(0)
}

func (m *mockFavoriteRepo) Delete(userID, carID string) error {
	return m.Called(userID, carID).Error(0)
}

func (m *mockFavoriteRepo) ListByUser(userID string, offset, limit int) ([]*domain.CarFavorite, int64, error) {
	args := m.Called(userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.CarFavorite), args.Get(1).(int64), args.Error(2)
}

func (m *mockFavoriteRepo) ReconcileLikeCounts() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
