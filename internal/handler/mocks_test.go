package handler

import (
	"github.com/carmarket-mw/carmarket-backend/internal/common"
	"github.com/carmarket-mw/carmarket-backend/internal/domain"
	"github.com/carmarket-mw/carmarket-backend/internal/query"
	"github.com/carmarket-mw/carmarket-backend/internal/service"
	"github.com/stretchr/testify/mock"
)

type mockCarService struct {
	mock.Mock
}

var _ service.CarService = (*mockCarService)(nil)

func (m *mockCarService) List(f query.Filter) ([]domain.CarResponse, common.Pagination, error) {
	args := m.Called(f)
	if args.Get(0) == nil {
		return nil, args.Get(1).(common.Pagination), args.Error(2)
	}
	return args.Get(0).([]domain.CarResponse), args.Get(1).(common.Pagination), args.Error(2)
}

func (m *mockCarService) Get(id string) (*domain.CarResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CarResponse), args.Error(1)
}

func (m *mockCarService) ListSimilar(id string, limit int) ([]domain.CarResponse, error) {
	args := m.Called(id, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CarResponse), args.Error(1)
}

func (m *mockCarService) RecordView(id string) error {
	return m.Called(id).Error(0)
}

func (m *mockCarService) Stats() (*domain.StatsResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatsResponse), args.Error(1)
}

type mockFavoriteService struct {
	mock.Mock
}

var _ service.FavoriteService = (*mockFavoriteService)(nil)

func (m *mockFavoriteService) Check(userID, carID string) (bool, error) {
	args := m.Called(userID, carID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFavoriteService) Add(userID, carID string) error {
	return m.Called(userID, carID).Error(0)
}

func (m *mockFavoriteService) Remove(userID, carID string) error {
	return m.Called(userID, carID).Error(0)
}

func (m *mockFavoriteService) ListByUser(userID string, page, limit int) ([]domain.CarResponse, common.Pagination, error) {
	args := m.Called(userID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(common.Pagination), args.Error(2)
	}
	return args.Get(0).([]domain.CarResponse), args.Get(1).(common.Pagination), args.Error(2)
}

func (m *mockFavoriteService) Reconcile() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
