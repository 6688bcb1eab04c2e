package service

import (
	"errors"
	"testing"
	"time"

	"github.com/carmarket-mw/carmarket-backend/internal/common"
	"github.com/carmarket-mw/carmarket-backend/internal/domain"
	"github.com/carmarket-mw/carmarket-backend/internal/query"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleCar(id string, price int64) *domain.Car {
	now := time.Now()
	return &domain.Car{
		ID:        id,
		Make:      "Toyota",
		Model:     "Corolla",
		Price:     decimal.NewFromInt(price),
		Status:    domain.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.AddDate(0, 3, 0),
	}
}

func TestList_Success(t *testing.T) {
	repo := new(mockCarRepo)
	svc := NewCarService(repo, nil)

	cars := []*domain.Car{sampleCar("car-1", 100), sampleCar("car-2", 200)}
	repo.On("Find", mock.Anything, mock.Anything, 0, 12).Return(cars, int64(2), nil)

	results, pagination, err := svc.List(query.Filter{Status: domain.StatusActive, Page: 1, Limit: 12})

	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, "car-1", results[0].ID)
	assert.Equal(t, float64(100), results[0].Price)
	assert.Equal(t, int64(2), pagination.Total)
	assert.Equal(t, int64(1), pagination.TotalPages)
	assert.False(t, pagination.HasNext)
	repo.AssertExpectations(t)
}

func TestList_OffsetFromPage(t *testing.T) {
	repo := new(mockCarRepo)
	svc := NewCarService(repo, nil)

	repo.On("Find", mock.Anything, mock.Anything, 24, 12).Return([]*domain.Car{}, int64(30), nil)

	_, pagination, err := svc.List(query.Filter{Status: domain.StatusActive, Page: 3, Limit: 12})

	require.NoError(t, err)
	assert.Equal(t, 3, pagination.Page)
	assert.True(t, pagination.HasPrev)
	repo.AssertExpectations(t)
}

func TestList_RepoError(t *testing.T) {
	repo := new(mockCarRepo)
	svc := NewCarService(repo, nil)

	repo.On("Find", mock.Anything, mock.Anything, 0, 12).Return(nil, int64(0), errors.New("db error"))

	results, _, err := svc.List(query.Filter{Status: domain.StatusActive, Page: 1, Limit: 12})

	assert.Error(t, err)
	assert.Nil(t, results)
}

func TestGet_Success(t *testing.T) {
	repo := new(mockCarRepo)
	svc := NewCarService(repo, nil)

	car := sampleCar("car-1", 12500000)
	car.Seller = &domain.Seller{ID: "s1", Name: "John Banda"}
	repo.On("FindByID", "car-1").Return(car, nil)

	resp, err := svc.Get("car-1")

	require.NoError(t, err)
	assert.Equal(t, "car-1", resp.ID)
	assert.Equal(t, float64(12500000), resp.Price)
	require.NotNil(t, resp.Seller)
	assert.Equal(t, "John Banda", resp.Seller.Name)
}

func TestGet_NotFound(t *testing.T) {
	repo := new(mockCarRepo)
	svc := NewCarService(repo, nil)

	repo.On("FindByID", "missing").Return(nil, common.ErrCarNotFound)

	_, err := svc.Get("missing")

	assert.ErrorIs(t, err, common.ErrCarNotFound)
}

func TestRecordView_UnknownCar(t *testing.T) {
	repo := new(mockCarRepo)
	svc := NewCarService(repo, nil)

	repo.On("Exists", "missing").Return(false, nil)

	err := svc.RecordView("missing")

	assert.ErrorIs(t, err, common.ErrCarNotFound)
	repo.AssertNotCalled(t, "IncrementViewCount", "missing")
}

func TestRecordView_IncrementRunsDetached(t *testing.T) {
	repo := new(mockCarRepo)
	svc := NewCarService(repo, nil)

	done := make(chan struct{})
	repo.On("Exists", "car-1").Return(true, nil)
	repo.On("IncrementViewCount", "car-1").Return(nil).Run(func(mock.Arguments) {
		close(done)
	})

	err := svc.RecordView("car-1")
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("view increment never ran")
	}
}

// An increment failure must be invisible to the caller.
func TestRecordView_IncrementFailureSwallowed(t *testing.T) {
	repo := new(mockCarRepo)
	svc := NewCarService(repo, nil)

	done := make(chan struct{})
	repo.On("Exists", "car-1").Return(true, nil)
	repo.On("IncrementViewCount", "car-1").Return(errors.New("db down")).Run(func(mock.Arguments) {
		close(done)
	})

	err := svc.RecordView("car-1")
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("view increment never ran")
	}
}

func TestListSimilar(t *testing.T) {
	repo := new(mockCarRepo)
	svc := NewCarService(repo, nil)

	car := sampleCar("car-1", 10000000)
	similar := []*domain.Car{sampleCar("car-2", 9000000)}
	repo.On("FindByID", "car-1").Return(car, nil)
	repo.On("FindSimilar", car, 4).Return(similar, nil)

	results, err := svc.ListSimilar("car-1", 4)

	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "car-2", results[0].ID)
}

func TestStats(t *testing.T) {
	repo := new(mockCarRepo)
	svc := NewCarService(repo, nil)

	repo.On("Stats").Return(&domain.StatsResponse{TotalCars: 10, AveragePrice: 5000000}, nil)

	stats, err := svc.Stats()

	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalCars)
}
