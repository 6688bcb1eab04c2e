package handler

import (
	"net/http"
	"testing"

	"github.com/carmarket-mw/carmarket-backend/internal/common"
	"github.com/carmarket-mw/carmarket-backend/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setUser simulates the auth middleware having resolved a bearer token
func setUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
		c.Next()
	}
}

func newFavoriteRouter(svc *mockFavoriteService, userID string) *gin.Engine {
	h := NewFavoriteHandler(svc)
	router := gin.New()
	router.Use(setUser(userID))
	router.GET("/cars/:id/favorite", h.CheckFavorite)
	router.POST("/cars/:id/favorite", h.AddFavorite)
	router.DELETE("/cars/:id/favorite", h.RemoveFavorite)
	router.GET("/favorites", h.ListMyFavorites)
	router.POST("/admin/reconcile-likes", h.ReconcileLikes)
	return router
}

func TestCheckFavorite_SignedOut(t *testing.T) {
	svc := new(mockFavoriteService)
	router := newFavoriteRouter(svc, "")

	svc.On("Check", "", "car-1").Return(false, nil)

	w := doRequest(router, http.MethodGet, "/cars/car-1/favorite")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"isFavorited": false}`, w.Body.String())
}

func TestCheckFavorite_SignedIn(t *testing.T) {
	svc := new(mockFavoriteService)
	router := newFavoriteRouter(svc, "user-1")

	svc.On("Check", "user-1", "car-1").Return(true, nil)

	w := doRequest(router, http.MethodGet, "/cars/car-1/favorite")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"isFavorited": true}`, w.Body.String())
}

func TestAddFavorite_Success(t *testing.T) {
	svc := new(mockFavoriteService)
	router := newFavoriteRouter(svc, "user-1")

	svc.On("Add", "user-1", "car-1").Return(nil)

	w := doRequest(router, http.MethodPost, "/cars/car-1/favorite")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())
}

func TestAddFavorite_Duplicate(t *testing.T) {
	svc := new(mockFavoriteService)
	router := newFavoriteRouter(svc, "user-1")

	svc.On("Add", "user-1", "car-1").Return(common.ErrAlreadyFavorited)

	w := doRequest(router, http.MethodPost, "/cars/car-1/favorite")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Already favorited")
}

func TestAddFavorite_Unauthenticated(t *testing.T) {
	svc := new(mockFavoriteService)
	router := newFavoriteRouter(svc, "")

	svc.On("Add", "", "car-1").Return(common.ErrUnauthorized)

	w := doRequest(router, http.MethodPost, "/cars/car-1/favorite")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAddFavorite_UnknownCar(t *testing.T) {
	svc := new(mockFavoriteService)
	router := newFavoriteRouter(svc, "user-1")

	svc.On("Add", "user-1", "missing").Return(common.ErrCarNotFound)

	w := doRequest(router, http.MethodPost, "/cars/missing/favorite")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveFavorite_Success(t *testing.T) {
	svc := new(mockFavoriteService)
	router := newFavoriteRouter(svc, "user-1")

	svc.On("Remove", "user-1", "car-1").Return(nil)

	w := doRequest(router, http.MethodDelete, "/cars/car-1/favorite")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())
}

func TestRemoveFavorite_NotFavorited(t *testing.T) {
	svc := new(mockFavoriteService)
	router := newFavoriteRouter(svc, "user-1")

	svc.On("Remove", "user-1", "car-1").Return(common.ErrNotFavorited)

	w := doRequest(router, http.MethodDelete, "/cars/car-1/favorite")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Car not favorited")
}

func TestListMyFavorites(t *testing.T) {
	svc := new(mockFavoriteService)
	router := newFavoriteRouter(svc, "user-1")

	cars := []domain.CarResponse{{ID: "car-1"}, {ID: "car-2"}}
	svc.On("ListByUser", "user-1", 1, 12).Return(cars, common.NewPagination(1, 12, 2), nil)

	w := doRequest(router, http.MethodGet, "/favorites")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"car-1"`)
	assert.Contains(t, w.Body.String(), `"pagination"`)
	svc.AssertExpectations(t)
}

func TestReconcileLikes(t *testing.T) {
	svc := new(mockFavoriteService)
	router := newFavoriteRouter(svc, "admin-1")

	svc.On("Reconcile").Return(int64(3), nil)

	w := doRequest(router, http.MethodPost, "/admin/reconcile-likes")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true, "fixed": 3}`, w.Body.String())
}
