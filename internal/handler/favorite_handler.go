package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/carmarket-mw/carmarket-backend/internal/common"
	"github.com/carmarket-mw/carmarket-backend/internal/middleware"
	"github.com/carmarket-mw/carmarket-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// FavoriteHandler handles favorite toggle HTTP requests
type FavoriteHandler struct {
	service service.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler
func NewFavoriteHandler(service service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

// CheckFavorite handles GET /cars/:id/favorite. Signed-out visitors always
// get isFavorited=false, never an error.
func (h *FavoriteHandler) CheckFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)

	isFavorited, err := h.service.Check(userID, c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to check favorite", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"isFavorited": isFavorited})
}

// AddFavorite handles POST /cars/:id/favorite
//
// @Summary   Favorite a car
// @Tags      favorites
// @Security  BearerAuth
// @Param     id  path  string  true  "car id"
// @Success   200  {object}  map[string]bool
// @Failure   400  {object}  common.APIResponse  "already favorited"
// @Failure   401  {object}  common.APIResponse
// @Failure   404  {object}  common.APIResponse
// @Router    /cars/{id}/favorite [post]
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)
	carID := c.Param("id")

	if err := h.service.Add(userID, carID); err != nil {
		middleware.CountFavoriteToggle("add", "error")
		handleFavoriteError(c, err)
		return
	}

	middleware.CountFavoriteToggle("add", "ok")
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RemoveFavorite handles DELETE /cars/:id/favorite
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)
	carID := c.Param("id")

	if err := h.service.Remove(userID, carID); err != nil {
		middleware.CountFavoriteToggle("remove", "error")
		handleFavoriteError(c, err)
		return
	}

	middleware.CountFavoriteToggle("remove", "ok")
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListMyFavorites handles GET /favorites
func (h *FavoriteHandler) ListMyFavorites(c *gin.Context) {
	userID := middleware.GetUserID(c)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))

	cars, pagination, err := h.service.ListByUser(userID, page, limit)
	if err != nil {
		handleFavoriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cars":       cars,
		"pagination": pagination,
	})
}

// ReconcileLikes handles POST /admin/reconcile-likes
func (h *FavoriteHandler) ReconcileLikes(c *gin.Context) {
	fixed, err := h.service.Reconcile()
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to reconcile like counters", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "fixed": fixed})
}

// handleFavoriteError maps favorite service errors to HTTP status codes
func handleFavoriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrUnauthorized):
		common.ErrorResponse(c, http.StatusUnauthorized, "Sign in required", nil)
	case errors.Is(err, common.ErrCarNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "Car not found", nil)
	case errors.Is(err, common.ErrNotFavorited):
		common.ErrorResponse(c, http.StatusNotFound, "Car not favorited", nil)
	case errors.Is(err, common.ErrAlreadyFavorited):
		common.ErrorResponse(c, http.StatusBadRequest, "Already favorited", nil)
	default:
		common.ErrorResponse(c, http.StatusInternalServerError, "Internal server error", err)
	}
}
