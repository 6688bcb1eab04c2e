package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/carmarket-mw/carmarket-backend/internal/common"
	"github.com/carmarket-mw/carmarket-backend/internal/middleware"
	"github.com/carmarket-mw/carmarket-backend/internal/query"
	"github.com/carmarket-mw/carmarket-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// CarHandler handles car listing HTTP requests
type CarHandler struct {
	service service.CarService
}

// NewCarHandler creates a new CarHandler
func NewCarHandler(service service.CarService) *CarHandler {
	return &CarHandler{service: service}
}

// ListCars handles GET /cars
//
// @Summary      List cars
// @Description  Filtered, sorted, paginated car listing
// @Tags         cars
// @Param        q            query  string  false  "free-text search over make, model, description"
// @Param        make         query  string  false  "make filter"
// @Param        district     query  string  false  "district filter"
// @Param        transmission query  string  false  "MANUAL | AUTOMATIC | CVT"
// @Param        fuelType     query  string  false  "PETROL | DIESEL | HYBRID | ELECTRIC"
// @Param        minPrice     query  number  false  "minimum price"
// @Param        maxPrice     query  number  false  "maximum price"
// @Param        minYear      query  int     false  "minimum year"
// @Param        maxYear      query  int     false  "maximum year"
// @Param        featured     query  bool    false  "featured only"
// @Param        status       query  string  false  "listing status, defaults to ACTIVE"
// @Param        sort         query  string  false  "sort key, defaults to newest"
// @Param        page         query  int     false  "page number, defaults to 1"
// @Param        limit        query  int     false  "page size, defaults to 12"
// @Success      200  {object}  service.ListingPage
// @Failure      500  {object}  common.APIResponse
// @Router       /cars [get]
func (h *CarHandler) ListCars(c *gin.Context) {
	filter := query.ParseFilter(c.Request.URL.Query())

	cars, pagination, err := h.service.List(filter)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch cars", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cars":       cars,
		"pagination": pagination,
	})
}

// GetCar handles GET /cars/:id
//
// @Summary  Get one car with seller and images
// @Tags     cars
// @Param    id  path  string  true  "car id"
// @Success  200  {object}  domain.CarResponse
// @Failure  404  {object}  common.APIResponse
// @Router   /cars/{id} [get]
func (h *CarHandler) GetCar(c *gin.Context) {
	car, err := h.service.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrCarNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Car not found", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch car", err)
		return
	}

	c.JSON(http.StatusOK, car)
}

// ListSimilar handles GET /cars/:id/similar
func (h *CarHandler) ListSimilar(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "4"))

	cars, err := h.service.ListSimilar(c.Param("id"), limit)
	if err != nil {
		if errors.Is(err, common.ErrCarNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Car not found", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch similar cars", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cars": cars})
}

// RecordView handles POST /cars/:id/view. The increment itself is detached;
// only a missing car fails the request.
func (h *CarHandler) RecordView(c *gin.Context) {
	if err := h.service.RecordView(c.Param("id")); err != nil {
		if errors.Is(err, common.ErrCarNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Car not found", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to track view", err)
		return
	}

	middleware.CountViewEvent()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetStats handles GET /stats
func (h *CarHandler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats()
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch stats", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
