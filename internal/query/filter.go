package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/carmarket-mw/carmarket-backend/internal/domain"
)

// Listing page size bounds
const (
	DefaultLimit = 12
	MaxLimit     = 100
)

// SortKey requested result ordering
type SortKey string

const (
	SortNewest      SortKey = "newest"
	SortOldest      SortKey = "oldest"
	SortPriceLow    SortKey = "price-low"
	SortPriceHigh   SortKey = "price-high"
	SortYearNew     SortKey = "year-new"
	SortYearOld     SortKey = "year-old"
	SortMileageLow  SortKey = "mileage-low"
	SortMileageHigh SortKey = "mileage-high"
	SortPopular     SortKey = "popular"
	SortFeatured    SortKey = "featured"
)

// Filter is the normalized, request-scoped representation of a client's
// search parameters. Zero values mean "not filtered"; pointer fields
// distinguish an absent bound from a zero bound.
type Filter struct {
	Query        string
	Make         string
	District     string
	Transmission domain.Transmission
	FuelType     domain.FuelType
	MinPrice     *float64
	MaxPrice     *float64
	MinYear      *int
	MaxYear      *int
	Featured     bool
	Status       domain.CarStatus
	Sort         SortKey
	Page         int
	Limit        int
}

// ParseFilter normalizes raw query parameters into a Filter. It never fails:
// unknown enum values fall back to safe defaults (status → ACTIVE, other enums
// → ignored) and unparseable numbers are treated as absent. Stale or
// half-valid query strings from old clients must still produce a usable
// listing.
func ParseFilter(values url.Values) Filter {
	f := Filter{
		Query:    strings.TrimSpace(values.Get("q")),
		Make:     strings.TrimSpace(values.Get("make")),
		District: strings.TrimSpace(values.Get("district")),
		Status:   domain.StatusActive,
		Sort:     parseSortKey(values.Get("sort")),
		Page:     parsePositiveInt(values.Get("page"), 1),
		Limit:    parsePositiveInt(values.Get("limit"), DefaultLimit),
	}

	if f.Limit > MaxLimit {
		f.Limit = DefaultLimit
	}

	if status, ok := domain.ParseCarStatus(values.Get("status")); ok {
		f.Status = status
	}
	if tr, ok := domain.ParseTransmission(values.Get("transmission")); ok {
		f.Transmission = tr
	}
	if ft, ok := domain.ParseFuelType(values.Get("fuelType")); ok {
		f.FuelType = ft
	}

	f.MinPrice = parseFloat(values.Get("minPrice"))
	f.MaxPrice = parseFloat(values.Get("maxPrice"))
	f.MinYear = parseInt(values.Get("minYear"))
	f.MaxYear = parseInt(values.Get("maxYear"))
	f.Featured = values.Get("featured") == "true"

	return f
}

// CacheKey renders the filter as a stable cache key. Two requests that
// normalize to the same filter share a cached page.
func (f Filter) CacheKey() string {
	parts := []string{
		"q=" + f.Query,
		"make=" + f.Make,
		"district=" + f.District,
		"tr=" + string(f.Transmission),
		"fuel=" + string(f.FuelType),
		"minp=" + formatFloat(f.MinPrice),
		"maxp=" + formatFloat(f.MaxPrice),
		"miny=" + formatIntPtr(f.MinYear),
		"maxy=" + formatIntPtr(f.MaxYear),
		"feat=" + strconv.FormatBool(f.Featured),
		"status=" + string(f.Status),
		"sort=" + string(f.Sort),
		"page=" + strconv.Itoa(f.Page),
		"limit=" + strconv.Itoa(f.Limit),
	}
	return strings.Join(parts, "&")
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatIntPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func parseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortOldest, SortPriceLow, SortPriceHigh, SortYearNew, SortYearOld,
		SortMileageLow, SortMileageHigh, SortPopular, SortFeatured:
		return SortKey(s)
	}
	return SortNewest
}

func parsePositiveInt(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func parseInt(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func parseFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
