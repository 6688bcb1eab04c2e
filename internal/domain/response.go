package domain

import (
	"sort"

	"github.com/carmarket-mw/carmarket-backend/internal/serializer"
)

// CarResponse is the wire representation of a car. Price is widened to a
// float64 and timestamps are ISO-8601 strings; clients never see backend
// value types.
type CarResponse struct {
	ID           string             `json:"id"`
	Make         string             `json:"make"`
	Model        string             `json:"model"`
	Year         int                `json:"year"`
	Price        float64            `json:"price"`
	Mileage      int                `json:"mileage"`
	Color        string             `json:"color"`
	Transmission string             `json:"transmission"`
	FuelType     string             `json:"fuelType"`
	Description  string             `json:"description"`
	District     string             `json:"district"`
	Status       string             `json:"status"`
	Featured     bool               `json:"featured"`
	ViewCount    int64              `json:"viewCount"`
	LikeCount    int64              `json:"likeCount"`
	SellerID     string             `json:"sellerId"`
	CreatedAt    string             `json:"createdAt"`
	UpdatedAt    string             `json:"updatedAt"`
	ExpiresAt    string             `json:"expiresAt"`
	Seller       *SellerResponse    `json:"seller,omitempty"`
	Images       []CarImageResponse `json:"images,omitempty"`
}

// SellerResponse contact fields shown on the listing detail page
type SellerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// CarImageResponse one gallery image
type CarImageResponse struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	IsPrimary bool   `json:"isPrimary"`
}

// ToResponse converts a car to its wire form. Images come back primary-first
// so clients can take the head of the slice as the thumbnail.
func (c *Car) ToResponse() CarResponse {
	resp := CarResponse{
		ID:           c.ID,
		Make:         c.Make,
		Model:        c.Model,
		Year:         c.Year,
		Price:        c.Price.InexactFloat64(),
		Mileage:      c.Mileage,
		Color:        c.Color,
		Transmission: string(c.Transmission),
		FuelType:     string(c.FuelType),
		Description:  c.Description,
		District:     c.District,
		Status:       string(c.Status),
		Featured:     c.Featured,
		ViewCount:    c.ViewCount,
		LikeCount:    c.LikeCount,
		SellerID:     c.SellerID,
		CreatedAt:    serializer.ISOTime(c.CreatedAt),
		UpdatedAt:    serializer.ISOTime(c.UpdatedAt),
		ExpiresAt:    serializer.ISOTime(c.ExpiresAt),
	}

	if c.Seller != nil {
		resp.Seller = &SellerResponse{
			ID:          c.Seller.ID,
			Name:        c.Seller.Name,
			Email:       c.Seller.Email,
			Phone:       c.Seller.Phone,
			Location:    c.Seller.Location,
			Description: c.Seller.Description,
		}
	}

	if len(c.Images) > 0 {
		images := make([]CarImageResponse, 0, len(c.Images))
		for _, img := range c.Images {
			images = append(images, CarImageResponse{
				ID:        img.ID,
				URL:       img.URL,
				IsPrimary: img.IsPrimary,
			})
		}
		sort.SliceStable(images, func(i, j int) bool {
			return images[i].IsPrimary && !images[j].IsPrimary
		})
		resp.Images = images
	}

	return resp
}

// ToResponses converts a result page
func ToResponses(cars []*Car) []CarResponse {
	out := make([]CarResponse, 0, len(cars))
	for _, c := range cars {
		out = append(out, c.ToResponse())
	}
	return out
}

// StatsResponse aggregate marketplace numbers for the landing page
type StatsResponse struct {
	TotalCars     int64   `json:"totalCars"`
	AveragePrice  float64 `json:"averagePrice"`
	DistrictCount int64   `json:"districtCount"`
	FeaturedCars  int64   `json:"featuredCars"`
}
