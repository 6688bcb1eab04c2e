package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CarStatus lifecycle state of a listing
type CarStatus string

const (
	StatusActive  CarStatus = "ACTIVE"
	StatusSold    CarStatus = "SOLD"
	StatusExpired CarStatus = "EXPIRED"
	StatusDraft   CarStatus = "DRAFT"
)

// ParseCarStatus maps a raw string to a CarStatus. The second return value
// reports whether the input was a known status; callers decide the fallback.
func ParseCarStatus(s string) (CarStatus, bool) {
	switch CarStatus(s) {
	case StatusActive, StatusSold, StatusExpired, StatusDraft:
		return CarStatus(s), true
	}
	return StatusActive, false
}

// Transmission gearbox type
type Transmission string

const (
	TransmissionManual    Transmission = "MANUAL"
	TransmissionAutomatic Transmission = "AUTOMATIC"
	TransmissionCVT       Transmission = "CVT"
)

func ParseTransmission(s string) (Transmission, bool) {
	switch Transmission(s) {
	case TransmissionManual, TransmissionAutomatic, TransmissionCVT:
		return Transmission(s), true
	}
	return "", false
}

// FuelType engine fuel type
type FuelType string

const (
	FuelPetrol   FuelType = "PETROL"
	FuelDiesel   FuelType = "DIESEL"
	FuelHybrid   FuelType = "HYBRID"
	FuelElectric FuelType = "ELECTRIC"
)

func ParseFuelType(s string) (FuelType, bool) {
	switch FuelType(s) {
	case FuelPetrol, FuelDiesel, FuelHybrid, FuelElectric:
		return FuelType(s), true
	}
	return "", false
}

// Car represents a listing in the marketplace catalog
type Car struct {
	ID           string          `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Make         string          `gorm:"column:make;size:100;index" json:"make"`
	Model        string          `gorm:"column:model;size:100" json:"model"`
	Year         int             `gorm:"column:year;index" json:"year"`
	Price        decimal.Decimal `gorm:"column:price;type:decimal(12,2)" json:"price"`
	Mileage      int             `gorm:"column:mileage" json:"mileage"`
	Color        string          `gorm:"column:color;size:50" json:"color"`
	Transmission Transmission    `gorm:"column:transmission;type:varchar(20)" json:"transmission"`
	FuelType     FuelType        `gorm:"column:fuel_type;type:varchar(20)" json:"fuelType"`
	Description  string          `gorm:"column:description;type:text" json:"description"`
	District     string          `gorm:"column:district;size:100;index" json:"district"`
	Status       CarStatus       `gorm:"column:status;type:varchar(20);default:'ACTIVE';index" json:"status"`
	Featured     bool            `gorm:"column:featured;default:false" json:"featured"`
	ViewCount    int64           `gorm:"column:view_count;default:0" json:"viewCount"`
	LikeCount    int64           `gorm:"column:like_count;default:0" json:"likeCount"`
	SellerID     string          `gorm:"column:seller_id;type:char(36);index" json:"sellerId"`
	CreatedAt    time.Time       `gorm:"column:created_at;index" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"column:updated_at" json:"updatedAt"`
	ExpiresAt    time.Time       `gorm:"column:expires_at;index" json:"expiresAt"`

	Seller *Seller    `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Images []CarImage `gorm:"foreignKey:CarID" json:"images,omitempty"`
}

func (Car) TableName() string {
	return "cars"
}

// BeforeCreate assigns a UUID primary key when one was not provided
func (c *Car) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// IsListable reports whether the car is eligible for public listing
func (c *Car) IsListable(now time.Time) bool {
	return c.Status == StatusActive && c.ExpiresAt.After(now)
}

// Seller owns zero or more cars
type Seller struct {
	ID          string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Name        string    `gorm:"column:name;size:100" json:"name"`
	Email       string    `gorm:"column:email;size:255;uniqueIndex" json:"email"`
	Phone       string    `gorm:"column:phone;size:50" json:"phone"`
	Location    string    `gorm:"column:location;size:100" json:"location"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`

	Cars []Car `gorm:"foreignKey:SellerID" json:"cars,omitempty"`
}

func (Seller) TableName() string {
	return "sellers"
}

func (s *Seller) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// CarImage belongs to exactly one car; at most one image per car is primary
type CarImage struct {
	ID        string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	CarID     string    `gorm:"column:car_id;type:char(36);index" json:"carId"`
	URL       string    `gorm:"column:url;size:500" json:"url"`
	IsPrimary bool      `gorm:"column:is_primary;default:false" json:"isPrimary"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (CarImage) TableName() string {
	return "car_images"
}

func (i *CarImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}
