package migration

import (
	"time"

	"github.com/carmarket-mw/carmarket-backend/internal/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seed inserts sample sellers and listings for local development. Running it
// twice is harmless: sellers upsert on email and cars are skipped when the
// table is non-empty.
func Seed(db *gorm.DB) error {
	var carCount int64
	if err := db.Model(&domain.Car{}).Count(&carCount).Error; err != nil {
		return err
	}
	if carCount > 0 {
		return nil
	}

	sellers := []domain.Seller{
		{
			Name:        "John Banda",
			Email:       "john.banda@email.com",
			Phone:       "+265 991 234 567",
			Location:    "Blantyre",
			Description: "Experienced car dealer with over 10 years in the business. Specializes in Japanese imports.",
		},
		{
			Name:        "Mary Phiri",
			Email:       "mary.phiri@email.com",
			Phone:       "+265 999 876 543",
			Location:    "Lilongwe",
			Description: "Trusted seller of quality used cars. All vehicles thoroughly inspected before sale.",
		},
		{
			Name:        "Peter Mwale",
			Email:       "peter.mwale@email.com",
			Phone:       "+265 995 123 789",
			Location:    "Mzuzu",
			Description: "Family-owned business serving Northern Malawi. Fair prices and honest service.",
		},
	}
	for i := range sellers {
		if err := db.Where("email = ?", sellers[i].Email).
			FirstOrCreate(&sellers[i]).Error; err != nil {
			return err
		}
	}

	expiresAt := time.Now().AddDate(0, 3, 0)
	cars := []domain.Car{
		{
			Make:         "Toyota",
			Model:        "Corolla",
			Year:         2018,
			Price:        decimal.NewFromInt(12500000),
			Mileage:      65000,
			Color:        "White",
			Transmission: domain.TransmissionManual,
			FuelType:     domain.FuelPetrol,
			Description:  "Well-maintained Toyota Corolla in excellent condition. Recently serviced with new tires. Perfect for city driving.",
			District:     "Blantyre",
			Featured:     true,
			Status:       domain.StatusActive,
			SellerID:     sellers[0].ID,
			ExpiresAt:    expiresAt,
		},
		{
			Make:         "Honda",
			Model:        "Civic",
			Year:         2020,
			Price:        decimal.NewFromInt(18750000),
			Mileage:      35000,
			Color:        "Silver",
			Transmission: domain.TransmissionAutomatic,
			FuelType:     domain.FuelPetrol,
			Description:  "Low mileage Honda Civic with automatic transmission. One owner, full service history available.",
			District:     "Lilongwe",
			Status:       domain.StatusActive,
			SellerID:     sellers[1].ID,
			ExpiresAt:    expiresAt,
		},
		{
			Make:         "Toyota",
			Model:        "Land Cruiser",
			Year:         2022,
			Price:        decimal.NewFromInt(85000000),
			Mileage:      15000,
			Color:        "Black",
			Transmission: domain.TransmissionAutomatic,
			FuelType:     domain.FuelDiesel,
			Description:  "Nearly new Land Cruiser in pristine condition. Ideal for both city and off-road driving.",
			District:     "Mzuzu",
			Featured:     true,
			Status:       domain.StatusActive,
			SellerID:     sellers[2].ID,
			ExpiresAt:    expiresAt,
		},
	}
	for i := range cars {
		if err := db.Create(&cars[i]).Error; err != nil {
			return err
		}
		image := domain.CarImage{
			CarID:     cars[i].ID,
			URL:       "/images/placeholder-car.jpg",
			IsPrimary: true,
		}
		if err := db.Create(&image).Error; err != nil {
			return err
		}
	}

	return nil
}
