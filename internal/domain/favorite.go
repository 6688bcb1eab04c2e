package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CarFavorite is the per-user saved marker on a car. The (user_id, car_id)
// pair is unique: the row's existence is the source of truth for the favorite
// state, while Car.LikeCount is only a cached derivative.
type CarFavorite struct {
	ID        string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id;type:char(36);uniqueIndex:idx_user_car" json:"userId"`
	CarID     string    `gorm:"column:car_id;type:char(36);uniqueIndex:idx_user_car;index" json:"carId"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`

	Car *Car `gorm:"foreignKey:CarID" json:"car,omitempty"`
}

func (CarFavorite) TableName() string {
	return "car_favorites"
}

func (f *CarFavorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}
