package query

import (
	"strings"
	"time"

	"github.com/carmarket-mw/carmarket-backend/internal/domain"
)

// Match evaluates a clause tree against a car in memory. It mirrors the SQL
// translation in gorm.go and exists so the compiler can be tested — and
// services exercised against a fake repository — without a live database.
func Match(c Clause, car *domain.Car) bool {
	switch v := c.(type) {
	case And:
		for _, child := range v.Clauses {
			if !Match(child, car) {
				return false
			}
		}
		return true
	case Or:
		for _, child := range v.Clauses {
			if Match(child, car) {
				return true
			}
		}
		return false
	case Eq:
		return fieldValue(car, v.Field) == v.Value
	case Range:
		n, ok := numericField(car, v.Field)
		if !ok {
			return false
		}
		if v.Min != nil && n < *v.Min {
			return false
		}
		if v.Max != nil && n > *v.Max {
			return false
		}
		return true
	case Contains:
		s, ok := fieldValue(car, v.Field).(string)
		if !ok {
			return false
		}
		return strings.Contains(strings.ToLower(s), strings.ToLower(v.Value))
	case After:
		t, ok := fieldValue(car, v.Field).(time.Time)
		if !ok {
			return false
		}
		ref, ok := v.Value.(time.Time)
		if !ok {
			return false
		}
		return t.After(ref)
	}
	return false
}

// Less orders two cars by a sort descriptor. Equal cars under every term
// compare false both ways, which keeps sort.SliceStable deterministic.
func Less(orders []Order, a, b *domain.Car) bool {
	for _, o := range orders {
		cmp := compareField(o.Field, a, b)
		if cmp == 0 {
			continue
		}
		if o.Desc {
			return cmp > 0
		}
		return cmp < 0
	}
	return false
}

func fieldValue(car *domain.Car, field string) any {
	switch field {
	case "id":
		return car.ID
	case "make":
		return car.Make
	case "model":
		return car.Model
	case "description":
		return car.Description
	case "district":
		return car.District
	case "color":
		return car.Color
	case "status":
		return string(car.Status)
	case "transmission":
		return string(car.Transmission)
	case "fuel_type":
		return string(car.FuelType)
	case "featured":
		return car.Featured
	case "created_at":
		return car.CreatedAt
	case "expires_at":
		return car.ExpiresAt
	}
	if n, ok := numericField(car, field); ok {
		return n
	}
	return nil
}

func numericField(car *domain.Car, field string) (float64, bool) {
	switch field {
	case "price":
		return car.Price.InexactFloat64(), true
	case "year":
		return float64(car.Year), true
	case "mileage":
		return float64(car.Mileage), true
	case "view_count":
		return float64(car.ViewCount), true
	case "like_count":
		return float64(car.LikeCount), true
	}
	return 0, false
}

func compareField(field string, a, b *domain.Car) int {
	switch field {
	case "created_at", "expires_at":
		ta, _ := fieldValue(a, field).(time.Time)
		tb, _ := fieldValue(b, field).(time.Time)
		switch {
		case ta.Before(tb):
			return -1
		case ta.After(tb):
			return 1
		}
		return 0
	case "featured":
		return boolToInt(a.Featured) - boolToInt(b.Featured)
	case "id":
		return strings.Compare(a.ID, b.ID)
	}
	na, aok := numericField(a, field)
	nb, bok := numericField(b, field)
	if aok && bok {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	}
	sa, _ := fieldValue(a, field).(string)
	sb, _ := fieldValue(b, field).(string)
	return strings.Compare(sa, sb)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
