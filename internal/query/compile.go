package query

import (
	"time"
)

// Compile turns a Filter into a predicate clause and a sort descriptor.
// It never fails: a contradictory filter is still a valid query, it just
// selects zero rows. All active filters combine with AND; only the free-text
// group is an OR across make, model and description.
func Compile(f Filter, now time.Time) (Clause, []Order) {
	clauses := []Clause{
		After{Field: "expires_at", Value: now},
		Eq{Field: "status", Value: string(f.Status)},
	}

	if f.Query != "" {
		clauses = append(clauses, Or{Clauses: []Clause{
			Contains{Field: "make", Value: f.Query},
			Contains{Field: "model", Value: f.Query},
			Contains{Field: "description", Value: f.Query},
		}})
	}

	if f.Make != "" {
		clauses = append(clauses, Contains{Field: "make", Value: f.Make})
	}
	if f.District != "" {
		clauses = append(clauses, Contains{Field: "district", Value: f.District})
	}
	if f.Transmission != "" {
		clauses = append(clauses, Eq{Field: "transmission", Value: string(f.Transmission)})
	}
	if f.FuelType != "" {
		clauses = append(clauses, Eq{Field: "fuel_type", Value: string(f.FuelType)})
	}

	if f.MinPrice != nil || f.MaxPrice != nil {
		clauses = append(clauses, Range{Field: "price", Min: f.MinPrice, Max: f.MaxPrice})
	}
	if f.MinYear != nil || f.MaxYear != nil {
		var minV, maxV *float64
		if f.MinYear != nil {
			v := float64(*f.MinYear)
			minV = &v
		}
		if f.MaxYear != nil {
			v := float64(*f.MaxYear)
			maxV = &v
		}
		clauses = append(clauses, Range{Field: "year", Min: minV, Max: maxV})
	}

	if f.Featured {
		clauses = append(clauses, Eq{Field: "featured", Value: true})
	}

	return And{Clauses: clauses}, compileOrder(f.Sort)
}

// compileOrder maps a sort key to its ordering. Every ordering ends with an
// id tie-break so that rows with equal sort values page deterministically.
func compileOrder(sort SortKey) []Order {
	var orders []Order
	switch sort {
	case SortOldest:
		orders = []Order{{Field: "created_at"}}
	case SortPriceLow:
		orders = []Order{{Field: "price"}}
	case SortPriceHigh:
		orders = []Order{{Field: "price", Desc: true}}
	case SortYearNew:
		orders = []Order{{Field: "year", Desc: true}}
	case SortYearOld:
		orders = []Order{{Field: "year"}}
	case SortMileageLow:
		orders = []Order{{Field: "mileage"}}
	case SortMileageHigh:
		orders = []Order{{Field: "mileage", Desc: true}}
	case SortPopular:
		orders = []Order{{Field: "view_count", Desc: true}}
	case SortFeatured:
		orders = []Order{{Field: "featured", Desc: true}, {Field: "created_at", Desc: true}}
	default: // SortNewest
		orders = []Order{{Field: "created_at", Desc: true}}
	}
	return append(orders, Order{Field: "id"})
}
