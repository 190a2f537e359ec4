package entity

import (
	"perkhub/internal/errors"
)

// ProductType is the closed enumeration of product categories a perk can target.
type ProductType string

const (
	ProductHotels    ProductType = "HOTELS"
	ProductMovies    ProductType = "MOVIES"
	ProductDining    ProductType = "DINING"
	ProductCars      ProductType = "CARS"
	ProductTravel    ProductType = "TRAVEL"
	ProductGroceries ProductType = "GROCERIES"
)

// ProductTypes lists all valid product types.
func ProductTypes() []ProductType {
	return []ProductType{
		ProductHotels,
		ProductMovies,
		ProductDining,
		ProductCars,
		ProductTravel,
		ProductGroceries,
	}
}

// ParseProductType converts a raw string into a ProductType, case-insensitively.
func ParseProductType(raw string) (ProductType, error) {
	needle := normalizeLabel(raw)
	for _, p := range ProductTypes() {
		if normalizeLabel(string(p)) == needle {
			return p, nil
		}
	}

	return "", errors.Errorf("unknown product type: %q", raw)
}

// Valid reports whether the product type is one of the closed enum values.
func (p ProductType) Valid() bool {
	for _, known := range ProductTypes() {
		if p == known {
			return true
		}
	}

	return false
}
