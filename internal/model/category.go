package model

import "strings"

// Category is one of the fixed errand categories.
type Category string

const (
	CategoryGrocery    Category = "grocery"
	CategoryPharmacy   Category = "pharmacy"
	CategoryRestaurant Category = "restaurant"
	CategoryCafe       Category = "cafe"
	CategoryBank       Category = "bank"
	CategoryGasStation Category = "gas_station"
	CategoryShopping   Category = "shopping"
	CategoryGym        Category = "gym"
)

// Categories lists every valid category in prompt order.
var Categories = []Category{
	CategoryGrocery,
	CategoryPharmacy,
	CategoryRestaurant,
	CategoryCafe,
	CategoryBank,
	CategoryGasStation,
	CategoryShopping,
	CategoryGym,
}

// IsValid reports whether c is one of the fixed categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// NormalizeCategory maps a raw category label onto the fixed enumeration.
// Anything unrecognized becomes shopping.
func NormalizeCategory(raw string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c.IsValid() {
		return c
	}
	return CategoryShopping
}
