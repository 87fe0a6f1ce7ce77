// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

package places

import (
	"github.com/johnlhuangP/myArea/utils"
)

// Category classifies a location.
type Category string

const (
	CategoryRestaurant    Category = "restaurant"
	CategoryCafe          Category = "cafe"
	CategoryBar           Category = "bar"
	CategoryShopping      Category = "shopping"
	CategoryPark          Category = "park"
	CategoryHike          Category = "hike"
	CategoryMuseum        Category = "museum"
	CategoryEntertainment Category = "entertainment"
	CategoryBeach         Category = "beach"
	CategoryViewpoint     Category = "viewpoint"
	CategoryOther         Category = "other"
)

// Categories lists every known category, in display order.
var Categories = []Category{
	CategoryRestaurant,
	CategoryCafe,
	CategoryBar,
	CategoryShopping,
	CategoryPark,
	CategoryHike,
	CategoryMuseum,
	CategoryEntertainment,
	CategoryBeach,
	CategoryViewpoint,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c.Index() >= 0
}

// Index returns the position of c in Categories, or -1 if c is unknown.
func (c Category) Index() int {
	for i, known := range Categories {
		if c == known {
			return i
		}
	}

	return -1
}

// Normalize returns c if it is known and CategoryOther otherwise.
func (c Category) Normalize() Category {
	if c.Valid() {
		return c
	}

	return CategoryOther
}

// aliases maps folded user input to categories.
var aliases = map[string]Category{
	"restaurants":   CategoryRestaurant,
	"restaurante":   CategoryRestaurant,
	"food":          CategoryRestaurant,
	"cafes":         CategoryCafe,
	"coffee":        CategoryCafe,
	"bars":          CategoryBar,
	"shop":          CategoryShopping,
	"shops":         CategoryShopping,
	"parks":         CategoryPark,
	"hiking":        CategoryHike,
	"hikes":         CategoryHike,
	"trail":         CategoryHike,
	"museums":       CategoryMuseum,
	"beaches":       CategoryBeach,
	"viewpoints":    CategoryViewpoint,
	"view":          CategoryViewpoint,
	"entertainment": CategoryEntertainment,
}

// ParseCategory resolves user input such as "Café" or " Parks " to a
// category. The second return value is false when nothing matched.
func ParseCategory(s string) (Category, bool) {
	folded := utils.LowerASCIIFolding(s)

	if c := Category(folded); c.Valid() {
		return c, true
	}

	if c, ok := aliases[folded]; ok {
		return c, true
	}

	return CategoryOther, false
}

// Style holds the display attributes of a category.
type Style struct {
	Label     string `json:"label"`
	Color     string `json:"color"`
	Icon      string `json:"icon"`
	Animation string `json:"animation"`
}

// Style returns the display attributes of c. Unknown categories get the
// style of CategoryOther.
func (c Category) Style() Style {
	switch c {
	case CategoryRestaurant:
		return Style{Label: "Restaurants", Color: "#E53E3E", Icon: "utensils", Animation: "pulse"}
	case CategoryCafe:
		return Style{Label: "Cafes", Color: "#D69E2E", Icon: "coffee", Animation: "steam"}
	case CategoryBar:
		return Style{Label: "Bars", Color: "#9F7AEA", Icon: "wine", Animation: "glow"}
	case CategoryShopping:
		return Style{Label: "Shopping", Color: "#3182CE", Icon: "shopping-bag", Animation: "bounce"}
	case CategoryPark:
		return Style{Label: "Parks", Color: "#38A169", Icon: "trees", Animation: "sway"}
	case CategoryHike:
		return Style{Label: "Hiking", Color: "#319795", Icon: "mountain", Animation: "bounce"}
	case CategoryMuseum:
		return Style{Label: "Museums", Color: "#805AD5", Icon: "palette", Animation: "pulse"}
	case CategoryEntertainment:
		return Style{Label: "Entertainment", Color: "#E53E3E", Icon: "music", Animation: "bounce"}
	case CategoryBeach:
		return Style{Label: "Beaches", Color: "#0BC5EA", Icon: "waves", Animation: "wave"}
	case CategoryViewpoint:
		return Style{Label: "Viewpoints", Color: "#3182CE", Icon: "camera", Animation: "flash"}
	case CategoryOther:
		return Style{Label: "Other", Color: "#718096", Icon: "map-pin", Animation: "pulse"}
	default:
		return CategoryOther.Style()
	}
}
