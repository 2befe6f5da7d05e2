package models

import "github.com/shopspring/decimal"

const (
	CategoryStarters = "Starters"
	CategoryMains    = "Mains"
	CategoryDrinks   = "Drinks"
	CategoryDesserts = "Desserts"
)

type MenuItem struct {
	Item_id    int64           `json:"item_id"`
	Name       string          `json:"name" validate:"required,min=1"`
	Unit_price decimal.Decimal `json:"unit_price"`
	Category   string          `json:"category" validate:"required,eq=Starters|eq=Mains|eq=Drinks|eq=Desserts"`
}
