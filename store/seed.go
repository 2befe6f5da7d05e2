package store

import (
	"github.com/shopspring/decimal"

	"gastro-pos/models"
)

// SeedMenu loads the demo carta so a fresh process starts with something to
// sell.
func SeedMenu(menu *MenuStore) {
	for _, item := range []models.MenuItem{
		{Name: "Lomo Saltado", Unit_price: decimal.NewFromFloat(35.00), Category: models.CategoryMains},
		{Name: "Ceviche Clásico", Unit_price: decimal.NewFromFloat(28.00), Category: models.CategoryStarters},
		{Name: "Ají de Gallina", Unit_price: decimal.NewFromFloat(25.00), Category: models.CategoryMains},
		{Name: "Inca Kola 1L", Unit_price: decimal.NewFromFloat(12.00), Category: models.CategoryDrinks},
		{Name: "Pisco Sour", Unit_price: decimal.NewFromFloat(22.00), Category: models.CategoryDrinks},
	} {
		menu.Add(item)
	}
}
