// Package fooditem maps food items to the JSON stored in jsonb columns.
package fooditem

import (
	"hospitalfood/internal/core/domain/model/kernel"
)

// DTO is one element of a jsonb food item array.
type DTO struct {
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	Instructions string `json:"instructions,omitempty"`
}

func FromDomain(items []kernel.FoodItem) []DTO {
	dtos := make([]DTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, DTO{
			Name:         item.Name(),
			Quantity:     item.Quantity(),
			Instructions: item.Instructions(),
		})
	}
	return dtos
}

func ToDomain(dtos []DTO) ([]kernel.FoodItem, error) {
	items := make([]kernel.FoodItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := kernel.NewFoodItem(dto.Name, dto.Quantity, dto.Instructions)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
