package kernel

import (
	"fmt"
	"strings"

	"hospitalfood/internal/pkg/errs"
)

// MaxFoodItemQuantity caps the servings of one item in one order.
const MaxFoodItemQuantity = 50

// FoodItem is one line of an order or meal plan.
type FoodItem struct {
	name         string
	quantity     int
	instructions string
}

func NewFoodItem(name string, quantity int, instructions string) (FoodItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return FoodItem{}, errs.NewValueIsRequiredError("food item name")
	}
	if quantity <= 0 || quantity > MaxFoodItemQuantity {
		return FoodItem{}, errs.NewValueIsOutOfRangeErrorWithCause("quantity", quantity, 1, MaxFoodItemQuantity,
			fmt.Errorf("quantity of %s is out of range", name))
	}

	return FoodItem{
		name:         name,
		quantity:     quantity,
		instructions: strings.TrimSpace(instructions),
	}, nil
}

func (f FoodItem) Name() string {
	return f.name
}

func (f FoodItem) Quantity() int {
	return f.quantity
}

func (f FoodItem) Instructions() string {
	return f.instructions
}

func (f FoodItem) IsZero() bool {
	return f.name == ""
}
