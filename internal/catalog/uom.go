package catalog

import (
	"fmt"

	"kasirpos-backend/internal/models"
)

// ToBaseQuantity converts a quantity entered in any of a product's units
// into the base unit. The base unit itself converts with factor 1.
func ToBaseQuantity(p models.Product, qty float64, unit string) (float64, error) {
	if unit == "" || unit == p.Unit {
		return qty, nil
	}
	for _, conv := range p.Conversions {
		if conv.Unit == unit {
			return qty * conv.Factor, nil
		}
	}
	return 0, fmt.Errorf("unknown unit %q for product %s", unit, p.Name)
}
