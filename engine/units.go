package engine

import (
	"fmt"
	"strings"
)

// gramsPerUnit covers the mass and near-mass units a portion can be logged
// in. Milliliters are treated as grams (water-density approximation, the
// convention food labels use for liquids).
var gramsPerUnit = map[string]float64{
	"g":    1,
	"mg":   0.001,
	"kg":   1000,
	"oz":   28.349523125,
	"lb":   453.59237,
	"ml":   1,
	"l":    1000,
	"tsp":  4.92892159375,
	"tbsp": 14.78676478125,
	"cup":  236.5882365,
}

// UnitPiece requires an explicit grams-per-piece factor; there is no
// universal piece weight.
const UnitPiece = "piece"

// ConvertToGrams converts a logged amount in the given unit to grams.
// A "piece" unit fails with ErrInvalidInput unless gramsPerPiece is supplied
// and positive; unknown units fail with ErrInvalidInput.
func ConvertToGrams(amount float64, unit string, gramsPerPiece *float64) (float64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("amount must not be negative: %w", ErrInvalidInput)
	}

	normalized := strings.ToLower(strings.TrimSpace(unit))
	if normalized == UnitPiece || normalized == "pieces" || normalized == "pc" || normalized == "pcs" {
		if gramsPerPiece == nil || *gramsPerPiece <= 0 {
			return 0, fmt.Errorf("piece unit requires gramsPerPiece: %w", ErrInvalidInput)
		}
		return amount * *gramsPerPiece, nil
	}

	factor, ok := gramsPerUnit[normalized]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q: %w", unit, ErrInvalidInput)
	}
	return amount * factor, nil
}
