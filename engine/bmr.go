package engine

import "fmt"

// Sex as used by the Mifflin-St Jeor sex term.
type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
)

// BodyProfile carries the body metrics BMR depends on.
type BodyProfile struct {
	Age      int
	Sex      Sex
	WeightKg float64
	HeightCm float64
}

// ComputeBMR returns the basal metabolic rate in kcal/day.
//
// When customBMR points at a positive value it is returned unchanged and the
// formula is bypassed entirely. Otherwise Mifflin-St Jeor applies:
//
//	BMR = 10*weight + 6.25*height - 5*age + sexTerm
//
// with sexTerm +5 for Male and -161 for Female. The result is kept in full
// precision; rounding happens once at display time.
func ComputeBMR(p BodyProfile, customBMR *float64) (float64, error) {
	if customBMR != nil && *customBMR > 0 {
		return *customBMR, nil
	}
	if p.WeightKg <= 0 {
		return 0, fmt.Errorf("weight must be positive: %w", ErrInvalidInput)
	}
	if p.HeightCm <= 0 {
		return 0, fmt.Errorf("height must be positive: %w", ErrInvalidInput)
	}
	if p.Age <= 0 {
		return 0, fmt.Errorf("age must be positive: %w", ErrInvalidInput)
	}

	var sexTerm float64
	switch p.Sex {
	case SexMale:
		sexTerm = 5
	case SexFemale:
		sexTerm = -161
	default:
		return 0, fmt.Errorf("unknown sex %q: %w", p.Sex, ErrInvalidInput)
	}

	return 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age) + sexTerm, nil
}
