package engine

import (
	"errors"
	"math"
	"testing"
)

func TestConvertToGrams(t *testing.T) {
	cases := []struct {
		amount float64
		unit   string
		want   float64
	}{
		{250, "g", 250},
		{1.5, "kg", 1500},
		{500, "mg", 0.5},
		{2, "oz", 56.69904625},
		{200, "ml", 200},
		{1, "cup", 236.5882365},
	}
	for _, tc := range cases {
		got, err := ConvertToGrams(tc.amount, tc.unit, nil)
		if err != nil {
			t.Errorf("ConvertToGrams(%v, %q): %v", tc.amount, tc.unit, err)
			continue
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("ConvertToGrams(%v, %q) = %v, want %v", tc.amount, tc.unit, got, tc.want)
		}
	}
}

func TestConvertToGrams_Piece(t *testing.T) {
	perPiece := 55.0
	got, err := ConvertToGrams(3, "piece", &perPiece)
	if err != nil {
		t.Fatalf("ConvertToGrams returned error: %v", err)
	}
	if got != 165 {
		t.Errorf("3 pieces * 55g = %v, want 165", got)
	}

	// Piece without a factor is rejected, never guessed.
	if _, err := ConvertToGrams(3, "piece", nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("piece without factor: got %v, want ErrInvalidInput", err)
	}
	zero := 0.0
	if _, err := ConvertToGrams(3, "pcs", &zero); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("piece with zero factor: got %v, want ErrInvalidInput", err)
	}
}

func TestConvertToGrams_InvalidInput(t *testing.T) {
	if _, err := ConvertToGrams(-1, "g", nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative amount: got %v, want ErrInvalidInput", err)
	}
	if _, err := ConvertToGrams(100, "stone", nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown unit: got %v, want ErrInvalidInput", err)
	}
}
