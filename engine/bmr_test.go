package engine

import (
	"errors"
	"math"
	"testing"
)

func TestComputeBMR_MifflinStJeor(t *testing.T) {
	cases := []struct {
		name    string
		profile BodyProfile
		want    float64 // rounded
	}{
		{"male reference", BodyProfile{Age: 30, Sex: SexMale, WeightKg: 70, HeightCm: 175}, 1649},
		{"female reference", BodyProfile{Age: 30, Sex: SexFemale, WeightKg: 70, HeightCm: 175}, 1483},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeBMR(tc.profile, nil)
			if err != nil {
				t.Fatalf("ComputeBMR returned error: %v", err)
			}
			if math.Round(got) != tc.want {
				t.Errorf("ComputeBMR = %.2f (rounds to %.0f), want %.0f", got, math.Round(got), tc.want)
			}
		})
	}
}

func TestComputeBMR_CustomOverride(t *testing.T) {
	override := 1800.0
	got, err := ComputeBMR(BodyProfile{}, &override)
	if err != nil {
		t.Fatalf("ComputeBMR with override returned error: %v", err)
	}
	if got != 1800 {
		t.Errorf("override not returned unchanged: got %.2f", got)
	}

	// A non-positive override does not bypass validation.
	zero := 0.0
	if _, err := ComputeBMR(BodyProfile{}, &zero); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero override on empty profile: got %v, want ErrInvalidInput", err)
	}
}

func TestComputeBMR_InvalidInput(t *testing.T) {
	valid := BodyProfile{Age: 30, Sex: SexMale, WeightKg: 70, HeightCm: 175}

	cases := []struct {
		name  string
		mutFn func(p *BodyProfile)
	}{
		{"zero weight", func(p *BodyProfile) { p.WeightKg = 0 }},
		{"negative weight", func(p *BodyProfile) { p.WeightKg = -70 }},
		{"zero height", func(p *BodyProfile) { p.HeightCm = 0 }},
		{"zero age", func(p *BodyProfile) { p.Age = 0 }},
		{"unknown sex", func(p *BodyProfile) { p.Sex = "Unspecified" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutFn(&p)
			if _, err := ComputeBMR(p, nil); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("got %v, want ErrInvalidInput", err)
			}
		})
	}
}
