package engine

import (
	"errors"
	"testing"
)

func TestCatalogCoversAllCategories(t *testing.T) {
	for _, category := range Categories {
		if !ValidCategory(category) {
			t.Errorf("category %q missing from catalog", category)
		}
		defs, err := CatalogNutrients(category)
		if err != nil {
			t.Errorf("CatalogNutrients(%q): %v", category, err)
			continue
		}
		if len(defs) == 0 {
			t.Errorf("category %q has no nutrients", category)
		}
		for _, def := range defs {
			if def.DefaultRequired < 0 {
				t.Errorf("%s/%s has negative default requirement %v", category, def.Name, def.DefaultRequired)
			}
		}
	}
}

func TestLookupNutrient(t *testing.T) {
	def, err := LookupNutrient(NutrientKey{CategoryVitamins, "VitaminC"})
	if err != nil {
		t.Fatalf("LookupNutrient returned error: %v", err)
	}
	if def.DefaultRequired != 90 {
		t.Errorf("VitaminC default = %v, want 90", def.DefaultRequired)
	}

	if _, err := LookupNutrient(NutrientKey{CategoryVitamins, "VitaminZ"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown nutrient: got %v, want ErrNotFound", err)
	}
	if _, err := LookupNutrient(NutrientKey{"macros", "Protein"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown category: got %v, want ErrNotFound", err)
	}
}
