package repository

import (
	"context"
	"testing"

	"github.com/YourGothDaddy/fitness-tracker-sub000/model"

	"gorm.io/gorm"
)

func TestGetItemOwnerScoping(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewCatalogRepository(gdb)
	ctx := context.Background()
	owner := createTestUser(t, gdb, "owner@example.com")
	other := createTestUser(t, gdb, "other@example.com")

	custom := &model.ConsumableItem{
		Name:            "Homemade granola",
		OwnerID:         &owner.ID,
		CaloriesPer100g: 450,
		ProteinPer100g:  10,
		CarbsPer100g:    60,
		FatPer100g:      18,
		Nutrients: []model.ItemNutrient{
			{Category: "carbohydrates", Name: "Fiber", AmountPer100g: 7},
		},
	}
	if err := repo.CreateItem(ctx, custom); err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	got, err := repo.GetItem(ctx, custom.ID, owner.ID)
	if err != nil {
		t.Fatalf("GetItem as owner: %v", err)
	}
	if len(got.Nutrients) != 1 || got.Nutrients[0].Name != "Fiber" {
		t.Errorf("nutrients not preloaded: %+v", got.Nutrients)
	}

	if _, err := repo.GetItem(ctx, custom.ID, other.ID); err != gorm.ErrRecordNotFound {
		t.Fatalf("GetItem as other user: got %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestSearchItems(t *testing.T) {
	gdb := seededTestDB(t)
	repo := NewCatalogRepository(gdb)
	ctx := context.Background()
	user := createTestUser(t, gdb, "search@example.com")

	custom := &model.ConsumableItem{Name: "Oat milk", OwnerID: &user.ID, CaloriesPer100g: 46}
	if err := repo.CreateItem(ctx, custom); err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	// Case-insensitive match finds the seeded "Rolled oats" and the
	// user's own "Oat milk".
	items, total, err := repo.SearchItems(ctx, user.ID, "OAT", 1, 20)
	if err != nil {
		t.Fatalf("SearchItems: %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
	names := map[string]bool{}
	for _, item := range items {
		names[item.Name] = true
	}
	if !names["Rolled oats"] || !names["Oat milk"] {
		t.Errorf("unexpected result set: %v", names)
	}

	// Another user must not see the custom item.
	_, total, err = repo.SearchItems(ctx, user.ID+1, "oat milk", 1, 20)
	if err != nil {
		t.Fatalf("SearchItems other user: %v", err)
	}
	if total != 0 {
		t.Errorf("other user total = %d, want 0", total)
	}
}

func TestSearchItemsPagination(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewCatalogRepository(gdb)
	ctx := context.Background()

	for _, name := range []string{"Apple", "Apricot", "Avocado"} {
		if err := repo.CreateItem(ctx, &model.ConsumableItem{Name: name, CaloriesPer100g: 50}); err != nil {
			t.Fatalf("CreateItem %s: %v", name, err)
		}
	}

	page1, total, err := repo.SearchItems(ctx, 1, "a", 1, 2)
	if err != nil {
		t.Fatalf("SearchItems page 1: %v", err)
	}
	if total != 3 || len(page1) != 2 {
		t.Fatalf("page 1: total=%d len=%d, want 3/2", total, len(page1))
	}
	page2, _, err := repo.SearchItems(ctx, 1, "a", 2, 2)
	if err != nil {
		t.Fatalf("SearchItems page 2: %v", err)
	}
	if len(page2) != 1 {
		t.Fatalf("page 2 len = %d, want 1", len(page2))
	}
	if page1[0].Name != "Apple" || page2[0].Name != "Avocado" {
		t.Errorf("name ordering wrong: page1[0]=%s page2[0]=%s", page1[0].Name, page2[0].Name)
	}
}

func TestDeleteItemOnlyOwn(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewCatalogRepository(gdb)
	ctx := context.Background()
	user := createTestUser(t, gdb, "delete@example.com")

	public := &model.ConsumableItem{Name: "Public rice", CaloriesPer100g: 130}
	custom := &model.ConsumableItem{Name: "My rice", OwnerID: &user.ID, CaloriesPer100g: 130}
	for _, item := range []*model.ConsumableItem{public, custom} {
		if err := repo.CreateItem(ctx, item); err != nil {
			t.Fatalf("CreateItem: %v", err)
		}
	}

	if err := repo.DeleteItem(ctx, custom.ID, user.ID); err != nil {
		t.Fatalf("DeleteItem custom: %v", err)
	}
	if err := repo.DeleteItem(ctx, public.ID, user.ID); err != nil {
		t.Fatalf("DeleteItem public: %v", err)
	}

	var count int64
	if err := gdb.Model(&model.ConsumableItem{}).Count(&count).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	// The public item survives the delete attempt.
	if count != 1 {
		t.Fatalf("got %d items, want 1", count)
	}
}

func TestDeleteItemRemovesNutrients(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewCatalogRepository(gdb)
	ctx := context.Background()
	user := createTestUser(t, gdb, "orphans@example.com")

	item := &model.ConsumableItem{
		Name: "Lentils", OwnerID: &user.ID, CaloriesPer100g: 116,
		Nutrients: []model.ItemNutrient{
			{Category: "carbohydrates", Name: "Fiber", AmountPer100g: 7.9},
			{Category: "minerals", Name: "Iron", AmountPer100g: 3.3},
		},
	}
	if err := repo.CreateItem(ctx, item); err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	if err := repo.DeleteItem(ctx, item.ID, user.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	var count int64
	if err := gdb.Model(&model.ItemNutrient{}).Where("consumable_item_id = ?", item.ID).Count(&count).Error; err != nil {
		t.Fatalf("count nutrients: %v", err)
	}
	if count != 0 {
		t.Errorf("nutrient rows left behind: %d", count)
	}
}

func TestUpsertUserTarget(t *testing.T) {
	gdb := seededTestDB(t)
	repo := NewCatalogRepository(gdb)
	ctx := context.Background()
	user := createTestUser(t, gdb, "targets@example.com")

	defs, err := repo.ListNutrientDefinitions(ctx, "minerals")
	if err != nil {
		t.Fatalf("ListNutrientDefinitions: %v", err)
	}
	if len(defs) == 0 {
		t.Fatal("no mineral definitions seeded")
	}
	nutrient := defs[0]

	target := &model.UserNutrientTarget{UserID: user.ID, NutrientID: nutrient.ID, RequiredAmount: 500, Visible: true}
	if err := repo.UpsertUserTarget(ctx, target); err != nil {
		t.Fatalf("UpsertUserTarget create: %v", err)
	}

	replacement := &model.UserNutrientTarget{UserID: user.ID, NutrientID: nutrient.ID, RequiredAmount: 750, Visible: true}
	if err := repo.UpsertUserTarget(ctx, replacement); err != nil {
		t.Fatalf("UpsertUserTarget update: %v", err)
	}

	targets, err := repo.GetUserTargets(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserTargets: %v", err)
	}
	if len(targets) != 1 {
		t.Fatalf("got %d targets, want 1", len(targets))
	}
	if targets[0].RequiredAmount != 750 {
		t.Errorf("RequiredAmount = %v, want 750", targets[0].RequiredAmount)
	}
	if targets[0].Nutrient.Name != nutrient.Name {
		t.Errorf("Nutrient not preloaded: %+v", targets[0].Nutrient)
	}
}
