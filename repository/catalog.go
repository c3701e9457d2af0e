package repository

import (
	"context"

	"github.com/YourGothDaddy/fitness-tracker-sub000/model"

	"gorm.io/gorm"
)

// CatalogRepository is a struct that holds the database connection.
type CatalogRepository struct {
	DB *gorm.DB
}

// NewCatalogRepository creates and returns a new CatalogRepository.
func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// CreateItem stores a new consumable item with its nutrient amounts.
func (r *CatalogRepository) CreateItem(ctx context.Context, item *model.ConsumableItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

// GetItem fetches a catalog item with nutrients, restricted to items the user
// may see: public ones and their own custom ones.
func (r *CatalogRepository) GetItem(ctx context.Context, id uint, userID uint) (*model.ConsumableItem, error) {
	var item model.ConsumableItem
	err := r.DB.WithContext(ctx).
		Preload("Nutrients").
		Where("id = ? AND (owner_id IS NULL OR owner_id = ?)", id, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// SearchItems runs a paginated case-insensitive name search. Page is
// 1-based; pageSize caps at 100.
func (r *CatalogRepository) SearchItems(ctx context.Context, userID uint, query string, page, pageSize int) ([]model.ConsumableItem, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	base := r.DB.WithContext(ctx).
		Model(&model.ConsumableItem{}).
		Where("owner_id IS NULL OR owner_id = ?", userID)
	if query != "" {
		// LOWER/LIKE instead of ILIKE so the query also runs on the
		// sqlite test database.
		base = base.Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []model.ConsumableItem
	err := base.
		Order("name asc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// DeleteItem removes a user's own custom item and its nutrient rows. Public
// items stay.
func (r *CatalogRepository) DeleteItem(ctx context.Context, id uint, userID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND owner_id = ?", id, userID).Delete(&model.ConsumableItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return tx.Where("consumable_item_id = ?", id).Delete(&model.ItemNutrient{}).Error
	})
}

// ListNutrientDefinitions returns the stored nutrient catalog, optionally
// filtered by category.
func (r *CatalogRepository) ListNutrientDefinitions(ctx context.Context, category string) ([]model.NutrientDefinition, error) {
	q := r.DB.WithContext(ctx).Order("id asc")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var defs []model.NutrientDefinition
	if err := q.Find(&defs).Error; err != nil {
		return nil, err
	}
	return defs, nil
}

// GetUserTargets returns a user's nutrient target overrides with their
// definitions preloaded.
func (r *CatalogRepository) GetUserTargets(ctx context.Context, userID uint) ([]model.UserNutrientTarget, error) {
	var targets []model.UserNutrientTarget
	err := r.DB.WithContext(ctx).
		Preload("Nutrient").
		Where("user_id = ?", userID).
		Find(&targets).Error
	if err != nil {
		return nil, err
	}
	return targets, nil
}

// UpsertUserTarget creates or replaces one nutrient target override.
func (r *CatalogRepository) UpsertUserTarget(ctx context.Context, target *model.UserNutrientTarget) error {
	var existing model.UserNutrientTarget
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND nutrient_id = ?", target.UserID, target.NutrientID).
		First(&existing).Error
	if err == nil {
		target.ID = existing.ID
		return r.DB.WithContext(ctx).Save(target).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.DB.WithContext(ctx).Create(target).Error
}
