package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"recipebook/internal/model"
)

// CategoryRepository defines category persistence operations. Every lookup
// filters by owner; an unscoped variant would let one tenant read another's
// data, so none exists.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id, ownerID uint) (*model.Category, error)
	FindByName(ctx context.Context, name string, ownerID uint) (*model.Category, error)
	List(ctx context.Context, ownerID uint, q string, page, perPage int) ([]model.Category, int64, error)
	Delete(ctx context.Context, category *model.Category) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) Update(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) FindByID(ctx context.Context, id, ownerID uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).
		Where("id = ? AND created_by = ?", id, ownerID).
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByName(ctx context.Context, name string, ownerID uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).
		Where("name = ? AND created_by = ?", name, ownerID).
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// List returns one page of the owner's categories plus the total count of the
// filtered set. The q filter narrows before paging, so an out-of-range page
// yields an empty slice and an unchanged total.
func (r *categoryRepository) List(ctx context.Context, ownerID uint, q string, page, perPage int) ([]model.Category, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Category{}).Where("created_by = ?", ownerID)
	if q != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []model.Category
	if err := query.Order("id").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&categories).Error; err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

// Delete removes a category and all its recipes in one transaction. The
// recipes go first so no orphan can survive a partial failure.
func (r *categoryRepository) Delete(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_identity = ?", category.ID).
			Delete(&model.Recipe{}).Error; err != nil {
			return err
		}
		return tx.Delete(category).Error
	})
}
