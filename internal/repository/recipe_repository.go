package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"recipebook/internal/model"
)

// RecipeRepository defines recipe persistence operations. All lookups are
// scoped to a category; callers must resolve that category through an
// owner-scoped fetch first.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *model.Recipe) error
	Update(ctx context.Context, recipe *model.Recipe) error
	FindByID(ctx context.Context, id, categoryID uint) (*model.Recipe, error)
	FindByTitle(ctx context.Context, title string, categoryID uint) (*model.Recipe, error)
	List(ctx context.Context, categoryID uint, q string, page, perPage int) ([]model.Recipe, int64, error)
	Delete(ctx context.Context, recipe *model.Recipe) error
}

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository.
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) Update(ctx context.Context, recipe *model.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) FindByID(ctx context.Context, id, categoryID uint) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := r.db.WithContext(ctx).
		Where("id = ? AND category_identity = ?", id, categoryID).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) FindByTitle(ctx context.Context, title string, categoryID uint) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := r.db.WithContext(ctx).
		Where("title = ? AND category_identity = ?", title, categoryID).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// List returns one page of the category's recipes plus the total count of the
// filtered set. The q filter matches title or description, case-insensitively,
// and narrows before paging.
func (r *recipeRepository) List(ctx context.Context, categoryID uint, q string, page, perPage int) ([]model.Recipe, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Recipe{}).Where("category_identity = ?", categoryID)
	if q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []model.Recipe
	if err := query.Order("id").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

func (r *recipeRepository) Delete(ctx context.Context, recipe *model.Recipe) error {
	return r.db.WithContext(ctx).Delete(recipe).Error
}
