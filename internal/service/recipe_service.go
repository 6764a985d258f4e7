package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "recipebook/internal/errors"
	"recipebook/internal/model"
	"recipebook/internal/repository"
)

// DefaultRecipePageSize is the per-page default for recipe listings.
const DefaultRecipePageSize = 2

// RecipeService exposes recipe operations scoped through the parent
// category's owner. Every operation resolves the category with an
// owner-scoped lookup first; a category the caller does not own is
// indistinguishable from one that does not exist.
type RecipeService interface {
	Create(ctx context.Context, ownerID, categoryID uint, title, description string) (*model.Recipe, error)
	List(ctx context.Context, ownerID, categoryID uint, q string, page, perPage int) ([]model.Recipe, Pagination, error)
	Get(ctx context.Context, ownerID, categoryID, recipeID uint) (*model.Recipe, error)
	Update(ctx context.Context, ownerID, categoryID, recipeID uint, title, description string) (*model.Recipe, error)
	Delete(ctx context.Context, ownerID, categoryID, recipeID uint) error
}

type recipeService struct {
	categories repository.CategoryRepository
	recipes    repository.RecipeRepository
	validator  *NameValidator
}

// NewRecipeService builds a RecipeService.
func NewRecipeService(categories repository.CategoryRepository, recipes repository.RecipeRepository) RecipeService {
	return &recipeService{
		categories: categories,
		recipes:    recipes,
		validator:  NewNameValidator("Recipe title"),
	}
}

// parentCategory resolves the owner-scoped category every recipe operation
// must pass through.
func (s *recipeService) parentCategory(ctx context.Context, ownerID, categoryID uint) (*model.Category, error) {
	category, err := s.categories.FindByID(ctx, categoryID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeCategoryMissing
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return category, nil
}

// Create validates and lower-cases the title, then stores the recipe in the
// owner's category. Titles are unique within the category.
func (s *recipeService) Create(ctx context.Context, ownerID, categoryID uint, title, description string) (*model.Recipe, error) {
	if err := s.validator.Validate(title); err != nil {
		return nil, err
	}

	if _, err := s.parentCategory(ctx, ownerID, categoryID); err != nil {
		return nil, err
	}

	title = strings.ToLower(strings.TrimSpace(title))
	existing, err := s.recipes.FindByTitle(ctx, title, categoryID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check recipe existence: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrRecipeExists
	}

	recipe := &model.Recipe{
		Title:            title,
		Description:      description,
		CategoryIdentity: categoryID,
	}
	if err := s.recipes.Create(ctx, recipe); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, apperrors.ErrRecipeExists
		}
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	return recipe, nil
}

// List returns one page of the category's recipes, optionally narrowed by a
// case-insensitive substring match on title or description.
func (s *recipeService) List(ctx context.Context, ownerID, categoryID uint, q string, page, perPage int) ([]model.Recipe, Pagination, error) {
	if _, err := s.parentCategory(ctx, ownerID, categoryID); err != nil {
		return nil, Pagination{}, err
	}

	page, perPage = normalizePageParams(page, perPage, DefaultRecipePageSize)

	recipes, total, err := s.recipes.List(ctx, categoryID, q, page, perPage)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, paginate(page, perPage, total), nil
}

// Get fetches one recipe from the owner's category.
func (s *recipeService) Get(ctx context.Context, ownerID, categoryID, recipeID uint) (*model.Recipe, error) {
	if _, err := s.parentCategory(ctx, ownerID, categoryID); err != nil {
		return nil, err
	}

	recipe, err := s.recipes.FindByID(ctx, recipeID, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("find recipe: %w", err)
	}
	return recipe, nil
}

// Update edits a recipe's title and description. The not-found check runs
// before the duplicate check; the duplicate check ignores the recipe being
// edited.
func (s *recipeService) Update(ctx context.Context, ownerID, categoryID, recipeID uint, title, description string) (*model.Recipe, error) {
	if err := s.validator.Validate(title); err != nil {
		return nil, err
	}

	if _, err := s.parentCategory(ctx, ownerID, categoryID); err != nil {
		return nil, err
	}

	recipe, err := s.recipes.FindByID(ctx, recipeID, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("find recipe: %w", err)
	}

	title = strings.ToLower(strings.TrimSpace(title))
	if title != recipe.Title {
		existing, err := s.recipes.FindByTitle(ctx, title, categoryID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check recipe existence: %w", err)
		}
		if existing != nil && existing.ID != recipeID {
			return nil, apperrors.ErrRecipeExists
		}
	}

	recipe.Title = title
	recipe.Description = description
	if err := s.recipes.Update(ctx, recipe); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, apperrors.ErrRecipeExists
		}
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	return recipe, nil
}

// Delete removes one recipe from the owner's category.
func (s *recipeService) Delete(ctx context.Context, ownerID, categoryID, recipeID uint) error {
	if _, err := s.parentCategory(ctx, ownerID, categoryID); err != nil {
		return err
	}

	recipe, err := s.recipes.FindByID(ctx, recipeID, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecipeNotFound
		}
		return fmt.Errorf("find recipe: %w", err)
	}

	if err := s.recipes.Delete(ctx, recipe); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}
