package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"recipebook/internal/cache"
	apperrors "recipebook/internal/errors"
	"recipebook/internal/model"
	"recipebook/internal/repository"
)

const (
	categoryCacheTTL = 5 * time.Minute
	// DefaultCategoryPageSize is the per-page default for category listings.
	DefaultCategoryPageSize = 5
)

// titleCase normalizes a category name the way it is stored and compared.
// cases.Caser is not safe for concurrent use, so one is built per call.
func titleCase(name string) string {
	return cases.Title(language.English).String(name)
}

// CategoryService exposes owner-scoped category operations.
type CategoryService interface {
	Create(ctx context.Context, ownerID uint, name string) (*model.Category, error)
	List(ctx context.Context, ownerID uint, q string, page, perPage int) ([]model.Category, Pagination, error)
	Get(ctx context.Context, ownerID, id uint) (*model.Category, error)
	Update(ctx context.Context, ownerID, id uint, name string) (*model.Category, error)
	Delete(ctx context.Context, ownerID, id uint) error
}

type categoryService struct {
	categories repository.CategoryRepository
	validator  *NameValidator
	cache      *cache.Client
}

// NewCategoryService builds a CategoryService with repository and cache.
func NewCategoryService(categories repository.CategoryRepository, cache *cache.Client) CategoryService {
	return &categoryService{
		categories: categories,
		validator:  NewNameValidator("Category name"),
		cache:      cache,
	}
}

func (s *categoryService) cacheKey(ownerID, id uint) string {
	return fmt.Sprintf("category:%d:%d", ownerID, id)
}

// Create validates and title-cases the name, then stores the category for the
// owner. A name already used by the same owner is a conflict; other owners'
// names never collide.
func (s *categoryService) Create(ctx context.Context, ownerID uint, name string) (*model.Category, error) {
	if err := s.validator.Validate(name); err != nil {
		return nil, err
	}
	name = titleCase(name)

	existing, err := s.categories.FindByName(ctx, name, ownerID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check category existence: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCategoryExists
	}

	category := &model.Category{
		Name:      name,
		CreatedBy: ownerID,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, apperrors.ErrCategoryExists
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

// List returns one page of the owner's categories, optionally narrowed by a
// case-insensitive substring match on name. An out-of-range page yields an
// empty slice, not an error.
func (s *categoryService) List(ctx context.Context, ownerID uint, q string, page, perPage int) ([]model.Category, Pagination, error) {
	page, perPage = normalizePageParams(page, perPage, DefaultCategoryPageSize)

	categories, total, err := s.categories.List(ctx, ownerID, q, page, perPage)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("list categories: %w", err)
	}
	return categories, paginate(page, perPage, total), nil
}

// Get fetches one of the owner's categories. Absent and not-owned are the
// same not-found.
func (s *categoryService) Get(ctx context.Context, ownerID, id uint) (*model.Category, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(ownerID, id)); data != nil {
		var cached model.Category
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	category, err := s.categories.FindByID(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}

	if payload, err := json.Marshal(category); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(ownerID, id), payload, categoryCacheTTL)
	}
	return category, nil
}

// Update renames one of the owner's categories. The owner-scoped not-found
// check runs before the duplicate check, and the duplicate check ignores the
// category being renamed, so a same-name rename is a no-op success.
func (s *categoryService) Update(ctx context.Context, ownerID, id uint, name string) (*model.Category, error) {
	if err := s.validator.Validate(name); err != nil {
		return nil, err
	}

	category, err := s.categories.FindByID(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}

	name = titleCase(name)
	if name != category.Name {
		existing, err := s.categories.FindByName(ctx, name, ownerID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check category existence: %w", err)
		}
		if existing != nil && existing.ID != id {
			return nil, apperrors.ErrCategoryExists
		}
	}

	category.Name = name
	if err := s.categories.Update(ctx, category); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, apperrors.ErrCategoryExists
		}
		return nil, fmt.Errorf("update category: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(ownerID, id))
	return category, nil
}

// Delete removes one of the owner's categories and, through the store's
// cascade, every recipe it contains.
func (s *categoryService) Delete(ctx context.Context, ownerID, id uint) error {
	category, err := s.categories.FindByID(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return fmt.Errorf("find category: %w", err)
	}

	if err := s.categories.Delete(ctx, category); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(ownerID, id))
	return nil
}
