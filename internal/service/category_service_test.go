package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "recipebook/internal/errors"
	"recipebook/internal/model"
)

const ownerID = uint(7)

func TestCategoryService_Create(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		setupMock     func(*MockCategoryRepository)
		expectedError error
		expectedName  string
	}{
		{
			name:  "name is title-cased before storage",
			input: "sunday lunch",
			setupMock: func(m *MockCategoryRepository) {
				m.On("FindByName", mock.Anything, "Sunday Lunch", ownerID).
					Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Category")).Return(nil)
			},
			expectedName: "Sunday Lunch",
		},
		{
			name:  "duplicate differs only by case",
			input: "lunch",
			setupMock: func(m *MockCategoryRepository) {
				// "lunch" normalizes to "Lunch", which this owner already has
				m.On("FindByName", mock.Anything, "Lunch", ownerID).
					Return(&model.Category{ID: 3, Name: "Lunch", CreatedBy: ownerID}, nil)
			},
			expectedError: apperrors.ErrCategoryExists,
		},
		{
			name:  "store-level uniqueness is the race backstop",
			input: "Lunch",
			setupMock: func(m *MockCategoryRepository) {
				m.On("FindByName", mock.Anything, "Lunch", ownerID).
					Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Category")).
					Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrCategoryExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockCategoryRepository)
			tt.setupMock(repo)

			service := NewCategoryService(repo, nil)
			category, err := service.Create(context.Background(), ownerID, tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, category)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedName, category.Name)
				assert.Equal(t, ownerID, category.CreatedBy)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestCategoryService_CreateValidatesBeforeStore(t *testing.T) {
	repo := new(MockCategoryRepository)
	service := NewCategoryService(repo, nil)

	_, err := service.Create(context.Background(), ownerID, "123abc")

	var validationErr *apperrors.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, apperrors.KindContainsDigits, validationErr.Kind)
	// invalid names never reach the repository
	repo.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		repo.On("FindByID", mock.Anything, uint(3), ownerID).
			Return(&model.Category{ID: 3, Name: "Lunch", CreatedBy: ownerID}, nil)

		service := NewCategoryService(repo, nil)
		category, err := service.Get(context.Background(), ownerID, 3)
		assert.NoError(t, err)
		assert.Equal(t, "Lunch", category.Name)
	})

	t.Run("not owned is the same as absent", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		repo.On("FindByID", mock.Anything, uint(3), ownerID).
			Return(nil, gorm.ErrRecordNotFound)

		service := NewCategoryService(repo, nil)
		_, err := service.Get(context.Background(), ownerID, 3)
		assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
	})
}

func TestCategoryService_Update(t *testing.T) {
	t.Run("not-found check runs before the duplicate check", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		repo.On("FindByID", mock.Anything, uint(3), ownerID).
			Return(nil, gorm.ErrRecordNotFound)

		service := NewCategoryService(repo, nil)
		_, err := service.Update(context.Background(), ownerID, 3, "Dinner")

		assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
		// another owner's names can never produce a conflict here
		repo.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rename to a taken name conflicts", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		repo.On("FindByID", mock.Anything, uint(3), ownerID).
			Return(&model.Category{ID: 3, Name: "Lunch", CreatedBy: ownerID}, nil)
		repo.On("FindByName", mock.Anything, "Dinner", ownerID).
			Return(&model.Category{ID: 4, Name: "Dinner", CreatedBy: ownerID}, nil)

		service := NewCategoryService(repo, nil)
		_, err := service.Update(context.Background(), ownerID, 3, "dinner")
		assert.ErrorIs(t, err, apperrors.ErrCategoryExists)
	})

	t.Run("same-name rename is a no-op success", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		repo.On("FindByID", mock.Anything, uint(3), ownerID).
			Return(&model.Category{ID: 3, Name: "Lunch", CreatedBy: ownerID}, nil)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Category")).Return(nil)

		service := NewCategoryService(repo, nil)
		category, err := service.Update(context.Background(), ownerID, 3, "lunch")
		assert.NoError(t, err)
		assert.Equal(t, "Lunch", category.Name)
		repo.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCategoryService_Delete(t *testing.T) {
	t.Run("delete cascades through the repository", func(t *testing.T) {
		category := &model.Category{ID: 3, Name: "Lunch", CreatedBy: ownerID}
		repo := new(MockCategoryRepository)
		repo.On("FindByID", mock.Anything, uint(3), ownerID).Return(category, nil)
		repo.On("Delete", mock.Anything, category).Return(nil)

		service := NewCategoryService(repo, nil)
		assert.NoError(t, service.Delete(context.Background(), ownerID, 3))
		repo.AssertExpectations(t)
	})

	t.Run("deleting another owner's category is not found", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		repo.On("FindByID", mock.Anything, uint(3), ownerID).
			Return(nil, gorm.ErrRecordNotFound)

		service := NewCategoryService(repo, nil)
		err := service.Delete(context.Background(), ownerID, 3)
		assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestCategoryService_ListPagination(t *testing.T) {
	t.Run("first of two pages has a next page and no previous", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		repo.On("List", mock.Anything, ownerID, "", 1, 1).
			Return([]model.Category{{ID: 1, Name: "Lunch"}}, int64(2), nil)

		service := NewCategoryService(repo, nil)
		categories, pagination, err := service.List(context.Background(), ownerID, "", 1, 1)

		assert.NoError(t, err)
		assert.Len(t, categories, 1)
		assert.Equal(t, int64(2), pagination.Total)
		if assert.NotNil(t, pagination.NextPage) {
			assert.Equal(t, 2, *pagination.NextPage)
		}
		assert.Nil(t, pagination.PrevPage)
	})

	t.Run("page beyond the data is empty, not an error", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		repo.On("List", mock.Anything, ownerID, "", 5, 1).
			Return([]model.Category{}, int64(2), nil)

		service := NewCategoryService(repo, nil)
		categories, pagination, err := service.List(context.Background(), ownerID, "", 5, 1)

		assert.NoError(t, err)
		assert.Empty(t, categories)
		assert.Nil(t, pagination.NextPage)
	})

	t.Run("search filter is passed through to the store", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		repo.On("List", mock.Anything, ownerID, "sup", 1, DefaultCategoryPageSize).
			Return([]model.Category{{ID: 2, Name: "Supper"}}, int64(1), nil)

		service := NewCategoryService(repo, nil)
		categories, _, err := service.List(context.Background(), ownerID, "sup", 1, 0)

		assert.NoError(t, err)
		assert.Len(t, categories, 1)
		repo.AssertExpectations(t)
	})
}
