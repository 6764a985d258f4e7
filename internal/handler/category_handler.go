package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"recipebook/internal/auth"
	apperrors "recipebook/internal/errors"
	"recipebook/internal/model"
	"recipebook/internal/service"
)

// CategoryHandler handles category endpoints. The caller's identity always
// comes from the guard, never from the request body.
type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest represents a category create or rename request. The name
// field is statically a string; non-string JSON is rejected at bind time.
type CategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse wraps a single category.
type CategoryResponse struct {
	Message  string          `json:"message"`
	Category *model.Category `json:"category"`
}

// CategoryListResponse wraps a page of categories.
type CategoryListResponse struct {
	Categories []model.Category `json:"categories"`
	service.Pagination
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "Category name"
// @Success 201 {object} CategoryResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /categories/ [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, bindNameError(err, &apperrors.ValidationError{
			Kind:    apperrors.KindNotAString,
			Message: "category name should not be an integer",
		}))
	}

	category, err := h.categoryService.Create(c.Request().Context(), auth.UserID(c), req.Name)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, CategoryResponse{
		Message:  "Category " + category.Name + " has been created",
		Category: category,
	})
}

// List godoc
// @Summary List categories with search and pagination
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param q query string false "case-insensitive substring match on name"
// @Param page query int false "1-based page number"
// @Param per_page query int false "page size"
// @Success 200 {object} CategoryListResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/ [get]
func (h *CategoryHandler) List(c echo.Context) error {
	page := intQuery(c, 1, "page")
	perPage := intQuery(c, service.DefaultCategoryPageSize, "per_page", "limit")
	q := c.QueryParam("q")

	categories, pagination, err := h.categoryService.List(c.Request().Context(), auth.UserID(c), q, page, perPage)
	if err != nil {
		return respondError(c, err)
	}
	if len(categories) == 0 {
		return respondError(c, apperrors.ErrCategoryNotFound)
	}

	return c.JSON(http.StatusOK, CategoryListResponse{
		Categories: categories,
		Pagination: pagination,
	})
}

// Get godoc
// @Summary Get a category by id
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "category id"
// @Success 200 {object} CategoryResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.categoryService.Get(c.Request().Context(), auth.UserID(c), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, CategoryResponse{
		Message:  fmt.Sprintf("category %d found", category.ID),
		Category: category,
	})
}

// Update godoc
// @Summary Rename a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "category id"
// @Param request body CategoryRequest true "New category name"
// @Success 200 {object} CategoryResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, bindNameError(err, &apperrors.ValidationError{
			Kind:    apperrors.KindNotAString,
			Message: "category name should not be an integer",
		}))
	}

	category, err := h.categoryService.Update(c.Request().Context(), auth.UserID(c), id, req.Name)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, CategoryResponse{
		Message:  "Category has been updated",
		Category: category,
	})
}

// Delete godoc
// @Summary Delete a category and its recipes
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "category id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.categoryService.Delete(c.Request().Context(), auth.UserID(c), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("category %d deleted", id),
	})
}
