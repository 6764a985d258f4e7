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

// RecipeHandler handles recipe endpoints nested under a category.
type RecipeHandler struct {
	recipeService service.RecipeService
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(recipeService service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// RecipeRequest represents a recipe create or edit request.
type RecipeRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// RecipeResponse wraps a single recipe.
type RecipeResponse struct {
	Message string        `json:"message"`
	Recipe  *model.Recipe `json:"recipe"`
}

// RecipeListResponse wraps a page of recipes.
type RecipeListResponse struct {
	Recipes []model.Recipe `json:"recipes"`
	service.Pagination
}

func recipeTitleNotAString() error {
	return &apperrors.ValidationError{
		Kind:    apperrors.KindNotAString,
		Message: "recipe title should not be an integer",
	}
}

// Create godoc
// @Summary Create a recipe in a category
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "category id"
// @Param request body RecipeRequest true "Recipe title and description"
// @Success 201 {object} RecipeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /categories/{id}/recipes [post]
func (h *RecipeHandler) Create(c echo.Context) error {
	categoryID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req RecipeRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, bindNameError(err, recipeTitleNotAString()))
	}

	recipe, err := h.recipeService.Create(c.Request().Context(), auth.UserID(c), categoryID, req.Title, req.Description)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, RecipeResponse{
		Message: "Recipe " + recipe.Title + " has been created",
		Recipe:  recipe,
	})
}

// List godoc
// @Summary List recipes in a category with search and pagination
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param id path int true "category id"
// @Param q query string false "case-insensitive substring match on title or description"
// @Param page query int false "1-based page number"
// @Param limit query int false "page size"
// @Success 200 {object} RecipeListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id}/recipes [get]
func (h *RecipeHandler) List(c echo.Context) error {
	categoryID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	page := intQuery(c, 1, "page")
	perPage := intQuery(c, service.DefaultRecipePageSize, "limit", "per_page")
	q := c.QueryParam("q")

	recipes, pagination, err := h.recipeService.List(c.Request().Context(), auth.UserID(c), categoryID, q, page, perPage)
	if err != nil {
		return respondError(c, err)
	}
	if len(recipes) == 0 {
		return respondError(c, apperrors.ErrRecipeNotFound)
	}

	return c.JSON(http.StatusOK, RecipeListResponse{
		Recipes:    recipes,
		Pagination: pagination,
	})
}

// Get godoc
// @Summary Get a recipe by id
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param id path int true "category id"
// @Param recipe_id path int true "recipe id"
// @Success 200 {object} RecipeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id}/recipes/{recipe_id} [get]
func (h *RecipeHandler) Get(c echo.Context) error {
	categoryID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	recipeID, err := pathID(c, "recipe_id")
	if err != nil {
		return err
	}

	recipe, err := h.recipeService.Get(c.Request().Context(), auth.UserID(c), categoryID, recipeID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, RecipeResponse{
		Message: fmt.Sprintf("recipe %d found", recipe.ID),
		Recipe:  recipe,
	})
}

// Update godoc
// @Summary Edit a recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "category id"
// @Param recipe_id path int true "recipe id"
// @Param request body RecipeRequest true "New title and description"
// @Success 200 {object} RecipeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id}/recipes/{recipe_id} [put]
func (h *RecipeHandler) Update(c echo.Context) error {
	categoryID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	recipeID, err := pathID(c, "recipe_id")
	if err != nil {
		return err
	}

	var req RecipeRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, bindNameError(err, recipeTitleNotAString()))
	}

	recipe, err := h.recipeService.Update(c.Request().Context(), auth.UserID(c), categoryID, recipeID, req.Title, req.Description)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, RecipeResponse{
		Message: "Recipe has been updated",
		Recipe:  recipe,
	})
}

// Delete godoc
// @Summary Delete a recipe
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param id path int true "category id"
// @Param recipe_id path int true "recipe id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id}/recipes/{recipe_id} [delete]
func (h *RecipeHandler) Delete(c echo.Context) error {
	categoryID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	recipeID, err := pathID(c, "recipe_id")
	if err != nil {
		return err
	}

	if err := h.recipeService.Delete(c.Request().Context(), auth.UserID(c), categoryID, recipeID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("recipe %d deleted", recipeID),
	})
}
