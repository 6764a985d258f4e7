package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"recipebook/internal/auth"
	"recipebook/internal/config"
	"recipebook/internal/handler"
)

// Register wires routes and middleware. Everything except registration,
// login and the reset-mail trigger sits behind the bearer-token guard.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokens *auth.TokenService,
	authHandler *handler.AuthHandler,
	categoryHandler *handler.CategoryHandler,
	recipeHandler *handler.RecipeHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/send_email", authHandler.SendResetEmail)

	// Secured routes (require a valid, non-revoked bearer token)
	secured := api.Group("", auth.Middleware(tokens))

	secured.POST("/auth/logout", authHandler.Logout)
	secured.POST("/auth/reset_password", authHandler.ResetPassword)

	// Category routes
	secured.POST("/categories/", categoryHandler.Create)
	secured.GET("/categories/", categoryHandler.List)
	secured.GET("/categories/:id", categoryHandler.Get)
	secured.PUT("/categories/:id", categoryHandler.Update)
	secured.DELETE("/categories/:id", categoryHandler.Delete)

	// Recipe routes, nested under their category
	secured.POST("/categories/:id/recipes", recipeHandler.Create)
	secured.GET("/categories/:id/recipes", recipeHandler.List)
	secured.GET("/categories/:id/recipes/:recipe_id", recipeHandler.Get)
	secured.PUT("/categories/:id/recipes/:recipe_id", recipeHandler.Update)
	secured.DELETE("/categories/:id/recipes/:recipe_id", recipeHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
