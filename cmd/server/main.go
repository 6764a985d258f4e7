package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "recipebook/docs" // swagger docs

	"recipebook/internal/auth"
	"recipebook/internal/cache"
	"recipebook/internal/config"
	"recipebook/internal/db"
	"recipebook/internal/handler"
	"recipebook/internal/mail"
	"recipebook/internal/model"
	"recipebook/internal/repository"
	"recipebook/internal/router"
	"recipebook/internal/service"
)

// @title Recipe Book API
// @version 1.0
// @description Multi-tenant recipe organizer with categories, recipes and JWT authentication.
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.RevokedToken{},
		&model.Category{},
		&model.Recipe{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	revokedTokenRepo := repository.NewRevokedTokenRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	recipeRepo := repository.NewRecipeRepository(gormDB)

	// Initialize auth components
	tokenStore := auth.NewTokenStore(revokedTokenRepo, cacheClient)
	tokenService := auth.NewTokenService(cfg.JWTSecret, tokenStore)

	var mailer mail.Mailer = mail.Noop{}
	if cfg.MailUser != "" {
		mailer = mail.NewSMTP(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailSender, cfg.ResetURL)
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenService, mailer)
	categoryService := service.NewCategoryService(categoryRepo, cacheClient)
	recipeService := service.NewRecipeService(categoryRepo, recipeRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	recipeHandler := handler.NewRecipeHandler(recipeService)

	// Register routes
	router.Register(e, cfg, tokenService, authHandler, categoryHandler, recipeHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
