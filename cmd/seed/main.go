package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"recipebook/internal/config"
	"recipebook/internal/db"
	"recipebook/internal/model"
	"recipebook/internal/repository"
)

const (
	demoEmail    = "demo@recipebook.local"
	demoPassword = "demopass"
)

var demoCategories = map[string][]model.Recipe{
	"Breakfast": {
		{Title: "pancakes", Description: "Whisk flour, milk and eggs; fry in butter."},
		{Title: "omelette", Description: "Beat eggs, season, fold over cheese."},
	},
	"Supper": {
		{Title: "pilau", Description: "Brown the onions, add rice and spices."},
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	cfg := config.Load()

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

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	categories := repository.NewCategoryRepository(gormDB)
	recipes := repository.NewRecipeRepository(gormDB)

	user, err := users.FindByEmail(ctx, demoEmail)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("find demo user: %v", err)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		user = &model.User{Email: demoEmail, Username: "demo", PasswordHash: string(hash)}
		if err := users.Create(ctx, user); err != nil {
			log.Fatalf("create demo user: %v", err)
		}
		log.Printf("created demo user %s", demoEmail)
	}

	seeded := 0
	for name, items := range demoCategories {
		category, err := categories.FindByName(ctx, name, user.ID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Fatalf("find category %s: %v", name, err)
			}
			category = &model.Category{Name: name, CreatedBy: user.ID}
			if err := categories.Create(ctx, category); err != nil {
				log.Fatalf("create category %s: %v", name, err)
			}
		}
		for _, item := range items {
			if _, err := recipes.FindByTitle(ctx, item.Title, category.ID); err == nil {
				continue
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Fatalf("find recipe %s: %v", item.Title, err)
			}
			recipe := item
			recipe.CategoryIdentity = category.ID
			if err := recipes.Create(ctx, &recipe); err != nil {
				log.Fatalf("create recipe %s: %v", recipe.Title, err)
			}
			seeded++
		}
	}

	log.Printf("seed completed, %d recipes created", seeded)
}
