package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fabioramos-02/prisma-database/config"
	"github.com/fabioramos-02/prisma-database/models"
)

func main() {
	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}

	if err := models.AutoMigrate(); err != nil {
		config.Logger.Fatalf("migration failed: %v", err)
	}

	path := "db/seeds.yml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	seeds, err := config.LoadSeeds(path)
	if err != nil {
		config.Logger.Fatalf("cannot load seeds: %v", err)
	}

	for _, name := range seeds.Categories {
		if _, err := models.CreateCategory(name); err != nil {
			if errors.Is(err, models.ErrCategoryNameTaken) {
				continue
			}

			config.Logger.Fatalf("cannot seed category %s: %v", name, err)
		}

		config.Logger.Infof("seeded category: %s", name)
	}

	for _, seed := range seeds.Users {
		var count int64
		config.DataBase.Model(&models.User{}).Where("email = ?", seed.Email).Count(&count)
		if count > 0 {
			continue
		}

		user := &models.User{
			Name:  seed.Name,
			Email: seed.Email,
			Config: &models.UserConfig{
				Currency: seed.Currency,
				Locale:   seed.Locale,
			},
		}

		if err := models.CreateUser(user); err != nil {
			config.Logger.Fatalf("cannot seed user %s: %v", seed.Email, err)
		}

		config.Logger.Infof("seeded user: %s", seed.Email)
	}
}
