package main

import (
	"fmt"
	"os"

	"github.com/fabioramos-02/prisma-database/config"
	"github.com/fabioramos-02/prisma-database/models"
	"github.com/fabioramos-02/prisma-database/routes"
)

func main() {
	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}

	if err := models.AutoMigrate(); err != nil {
		config.Logger.Fatalf("migration failed: %v", err)
	}

	port := os.Getenv("PORT")
	if len(port) == 0 {
		port = "3000"
	}

	r := routes.SetupRouter()
	r.Listen(":" + port)
}
