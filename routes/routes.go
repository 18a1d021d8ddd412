package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fabioramos-02/prisma-database/controllers"
)

func SetupRouter() *fiber.App {
	app := fiber.New()

	app.Get("/timestamp", controllers.GetTimestamp)

	app.Get("/transactions", controllers.GetTransactions)
	app.Post("/transactions", controllers.CreateTransaction)
	app.Put("/transactions", controllers.UpdateTransaction)
	app.Delete("/transactions", controllers.DeleteTransaction)

	app.Get("/categories", controllers.GetCategories)
	app.Post("/categories", controllers.CreateCategory)
	app.Put("/categories", controllers.UpdateCategory)
	app.Delete("/categories", controllers.DeleteCategory)

	app.Get("/users", controllers.GetUsers)
	app.Post("/users", controllers.CreateUser)
	app.Put("/users", controllers.UpdateUser)
	app.Delete("/users", controllers.DeleteUser)

	app.Get("/accounts", controllers.GetAccounts)

	return app
}
