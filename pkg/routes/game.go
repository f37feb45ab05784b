package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/golomb1/board-creator-monopoly/app/controllers"
)

func GameRoutes(a *fiber.App) {
	route := a.Group("/game")

	route.Post("/create", controllers.CreateGame)
	route.Get("/verify", controllers.VerifyGame)
	route.Get("/all", controllers.GetAllAvailGames)
	route.Get("/:id/settings", controllers.GetSettings)
	route.Put("/:id/settings", controllers.UpdateSettings)
}
