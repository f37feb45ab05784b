package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/sirupsen/logrus"

	"github.com/golomb1/board-creator-monopoly/app/controllers"
	"github.com/golomb1/board-creator-monopoly/pkg"
	"github.com/golomb1/board-creator-monopoly/pkg/routes"
	"github.com/golomb1/board-creator-monopoly/platform/database"
	"github.com/golomb1/board-creator-monopoly/platform/logging"
	socket "github.com/golomb1/board-creator-monopoly/platform/sockets"
)

func main() {
	logging.Init()

	db := database.PostgreSQLConnection()
	if err := database.CreateSchema(db); err != nil {
		logrus.WithError(err).Fatal("failed creating schema")
	}
	db.Close()

	app := fiber.New()

	app.Use(cors.New())
	routes.AuthRoutes(app)
	routes.GameRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: pkg.JWTSecret(),
	}))

	app.Get("/user/cur", controllers.Cur)

	go socket.CreateSocketIOServer()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":4101"
	}
	app.Listen(addr)
}
