package controllers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/golomb1/board-creator-monopoly/app/models"
	"github.com/golomb1/board-creator-monopoly/pkg"
	"github.com/golomb1/board-creator-monopoly/platform/board"
	"github.com/golomb1/board-creator-monopoly/platform/database"
)

func CreateGame(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	gameCreateDto := new(models.GameCreateDto)
	if err := c.BodyParser(gameCreateDto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	game := &models.Game{
		Id:     pkg.RandString(8),
		Name:   gameCreateDto.Name,
		Status: "waiting",
	}

	if _, err := db.Model(game).Insert(); err != nil {
		logrus.WithError(err).Error("failed creating game")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{"id": game.Id})
}

func GetAllAvailGames(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	var games []models.Game
	if err := db.Model(&games).Where("status = ?", "waiting").Select(); err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(games)
}

func VerifyGame(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	verifyGameDto := new(models.VerifyGameDto)
	if err := c.QueryParser(verifyGameDto); err != nil {
		return err
	}

	game := &models.Game{Id: verifyGameDto.Code}
	if err := db.Model(game).WherePK().Select(); err != nil {
		return c.JSON(fiber.Map{"status": false})
	}
	return c.JSON(fiber.Map{"status": true})
}

// GetSettings returns the game's configuration document, falling back to
// the built-in defaults when none was uploaded.
func GetSettings(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	game := &models.Game{Id: c.Params("id")}
	if err := db.Model(game).WherePK().Select(); err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if game.Settings == "" {
		return c.JSON(board.DefaultSettings())
	}
	c.Set("Content-Type", "application/json")
	return c.SendString(game.Settings)
}

// UpdateSettings replaces the game's configuration document. The document is
// validated before it is stored; the engine treats it as read-only input.
func UpdateSettings(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	game := &models.Game{Id: c.Params("id")}
	if err := db.Model(game).WherePK().Select(); err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	var settings models.GameSettings
	if err := json.Unmarshal(c.Body(), &settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid settings document"})
	}
	if err := board.Validate(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	game.Settings = string(c.Body())
	if _, err := db.Model(game).WherePK().Set("settings = ?", game.Settings).Update(); err != nil {
		logrus.WithError(err).Error("failed updating settings")
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.SendStatus(fiber.StatusOK)
}
