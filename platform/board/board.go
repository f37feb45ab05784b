package board

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	_ "embed"

	"github.com/golomb1/board-creator-monopoly/app/models"
)

//go:embed settings.json
var defaultSettingsJSON []byte

// DefaultSettings returns the built-in game configuration: the 40-space
// board plus the stock question and action decks.
func DefaultSettings() *models.GameSettings {
	settings, err := parseSettings(defaultSettingsJSON)
	if err != nil {
		panic(err)
	}
	return settings
}

// LoadSettings reads a settings document from path, falling back to the
// built-in configuration when path is empty.
func LoadSettings(path string) (*models.GameSettings, error) {
	if path == "" {
		return DefaultSettings(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	return parseSettings(data)
}

func parseSettings(data []byte) (*models.GameSettings, error) {
	var settings models.GameSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	if err := Validate(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Validate rejects configurations the engine cannot run on.
func Validate(settings *models.GameSettings) error {
	if len(settings.BoardSpaces) == 0 {
		return errors.New("settings: board has no spaces")
	}
	if settings.NumberOfPlayers < 2 {
		return errors.New("settings: need at least 2 players")
	}
	seen := make(map[int]bool, len(settings.BoardSpaces))
	for i, space := range settings.BoardSpaces {
		if space.Id != i {
			return fmt.Errorf("settings: space %d out of ring order", space.Id)
		}
		if seen[space.Id] {
			return fmt.Errorf("settings: duplicate space id %d", space.Id)
		}
		seen[space.Id] = true
		if space.Type == models.SpaceProperty && space.Price <= 0 {
			return fmt.Errorf("settings: property %q has no price", space.Name)
		}
	}
	return nil
}

// GetByPos finds the space at a board position.
func GetByPos(pos int, spaces []models.BoardSpace) (models.BoardSpace, error) {
	for _, space := range spaces {
		if space.Id == pos {
			return space, nil
		}
	}
	return models.BoardSpace{}, errors.New("not found")
}
