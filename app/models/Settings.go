package models

// GameSettings is the board/card configuration document. It is produced by
// the settings editor and treated as read-only input by the engine.
type GameSettings struct {
	GameTitle       string         `json:"gameTitle"`
	NumberOfPlayers int            `json:"numberOfPlayers"`
	Properties      []PropertyCard `json:"properties"`
	BoardSpaces     []BoardSpace   `json:"boardSpaces"`
	QuestionCards   []QuestionCard `json:"questionCards"`
	ActionCards     []ActionCard   `json:"actionCards"`
}
