package engine

import "github.com/golomb1/board-creator-monopoly/app/models"

// WinConditionType names an independent win predicate. Conditions are
// evaluated in declaration order and the first match ends the game.
type WinConditionType string

const (
	WinByMoney        WinConditionType = "money"
	WinByProperties   WinConditionType = "properties"
	WinByLastStanding WinConditionType = "last-standing"

	// WinByMonopoly (completing a color group) is a declared extension
	// point; its grouping logic is not evaluated.
	WinByMonopoly WinConditionType = "monopoly"
)

type WinCondition struct {
	Type        WinConditionType `json:"type"`
	Threshold   int              `json:"threshold,omitempty"`
	Description string           `json:"description"`
}

func defaultWinConditions() []WinCondition {
	return []WinCondition{
		{Type: WinByMoney, Threshold: moneyWinAt, Description: "First to reach $5,000"},
		{Type: WinByProperties, Threshold: propertiesWinAt, Description: "Own 10 properties"},
		{Type: WinByLastStanding, Description: "Last player with money remaining"},
	}
}

// checkWin runs after every mutating operation. Once a winner is declared
// the game is terminal and no further turns are processed.
func (g *Game) checkWin() {
	if g.Winner != nil {
		return
	}
	for _, cond := range defaultWinConditions() {
		if winner := g.matchCondition(cond); winner != nil {
			g.Winner = winner
			g.InProgress = false
			g.phase = PhaseEnded
			return
		}
	}
}

func (g *Game) matchCondition(cond WinCondition) *models.Player {
	switch cond.Type {
	case WinByMoney:
		for _, p := range g.Players {
			if p.Money >= cond.Threshold {
				return p
			}
		}
	case WinByProperties:
		for _, p := range g.Players {
			if len(p.Properties) >= cond.Threshold {
				return p
			}
		}
	case WinByLastStanding:
		var standing *models.Player
		for _, p := range g.Players {
			if p.Money > 0 {
				if standing != nil {
					return nil
				}
				standing = p
			}
		}
		return standing
	}
	return nil
}

// GameStatus summarizes the session for callers.
type GameStatus struct {
	ActivePlayers   []*models.Player `json:"activePlayers"`
	BankruptPlayers []*models.Player `json:"bankruptPlayers"`
	GameEnded       bool             `json:"gameEnded"`
	Winner          *models.Player   `json:"winner,omitempty"`
}

// Status reports active and bankrupt players and whether the game has ended.
func (g *Game) Status() *GameStatus {
	status := &GameStatus{
		ActivePlayers:   []*models.Player{},
		BankruptPlayers: []*models.Player{},
		Winner:          g.Winner,
	}
	for _, p := range g.Players {
		if p.Money > 0 {
			status.ActivePlayers = append(status.ActivePlayers, p)
		} else {
			status.BankruptPlayers = append(status.BankruptPlayers, p)
		}
	}
	if status.Winner == nil && len(status.ActivePlayers) == 1 {
		status.Winner = status.ActivePlayers[0]
	}
	status.GameEnded = status.Winner != nil || len(status.ActivePlayers) <= 1
	return status
}
