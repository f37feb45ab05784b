package engine

import "github.com/golomb1/board-creator-monopoly/app/models"

// Snapshot is the serializable slice of game state owned by the storage
// collaborator. Board and card configuration travel separately as the
// settings document; space ownership is re-derived from the player property
// sets on restore.
type Snapshot struct {
	Players        []*models.Player     `json:"players"`
	CurrentPlayer  int                  `json:"currentPlayer"`
	BuyRequests    []*models.BuyRequest `json:"buyRequests"`
	GameInProgress bool                 `json:"gameInProgress"`
}

// Snapshot captures the persistable state of the session.
func (g *Game) Snapshot() *Snapshot {
	return &Snapshot{
		Players:        g.Players,
		CurrentPlayer:  g.Current,
		BuyRequests:    g.Requests,
		GameInProgress: g.InProgress,
	}
}

// Restore rehydrates a session from a stored snapshot. The game resumes at
// the roll phase; card suspensions are not persisted.
func (g *Game) Restore(snap *Snapshot) {
	if snap == nil || len(snap.Players) == 0 {
		return
	}
	g.Players = snap.Players
	g.Current = snap.CurrentPlayer % len(snap.Players)
	g.Requests = snap.BuyRequests
	g.InProgress = snap.GameInProgress
	g.Winner = nil
	g.phase = PhaseRoll
	g.pendingAction = nil
	g.pendingQuestion = nil

	for _, space := range g.Spaces {
		space.OwnerId = ""
	}
	for _, p := range g.Players {
		if p.Properties == nil {
			p.Properties = []int{}
		}
		for _, id := range p.Properties {
			if space := g.spaceById(id); space != nil {
				space.OwnerId = p.Id
			}
		}
	}
	g.checkWin()
}
