package engine

import (
	"fmt"

	"github.com/golomb1/board-creator-monopoly/app/models"
)

// resolveLanding applies the automatic consequence of stopping on a space.
// Dispatch is purely on the space type; card draws leave the turn suspended
// in the matching await phase.
func (g *Game) resolveLanding(p *models.Player, res *RollResult) {
	space := g.spaceById(p.Position)
	if space == nil {
		return
	}
	res.Space = space
	res.Messages = append(res.Messages, fmt.Sprintf("%s landed on %s", p.Name, space.Name))

	switch space.Type {
	case models.SpaceProperty:
		g.resolvePropertyLanding(p, space, res)

	case models.SpaceCorner:
		if space.Id == goToJailSpace {
			p.Position = g.jailPosition()
			res.Messages = append(res.Messages, fmt.Sprintf("%s goes to jail!", p.Name))
		}
		// Landing exactly on GO adds nothing here; the pass-GO bonus was
		// already granted during movement.

	case models.SpaceJail:
		res.Messages = append(res.Messages, fmt.Sprintf("%s is just visiting jail", p.Name))

	case models.SpaceAction:
		if card := g.drawActionCard(); card != nil {
			g.pendingAction = card
			g.phase = PhaseAwaitAction
			res.Action = card
			res.Messages = append(res.Messages, fmt.Sprintf("%s drew an action card: %s", p.Name, card.Title))
		}

	case models.SpaceQuestion:
		if card := g.drawQuestionCard(); card != nil {
			g.pendingQuestion = card
			g.phase = PhaseAwaitQuestion
			res.Question = card
			res.Messages = append(res.Messages, fmt.Sprintf("%s drew a question card", p.Name))
		}
	}
}

func (g *Game) resolvePropertyLanding(p *models.Player, space *models.BoardSpace, res *RollResult) {
	switch {
	case space.OwnerId == "" && space.Price > 0:
		res.CanBuy = true

	case space.OwnerId != "" && space.OwnerId != p.Id && space.Rent > 0:
		owner := g.playerById(space.OwnerId)
		if owner == nil {
			return
		}
		// Rent is clamped to what the payer can spend; nobody goes into
		// debt and escrowed money stays untouched.
		rent := g.chargePlayer(p, space.Rent)
		owner.Money += rent
		res.Messages = append(res.Messages,
			fmt.Sprintf("%s paid $%d rent to %s for %s", p.Name, rent, owner.Name, space.Name))
	}
}
