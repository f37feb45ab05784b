package engine

import (
	"fmt"

	"github.com/golomb1/board-creator-monopoly/app/models"
	"github.com/sirupsen/logrus"
)

func (g *Game) drawActionCard() *models.ActionCard {
	deck := g.settings.ActionCards
	if len(deck) == 0 {
		return nil
	}
	// Decks sample with replacement; drawing never shrinks them.
	card := deck[g.rng.Intn(len(deck))]
	return &card
}

func (g *Game) drawQuestionCard() *models.QuestionCard {
	deck := g.settings.QuestionCards
	if len(deck) == 0 {
		return nil
	}
	card := deck[g.rng.Intn(len(deck))]
	return &card
}

// CardResult reports what applying a drawn card did.
type CardResult struct {
	PlayerId  string         `json:"playerId"`
	Message   string         `json:"message"`
	ExtraTurn bool           `json:"extraTurn"`
	Winner    *models.Player `json:"winner,omitempty"`
}

// AcknowledgeActionCard applies the pending action card's effect and lifts
// the turn suspension. An extra-turn card returns the same player to the
// roll phase instead of letting the turn end.
func (g *Game) AcknowledgeActionCard(playerId string) (*CardResult, error) {
	if g.phase != PhaseAwaitAction || g.pendingAction == nil {
		return nil, ErrInvalidTransition
	}
	p := g.CurrentPlayer()
	if p.Id != playerId {
		return nil, ErrNotYourTurn
	}
	card := g.pendingAction
	g.pendingAction = nil

	message, extraTurn := g.applyActionEffect(p, card)
	if extraTurn {
		g.phase = PhaseRoll
	} else {
		g.phase = PhaseActions
	}
	g.checkWin()
	return &CardResult{
		PlayerId:  p.Id,
		Message:   message,
		ExtraTurn: extraTurn,
		Winner:    g.Winner,
	}, nil
}

func (g *Game) applyActionEffect(p *models.Player, card *models.ActionCard) (string, bool) {
	switch card.Effect {
	case models.EffectGoToJail:
		p.Position = g.jailPosition()
		return fmt.Sprintf("%s goes to jail!", p.Name), false

	case models.EffectSkipTurn:
		p.SkipNextTurn = true
		return fmt.Sprintf("%s will skip their next turn", p.Name), false

	case models.EffectExtraTurn:
		return fmt.Sprintf("%s gets an extra turn!", p.Name), true

	case models.EffectCollectMoney:
		amount := card.Value
		if amount == 0 {
			amount = defaultCollect
		}
		p.Money += amount
		return fmt.Sprintf("%s collected $%d!", p.Name, amount), false

	case models.EffectPayMoney:
		amount := card.Value
		if amount == 0 {
			amount = defaultPay
		}
		amount = g.chargePlayer(p, amount)
		return fmt.Sprintf("%s paid $%d", p.Name, amount), false

	case models.EffectAdvance:
		spaces := card.Value
		if spaces == 0 {
			spaces = defaultAdvance
		}
		p.Position = (p.Position + spaces) % len(g.Spaces)
		// Advancing does not re-trigger landing effects on the new space.
		return fmt.Sprintf("%s advances %d spaces", p.Name, spaces), false

	default:
		logrus.WithField("effect", card.Effect).Warn("unknown action card effect")
		return fmt.Sprintf("Unknown action: %s", card.Title), false
	}
}

// AnswerQuestion resolves the pending question card with the player's
// selected option. A correct answer pays the reward; a wrong one charges the
// penalty, floored at zero.
func (g *Game) AnswerQuestion(playerId string, selectedAnswer int) (*CardResult, error) {
	if g.phase != PhaseAwaitQuestion || g.pendingQuestion == nil {
		return nil, ErrInvalidTransition
	}
	p := g.CurrentPlayer()
	if p.Id != playerId {
		return nil, ErrNotYourTurn
	}
	card := g.pendingQuestion
	g.pendingQuestion = nil
	g.phase = PhaseActions

	var message string
	if selectedAnswer == card.CorrectAnswer {
		p.Money += card.Reward
		message = fmt.Sprintf("Correct! %s earned $%d", p.Name, card.Reward)
	} else {
		penalty := g.chargePlayer(p, card.Penalty)
		message = fmt.Sprintf("Wrong answer. %s lost $%d", p.Name, penalty)
	}
	g.checkWin()
	return &CardResult{
		PlayerId: p.Id,
		Message:  message,
		Winner:   g.Winner,
	}, nil
}
