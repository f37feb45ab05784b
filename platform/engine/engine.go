package engine

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/golomb1/board-creator-monopoly/app/models"
)

// Phase is the turn state machine position. A turn runs Roll -> Actions ->
// Roll for the next player; drawing a card suspends the turn in one of the
// await phases until the caller acknowledges or answers.
type Phase string

const (
	PhaseRoll          Phase = "roll"
	PhaseActions       Phase = "actions"
	PhaseAwaitAction   Phase = "await-action"
	PhaseAwaitQuestion Phase = "await-question"
	PhaseEnded         Phase = "ended"
)

const (
	goBonus       = 200
	startingMoney = 1500

	goToJailSpace   = 30
	fallbackJailPos = 10
	defaultCollect  = 200
	defaultPay      = 100
	defaultAdvance  = 3
	moneyWinAt      = 5000
	propertiesWinAt = 10
)

var playerColors = []string{
	"#e74c3c", "#3498db", "#2ecc71", "#f39c12",
	"#9b59b6", "#e67e22", "#1abc9c", "#34495e",
}

// Game is the single mutable aggregate for one session. All mutation goes
// through the exported operations so the ledger invariants hold: money >= 0,
// 0 <= lockedMoney <= money, unique property ownership.
type Game struct {
	Spaces     []*models.BoardSpace
	Players    []*models.Player
	Current    int
	Requests   []*models.BuyRequest
	InProgress bool
	Winner     *models.Player

	phase           Phase
	pendingAction   *models.ActionCard
	pendingQuestion *models.QuestionCard
	settings        *models.GameSettings
	rng             *rand.Rand
}

func NewGame(settings *models.GameSettings) *Game {
	g := &Game{
		settings: settings,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	g.Reset()
	return g
}

// Reset regenerates players and the board from settings, clears all buy
// requests and drops any snapshot-visible progress.
func (g *Game) Reset() {
	g.Spaces = make([]*models.BoardSpace, 0, len(g.settings.BoardSpaces))
	for i := range g.settings.BoardSpaces {
		space := g.settings.BoardSpaces[i]
		space.OwnerId = ""
		g.Spaces = append(g.Spaces, &space)
	}
	g.Players = generatePlayers(g.settings.NumberOfPlayers)
	g.Current = 0
	g.Requests = nil
	g.InProgress = false
	g.Winner = nil
	g.phase = PhaseRoll
	g.pendingAction = nil
	g.pendingQuestion = nil
}

func generatePlayers(count int) []*models.Player {
	players := make([]*models.Player, 0, count)
	for i := 0; i < count; i++ {
		color := "#95a5a6"
		if i < len(playerColors) {
			color = playerColors[i]
		}
		players = append(players, &models.Player{
			Id:         strconv.Itoa(i + 1),
			Name:       fmt.Sprintf("Player %d", i+1),
			Color:      color,
			Money:      startingMoney,
			Properties: []int{},
		})
	}
	return players
}

// Phase exposes the current state machine position to callers.
func (g *Game) Phase() Phase {
	return g.phase
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() *models.Player {
	return g.Players[g.Current]
}

// PendingAction returns the drawn action card awaiting acknowledgement, if any.
func (g *Game) PendingAction() *models.ActionCard {
	return g.pendingAction
}

// PendingQuestion returns the drawn question card awaiting an answer, if any.
func (g *Game) PendingQuestion() *models.QuestionCard {
	return g.pendingQuestion
}

func (g *Game) playerById(id string) *models.Player {
	for _, p := range g.Players {
		if p.Id == id {
			return p
		}
	}
	return nil
}

func (g *Game) spaceById(id int) *models.BoardSpace {
	for _, s := range g.Spaces {
		if s.Id == id {
			return s
		}
	}
	return nil
}

func (g *Game) requestById(id string) *models.BuyRequest {
	for _, r := range g.Requests {
		if r.Id == id {
			return r
		}
	}
	return nil
}

// chargePlayer deducts a forced payment from a player, clamped so it never
// dips into money held in escrow: lockedMoney stays covered by money and the
// balance never goes negative. Returns what was actually paid.
func (g *Game) chargePlayer(p *models.Player, amount int) int {
	if spendable := p.Spendable(); amount > spendable {
		amount = spendable
	}
	p.Money -= amount
	return amount
}

func (g *Game) jailPosition() int {
	for _, s := range g.Spaces {
		if s.Type == models.SpaceJail {
			return s.Id
		}
	}
	return fallbackJailPos
}

// RollResult is what a single rollDice operation produced: the dice, the
// movement outcome and whatever the landing triggered. When a card was drawn
// the turn is suspended until the matching acknowledge/answer call.
type RollResult struct {
	PlayerId  string               `json:"playerId"`
	Dice1     int                  `json:"dice1"`
	Dice2     int                  `json:"dice2"`
	Total     int                  `json:"total"`
	Forfeited bool                 `json:"forfeited"`
	PassedGo  bool                 `json:"passedGo"`
	Space     *models.BoardSpace   `json:"space,omitempty"`
	CanBuy    bool                 `json:"canBuy"`
	Action    *models.ActionCard   `json:"actionCard,omitempty"`
	Question  *models.QuestionCard `json:"questionCard,omitempty"`
	Messages  []string             `json:"messages"`
	Winner    *models.Player       `json:"winner,omitempty"`
}

// RollDice rolls two dice for the current player and resolves the landing.
// If the player is flagged to skip, the whole turn is forfeited: the flag is
// cleared, no dice are consumed, and play moves straight to the next player.
func (g *Game) RollDice() (*RollResult, error) {
	if g.phase != PhaseRoll {
		return nil, ErrInvalidTransition
	}
	p := g.CurrentPlayer()
	if p.SkipNextTurn {
		p.SkipNextTurn = false
		res := &RollResult{
			PlayerId:  p.Id,
			Forfeited: true,
			Messages:  []string{fmt.Sprintf("%s skips this turn", p.Name)},
		}
		g.advancePlayer()
		return res, nil
	}
	return g.applyRoll(g.rollDie(), g.rollDie()), nil
}

func (g *Game) rollDie() int {
	return g.rng.Intn(6) + 1
}

// applyRoll moves the current player by d1+d2 and resolves the landing
// effect. Split from RollDice so the movement rules stay testable with
// chosen dice.
func (g *Game) applyRoll(d1, d2 int) *RollResult {
	p := g.CurrentPlayer()
	total := d1 + d2
	res := &RollResult{
		PlayerId: p.Id,
		Dice1:    d1,
		Dice2:    d2,
		Total:    total,
	}

	n := len(g.Spaces)
	if p.Position+total >= n {
		p.Money += goBonus
		res.PassedGo = true
		res.Messages = append(res.Messages,
			fmt.Sprintf("%s passed GO and collected $%d", p.Name, goBonus))
	}
	p.Position = (p.Position + total) % n

	g.InProgress = true
	g.phase = PhaseActions
	g.resolveLanding(p, res)
	g.checkWin()
	res.Winner = g.Winner
	return res
}

// EndTurn closes the Actions phase and hands the turn to the next player.
// It is rejected while a drawn card is still awaiting its acknowledgement
// or answer.
func (g *Game) EndTurn() error {
	if g.phase != PhaseActions {
		return ErrInvalidTransition
	}
	g.advancePlayer()
	g.checkWin()
	return nil
}

func (g *Game) advancePlayer() {
	g.Current = (g.Current + 1) % len(g.Players)
	g.phase = PhaseRoll
}
