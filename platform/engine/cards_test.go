package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golomb1/board-creator-monopoly/app/models"
)

// stageAction puts the game in the await-action phase with a chosen card,
// as if the current player had just drawn it.
func stageAction(g *Game, card models.ActionCard) {
	g.pendingAction = &card
	g.phase = PhaseAwaitAction
}

func stageQuestion(g *Game, card models.QuestionCard) {
	g.pendingQuestion = &card
	g.phase = PhaseAwaitQuestion
}

func TestGoToJailCard(t *testing.T) {
	g := newTestGame(t)
	g.Players[0].Position = 22
	stageAction(g, models.ActionCard{Id: "a1", Title: "Go to Jail", Effect: models.EffectGoToJail})

	res, err := g.AcknowledgeActionCard("1")
	require.NoError(t, err)

	assert.Equal(t, 10, g.Players[0].Position)
	assert.False(t, res.ExtraTurn)
	assert.Equal(t, PhaseActions, g.Phase())
}

func TestSkipTurnCardConsumedOnNextRoll(t *testing.T) {
	g := newTestGame(t)
	stageAction(g, models.ActionCard{Id: "a2", Title: "Skip Turn", Effect: models.EffectSkipTurn})

	_, err := g.AcknowledgeActionCard("1")
	require.NoError(t, err)
	require.True(t, g.Players[0].SkipNextTurn)
	require.NoError(t, g.EndTurn())

	// Rotate back around to player 1.
	for i := 1; i < len(g.Players); i++ {
		g.phase = PhaseActions
		require.NoError(t, g.EndTurn())
	}
	require.Equal(t, 0, g.Current)

	res, err := g.RollDice()
	require.NoError(t, err)
	assert.True(t, res.Forfeited)
	assert.False(t, g.Players[0].SkipNextTurn)
}

func TestCollectMoneyCard(t *testing.T) {
	g := newTestGame(t)
	stageAction(g, models.ActionCard{Id: "a7", Title: "Birthday Money", Effect: models.EffectCollectMoney, Value: 150})

	_, err := g.AcknowledgeActionCard("1")
	require.NoError(t, err)

	assert.Equal(t, 1650, g.Players[0].Money)
}

func TestCollectMoneyDefaultsTo200(t *testing.T) {
	g := newTestGame(t)
	stageAction(g, models.ActionCard{Id: "a4", Title: "Bank Error", Effect: models.EffectCollectMoney})

	_, err := g.AcknowledgeActionCard("1")
	require.NoError(t, err)

	assert.Equal(t, 1700, g.Players[0].Money)
}

func TestPayMoneyCardFloorsAtZero(t *testing.T) {
	g := newTestGame(t)
	g.Players[0].Money = 50
	stageAction(g, models.ActionCard{Id: "a8", Title: "Parking Fine", Effect: models.EffectPayMoney, Value: 75})

	_, err := g.AcknowledgeActionCard("1")
	require.NoError(t, err)

	assert.Equal(t, 0, g.Players[0].Money)
}

func TestPayMoneyCardSparesEscrowedMoney(t *testing.T) {
	g := newTestGame(t)
	giveProperty(t, g, "2", 15) // price 220
	_, err := g.SendBuyRequest("1", "2", 15)
	require.NoError(t, err)
	p := g.Players[0]
	p.Money = 300 // spendable 80
	stageAction(g, models.ActionCard{Id: "a5", Title: "Pay Tax", Effect: models.EffectPayMoney, Value: 100})

	_, err = g.AcknowledgeActionCard("1")
	require.NoError(t, err)

	assert.Equal(t, 220, p.Money, "payment clamps to the spendable balance")
	assert.Equal(t, 220, p.LockedMoney)
	assert.LessOrEqual(t, p.LockedMoney, p.Money)
}

func TestPayMoneyDefaultsTo100(t *testing.T) {
	g := newTestGame(t)
	stageAction(g, models.ActionCard{Id: "a5", Title: "Pay Tax", Effect: models.EffectPayMoney})

	_, err := g.AcknowledgeActionCard("1")
	require.NoError(t, err)

	assert.Equal(t, 1400, g.Players[0].Money)
}

func TestAdvanceSpacesWrapsWithoutChainedEffects(t *testing.T) {
	g := newTestGame(t)
	g.Players[0].Position = 39
	stageAction(g, models.ActionCard{Id: "a6", Title: "Advance 3 Spaces", Effect: models.EffectAdvance, Value: 3})

	_, err := g.AcknowledgeActionCard("1")
	require.NoError(t, err)

	assert.Equal(t, 2, g.Players[0].Position)
	// Position 2 is a question space, but advancing never re-triggers
	// landing effects.
	assert.Nil(t, g.PendingQuestion())
	assert.Equal(t, PhaseActions, g.Phase())
	assert.Equal(t, 1500, g.Players[0].Money, "no pass-GO bonus from a card move")
}

func TestUnknownCardEffectIsLoggedNoOp(t *testing.T) {
	g := newTestGame(t)
	before := *g.Players[0]
	stageAction(g, models.ActionCard{Id: "a9", Title: "Teleport", Effect: "teleport"})

	res, err := g.AcknowledgeActionCard("1")
	require.NoError(t, err)

	assert.Equal(t, "Unknown action: Teleport", res.Message)
	assert.Equal(t, before, *g.Players[0], "unknown effects never mutate state")
	assert.Equal(t, PhaseActions, g.Phase(), "the turn can still proceed")
	require.NoError(t, g.EndTurn())
}

func TestAcknowledgeRequiresCurrentPlayer(t *testing.T) {
	g := newTestGame(t)
	stageAction(g, models.ActionCard{Id: "a4", Effect: models.EffectCollectMoney})

	_, err := g.AcknowledgeActionCard("2")
	assert.ErrorIs(t, err, ErrNotYourTurn)

	_, err = g.AcknowledgeActionCard("1")
	require.NoError(t, err)

	_, err = g.AcknowledgeActionCard("1")
	assert.ErrorIs(t, err, ErrInvalidTransition, "nothing left to acknowledge")
}

func TestCorrectAnswerPaysReward(t *testing.T) {
	g := newTestGame(t)
	stageQuestion(g, models.QuestionCard{
		Id: "q2", Question: "What is the capital of France?",
		Options:       []string{"London", "Berlin", "Paris", "Madrid"},
		CorrectAnswer: 2, Reward: 150, Penalty: 75,
	})

	res, err := g.AnswerQuestion("1", 2)
	require.NoError(t, err)

	assert.Equal(t, 1650, g.Players[0].Money)
	assert.Contains(t, res.Message, "Correct")
}

func TestWrongAnswerChargesPenaltyFlooredAtZero(t *testing.T) {
	g := newTestGame(t)
	g.Players[0].Money = 40
	stageQuestion(g, models.QuestionCard{
		Id: "q1", CorrectAnswer: 1, Reward: 100, Penalty: 50,
		Options: []string{"3", "4", "5", "6"},
	})

	_, err := g.AnswerQuestion("1", 0)
	require.NoError(t, err)

	assert.Equal(t, 0, g.Players[0].Money)
}

func TestWrongAnswerPenaltySparesEscrowedMoney(t *testing.T) {
	g := newTestGame(t)
	giveProperty(t, g, "2", 15) // price 220
	_, err := g.SendBuyRequest("1", "2", 15)
	require.NoError(t, err)
	p := g.Players[0]
	p.Money = 250 // spendable 30
	stageQuestion(g, models.QuestionCard{
		Id: "q1", CorrectAnswer: 1, Reward: 100, Penalty: 50,
		Options: []string{"3", "4", "5", "6"},
	})

	_, err = g.AnswerQuestion("1", 0)
	require.NoError(t, err)

	assert.Equal(t, 220, p.Money, "penalty clamps to the spendable balance")
	assert.Equal(t, 220, p.LockedMoney)
	assert.LessOrEqual(t, p.LockedMoney, p.Money)
}

func TestAnswerQuestionResolvedExactlyOnce(t *testing.T) {
	g := newTestGame(t)
	stageQuestion(g, models.QuestionCard{Id: "q1", CorrectAnswer: 0, Reward: 100, Penalty: 50})

	_, err := g.AnswerQuestion("2", 0)
	assert.ErrorIs(t, err, ErrNotYourTurn)

	_, err = g.AnswerQuestion("1", 0)
	require.NoError(t, err)
	require.Equal(t, 1600, g.Players[0].Money)

	_, err = g.AnswerQuestion("1", 0)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 1600, g.Players[0].Money)
}
