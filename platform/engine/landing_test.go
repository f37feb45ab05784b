package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func giveProperty(t *testing.T, g *Game, playerId string, spaceId int) {
	t.Helper()
	p := g.playerById(playerId)
	require.NotNil(t, p)
	space := g.spaceById(spaceId)
	require.NotNil(t, space)
	p.Properties = append(p.Properties, spaceId)
	space.OwnerId = playerId
}

func TestRentIsPaidToTheOwner(t *testing.T) {
	g := newTestGame(t)
	giveProperty(t, g, "2", 6) // rent 18

	g.applyRoll(3, 3)

	assert.Equal(t, 1482, g.Players[0].Money)
	assert.Equal(t, 1518, g.playerById("2").Money, "rent is credited, not just deducted")
}

func TestRentFloorsAtZero(t *testing.T) {
	g := newTestGame(t)
	giveProperty(t, g, "2", 15) // rent 30
	g.Players[0].Position = 9
	g.Players[0].Money = 10

	g.applyRoll(3, 3)

	assert.Equal(t, 0, g.Players[0].Money, "payer never goes negative")
	assert.Equal(t, 1510, g.playerById("2").Money, "owner receives only what was paid")
}

func TestNoRentOnOwnProperty(t *testing.T) {
	g := newTestGame(t)
	giveProperty(t, g, "1", 6)

	g.applyRoll(3, 3)

	assert.Equal(t, 1500, g.Players[0].Money)
}

func TestUnownedPropertyOffersPurchase(t *testing.T) {
	g := newTestGame(t)

	res := g.applyRoll(1, 2) // pos 3, unowned property

	assert.True(t, res.CanBuy)
	assert.Equal(t, 1500, g.Players[0].Money, "no automatic purchase")
}

func TestGoToJailCornerMovesToJail(t *testing.T) {
	g := newTestGame(t)
	g.Players[0].Position = 25

	g.applyRoll(2, 3) // lands on 30

	assert.Equal(t, 10, g.Players[0].Position)
}

func TestJailSpaceIsJustVisiting(t *testing.T) {
	g := newTestGame(t)
	g.Players[0].Position = 4

	g.applyRoll(3, 3) // lands on 10, the jail space

	assert.Equal(t, 10, g.Players[0].Position)
	assert.Equal(t, 1500, g.Players[0].Money)
	assert.Equal(t, PhaseActions, g.Phase())
}
