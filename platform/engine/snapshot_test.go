package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golomb1/board-creator-monopoly/platform/board"
)

func TestSnapshotRoundTrip(t *testing.T) {
	g := newTestGame(t)
	giveProperty(t, g, "2", 15)
	g.applyRoll(1, 2)
	require.NoError(t, g.BuyProperty("1", 3))
	req, err := g.SendBuyRequest("1", "2", 15)
	require.NoError(t, err)
	require.NoError(t, g.EndTurn())

	data, err := json.Marshal(g.Snapshot())
	require.NoError(t, err)

	var snap Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))

	restored := NewGame(board.DefaultSettings())
	restored.Restore(&snap)

	assert.Equal(t, 1, restored.Current)
	assert.True(t, restored.InProgress)
	assert.Equal(t, PhaseRoll, restored.Phase())

	buyer := restored.playerById("1")
	require.NotNil(t, buyer)
	assert.Equal(t, 3, buyer.Position)
	assert.Equal(t, 1400-220, buyer.Spendable())
	assert.True(t, buyer.OwnsProperty(3))

	assert.Equal(t, "1", restored.spaceById(3).OwnerId, "ownership re-derived from property sets")
	assert.Equal(t, "2", restored.spaceById(15).OwnerId)

	restoredReq := restored.requestById(req.Id)
	require.NotNil(t, restoredReq)
	assert.Equal(t, 220, restoredReq.Amount)

	// The pending request survives the round trip and can still be settled.
	require.NoError(t, restored.RespondToBuyRequest(req.Id, true))
	assert.Equal(t, 0, restored.playerById("1").LockedMoney)
}

func TestRestoreIgnoresEmptySnapshot(t *testing.T) {
	g := newTestGame(t)
	g.applyRoll(1, 2)

	g.Restore(nil)
	g.Restore(&Snapshot{})

	assert.True(t, g.InProgress)
	assert.Equal(t, 3, g.Players[0].Position)
}

func TestResetClearsEverything(t *testing.T) {
	g := newTestGame(t)
	g.applyRoll(1, 2)
	require.NoError(t, g.BuyProperty("1", 3))
	giveProperty(t, g, "2", 15)
	_, err := g.SendBuyRequest("1", "2", 15)
	require.NoError(t, err)

	g.Reset()

	assert.False(t, g.InProgress)
	assert.Nil(t, g.Winner)
	assert.Empty(t, g.Requests)
	assert.Equal(t, 0, g.Current)
	assert.Equal(t, PhaseRoll, g.Phase())
	for _, p := range g.Players {
		assert.Equal(t, 1500, p.Money)
		assert.Zero(t, p.LockedMoney)
		assert.Empty(t, p.Properties)
		assert.Zero(t, p.Position)
	}
	for _, space := range g.Spaces {
		assert.Empty(t, space.OwnerId)
	}
}
