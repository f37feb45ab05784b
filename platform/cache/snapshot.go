package cache

import (
	"encoding/json"
	"fmt"

	"github.com/gomodule/redigo/redis"

	"github.com/golomb1/board-creator-monopoly/platform/engine"
)

func snapshotKey(gameId string) string {
	return fmt.Sprintf("game.%s.state", gameId)
}

// SaveSnapshot persists the serializable game state for one session.
func SaveSnapshot(gameId string, snap *engine.Snapshot, conn redis.Conn) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot for %s: %w", gameId, err)
	}
	return Set(snapshotKey(gameId), data, conn)
}

// LoadSnapshot returns the stored snapshot for a session, or nil when none
// exists.
func LoadSnapshot(gameId string, conn redis.Conn) (*engine.Snapshot, error) {
	data, err := redis.Bytes(conn.Do("GET", snapshotKey(gameId)))
	if err == redis.ErrNil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis GET %s: %w", snapshotKey(gameId), err)
	}
	var snap engine.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot for %s: %w", gameId, err)
	}
	return &snap, nil
}

// ClearSnapshot drops a session's stored state.
func ClearSnapshot(gameId string, conn redis.Conn) error {
	return Del(snapshotKey(gameId), conn)
}
