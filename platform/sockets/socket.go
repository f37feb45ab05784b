package socket

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/go-pg/pg/v10"
	"github.com/gomodule/redigo/redis"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/golomb1/board-creator-monopoly/app/models"
	"github.com/golomb1/board-creator-monopoly/platform/board"
	"github.com/golomb1/board-creator-monopoly/platform/cache"
	"github.com/golomb1/board-creator-monopoly/platform/database"
	"github.com/golomb1/board-creator-monopoly/platform/engine"
	"github.com/golomb1/board-creator-monopoly/platform/sessions"
)

// CreateSocketIOServer exposes the engine operations as socket events, one
// room per game. Mutating events persist a snapshot to Redis and broadcast
// the new state to the room.
func CreateSocketIOServer() {
	server, err := socketio.NewServer(nil)
	if err != nil {
		panic(err)
	}
	db := database.PostgreSQLConnection()
	defer db.Close()

	pool := cache.CreateRedisPool()
	defer pool.Close()

	manager := sessions.NewManager()

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		return nil
	})

	server.OnEvent("/", "join-game", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		gameId := result["game_id"]
		if gameId == "" {
			s.Emit("error-message", "game_id not passed")
			return
		}
		game, err := getGame(gameId, db)
		if err != nil {
			s.Emit("error-message", "Invalid game")
			s.Emit("failed")
			return
		}

		sess, created := openSession(manager, game, pool)
		s.Join(gameId)
		server.BroadcastToRoom("/", gameId, "player-join")
		s.Emit("joined-game", strconv.Itoa(server.RoomLen("/", gameId)))
		emitState(s, sess)
		if created {
			logrus.WithField("game", gameId).Info("session opened")
		}
	})

	server.OnEvent("/", "leave-game", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		s.Leave(result["game_id"])
		server.BroadcastToRoom("/", result["game_id"], "player-left")
	})

	server.OnEvent("/", "roll-dice", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		withSession(s, manager, result["game_id"], func(sess *sessions.Session) {
			var roll *engine.RollResult
			err := sess.With(func(g *engine.Game) error {
				if g.CurrentPlayer().Id != result["player_id"] {
					return engine.ErrNotYourTurn
				}
				var err error
				roll, err = g.RollDice()
				return err
			})
			if emitError(s, err) {
				return
			}
			payload, _ := json.Marshal(roll)
			server.BroadcastToRoom("/", sess.ID, "dice-rolled", string(payload))
			persistAndBroadcast(server, pool, sess)
		})
	})

	server.OnEvent("/", "buy-property", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		spaceId, convErr := strconv.Atoi(result["space_id"])
		if convErr != nil {
			s.Emit("error-message", "space_id must be a number")
			return
		}
		withSession(s, manager, result["game_id"], func(sess *sessions.Session) {
			err := sess.With(func(g *engine.Game) error {
				return g.BuyProperty(result["player_id"], spaceId)
			})
			if emitError(s, err) {
				return
			}
			persistAndBroadcast(server, pool, sess)
		})
	})

	server.OnEvent("/", "send-buy-request", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		propertyId, convErr := strconv.Atoi(result["property_id"])
		if convErr != nil {
			s.Emit("error-message", "property_id must be a number")
			return
		}
		withSession(s, manager, result["game_id"], func(sess *sessions.Session) {
			var req *models.BuyRequest
			err := sess.With(func(g *engine.Game) error {
				var err error
				req, err = g.SendBuyRequest(result["from_id"], result["to_id"], propertyId)
				return err
			})
			if emitError(s, err) {
				return
			}
			payload, _ := json.Marshal(req)
			server.BroadcastToRoom("/", sess.ID, "buy-request", string(payload))
			persistAndBroadcast(server, pool, sess)
		})
	})

	server.OnEvent("/", "respond-buy-request", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		withSession(s, manager, result["game_id"], func(sess *sessions.Session) {
			err := sess.With(func(g *engine.Game) error {
				return g.RespondToBuyRequest(result["request_id"], result["accept"] == "true")
			})
			if emitError(s, err) {
				return
			}
			persistAndBroadcast(server, pool, sess)
		})
	})

	server.OnEvent("/", "cancel-buy-request", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		withSession(s, manager, result["game_id"], func(sess *sessions.Session) {
			err := sess.With(func(g *engine.Game) error {
				return g.CancelBuyRequest(result["request_id"], result["player_id"])
			})
			if emitError(s, err) {
				return
			}
			persistAndBroadcast(server, pool, sess)
		})
	})

	server.OnEvent("/", "acknowledge-action", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		withSession(s, manager, result["game_id"], func(sess *sessions.Session) {
			var card *engine.CardResult
			err := sess.With(func(g *engine.Game) error {
				var err error
				card, err = g.AcknowledgeActionCard(result["player_id"])
				return err
			})
			if emitError(s, err) {
				return
			}
			payload, _ := json.Marshal(card)
			server.BroadcastToRoom("/", sess.ID, "action-resolved", string(payload))
			persistAndBroadcast(server, pool, sess)
		})
	})

	server.OnEvent("/", "answer-question", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		answer, convErr := strconv.Atoi(result["answer"])
		if convErr != nil {
			s.Emit("error-message", "answer must be a number")
			return
		}
		withSession(s, manager, result["game_id"], func(sess *sessions.Session) {
			var card *engine.CardResult
			err := sess.With(func(g *engine.Game) error {
				var err error
				card, err = g.AnswerQuestion(result["player_id"], answer)
				return err
			})
			if emitError(s, err) {
				return
			}
			payload, _ := json.Marshal(card)
			server.BroadcastToRoom("/", sess.ID, "question-resolved", string(payload))
			persistAndBroadcast(server, pool, sess)
		})
	})

	server.OnEvent("/", "end-turn", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		withSession(s, manager, result["game_id"], func(sess *sessions.Session) {
			err := sess.With(func(g *engine.Game) error {
				if g.CurrentPlayer().Id != result["player_id"] {
					return engine.ErrNotYourTurn
				}
				return g.EndTurn()
			})
			if emitError(s, err) {
				return
			}
			var next string
			sess.With(func(g *engine.Game) error {
				next = g.CurrentPlayer().Id
				return nil
			})
			server.BroadcastToRoom("/", sess.ID, "change-turn", next)
			persistAndBroadcast(server, pool, sess)
		})
	})

	server.OnEvent("/", "reset-game", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		withSession(s, manager, result["game_id"], func(sess *sessions.Session) {
			sess.With(func(g *engine.Game) error {
				g.Reset()
				return nil
			})
			conn := pool.Get()
			defer conn.Close()
			if err := cache.ClearSnapshot(sess.ID, conn); err != nil {
				logrus.WithError(err).Warn("failed clearing snapshot")
			}
			broadcastState(server, sess)
		})
	})

	server.OnEvent("/", "game-status", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		withSession(s, manager, result["game_id"], func(sess *sessions.Session) {
			var status *engine.GameStatus
			sess.With(func(g *engine.Game) error {
				status = g.Status()
				return nil
			})
			payload, _ := json.Marshal(status)
			s.Emit("game-status", string(payload))
		})
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		logrus.WithError(e).Error("socket error")
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		for _, room := range s.Rooms() {
			server.BroadcastToRoom("/", room, "player-left")
		}
		s.LeaveAll()
	})

	go server.Serve()
	defer server.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{corsOrigin()},
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", server)
	addr := os.Getenv("SOCKET_ADDR")
	if addr == "" {
		addr = ":8000"
	}
	http.ListenAndServe(addr, c.Handler(mux))
}

func corsOrigin() string {
	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		return origin
	}
	return "http://localhost:3000"
}

func parse(jsonStr string) map[string]string {
	var result map[string]string
	json.Unmarshal([]byte(jsonStr), &result)
	if result == nil {
		result = map[string]string{}
	}
	return result
}

func getGame(id string, db *pg.DB) (*models.Game, error) {
	game := &models.Game{Id: id}
	if err := db.Model(game).WherePK().Select(); err != nil {
		return nil, err
	}
	return game, nil
}

// openSession returns the live session for a game, hydrating a new one from
// the game's settings document and any stored snapshot. The snapshot is read
// before the session is registered and restored only on the creating path,
// so a concurrent join can never rewind a session that is already running.
func openSession(manager *sessions.Manager, game *models.Game, pool *redis.Pool) (*sessions.Session, bool) {
	if sess, ok := manager.Get(game.Id); ok {
		return sess, false
	}

	settings := board.DefaultSettings()
	if game.Settings != "" {
		var custom models.GameSettings
		if err := json.Unmarshal([]byte(game.Settings), &custom); err == nil && board.Validate(&custom) == nil {
			settings = &custom
		} else {
			logrus.WithField("game", game.Id).Warn("stored settings invalid, using defaults")
		}
	}

	conn := pool.Get()
	defer conn.Close()
	snap, err := cache.LoadSnapshot(game.Id, conn)
	if err != nil {
		logrus.WithError(err).WithField("game", game.Id).Warn("failed loading snapshot")
		snap = nil
	}

	return manager.GetOrCreate(game.Id, settings, func(g *engine.Game) {
		if snap != nil {
			g.Restore(snap)
		}
	})
}

func withSession(s socketio.Conn, manager *sessions.Manager, gameId string, fn func(*sessions.Session)) {
	sess, ok := manager.Get(gameId)
	if !ok {
		s.Emit("error-message", "Game session not found, join the game first")
		return
	}
	fn(sess)
}

// emitError reports a rejected operation to the caller. Engine rejections
// are expected states, not failures.
func emitError(s socketio.Conn, err error) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, engine.ErrNotYourTurn):
		s.Emit("error-message", "Not your turn")
	case errors.Is(err, engine.ErrInvalidTransition):
		s.Emit("error-message", "That action is not available right now")
	case errors.Is(err, engine.ErrInsufficientFunds):
		s.Emit("error-message", "Not enough money")
	default:
		s.Emit("error-message", err.Error())
	}
	return true
}

func persistAndBroadcast(server *socketio.Server, pool *redis.Pool, sess *sessions.Session) {
	var snap *engine.Snapshot
	var winner *models.Player
	sess.With(func(g *engine.Game) error {
		snap = g.Snapshot()
		winner = g.Winner
		return nil
	})

	conn := pool.Get()
	defer conn.Close()
	if err := cache.SaveSnapshot(sess.ID, snap, conn); err != nil {
		logrus.WithError(err).WithField("game", sess.ID).Warn("failed saving snapshot")
	}

	payload, _ := json.Marshal(snap)
	server.BroadcastToRoom("/", sess.ID, "game-state", string(payload))
	if winner != nil {
		winnerJson, _ := json.Marshal(winner)
		server.BroadcastToRoom("/", sess.ID, "game-over", string(winnerJson))
	}
}

func broadcastState(server *socketio.Server, sess *sessions.Session) {
	var snap *engine.Snapshot
	sess.With(func(g *engine.Game) error {
		snap = g.Snapshot()
		return nil
	})
	payload, _ := json.Marshal(snap)
	server.BroadcastToRoom("/", sess.ID, "game-state", string(payload))
}

func emitState(s socketio.Conn, sess *sessions.Session) {
	var snap *engine.Snapshot
	sess.With(func(g *engine.Game) error {
		snap = g.Snapshot()
		return nil
	})
	payload, _ := json.Marshal(snap)
	s.Emit("game-state", string(payload))
}
