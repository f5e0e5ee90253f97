package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/battleship-backend/internal/entity"
)

// Mutations collects every entity changed by one game action. The store
// persists the whole set atomically: either all of it becomes visible or
// none of it does.
type Mutations struct {
	Games   []*entity.Game
	Players []*entity.Player
	Fleets  map[string][]*entity.Ship
}

func NewMutations() *Mutations {
	return &Mutations{
		Fleets: make(map[string][]*entity.Ship),
	}
}

func (that *Mutations) AddGame(game *entity.Game) *Mutations {
	that.Games = append(that.Games, game)
	return that
}

func (that *Mutations) AddPlayer(player *entity.Player) *Mutations {
	that.Players = append(that.Players, player)
	return that
}

func (that *Mutations) SetFleet(ownerID string, fleet []*entity.Ship) *Mutations {
	that.Fleets[ownerID] = fleet
	return that
}

type SessionStore interface {
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	GetPlayerByID(ctx context.Context, id string) (*entity.Player, error)
	GetFleetByOwnerID(ctx context.Context, ownerID string) ([]*entity.Ship, error)

	Commit(ctx context.Context, muts *Mutations) error
}

type sessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) SessionStore {
	return &sessionStore{
		client: client,
	}
}

// Commit queues every mutated entity on a single MULTI/EXEC pipeline, so
// the writes of one action are applied all-or-nothing.
func (that *sessionStore) Commit(ctx context.Context, muts *Mutations) error {
	pipe := that.client.TxPipeline()

	for _, game := range muts.Games {
		gameJSON, err := json.Marshal(game)
		if err != nil {
			return fmt.Errorf("could not marshal game: %w", err)
		}

		pipe.Set(ctx, gameKey(game.ID), gameJSON, 0)
	}

	for _, player := range muts.Players {
		playerJSON, err := json.Marshal(player)
		if err != nil {
			return fmt.Errorf("could not marshal player: %w", err)
		}

		pipe.Set(ctx, playerKey(player.ID), playerJSON, 0)
	}

	for ownerID, fleet := range muts.Fleets {
		fleetJSON, err := json.Marshal(fleet)
		if err != nil {
			return fmt.Errorf("could not marshal fleet: %w", err)
		}

		pipe.Set(ctx, fleetKey(ownerID), fleetJSON, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to commit mutations: %w", err)
	}

	return nil
}
