package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
	"github.com/rocketscienceinc/battleship-backend/internal/battleship"
	"github.com/rocketscienceinc/battleship-backend/internal/entity"
	"github.com/rocketscienceinc/battleship-backend/internal/pkg"
	"github.com/rocketscienceinc/battleship-backend/internal/repository"
)

type sessionStore interface {
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	GetPlayerByID(ctx context.Context, id string) (*entity.Player, error)
	GetFleetByOwnerID(ctx context.Context, ownerID string) ([]*entity.Ship, error)

	Commit(ctx context.Context, muts *repository.Mutations) error
}

// GameManager is the authoritative state machine over game sessions. It
// keeps no state of its own between calls: every action reloads the
// committed snapshot, validates against the current phase, and commits the
// whole outcome in one atomic store write under the per-game lock.
type GameManager struct {
	logger *slog.Logger
	store  sessionStore
	locks  *gameLocker

	newID func() string
}

func NewGameManager(logger *slog.Logger, store sessionStore) *GameManager {
	return &GameManager{
		logger: logger,
		store:  store,
		locks:  newGameLocker(),
		newID:  pkg.GenerateID,
	}
}

// CreateGame starts a new session awaiting an opponent and returns it with
// the freshly created player1.
func (that *GameManager) CreateGame(ctx context.Context) (*entity.Game, *entity.Player, error) {
	log := that.logger.With("method", "CreateGame")

	player := entity.NewPlayer(that.newID(), "")
	game := entity.NewGame(that.newID(), player.ID)
	player.GameID = game.ID

	muts := repository.NewMutations().AddGame(game).AddPlayer(player)
	if err := that.store.Commit(ctx, muts); err != nil {
		return nil, nil, fmt.Errorf("failed to commit new game: %w", err)
	}

	log.Info("game created", "gameID", game.ID, "playerID", player.ID)

	return game, player, nil
}

// JoinGame seats a second player in a game that is still awaiting one and
// advances the game to the fleet-placing phase.
func (that *GameManager) JoinGame(ctx context.Context, gameID string) (*entity.Game, *entity.Player, error) {
	log := that.logger.With("method", "JoinGame")

	defer that.locks.Lock(gameID)()

	game, err := that.store.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if game.Player2ID != "" {
		return nil, nil, fmt.Errorf("%w: game %s", apperror.ErrGameFull, gameID)
	}

	if !game.IsAwaitingOpponent() {
		return nil, nil, fmt.Errorf("%w: game is not available for joining", apperror.ErrInvalidState)
	}

	player := entity.NewPlayer(that.newID(), game.ID)
	game.Player2ID = player.ID
	game.Status = entity.StatusPlacingFleets

	muts := repository.NewMutations().AddGame(game).AddPlayer(player)
	if err = that.store.Commit(ctx, muts); err != nil {
		return nil, nil, fmt.Errorf("failed to commit join: %w", err)
	}

	log.Info("player joined game", "gameID", game.ID, "playerID", player.ID)

	return game, player, nil
}

// PlaceFleet validates and persists a player's fleet. Once both players
// have placed, the game moves to the playing phase with player1 to fire.
func (that *GameManager) PlaceFleet(ctx context.Context, gameID, playerID string, placements []battleship.Placement) (*entity.Game, error) {
	log := that.logger.With("method", "PlaceFleet")

	defer that.locks.Lock(gameID)()

	game, err := that.store.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if !game.IsPlacingFleets() {
		return nil, fmt.Errorf("%w: cannot place ships at this stage", apperror.ErrInvalidState)
	}

	player, err := that.getGamePlayer(ctx, game, playerID)
	if err != nil {
		return nil, err
	}

	if player.FleetPlaced {
		return nil, fmt.Errorf("%w: player %s", apperror.ErrFleetPlaced, playerID)
	}

	if err = battleship.ValidateFleet(placements); err != nil {
		return nil, err
	}

	board, err := battleship.FleetBoard(placements)
	if err != nil {
		return nil, err
	}

	player.ShipBoard = board
	player.FleetPlaced = true

	fleet := make([]*entity.Ship, 0, len(placements))
	for _, placement := range placements {
		fleet = append(fleet, &entity.Ship{
			ID:        that.newID(),
			OwnerID:   player.ID,
			GameID:    game.ID,
			Type:      placement.Type,
			Positions: placement.Positions,
			Hits:      []entity.Coordinate{},
		})
	}

	muts := repository.NewMutations().AddPlayer(player).SetFleet(player.ID, fleet)

	opponentID, err := game.OpponentOf(playerID)
	if err != nil {
		return nil, err
	}

	opponent, err := that.store.GetPlayerByID(ctx, opponentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get opponent by id: %w", err)
	}

	if opponent.FleetPlaced {
		game.Status = entity.StatusInProgress
		game.CurrentTurn = game.Player1ID
		muts.AddGame(game)
	}

	if err = that.store.Commit(ctx, muts); err != nil {
		return nil, fmt.Errorf("failed to commit fleet placement: %w", err)
	}

	log.Info("fleet placed", "gameID", game.ID, "playerID", playerID, "status", game.Status)

	return game, nil
}

// FireShot resolves one shot by the player whose turn it is. The turn
// passes to the opponent on hit and miss alike; the shot that sinks the
// last ship finishes the game instead, with the shooter as winner.
func (that *GameManager) FireShot(ctx context.Context, gameID, playerID string, pos entity.Coordinate) (*battleship.ShotResult, *entity.Game, error) {
	log := that.logger.With("method", "FireShot")

	defer that.locks.Lock(gameID)()

	game, err := that.store.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if !game.IsInProgress() {
		return nil, nil, fmt.Errorf("%w: game is not in playing state", apperror.ErrInvalidState)
	}

	if game.CurrentTurn != playerID {
		return nil, nil, apperror.ErrNotYourTurn
	}

	shooter, err := that.getGamePlayer(ctx, game, playerID)
	if err != nil {
		return nil, nil, err
	}

	opponentID, err := game.OpponentOf(playerID)
	if err != nil {
		return nil, nil, err
	}

	target, err := that.store.GetPlayerByID(ctx, opponentID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get target by id: %w", err)
	}

	targetFleet, err := that.store.GetFleetByOwnerID(ctx, opponentID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get target fleet: %w", err)
	}

	result, err := battleship.ResolveShot(shooter, target, targetFleet, pos)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve shot: %w", err)
	}

	muts := repository.NewMutations().AddPlayer(shooter).AddGame(game)

	if result.Outcome == battleship.OutcomeHit {
		muts.SetFleet(opponentID, targetFleet)
	}

	if result.AllSunk {
		game.Status = entity.StatusFinished
		game.WinnerID = playerID
		game.CurrentTurn = ""
	} else {
		game.CurrentTurn = opponentID
	}

	if err = that.store.Commit(ctx, muts); err != nil {
		return nil, nil, fmt.Errorf("failed to commit shot: %w", err)
	}

	log.Info("shot resolved",
		"gameID", game.ID,
		"playerID", playerID,
		"outcome", result.Outcome,
		"sunkShip", result.SunkShip,
		"status", game.Status,
	)

	return result, game, nil
}

// GetState projects the game as seen by one player: full detail of their
// own boards and fleet, the opponent's identifier only.
func (that *GameManager) GetState(ctx context.Context, gameID, playerID string) (*GameState, error) {
	defer that.locks.Lock(gameID)()

	game, err := that.store.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	player, err := that.getGamePlayer(ctx, game, playerID)
	if err != nil {
		return nil, err
	}

	fleet, err := that.store.GetFleetByOwnerID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fleet: %w", err)
	}

	opponentID, err := game.OpponentOf(playerID)
	if err != nil {
		return nil, err
	}

	state := &GameState{
		GameID:      game.ID,
		Status:      game.Status,
		CurrentTurn: game.CurrentTurn,
		WinnerID:    game.WinnerID,
		PlayerID:    player.ID,
		ShipBoard:   player.ShipBoard,
		ShotBoard:   player.ShotBoard,
		FleetPlaced: player.FleetPlaced,
		Fleet:       make([]ShipState, 0, len(fleet)),
		OpponentID:  opponentID,
	}

	for _, ship := range fleet {
		state.Fleet = append(state.Fleet, ShipState{
			Type:      ship.Type,
			Length:    ship.Type.Length(),
			Positions: ship.Positions,
			Hits:      ship.Hits,
			Sunk:      ship.Sunk,
		})
	}

	return state, nil
}

// getGamePlayer loads a player and checks they belong to the game.
func (that *GameManager) getGamePlayer(ctx context.Context, game *entity.Game, playerID string) (*entity.Player, error) {
	if !game.HasPlayer(playerID) {
		return nil, fmt.Errorf("%w: player %s", apperror.ErrPlayerNotFound, playerID)
	}

	player, err := that.store.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}
