package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
	"github.com/rocketscienceinc/battleship-backend/internal/battleship"
	"github.com/rocketscienceinc/battleship-backend/internal/entity"
)

func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	game, player, err := that.game.CreateGame(r.Context())
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, gameCreatedResponse{
		GameID:   game.ID,
		PlayerID: player.ID,
		Message:  "New game created! Share the gameId with another player to join.",
	})
}

func (that *Server) handleJoinGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	game, player, err := that.game.JoinGame(r.Context(), gameID)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, gameCreatedResponse{
		GameID:   game.ID,
		PlayerID: player.ID,
		Message:  "Successfully joined the game! Place your ships to start playing.",
	})
}

func (that *Server) handlePlaceShips(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	var req placeShipsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeBadRequest(w, "invalid request body")
		return
	}

	if req.PlayerID == "" || len(req.Ships) == 0 {
		that.writeBadRequest(w, "playerId and ships are required in the request body")
		return
	}

	placements, err := toPlacements(req.Ships)
	if err != nil {
		that.writeBadRequest(w, err.Error())
		return
	}

	game, err := that.game.PlaceFleet(r.Context(), gameID, req.PlayerID, placements)
	if err != nil {
		that.writeError(w, err)
		return
	}

	message := "Ships placed successfully. Waiting for the other player."
	if game.IsInProgress() {
		message = "Ships placed! Game started. Your turn."
	}

	that.writeJSON(w, http.StatusOK, messageResponse{Message: message})
}

func (that *Server) handleShoot(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	var req shootRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeBadRequest(w, "invalid request body")
		return
	}

	if req.PlayerID == "" || len(req.Position) != 2 {
		that.writeBadRequest(w, "playerId and position [row, col] are required in the request body")
		return
	}

	pos := entity.Coordinate{Row: req.Position[0], Col: req.Position[1]}

	result, game, err := that.game.FireShot(r.Context(), gameID, req.PlayerID, pos)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, shotResponse{
		Result:   result.Outcome,
		SunkShip: string(result.SunkShip),
		Message:  shotMessage(result),
		Winner:   game.WinnerID,
	})
}

func (that *Server) handleGameState(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	playerID := r.URL.Query().Get("playerId")
	if playerID == "" {
		that.writeBadRequest(w, "playerId is required as a query parameter")
		return
	}

	state, err := that.game.GetState(r.Context(), gameID, playerID)
	if err != nil {
		that.writeError(w, err)
		return
	}

	resp := gameStateResponse{
		GameStatus:        state.Status,
		CurrentTurn:       state.CurrentTurn,
		Winner:            state.WinnerID,
		PlayerID:          state.PlayerID,
		PlayerBoard:       state.ShipBoard,
		PlayerShotBoard:   state.ShotBoard,
		PlayerShipsPlaced: state.FleetPlaced,
		MyShips:           make([]shipStateResponse, 0, len(state.Fleet)),
		OpponentID:        state.OpponentID,
	}

	for _, ship := range state.Fleet {
		resp.MyShips = append(resp.MyShips, shipStateResponse{
			Type:      ship.Type,
			Length:    ship.Length,
			Positions: ship.Positions,
			Hits:      ship.Hits,
			Sunk:      ship.Sunk,
		})
	}

	that.writeJSON(w, http.StatusOK, resp)
}

func toPlacements(ships []shipPayload) ([]battleship.Placement, error) {
	placements := make([]battleship.Placement, 0, len(ships))

	for _, ship := range ships {
		placement := battleship.Placement{
			Type:      entity.ShipType(ship.Type),
			Length:    ship.Length,
			Positions: make([]entity.Coordinate, 0, len(ship.Positions)),
		}

		for _, pos := range ship.Positions {
			if len(pos) != 2 {
				return nil, errors.New("ship positions must be [row, col] pairs")
			}
			placement.Positions = append(placement.Positions, entity.Coordinate{Row: pos[0], Col: pos[1]})
		}

		placements = append(placements, placement)
	}

	return placements, nil
}

func shotMessage(result *battleship.ShotResult) string {
	switch {
	case result.AllSunk:
		return fmt.Sprintf("You sunk the opponent's %s! You win!", result.SunkShip)
	case result.SunkShip != "":
		return fmt.Sprintf("You hit and sunk the opponent's %s! Opponent's turn.", result.SunkShip)
	case result.Outcome == battleship.OutcomeHit:
		return "You hit a ship! Opponent's turn."
	default:
		return "You missed! Opponent's turn."
	}
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

func (that *Server) writeBadRequest(w http.ResponseWriter, message string) {
	that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: message})
}

// writeError maps engine errors to transport status codes.
func (that *Server) writeError(w http.ResponseWriter, err error) {
	var status int

	switch {
	case errors.Is(err, apperror.ErrGameNotFound), errors.Is(err, apperror.ErrPlayerNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidState),
		errors.Is(err, apperror.ErrGameFull),
		errors.Is(err, apperror.ErrFleetPlaced),
		errors.Is(err, apperror.ErrAlreadyShot),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrOutOfBounds),
		errors.Is(err, apperror.ErrFleetInvalid):
		status = http.StatusBadRequest
	default:
		that.logger.Error("internal error", "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}
