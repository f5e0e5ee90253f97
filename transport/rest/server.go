package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/battleship-backend/internal/battleship"
	"github.com/rocketscienceinc/battleship-backend/internal/entity"
	"github.com/rocketscienceinc/battleship-backend/internal/usecase"
)

type gameUseCase interface {
	CreateGame(ctx context.Context) (*entity.Game, *entity.Player, error)
	JoinGame(ctx context.Context, gameID string) (*entity.Game, *entity.Player, error)
	PlaceFleet(ctx context.Context, gameID, playerID string, placements []battleship.Placement) (*entity.Game, error)
	FireShot(ctx context.Context, gameID, playerID string, pos entity.Coordinate) (*battleship.ShotResult, *entity.Game, error)
	GetState(ctx context.Context, gameID, playerID string) (*usecase.GameState, error)
}

type Server struct {
	logger *slog.Logger
	game   gameUseCase
}

func New(logger *slog.Logger, game gameUseCase) *Server {
	return &Server{
		logger: logger,
		game:   game,
	}
}

// Start - starts the HTTP server and shuts it down when ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}

		return nil
	}
}

func (that *Server) routes() http.Handler {
	router := chi.NewRouter()

	router.Get("/ping", that.handlePing)

	router.Post("/games", that.handleCreateGame)
	router.Post("/games/{gameID}/join", that.handleJoinGame)
	router.Post("/games/{gameID}/ships", that.handlePlaceShips)
	router.Post("/games/{gameID}/shoot", that.handleShoot)
	router.Get("/games/{gameID}/state", that.handleGameState)

	return router
}
