package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/battleship-backend/internal/entity"
)

func fleetKey(ownerID string) string {
	return "fleet:" + ownerID
}

// GetFleetByOwnerID returns the owner's ships. A player who has not placed
// yet simply has no fleet, which is not an error.
func (that *sessionStore) GetFleetByOwnerID(ctx context.Context, ownerID string) ([]*entity.Ship, error) {
	response, err := that.client.Get(ctx, fleetKey(ownerID)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get fleet by owner ID: %w", err)
	}

	var fleet []*entity.Ship
	if err = json.Unmarshal([]byte(response), &fleet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fleet: %w", err)
	}

	return fleet, nil
}
