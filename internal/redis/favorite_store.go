package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const favoriteKeyPrefix = "favorites:"

func favoriteKey(device uuid.UUID) string {
	return favoriteKeyPrefix + device.String()
}

// FavoriteStore implements domain.FavoriteStore as a Redis set per device.
type FavoriteStore struct {
	rdb *goredis.Client
}

func NewFavoriteStore(rdb *goredis.Client) *FavoriteStore {
	return &FavoriteStore{rdb: rdb}
}

func (s *FavoriteStore) List(ctx context.Context, device uuid.UUID) ([]int, error) {
	members, err := s.rdb.SMembers(ctx, favoriteKey(device)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	ids := make([]int, 0, len(members))
	for _, m := range members {
		id, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *FavoriteStore) Add(ctx context.Context, device uuid.UUID, shopID int) error {
	if err := s.rdb.SAdd(ctx, favoriteKey(device), shopID).Err(); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (s *FavoriteStore) Remove(ctx context.Context, device uuid.UUID, shopID int) error {
	if err := s.rdb.SRem(ctx, favoriteKey(device), shopID).Err(); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}
