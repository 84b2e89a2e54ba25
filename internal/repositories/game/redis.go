package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/mafiad/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix    = "game:"
	finishedGamesKey = "finished_games"

	// DefaultListLimit is used when ListRecentGames is called without a limit
	DefaultListLimit = 20
)

// ErrGameNotFound is returned when no record exists for a room
var ErrGameNotFound = errors.New("game not found")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL expires records after the given duration; zero keeps them
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.TTL < 0 {
		return nil, errors.New("ttl cannot be negative")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    cfg.TTL,
	}, nil
}

func gameKey(roomID string) string {
	return fmt.Sprintf("%s%s", gameKeyPrefix, roomID)
}

// SaveGame persists a game record and indexes it by finish time
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	if input.Record.RoomID == "" {
		return errors.New("record room ID cannot be empty")
	}

	recordJSON, err := json.Marshal(input.Record)
	if err != nil {
		return fmt.Errorf("failed to marshal game record: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, gameKey(input.Record.RoomID), recordJSON, r.ttl)
	pipe.ZAdd(ctx, finishedGamesKey, redis.Z{
		Score:  float64(input.Record.FinishedAt.UnixNano()),
		Member: input.Record.RoomID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save game record: %w", err)
	}

	return nil
}

// GetGame retrieves a game record by room ID
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.GameRecord, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	recordJSON, err := r.client.Get(ctx, gameKey(input.RoomID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game record: %w", err)
	}

	var record models.GameRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game record: %w", err)
	}

	return &record, nil
}

// ListRecentGames retrieves the newest records, dropping index entries whose record expired
func (r *redisRepository) ListRecentGames(ctx context.Context, input *ListRecentGamesInput) (*ListRecentGamesOutput, error) {
	limit := DefaultListLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	roomIDs, err := r.client.ZRevRange(ctx, finishedGamesKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get finished game IDs: %w", err)
	}

	if len(roomIDs) == 0 {
		return &ListRecentGamesOutput{
			Records: []*models.GameRecord{},
		}, nil
	}

	// Fetch all records in one round trip
	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(roomIDs))
	for i, roomID := range roomIDs {
		cmds[i] = pipe.Get(ctx, gameKey(roomID))
	}

	// redis.Nil for expired records is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get finished games: %w", err)
	}

	records := make([]*models.GameRecord, 0, len(roomIDs))
	var stale []interface{}
	for i, cmd := range cmds {
		recordJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				stale = append(stale, roomIDs[i])
				continue
			}
			return nil, fmt.Errorf("failed to get game record %s: %w", roomIDs[i], err)
		}

		var record models.GameRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game record %s: %w", roomIDs[i], err)
		}
		records = append(records, &record)
	}

	if len(stale) > 0 {
		if err := r.client.ZRem(ctx, finishedGamesKey, stale...).Err(); err != nil {
			return nil, fmt.Errorf("failed to prune expired games: %w", err)
		}
	}

	return &ListRecentGamesOutput{
		Records: records,
	}, nil
}
