// Package scratch holds the short-lived pending-result store. After a
// submission is persisted, its computed result summary is stashed here under
// a TTL so the results view can render once without re-reading the attempt;
// the first read consumes the entry. Losing a stash is harmless, the attempt
// row remains the source of truth.
package scratch

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/prepstack/examprep/internal/dto"
)

type ResultStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResultStore(client *redis.Client, ttl time.Duration) *ResultStore {
	return &ResultStore{client: client, ttl: ttl}
}

// Put stashes the result summary under the attempt's key with the store TTL.
func (s *ResultStore) Put(ctx context.Context, result *dto.AttemptDetailDTO) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(result.ID), payload, s.ttl).Err()
}

// Take consumes a pending result. A miss (already consumed, expired, or never
// stashed) returns (nil, nil), not an error.
func (s *ResultStore) Take(ctx context.Context, attemptID uint) (*dto.AttemptDetailDTO, error) {
	payload, err := s.client.GetDel(ctx, s.key(attemptID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var result dto.AttemptDetailDTO
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *ResultStore) key(attemptID uint) string {
	return "attempt:" + strconv.FormatUint(uint64(attemptID), 10) + ":pending"
}
