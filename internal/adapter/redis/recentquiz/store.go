// Package recentquiz keeps a capped, newest-first list of quiz outcomes per
// owner in a Redis list.
package recentquiz

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// Store is a Redis-backed recent quiz list.
type Store struct {
	rdb    goredis.UniversalClient
	prefix string
	limit  int
}

// New creates a store that keeps at most limit entries under prefix+owner.
func New(rdb goredis.UniversalClient, prefix string, limit int) *Store {
	return &Store{rdb: rdb, prefix: prefix, limit: limit}
}

func (s *Store) key(owner string) string { return s.prefix + owner }

// Push records an outcome at the head of owner's list and trims the tail.
func (s *Store) Push(ctx context.Context, owner string, entry domain.RecentQuiz) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal recent quiz: %w", err)
	}

	key := s.key(owner)
	_, err = s.rdb.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.LPush(ctx, key, raw)
		p.LTrim(ctx, key, 0, int64(s.limit-1))
		return nil
	})
	if err != nil {
		return fmt.Errorf("push recent quiz: %w", err)
	}
	return nil
}

// List returns owner's outcomes newest first. Entries that fail to decode are skipped.
func (s *Store) List(ctx context.Context, owner string) ([]domain.RecentQuiz, error) {
	raws, err := s.rdb.LRange(ctx, s.key(owner), 0, int64(s.limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("list recent quizzes: %w", err)
	}

	out := make([]domain.RecentQuiz, 0, len(raws))
	for _, raw := range raws {
		var entry domain.RecentQuiz
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}
