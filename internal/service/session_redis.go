package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// sessionTTL expires idle sessions; every write refreshes it.
const sessionTTL = 24 * time.Hour

// RedisSessionStore is the SessionStore backed by Redis, for deployments
// running more than one engine instance. Shown ids live in a set, the last
// preferences in a JSON string key. Redis serializes commands per key, so
// the single-session write invariant holds without extra locking.
type RedisSessionStore struct {
	client *redis.Client
	max    int
}

// NewRedisSessionStore creates a store over an existing client; maxShown
// <= 0 uses DefaultMaxSessionMemory.
func NewRedisSessionStore(client *redis.Client, maxShown int) *RedisSessionStore {
	if maxShown <= 0 {
		maxShown = DefaultMaxSessionMemory
	}
	return &RedisSessionStore{client: client, max: maxShown}
}

func shownKey(sessionID string) string {
	return "session:" + sessionID + ":shown"
}

func prefsKey(sessionID string) string {
	return "session:" + sessionID + ":prefs"
}

// GetOrCreate reads the session; an absent session is simply empty.
func (s *RedisSessionStore) GetOrCreate(ctx context.Context, sessionID string) (*SessionState, error) {
	members, err := s.client.SMembers(ctx, shownKey(sessionID)).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to read session %s: %w", sessionID, err)
	}

	state := &SessionState{
		ID:              sessionID,
		ShownRecipeIDs:  make([]int64, 0, len(members)),
		LastInteraction: time.Now(),
	}
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		state.ShownRecipeIDs = append(state.ShownRecipeIDs, id)
	}

	if raw, err := s.client.Get(ctx, prefsKey(sessionID)).Result(); err == nil {
		var prefs Preferences
		if json.Unmarshal([]byte(raw), &prefs) == nil {
			state.LastPreferences = &prefs
		}
	}
	return state, nil
}

// RecordShown adds ids and clears the whole set once it outgrows the bound.
func (s *RedisSessionStore) RecordShown(ctx context.Context, sessionID string, recipeIDs []int64) error {
	if len(recipeIDs) == 0 {
		return nil
	}
	key := shownKey(sessionID)
	members := make([]interface{}, len(recipeIDs))
	for i, id := range recipeIDs {
		members[i] = strconv.FormatInt(id, 10)
	}
	if err := s.client.SAdd(ctx, key, members...).Err(); err != nil {
		return fmt.Errorf("failed to record shown ids for session %s: %w", sessionID, err)
	}
	size, err := s.client.SCard(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check session %s size: %w", sessionID, err)
	}
	if size > int64(s.max) {
		if err := s.client.Del(ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to clear session %s: %w", sessionID, err)
		}
		return nil
	}
	return s.client.Expire(ctx, key, sessionTTL).Err()
}

// RememberPreferences stores the last extracted preferences as JSON.
func (s *RedisSessionStore) RememberPreferences(ctx context.Context, sessionID string, prefs Preferences) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	return s.client.Set(ctx, prefsKey(sessionID), raw, sessionTTL).Err()
}

// Reset clears a session entirely.
func (s *RedisSessionStore) Reset(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, shownKey(sessionID), prefsKey(sessionID)).Err()
}
