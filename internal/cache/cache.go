// Package cache stores computed recommendations between requests.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Cache is a JSON value cache with per-key expiry.
type Cache interface {
	// Get decodes the value stored at key into dest and reports whether it was found.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// DeletePrefix removes every key starting with prefix.
	DeletePrefix(ctx context.Context, prefix string) error
}

// RecommendationsKey identifies a user's recommendations for one quiz and page size.
func RecommendationsKey(userID, quizID uuid.UUID, limit int) string {
	return fmt.Sprintf("%s%s:%d", RecommendationsPrefix(userID), quizID, limit)
}

// RecommendationsPrefix covers every cached recommendation list of a user.
func RecommendationsPrefix(userID uuid.UUID) string {
	return fmt.Sprintf("recs:%s:", userID)
}

// Noop never stores anything; it backs a server with caching switched off.
type Noop struct{}

func (Noop) Get(context.Context, string, any) (bool, error)        { return false, nil }
func (Noop) Set(context.Context, string, any, time.Duration) error { return nil }
func (Noop) DeletePrefix(context.Context, string) error            { return nil }
