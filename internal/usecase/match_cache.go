package usecase

import (
	"context"
	"time"
)

// MatchCache stores computed match listings. Implementations treat an
// unavailable backend as a miss.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}
