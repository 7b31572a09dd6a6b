package session

import (
	"context"
	"errors"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// BreakerStore guards a primary store (Redis) with a circuit breaker and
// degrades to a fallback store (memory) while the primary is failing or the
// breaker is open. A missing key is a successful lookup, not a failure.
type BreakerStore struct {
	primary  Store
	fallback Store
	cb       *gobreaker.CircuitBreaker[string]
	logger   *zap.Logger
}

func NewBreakerStore(primary, fallback Store, logger *zap.Logger) *BreakerStore {
	settings := gobreaker.Settings{
		Name: "session-store",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound)
		},
	}
	return &BreakerStore{
		primary:  primary,
		fallback: fallback,
		cb:       gobreaker.NewCircuitBreaker[string](settings),
		logger:   logger,
	}
}

func (b *BreakerStore) Get(ctx context.Context, key string) (string, error) {
	value, err := b.cb.Execute(func() (string, error) {
		return b.primary.Get(ctx, key)
	})
	if err == nil || errors.Is(err, ErrNotFound) {
		return value, err
	}

	b.logger.Warn("session primary get failed, using fallback", zap.String("key", key), zap.Error(err))
	return b.fallback.Get(ctx, key)
}

func (b *BreakerStore) Set(ctx context.Context, key, value string) error {
	_, err := b.cb.Execute(func() (string, error) {
		return "", b.primary.Set(ctx, key, value)
	})
	if err == nil {
		// Keep the fallback warm so a later degradation still sees the session.
		if ferr := b.fallback.Set(ctx, key, value); ferr != nil {
			b.logger.Warn("session fallback set failed", zap.String("key", key), zap.Error(ferr))
		}
		return nil
	}

	b.logger.Warn("session primary set failed, using fallback", zap.String("key", key), zap.Error(err))
	return b.fallback.Set(ctx, key, value)
}

func (b *BreakerStore) Delete(ctx context.Context, key string) error {
	_, err := b.cb.Execute(func() (string, error) {
		return "", b.primary.Delete(ctx, key)
	})
	if ferr := b.fallback.Delete(ctx, key); ferr != nil {
		b.logger.Warn("session fallback delete failed", zap.String("key", key), zap.Error(ferr))
	}
	if err != nil {
		b.logger.Warn("session primary delete failed", zap.String("key", key), zap.Error(err))
	}
	return nil
}
