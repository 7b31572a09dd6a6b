package catalog

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/priya1793/shopverse/internal/domain"
)

// RepoInterface is the read-only catalog storage contract.
type RepoInterface interface {
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetCoupon(ctx context.Context, code string) (*domain.Coupon, error)
	Close() error
}

// Service fronts the catalog repository with a read-through product cache.
// The catalog is immutable, so cached entries never go stale.
type Service struct {
	repo   RepoInterface
	logger *zap.Logger
	sfg    singleflight.Group // collapses concurrent misses for the same id

	mu   sync.RWMutex
	byID map[string]domain.Product
}

func NewService(repo RepoInterface, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		byID:   make(map[string]domain.Product),
	}
}

// Products returns the full catalog in catalog order.
func (s *Service) Products(ctx context.Context) ([]domain.Product, error) {
	return s.repo.GetAllProducts(ctx)
}

// GetProduct returns the product with the given id, caching hits forever.
func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	if p, ok := s.byID[id]; ok {
		s.mu.RUnlock()
		return &p, nil
	}
	s.mu.RUnlock()

	v, err, _ := s.sfg.Do(id, func() (interface{}, error) {
		p, err := s.repo.GetProduct(ctx, id)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.byID[id] = *p
		s.mu.Unlock()

		return p, nil
	})
	if err != nil {
		if !errors.Is(err, ErrProductNotFound) {
			s.logger.Warn("product lookup failed", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}

	return v.(*domain.Product), nil
}

// Categories returns the category descriptors.
func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.GetCategories(ctx)
}

// GetCoupon resolves a coupon code case-insensitively. An unknown code is
// reported as (nil, nil) so callers can distinguish it from storage failures.
func (s *Service) GetCoupon(ctx context.Context, code string) (*domain.Coupon, error) {
	coupon, err := s.repo.GetCoupon(ctx, code)
	if errors.Is(err, ErrCouponNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return coupon, nil
}
