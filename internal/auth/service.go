// Package auth implements the storefront's demo authentication: every login
// succeeds after a simulated delay, known demo accounts keep their identity,
// and the session is persisted as token + user JSON in the session store.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/priya1793/shopverse/internal/domain"
	"github.com/priya1793/shopverse/internal/session"
)

// Account is a startup-loaded demo identity. The table is immutable at
// runtime.
type Account struct {
	ID    string
	Name  string
	Email string
}

// DemoAccounts is the default account table.
func DemoAccounts() []Account {
	return []Account{
		{ID: "1", Name: "Demo User", Email: "demo@shopverse.com"},
	}
}

type Service struct {
	accounts []Account
	sessions session.Store
	delayer  Delayer
	logger   *zap.Logger
}

func NewService(accounts []Account, sessions session.Store, delayer Delayer, logger *zap.Logger) *Service {
	return &Service{
		accounts: accounts,
		sessions: sessions,
		delayer:  delayer,
		logger:   logger,
	}
}

// Login authenticates the email. Demo accounts keep their configured id and
// name; any other email gets a fresh identity named after its local part.
// The password is accepted as-is; no rejection path is modeled.
func (s *Service) Login(ctx context.Context, email, _ string) (*domain.User, error) {
	if err := s.delayer.Delay(ctx); err != nil {
		return nil, err
	}

	user := domain.User{
		ID:    uuid.NewString(),
		Name:  localPart(email),
		Email: email,
		Token: newToken(),
	}
	for _, a := range s.accounts {
		if strings.EqualFold(a.Email, email) {
			user.ID = a.ID
			user.Name = a.Name
			break
		}
	}

	if err := s.persist(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID))
	return &user, nil
}

// Signup creates a fresh identity with the given name.
func (s *Service) Signup(ctx context.Context, name, email, _ string) (*domain.User, error) {
	if err := s.delayer.Delay(ctx); err != nil {
		return nil, err
	}

	user := domain.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Token: newToken(),
	}

	if err := s.persist(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user signed up", zap.String("user_id", user.ID))
	return &user, nil
}

// Logout clears the persisted session.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.Delete(ctx, session.KeyToken); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	if err := s.sessions.Delete(ctx, session.KeyUser); err != nil {
		return fmt.Errorf("clear user: %w", err)
	}
	return nil
}

// Restore loads the persisted session. A missing or malformed session is
// silently discarded and reported as logged out (nil user, nil error).
func (s *Service) Restore(ctx context.Context) (*domain.User, error) {
	token, err := s.sessions.Get(ctx, session.KeyToken)
	if errors.Is(err, session.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load token: %w", err)
	}

	raw, err := s.sessions.Get(ctx, session.KeyUser)
	if errors.Is(err, session.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Warn("discarding malformed persisted session", zap.Error(err))
		_ = s.Logout(ctx)
		return nil, nil
	}
	user.Token = token
	return &user, nil
}

// Verify reports whether the bearer token matches the persisted session.
func (s *Service) Verify(ctx context.Context, token string) (*domain.User, error) {
	user, err := s.Restore(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Token != token {
		return nil, nil
	}
	return user, nil
}

func (s *Service) persist(ctx context.Context, user domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.sessions.Set(ctx, session.KeyToken, user.Token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	if err := s.sessions.Set(ctx, session.KeyUser, string(raw)); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	return nil
}

func newToken() string {
	return "jwt_" + uuid.NewString()
}

func localPart(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
