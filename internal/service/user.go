package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Beka01247/bistro-api/internal/cache"
	"github.com/Beka01247/bistro-api/internal/domain"
	"github.com/Beka01247/bistro-api/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	adminFlagTTL = 10 * time.Minute
	usersPageTTL = 5 * time.Minute
)

type UserService struct {
	users  repo.UserRepository
	cache  cache.Cache
	logger *zap.SugaredLogger
}

func NewUserService(users repo.UserRepository, c cache.Cache, logger *zap.SugaredLogger) *UserService {
	return &UserService{
		users:  users,
		cache:  c,
		logger: logger,
	}
}

// Register stores a user on first sign-in. It reports false, with the stored
// user, when the email is already known.
func (s *UserService) Register(ctx context.Context, user *domain.User) (*domain.User, bool, error) {
	existing, err := s.users.GetByEmail(ctx, user.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up user: %w", err)
	}

	// role is only granted through MakeAdmin
	user.Role = domain.RoleOrdinary
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to register user: %w", err)
	}

	s.invalidate(user.Email)
	s.logger.Infow("user registered", "user_id", user.ID.Hex(), "email", user.Email)

	return user, true, nil
}

func (s *UserService) List(ctx context.Context, page domain.Page) ([]domain.User, error) {
	return cache.GetOrLoad(s.cache, cache.UsersPageKey(page.Page, page.Limit), usersPageTTL, func() ([]domain.User, error) {
		return s.users.List(ctx, page)
	})
}

// IsAdmin resolves the role of email through the cache. Unknown emails are
// not admins.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	return cache.GetOrLoad(s.cache, cache.AdminKey(email), adminFlagTTL, func() (bool, error) {
		user, err := s.users.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return false, nil
			}
			return false, fmt.Errorf("failed to resolve admin role: %w", err)
		}
		return user.Role.IsAdmin(), nil
	})
}

func (s *UserService) MakeAdmin(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	user, err := s.users.SetRole(ctx, id, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}

	s.cache.Delete(cache.AdminKey(user.Email))
	s.cache.DeleteByPrefix(cache.KeyUsersPrefix)
	s.logger.Infow("user promoted to admin", "user_id", id.Hex(), "email", user.Email)

	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	user, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.invalidate(user.Email)
	s.logger.Infow("user deleted", "user_id", id.Hex(), "email", user.Email)

	return nil
}

func (s *UserService) invalidate(email string) {
	s.cache.Delete(cache.AdminKey(email))
	s.cache.DeleteByPrefix(cache.KeyUsersPrefix)
	s.cache.Delete(cache.KeyGeneralStats)
}
