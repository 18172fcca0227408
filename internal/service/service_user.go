package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/store"
	"github.com/MKhiriev/go-identity/models"
)

type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListUsers returns up to limit accounts ordered by id; zero means no limit.
func (s *userService) ListUsers(ctx context.Context, limit uint64) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.ListUsers").Msg("listing users failed")
		return nil, storeError(err)
	}

	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*userService.GetUser").Msg("user search by id failed")
		return models.User{}, storeError(err)
	}

	user.PasswordHash = ""
	return user, nil
}

// DeleteUser reports false when no account with id existed.
func (s *userService) DeleteUser(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	deleted, err := s.userRepository.DeleteUser(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*userService.DeleteUser").Msg("deleting user failed")
		return false, storeError(err)
	}

	log.Info().Int64("user_id", id).Bool("deleted", deleted).Msg("delete user")
	return deleted, nil
}
