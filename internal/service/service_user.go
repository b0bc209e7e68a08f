// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/internal/validators"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// userService is the concrete implementation of UserService.
// It runs the registration schemas, hashes passwords with a
// [crypto.PasswordHasher] and issues tokens through a [TokenService].
type userService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and verifies the argon2id password strings.
	hasher crypto.PasswordHasher

	// tokenService signs the access token returned on login.
	tokenService TokenService

	userSchema   validators.Schema[models.User]
	walletSchema validators.Schema[models.Wallet]

	logger *logger.Logger
}

// NewUserService constructs a UserService. ids supplies identifiers for users
// and wallets that arrive without one.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewUserService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	tokenService TokenService,
	ids validators.IDGenerator,
	logger *logger.Logger,
) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenService:   tokenService,
		userSchema:     validators.NewUserSchema(ids, now),
		walletSchema:   validators.NewWalletSchema(ids, now),
		logger:         logger,
	}
}

func now() time.Time {
	return time.Now().UTC()
}

// Register creates a new user account with its default wallet.
//
// Returns the stored user without credential material, or:
//   - [validators.ValidationErrors] if fields fail the user or wallet schema.
//   - [store.ErrNameAlreadyExists] (wrapped) if the name is taken; nothing is
//     written in that case.
//   - [ErrPasswordHashing] if the password cannot be hashed.
func (s *userService) Register(ctx context.Context, fields validators.Fields) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userSchema.Parse(ctx, fields)
	if err != nil {
		log.Debug().Err(err).Str("func", "*userService.Register").Msg("user validation failed")
		return models.User{}, err
	}

	hash, err := s.hasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.Register").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}
	user.Password = hash

	walletFields := validators.Fields{}.
		With(validators.FieldOwner, user.UUID).
		With(validators.FieldName, models.DefaultWalletName)
	wallet, err := s.walletSchema.Parse(ctx, walletFields)
	if err != nil {
		log.Err(err).Str("func", "*userService.Register").Msg("default wallet validation failed")
		return models.User{}, err
	}

	created, err := s.userRepository.CreateUserWithWallet(ctx, user, wallet)
	if err != nil {
		log.Err(err).Str("func", "*userService.Register").Str("name", user.Name).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user", created.UUID).Str("wallet", wallet.UUID).Msg("user registered")
	created.Password = ""
	return created, nil
}

// Login authenticates an existing user and issues a bearer token whose
// subject is the user UUID.
//
// Returns:
//   - [ErrMissingCredentials] if name or password is empty.
//   - [store.ErrUserNotFound] (wrapped) if no user has that name.
//   - [ErrWrongPassword] if the password does not match.
func (s *userService) Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	if credentials.Name == "" || credentials.Password == "" {
		return models.LoginResult{}, ErrMissingCredentials
	}

	found, err := s.userRepository.FindUserByName(ctx, credentials.Name)
	if err != nil {
		log.Err(err).Str("func", "*userService.Login").Str("name", credentials.Name).Msg("user search by name failed")
		return models.LoginResult{}, fmt.Errorf("user search by name failed: %w", err)
	}

	ok, err := s.hasher.Verify(found.Password, credentials.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.Login").Str("user", found.UUID).Msg("stored password hash is unreadable")
		return models.LoginResult{}, fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		log.Warn().Str("func", "*userService.Login").Str("user", found.UUID).Msg("wrong password")
		return models.LoginResult{}, ErrWrongPassword
	}

	token, err := s.tokenService.Sign(models.TokenPayload{Subject: found.UUID, Name: found.Name})
	if err != nil {
		log.Err(err).Str("func", "*userService.Login").Msg("token creation failed")
		return models.LoginResult{}, err
	}

	found.Password = ""
	found.UserID = 0
	return models.LoginResult{Access: token, Auth: found}, nil
}
