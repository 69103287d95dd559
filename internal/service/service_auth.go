package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-nft-market/internal/crypto"
	"github.com/MKhiriev/go-nft-market/internal/logger"
	"github.com/MKhiriev/go-nft-market/internal/store"
	"github.com/MKhiriev/go-nft-market/internal/utils"
	"github.com/MKhiriev/go-nft-market/internal/workers"
	"github.com/MKhiriev/go-nft-market/models"
	"github.com/google/uuid"
)

// decoyPasswordHash is verified in place of a stored hash when the username
// is unknown. It uses the same parameters as real hashes, so both paths cost
// the same.
const decoyPasswordHash = "$argon2id$v=19$m=15000,t=2,p=1$gZiV/M1gPc22ElAH/Jh1Hw$CWOrkoo7oJBQ/iyh7uJ0LO2aLEfrHwTWllSAxT0zRno"

// authService is the concrete implementation of AuthService.
// Password hashing and verification run on the executor, never on the
// request goroutine.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	executor       workers.Executor
	ids            *utils.UUIDGenerator

	logger *logger.Logger
}

// NewAuthService constructs an AuthService over the user repository.
// The returned service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, executor workers.Executor, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		executor:       executor,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// VerifyCredentials looks the user up once and verifies the password exactly
// once, against the stored hash or, for an unknown username, against
// decoyPasswordHash.
//
// Returns the user id or:
//   - ErrInvalidCredentials for an unknown username or a wrong password;
//   - ErrUnexpected wrapping a lookup failure or a malformed stored hash;
//   - the context error when ctx ends before verification finishes.
func (a *authService) VerifyCredentials(ctx context.Context, creds models.Credentials) (uuid.UUID, error) {
	log := logger.FromContext(ctx)

	stored, err := a.userRepository.FindCredentialsByUsername(ctx, creds.Username)
	knownUser := true
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		knownUser = false
		stored = models.StoredCredentials{PasswordHash: decoyPasswordHash}
	case err != nil:
		log.Err(err).Str("func", "*authService.VerifyCredentials").Msg("credentials lookup failed")
		return uuid.Nil, fmt.Errorf("%w: %w", ErrUnexpected, err)
	}

	err = a.executor.Do(ctx, func() error {
		return a.hasher.Verify(stored.PasswordHash.Expose(), creds.Password.Expose())
	})
	switch {
	case errors.Is(err, crypto.ErrMismatchedHashAndPassword):
		return uuid.Nil, ErrInvalidCredentials
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return uuid.Nil, err
	case err != nil:
		log.Err(err).Str("func", "*authService.VerifyCredentials").Msg("password verification failed")
		return uuid.Nil, fmt.Errorf("%w: %w", ErrUnexpected, err)
	}

	if !knownUser {
		return uuid.Nil, ErrInvalidCredentials
	}

	return stored.UserID, nil
}

// RegisterUser hashes the password and stores a new user.
//
// Returns ErrInvalidDataProvided when the username or the password is empty,
// or a wrapped storage error (see store.ErrUsernameAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	username := strings.TrimSpace(creds.Username)
	if username == "" || creds.Password.Expose() == "" {
		log.Error().Str("username", creds.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	var hash string
	err := a.executor.Do(ctx, func() error {
		var hashErr error
		hash, hashErr = a.hasher.Hash(creds.Password.Expose())
		return hashErr
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrUnexpected, err)
	}

	user := models.User{
		UserID:       a.ids.Generate(),
		Username:     username,
		PasswordHash: models.Secret(hash),
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}
