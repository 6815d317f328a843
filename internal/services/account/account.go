// Package account implements registration, login, profile, favorites and
// avatar management on top of the user store.
package account

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"weather-dashboard/internal/auth"
	"weather-dashboard/internal/avatars"
	"weather-dashboard/internal/models"
	"weather-dashboard/internal/storage"
	"weather-dashboard/pkg/logger"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6

	// maxFavorites caps the distinct saved locations per account.
	maxFavorites = 3
)

var (
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrUserExists         = errors.New("user with this email or username already exists")
	ErrFavoritesLimit     = errors.New("you can only save up to 3 locations")
)

// ValidationError marks a rejected input with a user-facing message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Service holds account state behind the user repository and avatar store.
type Service struct {
	users     storage.UserRepository
	avatars   *avatars.Store
	jwtSecret []byte
	tokenTTL  time.Duration
	l         *logger.Logger
}

func NewService(users storage.UserRepository, avatarStore *avatars.Store, jwtSecret []byte, tokenTTL time.Duration, l *logger.Logger) *Service {
	return &Service{
		users:     users,
		avatars:   avatarStore,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		l:         l,
	}
}

// Register creates an account and issues its first session token. The
// email is normalized to lower case before the uniqueness check.
func (s *Service) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if len(username) < minUsernameLen {
		return nil, "", &ValidationError{Message: fmt.Sprintf("username must be at least %d characters", minUsernameLen)}
	}
	if !strings.Contains(email, "@") {
		return nil, "", &ValidationError{Message: "a valid email address is required"}
	}
	if len(password) < minPasswordLen {
		return nil, "", &ValidationError{Message: fmt.Sprintf("password must be at least %d characters", minPasswordLen)}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to hash password")
	}

	user, err := s.users.Create(ctx, &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, "", ErrUserExists
		}
		return nil, "", errors.Wrap(err, "failed to create user")
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to sign token")
	}

	s.l.Info("account registered", map[string]any{"username": username})

	return user, token, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password produce the same error so callers cannot tell which failed.
// The login counter is persisted before the token is issued.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", errors.Wrap(err, "failed to look up user")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	user.LoginCount++
	if err := s.users.Update(ctx, user); err != nil {
		return nil, "", errors.Wrap(err, "failed to persist login counter")
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to sign token")
	}

	return user, token, nil
}

// Get returns the account behind a verified token's user ID.
func (s *Service) Get(ctx context.Context, userID string) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

// ProfileUpdate is a partial profile change. Nil fields are left
// untouched; an explicitly empty DOB clears the stored date.
type ProfileUpdate struct {
	Location *string `json:"location"`
	Phone    *string `json:"phone"`
	DOB      *string `json:"dob"`
}

// UpdateProfile applies a partial update and returns the stored account.
func (s *Service) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Location != nil {
		user.Location = strings.TrimSpace(*update.Location)
	}
	if update.Phone != nil {
		user.Phone = strings.TrimSpace(*update.Phone)
	}
	if update.DOB != nil {
		if *update.DOB == "" {
			user.DOB = nil
		} else {
			dob, err := time.Parse("2006-01-02", *update.DOB)
			if err != nil {
				return nil, &ValidationError{Message: "dob must be formatted YYYY-MM-DD"}
			}
			user.DOB = &dob
		}
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to persist profile")
	}

	return user, nil
}

// AddFavorite appends a saved location. A case-insensitive duplicate of
// a saved city is NOT an error: the unchanged set comes back with
// success, the behavior the dashboard client was built against. Only
// the 4th distinct entry is rejected.
func (s *Service) AddFavorite(ctx context.Context, userID, city string) ([]string, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, &ValidationError{Message: "city is required"}
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, saved := range user.SavedLocations {
		if strings.EqualFold(saved, city) {
			return user.SavedLocations, nil
		}
	}

	if len(user.SavedLocations) >= maxFavorites {
		return nil, ErrFavoritesLimit
	}

	user.SavedLocations = append(user.SavedLocations, city)
	if err := s.users.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to persist favorites")
	}

	return user.SavedLocations, nil
}

// RemoveFavorite drops a saved location, matching case-insensitively to
// stay consistent with AddFavorite. Removing an absent city is a no-op.
func (s *Service) RemoveFavorite(ctx context.Context, userID, city string) ([]string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := user.SavedLocations[:0]
	for _, saved := range user.SavedLocations {
		if !strings.EqualFold(saved, city) {
			kept = append(kept, saved)
		}
	}

	if len(kept) == len(user.SavedLocations) {
		return user.SavedLocations, nil
	}

	user.SavedLocations = kept
	if err := s.users.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to persist favorites")
	}

	return user.SavedLocations, nil
}

// SetAvatar stores an uploaded image, points the account at it and
// removes the previously stored file so replacements do not orphan
// uploads on disk.
func (s *Service) SetAvatar(ctx context.Context, userID string, file *multipart.FileHeader) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ref, err := s.avatars.Save(file)
	if err != nil {
		return nil, err
	}

	previous := user.AvatarID
	user.AvatarID = ref
	if err := s.users.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to persist avatar reference")
	}

	if err := s.avatars.Remove(previous); err != nil {
		s.l.Warning("failed to remove replaced avatar", map[string]any{"ref": previous, "err": err.Error()})
	}

	return user, nil
}

// DeleteAvatar removes any stored avatar file and resets the reference
// to the default sentinel. Deleting an already-absent file is fine.
func (s *Service) DeleteAvatar(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.avatars.Remove(user.AvatarID); err != nil {
		s.l.Warning("failed to remove avatar file", map[string]any{"ref": user.AvatarID, "err": err.Error()})
	}

	user.AvatarID = models.DefaultAvatar
	if err := s.users.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to persist avatar reference")
	}

	return user, nil
}
