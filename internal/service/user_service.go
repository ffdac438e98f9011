package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"videotube/internal/auth"
	"videotube/internal/domain"
	"videotube/internal/logger"
	"videotube/internal/media"
	"videotube/internal/repository"
	"videotube/internal/validator"
)

// TokenPair is the access/refresh credential pair issued at login and on
// every refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserService handles accounts, credentials and channel pages.
type UserService struct {
	userRepo  repository.UserRepository
	tokens    *auth.TokenManager
	validator *validator.Validator
	media     media.Store
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, tokens *auth.TokenManager, v *validator.Validator, store media.Store) *UserService {
	return &UserService{userRepo: userRepo, tokens: tokens, validator: v, media: store}
}

// Register creates an account. Username and email collisions surface as
// conflicts.
func (s *UserService) Register(ctx context.Context, reg *domain.Registration) (*domain.User, error) {
	if err := s.validator.ValidateRegistration(reg); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, err.Error())
	}

	hash, err := auth.HashPassword(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     reg.Username,
		FullName:     reg.FullName,
		Email:        reg.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login authenticates by username or email. An unknown identifier is not
// found; a bad password is unauthenticated.
func (s *UserService) Login(ctx context.Context, identifier, password string) (*domain.User, *TokenPair, error) {
	if identifier == "" || password == "" {
		return nil, nil, fmt.Errorf("%w: identifier and password are required", domain.ErrInvalidArgument)
	}

	user, err := s.userRepo.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, nil, err
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, nil, fmt.Errorf("%w: wrong password", domain.ErrUnauthenticated)
	}

	pair, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("user logged in", "user_id", user.ID)
	return user, pair, nil
}

// Refresh rotates the token pair. The presented refresh token must both
// verify and match the one stored for the user; a logout or a later refresh
// invalidates it.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := s.tokens.Verify(refreshToken, auth.KindRefresh)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid refresh token", domain.ErrUnauthenticated)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return nil, fmt.Errorf("%w: refresh token revoked", domain.ErrUnauthenticated)
	}

	return s.issueTokens(ctx, user.ID)
}

// Logout revokes the stored refresh token. Access tokens expire on their own.
func (s *UserService) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, nil); err != nil {
		return err
	}
	logger.Info("user logged out", "user_id", userID)
	return nil
}

func (s *UserService) issueTokens(ctx context.Context, userID string) (*TokenPair, error) {
	access, err := s.tokens.GenerateAccessToken(userID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(userID)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, &refresh); err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Get fetches the account for userID.
func (s *UserService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// ChangePassword swaps the password after checking the old one.
func (s *UserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("%w: new password too short", domain.ErrInvalidArgument)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(oldPassword, user.PasswordHash) {
		return fmt.Errorf("%w: wrong password", domain.ErrUnauthenticated)
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.userRepo.UpdatePassword(ctx, userID, hash)
}

// UpdateAccount changes the mutable account fields.
func (s *UserService) UpdateAccount(ctx context.Context, userID, fullName, email string) (*domain.User, error) {
	if fullName == "" || email == "" {
		return nil, fmt.Errorf("%w: full name and email are required", domain.ErrInvalidArgument)
	}
	return s.userRepo.UpdateAccount(ctx, userID, fullName, email)
}

// UpdateAvatar uploads a new avatar image and points the account at it. The
// previous object, if one was ours, is removed best-effort.
func (s *UserService) UpdateAvatar(ctx context.Context, userID, contentType string, body io.Reader) (*domain.User, error) {
	return s.replaceImage(ctx, userID, "avatars", contentType, body, s.userRepo.UpdateAvatar,
		func(u *domain.User) string { return u.AvatarURL })
}

// UpdateCoverImage uploads a new cover image, same contract as UpdateAvatar.
func (s *UserService) UpdateCoverImage(ctx context.Context, userID, contentType string, body io.Reader) (*domain.User, error) {
	return s.replaceImage(ctx, userID, "covers", contentType, body, s.userRepo.UpdateCoverImage,
		func(u *domain.User) string { return u.CoverImageURL })
}

func (s *UserService) replaceImage(
	ctx context.Context,
	userID, prefix, contentType string,
	body io.Reader,
	update func(ctx context.Context, id, url string) (*domain.User, error),
	current func(*domain.User) string,
) (*domain.User, error) {
	if body == nil {
		return nil, fmt.Errorf("%w: image file is required", domain.ErrInvalidArgument)
	}

	before, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s/%s", prefix, userID, uuid.New().String())
	url, err := s.media.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	user, err := update(ctx, userID, url)
	if err != nil {
		return nil, err
	}

	if old := current(before); old != "" {
		if oldKey, ok := s.media.ObjectKey(old); ok {
			if err := s.media.Delete(ctx, oldKey); err != nil {
				logger.Warn("failed to delete replaced image", "key", oldKey, "error", err)
			}
		}
	}
	return user, nil
}

// Channel returns the channel page for username as seen by viewerID, which
// may be empty for anonymous viewers.
func (s *UserService) Channel(ctx context.Context, username, viewerID string) (*domain.ChannelProfile, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrInvalidArgument)
	}
	return s.userRepo.ChannelProfile(ctx, username, viewerID)
}

// WatchHistory lists the videos the user has watched, most recent first.
func (s *UserService) WatchHistory(ctx context.Context, userID string) ([]domain.VideoView, error) {
	return s.userRepo.WatchHistory(ctx, userID)
}
