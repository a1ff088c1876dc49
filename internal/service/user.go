package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/guiatur/guiatur-api/internal/core"
	"github.com/guiatur/guiatur-api/internal/data"
	domainauth "github.com/guiatur/guiatur-api/internal/domain/auth"
	"github.com/guiatur/guiatur-api/internal/domain/model"
	apperrors "github.com/guiatur/guiatur-api/internal/errors"
	"github.com/guiatur/guiatur-api/internal/ports"
)

// UserServiceOptions groups dependencies for UserService.
type UserServiceOptions struct {
	Users         core.UserRepository
	Guides        core.GuideRepository
	Authenticator ports.PasswordAuthenticator
	// ResetTokens and ResetNotifier enable the password reset flow; with
	// either missing, reset requests are refused.
	ResetTokens   ports.ResetTokenStore
	ResetNotifier core.PasswordResetNotifier
	// ResetTokenTTL bounds how long a reset link stays usable; zero uses 30m.
	ResetTokenTTL time.Duration
	// BaseURL is the public origin used to build reset links.
	BaseURL string
	Logger  *slog.Logger
	// BcryptCost overrides the hashing cost; zero uses bcrypt.DefaultCost.
	BcryptCost int
}

// UserService handles account registration and credential management.
type UserService struct {
	users         core.UserRepository
	guides        core.GuideRepository
	authenticator ports.PasswordAuthenticator
	resetTokens   ports.ResetTokenStore
	resetNotifier core.PasswordResetNotifier
	resetTokenTTL time.Duration
	baseURL       string
	logger        *slog.Logger
	bcryptCost    int
}

const defaultResetTokenTTL = 30 * time.Minute

// NewUserService constructs a new UserService.
func NewUserService(opts UserServiceOptions) *UserService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cost := opts.BcryptCost
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	ttl := opts.ResetTokenTTL
	if ttl <= 0 {
		ttl = defaultResetTokenTTL
	}
	return &UserService{
		users:         opts.Users,
		guides:        opts.Guides,
		authenticator: opts.Authenticator,
		resetTokens:   opts.ResetTokens,
		resetNotifier: opts.ResetNotifier,
		resetTokenTTL: ttl,
		baseURL:       strings.TrimSuffix(opts.BaseURL, "/"),
		logger:        logger,
		bcryptCost:    cost,
	}
}

// RegisterTourist creates a tourist account. The account type in the
// request is ignored.
func (s *UserService) RegisterTourist(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	req.Type = model.UserTypeTourist
	return s.createUser(ctx, req)
}

// RegisterGuideInput carries the account plus profile for guide sign-up.
type RegisterGuideInput struct {
	Name           string
	Email          string
	Password       string
	Location       string
	Languages      []string
	Specialties    []string
	CadasturNumber string
	SocialLinks    model.SocialLinks
}

// RegisterGuideResult pairs the created account with its guide profile.
type RegisterGuideResult struct {
	User  *model.User
	Guide *model.Guide
}

// RegisterGuide creates a guide account and its profile row. The profile
// request is validated before the account is written so a bad Cadastur
// number never leaves an orphaned user behind.
func (s *UserService) RegisterGuide(ctx context.Context, input RegisterGuideInput) (*RegisterGuideResult, error) {
	userReq := &model.CreateUserRequest{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Type:     model.UserTypeGuide,
	}
	if err := userReq.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	guideReq := &model.CreateGuideRequest{
		UserID:         "pending", // replaced after the account insert
		Name:           input.Name,
		Email:          input.Email,
		Location:       input.Location,
		Languages:      input.Languages,
		Specialties:    input.Specialties,
		CadasturNumber: input.CadasturNumber,
		SocialLinks:    input.SocialLinks,
	}
	guideReq.Sanitize()
	if err := guideReq.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	user, err := s.createUser(ctx, userReq)
	if err != nil {
		return nil, err
	}

	guideReq.UserID = user.ID
	guide, err := s.guides.Create(ctx, guideReq)
	if err != nil {
		// Compensate so the email is free for another attempt.
		if _, delErr := s.users.Delete(ctx, user.ID); delErr != nil {
			s.logger.ErrorContext(ctx, "roll back user after guide create failure",
				"user_id", user.ID, "error", delErr)
		}
		return nil, s.mapWriteErr(err)
	}

	return &RegisterGuideResult{User: user, Guide: guide}, nil
}

func (s *UserService) createUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, core.CreateUserParams{
		Name:         req.Name,
		Email:        domainauth.NormalizeEmail(req.Email),
		PasswordHash: string(hash),
		Type:         req.Type,
	})
	if err != nil {
		return nil, s.mapWriteErr(err)
	}
	return user, nil
}

// ChangePasswordInput groups parameters for a password update.
type ChangePasswordInput struct {
	UserID          string
	CurrentPassword string
	NewPassword     string
}

// ChangePassword verifies the current password and replaces the stored hash.
func (s *UserService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	if input.UserID == "" {
		return errors.New("user ID is required")
	}
	if err := model.ValidatePassword(input.NewPassword); err != nil {
		return apperrors.ValidationField("password", err.Error())
	}

	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return s.mapWriteErr(err)
	}

	if _, err := s.authenticator.Authenticate(ctx, ports.Credentials{
		Email:    user.Email,
		Password: input.CurrentPassword,
	}); err != nil {
		return apperrors.AuthRejected("Current password is incorrect.", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	ok, err := s.users.UpdatePassword(ctx, input.UserID, string(hash))
	if err != nil {
		return s.mapWriteErr(err)
	}
	if !ok {
		return apperrors.NotFound("User not found")
	}
	return nil
}

// RequestPasswordReset issues a single-use reset token and emails the link
// to the account owner. An unknown email is not an error: the response must
// not reveal whether an account exists.
func (s *UserService) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	if s.resetTokens == nil || s.resetNotifier == nil {
		return apperrors.Validation("Password reset is not available.")
	}

	emailAddr = domainauth.NormalizeEmail(emailAddr)
	if err := model.ValidateEmail(emailAddr); err != nil {
		return apperrors.ValidationField("email", err.Error())
	}

	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			s.logger.InfoContext(ctx, "password reset requested for unknown email", "email", emailAddr)
			return nil
		}
		return s.mapWriteErr(err)
	}

	token := uuid.NewString()
	if err := s.resetTokens.Save(ctx, token, user.ID, s.resetTokenTTL); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	err = s.resetNotifier.NotifyPasswordReset(ctx, core.PasswordResetNotification{
		Name:     user.Name,
		Email:    user.Email,
		ResetURL: s.baseURL + "/reset-password?token=" + url.QueryEscape(token),
	})
	if err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}

	s.logger.InfoContext(ctx, "password reset link issued", "user_id", user.ID)
	return nil
}

// ResetPasswordInput groups parameters for completing a password reset.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// ResetPassword consumes the reset token and replaces the stored hash. The
// token is spent even when the new password is later rejected downstream,
// so a failed reset requires a fresh link.
func (s *UserService) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	if s.resetTokens == nil {
		return apperrors.Validation("Password reset is not available.")
	}
	if input.Token == "" {
		return apperrors.ValidationField("token", "reset token is required")
	}
	if err := model.ValidatePassword(input.NewPassword); err != nil {
		return apperrors.ValidationField("password", err.Error())
	}

	userID, err := s.resetTokens.Consume(ctx, input.Token)
	if err != nil {
		return apperrors.AuthRejected("Invalid or expired reset link.", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	ok, err := s.users.UpdatePassword(ctx, userID, string(hash))
	if err != nil {
		return s.mapWriteErr(err)
	}
	if !ok {
		return apperrors.NotFound("User not found")
	}

	s.logger.InfoContext(ctx, "password reset completed", "user_id", userID)
	return nil
}

// GetByID retrieves a user profile by ID.
func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapWriteErr(err)
	}
	return user, nil
}

// List returns a page of user profiles.
func (s *UserService) List(ctx context.Context, limit, offset int) ([]*model.User, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.users.List(ctx, limit, offset)
}

// mapWriteErr translates data-layer sentinels into the API error taxonomy.
func (s *UserService) mapWriteErr(err error) error {
	switch {
	case errors.Is(err, data.ErrUserNotFound):
		return apperrors.NotFound("User not found")
	case errors.Is(err, data.ErrUserEmailExists):
		return apperrors.ValidationField("email", "An account with this email already exists.")
	case errors.Is(err, data.ErrGuideCadasturExists):
		return apperrors.ValidationField("cadastur_number", "This Cadastur number is already registered.")
	default:
		return apperrors.MapDBError(err)
	}
}
