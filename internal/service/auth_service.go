package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"recipebook/internal/auth"
	apperrors "recipebook/internal/errors"
	"recipebook/internal/mail"
	"recipebook/internal/model"
	"recipebook/internal/repository"
)

const (
	bcryptCost        = 10
	minPasswordLength = 7
)

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// AuthService handles registration, login, logout and password reset.
type AuthService interface {
	Register(ctx context.Context, email, password, username string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	Logout(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, email, newPassword, confirmPassword string) error
	SendResetEmail(ctx context.Context, email string) error
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenService
	mailer mail.Mailer
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenService, mailer mail.Mailer) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		mailer: mailer,
	}
}

// Register creates a new user with a hashed password. Email must match the
// address pattern and the password must be longer than six characters.
func (s *authService) Register(ctx context.Context, email, password, username string) (*model.User, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if !emailPattern.MatchString(email) || len(password) < minPasswordLength {
		return nil, apperrors.ErrInvalidRegistration
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hashedPassword),
	}

	if err := s.users.Create(ctx, user); err != nil {
		// unique email constraint is the backstop for racing registrations
		if repository.IsDuplicateKey(err) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login authenticates a user and returns a signed access token.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}

// Logout places the presented token on the revocation list. The guard has
// already validated it; revoking twice is harmless.
func (s *authService) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}

// ResetPassword replaces the user's password hash. The new password and its
// confirmation must match and satisfy the length rule; an unknown email is
// reported as not found.
func (s *authService) ResetPassword(ctx context.Context, email, newPassword, confirmPassword string) error {
	email = strings.TrimSpace(email)
	newPassword = strings.TrimSpace(newPassword)
	confirmPassword = strings.TrimSpace(confirmPassword)

	if !emailPattern.MatchString(email) {
		return apperrors.ErrInvalidEmail
	}
	if newPassword != confirmPassword {
		return apperrors.ErrPasswordMismatch
	}
	if len(newPassword) < minPasswordLength {
		return apperrors.ErrPasswordTooShort
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = string(hashedPassword)
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// SendResetEmail mails a short-lived reset token to the given address.
func (s *authService) SendResetEmail(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if !emailPattern.MatchString(email) {
		return apperrors.ErrInvalidEmail
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	token, err := s.tokens.IssueResetToken(user.ID)
	if err != nil {
		return fmt.Errorf("issue reset token: %w", err)
	}

	if err := s.mailer.SendPasswordReset(user.Email, token); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}
	return nil
}
