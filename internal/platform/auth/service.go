package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/padyhealth/portal/pkg/validate"
)

const (
	minPasswordLength = 6

	maxLoginFailures   = 5
	loginFailureWindow = 15 * time.Minute
)

// RegisterInput carries the sign-up form fields.
type RegisterInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
	Phone       string `json:"phone"`
}

// Notifier receives user-facing success and error notices.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Service implements account registration, login and logout against
// the local user store.
type Service struct {
	store    UserStore
	tokens   *TokenIssuer
	revoked  *RevocationStore
	notifier Notifier
	log      zerolog.Logger

	mu       sync.Mutex
	failures map[string][]time.Time
}

func NewService(store UserStore, tokens *TokenIssuer, revoked *RevocationStore, notifier Notifier, log zerolog.Logger) *Service {
	return &Service{
		store:    store,
		tokens:   tokens,
		revoked:  revoked,
		notifier: notifier,
		log:      log.With().Str("component", "auth").Logger(),
		failures: make(map[string][]time.Time),
	}
}

// Register creates a new account and signs the user in.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, *Session, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if !validate.Email(email) {
		return nil, nil, s.fail(authErr(CodeInvalidEmail, nil))
	}
	if len(in.Password) < minPasswordLength {
		return nil, nil, s.fail(authErr(CodeWeakPassword, nil))
	}

	if _, err := s.store.FindByEmail(ctx, email); err == nil {
		return nil, nil, s.fail(authErr(CodeEmailInUse, nil))
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, nil, s.fail(authErr(CodeNetworkFailed, err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, s.fail(authErr(CodeNetworkFailed, err))
	}

	role := in.Role
	if role == "" {
		role = RolePatient
	}

	user := &User{
		UID:          uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  in.DisplayName,
		Role:         role,
		Phone:        in.Phone,
	}
	if err := s.store.Create(ctx, user); err != nil {
		return nil, nil, s.fail(authErr(CodeNetworkFailed, err))
	}

	session, err := s.tokens.Issue(user)
	if err != nil {
		return nil, nil, s.fail(authErr(CodeNetworkFailed, err))
	}

	s.notifier.Success("Account created successfully!")
	s.log.Info().Str("uid", user.UID).Msg("account registered")
	return user, session, nil
}

// Login verifies credentials and issues a session token. Repeated
// failures for the same email are rejected for a cooldown window.
func (s *Service) Login(ctx context.Context, email, password string) (*User, *Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if s.tooManyFailures(email) {
		return nil, nil, s.fail(authErr(CodeTooManyRequests, nil))
	}

	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.recordFailure(email)
			return nil, nil, s.fail(authErr(CodeUserNotFound, nil))
		}
		return nil, nil, s.fail(authErr(CodeNetworkFailed, err))
	}
	if user.Disabled {
		return nil, nil, s.fail(authErr(CodeUserDisabled, nil))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.recordFailure(email)
		return nil, nil, s.fail(authErr(CodeWrongPassword, nil))
	}

	s.clearFailures(email)

	session, err := s.tokens.Issue(user)
	if err != nil {
		return nil, nil, s.fail(authErr(CodeNetworkFailed, err))
	}

	s.notifier.Success("Welcome back!")
	s.log.Info().Str("uid", user.UID).Msg("login")
	return user, session, nil
}

// Logout revokes the session token.
func (s *Service) Logout(claims *Claims) {
	s.revoked.Revoke(claims.JTI, claims.ExpiresAt)
	s.notifier.Success("Logged out successfully")
	s.log.Info().Str("uid", claims.UserID).Msg("logout")
}

// CurrentUserProfile loads the profile for a signed-in user.
func (s *Service) CurrentUserProfile(ctx context.Context, uid string) (*User, error) {
	user, err := s.store.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, authErr(CodeUserNotFound, nil)
		}
		return nil, authErr(CodeNetworkFailed, err)
	}
	return user, nil
}

// UpdateProfile saves edits to the signed-in user's profile.
func (s *Service) UpdateProfile(ctx context.Context, uid string, p Profile) error {
	if err := s.store.UpdateProfile(ctx, uid, p); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return s.fail(authErr(CodeUserNotFound, nil))
		}
		return s.fail(authErr(CodeNetworkFailed, err))
	}
	s.notifier.Success("Profile updated successfully!")
	return nil
}

func (s *Service) fail(err *Error) *Error {
	s.notifier.Error(err.Message())
	s.log.Warn().Str("code", err.Code).Err(err.Err).Msg("auth failure")
	return err
}

func (s *Service) tooManyFailures(email string) bool {
	cutoff := time.Now().Add(-loginFailureWindow)
	s.mu.Lock()
	defer s.mu.Unlock()
	recent := s.failures[email][:0]
	for _, t := range s.failures[email] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	s.failures[email] = recent
	return len(recent) >= maxLoginFailures
}

func (s *Service) recordFailure(email string) {
	s.mu.Lock()
	s.failures[email] = append(s.failures[email], time.Now())
	s.mu.Unlock()
}

func (s *Service) clearFailures(email string) {
	s.mu.Lock()
	delete(s.failures, email)
	s.mu.Unlock()
}
