package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type mockUserStore struct {
	users map[string]*User
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[string]*User)}
}

func (m *mockUserStore) Create(ctx context.Context, u *User) error {
	m.users[u.Email] = u
	return nil
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	return nil, ErrUserNotFound
}

func (m *mockUserStore) FindByUID(ctx context.Context, uid string) (*User, error) {
	for _, u := range m.users {
		if u.UID == uid {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockUserStore) UpdateProfile(ctx context.Context, uid string, p Profile) error {
	for _, u := range m.users {
		if u.UID == uid {
			u.DisplayName = p.DisplayName
			return nil
		}
	}
	return ErrUserNotFound
}

type mockNotifier struct {
	successes []string
	errs      []string
}

func (m *mockNotifier) Success(msg string) { m.successes = append(m.successes, msg) }
func (m *mockNotifier) Error(msg string)   { m.errs = append(m.errs, msg) }

func newTestService(store UserStore) (*Service, *mockNotifier, *RevocationStore) {
	notifier := &mockNotifier{}
	revoked := NewRevocationStore()
	tokens := NewTokenIssuer("test-secret", time.Hour)
	svc := NewService(store, tokens, revoked, notifier, zerolog.Nop())
	return svc, notifier, revoked
}

func TestRegisterAndLogin(t *testing.T) {
	store := newMockUserStore()
	svc, notifier, revoked := newTestService(store)
	defer revoked.Close()

	user, session, err := svc.Register(context.Background(), RegisterInput{
		Email:       "Jane@Example.com",
		Password:    "secret1",
		DisplayName: "Jane",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.Email != "jane@example.com" {
		t.Errorf("expected normalized email, got %q", user.Email)
	}
	if user.Role != RolePatient {
		t.Errorf("expected default role %q, got %q", RolePatient, user.Role)
	}
	if session.Token == "" {
		t.Error("expected a session token")
	}
	if len(notifier.successes) != 1 || notifier.successes[0] != "Account created successfully!" {
		t.Errorf("unexpected success notices %v", notifier.successes)
	}

	_, loginSession, err := svc.Login(context.Background(), "jane@example.com", "secret1")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if loginSession.Token == "" {
		t.Error("expected a login session token")
	}
}

func TestRegisterValidation(t *testing.T) {
	store := newMockUserStore()
	svc, notifier, revoked := newTestService(store)
	defer revoked.Close()

	tests := []struct {
		name     string
		input    RegisterInput
		wantCode string
	}{
		{"bad email", RegisterInput{Email: "not-an-email", Password: "secret1"}, CodeInvalidEmail},
		{"short password", RegisterInput{Email: "a@b.co", Password: "abc"}, CodeWeakPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Register(context.Background(), tt.input)
			var authError *Error
			if !errors.As(err, &authError) || authError.Code != tt.wantCode {
				t.Fatalf("Register() error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
	if len(notifier.errs) != len(tests) {
		t.Errorf("expected %d error notices, got %d", len(tests), len(notifier.errs))
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newMockUserStore()
	svc, _, revoked := newTestService(store)
	defer revoked.Close()

	in := RegisterInput{Email: "dup@example.com", Password: "secret1"}
	if _, _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	_, _, err := svc.Register(context.Background(), in)
	var authError *Error
	if !errors.As(err, &authError) || authError.Code != CodeEmailInUse {
		t.Fatalf("second Register() error = %v, want %s", err, CodeEmailInUse)
	}
	if authError.Message() != "Email already in use" {
		t.Errorf("unexpected display message %q", authError.Message())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	store := newMockUserStore()
	hash, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	store.users["u@example.com"] = &User{UID: "u1", Email: "u@example.com", PasswordHash: string(hash)}

	svc, _, revoked := newTestService(store)
	defer revoked.Close()

	_, _, err := svc.Login(context.Background(), "u@example.com", "wrong")
	var authError *Error
	if !errors.As(err, &authError) || authError.Code != CodeWrongPassword {
		t.Fatalf("Login() error = %v, want %s", err, CodeWrongPassword)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	store := newMockUserStore()
	svc, _, revoked := newTestService(store)
	defer revoked.Close()

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "pw")
	var authError *Error
	if !errors.As(err, &authError) || authError.Code != CodeUserNotFound {
		t.Fatalf("Login() error = %v, want %s", err, CodeUserNotFound)
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	store := newMockUserStore()
	hash, _ := bcrypt.GenerateFromPassword([]byte("pw123456"), bcrypt.MinCost)
	store.users["d@example.com"] = &User{UID: "d1", Email: "d@example.com", PasswordHash: string(hash), Disabled: true}

	svc, _, revoked := newTestService(store)
	defer revoked.Close()

	_, _, err := svc.Login(context.Background(), "d@example.com", "pw123456")
	var authError *Error
	if !errors.As(err, &authError) || authError.Code != CodeUserDisabled {
		t.Fatalf("Login() error = %v, want %s", err, CodeUserDisabled)
	}
}

func TestLoginRateLimit(t *testing.T) {
	store := newMockUserStore()
	hash, _ := bcrypt.GenerateFromPassword([]byte("right123"), bcrypt.MinCost)
	store.users["r@example.com"] = &User{UID: "r1", Email: "r@example.com", PasswordHash: string(hash)}

	svc, _, revoked := newTestService(store)
	defer revoked.Close()

	for i := 0; i < maxLoginFailures; i++ {
		svc.Login(context.Background(), "r@example.com", "wrong")
	}

	_, _, err := svc.Login(context.Background(), "r@example.com", "right123")
	var authError *Error
	if !errors.As(err, &authError) || authError.Code != CodeTooManyRequests {
		t.Fatalf("Login() error = %v, want %s", err, CodeTooManyRequests)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	store := newMockUserStore()
	svc, notifier, revoked := newTestService(store)
	defer revoked.Close()

	_, session, err := svc.Register(context.Background(), RegisterInput{Email: "x@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	claims, err := svc.tokens.Parse(session.Token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	svc.Logout(claims)

	if !revoked.IsRevoked(claims.JTI) {
		t.Error("expected token to be revoked after logout")
	}
	last := notifier.successes[len(notifier.successes)-1]
	if last != "Logged out successfully" {
		t.Errorf("unexpected logout notice %q", last)
	}
}

func TestDisplayMessageFallback(t *testing.T) {
	if got := DisplayMessage("auth/some-unknown-code"); got != genericMessage {
		t.Errorf("DisplayMessage() = %q, want generic fallback", got)
	}
}
