package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

type fakeUserRepository struct {
	users map[string]*entity.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) Update(ctx context.Context, user *entity.User) error {
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

type fakePasswordService struct{}

func (f *fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (f *fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return domainerror.ErrInvalidCredentials
	}
	return nil
}

func (f *fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

type fakeTokenService struct {
	invalidated map[string]bool
	counter     int
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{invalidated: make(map[string]bool)}
}

func (f *fakeTokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	f.counter++
	return &adapter.TokenPair{
		AccessToken:  "access",
		RefreshToken: "refresh",
	}, nil
}

func (f *fakeTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return &adapter.TokenClaims{ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (f *fakeTokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	if token != "refresh" {
		return nil, domainerror.ErrInvalidToken
	}
	return &adapter.TokenClaims{UserID: uuid.New(), Email: "jane@example.com", ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (f *fakeTokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	f.invalidated[token] = true
	return nil
}

func (f *fakeTokenService) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	return !f.invalidated[token], nil
}

type fakeNotificationService struct {
	welcomes []adapter.WelcomeEmailInput
	err      error
}

func (f *fakeNotificationService) SendBudgetAlert(ctx context.Context, input adapter.BudgetAlertInput) error {
	return nil
}

func (f *fakeNotificationService) SendWelcomeEmail(ctx context.Context, input adapter.WelcomeEmailInput) error {
	if f.err != nil {
		return f.err
	}
	f.welcomes = append(f.welcomes, input)
	return nil
}

func TestRegisterUserUseCase_Execute(t *testing.T) {
	validInput := RegisterUserInput{
		Email:    "jane@example.com",
		Name:     "Jane",
		Password: "StrongPass123",
	}

	t.Run("registers user and sends welcome email", func(t *testing.T) {
		repo := newFakeUserRepository()
		notifier := &fakeNotificationService{}
		uc := NewRegisterUserUseCase(repo, &fakePasswordService{}, newFakeTokenService(), notifier)

		output, err := uc.Execute(context.Background(), validInput)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected token pair")
		}
		if output.User.PasswordHash != "hashed:StrongPass123" {
			t.Errorf("unexpected hash %q", output.User.PasswordHash)
		}
		if !output.User.EmailNotifications {
			t.Error("expected notifications enabled by default")
		}
		if !output.User.Budget.IsZero() {
			t.Errorf("expected zero budget by default, got %s", output.User.Budget)
		}
		if len(notifier.welcomes) != 1 {
			t.Errorf("expected welcome email, got %d", len(notifier.welcomes))
		}
	})

	t.Run("normalizes email casing", func(t *testing.T) {
		repo := newFakeUserRepository()
		uc := NewRegisterUserUseCase(repo, &fakePasswordService{}, newFakeTokenService(), &fakeNotificationService{})

		input := validInput
		input.Email = "  Jane@Example.COM "
		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.Email != "jane@example.com" {
			t.Errorf("expected normalized email, got %q", output.User.Email)
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := newFakeUserRepository()
		uc := NewRegisterUserUseCase(repo, &fakePasswordService{}, newFakeTokenService(), &fakeNotificationService{})

		if _, err := uc.Execute(context.Background(), validInput); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.Execute(context.Background(), validInput)
		if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
		}
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepository(), &fakePasswordService{}, newFakeTokenService(), &fakeNotificationService{})

		input := validInput
		input.Email = "not-an-email"
		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrInvalidEmail) {
			t.Errorf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("rejects weak password", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepository(), &fakePasswordService{}, newFakeTokenService(), &fakeNotificationService{})

		input := validInput
		input.Password = "short"
		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("welcome email failure does not fail registration", func(t *testing.T) {
		repo := newFakeUserRepository()
		notifier := &fakeNotificationService{err: errors.New("provider unavailable")}
		uc := NewRegisterUserUseCase(repo, &fakePasswordService{}, newFakeTokenService(), notifier)

		if _, err := uc.Execute(context.Background(), validInput); err != nil {
			t.Errorf("expected nil error, got %v", err)
		}
	})
}

func TestLoginUserUseCase_Execute(t *testing.T) {
	seed := func() *fakeUserRepository {
		repo := newFakeUserRepository()
		user := entity.NewUser("jane@example.com", "Jane", "hashed:StrongPass123")
		repo.users[user.Email] = user
		return repo
	}

	t.Run("logs in with valid credentials", func(t *testing.T) {
		uc := NewLoginUserUseCase(seed(), &fakePasswordService{}, newFakeTokenService())

		output, err := uc.Execute(context.Background(), LoginUserInput{Email: "jane@example.com", Password: "StrongPass123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" {
			t.Error("expected access token")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc := NewLoginUserUseCase(seed(), &fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(context.Background(), LoginUserInput{Email: "jane@example.com", Password: "WrongPass"})
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email yields the same error", func(t *testing.T) {
		uc := NewLoginUserUseCase(newFakeUserRepository(), &fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(context.Background(), LoginUserInput{Email: "nobody@example.com", Password: "StrongPass123"})
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestRefreshTokenUseCase_Execute(t *testing.T) {
	t.Run("rotates refresh token", func(t *testing.T) {
		tokens := newFakeTokenService()
		uc := NewRefreshTokenUseCase(tokens)

		output, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: "refresh"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" {
			t.Error("expected new access token")
		}
		if !tokens.invalidated["refresh"] {
			t.Error("expected old refresh token to be invalidated")
		}
	})

	t.Run("rejects invalid token", func(t *testing.T) {
		uc := NewRefreshTokenUseCase(newFakeTokenService())

		_, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: "garbage"})
		if !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("rejects revoked token", func(t *testing.T) {
		tokens := newFakeTokenService()
		tokens.invalidated["refresh"] = true
		uc := NewRefreshTokenUseCase(tokens)

		_, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: "refresh"})
		if !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestLogoutUserUseCase_Execute(t *testing.T) {
	tokens := newFakeTokenService()
	uc := NewLogoutUserUseCase(tokens)

	output, err := uc.Execute(context.Background(), LogoutUserInput{RefreshToken: "refresh"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Message == "" {
		t.Error("expected logout message")
	}
	if !tokens.invalidated["refresh"] {
		t.Error("expected refresh token to be invalidated")
	}
}
