package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	domain "github.com/Darshank007/task-manager-fullstack/domain/user"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthService(t *testing.T) (*AuthService, *UserRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	repo := NewUserRepository(db)
	service := NewAuthService(repo, NewPasswordHasher(), NewTokenManager(testTokenConfig()))
	return service, repo
}

func TestAuthService_Register(t *testing.T) {
	service, repo := setupAuthService(t)
	ctx := context.Background()

	result, err := service.Register(ctx, "Alice", "Alice@Example.com", "password123")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if result.Token == "" {
		t.Error("Register() returned empty token")
	}
	if result.User.ID == "" {
		t.Error("Register() returned empty user ID")
	}
	if result.User.Name != "Alice" {
		t.Errorf("User.Name = %v, want Alice", result.User.Name)
	}
	if result.User.Email != "alice@example.com" {
		t.Errorf("User.Email = %v, want normalized alice@example.com", result.User.Email)
	}

	// The stored credential must be a digest, never the plaintext.
	stored, err := repo.FindByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if stored.PasswordHash == "password123" {
		t.Error("password stored in plaintext")
	}
	if !strings.HasPrefix(stored.PasswordHash, "$2a$") {
		t.Errorf("PasswordHash = %q, want bcrypt digest", stored.PasswordHash)
	}

	// The issued token resolves straight back to the new account.
	identity, err := service.ResolveToken(ctx, result.Token)
	if err != nil {
		t.Fatalf("ResolveToken() error = %v", err)
	}
	if identity.ID != result.User.ID {
		t.Errorf("resolved ID = %v, want %v", identity.ID, result.User.ID)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	service, _ := setupAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "missing name",
			userName: "",
			email:    "a@example.com",
			password: "password123",
			wantErr:  ErrMissingFields,
		},
		{
			name:     "whitespace name",
			userName: "   ",
			email:    "a@example.com",
			password: "password123",
			wantErr:  ErrMissingFields,
		},
		{
			name:     "missing email",
			userName: "Alice",
			email:    "",
			password: "password123",
			wantErr:  ErrMissingFields,
		},
		{
			name:     "missing password",
			userName: "Alice",
			email:    "a@example.com",
			password: "",
			wantErr:  ErrMissingFields,
		},
		{
			name:     "invalid email",
			userName: "Alice",
			email:    "not-an-email",
			password: "password123",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "password too short",
			userName: "Alice",
			email:    "a@example.com",
			password: "12345",
			wantErr:  ErrWeakPassword,
		},
		{
			name:     "password too long",
			userName: "Alice",
			email:    "a@example.com",
			password: strings.Repeat("x", 73),
			wantErr:  ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(ctx, tt.userName, tt.email, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	service, _ := setupAuthService(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, "Alice", "alice@example.com", "password123"); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	// Same address with different casing still collides.
	_, err := service.Register(ctx, "Mallory", "ALICE@example.com", "different456")
	if !errors.Is(err, ErrUserExists) {
		t.Errorf("Register() error = %v, want ErrUserExists", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	service, _ := setupAuthService(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, "Alice", "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		result, err := service.Login(ctx, "alice@example.com", "password123")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if result.Token == "" {
			t.Error("Login() returned empty token")
		}
		if result.User.ID != registered.User.ID {
			t.Errorf("User.ID = %v, want %v", result.User.ID, registered.User.ID)
		}
	})

	t.Run("case-insensitive email", func(t *testing.T) {
		if _, err := service.Login(ctx, "Alice@Example.COM", "password123"); err != nil {
			t.Errorf("Login() error = %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(ctx, "alice@example.com", "wrong-password")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := service.Login(ctx, "nobody@example.com", "password123")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestAuthService_ResolveToken(t *testing.T) {
	service, _ := setupAuthService(t)
	ctx := context.Background()

	result, err := service.Register(ctx, "Alice", "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	t.Run("valid token", func(t *testing.T) {
		identity, err := service.ResolveToken(ctx, result.Token)
		if err != nil {
			t.Fatalf("ResolveToken() error = %v", err)
		}
		if identity.Email != "alice@example.com" {
			t.Errorf("identity.Email = %v, want alice@example.com", identity.Email)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.ResolveToken(ctx, "not-a-token")
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("ResolveToken() error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("foreign secret", func(t *testing.T) {
		otherConfig := testTokenConfig()
		otherConfig.SecretKey = "some-other-secret"
		foreign, err := NewTokenManager(otherConfig).Issue(result.User.ID)
		if err != nil {
			t.Fatalf("Issue() error = %v", err)
		}

		_, err = service.ResolveToken(ctx, foreign)
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("ResolveToken() error = %v, want ErrInvalidToken", err)
		}
	})
}

func TestAuthService_ResolveToken_DeletedUser(t *testing.T) {
	service, repo := setupAuthService(t)
	ctx := context.Background()

	result, err := service.Register(ctx, "Alice", "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// Delete the account out from under a still-valid token.
	if err := repo.db.Delete(&domain.User{}, "id = ?", result.User.ID).Error; err != nil {
		t.Fatalf("failed to delete user: %v", err)
	}

	_, err = service.ResolveToken(ctx, result.Token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ResolveToken() error = %v, want ErrInvalidToken for deleted user", err)
	}
}
