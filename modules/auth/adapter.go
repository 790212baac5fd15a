package auth

import (
	"context"
	"encoding/json"

	domain "github.com/Darshank007/task-manager-fullstack/domain/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// AuthPort defines the interface for authentication operations.
// This is the port that other modules use to access auth functionality.
type AuthPort interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	ResolveToken(ctx context.Context, token string) (*domain.Identity, error)
}

// AuthAdapter implements AuthPort using the service container.
type AuthAdapter struct {
	container mono.ServiceContainer
}

// NewAuthAdapter creates a new AuthAdapter.
func NewAuthAdapter(container mono.ServiceContainer) *AuthAdapter {
	return &AuthAdapter{
		container: container,
	}
}

// Register creates a new account and returns its first token.
func (a *AuthAdapter) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	req := RegisterRequest{Name: name, Email: email, Password: password}
	var resp RegisterResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"register",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, err
	}

	return &AuthResult{Token: resp.Token, User: resp.User}, nil
}

// Login verifies credentials and returns a token.
func (a *AuthAdapter) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	req := LoginRequest{Email: email, Password: password}
	var resp LoginResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"login",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, err
	}

	return &AuthResult{Token: resp.Token, User: resp.User}, nil
}

// ResolveToken resolves a bearer token to a live identity.
func (a *AuthAdapter) ResolveToken(ctx context.Context, token string) (*domain.Identity, error) {
	req := ResolveTokenRequest{Token: token}
	var resp ResolveTokenResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"resolve-token",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, err
	}

	return &resp.User, nil
}
