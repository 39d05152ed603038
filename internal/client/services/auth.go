// Package services contains the application services behind the screens:
// authentication, profile building, and media upload. Each service wraps the
// API client with the validation and serialization its step requires.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ARPaule28/fynd-app/internal/client/api"
	"github.com/ARPaule28/fynd-app/internal/client/flow"
	"github.com/ARPaule28/fynd-app/internal/client/models"
)

// AuthService handles account creation and credential exchange.
//
// Contract:
//   - Login: validate locally, POST /auth/login, return the token payload.
//   - Register: validate locally (including password confirmation), create
//     the student account.
//
// Neither method touches the session store; the flow controller owns
// persistence of the returned credentials.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest, confirmPassword string) (*models.Student, error)
}

type authService struct {
	client api.Client
}

func NewAuthService(client api.Client) AuthService {
	return &authService{client: client}
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", flow.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", flow.ErrValidation)
	}
	return a.client.Login(ctx, email, password)
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest, confirmPassword string) (*models.Student, error) {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return nil, fmt.Errorf("%w: name is required", flow.ErrValidation)
	case strings.TrimSpace(req.Username) == "":
		return nil, fmt.Errorf("%w: username is required", flow.ErrValidation)
	case strings.TrimSpace(req.Email) == "":
		return nil, fmt.Errorf("%w: email is required", flow.ErrValidation)
	case req.Password == "":
		return nil, fmt.Errorf("%w: password is required", flow.ErrValidation)
	case req.Password != confirmPassword:
		return nil, fmt.Errorf("%w: passwords do not match", flow.ErrValidation)
	}

	if req.AccountType == "" {
		req.AccountType = "Student"
	}
	return a.client.Register(ctx, req)
}
