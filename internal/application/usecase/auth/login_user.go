// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/simrs-budget/backend/internal/application/adapter"
	domainerror "github.com/simrs-budget/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Username string
	Password string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	AccessToken  string
	RefreshToken string
	Username     string
}

// LoginUserUseCase handles user login against the static credential list.
type LoginUserUseCase struct {
	credentialService adapter.CredentialService
	tokenService      adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	credentialService adapter.CredentialService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		credentialService: credentialService,
		tokenService:      tokenService,
	}
}

// Execute performs the user login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"username and password are required",
			domainerror.ErrInvalidCredentials,
		)
	}

	// Generic error either way to prevent username enumeration
	if err := uc.credentialService.Verify(input.Username, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid username or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &LoginUserOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		Username:     input.Username,
	}, nil
}
