package services

import (
	"context"
	"fmt"
	"time"

	"github.com/braid-labs/braid/ent"
	"github.com/braid-labs/braid/ent/oauthtoken"
)

// TokenService manages per-user OAuth connections. The connect/disconnect
// HTTP endpoints live outside the engine; everything here is the storage
// surface the planner and the tool invoker read.
type TokenService struct {
	client *ent.Client
	sealer *TokenSealer
}

// NewTokenService creates a new TokenService.
func NewTokenService(client *ent.Client, sealer *TokenSealer) *TokenService {
	return &TokenService{client: client, sealer: sealer}
}

// SaveTokenRequest carries one provider connection to store.
type SaveTokenRequest struct {
	UserID        string
	Provider      string
	AccessToken   string
	RefreshToken  string
	Scopes        []string
	WorkspaceID   string
	WorkspaceName string
	ExpiresAt     *time.Time
}

// SaveToken upserts the user's connection for a provider, sealing the
// tokens before they reach the table.
func (s *TokenService) SaveToken(ctx context.Context, req SaveTokenRequest) error {
	if req.UserID == "" || req.Provider == "" {
		return NewValidationError("provider", "user_id and provider are required")
	}
	if req.AccessToken == "" {
		return NewValidationError("access_token", "access token is required")
	}
	sealed, err := s.sealer.Seal(req.AccessToken)
	if err != nil {
		return fmt.Errorf("failed to seal access token: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.OAuthToken.Create().
		SetUserID(req.UserID).
		SetProvider(req.Provider).
		SetAccessTokenEncrypted(sealed).
		SetScopes(req.Scopes)
	if req.RefreshToken != "" {
		sealedRefresh, err := s.sealer.Seal(req.RefreshToken)
		if err != nil {
			return fmt.Errorf("failed to seal refresh token: %w", err)
		}
		create.SetRefreshTokenEncrypted(sealedRefresh)
	}
	if req.WorkspaceID != "" {
		create.SetWorkspaceID(req.WorkspaceID)
	}
	if req.WorkspaceName != "" {
		create.SetWorkspaceName(req.WorkspaceName)
	}
	if req.ExpiresAt != nil {
		create.SetExpiresAt(*req.ExpiresAt)
	}

	err = create.
		OnConflictColumns(oauthtoken.FieldUserID, oauthtoken.FieldProvider).
		UpdateNewValues().
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to save token for %s/%s: %w", req.UserID, req.Provider, err)
	}
	return nil
}

// DeleteToken removes the user's connection for a provider.
func (s *TokenService) DeleteToken(ctx context.Context, userID, provider string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.OAuthToken.Delete().
		Where(
			oauthtoken.UserIDEQ(userID),
			oauthtoken.ProviderEQ(provider),
		).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to delete token for %s/%s: %w", userID, provider, err)
	}
	return nil
}

// ConnectedServices lists the providers the user has a stored token for.
func (s *TokenService) ConnectedServices(ctx context.Context, userID string) ([]string, error) {
	providers, err := s.client.OAuthToken.Query().
		Where(oauthtoken.UserIDEQ(userID)).
		Order(ent.Asc(oauthtoken.FieldProvider)).
		Select(oauthtoken.FieldProvider).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list connected services: %w", err)
	}
	return providers, nil
}

// GrantedScopes returns the user's granted scopes per provider. Providers
// connected without explicit scopes map to an empty slice.
func (s *TokenService) GrantedScopes(ctx context.Context, userID string) (map[string][]string, error) {
	rows, err := s.client.OAuthToken.Query().
		Where(oauthtoken.UserIDEQ(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query granted scopes: %w", err)
	}
	scopes := make(map[string][]string, len(rows))
	for _, row := range rows {
		scopes[row.Provider] = append([]string(nil), row.Scopes...)
	}
	return scopes, nil
}

// AccessToken returns the user's plaintext access token for a provider.
// Implements tools.TokenSource.
func (s *TokenService) AccessToken(ctx context.Context, userID, provider string) (string, error) {
	row, err := s.client.OAuthToken.Query().
		Where(
			oauthtoken.UserIDEQ(userID),
			oauthtoken.ProviderEQ(provider),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", fmt.Errorf("%w: %s/%s", ErrTokenMissing, userID, provider)
		}
		return "", fmt.Errorf("failed to load token for %s/%s: %w", userID, provider, err)
	}
	token, err := s.sealer.Open(row.AccessTokenEncrypted)
	if err != nil {
		return "", fmt.Errorf("failed to unseal token for %s/%s: %w", userID, provider, err)
	}
	return token, nil
}
