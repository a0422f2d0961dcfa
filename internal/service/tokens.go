package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"photoframe/internal/domain"
)

// TokenManager owns token records: it normalizes raw grants into
// records with absolute expiry and keeps stored tokens fresh.
type TokenManager struct {
	provider Provider
	store    CredentialStore
	logger   *slog.Logger
	now      func() time.Time
}

func NewTokenManager(provider Provider, store CredentialStore, logger *slog.Logger) *TokenManager {
	return &TokenManager{
		provider: provider,
		store:    store,
		logger:   logger,
		now:      time.Now,
	}
}

// EnsureFresh returns rec unchanged while it is outside the freshness
// window, otherwise attempts a refresh-token exchange. Refresh is best
// effort: on any failure the original record comes back unchanged so the
// caller's next authenticated call can fail naturally and prompt a
// re-login.
func (m *TokenManager) EnsureFresh(ctx context.Context, accountID string, rec *domain.TokenRecord) *domain.TokenRecord {
	if rec.Fresh(m.now()) {
		return rec
	}
	if rec.RefreshToken == "" {
		m.logger.Warn("token expiring and no refresh token stored", "account_id", accountID)
		return rec
	}

	grant, err := m.provider.RefreshToken(ctx, rec.RefreshToken)
	if err != nil {
		m.logger.Warn("unable to refresh token", "account_id", accountID, "error", err)
		return rec
	}

	refreshed := m.normalize(grant)
	if refreshed.RefreshToken == "" {
		refreshed.RefreshToken = rec.RefreshToken
	}

	if err := m.store.SetTokenRecord(ctx, accountID, refreshed); err != nil {
		m.logger.Warn("unable to persist refreshed token", "account_id", accountID, "error", err)
	}

	return refreshed
}

// Persist normalizes a raw token grant and writes it to the credential
// store, keyed by account.
func (m *TokenManager) Persist(ctx context.Context, accountID string, grant *domain.TokenGrant) (*domain.TokenRecord, error) {
	rec := m.normalize(grant)
	if err := m.store.SetTokenRecord(ctx, accountID, rec); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}
	return rec, nil
}

func (m *TokenManager) normalize(grant *domain.TokenGrant) *domain.TokenRecord {
	return &domain.TokenRecord{
		AccessToken:  grant.AccessToken,
		RefreshToken: grant.RefreshToken,
		ExpiresAt:    m.now().Add(grant.ExpiresIn),
	}
}
