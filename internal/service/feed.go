package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"photoframe/internal/domain"
)

// FeedBuilder turns the selected albums into a normalized, time-ordered
// photo feed.
type FeedBuilder struct {
	provider Provider
	store    CredentialStore
	tokens   *TokenManager
	logger   *slog.Logger
}

func NewFeedBuilder(provider Provider, store CredentialStore, tokens *TokenManager, logger *slog.Logger) *FeedBuilder {
	return &FeedBuilder{
		provider: provider,
		store:    store,
		tokens:   tokens,
		logger:   logger,
	}
}

// ListAlbums fetches the account's album list with the given token.
func (b *FeedBuilder) ListAlbums(ctx context.Context, accessToken string) ([]domain.AlbumSummary, error) {
	return b.provider.ListAlbums(ctx, accessToken)
}

// BuildFeed fetches every media item of the given albums and returns one
// feed sorted ascending by capture time. Albums are processed
// sequentially in the order given; a failure on any album aborts the
// whole fetch rather than returning a partial feed.
func (b *FeedBuilder) BuildFeed(ctx context.Context, accountID string, albumIDs []string) ([]domain.PhotoItem, error) {
	rec, err := b.store.TokenRecord(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("load token: %w", err)
	}
	if rec == nil {
		return nil, domain.ErrNotAuthenticated
	}

	rec = b.tokens.EnsureFresh(ctx, accountID, rec)

	var items []domain.PhotoItem
	for _, albumID := range albumIDs {
		media, err := b.provider.ListAlbumMedia(ctx, rec.AccessToken, albumID)
		if err != nil {
			return nil, fmt.Errorf("fetch album media: %w", err)
		}
		items = append(items, media...)

		b.logger.Debug("fetched album",
			"album_id", albumID,
			"items", len(media),
			"total", len(items),
		)
	}

	// Stable sort; items without a capture time keep their encountered
	// order relative to their neighbors.
	sort.SliceStable(items, func(i, j int) bool {
		ti, tj := items[i].TakenAt, items[j].TakenAt
		if ti == nil || tj == nil {
			return false
		}
		return ti.Before(*tj)
	})

	return items, nil
}
