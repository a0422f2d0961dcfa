package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"photoframe/internal/domain"
)

// Provider is the cloud photo service: device-authorization endpoints,
// identity endpoint and the photos library API.
type Provider interface {
	RequestDeviceCode(ctx context.Context) (*domain.DeviceCodeBundle, error)
	PollForToken(ctx context.Context, deviceCode string, interval time.Duration) (*domain.TokenGrant, error)
	RefreshToken(ctx context.Context, refreshToken string) (*domain.TokenGrant, error)
	FetchProfile(ctx context.Context, accessToken string) (*domain.AccountProfile, error)
	ListAlbums(ctx context.Context, accessToken string) ([]domain.AlbumSummary, error)
	ListAlbumMedia(ctx context.Context, accessToken, albumID string) ([]domain.PhotoItem, error)
}

// CredentialStore is durable storage for tokens, the account profile and
// the album selection. Absent entries are returned as (nil, nil).
type CredentialStore interface {
	TokenRecord(ctx context.Context, accountID string) (*domain.TokenRecord, error)
	SetTokenRecord(ctx context.Context, accountID string, rec *domain.TokenRecord) error
	DeleteTokenRecord(ctx context.Context, accountID string) error

	AccountProfile(ctx context.Context) (*domain.AccountProfile, error)
	SetAccountProfile(ctx context.Context, profile *domain.AccountProfile) error
	DeleteAccountProfile(ctx context.Context) error

	AlbumSelection(ctx context.Context) (*domain.AlbumSelection, error)
	SetAlbumSelection(ctx context.Context, selection *domain.AlbumSelection) error
	DeleteAlbumSelection(ctx context.Context) error
}

// FolderPicker prompts the user to choose a directory. A nil picker
// means the platform has no directory access at all.
type FolderPicker interface {
	PickFolder(ctx context.Context) (string, error)
}

// MediaURLIssuer turns local files into display URLs. Issued URLs must
// be released before new ones are handed out for the same session.
type MediaURLIssuer interface {
	Issue(path string) (string, error)
	Release(url string)
}
