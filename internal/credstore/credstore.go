// Package credstore persists tokens, the account profile and the album
// selection in a key-value space. All key naming lives inside this
// boundary; callers never see raw keys.
package credstore

import (
	"context"
	"encoding/json"
	"fmt"

	"photoframe/internal/domain"
)

const (
	tokenKeyPrefix    = "photoframe::token::"
	albumSelectionKey = "photoframe::albums"
	accountProfileKey = "photoframe::account-profile"
)

// KV is the storage port the credential store is backed by.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type Store struct {
	kv KV
}

func New(kv KV) *Store {
	return &Store{kv: kv}
}

// TokenRecord returns the stored token for accountID, or nil when absent.
func (s *Store) TokenRecord(ctx context.Context, accountID string) (*domain.TokenRecord, error) {
	var rec domain.TokenRecord
	ok, err := s.get(ctx, tokenKeyPrefix+accountID, &rec)
	if err != nil || !ok {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) SetTokenRecord(ctx context.Context, accountID string, rec *domain.TokenRecord) error {
	return s.set(ctx, tokenKeyPrefix+accountID, rec)
}

func (s *Store) DeleteTokenRecord(ctx context.Context, accountID string) error {
	return s.kv.Delete(ctx, tokenKeyPrefix+accountID)
}

// AccountProfile returns the stored profile, or nil when absent.
func (s *Store) AccountProfile(ctx context.Context) (*domain.AccountProfile, error) {
	var profile domain.AccountProfile
	ok, err := s.get(ctx, accountProfileKey, &profile)
	if err != nil || !ok {
		return nil, err
	}
	return &profile, nil
}

func (s *Store) SetAccountProfile(ctx context.Context, profile *domain.AccountProfile) error {
	return s.set(ctx, accountProfileKey, profile)
}

func (s *Store) DeleteAccountProfile(ctx context.Context) error {
	return s.kv.Delete(ctx, accountProfileKey)
}

// AlbumSelection returns the stored selection, or nil when absent.
func (s *Store) AlbumSelection(ctx context.Context) (*domain.AlbumSelection, error) {
	var selection domain.AlbumSelection
	ok, err := s.get(ctx, albumSelectionKey, &selection)
	if err != nil || !ok {
		return nil, err
	}
	return &selection, nil
}

func (s *Store) SetAlbumSelection(ctx context.Context, selection *domain.AlbumSelection) error {
	return s.set(ctx, albumSelectionKey, selection)
}

func (s *Store) DeleteAlbumSelection(ctx context.Context) error {
	return s.kv.Delete(ctx, albumSelectionKey)
}

func (s *Store) get(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
