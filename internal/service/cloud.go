package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"photoframe/internal/domain"
	"photoframe/internal/notify"
)

// CloudState is the aggregate the cloud session owns exclusively. All
// mutations go through the session's intents; Snapshot returns a copy.
type CloudState struct {
	Account          *domain.AccountProfile
	Albums           []domain.AlbumSummary
	SelectedAlbumIDs []string
	Photos           []domain.PhotoItem
	Source           *domain.PhotoSource
	Busy             bool
	AuthPhase        domain.AuthPhase
	DeviceCode       *domain.DeviceCodeBundle
	AuthError        string
}

// CloudSession orchestrates account linking, album selection and feed
// syncing for the cloud photo source.
type CloudSession struct {
	provider Provider
	store    CredentialStore
	tokens   *TokenManager
	feed     *FeedBuilder
	notifier notify.Notifier
	logger   *slog.Logger
	now      func() time.Time

	mu         sync.Mutex
	state      CloudState
	pollGen    int
	cancelPoll context.CancelFunc
}

// NewCloudSession creates a cloud session. notifier may be nil.
func NewCloudSession(
	provider Provider,
	store CredentialStore,
	tokens *TokenManager,
	feed *FeedBuilder,
	notifier notify.Notifier,
	logger *slog.Logger,
) *CloudSession {
	return &CloudSession{
		provider: provider,
		store:    store,
		tokens:   tokens,
		feed:     feed,
		notifier: notifier,
		logger:   logger.With("session", "cloud"),
		now:      time.Now,
		state:    CloudState{AuthPhase: domain.AuthIdle},
	}
}

// Snapshot returns a copy of the current aggregate state.
func (s *CloudSession) Snapshot() CloudState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// StartDeviceAuth cancels any in-flight poll, resets the authorization
// state and requests a fresh device code. The error is also captured
// into the aggregate so the shell can render it inline.
func (s *CloudSession) StartDeviceAuth(ctx context.Context) error {
	s.mu.Lock()
	if s.cancelPoll != nil {
		s.cancelPoll()
		s.cancelPoll = nil
	}
	s.pollGen++
	s.state.AuthPhase = domain.AuthIdle
	s.state.AuthError = ""
	s.state.DeviceCode = nil
	s.mu.Unlock()

	bundle, err := s.provider.RequestDeviceCode(ctx)
	if err != nil {
		s.setAuthError(ctx, err)
		return err
	}

	s.mu.Lock()
	s.state.AuthPhase = domain.AuthCode
	s.state.DeviceCode = bundle
	s.mu.Unlock()

	s.notify(ctx, notify.KindAuthCode, map[string]string{
		"user_code":        bundle.UserCode,
		"verification_url": bundle.VerificationURL,
	})
	return nil
}

// BeginPolling polls the token endpoint until the user approves the
// device. A no-op when no code has been issued. Starting a new poll
// cancels any in-flight one; a superseded poll's outcome never mutates
// state. Cancellation is absorbed silently.
func (s *CloudSession) BeginPolling(ctx context.Context) error {
	s.mu.Lock()
	code := s.state.DeviceCode
	if code == nil {
		s.mu.Unlock()
		return nil
	}
	if s.cancelPoll != nil {
		s.cancelPoll()
	}
	s.pollGen++
	gen := s.pollGen
	pollCtx, cancel := context.WithCancel(ctx)
	s.cancelPoll = cancel
	s.state.AuthPhase = domain.AuthPolling
	s.state.AuthError = ""
	s.mu.Unlock()

	defer cancel()

	grant, err := s.provider.PollForToken(pollCtx, code.DeviceCode, code.Interval)
	if err != nil {
		if domain.IsCancelled(err) {
			s.leavePolling(gen)
			return nil
		}
		s.resolvePoll(ctx, gen, err)
		return err
	}

	profile, err := s.provider.FetchProfile(pollCtx, grant.AccessToken)
	if err != nil {
		if domain.IsCancelled(err) {
			s.leavePolling(gen)
			return nil
		}
		s.resolvePoll(ctx, gen, err)
		return err
	}

	if _, err := s.tokens.Persist(ctx, profile.ID, grant); err != nil {
		s.resolvePoll(ctx, gen, err)
		return err
	}
	if err := s.store.SetAccountProfile(ctx, profile); err != nil {
		s.resolvePoll(ctx, gen, err)
		return err
	}

	// Album load failure is not terminal for the link; the list can be
	// refreshed later.
	albums, err := s.provider.ListAlbums(pollCtx, grant.AccessToken)
	if err != nil {
		s.logger.Warn("unable to fetch albums after linking", "error", err)
		albums = nil
	}

	synced := s.now()
	s.mu.Lock()
	if gen != s.pollGen {
		s.mu.Unlock()
		return nil
	}
	s.state.Account = profile
	s.state.Albums = albums
	s.state.Source = &domain.PhotoSource{
		Kind:        domain.SourceCloud,
		DisplayName: profile.DisplayName(),
		LastSynced:  &synced,
	}
	s.state.AuthPhase = domain.AuthReady
	s.state.AuthError = ""
	s.mu.Unlock()

	s.notify(ctx, notify.KindAuthReady, map[string]string{"account_id": profile.ID})
	s.logger.Info("account linked", "account_id", profile.ID)
	return nil
}

// CancelPolling aborts any in-flight poll and returns the attempt to
// idle. Idempotent; cancelling after completion is a no-op.
func (s *CloudSession) CancelPolling() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelPoll != nil {
		s.cancelPoll()
		s.cancelPoll = nil
	}
	s.pollGen++
	if s.state.AuthPhase == domain.AuthPolling {
		s.state.AuthPhase = domain.AuthIdle
		s.state.DeviceCode = nil
	}
}

// leavePolling backs a cancelled attempt out of the polling phase to
// idle without surfacing an error, unless a newer attempt owns the
// phase.
func (s *CloudSession) leavePolling(gen int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.pollGen && s.state.AuthPhase == domain.AuthPolling {
		s.state.AuthPhase = domain.AuthIdle
		s.state.DeviceCode = nil
	}
}

// resolvePoll records a terminal poll failure unless the attempt has
// been superseded in the meantime.
func (s *CloudSession) resolvePoll(ctx context.Context, gen int, err error) {
	s.mu.Lock()
	if gen != s.pollGen {
		s.mu.Unlock()
		return
	}
	s.state.AuthPhase = domain.AuthError
	s.state.AuthError = err.Error()
	s.mu.Unlock()

	s.notify(ctx, notify.KindAuthError, map[string]string{"error": err.Error()})
	s.logger.Warn("polling failed", "error", err)
}

// SelectAlbums persists the album selection wholesale, then syncs.
// Requires a linked account.
func (s *CloudSession) SelectAlbums(ctx context.Context, albumIDs []string) error {
	s.mu.Lock()
	account := s.state.Account
	s.mu.Unlock()
	if account == nil {
		return nil
	}

	selection := &domain.AlbumSelection{
		AccountID: account.ID,
		AlbumIDs:  albumIDs,
	}
	if err := s.store.SetAlbumSelection(ctx, selection); err != nil {
		return fmt.Errorf("persist album selection: %w", err)
	}

	s.mu.Lock()
	s.state.SelectedAlbumIDs = albumIDs
	s.mu.Unlock()

	return s.SyncSelectedAlbums(ctx, selection)
}

// SyncSelectedAlbums rebuilds the photo feed from the given selection,
// or from the persisted one when override is nil. An empty selection is
// a no-op, not an error. The busy flag is always cleared, whatever the
// outcome.
func (s *CloudSession) SyncSelectedAlbums(ctx context.Context, override *domain.AlbumSelection) error {
	selection := override
	if selection == nil {
		stored, err := s.store.AlbumSelection(ctx)
		if err != nil {
			return fmt.Errorf("load album selection: %w", err)
		}
		selection = stored
	}
	if selection == nil || len(selection.AlbumIDs) == 0 {
		return nil
	}

	s.setBusy(true)
	defer s.setBusy(false)

	photos, err := s.feed.BuildFeed(ctx, selection.AccountID, selection.AlbumIDs)
	if err != nil {
		s.mu.Lock()
		s.state.AuthPhase = domain.AuthError
		s.state.AuthError = err.Error()
		s.mu.Unlock()

		s.notify(ctx, notify.KindAuthError, map[string]string{"error": err.Error()})
		return fmt.Errorf("sync albums: %w", err)
	}

	synced := s.now()
	s.mu.Lock()
	displayName := "Cloud Photos"
	if s.state.Account != nil {
		displayName = s.state.Account.DisplayName()
	}
	s.state.Photos = photos
	s.state.Source = &domain.PhotoSource{
		Kind:        domain.SourceCloud,
		DisplayName: displayName,
		LastSynced:  &synced,
	}
	s.mu.Unlock()

	s.notify(ctx, notify.KindFeedSynced, map[string]string{"count": fmt.Sprint(len(photos))})
	s.logger.Info("feed synced", "albums", len(selection.AlbumIDs), "photos", len(photos))
	return nil
}

// Sync re-syncs the persisted selection; it lets the scheduler drive
// periodic refreshes.
func (s *CloudSession) Sync(ctx context.Context) error {
	return s.SyncSelectedAlbums(ctx, nil)
}

// Logout cancels polling, clears every stored credential and resets the
// aggregate to its initial state.
func (s *CloudSession) Logout(ctx context.Context) error {
	s.CancelPolling()

	s.mu.Lock()
	account := s.state.Account
	s.mu.Unlock()

	var errs []error
	if account != nil {
		errs = append(errs, s.store.DeleteTokenRecord(ctx, account.ID))
	}
	errs = append(errs,
		s.store.DeleteAccountProfile(ctx),
		s.store.DeleteAlbumSelection(ctx),
	)

	s.mu.Lock()
	s.state = CloudState{AuthPhase: domain.AuthIdle}
	s.mu.Unlock()

	s.notify(ctx, notify.KindLogout, nil)
	return errors.Join(errs...)
}

// Restore loads the persisted profile and selection on startup; a stored
// selection triggers an immediate best-effort sync.
func (s *CloudSession) Restore(ctx context.Context) error {
	profile, err := s.store.AccountProfile(ctx)
	if err != nil {
		return fmt.Errorf("restore profile: %w", err)
	}
	if profile != nil {
		s.mu.Lock()
		s.state.Account = profile
		s.state.Source = &domain.PhotoSource{
			Kind:        domain.SourceCloud,
			DisplayName: profile.DisplayName(),
		}
		s.mu.Unlock()
	}

	selection, err := s.store.AlbumSelection(ctx)
	if err != nil {
		return fmt.Errorf("restore album selection: %w", err)
	}
	if selection == nil || len(selection.AlbumIDs) == 0 {
		return nil
	}

	s.mu.Lock()
	s.state.SelectedAlbumIDs = selection.AlbumIDs
	s.mu.Unlock()

	if err := s.SyncSelectedAlbums(ctx, selection); err != nil {
		s.logger.Warn("restore sync failed", "error", err)
	}
	return nil
}

func (s *CloudSession) setBusy(busy bool) {
	s.mu.Lock()
	s.state.Busy = busy
	s.mu.Unlock()
}

func (s *CloudSession) setAuthError(ctx context.Context, err error) {
	s.mu.Lock()
	s.state.AuthPhase = domain.AuthError
	s.state.AuthError = err.Error()
	s.mu.Unlock()

	s.notify(ctx, notify.KindAuthError, map[string]string{"error": err.Error()})
}

func (s *CloudSession) notify(ctx context.Context, kind string, detail map[string]string) {
	if s.notifier == nil {
		return
	}
	event := notify.NewEvent(kind, "cloud-session", detail)
	if err := s.notifier.Notify(ctx, event); err != nil {
		s.logger.Warn("notify failed", "kind", kind, "error", err)
	}
}
