package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"photoframe/internal/domain"
	"photoframe/internal/service/mocks"
)

type FeedBuilderTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	provider *mocks.MockProvider
	store    *mocks.MockCredentialStore

	builder *FeedBuilder
	now     time.Time
}

func (s *FeedBuilderTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.provider = mocks.NewMockProvider(s.ctrl)
	s.store = mocks.NewMockCredentialStore(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	tokens := NewTokenManager(s.provider, s.store, logger)
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tokens.now = func() time.Time { return s.now }

	s.builder = NewFeedBuilder(s.provider, s.store, tokens, logger)
}

func (s *FeedBuilderTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestFeedBuilderTestSuite(t *testing.T) {
	suite.Run(t, new(FeedBuilderTestSuite))
}

func (s *FeedBuilderTestSuite) freshToken() *domain.TokenRecord {
	return &domain.TokenRecord{
		AccessToken: "token-1",
		ExpiresAt:   s.now.Add(time.Hour),
	}
}

func (s *FeedBuilderTestSuite) TestBuildFeed_NotAuthenticated() {
	ctx := context.Background()

	s.store.EXPECT().TokenRecord(ctx, "acct1").Return(nil, nil)

	feed, err := s.builder.BuildFeed(ctx, "acct1", []string{"albumA"})

	s.ErrorIs(err, domain.ErrNotAuthenticated)
	s.Nil(feed)
}

func (s *FeedBuilderTestSuite) TestBuildFeed_SortsByCaptureTime() {
	ctx := context.Background()

	t1 := s.now.Add(-3 * time.Hour)
	t2 := s.now.Add(-2 * time.Hour)
	t3 := s.now.Add(-1 * time.Hour)

	albumA := []domain.PhotoItem{
		{ID: "a-2", TakenAt: &t2},
		{ID: "a-1", TakenAt: &t1},
		{ID: "a-3", TakenAt: &t3},
	}
	albumB := []domain.PhotoItem{
		{ID: "b-1"},
		{ID: "b-2"},
	}

	s.store.EXPECT().TokenRecord(ctx, "acct1").Return(s.freshToken(), nil)
	s.provider.EXPECT().ListAlbumMedia(ctx, "token-1", "albumA").Return(albumA, nil)
	s.provider.EXPECT().ListAlbumMedia(ctx, "token-1", "albumB").Return(albumB, nil)

	feed, err := s.builder.BuildFeed(ctx, "acct1", []string{"albumA", "albumB"})

	s.NoError(err)
	s.Len(feed, 5)
	s.Equal("a-1", feed[0].ID)
	s.Equal("a-2", feed[1].ID)
	s.Equal("a-3", feed[2].ID)
	s.Equal("b-1", feed[3].ID, "items without timestamps keep their relative order")
	s.Equal("b-2", feed[4].ID)
}

func (s *FeedBuilderTestSuite) TestBuildFeed_AlbumFailureAbortsWholeFetch() {
	ctx := context.Background()

	s.store.EXPECT().TokenRecord(ctx, "acct1").Return(s.freshToken(), nil)
	s.provider.EXPECT().ListAlbumMedia(ctx, "token-1", "albumA").Return([]domain.PhotoItem{{ID: "a-1"}}, nil)
	s.provider.EXPECT().ListAlbumMedia(ctx, "token-1", "albumB").Return(nil, &domain.RemoteError{Status: 500, Message: "boom"})

	feed, err := s.builder.BuildFeed(ctx, "acct1", []string{"albumA", "albumB"})

	s.Error(err)
	s.Nil(feed, "no partial feed on failure")
}

func (s *FeedBuilderTestSuite) TestBuildFeed_RefreshesStaleToken() {
	ctx := context.Background()

	stale := &domain.TokenRecord{
		AccessToken:  "stale-token",
		RefreshToken: "refresh-1",
		ExpiresAt:    s.now.Add(10 * time.Second),
	}

	s.store.EXPECT().TokenRecord(ctx, "acct1").Return(stale, nil)
	s.provider.EXPECT().RefreshToken(ctx, "refresh-1").Return(&domain.TokenGrant{
		AccessToken: "new-token",
		ExpiresIn:   time.Hour,
	}, nil)
	s.store.EXPECT().SetTokenRecord(ctx, "acct1", gomock.Any()).Return(nil)
	s.provider.EXPECT().ListAlbumMedia(ctx, "new-token", "albumA").Return(nil, nil)

	feed, err := s.builder.BuildFeed(ctx, "acct1", []string{"albumA"})

	s.NoError(err)
	s.Empty(feed)
}

func (s *FeedBuilderTestSuite) TestBuildFeed_StoreError() {
	ctx := context.Background()

	s.store.EXPECT().TokenRecord(ctx, "acct1").Return(nil, errors.New("db closed"))

	_, err := s.builder.BuildFeed(ctx, "acct1", []string{"albumA"})

	s.Error(err)
	s.NotErrorIs(err, domain.ErrNotAuthenticated)
}
