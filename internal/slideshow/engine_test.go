package slideshow

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"photoframe/internal/domain"
	"photoframe/internal/notify"
)

type fakePreloader struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func newFakePreloader() *fakePreloader {
	return &fakePreloader{active: make(map[string]struct{})}
}

func (f *fakePreloader) Preload(ctx context.Context, url string) func() {
	f.mu.Lock()
	f.active[url] = struct{}{}
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		delete(f.active, url)
		f.mu.Unlock()
	}
}

func (f *fakePreloader) Active() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	urls := make([]string, 0, len(f.active))
	for url := range f.active {
		urls = append(urls, url)
	}
	sort.Strings(urls)
	return urls
}

type EngineTestSuite struct {
	suite.Suite
	preloader *fakePreloader
	engine    *Engine
}

func (s *EngineTestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.preloader = newFakePreloader()
	s.engine = New(Options{
		Interval:     8 * time.Second,
		Effect:       EffectFade,
		PreloadCount: 2,
	}, s.preloader, nil, logger)
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func feedOf(n int) []domain.PhotoItem {
	photos := make([]domain.PhotoItem, n)
	for i := range photos {
		photos[i] = domain.PhotoItem{
			ID:  fmt.Sprintf("p-%d", i),
			URL: fmt.Sprintf("https://example.com/p-%d", i),
		}
	}
	return photos
}

func (s *EngineTestSuite) TestEmptyFeed() {
	current, ok := s.engine.Current()
	s.False(ok)
	s.Empty(current.ID)

	s.engine.Next()
	s.engine.Previous()
	s.Equal(0, s.engine.Index())
}

func (s *EngineTestSuite) TestNextWrapsAround() {
	s.engine.SetFeed(feedOf(4))

	for i := 0; i < 4; i++ {
		s.engine.Next()
	}

	s.Equal(0, s.engine.Index(), "a full lap lands back at the start")
}

func (s *EngineTestSuite) TestPreviousIsInverseOfNext() {
	s.engine.SetFeed(feedOf(5))

	s.engine.Next()
	s.engine.Next()
	s.engine.Previous()
	s.engine.Previous()

	s.Equal(0, s.engine.Index())

	s.engine.Previous()
	s.Equal(4, s.engine.Index(), "stepping back from the start wraps to the end")
}

func (s *EngineTestSuite) TestPlayPauseIdempotent() {
	s.True(s.engine.Playing(), "playback starts playing")

	s.engine.Pause()
	s.engine.Pause()
	s.False(s.engine.Playing())

	s.engine.Play()
	s.engine.Play()
	s.True(s.engine.Playing())
}

func (s *EngineTestSuite) TestSetFeedResetsIndex() {
	s.engine.SetFeed(feedOf(5))
	s.engine.Next()
	s.engine.Next()

	s.engine.SetFeed(feedOf(3))

	s.Equal(0, s.engine.Index())
}

func (s *EngineTestSuite) TestEffectChangeResetsIndex() {
	s.engine.SetFeed(feedOf(5))
	s.engine.Next()

	s.engine.SetOptions(Options{Interval: 8 * time.Second, Effect: EffectZoom, PreloadCount: 2})
	s.Equal(0, s.engine.Index())

	s.engine.Next()
	s.engine.SetOptions(Options{Interval: 10 * time.Second, Effect: EffectZoom, PreloadCount: 2})
	s.Equal(1, s.engine.Index(), "a pure interval change keeps the position")
}

func (s *EngineTestSuite) TestPreloadWindowFollowsIndex() {
	s.engine.SetFeed(feedOf(5))

	s.Equal([]string{
		"https://example.com/p-1",
		"https://example.com/p-2",
	}, s.preloader.Active())

	s.engine.Next()

	s.Equal([]string{
		"https://example.com/p-2",
		"https://example.com/p-3",
	}, s.preloader.Active(), "positions leaving the window are released")
}

func (s *EngineTestSuite) TestPreloadWindowShrinksInSafeMode() {
	s.engine.SetFeed(feedOf(5))

	s.engine.SetOptions(Options{
		Interval:     8 * time.Second,
		Effect:       EffectFade,
		PreloadCount: 2,
		SafeMode:     true,
	})

	s.Equal([]string{"https://example.com/p-1"}, s.preloader.Active())
	s.Equal(SafeModeMinInterval, s.engine.Options().Interval)
}

func (s *EngineTestSuite) TestPeek() {
	s.engine.SetFeed(feedOf(3))
	s.engine.Next()

	peeked, ok := s.engine.Peek()
	s.True(ok)
	s.Equal("p-2", peeked.ID)
}

func (s *EngineTestSuite) TestRunAdvancesAndStops() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	advanced := make(chan struct{}, 16)
	observer := notify.Func(func(ctx context.Context, event notify.Event) error {
		if event.Kind == notify.KindSlide {
			select {
			case advanced <- struct{}{}:
			default:
			}
		}
		return nil
	})

	engine := New(Options{Interval: 10 * time.Millisecond, Effect: EffectFade}, nil, observer, logger)
	engine.SetFeed(feedOf(3))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- engine.Run(ctx) }()

	select {
	case <-advanced:
	case <-time.After(5 * time.Second):
		s.Fail("no timed advance observed")
	}

	cancel()
	select {
	case err := <-done:
		s.ErrorIs(err, context.Canceled)
	case <-time.After(5 * time.Second):
		s.Fail("run loop did not stop")
	}
}
