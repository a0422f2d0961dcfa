package slideshow

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"photoframe/internal/domain"
	"photoframe/internal/notify"
)

// Preloader warms upcoming photos so transitions have no visible fetch
// latency. The returned cancel releases the preload when the position
// leaves the lookahead window.
type Preloader interface {
	Preload(ctx context.Context, url string) (cancel func())
}

// Engine drives timed slideshow playback over a photo feed: current
// index, play state, circular advance, and a bounded lookahead
// preloader.
type Engine struct {
	preloader Preloader
	notifier  notify.Notifier
	logger    *slog.Logger

	mu       sync.Mutex
	ctx      context.Context
	photos   []domain.PhotoItem
	index    int
	playing  bool
	opts     Options
	eff      Options
	preloads map[int]func()

	restart chan struct{}
}

// New creates an engine. preloader and notifier may be nil. Playback
// starts in the playing state.
func New(opts Options, preloader Preloader, notifier notify.Notifier, logger *slog.Logger) *Engine {
	return &Engine{
		preloader: preloader,
		notifier:  notifier,
		logger:    logger.With("component", "slideshow"),
		ctx:       context.Background(),
		playing:   true,
		opts:      opts,
		eff:       opts.Effective(),
		preloads:  make(map[int]func()),
		restart:   make(chan struct{}, 1),
	}
}

// SetFeed replaces the photo feed and resets the index to the start.
func (e *Engine) SetFeed(photos []domain.PhotoItem) {
	e.mu.Lock()
	e.photos = photos
	e.index = 0
	e.schedulePreloadsLocked()
	e.mu.Unlock()

	e.requestRestart()
	e.logger.Info("feed set", "photos", len(photos))
}

// SetOptions replaces the playback options. A transition-effect change
// resets the index, like a feed change does.
func (e *Engine) SetOptions(opts Options) {
	e.mu.Lock()
	if opts.Effect != e.opts.Effect {
		e.index = 0
	}
	e.opts = opts
	e.eff = opts.Effective()
	e.schedulePreloadsLocked()
	e.mu.Unlock()

	e.requestRestart()
}

// Options returns the effective options with the safe-mode policy
// applied.
func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.eff
}

// Run owns the timed-advance loop until ctx is cancelled.
func (e *Engine) Run(ctx context.Context) error {
	e.mu.Lock()
	e.ctx = ctx
	e.schedulePreloadsLocked()
	interval := e.eff.Interval
	e.mu.Unlock()

	e.logger.Info("slideshow started", "interval", interval, "effect", e.eff.Effect)

	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			e.cancelPreloads()
			e.logger.Info("slideshow stopped")
			return ctx.Err()
		case <-e.restart:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(e.intervalNow())
		case <-timer.C:
			e.tick(ctx)
			timer.Reset(e.intervalNow())
		}
	}
}

// Play resumes playback. Idempotent: playing twice spawns no second
// timer. Resuming restarts the advance from a full interval.
func (e *Engine) Play() {
	e.mu.Lock()
	if e.playing {
		e.mu.Unlock()
		return
	}
	e.playing = true
	e.mu.Unlock()

	e.requestRestart()
}

// Pause halts the timed advance. Idempotent.
func (e *Engine) Pause() {
	e.mu.Lock()
	e.playing = false
	e.mu.Unlock()
}

// Next steps forward circularly regardless of play state. It does not
// reset the autoplay timer; the next timed advance stays on schedule.
func (e *Engine) Next() {
	e.step(1)
}

// Previous steps backward circularly regardless of play state. Like
// Next, it leaves the autoplay timer untouched.
func (e *Engine) Previous() {
	e.step(-1)
}

func (e *Engine) step(delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.photos) == 0 {
		return
	}
	e.index = (e.index + delta + len(e.photos)) % len(e.photos)
	e.schedulePreloadsLocked()
}

// Current returns the photo at the current index.
func (e *Engine) Current() (domain.PhotoItem, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.photos) == 0 {
		return domain.PhotoItem{}, false
	}
	return e.photos[e.index], true
}

// Peek returns the photo the next advance will land on.
func (e *Engine) Peek() (domain.PhotoItem, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.photos) == 0 {
		return domain.PhotoItem{}, false
	}
	return e.photos[(e.index+1)%len(e.photos)], true
}

func (e *Engine) Index() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.index
}

func (e *Engine) Playing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playing
}

func (e *Engine) tick(ctx context.Context) {
	e.mu.Lock()
	if !e.playing || len(e.photos) == 0 {
		e.mu.Unlock()
		return
	}
	e.index = (e.index + 1) % len(e.photos)
	index := e.index
	e.schedulePreloadsLocked()
	e.mu.Unlock()

	if e.notifier != nil {
		event := notify.NewEvent(notify.KindSlide, "slideshow", map[string]string{
			"index": strconv.Itoa(index),
		})
		if err := e.notifier.Notify(ctx, event); err != nil {
			e.logger.Warn("notify failed", "error", err)
		}
	}
}

func (e *Engine) intervalNow() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.eff.Interval
}

func (e *Engine) requestRestart() {
	select {
	case e.restart <- struct{}{}:
	default:
	}
}

// schedulePreloadsLocked reconciles the preload set with the lookahead
// window after the current index: positions leaving the window are
// cancelled, new ones are started. Caller holds e.mu.
func (e *Engine) schedulePreloadsLocked() {
	if e.preloader == nil {
		return
	}
	if len(e.photos) == 0 {
		for pos, cancel := range e.preloads {
			cancel()
			delete(e.preloads, pos)
		}
		return
	}

	want := make(map[int]struct{}, e.eff.PreloadCount)
	for i := 1; i <= e.eff.PreloadCount; i++ {
		want[(e.index+i)%len(e.photos)] = struct{}{}
	}

	for pos, cancel := range e.preloads {
		if _, ok := want[pos]; !ok {
			cancel()
			delete(e.preloads, pos)
		}
	}
	for pos := range want {
		if _, ok := e.preloads[pos]; !ok {
			e.preloads[pos] = e.preloader.Preload(e.ctx, e.photos[pos].URL)
		}
	}
}

func (e *Engine) cancelPreloads() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for pos, cancel := range e.preloads {
		cancel()
		delete(e.preloads, pos)
	}
}
