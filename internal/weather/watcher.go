package weather

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Watcher keeps the latest conditions for a fixed city warm, refreshing
// them on an interval.
type Watcher struct {
	client   *Client
	city     string
	interval time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	current *Conditions
}

func NewWatcher(client *Client, city string, interval time.Duration, logger *slog.Logger) *Watcher {
	return &Watcher{
		client:   client,
		city:     city,
		interval: interval,
		logger:   logger.With("component", "weather-watcher"),
	}
}

// Current returns the last fetched conditions, or nil before the first
// successful refresh.
func (w *Watcher) Current() *Conditions {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Start refreshes immediately, then on every interval, until ctx is
// cancelled. Failures keep the previous conditions.
func (w *Watcher) Start(ctx context.Context) error {
	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *Watcher) refresh(ctx context.Context) {
	conditions, err := w.client.FetchByCity(ctx, w.city)
	if err != nil {
		w.logger.Warn("weather refresh failed", "city", w.city, "error", err)
		return
	}

	w.mu.Lock()
	w.current = conditions
	w.mu.Unlock()

	w.logger.Debug("weather refreshed",
		"city", conditions.City,
		"temperature", conditions.Temperature,
	)
}
