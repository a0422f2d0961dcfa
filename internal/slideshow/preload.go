package slideshow

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"photoframe/internal/domain"
)

// HTTPPreloader warms photos by fetching and discarding their bodies,
// priming whatever cache sits between the frame and the provider.
type HTTPPreloader struct {
	client *http.Client
	logger *slog.Logger
}

func NewHTTPPreloader(timeout time.Duration, logger *slog.Logger) *HTTPPreloader {
	return &HTTPPreloader{
		client: &http.Client{Timeout: timeout},
		logger: logger.With("component", "preloader"),
	}
}

func (p *HTTPPreloader) Preload(ctx context.Context, url string) func() {
	ctx, cancel := context.WithCancel(ctx)

	go func() {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			p.logger.Warn("create preload request", "error", err)
			return
		}

		resp, err := p.client.Do(req)
		if err != nil {
			if !domain.IsCancelled(err) {
				p.logger.Debug("preload failed", "url", url, "error", err)
			}
			return
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)
	}()

	return cancel
}
