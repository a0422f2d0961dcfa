package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"photoframe/internal/config"
	"photoframe/internal/credstore"
	"photoframe/internal/notify"
	"photoframe/internal/provider/googlephotos"
	"photoframe/internal/scheduler"
	"photoframe/internal/service"
	"photoframe/internal/slideshow"
	"photoframe/internal/storage/sqlite"
	"photoframe/internal/weather"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	effect, err := slideshow.ParseEffect(cfg.Slideshow.Effect)
	if err != nil {
		logger.Error("invalid slideshow config", "error", err)
		os.Exit(1)
	}

	kv, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Error("failed to open credential store", "error", err)
		os.Exit(1)
	}
	defer kv.Close()
	logger.Info("credential store opened", "path", cfg.Database.Path)

	creds := credstore.New(kv)

	provider := googlephotos.New(googlephotos.Config{
		ClientID:         cfg.Provider.ClientID,
		ClientSecret:     cfg.Provider.ClientSecret,
		Scope:            cfg.Provider.Scope,
		DeviceEndpoint:   cfg.Provider.DeviceEndpoint,
		TokenEndpoint:    cfg.Provider.TokenEndpoint,
		IdentityEndpoint: cfg.Provider.IdentityEndpoint,
		PhotosBaseURL:    cfg.Provider.PhotosBaseURL,
		AlbumPageSize:    cfg.Provider.AlbumPageSize,
		MediaPageSize:    cfg.Provider.MediaPageSize,
		Timeout:          cfg.Provider.Timeout,
	}, logger)

	// The feed bridge pushes freshly synced photos into the engine; an
	// optional AMQP notifier fans the same events out to remote shells.
	var engine *slideshow.Engine
	var session *service.CloudSession
	notifiers := notify.Multi{
		notify.Func(func(ctx context.Context, event notify.Event) error {
			if event.Kind == notify.KindFeedSynced && session != nil && engine != nil {
				engine.SetFeed(session.Snapshot().Photos)
			}
			return nil
		}),
	}
	if cfg.Events.Enabled {
		amqpNotifier, err := notify.NewAMQP(notify.AMQPConfig{
			URL:        cfg.Events.URL,
			Exchange:   cfg.Events.Exchange,
			RoutingKey: cfg.Events.RoutingKey,
			QueueName:  cfg.Events.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer amqpNotifier.Close()
		notifiers = append(notifiers, amqpNotifier)
	}

	preloader := slideshow.NewHTTPPreloader(cfg.Provider.Timeout, logger)
	engine = slideshow.New(slideshow.Options{
		Interval:     time.Duration(cfg.Slideshow.IntervalSeconds) * time.Second,
		Effect:       effect,
		PreloadCount: cfg.Slideshow.PreloadCount,
		SafeMode:     cfg.Slideshow.SafeMode,
	}, preloader, notifiers, logger)

	tokens := service.NewTokenManager(provider, creds, logger)
	feed := service.NewFeedBuilder(provider, creds, tokens, logger)
	session = service.NewCloudSession(provider, creds, tokens, feed, notifiers, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	switch cfg.Source {
	case "local":
		if err := runLocal(ctx, cfg, engine, logger); err != nil {
			logger.Error("local source failed", "error", err)
			os.Exit(1)
		}
	default:
		if err := runCloud(ctx, cfg, session, engine, logger); err != nil {
			logger.Error("cloud source failed", "error", err)
			os.Exit(1)
		}
		sched := scheduler.NewScheduler(session, cfg.Sync.Interval, cfg.Sync.Timeout, logger)
		go func() {
			if err := sched.Start(ctx); err != nil && err != context.Canceled {
				logger.Error("scheduler error", "error", err)
			}
		}()
	}

	if cfg.Weather.Enabled && cfg.Weather.City != "" {
		client := weather.New(weather.Config{
			APIKey:  cfg.Weather.APIKey,
			Units:   cfg.Weather.Units,
			Timeout: cfg.Provider.Timeout,
		}, logger)
		watcher := weather.NewWatcher(client, cfg.Weather.City,
			time.Duration(cfg.Weather.RefreshMinutes)*time.Minute, logger)
		go func() {
			if err := watcher.Start(ctx); err != nil && err != context.Canceled {
				logger.Error("weather watcher error", "error", err)
			}
		}()
	}

	logger.Info("starting slideshow",
		"source", cfg.Source,
		"interval_seconds", cfg.Slideshow.IntervalSeconds,
		"effect", cfg.Slideshow.Effect,
		"safe_mode", cfg.Slideshow.SafeMode,
	)

	if err := engine.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("slideshow error", "error", err)
		os.Exit(1)
	}
}

func runLocal(ctx context.Context, cfg *config.Config, engine *slideshow.Engine, logger *slog.Logger) error {
	local := service.NewLocalSession(
		service.StaticFolderPicker(cfg.Local.Folder),
		service.FileURLIssuer{},
		logger,
	)

	result, err := local.SelectFolder(ctx, cfg.Local.Recursive)
	if err != nil {
		return err
	}
	if result.Error != "" {
		logger.Warn("folder selection", "message", result.Error)
	}

	engine.SetFeed(result.Photos)
	return nil
}

func runCloud(ctx context.Context, cfg *config.Config, session *service.CloudSession, engine *slideshow.Engine, logger *slog.Logger) error {
	if err := session.Restore(ctx); err != nil {
		return err
	}

	state := session.Snapshot()
	if state.Account == nil {
		if err := session.StartDeviceAuth(ctx); err != nil {
			return err
		}

		state = session.Snapshot()
		logger.Info("link your account",
			"verification_url", state.DeviceCode.VerificationURL,
			"user_code", state.DeviceCode.UserCode,
		)

		if err := session.BeginPolling(ctx); err != nil {
			return err
		}
		state = session.Snapshot()
	}

	// An appliance with no explicit selection shows everything.
	if len(state.SelectedAlbumIDs) == 0 && len(state.Albums) > 0 {
		albumIDs := make([]string, 0, len(state.Albums))
		for _, album := range state.Albums {
			albumIDs = append(albumIDs, album.ID)
		}
		logger.Info("no album selection stored, selecting all albums", "albums", len(albumIDs))
		if err := session.SelectAlbums(ctx, albumIDs); err != nil {
			logger.Warn("initial album sync failed", "error", err)
		}
	}

	engine.SetFeed(session.Snapshot().Photos)
	return nil
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
