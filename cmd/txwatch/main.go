package main

import (
	"context"
	"log"

	"github.com/gabapcia/txwatch/internal/config"
	"github.com/gabapcia/txwatch/internal/confirmwatch"
	"github.com/gabapcia/txwatch/internal/handlers/cli"
	"github.com/gabapcia/txwatch/internal/infra/blockchain/mempool"
	"github.com/gabapcia/txwatch/internal/infra/notifier/telegram"
	"github.com/gabapcia/txwatch/internal/infra/storage/redis"
	"github.com/gabapcia/txwatch/internal/pkg/logger"
	"github.com/gabapcia/txwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/txwatch/internal/pkg/telemetry"
	httptransport "github.com/gabapcia/txwatch/internal/pkg/transport/http"
	"github.com/gabapcia/txwatch/internal/settings"
	"github.com/gabapcia/txwatch/internal/txregistry"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading configuration: %v", err)
	}

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			log.Fatalf("initializing telemetry: %v", err)
		}
		defer shutdown(ctx)
	}

	if err := logger.Init(logger.WithLevel(cfg.Log.Level)); err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	storage, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Fatal(ctx, "failed to connect to redis", "error", err)
	}
	defer storage.Close()

	blockchain := mempool.NewClient(
		httptransport.NewClient(),
		cfg.Mempool.APIBaseURL,
		cfg.Mempool.WebsocketURL,
		mempool.WithRequestsPerSecond(cfg.Mempool.RequestsPerSecond),
	)

	engineOpts := []confirmwatch.Option{
		confirmwatch.WithRetry(retry.New()),
		confirmwatch.WithPolicySource(storage),
		confirmwatch.WithNotificationDedup(storage),
	}
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		notifier := telegram.NewClient(httptransport.NewClient(), cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		engineOpts = append(engineOpts, confirmwatch.WithNotifier(notifier))
	}

	engine := confirmwatch.New(blockchain, storage, engineOpts...)

	var (
		registryService = txregistry.New(engine)
		settingsService = settings.New(storage)
	)

	if err := cli.Run(ctx, registryService, settingsService, engine); err != nil {
		logger.Fatal(ctx, "txwatch exited with error", "error", err)
	}
}
