package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	einotool "github.com/cloudwego/eino/components/tool"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	assistantx "github.com/tanpawarit/namaste-bites-agent/agent/agents/assistant"
	contractx "github.com/tanpawarit/namaste-bites-agent/agent/contract"
	llmx "github.com/tanpawarit/namaste-bites-agent/agent/llm"
	notifyx "github.com/tanpawarit/namaste-bites-agent/agent/notify"
	storex "github.com/tanpawarit/namaste-bites-agent/agent/store"
	toolx "github.com/tanpawarit/namaste-bites-agent/agent/tool"
	apix "github.com/tanpawarit/namaste-bites-agent/api"
	configx "github.com/tanpawarit/namaste-bites-agent/pkg/config"
	_ "github.com/tanpawarit/namaste-bites-agent/pkg/logger/autoload"
	observex "github.com/tanpawarit/namaste-bites-agent/pkg/observe"
	openrouterx "github.com/tanpawarit/namaste-bites-agent/pkg/openrouter"
	qstashx "github.com/tanpawarit/namaste-bites-agent/pkg/qstash"
)

const (
	recordsDriverFile     = "file"
	recordsDriverPostgres = "postgres"

	shutdownTimeout = 10 * time.Second
)

type AppConfig struct {
	Host           string `envconfig:"HOST" default:"0.0.0.0"`
	Port           int    `envconfig:"PORT" default:"8000"`
	DataDir        string `envconfig:"DATA_DIR" split_words:"true" default:"data"`
	RecordsDriver  string `envconfig:"RECORDS_DRIVER" split_words:"true" default:"file"`
	DatabaseDSN    string `envconfig:"DATABASE_DSN" split_words:"true"`
	AgentMaxStep   int    `envconfig:"AGENT_MAX_STEP" split_words:"true" default:"25"`
	VerifyModel    bool   `envconfig:"VERIFY_MODEL" split_words:"true" default:"false"`
	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" split_words:"true" default:"true"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("CAFE")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *appCfg); err != nil {
		log.Fatal().Err(err).Msg("cafe agent stopped")
	}
}

func run(ctx context.Context, appCfg AppConfig) error {
	layout := storex.NewLayout(appCfg.DataDir)
	catalog := storex.NewCatalog(layout)
	if err := catalog.Bootstrap(); err != nil {
		return fmt.Errorf("bootstrap catalog: %w", err)
	}

	records, closeRecords, err := newRecordStore(ctx, appCfg, layout)
	if err != nil {
		return err
	}
	defer closeRecords()

	qstashCfg := configx.MustNew[qstashx.Config]("QSTASH")
	notifier, err := notifyx.FromConfig(*qstashCfg)
	if err != nil {
		return fmt.Errorf("kitchen notifier: %w", err)
	}

	var (
		metrics  *observex.Metrics
		provider *observex.Provider
	)
	if appCfg.MetricsEnabled {
		provider, err = observex.InitProvider()
		if err != nil {
			return fmt.Errorf("metrics provider: %w", err)
		}
		defer func() { _ = provider.Shutdown(context.Background()) }()

		metrics, err = observex.NewMetrics(provider.MeterProvider())
		if err != nil {
			return fmt.Errorf("metrics instruments: %w", err)
		}
	}

	kit, err := toolx.NewToolkit(catalog, records, toolx.WithNotifier(notifier))
	if err != nil {
		return fmt.Errorf("toolkit: %w", err)
	}

	llmCfg := configx.MustNew[llmx.Config]("OPENROUTER")
	chat := newAssistant(ctx, appCfg, *llmCfg, toolx.BuildForAgent(kit, metrics), metrics)

	opts := []apix.Option{apix.WithMetrics(metrics)}
	if provider != nil {
		opts = append(opts, apix.WithMetricsHandler(provider.Handler()))
	}
	srv := &http.Server{
		Addr:              net.JoinHostPort(appCfg.Host, strconv.Itoa(appCfg.Port)),
		Handler:           apix.New(chat, opts...).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info().Msg("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// newAssistant returns nil when the model cannot be used, which puts the
// chat endpoint into offline mode instead of stopping the process.
func newAssistant(
	ctx context.Context,
	appCfg AppConfig,
	llmCfg llmx.Config,
	tools []einotool.BaseTool,
	metrics *observex.Metrics,
) contractx.Assistant {
	if err := llmCfg.Validate(); err != nil {
		log.Warn().Err(err).Msg("model unavailable, chat will answer offline")
		return nil
	}

	if appCfg.VerifyModel {
		if err := openrouterx.Verify(ctx, llmCfg.OpenRouter()); err != nil {
			log.Warn().Err(err).Msg("model credential rejected, chat will answer offline")
			return nil
		}
	}

	a, err := assistantx.New(ctx, llmCfg, tools, assistantx.Options{
		MaxStep: appCfg.AgentMaxStep,
		Metrics: metrics,
	})
	if err != nil {
		log.Warn().Err(err).Msg("assistant init failed, chat will answer offline")
		return nil
	}

	log.Info().Str("model", llmCfg.Model).Int("max_step", appCfg.AgentMaxStep).Msg("assistant ready")
	return a
}

func newRecordStore(ctx context.Context, appCfg AppConfig, layout storex.Layout) (contractx.RecordStore, func(), error) {
	switch appCfg.RecordsDriver {
	case recordsDriverFile, "":
		return storex.NewFileRecordStore(layout), func() {}, nil
	case recordsDriverPostgres:
		db, err := storex.OpenPostgres(storex.PostgresConfig{DSN: appCfg.DatabaseDSN})
		if err != nil {
			return nil, nil, err
		}
		store, err := storex.NewPostgresRecordStore(db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, nil, err
		}
		log.Info().Msg("records stored in postgres")
		return store, func() { _ = store.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown records driver %q", contractx.ErrValidation, appCfg.RecordsDriver)
	}
}
