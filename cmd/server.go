package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"chainsentry/internal/config"
	"chainsentry/internal/core"
	"chainsentry/internal/db"
	"chainsentry/internal/detect"
	"chainsentry/internal/ethereum"
	"chainsentry/internal/http/handler"
	"chainsentry/internal/http/handler/middleware"
	"chainsentry/internal/http/payload"
	"chainsentry/internal/http/server"
	"chainsentry/internal/metrics"
	"chainsentry/internal/publish"
	"chainsentry/internal/repository"
	"chainsentry/internal/risk"
	"chainsentry/internal/sanctions"
	"chainsentry/pkg/jwt"
	"chainsentry/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "chainsentry"

func Start() error {
	logger := log.NewZapLogger(serviceName, zapcore.InfoLevel)

	cfg, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}
	logger = log.NewZapLogger(serviceName, log.ParseLevel(cfg.LogLevel))
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	// detectors
	known, err := config.LoadKnownAddresses(cfg.KnownAddressesPath)
	if err != nil {
		logger.Errorw("failed to load known addresses", "error", err, "path", cfg.KnownAddressesPath)
		return err
	}

	classifier, err := detect.NewClassifier(known)
	if err != nil {
		logger.Errorw("failed to compile known addresses", "error", err)
		return err
	}

	matchers := []detect.Matcher{
		detect.NewSandwichMatcher(classifier),
		detect.NewLiquidationMatcher(classifier),
		detect.NewWhaleMatcher(classifier),
	}

	// sanctions
	denylist := sanctions.NewDenylist(known.Sanctioned)
	screener := sanctions.NewScreener(
		logger,
		newSanctionsCache(ctx, logger, cfg),
		denylist,
		m,
		sanctions.Config{
			ProviderTimeout: cfg.ProviderTimeout,
			CacheTTL:        cfg.CacheTTL,
		},
		sanctionsProviders(cfg)...)

	// risk
	var model *risk.Ensemble
	if cfg.RiskModelPath != "" {
		model, err = risk.LoadEnsemble(cfg.RiskModelPath)
		if err != nil {
			logger.Warnw("failed to load risk model, scoring runs degraded",
				"error", err,
				"path", cfg.RiskModelPath)
			model = nil
		}
	}
	scorer := risk.NewScorer(logger, model)

	// adapters
	opts := []core.Option{core.WithMetrics(m)}

	if cfg.NodeURL != "" {
		client, err := ethclient.DialContext(ctx, cfg.NodeURL)
		if err != nil {
			logger.Errorw("ethereum node connection failed", "error", err)
			return err
		}
		defer client.Close()
		opts = append(opts, core.WithBlockSource(ethereum.NewNodeService(logger, client)))
	}

	if cfg.DBConnectionURL != "" {
		dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
		if err != nil {
			logger.Errorw("failed to connect to database", "error", err)
			return err
		}
		defer func() { _ = dbConn.Close() }()

		repo := repository.NewSignalRepository(dbConn)
		if err := repo.Migrate(); err != nil {
			logger.Errorw("failed to migrate tables to database", "error", err)
			return err
		}
		opts = append(opts, core.WithSignalStore(repo), core.WithSinks(repo))
	}

	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := publish.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			logger.Errorw("failed to create kafka publisher", "error", err)
			return err
		}
		defer func() { _ = publisher.Close() }()
		opts = append(opts, core.WithSinks(publisher))
	}

	analyzer := core.NewAnalyzer(
		logger,
		matchers,
		classifier,
		denylist,
		screener,
		risk.NewFeatureExtractor(nil),
		scorer,
		opts...)

	if err := analyzer.Reload(known); err != nil {
		logger.Errorw("failed to apply known addresses", "error", err)
		return err
	}

	if cfg.KnownAddressesPath != "" {
		watcher := config.NewWatcher(logger, cfg.KnownAddressesPath, cfg.ConfigReloadInterval, analyzer.Reload)
		go watcher.Run(ctx)
	}

	// handler
	analysisHdlr := handler.NewAnalysisHandler(
		logger,
		payload.Decoder{},
		analyzer)

	api := http.NewServeMux()
	analysisHdlr.Register(api)

	var apiHdlr http.Handler = api
	if cfg.JWTSecret != "" {
		apiHdlr = middleware.NewAuthMiddleware(logger, jwt.NewJWTService([]byte(cfg.JWTSecret))).Authenticate(api)
	} else {
		logger.Warnw("JWT_SECRET not set, API is unauthenticated")
	}

	// register routes
	mux := http.NewServeMux()
	mux.Handle("/v1/", apiHdlr)
	mux.Handle(handler.Health, api)
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	// middleware
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(srv)
}

func newSanctionsCache(ctx context.Context, logger *zap.SugaredLogger, cfg config.App) sanctions.Cache {
	// entries outlive the TTL so Status can still report them as stale
	retention := 2 * cfg.CacheTTL

	if cfg.RedisAddr == "" {
		return sanctions.NewMemoryCache(cfg.CacheSize, retention)
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warnw("redis not reachable yet, sanctions cache lookups will miss",
			"error", err,
			"addr", cfg.RedisAddr)
	}
	return sanctions.NewRedisCache(logger, client, retention)
}

func sanctionsProviders(cfg config.App) []sanctions.Provider {
	client := &http.Client{Timeout: cfg.ProviderTimeout}

	var providers []sanctions.Provider
	if cfg.ChainalysisAPIKey != "" {
		providers = append(providers, sanctions.NewChainalysisProvider(client, sanctions.ChainalysisBaseURL, cfg.ChainalysisAPIKey))
	}
	if cfg.TRMAPIKey != "" {
		providers = append(providers, sanctions.NewTRMProvider(client, sanctions.TRMBaseURL, cfg.TRMAPIKey))
	}
	return providers
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	if err == nil && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
