package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/posecheck/internal/config"
	"github.com/2beens/posecheck/internal/db"
	"github.com/2beens/posecheck/internal/evaluation"
	"github.com/2beens/posecheck/internal/feedback"
	"github.com/2beens/posecheck/internal/middleware"
	"github.com/2beens/posecheck/internal/pose"
	"github.com/2beens/posecheck/internal/session"
	"github.com/2beens/posecheck/internal/telemetry/metrics"
	"github.com/2beens/posecheck/internal/telemetry/tracing"
	"github.com/2beens/posecheck/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	evaluationService *evaluation.Service
	dispatcher        *feedback.Dispatcher
	dispatcherCancel  context.CancelFunc

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	DBPassword              string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	refs, err := pose.LoadReferencesFile(cfg.ReferencesPath)
	if err != nil {
		return nil, fmt.Errorf("load references: %w", err)
	}
	log.Debugf("loaded reference data for %d poses", len(refs))

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("posecheck", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "posecheck", rdb)
	if err != nil {
		return nil, err
	}

	var speaker feedback.Speaker = feedback.LogSpeaker{}
	if cfg.SpeakerURL != "" {
		tracedHttpClient := &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   10 * time.Second,
		}
		speaker = feedback.NewHTTPSpeaker(cfg.SpeakerURL, tracedHttpClient)
		log.Debugf("feedback spoken via %s", cfg.SpeakerURL)
	}

	dispatcher := feedback.NewDispatcher(feedback.NewDispatcherParams{
		Speaker:        speaker,
		QueueSize:      cfg.FeedbackQueueSize,
		DedupWindow:    cfg.FeedbackDedupWindow.Duration,
		MetricsManager: metricsManager,
	})
	dispatcherCtx, dispatcherCancel := context.WithCancel(context.Background())
	go dispatcher.Run(dispatcherCtx)

	evaluationService := evaluation.NewService(evaluation.NewServiceParams{
		Scorer: pose.NewScorer(refs),
		Thresholds: pose.Thresholds{
			Similarity: cfg.SimilarityThreshold,
			Angle:      cfg.AngleThreshold,
		},
		Sessions: session.NewStore(session.NewStoreParams{
			RedisClient: rdb,
			TTL:         cfg.SessionTTL.Duration,
			CacheSize:   cfg.SessionCacheMB * 1024 * 1024,
			CacheTTL:    cfg.SessionCacheTTL.Duration,
		}),
		Cadence:        session.NewCadence(redis_rate.NewLimiter(rdb), cfg.CheckInterval.Duration),
		Notifier:       dispatcher,
		Repo:           evaluation.NewRepo(dbPool),
		MetricsManager: metricsManager,
	})

	return &Server{
		config:      cfg,
		dbPool:      dbPool,
		redisClient: rdb,
		versionInfo: params.VersionInfo,

		evaluationService: evaluationService,
		dispatcher:        dispatcher,
		dispatcherCancel:  dispatcherCancel,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("posecheck-router"))

	r.HandleFunc("/version", s.handleVersion).Methods("GET").Name("version")

	evaluationHandler := evaluation.NewHandler(s.evaluationService)
	evaluationHandler.SetupRoutes(r)

	// stateless scoring costs cpu on every call, limit it per client
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	scoreRateLimit := middleware.RateLimit(reqRateLimiter, s.metricsManager, "poses", s.config.ScoreRateLimitPerMin)
	for _, name := range []string{"score-pose", "pose-similarity", "pose-deviations"} {
		route := r.Get(name)
		route.Handler(scoreRateLimit(route.GetHandler()))
	}

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	version := s.versionInfo
	if version == "" {
		version = "unknown"
	}
	pkg.WriteTextResponseOK(w, version)
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{Registry: s.promRegistry},
	))
	metricsAddr := net.JoinHostPort(s.config.MetricsHost, strconv.Itoa(s.config.MetricsPort))
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking frames first, so no feedback is queued after the dispatcher is gone
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	log.Debugln("draining feedback queue ...")
	drained := make(chan struct{})
	go func() {
		s.dispatcher.Close()
		close(drained)
	}()
	select {
	case <-drained:
		log.Debugln("feedback queue drained")
	case <-ctx.Done():
		log.Warnln("feedback queue not drained in time")
	}
	s.dispatcherCancel()

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}
