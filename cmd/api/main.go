package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bradfitz/gomemcache/memcache"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/verimark/verimark/core"
	"github.com/verimark/verimark/x/provider"
	"github.com/verimark/verimark/x/scoring"
)

const verimarkBanner = `
                  _                      _
__   _____ _ __ (_)_ __ ___   __ _ _ __| | __
\ \ / / _ \ '__|| | '_ ` + "`" + ` _ \ / _` + "`" + ` | '__| |/ /
 \ V /  __/ |   | | | | | | | (_| | |  |   <
  \_/ \___|_|   |_|_| |_| |_|\__,_|_|  |_|\_\
`

type CustomHandler struct {
	slog.Handler
}

func (h *CustomHandler) Handle(ctx context.Context, r slog.Record) error {

	r.AddAttrs(slog.String("type", "app"))

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(slog.String("traceID", span.SpanContext().TraceID().String()))
		r.AddAttrs(slog.String("spanID", span.SpanContext().SpanID().String()))
	}

	return h.Handler.Handle(ctx, r)
}

var (
	version      = "unknown"
	buildMachine = "unknown"
	buildTime    = "unknown"
	goVersion    = "unknown"
)

// provideScoringEngine is the wire provider for the scoring service.
func provideScoringEngine() core.ScoringService {
	return scoring.NewEngine(nil)
}

func main() {

	fmt.Fprint(os.Stderr, verimarkBanner)

	handler := &CustomHandler{Handler: slog.NewJSONHandler(os.Stdout, nil)}
	slogger := slog.New(handler)
	slog.SetDefault(slogger)

	slog.Info(fmt.Sprintf("Verimark %s starting...", version))

	e := echo.New()
	e.HidePort = true
	e.HideBanner = true
	config := Config{}
	configPath := os.Getenv("VERIMARK_CONFIG")
	if configPath == "" {
		configPath = "/etc/verimark/config.yaml"
	}

	err := config.Load(configPath)
	if err != nil {
		slog.Error(fmt.Sprintf("Failed to load config: %v", err))
	}

	if config.Server.EnableTrace {
		cleanup, err := setupTraceProvider(config.Server.TraceEndpoint, "verimark/api", version)
		if err != nil {
			panic(err)
		}
		defer cleanup()

		skipper := otelecho.WithSkipper(
			func(c echo.Context) bool {
				return c.Path() == "/metrics" || c.Path() == "/health"
			},
		)
		e.Use(otelecho.Middleware("api", skipper))
	}

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace: "vmapi",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             300 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(config.Server.Dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		panic("failed to connect database")
	}
	sqlDB, err := db.DB() // for pinging
	if err != nil {
		panic("failed to connect database")
	}
	defer sqlDB.Close()

	err = db.Use(tracing.NewPlugin(
		tracing.WithDBName("postgres"),
	))
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	slog.Info("start migrate")
	db.AutoMigrate(
		&core.ContentRecord{},
		&core.UserAccount{},
		&core.SubmissionEntry{},
		&core.Provider{},
	)

	err = provider.Seed(db)
	if err != nil {
		slog.Error(fmt.Sprintf("failed to seed providers: %v", err))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Server.RedisAddr,
		Password: "",
		DB:       config.Server.RedisDB,
	})
	err = redisotel.InstrumentTracing(
		rdb,
		redisotel.WithAttributes(
			attribute.KeyValue{
				Key:   "db.name",
				Value: attribute.StringValue("redis"),
			},
		),
	)
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	mc := memcache.New(config.Server.MemcachedAddr)
	defer mc.Close()

	authService := SetupAuthService(config.Verimark)

	verifyHandler := SetupVerifyHandler(db, rdb, mc, config.Verimark)
	providerHandler := SetupProviderHandler(db)
	socketHandler := SetupSocketHandler(rdb)

	contentService := SetupContentService(db, rdb, mc, config.Verimark)
	ledgerService := SetupLedgerService(db)

	apiV1 := e.Group("/api/v1")

	// content + verification
	apiV1.POST("/content", verifyHandler.Submit, authService.VerifyCaptcha)
	apiV1.POST("/verify", verifyHandler.Verify)
	apiV1.POST("/nft", verifyHandler.AttachNft)
	apiV1.POST("/tx", verifyHandler.AttachTx)
	apiV1.GET("/user/:identity", verifyHandler.GetUser)

	// provider catalog
	apiV1.GET("/providers", providerHandler.List)
	apiV1.GET("/providers/:id", providerHandler.Get)

	// socket
	apiV1.GET("/socket", socketHandler.Connect)

	// misc
	apiV1.GET("/profile", func(c echo.Context) error {
		profile := config.Profile
		profile.Version = version
		profile.BuildInfo = BuildInfo{
			BuildTime:    buildTime,
			BuildMachine: buildMachine,
			GoVersion:    goVersion,
		}
		return c.JSON(http.StatusOK, profile)
	})

	e.GET("/health", func(c echo.Context) (err error) {
		ctx := c.Request().Context()

		err = sqlDB.Ping()
		if err != nil {
			return c.String(http.StatusInternalServerError, "db error")
		}

		err = rdb.Ping(ctx).Err()
		if err != nil {
			return c.String(http.StatusInternalServerError, "redis error")
		}

		return c.String(http.StatusOK, "ok")
	})

	var resourceCountMetrics = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "vm_resources_count",
			Help: "resources count",
		},
		[]string{"type"},
	)
	prometheus.MustRegister(resourceCountMetrics)

	var socketConnectionMetrics = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "vm_socket_connections",
			Help: "socket connections",
		},
	)
	prometheus.MustRegister(socketConnectionMetrics)

	go func() {
		for {
			time.Sleep(15 * time.Second)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

			count, err := contentService.Count(ctx)
			if err != nil {
				slog.Error(fmt.Sprintf("failed to count contents: %v", err))
				cancel()
				continue
			}
			resourceCountMetrics.WithLabelValues("content").Set(float64(count))

			count, err = ledgerService.CountAccounts(ctx)
			if err != nil {
				slog.Error(fmt.Sprintf("failed to count accounts: %v", err))
				cancel()
				continue
			}
			resourceCountMetrics.WithLabelValues("account").Set(float64(count))

			count, err = ledgerService.CountSubmissions(ctx)
			if err != nil {
				slog.Error(fmt.Sprintf("failed to count submissions: %v", err))
				cancel()
				continue
			}
			resourceCountMetrics.WithLabelValues("submission").Set(float64(count))

			socketConnectionMetrics.Set(float64(socketHandler.CurrentConnectionCount()))
			cancel()
		}
	}()

	e.GET("/metrics", echoprometheus.NewHandler())

	e.Logger.Fatal(e.Start(":8000"))
}

func setupTraceProvider(endpoint string, serviceName string, serviceVersion string) (func(), error) {

	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)

	if err != nil {
		return nil, err
	}

	resource := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(serviceVersion),
	)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource),
	)
	otel.SetTracerProvider(tracerProvider)

	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagator)

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := tracerProvider.Shutdown(ctx)
		if err != nil {
			slog.Error(fmt.Sprintf("failed to shutdown tracer provider: %v", err))
		}
	}
	return cleanup, nil
}
