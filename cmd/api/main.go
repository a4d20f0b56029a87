package main

import (
	"context"
	"crypto/rsa"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/backoff"

	_AuthHttpDelivery "github.com/semka95/devcamper/authn/delivery/http"
	_AuthUcase "github.com/semka95/devcamper/authn/usecase"
	"github.com/semka95/devcamper/average"
	_BootcampHttpDelivery "github.com/semka95/devcamper/bootcamp/delivery/http"
	_BootcampRepo "github.com/semka95/devcamper/bootcamp/repository"
	_BootcampUcase "github.com/semka95/devcamper/bootcamp/usecase"
	"github.com/semka95/devcamper/cmd"
	_CourseHttpDelivery "github.com/semka95/devcamper/course/delivery/http"
	_CourseRepo "github.com/semka95/devcamper/course/repository"
	_CourseUcase "github.com/semka95/devcamper/course/usecase"
	"github.com/semka95/devcamper/geocoder"
	"github.com/semka95/devcamper/mailer"
	"github.com/semka95/devcamper/metrics"
	_MyMiddleware "github.com/semka95/devcamper/middleware"
	_ReviewHttpDelivery "github.com/semka95/devcamper/review/delivery/http"
	_ReviewRepo "github.com/semka95/devcamper/review/repository"
	_ReviewUcase "github.com/semka95/devcamper/review/usecase"
	"github.com/semka95/devcamper/store"
	"github.com/semka95/devcamper/upload"
	_UserHttpDelivery "github.com/semka95/devcamper/user/delivery/http"
	_UserRepo "github.com/semka95/devcamper/user/repository"
	_UserUcase "github.com/semka95/devcamper/user/usecase"
	"github.com/semka95/devcamper/web"
	"github.com/semka95/devcamper/web/auth"
)

func main() {
	// Logging
	logger, err := zap.NewDevelopment(zap.AddCaller())
	if err != nil {
		log.Println("can't create logger: ", err)
		return
	}
	defer func() {
		// do not need to check for errors
		_ = logger.Sync()
	}()

	if err := run(logger); err != nil {
		logger.Error("shutting down, error: ", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	// Configuration
	configPath, ok := os.LookupEnv(cmd.EnvConfigPath)
	if !ok {
		return fmt.Errorf("%s environment variable is not specified", cmd.EnvConfigPath)
	}
	logger.Info("Config path", zap.String("path", configPath))
	cfg, err := cmd.AppConfig(configPath, logger)
	if err != nil {
		return err
	}

	// Initialize authentication support
	authenticator, err := createAuth(cfg.Auth.PrivateKeyFile, cfg.Auth.KeyID, cfg.Auth.Algorithm)
	if err != nil {
		return err
	}

	// Initialize context
	timeoutContext := cfg.ContextTimeout()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dialOption := grpc.WithConnectParams(grpc.ConnectParams{
		Backoff:           backoff.DefaultConfig,
		MinConnectTimeout: 5 * time.Second,
	})

	// Initialize tracing
	traceExporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(cfg.Server.OtlpAddress),
		otlptracegrpc.WithDialOption(dialOption),
	)
	if err != nil {
		return err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			// the service name used to display traces in backends
			semconv.ServiceName("devcamper-api"),
		),
	)
	if err != nil {
		return err
	}

	sampler := sdktrace.AlwaysSample()
	if cfg.Production() {
		sampler = sdktrace.ParentBased(sdktrace.TraceIDRatioBased(0.1))
	}
	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sampler),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp),
	)
	otel.SetTracerProvider(tp)
	tracer := otel.Tracer("devcamper-tracer")
	defer func() {
		if err = tp.Shutdown(ctx); err != nil {
			logger.Error("shutdown tracer provider", zap.Error(err))
		}
		if err = traceExporter.Shutdown(ctx); err != nil {
			logger.Error("shutdown tracing exporter", zap.Error(err))
		}
	}()

	// Initialize metrics
	metricExporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithInsecure(),
		otlpmetricgrpc.WithEndpoint(cfg.Server.OtlpAddress),
		otlpmetricgrpc.WithDialOption(dialOption),
	)
	if err != nil {
		return err
	}

	meterProvider := metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(metricExporter, metric.WithInterval(10*time.Second))),
		metric.WithResource(res),
	)
	otel.SetMeterProvider(meterProvider)

	defer func() {
		if err = meterProvider.Shutdown(ctx); err != nil {
			logger.Error("shutdown meter provider", zap.Error(err))
		}
	}()

	// Echo configure
	e := echo.New()
	e.HTTPErrorHandler = web.NewHTTPErrorHandler(logger)
	middL := _MyMiddleware.InitMiddleware(logger)
	e.Pre(middleware.Rewrite(map[string]string{
		"/api/*": "/$1",
	}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(middL.CORS)
	e.Use(middL.Logger)
	e.Use(middleware.RecoverWithConfig(middleware.DefaultRecoverConfig))
	e.Use(middleware.Secure())
	if cfg.Server.RateLimit > 0 {
		e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
			Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(cfg.Server.RateLimit),
				Burst:     cfg.Server.RateBurst,
				ExpiresIn: 10 * time.Minute,
			}),
		}))
	}
	e.Use(otelecho.Middleware("devcamper", otelecho.WithTracerProvider(tp)))
	e.Use(metrics.Middleware(metrics.WithMeterProvider(meterProvider)))
	e.Static("/uploads", cfg.Server.UploadDir)

	// Create database connection
	client, err := store.Open(ctx, cfg.MongoConfig, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err = client.Disconnect(ctx); err != nil {
			logger.Error("mongodb client disconnect error: ", zap.Error(err))
		}
	}()

	// Create geocoder with redis cache
	rdb := geocoder.NewRedisClient(cfg.Redis)
	defer func() {
		if err = rdb.Close(); err != nil {
			logger.Error("redis client close error: ", zap.Error(err))
		}
	}()
	geo := geocoder.NewCached(
		geocoder.NewGoogleGeocoder(cfg.Geocoder, &http.Client{Timeout: 10 * time.Second}, tracer),
		rdb, cfg.Redis.TTL(), logger,
	)

	photos, err := upload.NewDiskStore(cfg.Server.UploadDir, cfg.Server.MaxFileUpload, tracer)
	if err != nil {
		return err
	}

	// Initialize validator
	v, err := web.NewAppValidator()
	if err != nil {
		return err
	}
	e.Validator = v

	// Repositories
	br := _BootcampRepo.NewMongoBootcampRepository(client, cfg.MongoConfig.Name, logger, tracer)
	cr := _CourseRepo.NewMongoCourseRepository(client, cfg.MongoConfig.Name, logger, tracer)
	rr := _ReviewRepo.NewMongoReviewRepository(client, cfg.MongoConfig.Name, logger, tracer)
	usr := _UserRepo.NewMongoUserRepository(client, cfg.MongoConfig.Name, logger, tracer)
	authenticator.SetRoleLookup(_MyMiddleware.UserRoles(usr))
	maintainer := average.NewMaintainer(br, cr, rr, logger, tracer)

	// Create Bootcamp API
	bu := _BootcampUcase.NewBootcampUsecase(br, cr, rr, geo, photos, timeoutContext, tracer)
	_BootcampHttpDelivery.NewBootcampHandler(bu, authenticator, v, logger, tracer).RegisterRoutes(e)

	// Create Course API
	cu := _CourseUcase.NewCourseUsecase(cr, br, maintainer, timeoutContext, tracer)
	_CourseHttpDelivery.NewCourseHandler(cu, authenticator, v, logger, tracer).RegisterRoutes(e)

	// Create Review API
	ru := _ReviewUcase.NewReviewUsecase(rr, br, maintainer, timeoutContext, tracer)
	_ReviewHttpDelivery.NewReviewHandler(ru, authenticator, v, logger, tracer).RegisterRoutes(e)

	// Create User API
	usu := _UserUcase.NewUserUsecase(usr, timeoutContext, tracer)
	_UserHttpDelivery.NewUserHandler(usu, authenticator, v, logger, tracer).RegisterRoutes(e)

	// Create Auth API
	mail := mailer.NewSMTPMailer(cfg.SMTP, logger, tracer)
	au := _AuthUcase.NewAuthUsecase(usr, mail, cfg.TokenTTL(), timeoutContext, logger, tracer)
	cookie := _AuthHttpDelivery.CookieConfig{TTL: cfg.CookieTTL(), Secure: cfg.Production()}
	_AuthHttpDelivery.NewAuthHandler(au, authenticator, v, cookie, logger, tracer).RegisterRoutes(e)

	// Status check
	store.NewStatusHandler(e, client.Database(cfg.MongoConfig.Name), logger)

	go func() {
		if err := e.Start(cfg.Server.Address); err != nil && err != http.ErrServerClosed {
			logger.Error("can't start server: ", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancelSrv := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelSrv()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("can't shutdown server: %w", err)
	}

	return nil
}

func createAuth(privateKeyFile, keyID, algorithm string) (*auth.Authenticator, error) {
	keyContents, err := os.ReadFile(privateKeyFile)
	if err != nil {
		return nil, fmt.Errorf("can't read auth private key: %w", err)
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM(keyContents)
	if err != nil {
		return nil, fmt.Errorf("can't parse auth private key: %w", err)
	}

	public := auth.NewSimpleKeyLookupFunc(keyID, key.Public().(*rsa.PublicKey))

	return auth.NewAuthenticator(key, keyID, algorithm, public)
}
