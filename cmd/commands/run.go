package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"petstar"
	"petstar/config"
	"petstar/internal/application/usecase"
	"petstar/internal/infrastructure/broker"
	"petstar/internal/infrastructure/database"
	"petstar/internal/infrastructure/duration"
	"petstar/internal/infrastructure/minio"
	"petstar/internal/presentation"
	"petstar/internal/presentation/handler"
	"petstar/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running petstar", "version", petstar.StringVersion(), "environment", cfg.Environment)

	brokerClient, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer brokerClient.Close()

	brokerPublisher := broker.NewPublisher(brokerClient, cfg.PublisherConfig)

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer func() {
		if err := db.Stop(); err != nil {
			logger.Error("failed to disconnect database", "err", err)
		}
	}()

	minIOClient, err := minio.New(cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}
	if cfg.MinIOStorage.CreateBucket {
		if err := minIOClient.EnsureBucket(context.Background(), cfg.MinIOStorage); err != nil {
			ExitOnError(err)
		}
	}
	minIOUploader := minio.NewUploader(minIOClient.MinioClient, cfg.MinIOStorage)
	minIORemover := minio.NewRemover(minIOClient.MinioClient, cfg.MinIOStorage)

	coordinator := usecase.NewMediaCoordinator(minIOUploader, minIORemover)

	handlers := handler.Handlers{
		Postings: handler.NewPostingHandler(
			usecase.NewPostingService(database.NewPostingStore(db), coordinator, brokerPublisher)),
		Videos: handler.NewVideoHandler(
			usecase.NewVideoService(database.NewVideoStore(db), coordinator, duration.NewMP4Prober(),
				brokerPublisher)),
		Pets: handler.NewPetHandler(
			usecase.NewPetService(database.NewPetStore(db), coordinator, brokerPublisher)),
		Users: handler.NewUserHandler(
			usecase.NewUserService(database.NewUserStore(db), brokerPublisher)),
	}

	e := newServer(cfg.HTTP)
	handler.Register(e.Group("/api"), handlers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.HTTP.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down petstar")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout(cfg.HTTP))
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		ExitOnError(err)
	}
}

func newServer(cfg config.HTTPConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = presentation.NewValidator()
	e.HTTPErrorHandler = presentation.HTTPErrorHandler

	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{
			echo.HeaderContentType, echo.HeaderContentLength,
			presentation.RequesterHeader,
		},
		AllowMethods: []string{
			http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		ExposeHeaders: []string{presentation.ReasonTag},
		MaxAge:        86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	if cfg.BodyLimit != "" {
		e.Use(echoMiddleware.BodyLimit(cfg.BodyLimit))
	}
	if cfg.RateLimit > 0 {
		e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit))))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

func shutdownTimeout(cfg config.HTTPConfig) time.Duration {
	if cfg.ShutdownTimeout <= 0 {
		return 10 * time.Second
	}

	return time.Duration(cfg.ShutdownTimeout) * time.Millisecond
}
