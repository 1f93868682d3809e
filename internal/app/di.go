// Package app provides the dependency injection container that assembles the
// campus API. Components are created lazily on first access and cached.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/redis/go-redis/v9"

	authHTTP "github.com/allisson/campus/internal/auth/http"
	authService "github.com/allisson/campus/internal/auth/service"
	authUseCase "github.com/allisson/campus/internal/auth/usecase"
	"github.com/allisson/campus/internal/config"
	"github.com/allisson/campus/internal/database"
	"github.com/allisson/campus/internal/http"
	"github.com/allisson/campus/internal/metrics"
	notificationUseCase "github.com/allisson/campus/internal/notification/usecase"
	userUseCase "github.com/allisson/campus/internal/user/usecase"
)

// Supported values of config.DBDriver.
const (
	driverPostgres = "postgres"
	driverMySQL    = "mysql"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	redisClient     *redis.Client
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Managers
	txManager database.TxManager

	// Auth
	passwordService  authService.PasswordService
	tokenCodec       authService.TokenCodec
	revocationList   authService.RevocationList
	sessionResolver  *authHTTP.SessionResolver
	rateLimiter      *authHTTP.RateLimiter
	loginRateLimiter *authHTTP.RateLimiter
	guard            *authHTTP.Guard
	sessionUseCase   authUseCase.SessionUseCase
	sessionHandler   *authHTTP.SessionHandler

	// Shared repositories
	userRepo         userUseCase.UserRepository
	notificationRepo notificationUseCase.NotificationRepository

	// Campus modules
	people  people
	modules modules

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                   sync.Mutex
	loggerInit           sync.Once
	dbInit               sync.Once
	redisClientInit      sync.Once
	metricsProviderInit  sync.Once
	businessMetricsInit  sync.Once
	txManagerInit        sync.Once
	passwordServiceInit  sync.Once
	tokenCodecInit       sync.Once
	revocationListInit   sync.Once
	sessionResolverInit  sync.Once
	rateLimiterInit      sync.Once
	loginRateLimiterInit sync.Once
	guardInit            sync.Once
	sessionUseCaseInit   sync.Once
	sessionHandlerInit   sync.Once
	userRepoInit         sync.Once
	notificationRepoInit sync.Once
	httpServerInit       sync.Once
	metricsServerInit    sync.Once
	initErrors           map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	var err error
	c.dbInit.Do(func() {
		c.db, err = c.initDB()
		if err != nil {
			c.initErrors["db"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
// It requires a database connection to be initialized first.
func (c *Container) TxManager() (database.TxManager, error) {
	var err error
	c.txManagerInit.Do(func() {
		c.txManager, err = c.initTxManager()
		if err != nil {
			c.initErrors["txManager"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// RedisClient returns the Redis client backing the revocation list, or nil when
// REVOCATION_REDIS_URL is empty.
func (c *Container) RedisClient() (*redis.Client, error) {
	var err error
	c.redisClientInit.Do(func() {
		c.redisClient, err = c.initRedisClient()
		if err != nil {
			c.initErrors["redisClient"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["redisClient"]; exists {
		return nil, storedErr
	}
	return c.redisClient, nil
}

// MetricsProvider returns the OpenTelemetry provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. It is a no-op when
// metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// HTTPServer returns the HTTP server instance with every route mounted.
func (c *Container) HTTPServer() (*http.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.initErrors["metricsServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.rateLimiter != nil {
		c.rateLimiter.Stop()
	}
	if c.loginRateLimiter != nil {
		c.loginRateLimiter.Stop()
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("redis close: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	return errors.Join(shutdownErrors...)
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initTxManager creates the transaction manager using the database connection.
func (c *Container) initTxManager() (database.TxManager, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

// initRedisClient connects to Redis when a revocation URL is configured.
func (c *Container) initRedisClient() (*redis.Client, error) {
	if c.config.RevocationRedisURL == "" {
		return nil, nil
	}

	client, err := authService.OpenRedis(context.Background(), c.config.RevocationRedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// initMetricsProvider creates the Prometheus-backed meter provider.
func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

// initBusinessMetrics creates the business metrics recorder.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

// initHTTPServer creates the HTTP server and mounts every handler.
func (c *Container) initHTTPServer() (*http.Server, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	handlers, err := c.handlers()
	if err != nil {
		return nil, err
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, c.Logger())
	if provider != nil {
		server.SetupRouter(c.config, handlers, provider.MeterProvider())
	} else {
		server.SetupRouter(c.config, handlers, nil)
	}

	return server, nil
}

// initMetricsServer creates the metrics server when metrics are enabled.
func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}
	if provider == nil {
		return nil, nil
	}

	return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider), nil
}

// handlers collects every handler the HTTP server mounts.
func (c *Container) handlers() (http.Handlers, error) {
	var h http.Handlers
	var err error

	if h.Guard, err = c.Guard(); err != nil {
		return h, fmt.Errorf("failed to get guard for http server: %w", err)
	}
	h.LoginLimiter = c.LoginRateLimiter()
	if h.Session, err = c.SessionHandler(); err != nil {
		return h, fmt.Errorf("failed to get session handler for http server: %w", err)
	}
	if h.User, err = c.UserHandler(); err != nil {
		return h, fmt.Errorf("failed to get user handler for http server: %w", err)
	}
	if h.Event, err = c.EventHandler(); err != nil {
		return h, fmt.Errorf("failed to get event handler for http server: %w", err)
	}
	if h.Club, err = c.ClubHandler(); err != nil {
		return h, fmt.Errorf("failed to get club handler for http server: %w", err)
	}
	if h.Announcement, err = c.AnnouncementHandler(); err != nil {
		return h, fmt.Errorf("failed to get announcement handler for http server: %w", err)
	}
	if h.Resource, err = c.ResourceHandler(); err != nil {
		return h, fmt.Errorf("failed to get resource handler for http server: %w", err)
	}
	if h.LostItem, err = c.LostItemHandler(); err != nil {
		return h, fmt.Errorf("failed to get lost item handler for http server: %w", err)
	}
	if h.Feedback, err = c.FeedbackHandler(); err != nil {
		return h, fmt.Errorf("failed to get feedback handler for http server: %w", err)
	}
	if h.Notification, err = c.NotificationHandler(); err != nil {
		return h, fmt.Errorf("failed to get notification handler for http server: %w", err)
	}
	if h.Comment, err = c.CommentHandler(); err != nil {
		return h, fmt.Errorf("failed to get comment handler for http server: %w", err)
	}
	if h.Request, err = c.RequestHandler(); err != nil {
		return h, fmt.Errorf("failed to get request handler for http server: %w", err)
	}

	return h, nil
}

// unsupportedDriver reports a DB_DRIVER outside postgres and mysql.
func (c *Container) unsupportedDriver() error {
	return fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
}
