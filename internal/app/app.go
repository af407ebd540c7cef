package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stpnv0/VillaBooker/internal/catalog"
	"github.com/stpnv0/VillaBooker/internal/config"
	"github.com/stpnv0/VillaBooker/internal/events"
	"github.com/stpnv0/VillaBooker/internal/handler"
	"github.com/stpnv0/VillaBooker/internal/identity"
	"github.com/stpnv0/VillaBooker/internal/metrics"
	"github.com/stpnv0/VillaBooker/internal/middleware"
	"github.com/stpnv0/VillaBooker/internal/notification"
	"github.com/stpnv0/VillaBooker/internal/payment/portone"
	"github.com/stpnv0/VillaBooker/internal/ratelimit"
	"github.com/stpnv0/VillaBooker/internal/repository"
	"github.com/stpnv0/VillaBooker/internal/repository/memory"
	"github.com/stpnv0/VillaBooker/internal/router"
	"github.com/stpnv0/VillaBooker/internal/scheduler"
	"github.com/stpnv0/VillaBooker/internal/service"
	"github.com/stpnv0/VillaBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
	wbfredis "github.com/wb-go/wbf/redis"
)

const (
	migrationsDir    = "migrations"
	metricsNamespace = "villa"
	lookupKeyPrefix  = "villa:lookup"
)

type publisher interface {
	ports.EventPublisher
	io.Closer
}

type App struct {
	cfg        *config.Config
	log        logger.Logger
	metrics    *metrics.Metrics
	db         *dbpg.DB
	redis      *wbfredis.Client
	publisher  publisher
	httpServer *http.Server
	scheduler  *scheduler.Scheduler

	bookingRepo ports.BookingRepo
	paymentRepo ports.PaymentRepo
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"VillaBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log
	app.metrics = metrics.NewMetrics(metricsNamespace, prometheus.DefaultRegisterer)

	if err = app.initLedger(); err != nil {
		return nil, fmt.Errorf("init ledger: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initLedger() error {
	switch a.cfg.Booking.LedgerDriver {
	case config.LedgerMemory:
		db := memory.New()
		a.bookingRepo = db
		a.paymentRepo = db.Payments()
		a.log.Warn("using in-memory ledger, bookings are lost on restart")
		return nil
	case config.LedgerPostgres:
		if err := a.runMigrations(); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		if err := a.initDB(); err != nil {
			return fmt.Errorf("init db: %w", err)
		}
		a.bookingRepo = repository.NewBookingRepo(a.db)
		a.paymentRepo = repository.NewPaymentRepo(a.db)
		return nil
	default:
		return fmt.Errorf("unknown ledger driver %q", a.cfg.Booking.LedgerDriver)
	}
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initPublisher() error {
	if !a.cfg.Kafka.Enabled() {
		a.publisher = events.NopPublisher{}
		a.log.Info("kafka brokers not configured, booking events are not published")
		return nil
	}

	p, err := events.NewKafkaPublisher(a.cfg.Kafka.Brokers, a.cfg.Kafka.Topic, a.log)
	if err != nil {
		return err
	}
	a.publisher = p
	return nil
}

// lookupLimiter throttles the lookup endpoint per client IP. Without Redis the
// endpoint is left unthrottled.
func (a *App) lookupLimiter() ginext.HandlerFunc {
	if a.cfg.Redis.Addr == "" {
		a.log.Warn("redis not configured, lookup rate limiting disabled")
		return func(c *ginext.Context) { c.Next() }
	}

	a.redis = wbfredis.New(a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)
	if err := a.redis.Ping(context.Background()); err != nil {
		a.log.Warn("redis ping failed, limiter will fail open until it recovers",
			logger.String("addr", a.cfg.Redis.Addr),
			logger.String("error", err.Error()),
		)
	}

	l := ratelimit.NewLimiter(a.redis.Client, lookupKeyPrefix, a.cfg.Redis.LookupLimit, a.cfg.Redis.LookupWindow)
	return middleware.RateLimit(l, a.metrics, a.log)
}

func (a *App) initServices() error {
	hasher, err := identity.NewHasher(a.cfg.Booking.ContactPepper)
	if err != nil {
		return fmt.Errorf("init hasher: %w", err)
	}

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.AdminChatID, a.metrics, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	if err = a.initPublisher(); err != nil {
		return fmt.Errorf("init publisher: %w", err)
	}

	if a.cfg.PortOne.APISecret == "" {
		a.log.Warn("portone api secret is empty, payment verification will be rejected by the provider")
	}
	provider := portone.NewClient(a.cfg.PortOne.BaseURL, a.cfg.PortOne.APISecret, a.cfg.Booking.ProviderTimeout)

	rooms := catalog.Default()

	bookingService := service.NewBookingService(
		a.bookingRepo, rooms, hasher, n, a.publisher, a.metrics, a.cfg.Booking.HoldTTL, a.log,
	)
	paymentService := service.NewPaymentService(
		a.bookingRepo, a.paymentRepo, provider, n, a.publisher, a.metrics, a.cfg.Booking.ProviderTimeout, a.log,
	)
	lookupService := service.NewLookupService(a.bookingRepo, a.paymentRepo, rooms, hasher, a.log)

	a.scheduler = scheduler.New(
		bookingService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(bookingService, paymentService, lookupService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		nil,
		a.lookupLimiter(),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("ledger", a.cfg.Booking.LedgerDriver),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.publisher.Close(); err != nil {
		a.log.Warn("close publisher", logger.String("error", err.Error()))
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("close redis", logger.String("error", err.Error()))
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
