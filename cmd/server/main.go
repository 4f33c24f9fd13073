package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	financeapp "github.com/expensedesk/backend/internal/application/finance"
	procurementapp "github.com/expensedesk/backend/internal/application/procurement"
	vendorapp "github.com/expensedesk/backend/internal/application/vendors"
	"github.com/expensedesk/backend/internal/infrastructure/config"
	"github.com/expensedesk/backend/internal/infrastructure/logger"
	"github.com/expensedesk/backend/internal/infrastructure/persistence"
	"github.com/expensedesk/backend/internal/interfaces/http/handler"
	"github.com/expensedesk/backend/internal/interfaces/http/middleware"
	"github.com/expensedesk/backend/internal/interfaces/http/router"
	"github.com/expensedesk/backend/internal/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.NewFromSettings(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting expense backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize the snapshot backend
	snap, cleanup, err := newSnapshotter(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer cleanup()

	// Load the record store from the last snapshot
	st := store.NewStore(snap, log)
	if err := st.Load(context.Background()); err != nil {
		log.Fatal("Failed to load record store", zap.Error(err))
	}

	// Initialize application services
	vendorService := vendorapp.NewVendorService(st)
	vendorTypeService := vendorapp.NewVendorTypeService(st)
	requestService := procurementapp.NewRequestService(st)
	invoiceService := financeapp.NewInvoiceService(st)
	voucherService := financeapp.NewVoucherService(st)
	debitNoteService := financeapp.NewDebitNoteService(st)

	// Setup gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := handler.RegisterCustomValidators(); err != nil {
		log.Fatal("Failed to register validators", zap.Error(err))
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request id first so logging and error responses
	// can carry it
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Register API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewVendorHandler(vendorService))
	r.Register(handler.NewVendorTypeHandler(vendorTypeService))
	r.Register(handler.NewPurchaseRequestHandler(requestService))
	r.Register(handler.NewInvoiceHandler(invoiceService))
	r.Register(handler.NewPaymentVoucherHandler(voucherService))
	r.Register(handler.NewDebitNoteHandler(debitNoteService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// newSnapshotter builds the configured snapshot backend. The returned
// cleanup func closes any underlying connection.
func newSnapshotter(cfg *config.Config, log *zap.Logger) (store.Snapshotter, func(), error) {
	switch cfg.Storage.Backend {
	case "redis":
		snap, err := persistence.NewRedisSnapshotter(persistence.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Storage.Key)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Using redis snapshot backend",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)
		return snap, func() {
			if err := snap.Close(); err != nil {
				log.Error("Error closing redis connection", zap.Error(err))
			}
		}, nil
	default:
		snap, err := persistence.NewFileSnapshotter(cfg.Storage.Dir, cfg.Storage.Key)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Using file snapshot backend", zap.String("path", snap.Path()))
		return snap, func() {}, nil
	}
}
