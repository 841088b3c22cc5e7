package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/agendadesk/backend/api/handler"
	"github.com/agendadesk/backend/internal/config"
	"github.com/agendadesk/backend/internal/infrastructure/buffer"
	"github.com/agendadesk/backend/internal/infrastructure/monitor"
	pgInfra "github.com/agendadesk/backend/internal/infrastructure/postgres"
	redisInfra "github.com/agendadesk/backend/internal/infrastructure/redis"
	"github.com/agendadesk/backend/internal/middleware"
	"github.com/agendadesk/backend/internal/router"
	"github.com/agendadesk/backend/internal/services"
	"github.com/agendadesk/backend/internal/services/djagenda"
	"github.com/agendadesk/backend/internal/services/lifecycle"
	"github.com/agendadesk/backend/pkg/httpcontext"
	"github.com/agendadesk/backend/pkg/logger"
	boltRepo "github.com/agendadesk/backend/repository/bolt"
	"github.com/agendadesk/backend/repository/postgres"
	redisRepo "github.com/agendadesk/backend/repository/redis"
	agendaUC "github.com/agendadesk/backend/usecase/agenda"
	authUC "github.com/agendadesk/backend/usecase/auth"
	bookingUC "github.com/agendadesk/backend/usecase/booking"
	notesUC "github.com/agendadesk/backend/usecase/notes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	slotStore, err := boltRepo.Open(cfg.Agenda.StorePath, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to open agenda store", zap.Error(err))
	}
	manager.Register("agenda_store", func(ctx context.Context) error {
		return slotStore.Close()
	})

	bufferStore, err := buffer.Open(cfg.Buffer.Path, "note-buffer")
	if err != nil {
		zapLogger.Fatal("failed to open buffer store", zap.Error(err))
	}
	manager.Register("buffer", func(ctx context.Context) error {
		return bufferStore.Close()
	})

	mon := monitor.New(pool, redisClient, slotStore, bufferStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	bookingRepo := postgres.NewBookingRepository(pool)
	noteRepo := postgres.NewNoteRepository(pool)
	sessionRepo := redisRepo.NewSessionRepository(redisClient, cfg.Auth.SessionTTL)

	bufferProcessor := services.NewBufferProcessor(
		bufferStore,
		mon,
		noteRepo,
		zapLogger,
		services.ProcessorConfig{
			Interval:   cfg.Buffer.SyncInterval,
			BatchSize:  50,
			MaxRetries: cfg.Buffer.MaxRetry,
		},
	)
	bufferProcessor.Start()
	manager.Register("buffer_processor", func(ctx context.Context) error {
		bufferProcessor.Stop(ctx)
		return nil
	})

	bufferBridge := services.NewBufferBridge(bufferProcessor)

	agendaService := agendaUC.New(slotStore, zapLogger)
	notesUseCase := notesUC.New(noteRepo, bufferBridge, zapLogger)
	bookingUseCase := bookingUC.New(bookingRepo, zapLogger)
	authUseCase := authUC.New(
		sessionRepo,
		authUC.Credentials{
			Username:     cfg.Auth.AdminUser,
			PasswordHash: cfg.Auth.AdminPasswordHash,
		},
		cfg.JWT.Secret,
		cfg.JWT.Issuer,
		zapLogger,
	)

	djLoader := djagenda.New(bookingRepo, cfg.Context.RequestTimeout, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:    apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger, cfg.Auth.SessionTTL),
		Agenda:  apiHandler.NewAgendaHandler(agendaService, ctxAdapter, zapLogger),
		Notes:   apiHandler.NewNotesHandler(notesUseCase, ctxAdapter, zapLogger),
		DJ:      apiHandler.NewDJHandler(bookingUseCase, djLoader, ctxAdapter, zapLogger),
		Booking: apiHandler.NewBookingHandler(bookingUseCase, ctxAdapter, zapLogger),
		Health:  apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(cfg.JWT.Secret, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
