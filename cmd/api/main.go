package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/iggarsaudev/reservas-padel/internal/handlers"
	"github.com/iggarsaudev/reservas-padel/internal/repository"
	"github.com/iggarsaudev/reservas-padel/internal/service"
	"github.com/iggarsaudev/reservas-padel/pkg/auth"
	"github.com/iggarsaudev/reservas-padel/pkg/config"
	"github.com/iggarsaudev/reservas-padel/pkg/db"
	"github.com/iggarsaudev/reservas-padel/pkg/logger"
	"github.com/iggarsaudev/reservas-padel/pkg/mq"
	"github.com/iggarsaudev/reservas-padel/pkg/obs"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	gdb, err := db.Open(cfg.PGDSN)
	if err != nil {
		zlog.Fatal("open db", zap.Error(err))
	}

	userRepo := repository.NewUserRepo(gdb)
	courtRepo := repository.NewCourtRepo(gdb)
	resRepo := repository.NewReservationRepo(gdb)
	for _, m := range []func() error{userRepo.Migrate, courtRepo.Migrate, resRepo.Migrate} {
		if err := m(); err != nil {
			zlog.Fatal("migrate", zap.Error(err))
		}
	}

	var events service.EventPublisher = mq.NopPublisher{}
	if cfg.RabbitURL != "" {
		pub, err := mq.NewPublisher(cfg.RabbitURL, cfg.EventExchange)
		if err != nil {
			zlog.Fatal("connect rabbitmq", zap.Error(err))
		}
		defer pub.Close()
		events = pub
	}

	if cfg.OTLPEndpoint != "" {
		shutdown, err := obs.InitTracer("reservas-padel", cfg.OTLPEndpoint, cfg.Env)
		if err != nil {
			zlog.Fatal("init tracer", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(ctx)
		}()
	}

	tokens := auth.NewManager(cfg.JWTSecret, time.Duration(cfg.JWTExpireHr)*time.Hour)

	authSvc := service.NewAuthSvc(userRepo, tokens)
	userSvc := service.NewUserSvc(userRepo)
	courtSvc := service.NewCourtSvc(courtRepo)
	resSvc := service.NewReservationSvc(resRepo, courtRepo, events, zlog)

	router := handlers.NewRouter(
		zlog,
		tokens,
		handlers.NewAuthHandler(authSvc, zlog),
		handlers.NewUserHandler(userSvc, zlog),
		handlers.NewCourtHandler(courtSvc, zlog),
		handlers.NewReservationHandler(resSvc, zlog),
	)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	go func() {
		zlog.Info("api listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("serve", zap.Error(err))
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("shutdown", zap.Error(err))
	}
	zlog.Info("stopped")
}
