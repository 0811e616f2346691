package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/healthnet/admin-api/internal/config"
	"github.com/healthnet/admin-api/internal/email"
	appointmenthandler "github.com/healthnet/admin-api/internal/handler/appointment"
	authhandler "github.com/healthnet/admin-api/internal/handler/auth"
	facilityhandler "github.com/healthnet/admin-api/internal/handler/facility"
	feedbackhandler "github.com/healthnet/admin-api/internal/handler/feedback"
	medicalhandler "github.com/healthnet/admin-api/internal/handler/medical"
	reporthandler "github.com/healthnet/admin-api/internal/handler/report"
	supplyhandler "github.com/healthnet/admin-api/internal/handler/supply"
	"github.com/healthnet/admin-api/internal/repository/memory"
	"github.com/healthnet/admin-api/internal/router"
	appointmentsvc "github.com/healthnet/admin-api/internal/service/appointment"
	authsvc "github.com/healthnet/admin-api/internal/service/auth"
	"github.com/healthnet/admin-api/internal/service/event"
	facilitysvc "github.com/healthnet/admin-api/internal/service/facility"
	feedbacksvc "github.com/healthnet/admin-api/internal/service/feedback"
	medicalsvc "github.com/healthnet/admin-api/internal/service/medical"
	reportsvc "github.com/healthnet/admin-api/internal/service/report"
	supplysvc "github.com/healthnet/admin-api/internal/service/supply"
	"github.com/healthnet/admin-api/pkg/auth"
	"github.com/healthnet/admin-api/pkg/logger"
	"github.com/healthnet/admin-api/pkg/messaging"
	messagingredis "github.com/healthnet/admin-api/pkg/messaging/redis"
	"github.com/healthnet/admin-api/pkg/metrics"
	"github.com/healthnet/admin-api/pkg/security"
	"github.com/healthnet/admin-api/pkg/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(&logger.Config{Level: cfg.Log.Level, Console: cfg.Log.Console})

	if err := validator.Register(); err != nil {
		log.Fatal(err, "failed to register validation rules")
	}

	m := metrics.New("healthnet")

	var broker messaging.Broker = messaging.NewNoopBroker()
	if cfg.Redis.Enabled {
		broker, err = messagingredis.NewBroker(cfg.Redis.ToBrokerConfig(), log.Zerolog())
		if err != nil {
			log.Fatal(err, "failed to connect to redis broker")
		}
	}
	defer broker.Close()

	store := memory.NewStore(memory.WithMetrics(m))
	users := memory.NewUserRepository(store)
	facilities := memory.NewFacilityRepository(store)
	appointments := memory.NewAppointmentRepository(store)
	records := memory.NewMedicalRecordRepository(store)
	supplies := memory.NewSupplyRequestRepository(store)
	feedbacks := memory.NewFeedbackRepository(store)
	inventory := memory.NewInventoryRepository(store)
	tokens := memory.NewTokenRepository()

	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)
	hasher := security.NewBcryptHasher(0)
	events := event.NewService(broker, log, m)

	var emailSvc email.Service = email.NewLogService(log)
	if cfg.Email.Enabled {
		emailSvc = email.NewSMTPService(email.SMTPConfig{
			Host:     cfg.Email.Host,
			Port:     cfg.Email.Port,
			Username: cfg.Email.Username,
			Password: cfg.Email.Password,
			From:     cfg.Email.From,
		}, log)
	}

	authService := authsvc.NewService(users, facilities, tokens, jwtSvc, hasher, emailSvc, events, log, authsvc.Config{
		TokenExpiry:     cfg.JWT.Expiry,
		ResetCodeTTL:    cfg.Auth.ResetCodeTTL,
		ExposeResetCode: cfg.Auth.ExposeResetCode,
	})
	facilityService := facilitysvc.NewService(facilities, users, events)
	appointmentService := appointmentsvc.NewService(appointments, users, facilities, events)
	medicalService := medicalsvc.NewService(records, users, facilities, appointments)
	supplyService := supplysvc.NewService(supplies, inventory, facilities, events)
	feedbackService := feedbacksvc.NewService(feedbacks, users, facilities)
	reportService := reportsvc.NewService(facilities, users, appointments, supplies, feedbacks)

	authHandler := authhandler.NewHandler(authService)
	r := router.New(router.Config{
		Mode:             cfg.Server.Mode,
		LatencyEnabled:   cfg.Latency.Enabled,
		LatencyMin:       cfg.Latency.Min,
		LatencyMax:       cfg.Latency.Max,
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RequestsPerSec:   cfg.RateLimit.RequestsPerSecond,
		Burst:            cfg.RateLimit.Burst,
		AllowedOrigins:   cfg.Security.AllowedOrigins,
		AllowedMethods:   cfg.Security.AllowedMethods,
		AllowedHeaders:   cfg.Security.AllowedHeaders,
		MetricsEnabled:   cfg.Monitoring.PrometheusEnabled,
		MetricsPath:      cfg.Monitoring.MetricsPath,
	}, log, m, jwtSvc, tokens, users,
		[]router.PublicRegistrar{authHandler},
		[]router.ProtectedRegistrar{
			authHandler,
			facilityhandler.NewHandler(facilityService),
			appointmenthandler.NewHandler(appointmentService),
			medicalhandler.NewHandler(medicalService),
			supplyhandler.NewHandler(supplyService),
			feedbackhandler.NewHandler(feedbackService),
			reporthandler.NewHandler(reportService),
		})

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        r.Engine(),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		log.With("port", cfg.Server.Port).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error(err, "forced shutdown")
	}
	log.Info("server stopped")
}
