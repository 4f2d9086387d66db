package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vidyonnati/foundation-backend/config"
	"github.com/vidyonnati/foundation-backend/database"
	"github.com/vidyonnati/foundation-backend/draftstore"
	"github.com/vidyonnati/foundation-backend/events"
	"github.com/vidyonnati/foundation-backend/handler"
	"github.com/vidyonnati/foundation-backend/models"
	"github.com/vidyonnati/foundation-backend/pkg/metrics"
	"github.com/vidyonnati/foundation-backend/repository"
	"github.com/vidyonnati/foundation-backend/router"
	"github.com/vidyonnati/foundation-backend/service"
	"github.com/vidyonnati/foundation-backend/storage"
)

func autoMigrate(db *gorm.DB, logger *logrus.Logger) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Application{},
		&models.Document{},
		&models.Donation{},
		&models.HelpLead{},
		&models.ApplicationInsight{},
		&models.DraftEntry{},
	)
	if err != nil {
		logger.Fatalf("auto migrate failed: %v", err)
	}
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	metrics.StartMetricsServer(cfg.Metrics.Port)
	logger.Infof("Prometheus metrics server started on :%s", cfg.Metrics.Port)

	db := database.InitDB(cfg)
	autoMigrate(db, logger)
	logger.Info("database connected")

	objectStore, err := storage.NewMinioStore(cfg.MinIO)
	if err != nil {
		logger.Fatalf("failed to init object storage: %v", err)
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Kafka.Brokers != "" {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		logger.Infof("kafka publisher connected to %s", cfg.Kafka.Brokers)
	}

	users := repository.NewUserRepository(db)
	apps := repository.NewApplicationRepository(db)
	docs := repository.NewDocumentRepository(db)
	donations := repository.NewDonationRepository(db)
	leads := repository.NewLeadRepository(db)
	insights := repository.NewInsightRepository(db)

	drafts := draftstore.New(draftstore.NewGormKV(db), logger)

	authService := service.NewAuthService(users, cfg.JWT)
	wizardService := service.NewWizardService(drafts, apps, logger)
	applicationService := service.NewApplicationService(apps, docs, objectStore, drafts, publisher, logger)
	donationService := service.NewDonationService(donations, publisher, logger)
	leadService := service.NewLeadService(leads, publisher, logger)
	insightService := service.NewInsightService(apps, insights, cfg.OpenAI, logger)

	r := router.Setup(router.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Wizard:       handler.NewWizardHandler(wizardService, authService),
		Applications: handler.NewApplicationHandler(applicationService, authService, logger),
		Admin:        handler.NewAdminHandler(applicationService, insightService),
		Donations:    handler.NewDonationHandler(donationService),
		Leads:        handler.NewLeadHandler(leadService),
	}, []byte(cfg.JWT.Secret))

	srv := &http.Server{Addr: ":" + cfg.HTTP.Port, Handler: r}
	go func() {
		logger.Infof("listening on :%s", cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}
	// Flush any buffered events before exit.
	if err := publisher.Close(); err != nil {
		logger.Errorf("event publisher close: %v", err)
	}
}
