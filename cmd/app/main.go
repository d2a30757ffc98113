package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/tripmate/api"
	"github.com/Domenick1991/tripmate/config"
	"github.com/Domenick1991/tripmate/internal/bootstrap"
	"github.com/Domenick1991/tripmate/internal/kafka"
	"github.com/Domenick1991/tripmate/internal/logging"
	"github.com/Domenick1991/tripmate/internal/service/booking"
	"github.com/Domenick1991/tripmate/internal/service/catalog"
	"github.com/Domenick1991/tripmate/internal/service/payment"
	"github.com/Domenick1991/tripmate/internal/service/review"
	"github.com/Domenick1991/tripmate/internal/service/search"
	"github.com/Domenick1991/tripmate/internal/service/state"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	log := logging.New(cfg.Log)
	if log.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kv, closeStorage, err := bootstrap.OpenStorage(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("open storage")
	}
	defer closeStorage()
	log.WithField("backend", cfg.Storage.Backend).Info("storage ready")

	var (
		stateOpts  []state.Option
		reviewOpts = []review.Option{review.WithAutoVerify(cfg.Reviews.Verify())}
	)
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		publisher := kafka.NewEventPublisher(producer, cfg.Kafka.EventsTopic, cfg.Kafka.NotificationsTopic)
		stateOpts = append(stateOpts, state.WithPublisher(publisher))
		reviewOpts = append(reviewOpts, review.WithPublisher(publisher))
		log.WithField("topic", cfg.Kafka.EventsTopic).Info("event publishing enabled")
	}

	store := state.New(kv, log, stateOpts...)
	store.Hydrate(ctx)

	cat := catalog.Generate(cfg.Catalog.Seed, catalog.Counts{
		Drivers: cfg.Catalog.Drivers,
		Buddies: cfg.Catalog.Buddies,
		Hotels:  cfg.Catalog.Hotels,
	})
	log.WithFields(logrus.Fields{
		"seed":    cfg.Catalog.Seed,
		"drivers": len(cat.Drivers()),
		"buddies": len(cat.Buddies()),
		"hotels":  len(cat.Hotels()),
	}).Info("catalog generated")

	reviews := review.NewReviewService(kv, cat, log, reviewOpts...)
	reviews.Hydrate(ctx)

	checkout := booking.NewBookingService(store, cat, payment.NewSimulator(cfg.Payment.Latency()), log)

	router := api.NewRouter(api.Services{
		Store:    store,
		Checkout: checkout,
		Search:   search.NewSearchService(cat, search.WithDefaultLimit(cfg.Catalog.DefaultLimit)),
		Reviews:  reviews,
	}, api.RouterConfig{AllowedOrigins: cfg.HTTP.AllowedOrigins}, log)

	if err := bootstrap.Run(ctx, cfg.HTTP.Address, router, log); err != nil {
		log.WithError(err).Fatal("server error")
	}
}
