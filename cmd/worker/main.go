package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/diconnect/diconnect/internal/card"
	"github.com/diconnect/diconnect/internal/config"
	"github.com/diconnect/diconnect/internal/directory"
	"github.com/diconnect/diconnect/internal/matching"
	"github.com/diconnect/diconnect/internal/messenger"
	"github.com/diconnect/diconnect/internal/notify"
	"github.com/diconnect/diconnect/internal/queue"
	"github.com/diconnect/diconnect/internal/repository"
)

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	db, err := repository.NewPostgresDB(cfg.Database.DSN())
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redisClient, err := queue.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to redis")
	}
	defer func() { _ = redisClient.Close() }()

	groupRepo := repository.NewGroupRepository(db)
	pairUpRepo := repository.NewPairUpRepository(db)
	conversationRepo := repository.NewConversationRepository(db)

	directoryClient := directory.NewHTTPClient(cfg.Directory.BaseURL, cfg.Directory.Token)
	publisher := queue.NewRedisPublisher(redisClient, cfg.Matching.QueueName)
	consumer := queue.NewRedisConsumer(redisClient, cfg.Matching.QueueName, log)

	memberSync := matching.NewMemberSync(directoryClient, pairUpRepo, log)
	activeFetcher := matching.NewActiveFetcher(pairUpRepo, directoryClient, log)
	matchSender := matching.NewMatchSender(publisher, cfg.Matching.BatchSize, log)
	runner := matching.NewRunner(groupRepo, memberSync, activeFetcher, matchSender, log)

	scheduler, err := matching.NewScheduler(runner, cfg.Matching.WeeklyCron, cfg.Matching.MonthlyCron, log)
	if err != nil {
		log.WithError(err).Fatal("failed to create matching scheduler")
	}

	cardRenderer := card.NewRenderer(cfg.Matching.CardTemplatePath)
	botClient := messenger.NewBotClient(cfg.Messenger.BaseURL, cfg.Messenger.Token, log)
	notifyWorker := notify.NewWorker(conversationRepo, cardRenderer, botClient, log)

	scheduler.Start()
	log.Info("matching scheduler started")

	go func() {
		log.Infof("notification consumer starting on queue %s", cfg.Matching.QueueName)
		if err := consumer.Consume(ctx, notifyWorker.Handle); err != nil && ctx.Err() == nil {
			log.WithError(err).Error("notification consumer stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancel()
	scheduler.Stop()
	log.Info("worker exited")
}
