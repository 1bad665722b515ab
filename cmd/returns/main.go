package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/attachment"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/cache"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/config"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/kafka"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/logger"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/notify"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/repository/postgresql"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/returns"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/server"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/storage"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("returns service stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	database, err := db.NewDb(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close()

	if cfg.Database.Migrate {
		if err := db.Migrate(ctx, database, migrations.FS, log); err != nil {
			return err
		}
	}

	returnRepo := postgresql.NewReturnRepo(database)
	itemRepo := postgresql.NewReturnItemRepo(database)
	historyRepo := postgresql.NewHistoryRepo(database)
	orderRepo := postgresql.NewOrderRepo(database)
	paymentRepo := postgresql.NewPaymentRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo(database)

	store := storage.NewReturnStorage(database, returnRepo, itemRepo, historyRepo)

	opts := returns.Options{
		ReturnPeriodDays:       cfg.Returns.ReturnPeriodDays,
		SendNotifications:      cfg.Returns.SendNotifications,
		RequirePhotos:          cfg.Returns.RequirePhotos,
		ReturnReasons:          cfg.Returns.ReturnReasons,
		CompletedOrderStatuses: cfg.Returns.CompletedOrderStatuses,
		MaxImageSize:           cfg.Returns.MaxImageSize,
	}
	if len(opts.CompletedOrderStatuses) == 0 {
		opts.CompletedOrderStatuses = returns.DefaultOptions().CompletedOrderStatuses
	}
	orders := cache.NewOrderCache(storage.NewOrderGateway(orderRepo, paymentRepo), opts.CompletedOrderStatuses, log)

	service := returns.NewService(
		store,
		orders,
		notify.NewOutboxNotifier(outboxRepo, cfg.Kafka.NotificationTopic, log),
		notify.NewOutboxEvents(outboxRepo, cfg.Kafka.EventTopic),
		nil,
		opts,
		log,
	)

	files, err := newAttachmentStorage(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	uploader := attachment.NewUploader(files, service.Validator(), log)

	var producer kafka.Producer = kafka.NewConsoleProducer(log)
	if cfg.Kafka.Enabled {
		producer = kafka.NewWriterProducer(cfg.Kafka.Brokers, log)
	}
	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: cfg.Outbox.PollInterval,
		BatchSize:    cfg.Outbox.BatchSize,
		MaxAttempts:  cfg.Outbox.MaxAttempts,
		Lease:        cfg.Outbox.Lease,
	}, log)

	auditManager := server.NewAuditManager(
		cfg.HTTP.AuditWorkers,
		cfg.HTTP.AuditBatchSize,
		cfg.HTTP.AuditTimeout,
		notify.NewOutboxAudit(outboxRepo, cfg.Kafka.AuditTopic),
		log,
	)
	serverCfg := server.Config{
		Port:         cfg.HTTP.Port,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		MaxImageSize: opts.MaxImageSize,
	}
	if cfg.Storage.Driver != "s3" {
		serverCfg.UploadDir = cfg.Storage.LocalPath
		serverCfg.UploadPath = cfg.Storage.PublicURL
	}
	srv := server.New(service, uploader, auditManager, serverCfg, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})
	g.Go(func() error {
		return publisher.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer shutdownCancel()

		err := srv.Shutdown(shutdownCtx)
		publisher.Shutdown(shutdownCtx)
		return err
	})

	return g.Wait()
}

func newAttachmentStorage(ctx context.Context, cfg config.Storage) (attachment.Storage, error) {
	if cfg.Driver == "s3" {
		return attachment.NewS3(ctx, attachment.S3Config{
			Region:    cfg.Region,
			Bucket:    cfg.Bucket,
			Prefix:    cfg.Prefix,
			PublicURL: cfg.PublicURL,
		})
	}
	return attachment.NewLocal(cfg.LocalPath, cfg.PublicURL)
}
