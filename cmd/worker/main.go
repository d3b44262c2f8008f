package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	activityapp "github.com/muhammadheryan/bhrc-portal/application/activity"
	eventapp "github.com/muhammadheryan/bhrc-portal/application/event"
	notificationapp "github.com/muhammadheryan/bhrc-portal/application/notification"
	otpapp "github.com/muhammadheryan/bhrc-portal/application/otp"
	settingapp "github.com/muhammadheryan/bhrc-portal/application/setting"
	"github.com/muhammadheryan/bhrc-portal/cmd/config"
	redisclient "github.com/muhammadheryan/bhrc-portal/cmd/redis"
	activityRepo "github.com/muhammadheryan/bhrc-portal/repository/activity"
	eventRepo "github.com/muhammadheryan/bhrc-portal/repository/event"
	otpRepo "github.com/muhammadheryan/bhrc-portal/repository/otp"
	redisRepo "github.com/muhammadheryan/bhrc-portal/repository/redis"
	settingRepo "github.com/muhammadheryan/bhrc-portal/repository/setting"
	txRepo "github.com/muhammadheryan/bhrc-portal/repository/tx"
	"github.com/muhammadheryan/bhrc-portal/thirdparty/mailer"
	"github.com/muhammadheryan/bhrc-portal/thirdparty/rabbitmq"
	"github.com/muhammadheryan/bhrc-portal/utils/logger"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const jobTimeout = 2 * time.Minute

// The worker drains the email queue and runs housekeeping on a schedule.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, "worker"); err != nil {
		panic(err)
	}
	defer logger.Close()

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	rdb, err := redisclient.New(cfg.Redis)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer rdb.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sender := mailer.NewSMTPSender(cfg.Mail)
	if cfg.RabbitMQ.Enabled() {
		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, sender)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer consumer.Close()
		if err := consumer.Start(ctx); err != nil {
			logger.Fatal("err start consumer", zap.Error(err))
		}
		logger.Info("Email consumer started")
	} else {
		logger.Warn("RABBITMQ_HOST not set, email consumer disabled")
	}

	ActivityApp := activityapp.NewActivityApp(activityRepo.NewActivityRepository(db))
	SettingApp := settingapp.NewSettingApp(settingRepo.NewSettingRepository(db), txRepo.NewTxRepository(db), redisRepo.NewRepository(rdb), ActivityApp)
	NotificationApp := notificationapp.NewNotificationApp(nil, sender)
	OTPApp := otpapp.NewOTPApp(cfg, otpRepo.NewOTPRepository(db))
	EventApp := eventapp.NewEventApp(cfg, txRepo.NewTxRepository(db), eventRepo.NewEventRepository(db), SettingApp, NotificationApp, ActivityApp)

	c := cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err = c.AddFunc(cfg.Worker.CleanupSchedule, func() {
		jctx, cancel := context.WithTimeout(ctx, jobTimeout)
		defer cancel()

		if n, err := OTPApp.PurgeExpired(jctx, cfg.Worker.OTPRetention); err == nil {
			logger.Info("[Worker] purged expired codes", zap.Int64("rows", n))
		}
		if n, err := EventApp.CompletePastEvents(jctx); err == nil {
			logger.Info("[Worker] completed past events", zap.Int64("rows", n))
		}
	})
	if err != nil {
		logger.Fatal("err add cron job", zap.String("schedule", cfg.Worker.CleanupSchedule), zap.Error(err))
	}
	c.Start()
	logger.Info("Worker running", zap.String("schedule", cfg.Worker.CleanupSchedule))

	<-ctx.Done()
	logger.Info("Shutting down worker")
	<-c.Stop().Done()
}
