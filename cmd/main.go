package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	activityapp "github.com/muhammadheryan/bhrc-portal/application/activity"
	analyticsapp "github.com/muhammadheryan/bhrc-portal/application/analytics"
	authapp "github.com/muhammadheryan/bhrc-portal/application/auth"
	certificateapp "github.com/muhammadheryan/bhrc-portal/application/certificate"
	complaintapp "github.com/muhammadheryan/bhrc-portal/application/complaint"
	contactapp "github.com/muhammadheryan/bhrc-portal/application/contact"
	contentapp "github.com/muhammadheryan/bhrc-portal/application/content"
	dashboardapp "github.com/muhammadheryan/bhrc-portal/application/dashboard"
	donationapp "github.com/muhammadheryan/bhrc-portal/application/donation"
	eventapp "github.com/muhammadheryan/bhrc-portal/application/event"
	fileapp "github.com/muhammadheryan/bhrc-portal/application/file"
	notificationapp "github.com/muhammadheryan/bhrc-portal/application/notification"
	otpapp "github.com/muhammadheryan/bhrc-portal/application/otp"
	settingapp "github.com/muhammadheryan/bhrc-portal/application/setting"
	userapp "github.com/muhammadheryan/bhrc-portal/application/user"
	"github.com/muhammadheryan/bhrc-portal/cmd/config"
	redisclient "github.com/muhammadheryan/bhrc-portal/cmd/redis"
	_ "github.com/muhammadheryan/bhrc-portal/docs"
	activityRepo "github.com/muhammadheryan/bhrc-portal/repository/activity"
	analyticsRepo "github.com/muhammadheryan/bhrc-portal/repository/analytics"
	certificateRepo "github.com/muhammadheryan/bhrc-portal/repository/certificate"
	complaintRepo "github.com/muhammadheryan/bhrc-portal/repository/complaint"
	contactRepo "github.com/muhammadheryan/bhrc-portal/repository/contact"
	donationRepo "github.com/muhammadheryan/bhrc-portal/repository/donation"
	eventRepo "github.com/muhammadheryan/bhrc-portal/repository/event"
	galleryRepo "github.com/muhammadheryan/bhrc-portal/repository/gallery"
	newsRepo "github.com/muhammadheryan/bhrc-portal/repository/news"
	otpRepo "github.com/muhammadheryan/bhrc-portal/repository/otp"
	redisRepo "github.com/muhammadheryan/bhrc-portal/repository/redis"
	sequenceRepo "github.com/muhammadheryan/bhrc-portal/repository/sequence"
	settingRepo "github.com/muhammadheryan/bhrc-portal/repository/setting"
	txRepo "github.com/muhammadheryan/bhrc-portal/repository/tx"
	userRepo "github.com/muhammadheryan/bhrc-portal/repository/user"
	"github.com/muhammadheryan/bhrc-portal/thirdparty/mailer"
	"github.com/muhammadheryan/bhrc-portal/thirdparty/rabbitmq"
	"github.com/muhammadheryan/bhrc-portal/transport"
	"github.com/muhammadheryan/bhrc-portal/utils/logger"
	"github.com/muhammadheryan/bhrc-portal/utils/upload"
	validatorx "github.com/muhammadheryan/bhrc-portal/utils/validator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// @title BHRC Portal API
// @version 1.0
// @description Membership, complaints, donations and events for the Bharatiya Human Rights Council
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, "api"); err != nil {
		panic(err)
	}
	defer logger.Close()

	validatorx.Init()
	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	rdb, err := redisclient.New(cfg.Redis)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer rdb.Close()

	// Email goes through the queue when a broker is configured, inline otherwise
	var publisher notificationapp.Publisher
	if cfg.RabbitMQ.Enabled() {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	} else {
		logger.Warn("RABBITMQ_HOST not set, emails are sent inline")
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository(rdb)
	OTPRepo := otpRepo.NewOTPRepository(db)
	SequenceRepo := sequenceRepo.NewSequenceRepository(db)
	ComplaintRepo := complaintRepo.NewComplaintRepository(db)
	DonationRepo := donationRepo.NewDonationRepository(db)
	EventRepo := eventRepo.NewEventRepository(db)
	CertificateRepo := certificateRepo.NewCertificateRepository(db)
	GalleryRepo := galleryRepo.NewGalleryRepository(db)
	NewsRepo := newsRepo.NewNewsRepository(db)
	SettingRepo := settingRepo.NewSettingRepository(db)
	ActivityRepo := activityRepo.NewActivityRepository(db)
	AnalyticsRepo := analyticsRepo.NewAnalyticsRepository(db)
	ContactRepo := contactRepo.NewContactRepository(db)

	// Initialize application layers
	ActivityApp := activityapp.NewActivityApp(ActivityRepo)
	NotificationApp := notificationapp.NewNotificationApp(publisher, mailer.NewSMTPSender(cfg.Mail))
	SettingApp := settingapp.NewSettingApp(SettingRepo, TxRepo, RedisRepo, ActivityApp)
	OTPApp := otpapp.NewOTPApp(cfg, OTPRepo)
	AuthApp := authapp.NewAuthApp(cfg, UserRepo, RedisRepo, OTPApp, SettingApp, NotificationApp, ActivityApp)
	UserApp := userapp.NewUserApp(UserRepo, ActivityApp)
	ComplaintApp := complaintapp.NewComplaintApp(cfg, TxRepo, SequenceRepo, ComplaintRepo, UserRepo, SettingApp, NotificationApp, ActivityApp)
	DonationApp := donationapp.NewDonationApp(cfg, DonationRepo, SettingApp, NotificationApp, ActivityApp)
	EventApp := eventapp.NewEventApp(cfg, TxRepo, EventRepo, SettingApp, NotificationApp, ActivityApp)
	CertificateApp := certificateapp.NewCertificateApp(cfg, CertificateRepo, UserRepo, SettingApp, NotificationApp, ActivityApp)
	ContentApp := contentapp.NewContentApp(GalleryRepo, NewsRepo, ActivityApp)
	AnalyticsApp := analyticsapp.NewAnalyticsApp(AnalyticsRepo)
	DashboardApp := dashboardapp.NewDashboardApp(AnalyticsRepo, ActivityApp)
	FileApp := fileapp.NewFileApp(upload.NewStore(cfg.Upload.Dir, cfg.Upload.BaseURL, cfg.Upload.MaxSize), ActivityApp)
	ContactApp := contactapp.NewContactApp(cfg, ContactRepo, RedisRepo, SettingApp, NotificationApp, ActivityApp)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	httpTransport := transport.NewTransport(&transport.RestHandler{
		AuthApp:        AuthApp,
		UserApp:        UserApp,
		ComplaintApp:   ComplaintApp,
		DonationApp:    DonationApp,
		EventApp:       EventApp,
		CertificateApp: CertificateApp,
		ContentApp:     ContentApp,
		SettingApp:     SettingApp,
		AnalyticsApp:   AnalyticsApp,
		DashboardApp:   DashboardApp,
		ActivityApp:    ActivityApp,
		FileApp:        FileApp,
		ContactApp:     ContactApp,
	}, transport.Options{
		UploadDir:      cfg.Upload.Dir,
		UploadURL:      cfg.Upload.BaseURL,
		MetricsKey:     cfg.Server.MetricsKey,
		TrustedProxies: transport.ParseTrustedProxies(cfg.Server.TrustedProxies),
		Registry:       registry,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
}
