package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	AppName     string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Auth        AuthConfig
	OTP         OTPConfig
	Upload      UploadConfig
	Mail        MailConfig
	Worker      WorkerConfig
	Contact     ContactConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// MetricsKey guards /metrics; empty leaves it open.
	MetricsKey string
	// TrustedProxies lists proxy IPs/CIDRs whose X-Forwarded-For is honoured.
	TrustedProxies []string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

// Enabled reports whether a broker is configured; without one emails are sent inline.
func (r RabbitMQConfig) Enabled() bool {
	return r.Host != ""
}

type AuthConfig struct {
	JWTSecret      string
	JWTExpiration  time.Duration
	RefreshExpTime time.Duration
}

type OTPConfig struct {
	Length           int
	EmailTTL         time.Duration
	LoginTTL         time.Duration
	MaxAttempts      int
	ResendCooldown   time.Duration
	ResetTokenTTL    time.Duration
	FrontendResetURL string
}

type UploadConfig struct {
	Dir     string
	BaseURL string
	MaxSize int64
}

type MailConfig struct {
	SMTPHost   string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	FromEmail  string
	FromName   string
	AdminEmail string
}

type WorkerConfig struct {
	CleanupSchedule string
	OTPRetention    time.Duration
}

type ContactConfig struct {
	RateLimit  int
	RateWindow time.Duration
}

// Load reads .env when present, then environment variables with defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		AppName:     getEnv("APP_NAME", "Bharatiya Human Rights Council"),
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			ReadTimeout:    getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:    getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			MetricsKey:     getEnv("METRICS_API_KEY", ""),
			TrustedProxies: strings.Split(getEnv("TRUSTED_PROXIES", ""), ","),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "127.0.0.1"),
			Port:            getInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "bhrc"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "127.0.0.1"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", ""),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", "change-me"),
			JWTExpiration:  getDuration("JWT_EXPIRATION", 24*time.Hour),
			RefreshExpTime: getDuration("JWT_REFRESH_EXPIRATION", 7*24*time.Hour),
		},
		OTP: OTPConfig{
			Length:           getInt("OTP_LENGTH", 6),
			EmailTTL:         getDuration("OTP_EMAIL_TTL", 10*time.Minute),
			LoginTTL:         getDuration("OTP_LOGIN_TTL", 5*time.Minute),
			MaxAttempts:      getInt("OTP_MAX_ATTEMPTS", 3),
			ResendCooldown:   getDuration("OTP_RESEND_COOLDOWN", 60*time.Second),
			ResetTokenTTL:    getDuration("RESET_TOKEN_TTL", time.Hour),
			FrontendResetURL: getEnv("FRONTEND_RESET_URL", "http://localhost:3000/reset-password"),
		},
		Upload: UploadConfig{
			Dir:     getEnv("UPLOAD_DIR", "./uploads"),
			BaseURL: getEnv("UPLOAD_BASE_URL", "/uploads"),
			MaxSize: int64(getInt("UPLOAD_MAX_SIZE", 5<<20)),
		},
		Mail: MailConfig{
			SMTPHost:   getEnv("SMTP_HOST", ""),
			SMTPPort:   getInt("SMTP_PORT", 587),
			SMTPUser:   getEnv("SMTP_USER", ""),
			SMTPPass:   getEnv("SMTP_PASS", ""),
			FromEmail:  getEnv("MAIL_FROM", "noreply@bhrc.org"),
			FromName:   getEnv("MAIL_FROM_NAME", "BHRC"),
			AdminEmail: getEnv("ADMIN_EMAIL", "admin@bhrc.org"),
		},
		Worker: WorkerConfig{
			CleanupSchedule: getEnv("WORKER_CLEANUP_SCHEDULE", "@every 1h"),
			OTPRetention:    getDuration("OTP_RETENTION", 24*time.Hour),
		},
		Contact: ContactConfig{
			RateLimit:  getInt("CONTACT_RATE_LIMIT", 5),
			RateWindow: getDuration("CONTACT_RATE_WINDOW", time.Hour),
		},
	}
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=Local&charset=utf8mb4&clientFoundRows=true",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
