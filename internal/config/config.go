package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP     HTTP     `mapstructure:"http"`
	Database Database `mapstructure:"database"`
	Kafka    Kafka    `mapstructure:"kafka"`
	Outbox   Outbox   `mapstructure:"outbox"`
	Storage  Storage  `mapstructure:"storage"`
	Returns  Returns  `mapstructure:"returns"`
	Log      Log      `mapstructure:"log"`
}

type HTTP struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AuditWorkers    int           `mapstructure:"audit_workers"`
	AuditBatchSize  int           `mapstructure:"audit_batch_size"`
	AuditTimeout    time.Duration `mapstructure:"audit_timeout"`
}

type Database struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxConns int32  `mapstructure:"max_conns"`
	Migrate  bool   `mapstructure:"migrate"`
}

type Kafka struct {
	Enabled           bool     `mapstructure:"enabled"`
	Brokers           []string `mapstructure:"brokers"`
	NotificationTopic string   `mapstructure:"notification_topic"`
	EventTopic        string   `mapstructure:"event_topic"`
	AuditTopic        string   `mapstructure:"audit_topic"`
	GroupID           string   `mapstructure:"group_id"`
}

type Outbox struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
	BatchSize    int           `mapstructure:"batch_size"`
	MaxAttempts  int           `mapstructure:"max_attempts"`
	Lease        time.Duration `mapstructure:"lease"`
}

type Storage struct {
	Driver    string `mapstructure:"driver"`
	LocalPath string `mapstructure:"local_path"`
	PublicURL string `mapstructure:"public_url"`
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	Prefix    string `mapstructure:"prefix"`
}

type Returns struct {
	ReturnPeriodDays       int       `mapstructure:"return_period_days"`
	SendNotifications      bool      `mapstructure:"send_notifications"`
	RequirePhotos          bool      `mapstructure:"require_photos"`
	ReturnReasons          []string  `mapstructure:"return_reasons"`
	CompletedOrderStatuses []float64 `mapstructure:"completed_order_statuses"`
	MaxImageSize           int64     `mapstructure:"max_image_size"`
}

type Log struct {
	Level string `mapstructure:"level"`
}

// Load reads .env (if any), then config.yaml (if any), then environment
// variables such as RETURNS_DATABASE_HOST.
func Load() (*Config, error) {
	loadEnv()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if path := os.Getenv("RETURNS_CONFIG"); path != "" {
		v.SetConfigFile(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix("RETURNS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindLegacyEnv(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", "9000")
	v.SetDefault("http.read_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("http.shutdown_timeout", 30*time.Second)
	v.SetDefault("http.audit_workers", 2)
	v.SetDefault("http.audit_batch_size", 5)
	v.SetDefault("http.audit_timeout", 500*time.Millisecond)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.name", "returns")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.migrate", true)

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.notification_topic", "return-notifications")
	v.SetDefault("kafka.event_topic", "return-events")
	v.SetDefault("kafka.audit_topic", "audit_logs")
	v.SetDefault("kafka.group_id", "return-notification-consumer")

	v.SetDefault("outbox.poll_interval", 2*time.Second)
	v.SetDefault("outbox.batch_size", 20)
	v.SetDefault("outbox.max_attempts", 5)
	v.SetDefault("outbox.lease", 5*time.Minute)

	v.SetDefault("storage.driver", "local")
	v.SetDefault("storage.local_path", "./uploads")
	v.SetDefault("storage.public_url", "/uploads")
	v.SetDefault("storage.prefix", "returns")

	v.SetDefault("returns.return_period_days", 14)
	v.SetDefault("returns.send_notifications", true)
	v.SetDefault("returns.require_photos", false)
	v.SetDefault("returns.return_reasons", []string{"Wrong size", "Damaged item", "Not as described", "Changed my mind", "Other"})
	v.SetDefault("returns.completed_order_statuses", []float64{7, 7.4, 8, 9})
	v.SetDefault("returns.max_image_size", 5<<20)

	v.SetDefault("log.level", "info")
}

// bindLegacyEnv keeps the plain POSTGRES_* and DB_* variables working.
func bindLegacyEnv(v *viper.Viper) {
	_ = v.BindEnv("database.host", "RETURNS_DATABASE_HOST", "DB_HOST")
	_ = v.BindEnv("database.port", "RETURNS_DATABASE_PORT", "DB_PORT")
	_ = v.BindEnv("database.user", "RETURNS_DATABASE_USER", "POSTGRES_USER")
	_ = v.BindEnv("database.password", "RETURNS_DATABASE_PASSWORD", "POSTGRES_PASSWORD")
	_ = v.BindEnv("database.name", "RETURNS_DATABASE_NAME", "POSTGRES_DB")
	_ = v.BindEnv("kafka.brokers", "RETURNS_KAFKA_BROKERS", "KAFKA_BROKERS")
}

func loadEnv() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	for _, p := range []string{
		filepath.Join(wd, ".env"),
		filepath.Join(wd, "..", ".env"),
		filepath.Join(wd, "..", "..", ".env"),
	} {
		if err := godotenv.Load(p); err == nil {
			return
		}
	}
}
