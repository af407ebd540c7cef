package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

const (
	LedgerPostgres = "postgres"
	LedgerMemory   = "memory"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Booking   BookingConfig   `yaml:"booking"   validate:"required"`
	PortOne   PortOneConfig   `yaml:"portone"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel maps the configured level onto wbf levels.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"    validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"         validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"     validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"     validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"villabooker"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"      validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"           validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"            validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"           validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"30s" validate:"required,gt=0"`
}

type BookingConfig struct {
	HoldTTL         time.Duration `yaml:"hold_ttl"         env:"BOOKING_HOLD_TTL"         env-default:"10m"      validate:"required,gt=0"`
	ContactPepper   string        `yaml:"contact_pepper"   env:"CONTACT_PEPPER"                                  validate:"required"`
	ProviderTimeout time.Duration `yaml:"provider_timeout" env:"BOOKING_PROVIDER_TIMEOUT" env-default:"5s"       validate:"required,gt=0"`
	LedgerDriver    string        `yaml:"ledger_driver"    env:"BOOKING_LEDGER_DRIVER"    env-default:"postgres" validate:"required,oneof=postgres memory"`
}

type PortOneConfig struct {
	BaseURL   string `yaml:"base_url"   env:"PORTONE_BASE_URL"   env-default:"https://api.portone.io"`
	APISecret string `yaml:"api_secret" env:"PORTONE_API_SECRET" env-default:""`
}

type RedisConfig struct {
	Addr         string        `yaml:"addr"          env:"REDIS_ADDR"          env-default:""`
	Password     string        `yaml:"password"      env:"REDIS_PASSWORD"      env-default:""`
	DB           int           `yaml:"db"            env:"REDIS_DB"            env-default:"0"  validate:"min=0"`
	LookupLimit  int64         `yaml:"lookup_limit"  env:"REDIS_LOOKUP_LIMIT"  env-default:"10" validate:"min=1"`
	LookupWindow time.Duration `yaml:"lookup_window" env:"REDIS_LOOKUP_WINDOW" env-default:"1m" validate:"gt=0"`
}

type KafkaConfig struct {
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:"," env-default:""`
	Topic   string   `yaml:"topic"   env:"KAFKA_TOPIC"   env-default:"villa.bookings"`
}

type TelegramConfig struct {
	BotToken    string `yaml:"bot_token"     env:"TELEGRAM_BOT_TOKEN"     env-default:""`
	AdminChatID int64  `yaml:"admin_chat_id" env:"TELEGRAM_ADMIN_CHAT_ID" env-default:"0"`
}

// Validate checks rules that span sections.
func (c *Config) Validate() error {
	if c.Scheduler.Interval >= c.Booking.HoldTTL {
		return fmt.Errorf("scheduler interval %s must be shorter than hold ttl %s",
			c.Scheduler.Interval, c.Booking.HoldTTL)
	}
	if c.Booking.ContactPepper == "" {
		return errors.New("booking contact pepper is required")
	}
	if c.Kafka.Enabled() && c.Kafka.Topic == "" {
		return errors.New("kafka topic is required when brokers are set")
	}
	return nil
}

func (k KafkaConfig) Enabled() bool {
	for _, b := range k.Brokers {
		if b != "" {
			return true
		}
	}
	return false
}

func MustLoad() *Config {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("invalid config: %v", err))
	}
	return &cfg
}
