package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port    string `env:"APP_PORT" envDefault:"3000"`
	Env     string `env:"APP_ENV" envDefault:"development"`
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:3000"`

	Server     ServerConfig   `envPrefix:"HTTP_"`
	DB         DatabaseConfig `envPrefix:"DB_"`
	Redis      RedisConfig    `envPrefix:"REDIS_"`
	Kafka      KafkaConfig    `envPrefix:"KAFKA_"`
	Session    SessionConfig
	Keycloak   KeycloakConfig `envPrefix:"KEYCLOAK_"`
	SMTP       SMTPConfig     `envPrefix:"SMTP_"`
	Sheet      SheetConfig    `envPrefix:"SHEET_"`
	AgentSheet SheetConfig    `envPrefix:"AGENT_SHEET_"`
	OSS        OSSConfig      `envPrefix:"OSS_"`

	CacheTTL        time.Duration `env:"CACHE_TTL" envDefault:"300s"`
	ExternalTimeout time.Duration `env:"EXTERNAL_TIMEOUT" envDefault:"8s"`
}

type ServerConfig struct {
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
}

type DatabaseConfig struct {
	Host        string        `env:"HOST" envDefault:"localhost"`
	User        string        `env:"USER" envDefault:"postgres"`
	Password    string        `env:"PASSWORD"`
	Name        string        `env:"NAME" envDefault:"customercare"`
	Port        string        `env:"PORT" envDefault:"5432"`
	SSLMode     string        `env:"SSLMODE" envDefault:"disable"`
	MaxRetries  int           `env:"MAX_RETRIES" envDefault:"5"`
	ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"3s"`
}

type RedisConfig struct {
	Addr     string `env:"ADDR"`
	Password string `env:"PASSWORD"`
}

type KafkaConfig struct {
	Broker       string        `env:"BROKER"`
	GroupID      string        `env:"GROUP_ID" envDefault:"customercare-feedback-retry"`
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"3s"`
}

type SessionConfig struct {
	Secret            string        `env:"SESSION_SECRET,required,notEmpty"`
	CookieName        string        `env:"SESSION_COOKIE" envDefault:"cc_session"`
	MaxAge            time.Duration `env:"SESSION_MAX_AGE" envDefault:"168h"`
	ProtectedPrefixes []string      `env:"PROTECTED_PREFIXES" envSeparator:"," envDefault:"/dashboard,/admin,/agent"`
	LoginPath         string        `env:"LOGIN_PATH" envDefault:"/login"`
}

type KeycloakConfig struct {
	URL           string `env:"URL"`
	Realm         string `env:"REALM"`
	ClientID      string `env:"CLIENT_ID"`
	ClientSecret  string `env:"CLIENT_SECRET"`
	AdminUser     string `env:"ADMIN_USER"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

type SMTPConfig struct {
	Host   string `env:"HOST"`
	Port   int    `env:"PORT" envDefault:"587"`
	User   string `env:"USER"`
	Pass   string `env:"PASS"`
	Secure bool   `env:"SECURE" envDefault:"false"`
	To     string `env:"TO"`
	From   string `env:"FROM"`
}

type SheetConfig struct {
	ID                  string `env:"ID"`
	Name                string `env:"NAME" envDefault:"Sheet1"`
	ServiceAccountEmail string `env:"SERVICE_ACCOUNT_EMAIL"`
	PrivateKey          string `env:"PRIVATE_KEY"`
}

// Enabled reports whether enough is configured to talk to the sheet.
func (s SheetConfig) Enabled() bool {
	return s.ID != "" && s.ServiceAccountEmail != "" && s.PrivateKey != ""
}

type OSSConfig struct {
	Endpoint        string `env:"ENDPOINT"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	AccessKeySecret string `env:"ACCESS_KEY_SECRET"`
	Bucket          string `env:"BUCKET"`
	PublicBaseURL   string `env:"PUBLIC_BASE_URL"`
	Prefix          string `env:"PREFIX" envDefault:"agents/photos"`
}

func (o OSSConfig) Enabled() bool {
	return o.Endpoint != "" && o.AccessKeyID != "" && o.AccessKeySecret != "" && o.Bucket != ""
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads .env when present, then parses the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
