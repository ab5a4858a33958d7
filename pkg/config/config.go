package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP       HTTP
	Logger     Logger
	Postgres   Postgres
	Redis      Redis
	Kafka      Kafka
	MQTT       MQTT
	Session    Session
	Push       Push
	Mailer     Mailer
	Validation Validation
	Jobs       Jobs
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type Kafka struct {
	Brokers          []string `env:"KAFKA_BROKERS" envSeparator:","`
	ConsumerID       string   `env:"KAFKA_CONSUMER_ID" envDefault:"staff"`
	JobChangesTopic  string   `env:"KAFKA_JOB_CHANGES_TOPIC" envDefault:"job-changes"`
	AssignmentsTopic string   `env:"KAFKA_ASSIGNMENTS_TOPIC" envDefault:"job-assignments"`
}

type MQTT struct {
	Enabled     bool   `env:"MQTT_ENABLED" envDefault:"false"`
	BrokerURL   string `env:"MQTT_BROKER_URL" envDefault:"tcp://localhost:1883"`
	ClientID    string `env:"MQTT_CLIENT_ID" envDefault:"staff-service"`
	Username    string `env:"MQTT_USERNAME" envDefault:""`
	Password    string `env:"MQTT_PASSWORD" envDefault:""`
	TopicPrefix string `env:"MQTT_TOPIC_PREFIX" envDefault:"staff"`
}

type Session struct {
	Secret           string        `env:"SESSION_SECRET"`
	TTL              time.Duration `env:"SESSION_TTL" envDefault:"12h"`
	PINAttemptLimit  int           `env:"PIN_ATTEMPT_LIMIT" envDefault:"5"`
	PINLockTime      time.Duration `env:"PIN_LOCK_TIME" envDefault:"15m"`
	ProfilesCacheTTL time.Duration `env:"PROFILES_CACHE_TTL" envDefault:"10m"`
	LivePollInterval time.Duration `env:"LIVE_POLL_INTERVAL" envDefault:"15s"`
}

type Push struct {
	GatewayURL    string        `env:"PUSH_GATEWAY_URL" envDefault:"https://exp.host/--/api/v2/push/send"`
	AccessToken   string        `env:"PUSH_ACCESS_TOKEN" envDefault:""`
	Timeout       time.Duration `env:"PUSH_TIMEOUT" envDefault:"10s"`
	RetryAttempts int           `env:"PUSH_RETRY_ATTEMPTS" envDefault:"3"`
}

type Mailer struct {
	Enabled  bool   `env:"MAILER_ENABLED" envDefault:"false"`
	From     string `env:"MAILER_FROM" envDefault:""`
	FromName string `env:"MAILER_FROM_NAME" envDefault:""`
	Host     string `env:"MAILER_HOST" envDefault:""`
	Port     int    `env:"MAILER_PORT" envDefault:"465"`
	Login    string `env:"MAILER_LOGIN" envDefault:""`
	Password string `env:"MAILER_PASSWORD" envDefault:""`
}

type Validation struct {
	TimeZone           string   `env:"VALIDATION_TIME_ZONE" envDefault:"UTC"`
	MaxJobsPerDay      int      `env:"VALIDATION_MAX_JOBS_PER_DAY" envDefault:"8"`
	MaxMinutesPerDay   int      `env:"VALIDATION_MAX_MINUTES_PER_DAY" envDefault:"480"`
	BusinessHoursStart int      `env:"VALIDATION_BUSINESS_HOURS_START" envDefault:"7"`
	BusinessHoursEnd   int      `env:"VALIDATION_BUSINESS_HOURS_END" envDefault:"20"`
	Holidays           []string `env:"VALIDATION_HOLIDAYS" envSeparator:"," envDefault:""`
}

type Jobs struct {
	OverdueInterval           time.Duration `env:"JOB_OVERDUE_INTERVAL" envDefault:"5m"`
	NotificationPurgeInterval time.Duration `env:"JOB_NOTIFICATION_PURGE_INTERVAL" envDefault:"1h"`
	PINLockCleanupInterval    time.Duration `env:"JOB_PIN_LOCK_CLEANUP_INTERVAL" envDefault:"1h"`
	NotificationTTL           time.Duration `env:"NOTIFICATION_TTL" envDefault:"720h"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	if _, err := c.Validation.Location(); err != nil {
		return Config{}, fmt.Errorf("invalid VALIDATION_TIME_ZONE: %w", err)
	}

	if c.Session.LivePollInterval <= 0 {
		return Config{}, fmt.Errorf("LIVE_POLL_INTERVAL must be positive, got %s", c.Session.LivePollInterval)
	}

	if c.Validation.BusinessHoursStart >= c.Validation.BusinessHoursEnd {
		return Config{}, fmt.Errorf("business hours start %d must be before end %d",
			c.Validation.BusinessHoursStart, c.Validation.BusinessHoursEnd)
	}

	return c, nil
}

func (v Validation) Location() (*time.Location, error) {
	return time.LoadLocation(v.TimeZone)
}
