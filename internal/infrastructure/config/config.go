package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// AppConfig holds the business and transport settings of the shop service.
//
// Values come from environment variables (a .env file is autoloaded by main).
// DynamoDB connection and table names are read by the database and repository
// packages directly.
type AppConfig struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	ShopName string `env:"SHOP_NAME" envDefault:"Nabil Auto Service"`

	Estimation EstimationConfig
	SMS        SMSConfig
	Twilio     TwilioConfig `envPrefix:"TWILIO_"`
}

// EstimationConfig tunes the wait-time math.
type EstimationConfig struct {
	// QueueMultiplier inflates the base estimate per other active job.
	QueueMultiplier float64 `env:"QUEUE_MULTIPLIER" envDefault:"0.5"`
	// DefaultServiceMinutes is used when a job's services cannot be timed.
	DefaultServiceMinutes int `env:"DEFAULT_SERVICE_MINUTES" envDefault:"30"`
	// QueueMinutesPerJob drives the crude queue snapshot estimate.
	QueueMinutesPerJob int `env:"QUEUE_MINUTES_PER_JOB" envDefault:"30"`
}

// SMSConfig bounds the best-effort notification dispatch.
type SMSConfig struct {
	Timeout      time.Duration `env:"SMS_TIMEOUT" envDefault:"10s"`
	MaxAttempts  int           `env:"SMS_MAX_ATTEMPTS" envDefault:"1"`
	RetryBackoff time.Duration `env:"SMS_RETRY_BACKOFF" envDefault:"500ms"`
}

type TwilioConfig struct {
	AccountSID  string `env:"ACCOUNT_SID"`
	AuthToken   string `env:"AUTH_TOKEN"`
	PhoneNumber string `env:"PHONE_NUMBER"`
	Mock        bool   `env:"MOCK" envDefault:"false"`
}

// Load parses the environment and applies guardrails.
func Load() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	cfg.Sanitize()
	return cfg, nil
}

// Sanitize replaces out-of-range values with defaults.
func (c *AppConfig) Sanitize() {
	if c.Port <= 0 {
		c.Port = 8080
	}
	if c.Estimation.QueueMultiplier < 0 {
		c.Estimation.QueueMultiplier = 0.5
	}
	if c.Estimation.DefaultServiceMinutes <= 0 {
		c.Estimation.DefaultServiceMinutes = 30
	}
	if c.Estimation.QueueMinutesPerJob <= 0 {
		c.Estimation.QueueMinutesPerJob = 30
	}
	if c.SMS.Timeout <= 0 {
		c.SMS.Timeout = 10 * time.Second
	}
	if c.SMS.MaxAttempts < 1 {
		c.SMS.MaxAttempts = 1
	}
	if c.SMS.RetryBackoff < 0 {
		c.SMS.RetryBackoff = 0
	}
}

// SMSEnabled reports whether a real or mock transport can be built.
func (c TwilioConfig) SMSEnabled() bool {
	return c.Mock || (c.AccountSID != "" && c.AuthToken != "" && c.PhoneNumber != "")
}
