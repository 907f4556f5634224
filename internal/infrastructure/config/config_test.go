package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 0.5, cfg.Estimation.QueueMultiplier)
	assert.Equal(t, 30, cfg.Estimation.DefaultServiceMinutes)
	assert.Equal(t, 30, cfg.Estimation.QueueMinutesPerJob)
	assert.Equal(t, 10*time.Second, cfg.SMS.Timeout)
	assert.Equal(t, 1, cfg.SMS.MaxAttempts)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SHOP_NAME", "Corner Garage")
	t.Setenv("QUEUE_MULTIPLIER", "0.25")
	t.Setenv("SMS_TIMEOUT", "3s")
	t.Setenv("SMS_MAX_ATTEMPTS", "3")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "token")
	t.Setenv("TWILIO_PHONE_NUMBER", "+15550001111")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "Corner Garage", cfg.ShopName)
	assert.Equal(t, 0.25, cfg.Estimation.QueueMultiplier)
	assert.Equal(t, 3*time.Second, cfg.SMS.Timeout)
	assert.Equal(t, 3, cfg.SMS.MaxAttempts)
	assert.Equal(t, "AC123", cfg.Twilio.AccountSID)
	assert.True(t, cfg.Twilio.SMSEnabled())
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("QUEUE_MULTIPLIER", "lots")
	_, err := Load()
	assert.Error(t, err)
}

func TestSanitize(t *testing.T) {
	cfg := AppConfig{
		Estimation: EstimationConfig{QueueMultiplier: -1},
		SMS:        SMSConfig{MaxAttempts: 0, RetryBackoff: -time.Second},
	}
	cfg.Sanitize()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 0.5, cfg.Estimation.QueueMultiplier)
	assert.Equal(t, 1, cfg.SMS.MaxAttempts)
	assert.Equal(t, time.Duration(0), cfg.SMS.RetryBackoff)
	assert.False(t, cfg.Twilio.SMSEnabled())
}
