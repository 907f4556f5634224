package commands

import (
	"testing"

	"auto_service_queue/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
)

func TestNewSMSGateway(t *testing.T) {
	t.Run("incomplete credentials disable sms", func(t *testing.T) {
		gw := newSMSGateway(config.TwilioConfig{AccountSID: "AC123"})
		assert.Nil(t, gw)
	})

	t.Run("no credentials disable sms", func(t *testing.T) {
		assert.Nil(t, newSMSGateway(config.TwilioConfig{}))
	})

	t.Run("mock mode keeps a gateway", func(t *testing.T) {
		assert.NotNil(t, newSMSGateway(config.TwilioConfig{Mock: true, PhoneNumber: "+15550000000"}))
	})
}
