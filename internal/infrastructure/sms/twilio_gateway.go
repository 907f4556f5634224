package sms

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"auto_service_queue/internal/infrastructure/config"
	"auto_service_queue/internal/usecase/interfaces"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

var (
	ErrMissingTwilioCredentials   = errors.New("missing TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN or TWILIO_PHONE_NUMBER")
	ErrTwilioGatewayNotConfigured = errors.New("twilio gateway not configured")
)

// messageCreator is the slice of the Twilio REST client the gateway uses.
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type TwilioGateway struct {
	api      messageCreator
	from     string
	mockMode bool
}

var _ interfaces.ISMSGateway = (*TwilioGateway)(nil)

// NewTwilioGateway returns (nil, nil) when SMS is not configured, so callers
// can treat a nil gateway as "SMS disabled".
func NewTwilioGateway(cfg config.TwilioConfig) (*TwilioGateway, error) {
	if cfg.Mock {
		log.Printf("[sms][gateway] mock mode enabled")
		return &TwilioGateway{mockMode: true, from: cfg.PhoneNumber}, nil
	}

	if !cfg.SMSEnabled() {
		if cfg.AccountSID == "" && cfg.AuthToken == "" && cfg.PhoneNumber == "" {
			log.Printf("[sms][gateway] twilio not configured; sms disabled")
			return nil, nil
		}
		log.Printf("[sms][gateway] incomplete twilio configuration")
		return nil, ErrMissingTwilioCredentials
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	log.Printf("[sms][gateway] Twilio client initialized from=%s", cfg.PhoneNumber)

	return &TwilioGateway{api: client.Api, from: cfg.PhoneNumber}, nil
}

// Send delivers one SMS. The Twilio SDK call is not context-aware, so it runs
// in its own goroutine and Send returns as soon as ctx is done.
func (g *TwilioGateway) Send(ctx context.Context, to string, body string) (string, error) {
	if g != nil && g.mockMode {
		sid := "SM" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[sms][gateway] mock send success sid=%s body_len=%d", sid, len(body))
		return sid, nil
	}
	if g == nil || g.api == nil {
		log.Printf("[sms][gateway] gateway not configured")
		return "", ErrTwilioGatewayNotConfigured
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(strings.TrimSpace(to))
	params.SetFrom(g.from)
	params.SetBody(body)

	type result struct {
		sid string
		err error
	}
	done := make(chan result, 1)
	go func() {
		resp, err := g.api.CreateMessage(params)
		if err != nil {
			done <- result{err: err}
			return
		}
		sid := ""
		if resp != nil && resp.Sid != nil {
			sid = *resp.Sid
		}
		done <- result{sid: sid}
	}()

	select {
	case <-ctx.Done():
		log.Printf("[sms][gateway] send abandoned err=%v", ctx.Err())
		return "", ctx.Err()
	case r := <-done:
		if r.err != nil {
			log.Printf("[sms][gateway] sdk create message failed err=%v", r.err)
			return "", r.err
		}
		log.Printf("[sms][gateway] send success sid=%s", r.sid)
		return r.sid, nil
	}
}
