package interfaces

import "context"

//go:generate mockgen -source=sms_gateway_interface.go -destination=mocks/sms_gateway_mock.go -package=mock_interfaces

// ISMSGateway abstracts the SMS transport (e.g. Twilio).
//
// The service uses it for best-effort customer notifications; a nil gateway
// means SMS is disabled.
type ISMSGateway interface {
	Send(ctx context.Context, to string, body string) (providerMessageID string, err error)
}
