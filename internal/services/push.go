package services

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sideshow/apns2"
	"github.com/sideshow/apns2/certificate"
	"github.com/sideshow/apns2/payload"
)

// Pusher delivers best-effort APNs alerts to the device registered in a
// user's push_id. A nil *Pusher is valid and drops every notification.
type Pusher struct {
	client *apns2.Client
	topic  string
}

// NewPusher loads the APNs client certificate and builds a pusher.
func NewPusher(certPath, certPassword, topic string, production bool) (*Pusher, error) {
	cert, err := certificate.FromP12File(certPath, certPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to load APNs certificate: %w", err)
	}

	client := apns2.NewClient(cert)
	if production {
		client = client.Production()
	} else {
		client = client.Development()
	}

	return &Pusher{client: client, topic: topic}, nil
}

// Notify sends one alert to the device token. Push delivery never
// affects the outcome of the request that triggered it: failures are
// logged and swallowed.
func (p *Pusher) Notify(deviceToken, alert string) {
	if p == nil || deviceToken == "" {
		return
	}

	n := &apns2.Notification{
		DeviceToken: deviceToken,
		Topic:       p.topic,
		Payload:     payload.NewPayload().Alert(alert).Sound("default"),
	}

	res, err := p.client.Push(n)
	if err != nil {
		log.Error().Err(err).Msg("Failed to send push notification")
		return
	}
	if !res.Sent() {
		log.Warn().
			Int("status", res.StatusCode).
			Str("reason", res.Reason).
			Msg("Push notification rejected")
	}
}
