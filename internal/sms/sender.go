package sms

import (
	"context"

	"project-hub.com/project-hub/internal/logging"
)

type Message struct {
	NotificationID uint
	Phone          string
	Body           string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender records the message instead of handing it to a carrier.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logging.Logger.WithFields(logging.Fields{
		"notification_id": msg.NotificationID,
		"phone":           maskPhone(msg.Phone),
	}).Info("sms sent: ", msg.Body)
	return nil
}

func maskPhone(phone string) string {
	runes := []rune(phone)
	if len(runes) <= 4 {
		return phone
	}
	for i := 0; i < len(runes)-4; i++ {
		runes[i] = '*'
	}
	return string(runes)
}
