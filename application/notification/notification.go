package notification

import (
	"context"

	"github.com/muhammadheryan/bhrc-portal/thirdparty/mailer"
	"github.com/muhammadheryan/bhrc-portal/utils/logger"
	"go.uber.org/zap"
)

// Publisher hands an email to the background queue.
type Publisher interface {
	PublishEmail(ctx context.Context, msg mailer.Message) error
}

// NotificationApp is the email side channel. A nil error means the message was
// accepted for delivery; callers treat failures as non-fatal.
type NotificationApp interface {
	Send(ctx context.Context, msg mailer.Message) error
}

type NotificationAppImpl struct {
	publisher Publisher
	sender    mailer.Sender
}

// NewNotificationApp queues through publisher when it is set and sends inline otherwise.
func NewNotificationApp(publisher Publisher, sender mailer.Sender) NotificationApp {
	return &NotificationAppImpl{
		publisher: publisher,
		sender:    sender,
	}
}

func (s *NotificationAppImpl) Send(ctx context.Context, msg mailer.Message) error {
	if s.publisher != nil {
		err := s.publisher.PublishEmail(ctx, msg)
		if err == nil {
			return nil
		}
		logger.Warn("[Send] err publisher.PublishEmail, sending inline", zap.String("to", msg.To), zap.String("error", err.Error()))
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		logger.Error("[Send] err sender.Send", zap.String("to", msg.To), zap.String("error", err.Error()))
		return err
	}
	return nil
}
