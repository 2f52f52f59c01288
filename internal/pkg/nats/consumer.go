package nats

import (
	"github.com/nats-io/nats.go/jetstream"

	"github.com/piresc/fleettrack/internal/pkg/logger"
)

// JetStreamMessageHandler processes one JetStream message. Returning an
// error nacks the message so it is redelivered.
type JetStreamMessageHandler func(msg jetstream.Msg) error

func ackingHandler(handler JetStreamMessageHandler) jetstream.MessageHandler {
	return func(msg jetstream.Msg) {
		if err := handler(msg); err != nil {
			logger.Error("Error processing JetStream message",
				logger.String("subject", msg.Subject()),
				logger.Err(err))

			if nakErr := msg.Nak(); nakErr != nil {
				logger.Error("Failed to NAK message", logger.Err(nakErr))
			}
			return
		}

		if ackErr := msg.Ack(); ackErr != nil {
			logger.Error("Failed to ACK message", logger.Err(ackErr))
		}
	}
}
