package nats

import (
	"context"
	"encoding/json"
	"fmt"
)

// Publisher is the publishing side of Client
type Publisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// PublishJSON marshals message and publishes it on subject
func PublishJSON(ctx context.Context, p Publisher, subject string, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	return p.Publish(ctx, subject, data)
}
