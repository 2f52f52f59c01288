package nats

import (
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/piresc/fleettrack/internal/pkg/constants"
)

// StreamConfigBuilder helps build stream configurations
type StreamConfigBuilder struct {
	config StreamConfig
}

// NewStreamConfigBuilder starts from a file-backed, limits-retention stream
func NewStreamConfigBuilder(name string) *StreamConfigBuilder {
	return &StreamConfigBuilder{
		config: StreamConfig{
			Name:      name,
			Retention: jetstream.LimitsPolicy,
			Storage:   jetstream.FileStorage,
			Replicas:  1,
			MaxAge:    24 * time.Hour,
			MaxBytes:  100 * 1024 * 1024,
			MaxMsgs:   1000000,
			Discard:   jetstream.DiscardOld,
		},
	}
}

func (b *StreamConfigBuilder) WithSubjects(subjects ...string) *StreamConfigBuilder {
	b.config.Subjects = subjects
	return b
}

func (b *StreamConfigBuilder) WithStorage(storage jetstream.StorageType) *StreamConfigBuilder {
	b.config.Storage = storage
	return b
}

func (b *StreamConfigBuilder) WithMaxAge(maxAge time.Duration) *StreamConfigBuilder {
	b.config.MaxAge = maxAge
	return b
}

func (b *StreamConfigBuilder) Build() StreamConfig {
	return b.config
}

// ConsumerConfigBuilder helps build consumer configurations
type ConsumerConfigBuilder struct {
	config ConsumerConfig
}

// NewConsumerConfigBuilder starts from an explicit-ack consumer with three deliveries
func NewConsumerConfigBuilder(streamName, consumerName string) *ConsumerConfigBuilder {
	return &ConsumerConfigBuilder{
		config: ConsumerConfig{
			StreamName:    streamName,
			ConsumerName:  consumerName,
			DeliverPolicy: jetstream.DeliverAllPolicy,
			AckPolicy:     jetstream.AckExplicitPolicy,
			AckWait:       30 * time.Second,
			MaxDeliver:    3,
			ReplayPolicy:  jetstream.ReplayInstantPolicy,
			MaxAckPending: 1000,
		},
	}
}

func (b *ConsumerConfigBuilder) WithSubject(subject string) *ConsumerConfigBuilder {
	b.config.FilterSubject = subject
	return b
}

func (b *ConsumerConfigBuilder) WithDeliverPolicy(policy jetstream.DeliverPolicy) *ConsumerConfigBuilder {
	b.config.DeliverPolicy = policy
	return b
}

func (b *ConsumerConfigBuilder) WithMaxDeliver(maxDeliver int) *ConsumerConfigBuilder {
	b.config.MaxDeliver = maxDeliver
	return b
}

// WithMaxAckPending limits in-flight messages. A value of 1 keeps delivery in stream order.
func (b *ConsumerConfigBuilder) WithMaxAckPending(maxAckPending int) *ConsumerConfigBuilder {
	b.config.MaxAckPending = maxAckPending
	return b
}

func (b *ConsumerConfigBuilder) Build() ConsumerConfig {
	return b.config
}

// DefaultStreamConfigs returns the streams used by the fleet services
func DefaultStreamConfigs() []StreamConfig {
	return []StreamConfig{
		NewStreamConfigBuilder(constants.StreamRun).
			WithSubjects(constants.SubjectRunStarted, constants.SubjectRunFinished).
			WithStorage(jetstream.FileStorage).
			WithMaxAge(7 * 24 * time.Hour). // kept for audit
			Build(),

		NewStreamConfigBuilder(constants.StreamLocation).
			WithSubjects(constants.SubjectLocationUpdate).
			WithStorage(jetstream.MemoryStorage).
			WithMaxAge(2 * time.Hour).
			Build(),
	}
}

// DefaultConsumerConfigs returns the durable consumers keyed by consumer name
func DefaultConsumerConfigs() map[string]ConsumerConfig {
	return map[string]ConsumerConfig{
		constants.ConsumerRunStartedLocation: NewConsumerConfigBuilder(constants.StreamRun, constants.ConsumerRunStartedLocation).
			WithSubject(constants.SubjectRunStarted).
			WithMaxDeliver(5).
			Build(),

		constants.ConsumerRunFinishedLocation: NewConsumerConfigBuilder(constants.StreamRun, constants.ConsumerRunFinishedLocation).
			WithSubject(constants.SubjectRunFinished).
			WithMaxDeliver(5).
			Build(),

		// one message in flight so samples are appended in the order they were published
		constants.ConsumerLocationUpdate: NewConsumerConfigBuilder(constants.StreamLocation, constants.ConsumerLocationUpdate).
			WithSubject(constants.SubjectLocationUpdate).
			WithDeliverPolicy(jetstream.DeliverNewPolicy).
			WithMaxDeliver(2).
			WithMaxAckPending(1).
			Build(),
	}
}

// GetStreamForSubject returns the stream that captures subject
func GetStreamForSubject(subject string) string {
	switch subject {
	case constants.SubjectRunStarted, constants.SubjectRunFinished:
		return constants.StreamRun
	case constants.SubjectLocationUpdate:
		return constants.StreamLocation
	default:
		return ""
	}
}
