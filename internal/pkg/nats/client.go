package nats

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/piresc/fleettrack/internal/pkg/logger"
)

// StreamConfig describes a JetStream stream
type StreamConfig struct {
	Name      string
	Subjects  []string
	Retention jetstream.RetentionPolicy
	Storage   jetstream.StorageType
	Replicas  int
	MaxAge    time.Duration
	MaxBytes  int64
	MaxMsgs   int64
	Discard   jetstream.DiscardPolicy
}

func (c StreamConfig) jetstream() jetstream.StreamConfig {
	return jetstream.StreamConfig{
		Name:      c.Name,
		Subjects:  c.Subjects,
		Retention: c.Retention,
		Storage:   c.Storage,
		Replicas:  c.Replicas,
		MaxAge:    c.MaxAge,
		MaxBytes:  c.MaxBytes,
		MaxMsgs:   c.MaxMsgs,
		Discard:   c.Discard,
	}
}

// ConsumerConfig describes a durable JetStream consumer
type ConsumerConfig struct {
	StreamName    string
	ConsumerName  string
	FilterSubject string
	DeliverPolicy jetstream.DeliverPolicy
	AckPolicy     jetstream.AckPolicy
	AckWait       time.Duration
	MaxDeliver    int
	ReplayPolicy  jetstream.ReplayPolicy
	MaxAckPending int
}

func (c ConsumerConfig) jetstream() jetstream.ConsumerConfig {
	return jetstream.ConsumerConfig{
		Name:          c.ConsumerName,
		Durable:       c.ConsumerName,
		FilterSubject: c.FilterSubject,
		DeliverPolicy: c.DeliverPolicy,
		AckPolicy:     c.AckPolicy,
		AckWait:       c.AckWait,
		MaxDeliver:    c.MaxDeliver,
		ReplayPolicy:  c.ReplayPolicy,
		MaxAckPending: c.MaxAckPending,
	}
}

// Client wraps a NATS connection and its JetStream context
type Client struct {
	conn *nats.Conn
	js   jetstream.JetStream

	mu        sync.Mutex
	consumers map[string]jetstream.Consumer
	running   []jetstream.ConsumeContext
}

// NewClient connects to url and makes sure the default streams exist
func NewClient(url string) (*Client, error) {
	conn, err := nats.Connect(url,
		nats.Name("fleettrack"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", logger.Err(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", logger.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	c := &Client{
		conn:      conn,
		js:        js,
		consumers: make(map[string]jetstream.Consumer),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, sc := range DefaultStreamConfigs() {
		if err := c.CreateStream(ctx, sc); err != nil {
			conn.Close()
			return nil, err
		}
	}

	return c, nil
}

// GetConn returns the underlying connection
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// IsConnected reports whether the connection is up
func (c *Client) IsConnected() bool {
	return c.conn != nil && c.conn.IsConnected()
}

// CreateStream creates the stream or updates it to match config
func (c *Client) CreateStream(ctx context.Context, config StreamConfig) error {
	if _, err := c.js.CreateOrUpdateStream(ctx, config.jetstream()); err != nil {
		return fmt.Errorf("failed to create stream %s: %w", config.Name, err)
	}
	logger.Debug("JetStream stream ready", logger.String("stream", config.Name))
	return nil
}

// ListStreams returns the names of every stream on the server
func (c *Client) ListStreams(ctx context.Context) ([]string, error) {
	lister := c.js.StreamNames(ctx)
	var names []string
	for name := range lister.Name() {
		names = append(names, name)
	}
	if err := lister.Err(); err != nil {
		return nil, fmt.Errorf("failed to list streams: %w", err)
	}
	return names, nil
}

// CreateConsumer creates or updates a durable consumer
func (c *Client) CreateConsumer(ctx context.Context, config ConsumerConfig) error {
	consumer, err := c.js.CreateOrUpdateConsumer(ctx, config.StreamName, config.jetstream())
	if err != nil {
		return fmt.Errorf("failed to create consumer %s: %w", config.ConsumerName, err)
	}

	c.mu.Lock()
	c.consumers[consumerKey(config.StreamName, config.ConsumerName)] = consumer
	c.mu.Unlock()
	return nil
}

// ConsumeMessages starts delivering messages of a consumer created with
// CreateConsumer to handler. Messages are acked when handler returns nil
// and nacked otherwise.
func (c *Client) ConsumeMessages(streamName, consumerName string, handler JetStreamMessageHandler) error {
	c.mu.Lock()
	consumer, ok := c.consumers[consumerKey(streamName, consumerName)]
	c.mu.Unlock()
	if !ok {
		return fmt.Errorf("consumer %s not created", consumerKey(streamName, consumerName))
	}

	cc, err := consumer.Consume(ackingHandler(handler))
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	c.mu.Lock()
	c.running = append(c.running, cc)
	c.mu.Unlock()
	return nil
}

// Publish publishes data to a stream subject and waits for the server ack
func (c *Client) Publish(ctx context.Context, subject string, data []byte) error {
	if _, err := c.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// Close stops running consumers and drains the connection
func (c *Client) Close() {
	c.mu.Lock()
	running := c.running
	c.running = nil
	c.mu.Unlock()

	for _, cc := range running {
		cc.Stop()
	}
	if c.conn != nil {
		if err := c.conn.Drain(); err != nil {
			c.conn.Close()
		}
	}
}

func consumerKey(stream, consumer string) string {
	return fmt.Sprintf("%s:%s", stream, consumer)
}
