package nats

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/fleettrack/internal/pkg/constants"
)

func runJetStreamServer(t *testing.T) *server.Server {
	t.Helper()
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	opts.JetStream = true
	opts.StoreDir = t.TempDir()
	s := natsserver.RunServer(&opts)
	t.Cleanup(s.Shutdown)
	return s
}

func TestNewClient_InvalidURL(t *testing.T) {
	client, err := NewClient("nats://127.0.0.1:1")
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to NATS server")
}

func TestNewClient_CreatesDefaultStreams(t *testing.T) {
	s := runJetStreamServer(t)

	client, err := NewClient(s.ClientURL())
	require.NoError(t, err)
	defer client.Close()

	assert.True(t, client.IsConnected())
	streams, err := client.ListStreams(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{constants.StreamRun, constants.StreamLocation}, streams)
}

func TestClient_PublishAndConsume(t *testing.T) {
	s := runJetStreamServer(t)
	client, err := NewClient(s.ClientURL())
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()
	cfg := DefaultConsumerConfigs()[constants.ConsumerRunStartedLocation]
	require.NoError(t, client.CreateConsumer(ctx, cfg))

	received := make(chan []byte, 1)
	require.NoError(t, client.ConsumeMessages(cfg.StreamName, cfg.ConsumerName, func(msg jetstream.Msg) error {
		received <- msg.Data()
		return nil
	}))

	require.NoError(t, PublishJSON(ctx, client, constants.SubjectRunStarted, map[string]string{"run_id": "r1"}))

	select {
	case data := <-received:
		assert.JSONEq(t, `{"run_id":"r1"}`, string(data))
	case <-time.After(5 * time.Second):
		t.Fatal("message not delivered")
	}
}

func TestClient_NakRedelivers(t *testing.T) {
	s := runJetStreamServer(t)
	client, err := NewClient(s.ClientURL())
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()
	cfg := NewConsumerConfigBuilder(constants.StreamRun, "redeliver_test").
		WithSubject(constants.SubjectRunFinished).
		WithMaxDeliver(3).
		Build()
	require.NoError(t, client.CreateConsumer(ctx, cfg))

	var attempts atomic.Int32
	done := make(chan struct{})
	require.NoError(t, client.ConsumeMessages(cfg.StreamName, cfg.ConsumerName, func(msg jetstream.Msg) error {
		if attempts.Add(1) == 1 {
			return errors.New("transient")
		}
		close(done)
		return nil
	}))

	require.NoError(t, client.Publish(ctx, constants.SubjectRunFinished, []byte(`{}`)))

	select {
	case <-done:
		assert.Equal(t, int32(2), attempts.Load())
	case <-time.After(5 * time.Second):
		t.Fatal("message not redelivered")
	}
}

func TestClient_ConsumeUnknownConsumer(t *testing.T) {
	s := runJetStreamServer(t)
	client, err := NewClient(s.ClientURL())
	require.NoError(t, err)
	defer client.Close()

	err = client.ConsumeMessages(constants.StreamRun, "missing", func(jetstream.Msg) error { return nil })
	assert.Error(t, err)
}

func TestGetStreamForSubject(t *testing.T) {
	assert.Equal(t, constants.StreamRun, GetStreamForSubject(constants.SubjectRunStarted))
	assert.Equal(t, constants.StreamRun, GetStreamForSubject(constants.SubjectRunFinished))
	assert.Equal(t, constants.StreamLocation, GetStreamForSubject(constants.SubjectLocationUpdate))
	assert.Empty(t, GetStreamForSubject("unknown"))
}

func TestDefaultConsumerConfigs_MatchStreams(t *testing.T) {
	for name, cfg := range DefaultConsumerConfigs() {
		assert.Equal(t, name, cfg.ConsumerName)
		assert.Equal(t, GetStreamForSubject(cfg.FilterSubject), cfg.StreamName)
	}
}
