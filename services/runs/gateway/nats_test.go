package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/fleettrack/internal/pkg/constants"
	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/models"
	natspkg "github.com/piresc/fleettrack/internal/pkg/nats"
	"github.com/piresc/fleettrack/internal/pkg/retry"
)

type flakyPublisher struct {
	failures int
	calls    int
	subject  string
	data     []byte
}

func (p *flakyPublisher) Publish(_ context.Context, subject string, data []byte) error {
	p.calls++
	if p.calls <= p.failures {
		return errors.New("nats: timeout")
	}
	p.subject = subject
	p.data = data
	return nil
}

func testRetrier(t *testing.T, maxRetries int) *retry.Retrier {
	t.Helper()
	zl, err := logger.NewZapLogger(logger.ZapConfig{Level: "error", Output: &bytes.Buffer{}}, nil)
	require.NoError(t, err)
	cfg := retry.DefaultConfig()
	cfg.MaxRetries = maxRetries
	cfg.BaseDelay = time.Millisecond
	return retry.New(cfg, zl)
}

func TestPublishRunStarted_RetriesTransientFailures(t *testing.T) {
	pub := &flakyPublisher{failures: 2}
	gw := NewNATSGateway(pub, testRetrier(t, 3))

	event := models.RunStartedEvent{
		RunID:      "run-1",
		VehicleID:  "ABC-1234",
		Mileage:    120,
		StopPoints: []models.StopPoint{"SOLDA"},
	}
	require.NoError(t, gw.PublishRunStarted(context.Background(), event))

	assert.Equal(t, 3, pub.calls)
	assert.Equal(t, constants.SubjectRunStarted, pub.subject)

	var got models.RunStartedEvent
	require.NoError(t, json.Unmarshal(pub.data, &got))
	assert.Equal(t, event.RunID, got.RunID)
	assert.Equal(t, event.StopPoints, got.StopPoints)
}

func TestPublishRunFinished_GivesUp(t *testing.T) {
	pub := &flakyPublisher{failures: 10}
	gw := NewNATSGateway(pub, testRetrier(t, 1))

	err := gw.PublishRunFinished(context.Background(), models.RunFinishedEvent{RunID: "run-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), constants.SubjectRunFinished)
	assert.Equal(t, 2, pub.calls)
}

func TestPublishRunStarted_JetStream(t *testing.T) {
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	opts.JetStream = true
	opts.StoreDir = t.TempDir()
	s := natsserver.RunServer(&opts)
	defer s.Shutdown()

	client, err := natspkg.NewClient(s.ClientURL())
	require.NoError(t, err)
	defer client.Close()

	sub, err := client.GetConn().SubscribeSync(constants.SubjectRunStarted)
	require.NoError(t, err)

	gw := NewNATSGateway(client, testRetrier(t, 0))
	require.NoError(t, gw.PublishRunStarted(context.Background(), models.RunStartedEvent{RunID: "run-7"}))

	msg, err := sub.NextMsg(2 * time.Second)
	require.NoError(t, err)
	assert.Contains(t, string(msg.Data), `"run_id":"run-7"`)
}
