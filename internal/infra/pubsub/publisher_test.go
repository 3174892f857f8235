package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tracker/config"
	"tracker/internal/domain/constants"
	"tracker/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/pubsub"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.TrackEvent {
	return &service.TrackEvent{
		RequestID:  "req-1",
		Type:       service.TrackEventJoined,
		UserID:     "user-1",
		TrackID:    "track-1",
		Label:      "Track_1",
		Moved:      5,
		OccurredAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestGoCloudPublisher_PublishTrackEvent(t *testing.T) {
	ctx := context.Background()
	const topicURL = "mem://track-events-test"

	publisher, err := NewGoCloudPublisher(ctx, topicURL, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = publisher.Close() })

	sub, err := pubsub.OpenSubscription(ctx, topicURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sub.Shutdown(ctx) })

	require.NoError(t, publisher.PublishTrackEvent(ctx, sampleEvent()))

	receiveCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	msg, err := sub.Receive(receiveCtx)
	require.NoError(t, err)
	msg.Ack()

	var got service.TrackEvent
	require.NoError(t, json.Unmarshal(msg.Body, &got))
	assert.Equal(t, service.TrackEventJoined, got.Type)
	assert.Equal(t, int64(5), got.Moved)
	assert.Equal(t, "track.joined", msg.Metadata["type"])
	assert.Equal(t, "req-1", msg.Metadata["request_id"])
}

func TestLocalHTTPPublisher_PublishTrackEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishTrackEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localPushSubscription, received.Subscription)
	assert.Equal(t, "track-1", received.Message.Attributes["track_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var got service.TrackEvent
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "Track_1", got.Label)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishTrackEvent(context.Background(), sampleEvent())
	assert.ErrorContains(t, err, "non-success status: 500")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.PubSubConfig
		wantNoop  bool
		wantError string
	}{
		{name: "not configured", cfg: nil, wantNoop: true},
		{name: "empty provider", cfg: &config.PubSubConfig{}, wantNoop: true},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantError: "local endpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, wantError: "project ID is required"},
		{name: "gocloud without url", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoCloud}, wantError: "topic URL is required"},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantError: "unknown pubsub provider"},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9999/push"}},
		{name: "gocloud", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoCloud, TopicURL: "mem://provider-test"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})

			if tt.wantError != "" {
				assert.ErrorContains(t, err, tt.wantError)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, publisher)
			_, isNoop := publisher.(*noopPublisher)
			assert.Equal(t, tt.wantNoop, isNoop)

			lc.RequireStart().RequireStop()
		})
	}
}
