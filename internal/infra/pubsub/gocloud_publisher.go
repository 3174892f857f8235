package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"tracker/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/pubsub"
	_ "gocloud.dev/pubsub/mempubsub" // registers mem://
)

// goCloudPublisher implements EventPublisher on a portable gocloud.dev topic.
type goCloudPublisher struct {
	topic  *pubsub.Topic
	logger *slog.Logger
}

// NewGoCloudPublisher opens the topic named by topicURL, e.g. "mem://track-events".
func NewGoCloudPublisher(ctx context.Context, topicURL string, logger *slog.Logger) (service.EventPublisher, error) {
	topic, err := pubsub.OpenTopic(ctx, topicURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open topic %s", topicURL)
	}

	logger.Info("gocloud Pub/Sub publisher initialized", slog.String("topic_url", topicURL))

	return &goCloudPublisher{
		topic:  topic,
		logger: logger,
	}, nil
}

// PublishTrackEvent sends the event as a JSON message.
func (p *goCloudPublisher) PublishTrackEvent(ctx context.Context, event *service.TrackEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := p.topic.Send(ctx, &pubsub.Message{
		Body:     data,
		Metadata: eventAttributes(event),
	}); err != nil {
		return errors.Wrap(err, "failed to send track event")
	}

	p.logger.Debug("[GoCloudPubSub] Event published",
		slog.String("type", string(event.Type)),
		slog.String("track_id", event.TrackID),
	)

	return nil
}

// Close flushes and shuts the topic down.
func (p *goCloudPublisher) Close() error {
	return errors.WithStack(p.topic.Shutdown(context.Background()))
}
