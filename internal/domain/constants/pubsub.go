package constants

// Pub/Sub provider names accepted in the pubsub.provider config key.
const (
	PubSubProviderLocal   = "local"
	PubSubProviderGoogle  = "google"
	PubSubProviderGoCloud = "gocloud"
)
