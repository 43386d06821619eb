// Package constants holds provider names and header keys shared across layers.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Announcer providers
const (
	AnnouncerProviderNoop    = "noop"
	AnnouncerProviderLog     = "log"
	AnnouncerProviderWebhook = "webhook"
	AnnouncerProviderFCM     = "fcm"
)

// HTTP headers
const (
	HeaderRequestID     = "X-Request-Id"
	HeaderAuthorization = "Authorization"
)

