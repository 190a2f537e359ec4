// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider identifiers used in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Environment names used in configuration.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
