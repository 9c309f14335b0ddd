// Package constants holds identifiers shared between configuration and infrastructure wiring.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Storage drivers selectable through storage.driver.
const (
	StorageDriverPostgres  = "postgres"
	StorageDriverFirestore = "firestore"
	StorageDriverMemory    = "memory"
)
