// Package constants holds identifiers shared by configuration and wiring.
package constants

// EnvLocal is the env.env value for a developer machine.
const EnvLocal = "local"

// Pub/Sub providers.
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
	PubSubProviderNoop   = "noop"
)

// Storage drivers.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Cookie names, kept from the public HTTP contract.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// Mail transports used by the mail worker.
const (
	MailTransportSMTP = "smtp"
	MailTransportLog  = "log"
)
