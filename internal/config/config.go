package config

import "time"

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultDatabaseURL is empty; must be provided via flag or environment.
	DefaultDatabaseURL = ""

	// DefaultTokenTTL is how long issued access tokens stay valid.
	DefaultTokenTTL = 12 * time.Hour

	// DefaultTokenIssuer identifies tokens minted by this service.
	DefaultTokenIssuer = "newsdesk"

	// DefaultOpenAIModel is the model used for article draft generation.
	DefaultOpenAIModel = "gpt-4o-mini"
)
