package config

import "time"

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultLogLevel is used when LOG_LEVEL is not set.
	DefaultLogLevel = "info"

	// DefaultLogFormat is used when LOG_FORMAT is not set.
	DefaultLogFormat = "json"

	// SiteTitle is the <title> of the landing page.
	SiteTitle = "Teamwise HR: People operations, simplified"
)

// HTTP server timeouts.
const (
	ReadTimeout       = 15 * time.Second
	WriteTimeout      = 30 * time.Second
	IdleTimeout       = 60 * time.Second
	ReadHeaderTimeout = 5 * time.Second
	ShutdownTimeout   = 10 * time.Second
)
