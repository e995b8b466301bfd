package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	OverviewTimeout    = 30 * time.Second
)

const (
	DefaultPollInterval = 1 * time.Minute
	MinPollInterval     = 5 * time.Second
)

const (
	ShutdownTimeout = 5 * time.Second
	SentryFlushWait = 2 * time.Second
)
