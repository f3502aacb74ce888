package config

import "time"

// app constants
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	AppName        = "kadry"
	AppDescription = "HR and payroll notice board: news, application forms and contacts"
	Version        = "0.3.0"
)

// file constants
const (
	ConfigFile = "kadry.yaml"
	EnvFile    = ".env"
	EnvPrefix  = "KADRY"
)

// articles constants
const (
	DefaultFeedTimeout = 10 * time.Second

	DateLayout = "02.01.2006"
)

// ui constants
const (
	DefaultMenuEnabled = true
)

// shutdown constants
const (
	TelemetryFlushTimeout = 2 * time.Second
)
