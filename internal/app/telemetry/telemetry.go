//go:generate mockgen -source=telemetry.go -destination=telemetry_mock.go -package=telemetry
package telemetry

import (
	"time"

	"github.com/getsentry/sentry-go"

	"kadry/internal/config"
	"kadry/internal/config/logger"
)

// Reporter forwards unexpected errors to an error tracker
type Reporter interface {
	Capture(err error)
	Flush()
}

type sentryReporter struct {
	hub     *sentry.Hub
	timeout time.Duration
}

type nopReporter struct{}

// NewReporter returns a Sentry backed reporter when a DSN is configured and a no-op otherwise
func NewReporter(cfg *config.Config, log logger.Logger) Reporter {
	if cfg.Telemetry.DSN == "" {
		return nopReporter{}
	}

	reporter, err := newSentryReporter(sentry.ClientOptions{
		Dsn:     cfg.Telemetry.DSN,
		Release: "kadry@" + config.Version,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize error reporting, continuing without it")
		return nopReporter{}
	}

	return reporter
}

func newSentryReporter(opts sentry.ClientOptions) (*sentryReporter, error) {
	client, err := sentry.NewClient(opts)
	if err != nil {
		return nil, err
	}

	return &sentryReporter{
		hub:     sentry.NewHub(client, sentry.NewScope()),
		timeout: config.TelemetryFlushTimeout,
	}, nil
}

func (r *sentryReporter) Capture(err error) {
	if err == nil {
		return
	}

	r.hub.CaptureException(err)
}

func (r *sentryReporter) Flush() {
	r.hub.Flush(r.timeout)
}

func (nopReporter) Capture(error) {}

func (nopReporter) Flush() {}
