package logger

import (
	"github.com/getsentry/sentry-go"
)

// NewSentryClient creates a client; a nil transport means the default HTTP one.
func NewSentryClient(dsn, env, version string, transport sentry.Transport) (*sentry.Client, error) {
	return sentry.NewClient(sentry.ClientOptions{
		Dsn:              dsn,
		Release:          version,
		Environment:      env,
		AttachStacktrace: true,
		Transport:        transport,
	})
}
