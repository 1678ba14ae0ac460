// Package httpclient builds the shared resty client used by the Pontoon and
// GitHub fetchers, and defines the error types both of them return.
package httpclient

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "missinglocales"

// Options configures a client created by New.
type Options struct {
	// Timeout bounds a whole request. Zero means no timeout, which matches
	// the behaviour of the default net/http client.
	Timeout   time.Duration
	UserAgent string
	Logger    *slog.Logger
}

// New creates a resty client. The client never retries.
func New(opts Options) *resty.Client {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	c := resty.New().
		SetHeader("User-Agent", userAgent).
		SetLogger(slogAdapter{logger: logger}).
		SetRetryCount(0)
	if opts.Timeout > 0 {
		c.SetTimeout(opts.Timeout)
	}

	c.OnAfterResponse(func(_ *resty.Client, r *resty.Response) error {
		logger.Debug("HTTP response received",
			"method", r.Request.Method,
			"url", r.Request.URL,
			"status", r.StatusCode(),
			"duration", r.Time(),
		)
		return nil
	})
	return c
}

// slogAdapter satisfies resty.Logger on top of slog.
type slogAdapter struct {
	logger *slog.Logger
}

func (a slogAdapter) Errorf(format string, v ...interface{}) {
	a.logger.Error(fmt.Sprintf(format, v...))
}

func (a slogAdapter) Warnf(format string, v ...interface{}) {
	a.logger.Warn(fmt.Sprintf(format, v...))
}

func (a slogAdapter) Debugf(format string, v ...interface{}) {
	a.logger.Debug(fmt.Sprintf(format, v...))
}
