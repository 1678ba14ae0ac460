package httpclient

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

// maxBodyInError caps how much of a response body is quoted in an error.
const maxBodyInError = 512

// StatusError is returned when a remote service answers with a non-2xx status.
type StatusError struct {
	Service    string
	URL        string
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s returned %s; body: %s", e.Service, e.URL, e.Status, e.Body)
}

// DecodeError is returned when a response body does not have the expected shape.
type DecodeError struct {
	Service string
	Reason  string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: decode response: %s: %v", e.Service, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: decode response: %s", e.Service, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// CheckStatus converts a non-2xx response into a *StatusError.
func CheckStatus(service string, r *resty.Response) error {
	if r.IsSuccess() {
		return nil
	}
	return &StatusError{
		Service:    service,
		URL:        r.Request.URL,
		StatusCode: r.StatusCode(),
		Status:     r.Status(),
		Body:       abbreviate(r.String(), maxBodyInError),
	}
}

// abbreviate shortens s to at most n bytes without splitting a rune.
func abbreviate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
