package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"syscall"
)

// Kind classifies a transport failure.
type Kind string

const (
	KindNetwork Kind = "NETWORK"
	KindTimeout Kind = "TIMEOUT"
	KindHTTP    Kind = "HTTP"
	KindUnknown Kind = "UNKNOWN"
)

// Error is a transport failure classified once at the boundary.
type Error struct {
	Kind       Kind
	Message    string
	Provider   string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.Provider == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether another attempt may succeed.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindNetwork, KindTimeout:
		return true
	case KindHTTP:
		return e.StatusCode == 429 || e.StatusCode >= 500
	default:
		return false
	}
}

// AsError unwraps err into a classified transport error.
func AsError(err error) (*Error, bool) {
	var terr *Error
	if errors.As(err, &terr) {
		return terr, true
	}
	return nil, false
}

var (
	statusLinePattern = regexp.MustCompile(`^HTTP (\d{3})\b`)
	networkPattern    = regexp.MustCompile(`(?i)network|connection|dial|no such host|eof|reset by peer|broken pipe`)
)

// Classify maps any error onto the transport taxonomy. Already classified
// errors pass through, picking up provider when they lack one.
func Classify(err error, provider string) *Error {
	if err == nil {
		return nil
	}
	if terr, ok := AsError(err); ok {
		if terr.Provider != "" || provider == "" {
			return terr
		}
		clone := *terr
		clone.Provider = provider
		return &clone
	}

	out := &Error{Kind: KindUnknown, Message: err.Error(), Provider: provider, Err: err}

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		out.Kind = KindTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		out.Kind = KindTimeout
	case statusLinePattern.MatchString(err.Error()):
		out.Kind = KindHTTP
		out.StatusCode, _ = strconv.Atoi(statusLinePattern.FindStringSubmatch(err.Error())[1])
	case isNetworkError(err):
		out.Kind = KindNetwork
	}
	return out
}

func isNetworkError(err error) bool {
	var opErr *net.OpError
	var urlErr *url.Error
	var dnsErr *net.DNSError
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) || errors.As(err, &urlErr) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	return networkPattern.MatchString(strings.ToLower(err.Error()))
}

// httpStatusError builds the non-2xx failure carrying the status line.
func httpStatusError(provider, rawURL string, status int, statusText string) *Error {
	return &Error{
		Kind:       KindHTTP,
		Message:    fmt.Sprintf("HTTP %d %s for %s", status, statusText, rawURL),
		Provider:   provider,
		StatusCode: status,
	}
}
