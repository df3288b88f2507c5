package retry

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"syscall"

	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

// HTTPErrorClassifier implements erpbrain.ErrorClassifier for calls to the
// query service. Server errors, throttling and network failures are
// transient; other client errors are fatal.
type HTTPErrorClassifier struct{}

// NewHTTPErrorClassifier creates a new HTTP error classifier.
func NewHTTPErrorClassifier() *HTTPErrorClassifier {
	return &HTTPErrorClassifier{}
}

// IsTransient determines if an error is temporary and retryable.
func (c *HTTPErrorClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}

	// the caller gave up; retrying cannot help
	if errors.Is(err, context.Canceled) {
		return false
	}

	var qe *erpbrain.QueryError
	if errors.As(err, &qe) {
		return isTransientStatus(qe.Status)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	if c.isNetworkError(err) {
		return true
	}

	return c.isConnectionError(err)
}

func isTransientStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests, http.StatusRequestTimeout:
		return true
	}
	return status >= 500
}

func (c *HTTPErrorClassifier) isNetworkError(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.IsTemporary || dnsErr.IsTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Err != nil {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED) ||
			errors.Is(opErr.Err, syscall.ECONNRESET) ||
			errors.Is(opErr.Err, syscall.ENETUNREACH) ||
			errors.Is(opErr.Err, syscall.EHOSTUNREACH)
	}

	return false
}

// isConnectionError falls back to message matching for errors that lost
// their type on the way up.
func (c *HTTPErrorClassifier) isConnectionError(err error) bool {
	msg := strings.ToLower(err.Error())

	transientPatterns := []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"i/o timeout",
		"network is unreachable",
		"server closed idle connection",
		"unexpected eof",
		"tls handshake timeout",
	}

	for _, pattern := range transientPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
