package http

import (
	"time"

	"go.uber.org/zap"

	"weather-api/pkg/log"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses.
// URLs handed to it never contain the client default query params.
type HTTPLogger interface {
	// LogRequest is called before the request is sent
	LogRequest(method, url string)

	// LogResponseSuccess is called immediately after receiving a 2xx response
	LogResponseSuccess(method, url string, httpStatus int, latency time.Duration, bodySize int)

	// LogResponseError is called after a transport failure (httpStatus 0) or a non 2xx response
	LogResponseError(method, url string, httpStatus int, latency time.Duration, err error)
}

// ZapHTTPLogger writes outbound traffic through pkg/log.
type ZapHTTPLogger struct {
	Name string
}

var _ HTTPLogger = ZapHTTPLogger{}

func (l ZapHTTPLogger) LogRequest(method, url string) {
	log.Debug("Outbound request",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url))
}

func (l ZapHTTPLogger) LogResponseSuccess(method, url string, httpStatus int, latency time.Duration, bodySize int) {
	log.Debug("Outbound response",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Duration("latency", latency),
		zap.Int("body_size", bodySize))
}

func (l ZapHTTPLogger) LogResponseError(method, url string, httpStatus int, latency time.Duration, err error) {
	log.Warn("Outbound request failed",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Duration("latency", latency),
		zap.Error(err))
}
