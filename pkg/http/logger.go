package http

import (
	"go.uber.org/zap"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponse is called after a response was read, whatever its status
	LogResponse(method, url string, httpStatus int, responseBody string, latency int64)

	// LogError is called when the request could not be exchanged at all
	LogError(method, url string, latency int64, err error)
}

type nopLogger struct{}

func (nopLogger) LogRequest(string, string, map[string]string, string) {}
func (nopLogger) LogResponse(string, string, int, string, int64) {}
func (nopLogger) LogError(string, string, int64, error) {}

// ZapLogger writes HTTP exchanges to a zap logger at debug level, errors at warn level.
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger creates an HTTPLogger backed by logger.
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger.Named("http")}
}

func (l *ZapLogger) LogRequest(method, url string, headers map[string]string, body string) {
	l.logger.Debug("http request",
		zap.String("method", method),
		zap.String("url", url),
		zap.Any("headers", headers),
		zap.String("body", body),
	)
}

func (l *ZapLogger) LogResponse(method, url string, httpStatus int, responseBody string, latency int64) {
	l.logger.Debug("http response",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int("body_size", len(responseBody)),
		zap.Int64("latency_ms", latency),
	)
}

func (l *ZapLogger) LogError(method, url string, latency int64, err error) {
	l.logger.Warn("http request failed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int64("latency_ms", latency),
		zap.Error(err),
	)
}
