package middlewares

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/access_logger_mock.gen.go -package=middlewaresmocks AccessLogger

// AccessLogger receives one call per request once the response has been written.
type AccessLogger interface {
	LogRequest(eCtx echo.Context, v middleware.RequestLoggerValues) error
}

func NewRequestLogger(l AccessLogger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogValuesFunc: l.LogRequest,
		LogLatency:    true,
		LogProtocol:   true,
		LogRemoteIP:   true,
		LogHost:       true,
		LogMethod:     true,
		LogURI:        true,
		LogRequestID:  true,
		LogUserAgent:  true,
		LogStatus:     true,
		LogError:      true,
		HandleError:   true,
	})
}

var _ AccessLogger = (*AccessLog)(nil)

// AccessLog writes access lines through a named zap logger and counts them.
type AccessLog struct {
	lg     *zap.Logger
	served atomic.Int64
}

func NewAccessLog(lg *zap.Logger) *AccessLog {
	return &AccessLog{lg: lg}
}

func (l *AccessLog) LogRequest(_ echo.Context, v middleware.RequestLoggerValues) error {
	l.served.Inc()

	lg := l.lg.With(
		zap.String("remote_ip", v.RemoteIP),
		zap.String("host", v.Host),
		zap.Duration("latency", v.Latency),
		zap.String("request_id", v.RequestID),
		zap.String("user_agent", v.UserAgent),
	)

	if err := v.Error; err != nil {
		lg = lg.With(zap.Error(err))
	}

	msg := fmt.Sprintf("%s %s %s %d", v.Method, v.URI, v.Protocol, v.Status)

	switch s := v.Status; {
	case s >= 500:
		lg.Error(msg)
	case s >= 400:
		lg.Warn(msg)
	default:
		lg.Info(msg)
	}

	return nil
}

// Served returns the number of requests logged so far.
func (l *AccessLog) Served() int64 {
	return l.served.Load()
}
