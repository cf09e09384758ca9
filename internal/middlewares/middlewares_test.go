package middlewares_test

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	internalerrors "github.com/zestagio/static-server/internal/errors"
	"github.com/zestagio/static-server/internal/logger"
	"github.com/zestagio/static-server/internal/middlewares"
	middlewaresmocks "github.com/zestagio/static-server/internal/middlewares/mocks"
)

func TestCORSHeaders_Decorate(t *testing.T) {
	h := make(http.Header)
	middlewares.CORSHeaders{}.Decorate(h)

	assert.Equal(t, "*", h.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", h.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", h.Get("Access-Control-Allow-Headers"))
}

func TestNewResponseDecorator(t *testing.T) {
	cases := []struct {
		name      string
		handler   echo.HandlerFunc
		expStatus int
	}{
		{
			name:      "success",
			handler:   func(eCtx echo.Context) error { return eCtx.String(http.StatusOK, "ok") },
			expStatus: http.StatusOK,
		},
		{
			name:      "not found",
			handler:   func(_ echo.Context) error { return fmt.Errorf("stat: %w", fs.ErrNotExist) },
			expStatus: http.StatusNotFound,
		},
		{
			name:      "internal error",
			handler:   func(_ echo.Context) error { return errors.New("disk on fire") },
			expStatus: http.StatusInternalServerError,
		},
		{
			name:      "panic",
			handler:   func(_ echo.Context) error { panic("boom") },
			expStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.HTTPErrorHandler = func(err error, eCtx echo.Context) {
				_ = eCtx.NoContent(internalerrors.GetServerErrorCode(err))
			}
			e.Use(
				middlewares.NewRecovery(zap.NewNop()),
				middlewares.NewResponseDecorator(middlewares.CORSHeaders{}),
			)
			e.GET("/*", tt.handler)

			resp := httptest.NewRecorder()
			e.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/file.txt", nil))

			assert.Equal(t, tt.expStatus, resp.Code)
			assert.Equal(t, middlewares.CORSAllowOrigin, resp.Header().Get(echo.HeaderAccessControlAllowOrigin))
			assert.Equal(t, middlewares.CORSAllowMethods, resp.Header().Get(echo.HeaderAccessControlAllowMethods))
			assert.Equal(t, middlewares.CORSAllowHeaders, resp.Header().Get(echo.HeaderAccessControlAllowHeaders))
		})
	}
}

func TestNewResponseDecorator_Mock(t *testing.T) {
	ctrl := gomock.NewController(t)
	decorator := middlewaresmocks.NewMockResponseDecorator(ctrl)
	decorator.EXPECT().Decorate(gomock.Any()).Do(func(h http.Header) {
		h.Set("X-Decorated", "yes")
	})

	e := echo.New()
	e.Use(middlewares.NewResponseDecorator(decorator))
	e.GET("/", func(eCtx echo.Context) error { return eCtx.NoContent(http.StatusNoContent) })

	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "yes", resp.Header().Get("X-Decorated"))
}

func TestNewRequestLogger_CallsAccessLoggerOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	accessLogger := middlewaresmocks.NewMockAccessLogger(ctrl)

	var got middleware.RequestLoggerValues
	accessLogger.EXPECT().LogRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ echo.Context, v middleware.RequestLoggerValues) error {
			got = v
			return nil
		}).Times(1)

	e := echo.New()
	e.Use(middlewares.NewRequestLogger(accessLogger))
	e.GET("/*", func(_ echo.Context) error { return echo.ErrNotFound })

	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/missing?x=1", nil))

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/missing?x=1", got.URI)
	assert.Equal(t, http.StatusNotFound, got.Status)
	assert.Equal(t, "HTTP/1.1", got.Protocol)
}

func TestAccessLog_LogRequest(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	accessLog := middlewares.NewAccessLog(zap.New(core).Named("static-server"))

	e := echo.New()
	e.Use(
		middlewares.NewRequestID(),
		middlewares.NewRequestLogger(accessLog),
	)
	e.GET("/ok", func(eCtx echo.Context) error { return eCtx.String(http.StatusOK, "ok") })
	e.GET("/fail", func(_ echo.Context) error { return errors.New("read failed") })

	for _, target := range []string{"/ok", "/missing", "/fail"} {
		resp := httptest.NewRecorder()
		e.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, target, nil))
	}

	require.Equal(t, 3, logs.Len())
	assert.EqualValues(t, 3, accessLog.Served())

	entries := logs.All()

	assert.Equal(t, "GET /ok HTTP/1.1 200", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "static-server", entries[0].LoggerName)

	assert.Equal(t, "GET /missing HTTP/1.1 404", entries[1].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)

	assert.Equal(t, "GET /fail HTTP/1.1 500", entries[2].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)

	for _, entry := range entries {
		fields := entry.ContextMap()
		assert.Contains(t, fields, "remote_ip")
		assert.Contains(t, fields, "latency")

		rid, ok := fields["request_id"].(string)
		require.True(t, ok)
		_, err := uuid.Parse(rid)
		assert.NoError(t, err)
	}
}

func TestAccessLog_LineForEveryRequestAtWarnLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, logger.Init(logger.NewOptions("warn", logger.WithOutput(buf))))

	accessLog := middlewares.NewAccessLog(logger.Access("static-server"))

	e := echo.New()
	e.Use(middlewares.NewRequestLogger(accessLog))
	e.GET("/*", func(eCtx echo.Context) error { return eCtx.String(http.StatusOK, "ok") })

	for _, target := range []string{"/a.txt", "/b.txt", "/c.txt"} {
		resp := httptest.NewRecorder()
		e.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusOK, resp.Code)
	}

	assert.EqualValues(t, 3, accessLog.Served())
	assert.Equal(t, 3, strings.Count(buf.String(), "[static-server]"))
	assert.Contains(t, buf.String(), "GET /c.txt HTTP/1.1 200")
}

func TestNewRequestID_KeepsClientID(t *testing.T) {
	e := echo.New()
	e.Use(middlewares.NewRequestID())
	e.GET("/", func(eCtx echo.Context) error { return eCtx.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "client-id")
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)

	assert.Equal(t, "client-id", resp.Header().Get(echo.HeaderXRequestID))
}

func TestNewRecovery(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)

	e := echo.New()
	e.Use(middlewares.NewRecovery(zap.New(core)))
	e.GET("/", func(_ echo.Context) error { panic("boom") })

	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "panic recovered", logs.All()[0].Message)
	assert.True(t, strings.Contains(logs.All()[0].ContextMap()["error"].(string), "boom"))
}
