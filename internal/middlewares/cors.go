package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/decorator_mock.gen.go -package=middlewaresmocks ResponseDecorator

// ResponseDecorator amends the headers of every response, including error responses.
type ResponseDecorator interface {
	Decorate(h http.Header)
}

const (
	CORSAllowOrigin  = "*"
	CORSAllowMethods = "GET, POST, OPTIONS"
	CORSAllowHeaders = "Content-Type"
)

var _ ResponseDecorator = CORSHeaders{}

// CORSHeaders unconditionally allows cross-origin access to any resource.
type CORSHeaders struct{}

func (CORSHeaders) Decorate(h http.Header) {
	h.Set(echo.HeaderAccessControlAllowOrigin, CORSAllowOrigin)
	h.Set(echo.HeaderAccessControlAllowMethods, CORSAllowMethods)
	h.Set(echo.HeaderAccessControlAllowHeaders, CORSAllowHeaders)
}

// NewResponseDecorator applies d before the rest of the chain runs,
// so the headers survive into whatever the handler or the error handler writes.
func NewResponseDecorator(d ResponseDecorator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(eCtx echo.Context) error {
			d.Decorate(eCtx.Response().Header())
			return next(eCtx)
		}
	}
}
