package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	internalerrors "github.com/zestagio/static-server/internal/errors"
)

func NewRecovery(lg *zap.Logger) echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		LogErrorFunc: func(eCtx echo.Context, err error, stack []byte) error {
			lg.With(
				zap.Error(err),
				zap.String("path", eCtx.Request().URL.Path),
				zap.String("request_id", eCtx.Response().Header().Get(echo.HeaderXRequestID)),
				zap.String("stack", string(stack)),
			).Error("panic recovered")
			return internalerrors.NewServerError(http.StatusInternalServerError, "panic while serving", err)
		},
	})
}
