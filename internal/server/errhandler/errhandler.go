package errhandler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	internalerrors "github.com/zestagio/static-server/internal/errors"
)

var _ echo.HTTPErrorHandler = Handler{}.Handle

//go:generate options-gen -out-filename=errhandler_options.gen.go -from-struct=Options
type Options struct {
	logger         *zap.Logger                                       `option:"mandatory" validate:"required"`
	productionMode bool                                              `option:"mandatory"`
	pageBuilder    func(code int, msg string, details string) []byte `option:"mandatory" validate:"required"`
}

type Handler struct {
	lg             *zap.Logger
	productionMode bool
	pageBuilder    func(code int, msg string, details string) []byte
}

func New(opts Options) (Handler, error) {
	if err := opts.Validate(); err != nil {
		return Handler{}, fmt.Errorf("validate options: %v", err)
	}

	return Handler{
		lg:             opts.logger,
		productionMode: opts.productionMode,
		pageBuilder:    opts.pageBuilder,
	}, nil
}

func (h Handler) Handle(err error, eCtx echo.Context) {
	if eCtx.Response().Committed {
		return
	}

	code, msg, details := h.processError(err)
	if code < 400 || code > 599 {
		code = http.StatusInternalServerError
	}

	if eCtx.Request().Method == http.MethodHead {
		if err2 := eCtx.NoContent(code); err2 != nil {
			h.lg.Error("error handler no content", zap.Error(err2))
		}
		return
	}

	if err2 := eCtx.HTMLBlob(code, h.pageBuilder(code, msg, details)); err2 != nil {
		h.lg.Error("error handler HTML", zap.Error(err2))
	}
}

func (h Handler) processError(err error) (code int, msg string, details string) {
	code, msg, details = internalerrors.ProcessServerError(err)

	// If production mode is ON method should return only code and message and hide details.
	if h.productionMode {
		details = ""
	}

	return code, msg, details
}
