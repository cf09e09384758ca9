package serverdebug

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zestagio/static-server/internal/buildinfo"
	"github.com/zestagio/static-server/internal/logger"
	"github.com/zestagio/static-server/internal/middlewares"
)

const (
	readHeaderTimeout = time.Second
	shutdownTimeout   = 3 * time.Second
)

//go:generate options-gen -out-filename=server_options.gen.go -from-struct=Options
type Options struct {
	addr     string `option:"mandatory" validate:"required,hostname_port"`
	settings any    `option:"mandatory"`
}

type Server struct {
	lg       *zap.Logger
	srv      *http.Server
	settings any
}

func New(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	lg := zap.L().Named("server-debug")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(
		middlewares.NewRequestLogger(middlewares.NewAccessLog(lg)),
		middlewares.NewRecovery(lg),
	)

	s := &Server{
		lg: lg,
		srv: &http.Server{
			Addr:              opts.addr,
			Handler:           e,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		settings: opts.settings,
	}
	index := newIndexPage()

	e.GET("/version", s.Version)
	index.addPage("/version", "Get build information")

	e.GET("/config", s.Config)
	index.addPage("/config", "Get effective configuration")

	e.GET("/log/level", echo.WrapHandler(logger.Level))
	e.PUT("/log/level", echo.WrapHandler(logger.Level))

	{
		pprofMux := http.NewServeMux()
		pprofMux.HandleFunc("/debug/pprof/", pprof.Index)
		pprofMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		pprofMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		pprofMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		pprofMux.HandleFunc("/debug/pprof/trace", pprof.Trace)

		e.GET("/debug/pprof/*", echo.WrapHandler(pprofMux))
		index.addPage("/debug/pprof/", "Go std profiler")
		index.addPage("/debug/pprof/profile?seconds=30", "Take half-min profile")
	}

	e.GET("/", index.handler)
	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(
		func() error {
			<-ctx.Done()

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			err := s.srv.Shutdown(ctx) //nolint:contextcheck // graceful shutdown with new context
			if errors.Is(err, context.DeadlineExceeded) {
				// Long pprof profiles are cut off.
				s.lg.Warn("shutdown timed out, closing connections")
				return s.srv.Close()
			}
			return err
		},
	)

	eg.Go(
		func() error {
			s.lg.Info("listen and serve", zap.String("addr", s.srv.Addr))

			if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen and serve: %v", err)
			}
			return nil
		},
	)

	return eg.Wait()
}

func (s *Server) Version(eCtx echo.Context) error {
	return eCtx.JSON(http.StatusOK, struct {
		Version string `json:"version"`
		Go      string `json:"go"`
		Path    string `json:"path"`
	}{
		Version: buildinfo.Version(),
		Go:      buildinfo.BuildInfo.GoVersion,
		Path:    buildinfo.BuildInfo.Path,
	})
}

func (s *Server) Config(eCtx echo.Context) error {
	return eCtx.JSON(http.StatusOK, s.settings)
}
