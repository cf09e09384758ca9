package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zestagio/static-server/internal/middlewares"
)

const readHeaderTimeout = time.Second

//go:generate options-gen -out-filename=server_options.gen.go -from-struct=Options
type Options struct {
	logger       *zap.Logger                   `option:"mandatory" validate:"required"`
	port         int                           `option:"mandatory" validate:"gte=0,lte=65535"`
	fileHandler  echo.HandlerFunc              `option:"mandatory" validate:"required"`
	decorator    middlewares.ResponseDecorator `option:"mandatory" validate:"required"`
	accessLogger middlewares.AccessLogger      `option:"mandatory" validate:"required"`
	errHandler   echo.HTTPErrorHandler         `option:"mandatory" validate:"required"`
	host         string
}

// BindError means the listening socket could not be opened.
type BindError struct {
	Port int
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("cannot listen on port %d: %v", e.Port, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// Hint suggests how to get the port free.
func (e *BindError) Hint() string {
	switch {
	case errors.Is(e.Err, syscall.EADDRINUSE):
		return fmt.Sprintf("port %d is already in use: try another port or stop the process using port %d", e.Port, e.Port)
	case errors.Is(e.Err, syscall.EACCES):
		return fmt.Sprintf("permission denied for port %d: choose a port above 1023 or run with more privileges", e.Port)
	default:
		return fmt.Sprintf("check that port %d is valid and free", e.Port)
	}
}

type Server struct {
	lg   *zap.Logger
	addr string
	port int
	srv  *http.Server
	ln   net.Listener
}

func New(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = opts.errHandler
	e.Use(
		middlewares.NewRequestID(),
		middlewares.NewRequestLogger(opts.accessLogger),
		middlewares.NewRecovery(opts.logger),
		middlewares.NewResponseDecorator(opts.decorator),
	)
	e.Any("/*", opts.fileHandler)

	return &Server{
		lg:   opts.logger,
		addr: net.JoinHostPort(opts.host, strconv.Itoa(opts.port)),
		port: opts.port,
		srv: &http.Server{
			Handler:           e,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

// Listen binds the TCP socket. It never retries; failures are *BindError.
func (s *Server) Listen() error {
	if s.ln != nil {
		return nil
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return &BindError{Port: s.port, Err: err}
	}
	s.ln = ln

	return nil
}

// Addr is the bound address, nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Serve accepts connections until ctx is done, then waits for in-flight requests
// without a deadline.
func (s *Server) Serve(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		<-ctx.Done()

		if err := s.srv.Shutdown(context.WithoutCancel(ctx)); err != nil {
			return fmt.Errorf("shutdown: %v", err)
		}
		return nil
	})

	eg.Go(func() error {
		s.lg.Debug("serve", zap.Stringer("addr", s.ln.Addr()))

		if err := s.srv.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %v", err)
		}
		return nil
	})

	return eg.Wait()
}
