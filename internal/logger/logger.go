package logger

import (
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"syscall"

	"github.com/TheZeroSlave/zapsentry"
	"github.com/getsentry/sentry-go"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zestagio/static-server/internal/buildinfo"
)

// Level is shared by every logger built through Init and can be changed at runtime.
var Level = zap.NewAtomicLevel()

var accessLogger = atomic.NewPointer(zap.NewNop())

//go:generate options-gen -out-filename=logger_options.gen.go -from-struct=Options
type Options struct {
	level           string `option:"mandatory" validate:"required,oneof=debug info warn error"`
	productionMode  bool
	sentryDSN       string `validate:"omitempty,url"`
	sentryEnv       string
	sentryTransport sentry.Transport
	output          io.Writer
}

func MustInit(opts Options) {
	if err := Init(opts); err != nil {
		panic(err)
	}
}

func Init(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("validate options: %v", err)
	}

	lvl, err := zapcore.ParseLevel(opts.level)
	if err != nil {
		return fmt.Errorf("invalid logger level: %v", err)
	}
	Level.SetLevel(lvl)

	encoder := zapcore.NewConsoleEncoder
	encoderCfg := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		NameKey:        "component",
		TimeKey:        "T",
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     encodeTag,
	}

	if opts.productionMode {
		encoder = zapcore.NewJSONEncoder
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderCfg.EncodeName = zapcore.FullNameEncoder
	}

	var out zapcore.WriteSyncer = os.Stdout
	if opts.output != nil {
		out = zapcore.AddSync(opts.output)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder(encoderCfg), out, Level),
	}

	// Access lines are written regardless of Level and never reach Sentry.
	accessLogger.Store(zap.New(zapcore.NewCore(encoder(encoderCfg), out, zapcore.DebugLevel)))

	if opts.sentryDSN != "" {
		client, err := NewSentryClient(opts.sentryDSN, opts.sentryEnv, buildinfo.Version(), opts.sentryTransport)
		if err != nil {
			return fmt.Errorf("create sentry client: %v", err)
		}

		cfg := zapsentry.Configuration{
			Level: zapcore.WarnLevel,
			Tags: map[string]string{
				"component": "system",
			},
		}
		core, err := zapsentry.NewCore(cfg, zapsentry.NewSentryClientFromClient(client))
		if err != nil {
			return fmt.Errorf("create sentry core: %v", err)
		}
		cores = append(cores, core)
	}

	l := zap.New(zapcore.NewTee(cores...))
	zap.ReplaceGlobals(l)

	return nil
}

// Access returns the logger for per-request access lines, named with tag.
func Access(tag string) *zap.Logger {
	return accessLogger.Load().Named(tag)
}

func Sync() {
	if err := accessLogger.Load().Sync(); err != nil && !errors.Is(err, syscall.ENOTTY) && !errors.Is(err, syscall.EINVAL) {
		stdlog.Printf("cannot sync access logger: %v", err)
	}
	if err := zap.L().Sync(); err != nil && !errors.Is(err, syscall.ENOTTY) && !errors.Is(err, syscall.EINVAL) {
		stdlog.Printf("cannot sync logger: %v", err)
	}
}

// encodeTag renders the logger name as a bracketed prefix, e.g. "[static-server]".
func encodeTag(name string, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + name + "]")
}
