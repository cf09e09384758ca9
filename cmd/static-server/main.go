package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zestagio/static-server/internal/buildinfo"
	"github.com/zestagio/static-server/internal/config"
	"github.com/zestagio/static-server/internal/console"
	"github.com/zestagio/static-server/internal/fileserver"
	"github.com/zestagio/static-server/internal/logger"
	"github.com/zestagio/static-server/internal/middlewares"
	"github.com/zestagio/static-server/internal/server"
	serverdebug "github.com/zestagio/static-server/internal/server-debug"
	"github.com/zestagio/static-server/internal/server/errhandler"
)

var (
	configPath  = flag.String("config", "", "Path to optional config file")
	port        = flag.Int("port", config.DefaultPort, "Port to listen on")
	root        = flag.String("root", "", "Directory to serve (default: executable directory)")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	if err := run(); err != nil {
		var bindErr *server.BindError
		if errors.As(err, &bindErr) {
			console.PrintError(os.Stderr, bindErr)
			os.Exit(1)
		}
		log.Fatalf("run app: %v", err)
	}
}

func run() error {
	flag.Parse()

	if *showVersion {
		fmt.Println(buildinfo.Version())
		return nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.ParseAndValidate(*configPath, flagOverrides()...)
	if err != nil {
		return fmt.Errorf("parse and validate config %q: %v", *configPath, err)
	}

	logger.MustInit(
		logger.NewOptions(
			cfg.Log.Level,
			logger.WithSentryEnv(cfg.Global.Env),
			logger.WithSentryDSN(cfg.Sentry.DSN),
			logger.WithProductionMode(cfg.Global.IsProduction()),
		),
	)
	defer logger.Sync()

	lg := zap.L().Named("main")

	resolver, err := fileserver.NewResolver(cfg.Servers.Static.Root)
	if err != nil {
		return fmt.Errorf("create resolver: %v", err)
	}

	files, err := fileserver.New(fileserver.NewOptions(
		zap.L().Named("fileserver"),
		resolver,
		fileserver.WithIndexFiles(cfg.Servers.Static.IndexFiles),
		fileserver.WithListing(cfg.Servers.Static.Listing),
	))
	if err != nil {
		return fmt.Errorf("create file handler: %v", err)
	}

	errHandler, err := errhandler.New(errhandler.NewOptions(
		zap.L().Named("errhandler"),
		cfg.Global.IsProduction(),
		errhandler.PageBuilder,
	))
	if err != nil {
		return fmt.Errorf("create error handler: %v", err)
	}

	accessLog := middlewares.NewAccessLog(logger.Access(cfg.Log.Tag))

	srv, err := server.New(server.NewOptions(
		zap.L().Named("server"),
		cfg.Servers.Static.Port,
		files.Serve,
		middlewares.CORSHeaders{},
		accessLog,
		errHandler.Handle,
	))
	if err != nil {
		return fmt.Errorf("init static server: %v", err)
	}

	var srvDebug *serverdebug.Server
	if addr := cfg.Servers.Debug.Addr; addr != "" {
		srvDebug, err = serverdebug.New(serverdebug.NewOptions(addr, cfg.Servers.Static))
		if err != nil {
			return fmt.Errorf("init debug server: %v", err)
		}
	}

	if err := srv.Listen(); err != nil {
		return err
	}

	console.PrintBanner(os.Stdout, console.Banner{
		Name: cfg.Log.Tag,
		Addr: srv.Addr(),
		Root: resolver.Root(),
	})

	eg, ctx := errgroup.WithContext(ctx)

	// Run servers.
	eg.Go(func() error { return srv.Serve(ctx) })

	if srvDebug != nil {
		eg.Go(func() error { return srvDebug.Run(ctx) })
	}

	if err = eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	lg.Debug("servers stopped")
	console.PrintShutdown(os.Stdout, cfg.Log.Tag, accessLog.Served())

	return nil
}

// flagOverrides returns overrides only for flags given on the command line,
// so that defaults do not shadow the config file or the environment.
func flagOverrides() []config.Override {
	var overrides []config.Override
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			overrides = append(overrides, config.WithPort(*port))
		case "root":
			overrides = append(overrides, config.WithRoot(*root))
		}
	})
	return overrides
}
