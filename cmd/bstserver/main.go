package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/eaugeas/linkedbst/config"
	"github.com/eaugeas/linkedbst/container/tree"
	"github.com/eaugeas/linkedbst/logs"
	"github.com/eaugeas/linkedbst/rpcs"
	"github.com/eaugeas/linkedbst/service"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	Log    config.LogConfig
	Server config.ServerConfig
}

func (c *Config) Use() string {
	return "serves a binary search tree of strings over http"
}

func (c *Config) EnvPrefix() string {
	return "bstserver"
}

func (c *Config) Binders() []config.Binder {
	return []config.Binder{&c.Log, &c.Server}
}

func newRouter(cfg *Config, logger logs.Logger) *rpcs.Router {
	binder := rpcs.NewBinder(rpcs.BinderProps{
		Encoder:    rpcs.JsonEncoder{},
		Logger:     logger,
		Middleware: rpcs.JsonMiddlewareFactory(logger, cfg.Server.BodyLimit),
	})

	binder.Use(rpcs.NewCorsPreProcessor(rpcs.CorsProps{
		Enabled:        cfg.Server.Cors.Enabled,
		AllowedOrigins: cfg.Server.Cors.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", rpcs.TraceIDHeader},
		MaxAge:         cfg.Server.Cors.MaxAge,
	}))

	service.New(service.Props{
		Tree:   tree.NewSynced(tree.NewOrdered[string]()),
		Logger: logger,
	}).Bind(binder)

	return binder.Router()
}

func serve(ctx context.Context, cfg *Config, logger logs.Logger) error {
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: newRouter(cfg, logger),
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info(ctx, "server listening", logs.MapFields{"address": cfg.Server.Address})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return errors.Wrap(err, "server failed")
		}

		return nil
	})

	group.Go(func() error {
		<-ctx.Done()
		logger.Info(context.Background(), "server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return errors.Wrap(server.Shutdown(shutdownCtx), "failed to shut down server")
	})

	return group.Wait()
}

func main() {
	var cfg Config
	parser, err := config.Generate("bstserver", &cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate configuration parser: %s\n", err.Error())
		os.Exit(1)
	}

	if err := parser.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		_ = parser.Usage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := cfg.Log.Logger(os.Stderr)
	if err := serve(ctx, &cfg, logger); err != nil {
		logger.Error(context.Background(), "server stopped with error", logs.MapFields{"err": err.Error()})
		os.Exit(1)
	}
}
