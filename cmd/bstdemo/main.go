package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/eaugeas/linkedbst/config"
	"github.com/eaugeas/linkedbst/demo"
	"github.com/eaugeas/linkedbst/logs"
	"github.com/spf13/afero"
)

type Config struct {
	Log  config.LogConfig
	Demo config.DemoConfig
}

func (c *Config) Use() string {
	return "looks up a sample of a word list with a linear scan and on binary search trees"
}

func (c *Config) EnvPrefix() string {
	return "bstdemo"
}

func (c *Config) Binders() []config.Binder {
	return []config.Binder{&c.Log, &c.Demo}
}

func main() {
	var cfg Config
	parser, err := config.Generate("bstdemo", &cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate configuration parser: %s\n", err.Error())
		os.Exit(1)
	}

	if err := parser.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		_ = parser.Usage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	ctx = logs.WithTraceID(ctx, logs.NewTraceID())

	logger := cfg.Log.Logger(os.Stderr)

	var progress demo.Progress = demo.NewBarProgress(os.Stdout)
	if cfg.Demo.Quiet {
		progress = demo.NoProgress{}
	}

	report, err := demo.NewRunner(demo.Props{
		Fs:       afero.NewReadOnlyFs(afero.NewOsFs()),
		Path:     cfg.Demo.Words,
		Samples:  cfg.Demo.Samples,
		Workers:  cfg.Demo.Workers,
		Logger:   logger,
		Progress: progress,
	}).Run(ctx)
	if err != nil {
		logger.Error(ctx, "demo failed", logs.MapFields{"err": err.Error()})
		os.Exit(1)
	}

	if err := demo.RenderReport(os.Stdout, report); err != nil {
		logger.Error(ctx, "failed to render report", logs.MapFields{"err": err.Error()})
		os.Exit(1)
	}
}
