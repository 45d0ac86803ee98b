package main

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const envPrefix = "DLNASEEK_"

type config struct {
	URL      string        `env:"URL"`
	Start    time.Duration `env:"START" envDefault:"0s"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"10s"`
	LogLevel string        `env:"LOG_LEVEL" envDefault:"warn"`
}

// loadConfig reads DLNASEEK_* variables from environ (the process
// environment if nil), then lets flags in args override them.
// The content URL may also be given as the only positional argument.
func loadConfig(args []string, environ map[string]string) (config, error) {
	var cfg config
	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      envPrefix,
		Environment: environ,
	}); err != nil {
		return cfg, fmt.Errorf("parsing environment: %w", err)
	}

	fs := flag.NewFlagSet("dlnaseek", flag.ContinueOnError)
	fs.StringVar(&cfg.URL, "url", cfg.URL, "content URL to probe")
	fs.DurationVar(&cfg.Start, "start", cfg.Start, "time seek position to ask for")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "HEAD request timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.URL = fs.Arg(0)
	default:
		return cfg, errors.New("too many arguments")
	}
	if cfg.URL == "" {
		return cfg, errors.New("no content URL given")
	}
	if cfg.Start < 0 {
		return cfg, fmt.Errorf("negative start %s", cfg.Start)
	}
	return cfg, nil
}
