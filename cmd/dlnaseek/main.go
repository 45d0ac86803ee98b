// Command dlnaseek asks a DLNA media server which time and byte ranges of
// a content item can be seeked to, and prints what it answers.
//
//	dlnaseek [-start 1m30s] [-timeout 10s] [-log-level warn] http://192.0.2.10:8008/item.ts
//
// Every flag can also be set through a DLNASEEK_ environment variable
// (DLNASEEK_URL, DLNASEEK_START, DLNASEEK_TIMEOUT, DLNASEEK_LOG_LEVEL).
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/vfaronov/dlnaheader/internal/logger"
	"github.com/vfaronov/dlnaheader/internal/probe"
)

func main() {
	if err := run(context.Background(), os.Args[1:], nil, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "dlnaseek:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, environ map[string]string, w io.Writer) error {
	cfg, err := loadConfig(args, environ)
	if err != nil {
		return err
	}
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return err
	}
	defer logger.Log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	logger.Log.Infow("probing", "url", cfg.URL, "start", cfg.Start, "timeout", cfg.Timeout)
	p := probe.New(probe.WithTimeout(cfg.Timeout), probe.WithLogger(logger.Log))
	rep, err := p.Probe(ctx, cfg.URL, uint64(cfg.Start))
	if err != nil {
		return err
	}
	return writeReport(w, rep)
}
