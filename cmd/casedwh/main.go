package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/cli"
	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		logging.LogFatal(logrus.New(), "casedwh failed", err)
	}
}
