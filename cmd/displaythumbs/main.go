package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/xaionaro-go/displaythumbs/cmd/displaythumbs/commands"
	"github.com/xaionaro-go/displaythumbs/pkg/screenshot"
)

func main() {
	l := logrus.Default().WithLevel(logger.LevelWarning)
	ctx := context.Background()
	ctx = logger.CtxWithLogger(ctx, l)
	logger.Default = func() logger.Logger {
		return l
	}

	ctx, cancelFn := signal.NotifyContext(ctx, os.Interrupt)
	err := commands.New(screenshot.Implementation{}).ExecuteContext(ctx)
	cancelFn()
	if err != nil {
		commands.LogError(ctx, err)
		belt.Flush(ctx)
		os.Exit(1)
	}
	belt.Flush(ctx)
}
