package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jessevdk/go-flags"

	"github.com/anomredux/instant-translator/internal/catalog"
	"github.com/anomredux/instant-translator/internal/logging"
	"github.com/anomredux/instant-translator/internal/server"
	"github.com/anomredux/instant-translator/internal/translator"
)

var version = "dev"

var opts struct {
	Listen    string        `long:"listen" env:"LISTEN" description:"address to listen on" default:":8080"`
	Latency   time.Duration `long:"latency" env:"MOCK_LATENCY" description:"simulated backend latency" default:"300ms"`
	Timeout   time.Duration `long:"timeout" env:"BACKEND_TIMEOUT" description:"per-request backend deadline (0 disables)" default:"10s"`
	RateLimit float64       `long:"rate-limit" env:"RATE_LIMIT" description:"backend calls per second (0 disables)"`
	CacheSize int           `long:"cache-size" env:"CACHE_SIZE" description:"translation cache entries (0 disables)" default:"1024"`
	LogLevel  string        `long:"log-level" env:"LOG_LEVEL" description:"log level" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info"`
	Version   bool          `long:"version" description:"print version and exit"`
}

func main() {
	if _, err := flags.Parse(&opts); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}
	if opts.Version {
		fmt.Println("translate-server", version)
		return
	}

	logger := logging.New(os.Stderr, opts.LogLevel).WithPrefix("server")
	gin.SetMode(gin.ReleaseMode)

	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		logger.Fatal("language catalog", "err", err)
	}

	backend, err := translator.New(translator.Options{
		Kind:      translator.KindMock,
		Latency:   opts.Latency,
		Timeout:   opts.Timeout,
		RateLimit: opts.RateLimit,
		CacheSize: opts.CacheSize,
	})
	if err != nil {
		logger.Fatal("create backend", "err", err)
	}

	router := server.NewRouter(cat, backend, server.NewMetrics(), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(opts.Listen, router, logger).Run(ctx); err != nil {
		logger.Fatal("server", "err", err)
	}
}
