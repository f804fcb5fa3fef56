// Command smoke renders the site in headless Chromium and checks that every section and
// carousel made it into the DOM. It exits non-zero when something is missing.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-site/internal/core/browser"
	"portfolio-site/internal/core/logger"
	"portfolio-site/internal/core/proxy"

	"go.uber.org/zap"
)

func main() {
	pageURL := flag.String("url", "http://localhost:8080/", "page to check")
	timeout := flag.Duration("timeout", 60*time.Second, "overall time limit")
	proxyURL := flag.String("proxy", os.Getenv("SMOKE_PROXY_URL"), "upstream proxy, http://[user:pass@]host:port")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	if err := logger.Init("development", *level); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()
	l := logger.Named("smoke")

	settings, err := proxy.Parse(*proxyURL)
	if err != nil {
		l.Fatal("Invalid proxy", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := browser.NewChecker(settings, *timeout).Check(ctx, *pageURL, browser.DefaultExpectations)
	if err != nil {
		l.Fatal("Smoke check failed", zap.Error(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		l.Error("Failed to write report", zap.Error(err))
	}

	if !report.OK() {
		logger.Sync()
		os.Exit(1)
	}
	l.Info("All sections present", zap.String("title", report.Title))
}
