package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"portfolio-site/internal/core/cache"
	"portfolio-site/internal/core/config"
	"portfolio-site/internal/core/httpclient"
	"portfolio-site/internal/core/logger"
	"portfolio-site/internal/core/server"
	carouseladapter "portfolio-site/internal/features/carousel/adapters"
	carouselhandler "portfolio-site/internal/features/carousel/handler"
	carouselservice "portfolio-site/internal/features/carousel/service"
	contactadapter "portfolio-site/internal/features/contact/adapters"
	contacthandler "portfolio-site/internal/features/contact/handler"
	contactports "portfolio-site/internal/features/contact/ports"
	contactservice "portfolio-site/internal/features/contact/service"
	contentadapter "portfolio-site/internal/features/content/adapters"
	contenthandler "portfolio-site/internal/features/content/handler"
	contentports "portfolio-site/internal/features/content/ports"
	contentservice "portfolio-site/internal/features/content/service"
	"portfolio-site/web"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// @title Portfolio Site API
// @version 1.0
// @description Server-rendered portfolio site with live carousels, content JSON and a contact form.
// @contact.name Site Support
// @contact.email hello@portfolio.example
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clock := clockwork.NewRealClock()

	// Content cache: shared Redis when configured, in-process otherwise.
	var contentCache cache.Cache
	if cfg.Content.RedisURL != "" {
		redisCache, err := cache.NewRedisAdapter(cfg.Content.RedisURL, "portfolio:")
		if err != nil {
			l.Fatal("Invalid Redis URL", zap.Error(err))
		}
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = redisCache.Ping(pingCtx)
		cancel()
		if err != nil {
			l.Warn("Redis unreachable, falling back to in-process cache", zap.Error(err))
			redisCache.Close()
		} else {
			defer redisCache.Close()
			contentCache = redisCache
			l.Info("Content cache backed by Redis")
		}
	}
	if contentCache == nil {
		memoryCache := cache.NewMemoryAdapter(clock)
		defer memoryCache.Close()
		contentCache = memoryCache
	}

	var fetcher contentports.Fetcher
	if cfg.Content.BaseURL != "" {
		fetcher = contentadapter.NewHTTPFetcher(httpclient.NewClient(cfg.Content.Timeout()), cfg.Content.BaseURL)
		l.Info("Content fetched over HTTP", zap.String("base_url", cfg.Content.BaseURL))
	} else {
		fetcher = contentadapter.NewFileFetcher(cfg.Content.Dir)
		l.Info("Content read from disk", zap.String("dir", cfg.Content.Dir))
	}

	loader := contentservice.NewLoader(fetcher, contentCache)
	site := contentservice.NewSiteService(loader, nil, contentservice.WhatsAppNumbers{
		Header: cfg.Content.WhatsAppHeader,
		Float:  cfg.Content.WhatsAppFloat,
	}, clock)

	// Carousels
	broadcaster := carouseladapter.NewBroadcaster()
	registry := carouselservice.NewRegistry()
	registerCarousels(ctx, cfg.Carousel, cfg.Content.Timeout(), site, registry, broadcaster, clock)
	site.SetRotations(registry)

	// Contact
	var notifier contactports.Notifier
	if cfg.Contact.SMTPEnabled() {
		notifier = contactadapter.NewSMTPNotifier(cfg.Contact)
		l.Info("Contact submissions delivered by SMTP", zap.String("host", cfg.Contact.SMTPHost))
	} else {
		notifier = contactadapter.NewLogNotifier()
		l.Warn("SMTP credentials missing, contact submissions are only logged")
	}
	mailbox := cfg.Contact.To
	if mailbox == "" {
		mailbox = cfg.Contact.SMTPUser
	}
	contactSvc := contactservice.NewContactService(notifier, mailbox, clock)

	engine, err := web.NewEngine()
	if err != nil {
		l.Fatal("Failed to load templates", zap.Error(err))
	}

	srv := server.New(cfg, engine)

	// Register Routes
	contenthandler.NewContentHandler(site).Register(srv.App)
	carouselhandler.NewCarouselHandler(registry, broadcaster).Register(srv.App)
	contacthandler.NewContactHandler(contactSvc).Register(srv.App)

	go func() {
		if err := srv.Run(); err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	l.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	registry.Close()
	broadcaster.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error("Server shutdown failed", zap.Error(err))
	}
}
