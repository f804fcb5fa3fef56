package main

import (
	"context"
	"time"

	"portfolio-site/internal/core/config"
	"portfolio-site/internal/core/logger"
	carouseladapter "portfolio-site/internal/features/carousel/adapters"
	carouseldomain "portfolio-site/internal/features/carousel/domain"
	carouselservice "portfolio-site/internal/features/carousel/service"
	contentservice "portfolio-site/internal/features/content/service"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// registerCarousels loads the items of every carousel and registers one rotation per section.
// A section whose content cannot be loaded is skipped; the page renders it without a slider.
func registerCarousels(
	ctx context.Context,
	cfg config.CarouselConfig,
	timeout time.Duration,
	site *contentservice.SiteService,
	registry *carouselservice.Registry,
	broadcaster *carouseladapter.Broadcaster,
	clock clockwork.Clock,
) {
	l := logger.Named("carousel")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	base := carouseldomain.Options{
		Interval: cfg.Interval(),
		Cooldown: cfg.Cooldown(),
		Clock:    clock,
	}

	if featured, err := site.FeaturedProjects(ctx); err != nil {
		l.Warn("Featured projects unavailable", zap.Error(err))
	} else {
		register(registry, broadcaster, contentservice.CarouselFeaturedProjects, base, featured, clock)
	}

	trainingOpts := base
	trainingOpts.Interval = cfg.TrainingInterval()
	if trainings, err := site.Trainings(ctx); err != nil {
		l.Warn("Trainings unavailable", zap.Error(err))
	} else {
		register(registry, broadcaster, contentservice.CarouselTrainings, trainingOpts, trainings, clock)
	}

	if certs, err := site.CertificateSlides(ctx); err != nil {
		l.Warn("Certificates unavailable", zap.Error(err))
	} else {
		register(registry, broadcaster, contentservice.CarouselCertificates, base, certs, clock)
	}

	testimonialOpts := base
	testimonialOpts.StartDelay = cfg.TestimonialDelay()
	if testimonials, err := site.Testimonials(ctx); err != nil {
		l.Warn("Testimonials unavailable", zap.Error(err))
	} else {
		register(registry, broadcaster, contentservice.CarouselTestimonials, testimonialOpts, testimonials, clock)
	}
}

func register[T any](
	registry *carouselservice.Registry,
	broadcaster *carouseladapter.Broadcaster,
	section string,
	opts carouseldomain.Options,
	items []T,
	clock clockwork.Clock,
) {
	r := carouseldomain.New(opts, carouseladapter.SinkFor[T](broadcaster, section, clock))
	r.Initialize(items)
	registry.Register(section, r)
}
