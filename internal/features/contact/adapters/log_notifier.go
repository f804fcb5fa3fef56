package adapters

import (
	"context"

	"portfolio-site/internal/core/logger"
	"portfolio-site/internal/features/contact/domain"

	"go.uber.org/zap"
)

// LogNotifier acknowledges submissions by logging them. Used when no SMTP account is configured.
type LogNotifier struct{}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify implements ports.Notifier.
func (n *LogNotifier) Notify(_ context.Context, s *domain.Submission) error {
	logger.Named("contact").Info("Form submitted",
		zap.String("id", s.ID),
		zap.String("name", s.Name),
		zap.String("email", s.Email),
		zap.String("phone", s.Phone),
		zap.String("service", s.Service),
		zap.Int("message_length", len(s.Message)),
	)
	return nil
}
