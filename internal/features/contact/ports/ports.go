package ports

import (
	"context"

	"portfolio-site/internal/features/contact/domain"
)

// ContactService defines the primary port for contact form submissions.
type ContactService interface {
	Submit(ctx context.Context, req SubmitRequest) (*domain.Submission, error)
	// Mailto returns the mail-client fallback link for an accepted submission.
	Mailto(s *domain.Submission) string
}

// SubmitRequest carries the raw form fields.
type SubmitRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Service string `json:"service" form:"service"`
	Message string `json:"message" form:"message"`
}

// Notifier is the secondary port that delivers an accepted submission.
type Notifier interface {
	Notify(ctx context.Context, s *domain.Submission) error
}
