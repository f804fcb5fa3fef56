package service

import (
	"context"
	"fmt"

	"portfolio-site/internal/features/contact/domain"
	"portfolio-site/internal/features/contact/ports"

	"github.com/jonboulle/clockwork"
)

// ContactServiceImpl implements ports.ContactService.
type ContactServiceImpl struct {
	notifier ports.Notifier
	mailbox  string
	clock    clockwork.Clock
}

// NewContactService creates a new ContactServiceImpl. mailbox is the address used by the
// mailto fallback link.
func NewContactService(notifier ports.Notifier, mailbox string, clock clockwork.Clock) *ContactServiceImpl {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ContactServiceImpl{
		notifier: notifier,
		mailbox:  mailbox,
		clock:    clock,
	}
}

// Submit validates the request and hands the submission to the notifier.
// Validation failures wrap domain.ErrInvalidSubmission.
func (s *ContactServiceImpl) Submit(ctx context.Context, req ports.SubmitRequest) (*domain.Submission, error) {
	sub, err := domain.NewSubmission(req.Name, req.Email, req.Phone, req.Service, req.Message, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := s.notifier.Notify(ctx, sub); err != nil {
		return nil, fmt.Errorf("service: failed to deliver submission: %w", err)
	}

	return sub, nil
}

// Mailto returns the mail-client fallback link, or "" when no mailbox is known.
func (s *ContactServiceImpl) Mailto(sub *domain.Submission) string {
	if s.mailbox == "" || sub == nil {
		return ""
	}
	return sub.MailtoURL(s.mailbox)
}
