package adapters

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"portfolio-site/internal/core/config"
	"portfolio-site/internal/core/logger"
	"portfolio-site/internal/features/contact/domain"

	"go.uber.org/zap"
)

// SendMailFunc matches smtp.SendMail.
type SendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier mails every submission to the site owner using PLAIN auth.
type SMTPNotifier struct {
	addr     string
	auth     smtp.Auth
	from     string
	to       string
	sendMail SendMailFunc
}

// NewSMTPNotifier creates an SMTPNotifier from the contact settings. Mail goes to
// cfg.To, or back to the SMTP user when no recipient is configured.
func NewSMTPNotifier(cfg config.ContactConfig) *SMTPNotifier {
	to := cfg.To
	if to == "" {
		to = cfg.SMTPUser
	}
	return &SMTPNotifier{
		addr:     net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort)),
		auth:     smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost),
		from:     cfg.SMTPUser,
		to:       to,
		sendMail: smtp.SendMail,
	}
}

// WithSendMail replaces the transport, for tests.
func (n *SMTPNotifier) WithSendMail(fn SendMailFunc) *SMTPNotifier {
	n.sendMail = fn
	return n
}

// Notify implements ports.Notifier. smtp.SendMail has no context support, so ctx is only
// checked before dialing.
func (n *SMTPNotifier) Notify(ctx context.Context, s *domain.Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := n.message(s)
	if err := n.sendMail(n.addr, n.auth, n.from, []string{n.to}, msg); err != nil {
		return fmt.Errorf("smtp notifier: failed to send submission %s: %w", s.ID, err)
	}

	logger.Named("contact").Info("Submission mailed", zap.String("id", s.ID), zap.String("to", n.to))
	return nil
}

func (n *SMTPNotifier) message(s *domain.Submission) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", n.from)
	fmt.Fprintf(&b, "To: %s\r\n", n.to)
	fmt.Fprintf(&b, "Reply-To: %s\r\n", sanitizeHeader(s.Email))
	fmt.Fprintf(&b, "Subject: %s\r\n", sanitizeHeader(s.Subject()))
	fmt.Fprintf(&b, "Date: %s\r\n", s.ReceivedAt.Format(time.RFC1123Z))
	fmt.Fprintf(&b, "Message-ID: <%s@portfolio-site>\r\n", s.ID)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(s.Body(), "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}

// sanitizeHeader keeps user input from injecting extra header lines.
func sanitizeHeader(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
