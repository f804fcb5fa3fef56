package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SuccessMessage is shown after an accepted submission.
const SuccessMessage = "Thank you for your message! We will get back to you soon."

// ErrInvalidSubmission wraps every validation failure of a Submission.
var ErrInvalidSubmission = errors.New("invalid submission")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Submission is one contact form message.
type Submission struct {
	ID         string    `json:"id"`
	Name       string    `json:"name" validate:"required,max=200"`
	Email      string    `json:"email" validate:"required,email,max=254"`
	Phone      string    `json:"phone,omitempty" validate:"max=50"`
	Service    string    `json:"service,omitempty" validate:"max=200"`
	Message    string    `json:"message" validate:"required,max=5000"`
	ReceivedAt time.Time `json:"received_at"`
}

// NewSubmission trims and validates the form fields and stamps the result with an id.
func NewSubmission(name, email, phone, service, message string, now time.Time) (*Submission, error) {
	s := &Submission{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(name),
		Email:      strings.TrimSpace(email),
		Phone:      strings.TrimSpace(phone),
		Service:    strings.TrimSpace(service),
		Message:    strings.TrimSpace(message),
		ReceivedAt: now,
	}

	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, strings.ToLower(fe.Field()))
			}
			return nil, fmt.Errorf("%w: %s", ErrInvalidSubmission, strings.Join(fields, ", "))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSubmission, err)
	}
	return s, nil
}

// Subject is the mail subject line.
func (s *Submission) Subject() string {
	return "Consultation Request: " + s.Service
}

// Body is the plain-text mail body.
func (s *Submission) Body() string {
	return fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nService: %s\n\nMessage:\n%s",
		s.Name, s.Email, s.Phone, s.Service, s.Message)
}

// MailtoURL opens the visitor's mail client with the same subject and body addressed to to.
func (s *Submission) MailtoURL(to string) string {
	return "mailto:" + to +
		"?subject=" + encodeComponent(s.Subject()) +
		"&body=" + encodeComponent(s.Body())
}

func encodeComponent(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}
