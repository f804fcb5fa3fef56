package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)

func TestNewSubmission(t *testing.T) {
	s, err := NewSubmission("  Ali  ", "ali@example.com", "+20 100", "Design", "Need a villa design.", now)
	require.NoError(t, err)

	_, err = uuid.Parse(s.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Ali", s.Name)
	assert.Equal(t, now, s.ReceivedAt)
	assert.Equal(t, "Consultation Request: Design", s.Subject())
	assert.Equal(t, "Name: Ali\nEmail: ali@example.com\nPhone: +20 100\nService: Design\n\nMessage:\nNeed a villa design.", s.Body())
}

func TestNewSubmission_Validation(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		message string
		field   string
	}{
		{"missing name", "ali@example.com", "hi", "name"},
		{"bad email", "not-an-email", "hi", "email"},
		{"blank message", "ali@example.com", "   ", "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := "Ali"
			if tt.field == "name" {
				name = ""
			}
			_, err := NewSubmission(name, tt.email, "", "", tt.message, now)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSubmission)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestSubmission_MailtoURL(t *testing.T) {
	s, err := NewSubmission("Ali", "ali@example.com", "", "Site Supervision", "Hello there", now)
	require.NoError(t, err)

	link := s.MailtoURL("info@example.com")
	assert.Contains(t, link, "mailto:info@example.com?subject=Consultation%20Request%3A%20Site%20Supervision")
	assert.Contains(t, link, "&body=Name%3A%20Ali%0AEmail%3A%20ali%40example.com")
}
