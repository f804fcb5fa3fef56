package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"portfolio-site/internal/features/contact/domain"
	"portfolio-site/internal/features/contact/ports"
	"portfolio-site/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockContactService is a mock implementation of ports.ContactService
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, req ports.SubmitRequest) (*domain.Submission, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Submission), args.Error(1)
}

func (m *MockContactService) Mailto(s *domain.Submission) string {
	args := m.Called(s)
	return args.String(0)
}

func setupApp(t *testing.T, svc *MockContactService) *fiber.App {
	t.Helper()
	engine, err := web.NewEngine()
	require.NoError(t, err)

	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())
	NewContactHandler(svc).Register(app)
	return app
}

var request = ports.SubmitRequest{
	Name:    "Ali",
	Email:   "ali@example.com",
	Phone:   "+20 100",
	Service: "Design",
	Message: "Hello",
}

func formBody(req ports.SubmitRequest) io.Reader {
	values := url.Values{}
	values.Set("name", req.Name)
	values.Set("email", req.Email)
	values.Set("phone", req.Phone)
	values.Set("service", req.Service)
	values.Set("message", req.Message)
	return strings.NewReader(values.Encode())
}

func TestContactHandler_SubmitForm(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockContactService)
		app := setupApp(t, mockService)

		mockService.On("Submit", mock.Anything, request).Return(&domain.Submission{ID: "abc"}, nil).Once()

		req := httptest.NewRequest("POST", "/contact", formBody(request))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), `class="form-message success"`)
		assert.Contains(t, string(raw), "Thank you for your message! We will get back to you soon.")
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid", func(t *testing.T) {
		mockService := new(MockContactService)
		app := setupApp(t, mockService)

		bad := request
		bad.Email = "nope"
		mockService.On("Submit", mock.Anything, bad).Return(nil, fmt.Errorf("%w: email", domain.ErrInvalidSubmission)).Once()

		req := httptest.NewRequest("POST", "/contact", formBody(bad))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), `class="form-message error"`)
		assert.Contains(t, string(raw), "Please check the form: email")
		mockService.AssertExpectations(t)
	})
}

func TestContactHandler_SubmitJSON(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockContactService)
		app := setupApp(t, mockService)

		sub := &domain.Submission{ID: "abc"}
		mockService.On("Submit", mock.Anything, request).Return(sub, nil).Once()
		mockService.On("Mailto", sub).Return("mailto:info@example.com?subject=x").Once()

		body, _ := json.Marshal(request)
		req := httptest.NewRequest("POST", "/contact", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var out SubmitResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, "abc", out.ID)
		assert.Equal(t, domain.SuccessMessage, out.Message)
		assert.Equal(t, "mailto:info@example.com?subject=x", out.Mailto)
		mockService.AssertExpectations(t)
	})

	t.Run("DeliveryFailure", func(t *testing.T) {
		mockService := new(MockContactService)
		app := setupApp(t, mockService)

		mockService.On("Submit", mock.Anything, request).Return(nil, errors.New("smtp down")).Once()

		body, _ := json.Marshal(request)
		req := httptest.NewRequest("POST", "/contact", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var out ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.NotEmpty(t, out.RayID)
		mockService.AssertExpectations(t)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		mockService := new(MockContactService)
		app := setupApp(t, mockService)

		req := httptest.NewRequest("POST", "/contact", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockService.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})
}
