package handler

import (
	"errors"
	"strings"

	"portfolio-site/internal/core/logger"
	"portfolio-site/internal/features/contact/domain"
	"portfolio-site/internal/features/contact/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ResultView is the fragment rendered for form posts.
const ResultView = "partials/contact_result"

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	service ports.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{
		service: service,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// SubmitResponse is the JSON reply to an accepted submission.
type SubmitResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Mailto  string `json:"mailto,omitempty"`
}

// Register mounts the contact route on router.
func (h *ContactHandler) Register(router fiber.Router) {
	router.Post("/contact", h.Submit)
}

// Submit godoc
// @Summary Submit the contact form
// @Description Accepts a consultation request as a form post (HTML fragment reply) or JSON.
// @Tags contact
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Produce html
// @Param submission body ports.SubmitRequest true "Contact form"
// @Success 200 {object} SubmitResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	wantsJSON := strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)

	var req ports.SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return h.reply(c, wantsJSON, fiber.StatusBadRequest, "Invalid request body")
	}

	sub, err := h.service.Submit(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSubmission) {
			return h.reply(c, wantsJSON, fiber.StatusBadRequest, "Please check the form: "+strings.TrimPrefix(err.Error(), domain.ErrInvalidSubmission.Error()+": "))
		}
		logger.Named("contact").Error("Failed to deliver submission", zap.String("ray_id", rayID(c)), zap.Error(err))
		return h.reply(c, wantsJSON, fiber.StatusInternalServerError, "Sorry, your message could not be sent.")
	}

	if wantsJSON {
		return c.JSON(SubmitResponse{
			ID:      sub.ID,
			Message: domain.SuccessMessage,
			Mailto:  h.service.Mailto(sub),
		})
	}
	return c.Render(ResultView, fiber.Map{
		"Success": true,
		"Message": domain.SuccessMessage,
	})
}

func (h *ContactHandler) reply(c *fiber.Ctx, wantsJSON bool, status int, message string) error {
	if wantsJSON {
		return c.Status(status).JSON(ErrorResponse{
			Message: message,
			RayID:   rayID(c),
		})
	}
	return c.Status(status).Render(ResultView, fiber.Map{
		"Success": false,
		"Message": message,
	})
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
