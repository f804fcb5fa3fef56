package handler

import (
	"errors"

	"portfolio-site/internal/core/logger"
	"portfolio-site/internal/features/content/domain"
	"portfolio-site/internal/features/content/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// View names rendered by this handler.
const (
	IndexView     = "index"
	PortfolioView = "partials/portfolio"
)

// ContentHandler serves the site page, the portfolio fragment and raw content documents.
type ContentHandler struct {
	service ports.SiteService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(service ports.SiteService) *ContentHandler {
	return &ContentHandler{
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

// Register mounts the content routes on router.
func (h *ContentHandler) Register(router fiber.Router) {
	router.Get("/", h.Index)
	router.Get("/portfolio", h.Portfolio)
	router.Get("/api/content/:name", h.GetContent)
}

// Index renders the single page with every section that loaded.
func (h *ContentHandler) Index(c *fiber.Ctx) error {
	page, err := h.service.Page(c.UserContext())
	if err != nil {
		logger.Named("content").Error("Failed to build page", zap.Error(err))
		return fiber.NewError(fiber.StatusServiceUnavailable, "page unavailable")
	}

	return c.Render(IndexView, fiber.Map{
		"Page": page,
	})
}

// Portfolio renders the portfolio grid for ?category= (default "all").
func (h *ContentHandler) Portfolio(c *fiber.Ctx) error {
	category := c.Query("category", domain.CategoryAll)

	projects, categories, err := h.service.Projects(c.UserContext(), category)
	if err != nil {
		logger.Named("content").Warn("Portfolio unavailable", zap.Error(err))
		return fiber.NewError(fiber.StatusServiceUnavailable, "portfolio unavailable")
	}

	return c.Render(PortfolioView, fiber.Map{
		"Projects":   projects,
		"Categories": categories,
		"Active":     category,
	})
}

// GetContent godoc
// @Summary Get a content document
// @Description Returns the raw JSON of one content file (hero, experience, clients, services, courses, training-courses, projects, qualifications, certifications, tools, testimonials).
// @Tags content
// @Produce json
// @Param name path string true "Content name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/content/{name} [get]
func (h *ContentHandler) GetContent(c *fiber.Ctx) error {
	name := c.Params("name")

	raw, err := h.service.Section(c.UserContext(), name)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownSection) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Message: "content not found",
				RayID:   rayID(c),
			})
		}
		logger.Named("content").Error("Failed to load content", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Message: "content unavailable",
			RayID:   rayID(c),
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(raw)
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
