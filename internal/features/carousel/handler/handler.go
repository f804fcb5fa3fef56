package handler

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"portfolio-site/internal/core/logger"
	"portfolio-site/internal/features/carousel/domain"
	"portfolio-site/internal/features/carousel/ports"
	"portfolio-site/internal/features/carousel/service"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// keepAlive is the period of SSE comment lines that detect gone clients.
const keepAlive = 15 * time.Second

// CarouselHandler handles HTTP requests for carousel state and commands.
type CarouselHandler struct {
	service ports.CarouselService
	frames  ports.FrameSource
}

// NewCarouselHandler creates a new CarouselHandler.
func NewCarouselHandler(service ports.CarouselService, frames ports.FrameSource) *CarouselHandler {
	return &CarouselHandler{
		service: service,
		frames:  frames,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// SectionState pairs a section id with its snapshot.
type SectionState struct {
	Section string `json:"section"`
	domain.Snapshot
}

// CommandRequest is the optional body of a command. Index is used by goto, X by drags.
type CommandRequest struct {
	Index int     `json:"index" form:"index"`
	X     float64 `json:"x" form:"x"`
}

// Register mounts the carousel routes on router.
func (h *CarouselHandler) Register(router fiber.Router) {
	router.Get("/api/carousels", h.ListCarousels)
	router.Get("/api/carousels/:section", h.GetCarousel)
	router.Get("/api/carousels/:section/events", h.StreamEvents)
	router.Post("/api/carousels/:section/:action", h.SendCommand)
}

// ListCarousels godoc
// @Summary List carousels
// @Description Returns the state of every registered carousel in page order.
// @Tags carousel
// @Produce json
// @Success 200 {array} SectionState
// @Router /api/carousels [get]
func (h *CarouselHandler) ListCarousels(c *fiber.Ctx) error {
	sections := h.service.Sections()
	states := make([]SectionState, 0, len(sections))
	for _, section := range sections {
		snap, err := h.service.Get(section)
		if err != nil {
			// Removed between Sections and Get.
			continue
		}
		states = append(states, SectionState{Section: section, Snapshot: snap})
	}
	return c.JSON(states)
}

// GetCarousel godoc
// @Summary Get a carousel
// @Description Returns the current index and state of one carousel.
// @Tags carousel
// @Produce json
// @Param section path string true "Section id (featured-projects, testimonials, certificates, trainings)"
// @Success 200 {object} SectionState
// @Failure 404 {object} ErrorResponse
// @Router /api/carousels/{section} [get]
func (h *CarouselHandler) GetCarousel(c *fiber.Ctx) error {
	section := c.Params("section")
	snap, err := h.service.Get(section)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(SectionState{Section: section, Snapshot: snap})
}

// SendCommand godoc
// @Summary Drive a carousel
// @Description Applies next, previous, goto, pause, resume, drag-start, drag-move or drag-end.
// @Tags carousel
// @Accept json
// @Produce json
// @Param section path string true "Section id"
// @Param action path string true "Action"
// @Param command body CommandRequest false "Index for goto, x for drag actions"
// @Success 200 {object} SectionState
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/carousels/{section}/{action} [post]
func (h *CarouselHandler) SendCommand(c *fiber.Ctx) error {
	section := c.Params("section")

	var req CommandRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: "invalid request body",
				RayID:   rayID(c),
			})
		}
	}

	cmd := domain.Command{
		Action: domain.Action(c.Params("action")),
		Index:  req.Index,
		X:      req.X,
	}

	snap, err := h.service.Execute(section, cmd)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(SectionState{Section: section, Snapshot: snap})
}

// StreamEvents godoc
// @Summary Stream carousel frames
// @Description Server-sent events, one "frame" event per index change. The last known frame is sent first.
// @Tags carousel
// @Produce text/event-stream
// @Param section path string true "Section id"
// @Success 200 {object} domain.Frame
// @Failure 404 {object} ErrorResponse
// @Router /api/carousels/{section}/events [get]
func (h *CarouselHandler) StreamEvents(c *fiber.Ctx) error {
	section := c.Params("section")
	if _, err := h.service.Get(section); err != nil {
		return h.fail(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	frames, cancel := h.frames.Subscribe(section)
	last, hasLast := h.frames.Last(section)
	log := logger.Named("carousel").With(zap.String("section", section), zap.String("ray_id", rayID(c)))

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()

		if hasLast {
			if err := writeFrame(w, last); err != nil {
				return
			}
		}

		ticker := time.NewTicker(keepAlive)
		defer ticker.Stop()

		for {
			select {
			case f, ok := <-frames:
				if !ok {
					return
				}
				if err := writeFrame(w, f); err != nil {
					log.Debug("Event stream closed", zap.Error(err))
					return
				}
			case <-ticker.C:
				if _, err := w.WriteString(": ping\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					log.Debug("Event stream closed", zap.Error(err))
					return
				}
			}
		}
	}))

	return nil
}

func writeFrame(w *bufio.Writer, f domain.Frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: frame\ndata: %s\n\n", data); err != nil {
		return err
	}
	return w.Flush()
}

func (h *CarouselHandler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, service.ErrSectionNotFound):
		status = fiber.StatusNotFound
		message = "carousel not found"
	case errors.Is(err, service.ErrUnknownAction):
		status = fiber.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domain.ErrInvalidIndex):
		status = fiber.StatusUnprocessableEntity
		message = err.Error()
	default:
		logger.Named("carousel").Error("Carousel request failed", zap.Error(err))
	}

	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		RayID:   rayID(c),
	})
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
