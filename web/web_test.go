package web

import (
	"bytes"
	"html/template"
	"testing"
	"time"

	"portfolio-site/internal/features/content/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuncs(t *testing.T) {
	funcs := Funcs()

	assert.Equal(t, 3, funcs["add"].(func(int, int) int)(1, 2))
	assert.Equal(t, int64(200), funcs["ms"].(func(time.Duration) int64)(200*time.Millisecond))
	assert.Equal(t, "active", funcs["activeIf"].(func(bool) string)(true))
	assert.Equal(t, "", funcs["activeIf"].(func(bool) string)(false))
	assert.Equal(t, template.CSS("transform: translateX(-200%)"), funcs["slideOffset"].(func(int) template.CSS)(2))
	assert.Equal(t, template.URL("tel:+1"), funcs["telURL"].(func(string) template.URL)("tel:+1"))
	assert.Equal(t, template.URL("#"), funcs["telURL"].(func(string) template.URL)("javascript:alert(1)"))

	m, err := dict("a", 1, "b", "x")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": "x"}, m)

	_, err = dict("a")
	assert.Error(t, err)
	_, err = dict(1, 2)
	assert.Error(t, err)
}

func TestEngine_RendersPage(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)
	require.NoError(t, engine.Load())

	hero := &domain.Hero{
		Title:    "Omar Consulting\nEngineers",
		Email:    "info@example.com",
		Phone:    domain.StringList{"+20 109 618 9832"},
		WhatsApp: domain.StringList{"201096189832"},
		Stats:    []domain.Stat{{Number: "150+", Label: "Projects"}},
	}
	footer := domain.BuildFooter(*hero, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	projects := []domain.Project{{Title: "Tower", Category: "commercial", Featured: true}}
	certs := []domain.Certification{{Name: "PMP", Image: "images/pmp.png"}}

	page := &domain.Page{
		Hero:           hero,
		HeaderWhatsApp: hero.HeaderWhatsApp(""),
		FloatWhatsApp:  hero.FloatWhatsApp(""),
		Counters:       hero.Counters(),
		Services:       []domain.Service{{Title: "Design"}},
		ServiceOptions: domain.ServiceOptions([]domain.Service{{Title: "Design"}}),
		Projects:       projects,
		Categories:     domain.Categories(projects),
		Featured:       domain.FeaturedProjects(projects),
		CertSlides:     certs,
		Certifications: certs,
		Trainings:      []domain.Training{{Title: "Revit"}, {Title: "ETABS"}},
		Testimonials:   []domain.Testimonial{{Name: "Ali", Role: "CEO", Company: "ACME"}},
		Footer:         &footer,
		Carousels:      map[string]int{"trainings": 1},
	}
	page.TestimonialLoop = domain.LoopTestimonials(page.Testimonials)

	var buf bytes.Buffer
	require.NoError(t, engine.Render(&buf, "index", fiber.Map{"Page": page}))
	out := buf.String()

	assert.Contains(t, out, `<span class="hero-title-line">Omar Consulting</span>`)
	assert.Contains(t, out, `href="tel:`)
	assert.NotContains(t, out, "ZgotmplZ")
	assert.Contains(t, out, `data-carousel="featured-projects"`)
	assert.Contains(t, out, `data-carousel="trainings" data-index="1"`)
	assert.Contains(t, out, `<option value="Other">Other</option>`)
	assert.Contains(t, out, "CEO - ACME")
	assert.Contains(t, out, `<span id="currentYear">2026</span>`)
	assert.Contains(t, out, `style="transform: translateX(-0%)"`)
	assert.NotContains(t, out, `id="clients"`)
}

func TestEngine_RendersPortfolioFragment(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)
	require.NoError(t, engine.Load())

	projects := []domain.Project{{Title: "Villa", Category: "residential", Image: "images/villa.png"}}

	var buf bytes.Buffer
	require.NoError(t, engine.Render(&buf, "partials/portfolio", fiber.Map{
		"Projects":   projects,
		"Categories": domain.Categories(projects),
		"Active":     "residential",
	}))
	out := buf.String()

	assert.Contains(t, out, `data-filter="residential"`)
	assert.Contains(t, out, `class="filter-btn active" data-filter="residential"`)
	assert.Contains(t, out, `<h3 class="portfolio-title">Villa</h3>`)
}
