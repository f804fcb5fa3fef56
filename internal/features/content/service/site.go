package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"portfolio-site/internal/core/logger"
	"portfolio-site/internal/features/content/domain"
	"portfolio-site/internal/features/content/ports"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Carousel section ids shared with the carousel registry and the templates.
const (
	CarouselFeaturedProjects = "featured-projects"
	CarouselTestimonials     = "testimonials"
	CarouselCertificates     = "certificates"
	CarouselTrainings        = "trainings"
)

// CarouselSections lists the carousel ids in page order.
var CarouselSections = []string{
	CarouselFeaturedProjects,
	CarouselTrainings,
	CarouselCertificates,
	CarouselTestimonials,
}

// WhatsAppNumbers overrides the numbers of the header and floating chat buttons.
type WhatsAppNumbers struct {
	Header string
	Float  string
}

// SiteService implements ports.SiteService on top of a Loader.
type SiteService struct {
	loader    ports.Loader
	rotations ports.RotationLookup
	whatsapp  WhatsAppNumbers
	clock     clockwork.Clock
}

// NewSiteService creates a SiteService. rotations may be nil until carousels are registered.
func NewSiteService(loader ports.Loader, rotations ports.RotationLookup, whatsapp WhatsAppNumbers, clock clockwork.Clock) *SiteService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &SiteService{
		loader:    loader,
		rotations: rotations,
		whatsapp:  whatsapp,
		clock:     clock,
	}
}

// SetRotations attaches the carousel registry once it exists.
func (s *SiteService) SetRotations(rotations ports.RotationLookup) {
	s.rotations = rotations
}

// Page loads every section concurrently. A section that fails to load is logged and left
// empty; only a cancelled context fails the whole page.
func (s *SiteService) Page(ctx context.Context) (*domain.Page, error) {
	var (
		hero           domain.Hero
		experience     domain.ExperienceDocument
		clients        domain.ClientsDocument
		services       domain.ServicesDocument
		courses        domain.CoursesDocument
		trainings      domain.TrainingsDocument
		projects       domain.ProjectsDocument
		qualifications domain.QualificationsDocument
		certifications domain.CertificationsDocument
		tools          domain.ToolsDocument
		testimonials   domain.TestimonialsDocument
	)

	docs := map[domain.Section]any{
		domain.SectionHero:           &hero,
		domain.SectionExperience:     &experience,
		domain.SectionClients:        &clients,
		domain.SectionServices:       &services,
		domain.SectionCourses:        &courses,
		domain.SectionTrainings:      &trainings,
		domain.SectionProjects:       &projects,
		domain.SectionQualifications: &qualifications,
		domain.SectionCertifications: &certifications,
		domain.SectionTools:          &tools,
		domain.SectionTestimonials:   &testimonials,
	}
	loaded := make(map[domain.Section]bool, len(docs))
	results := make(chan domain.Section, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	for section, target := range docs {
		section, target := section, target
		g.Go(func() error {
			if err := s.loader.Load(gctx, section.Path(), target); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				logger.Named("content").Warn("Section hidden", zap.String("section", string(section)), zap.Error(err))
				return nil
			}
			results <- section
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("service: page load aborted: %w", err)
	}
	close(results)
	for section := range results {
		loaded[section] = true
	}

	page := &domain.Page{Carousels: s.carouselIndices()}

	if loaded[domain.SectionHero] {
		page.Hero = &hero
		page.HeaderWhatsApp = hero.HeaderWhatsApp(s.whatsapp.Header)
		page.FloatWhatsApp = hero.FloatWhatsApp(s.whatsapp.Float)
		page.Counters = hero.Counters()
		footer := domain.BuildFooter(hero, s.clock.Now())
		page.Footer = &footer
	}
	page.Timeline = experience.Timeline
	page.Clients = clients.Clients
	page.Services = services.Services
	if loaded[domain.SectionServices] {
		page.FooterServices = domain.FooterServices(services.Services)
		page.ServiceOptions = domain.ServiceOptions(services.Services)
	}
	page.Courses = courses.Courses
	page.Trainings = trainings.Trainings
	page.Projects = projects.Projects
	if len(projects.Projects) > 0 {
		page.Categories = domain.Categories(projects.Projects)
		page.Featured = domain.FeaturedProjects(projects.Projects)
	}
	page.Qualifications = qualifications.Qualifications
	page.Certifications = certifications.Certifications
	page.CertSlides = domain.CertificateSlides(certifications.Certifications)
	page.Tools = tools.Tools
	page.Testimonials = testimonials.Testimonials
	if len(testimonials.Testimonials) > 0 {
		page.TestimonialLoop = domain.LoopTestimonials(testimonials.Testimonials)
	}

	return page, nil
}

// Projects returns the portfolio filtered by category together with the filter buttons.
func (s *SiteService) Projects(ctx context.Context, category string) ([]domain.Project, []domain.Category, error) {
	all, err := s.AllProjects(ctx)
	if err != nil {
		return nil, nil, err
	}
	return domain.FilterProjects(all, category), domain.Categories(all), nil
}

// Section returns the raw JSON of a known content document.
func (s *SiteService) Section(ctx context.Context, name string) (json.RawMessage, error) {
	section, err := domain.ParseSection(name)
	if err != nil {
		return nil, err
	}
	data, err := s.loader.Raw(ctx, section.Path())
	if err != nil {
		return nil, fmt.Errorf("service: failed to load section %s: %w", name, err)
	}
	return json.RawMessage(data), nil
}

// AllProjects returns every portfolio project.
func (s *SiteService) AllProjects(ctx context.Context) ([]domain.Project, error) {
	var doc domain.ProjectsDocument
	if err := s.loader.Load(ctx, domain.SectionProjects.Path(), &doc); err != nil {
		return nil, err
	}
	return doc.Projects, nil
}

// FeaturedProjects returns the items of the featured projects slider.
func (s *SiteService) FeaturedProjects(ctx context.Context) ([]domain.Project, error) {
	all, err := s.AllProjects(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FeaturedProjects(all), nil
}

// Testimonials returns the items of the testimonial carousel.
func (s *SiteService) Testimonials(ctx context.Context) ([]domain.Testimonial, error) {
	var doc domain.TestimonialsDocument
	if err := s.loader.Load(ctx, domain.SectionTestimonials.Path(), &doc); err != nil {
		return nil, err
	}
	return doc.Testimonials, nil
}

// CertificateSlides returns the items of the certificate gallery. Dot indices refer to
// this filtered list.
func (s *SiteService) CertificateSlides(ctx context.Context) ([]domain.Certification, error) {
	var doc domain.CertificationsDocument
	if err := s.loader.Load(ctx, domain.SectionCertifications.Path(), &doc); err != nil {
		return nil, err
	}
	return domain.CertificateSlides(doc.Certifications), nil
}

// Trainings returns the items of the training rotator.
func (s *SiteService) Trainings(ctx context.Context) ([]domain.Training, error) {
	var doc domain.TrainingsDocument
	if err := s.loader.Load(ctx, domain.SectionTrainings.Path(), &doc); err != nil {
		return nil, err
	}
	return doc.Trainings, nil
}

func (s *SiteService) carouselIndices() map[string]int {
	indices := make(map[string]int, len(CarouselSections))
	if s.rotations == nil {
		return indices
	}
	for _, section := range CarouselSections {
		indices[section] = s.rotations.CurrentIndex(section)
	}
	return indices
}
