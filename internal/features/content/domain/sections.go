package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownSection is returned for a content name that is not one of the known documents.
var ErrUnknownSection = errors.New("unknown content section")

// Section names a content document. The file is "<name>.json" under the content root.
type Section string

const (
	SectionHero           Section = "hero"
	SectionExperience     Section = "experience"
	SectionClients        Section = "clients"
	SectionServices       Section = "services"
	SectionCourses        Section = "courses"
	SectionTrainings      Section = "training-courses"
	SectionProjects       Section = "projects"
	SectionQualifications Section = "qualifications"
	SectionCertifications Section = "certifications"
	SectionTools          Section = "tools"
	SectionTestimonials   Section = "testimonials"
)

// Sections lists every content document in page order.
var Sections = []Section{
	SectionHero,
	SectionExperience,
	SectionClients,
	SectionServices,
	SectionCourses,
	SectionTrainings,
	SectionProjects,
	SectionQualifications,
	SectionCertifications,
	SectionTools,
	SectionTestimonials,
}

// Path is the document path relative to the content root.
func (s Section) Path() string {
	return string(s) + ".json"
}

// ParseSection resolves a name to a known Section.
func ParseSection(name string) (Section, error) {
	for _, s := range Sections {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, name)
}

// Hero is hero.json: the landing block, stats, contact data and footer fields.
type Hero struct {
	Title             string      `json:"title"`
	Subtitle          string      `json:"subtitle"`
	Description       string      `json:"description"`
	ProfileImage      string      `json:"profileImage,omitempty"`
	Email             string      `json:"email"`
	Phone             StringList  `json:"phone"`
	Location          StringList  `json:"location"`
	WhatsApp          StringList  `json:"whatsapp"`
	WhatsAppMessage   string      `json:"whatsappMessage,omitempty"`
	Stats             []Stat      `json:"stats,omitempty"`
	BrandName         string      `json:"brandName,omitempty"`
	FooterDescription string      `json:"footerDescription,omitempty"`
	FooterLocation    string      `json:"footerLocation,omitempty"`
	SocialLinks       SocialLinks `json:"socialLinks,omitempty"`
}

// Stat is one entry of the stats band, e.g. {"number": "150+", "label": "Projects"}.
type Stat struct {
	Number Text   `json:"number"`
	Label  string `json:"label"`
}

// ExperienceDocument is experience.json.
type ExperienceDocument struct {
	Timeline []TimelineItem `json:"timeline"`
}

// TimelineItem is one position of the experience timeline.
type TimelineItem struct {
	Date        string      `json:"date"`
	Title       string      `json:"title"`
	Company     string      `json:"company"`
	Description Description `json:"description"`
}

// ClientsDocument is clients.json.
type ClientsDocument struct {
	Clients []Client `json:"clients"`
}

// Client is a logo in the clients grid.
type Client struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// ServicesDocument is services.json.
type ServicesDocument struct {
	Services []Service `json:"services"`
}

// Service is an offered service card.
type Service struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features,omitempty"`
}

// CoursesDocument is courses.json.
type CoursesDocument struct {
	Courses []Course `json:"courses"`
}

// Course is a course card linking to its Behance showcase.
type Course struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Level       string `json:"level"`
	BehanceURL  string `json:"behanceUrl,omitempty"`
}

// TrainingsDocument is training-courses.json.
type TrainingsDocument struct {
	Trainings []Training `json:"trainings"`
}

// Training is one slide of the training rotator.
type Training struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ProjectsDocument is projects.json.
type ProjectsDocument struct {
	Projects []Project `json:"projects"`
}

// Project is a portfolio entry; featured ones also appear in the featured slider.
type Project struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	Client      string `json:"client,omitempty"`
	Year        Text   `json:"year,omitempty"`
	Featured    bool   `json:"featured,omitempty"`
}

// QualificationsDocument is qualifications.json.
type QualificationsDocument struct {
	Qualifications []Qualification `json:"qualifications"`
}

// Qualification is an academic degree.
type Qualification struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        Text   `json:"year"`
	Icon        string `json:"icon,omitempty"`
}

// CertificationsDocument is certifications.json.
type CertificationsDocument struct {
	Certifications []Certification `json:"certifications"`
}

// Certification is a professional certificate; those with an image feed the gallery slider.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   Text   `json:"year"`
	Icon   string `json:"icon"`
	Image  string `json:"image,omitempty"`
}

// ToolsDocument is tools.json.
type ToolsDocument struct {
	Tools []Tool `json:"tools"`
}

// Tool is a software tool badge.
type Tool struct {
	Name string `json:"name"`
}

// TestimonialsDocument is testimonials.json.
type TestimonialsDocument struct {
	Testimonials []Testimonial `json:"testimonials"`
}

// Testimonial is a client quote.
type Testimonial struct {
	Text    string `json:"text"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company,omitempty"`
}
