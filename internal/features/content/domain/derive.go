package domain

import (
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultWhatsAppMessage pre-fills the chat when hero.json has no whatsappMessage.
	DefaultWhatsAppMessage = "Hello! I would like to discuss your services."
	// DefaultQualificationIcon is used for qualifications without an icon class.
	DefaultQualificationIcon = "fas fa-graduation-cap"
	// DefaultProjectClient and DefaultProjectYear fill the featured slider metadata.
	DefaultProjectClient = "Confidential"
	DefaultProjectYear   = "Recent"

	// MaxFeaturedProjects caps the featured slider.
	MaxFeaturedProjects = 8
	// FooterServiceCount is the number of services linked from the footer.
	FooterServiceCount = 4
	// CategoryAll is the portfolio filter matching every project.
	CategoryAll = "all"

	// CounterSteps, CounterDuration and CounterStagger drive the stats count-up.
	CounterSteps    = 100
	CounterDuration = 2 * time.Second
	CounterStagger  = 200 * time.Millisecond
)

// Link is an anchor target with its visible label.
type Link struct {
	Href  string
	Label string
}

// Option is an entry of a <select>.
type Option struct {
	Value string
	Label string
}

// TitleLines splits the hero title on newlines, trimming each line.
func (h Hero) TitleLines() []string {
	lines := strings.Split(h.Title, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

// Message returns the WhatsApp greeting, falling back to DefaultWhatsAppMessage.
func (h Hero) Message() string {
	if h.WhatsAppMessage != "" {
		return h.WhatsAppMessage
	}
	return DefaultWhatsAppMessage
}

// HeaderWhatsApp is the chat link of the header button: override when set, else the first number.
func (h Hero) HeaderWhatsApp(override string) string {
	number := override
	if number == "" {
		number = h.WhatsApp.First()
	}
	if number == "" {
		return ""
	}
	return WhatsAppURL(number, h.Message())
}

// FloatWhatsApp is the chat link of the floating button: override when set, else the last number.
func (h Hero) FloatWhatsApp(override string) string {
	number := override
	if number == "" {
		number = h.WhatsApp.Last()
	}
	if number == "" {
		return ""
	}
	return WhatsAppURL(number, h.Message())
}

// WhatsAppLinks lists one chat link per configured number, labelled "+<number>".
func (h Hero) WhatsAppLinks() []Link {
	links := make([]Link, 0, len(h.WhatsApp))
	for _, number := range h.WhatsApp {
		if number == "" {
			continue
		}
		links = append(links, Link{Href: WhatsAppURL(number, h.Message()), Label: "+" + number})
	}
	return links
}

// PhoneLinks lists one tel: link per phone number.
func (h Hero) PhoneLinks() []Link {
	links := make([]Link, 0, len(h.Phone))
	for _, phone := range h.Phone {
		if phone == "" {
			continue
		}
		links = append(links, Link{Href: TelURL(phone), Label: phone})
	}
	return links
}

// Counters returns the count-up animation for every stat, staggered by position.
func (h Hero) Counters() []Counter {
	counters := make([]Counter, len(h.Stats))
	for i, stat := range h.Stats {
		counters[i] = stat.Counter(i)
	}
	return counters
}

// WhatsAppURL builds a wa.me chat link with a pre-filled message.
func WhatsAppURL(number, message string) string {
	return "https://wa.me/" + number + "?text=" + EncodeURIComponent(message)
}

// TelURL keeps only digits and '+' of a phone number.
func TelURL(phone string) string {
	var b strings.Builder
	b.WriteString("tel:")
	for _, r := range phone {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var componentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes s the way browsers' encodeURIComponent does:
// spaces become %20 and !'()* stay literal.
func EncodeURIComponent(s string) string {
	return componentReplacer.Replace(url.QueryEscape(s))
}

// Counter describes the count-up of one stat number.
type Counter struct {
	Display string
	Target  int
	Plus    bool
	Delay   time.Duration
}

// Counter parses the stat number: every non-digit is dropped and a '+' marks the suffix.
func (s Stat) Counter(position int) Counter {
	text := string(s.Number)

	var digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	target, _ := strconv.Atoi(digits.String())

	return Counter{
		Display: text,
		Target:  target,
		Plus:    strings.Contains(text, "+"),
		Delay:   time.Duration(position) * CounterStagger,
	}
}

// StepInterval is the time between two animation frames.
func (c Counter) StepInterval() time.Duration {
	return CounterDuration / CounterSteps
}

// ValueAt returns the text shown after step frames: floor(step * target / 100),
// reaching exactly the target on the last step.
func (c Counter) ValueAt(step int) string {
	value := c.Target
	if step < CounterSteps {
		if step < 0 {
			step = 0
		}
		value = step * c.Target / CounterSteps
	}
	out := strconv.Itoa(value)
	if c.Plus {
		out += "+"
	}
	return out
}

// FooterServices returns the services linked from the footer.
func FooterServices(services []Service) []Service {
	if len(services) > FooterServiceCount {
		return services[:FooterServiceCount]
	}
	return services
}

// ServiceOptions builds the contact form select: placeholder, every service, then "Other".
func ServiceOptions(services []Service) []Option {
	options := make([]Option, 0, len(services)+2)
	options = append(options, Option{Value: "", Label: "Select Service"})
	for _, s := range services {
		options = append(options, Option{Value: s.Title, Label: s.Title})
	}
	return append(options, Option{Value: "Other", Label: "Other"})
}

// Href is the Behance link, or "#" when the course has none.
func (c Course) Href() string {
	if c.BehanceURL == "" {
		return "#"
	}
	return c.BehanceURL
}

// Target opens external course links in a new tab.
func (c Course) Target() string {
	if c.BehanceURL == "" {
		return "_self"
	}
	return "_blank"
}

// Rel is set only for external course links.
func (c Course) Rel() string {
	if c.BehanceURL == "" {
		return ""
	}
	return "noopener noreferrer"
}

// Category is a portfolio filter button.
type Category struct {
	Value string
	Label string
}

// Categories returns "all" followed by the distinct project categories in first-seen order.
func Categories(projects []Project) []Category {
	seen := map[string]bool{CategoryAll: true}
	categories := []Category{{Value: CategoryAll, Label: capitalize(CategoryAll)}}
	for _, p := range projects {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, Category{Value: p.Category, Label: capitalize(p.Category)})
	}
	return categories
}

// FilterProjects keeps the projects of category; "all" and "" keep every project.
func FilterProjects(projects []Project, category string) []Project {
	if category == "" || category == CategoryAll {
		return projects
	}
	var out []Project
	for _, p := range projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// FeaturedProjects returns up to MaxFeaturedProjects flagged projects, or the first ones
// when none is flagged.
func FeaturedProjects(projects []Project) []Project {
	var featured []Project
	for _, p := range projects {
		if p.Featured {
			featured = append(featured, p)
			if len(featured) == MaxFeaturedProjects {
				break
			}
		}
	}
	if len(featured) > 0 {
		return featured
	}
	if len(projects) > MaxFeaturedProjects {
		return projects[:MaxFeaturedProjects]
	}
	return projects
}

// ClientName falls back to DefaultProjectClient.
func (p Project) ClientName() string {
	if p.Client == "" {
		return DefaultProjectClient
	}
	return p.Client
}

// YearLabel falls back to DefaultProjectYear.
func (p Project) YearLabel() string {
	if p.Year == "" {
		return DefaultProjectYear
	}
	return string(p.Year)
}

// RoleLine joins role and company with " - " when a company is set.
func (t Testimonial) RoleLine() string {
	if t.Company == "" {
		return t.Role
	}
	return t.Role + " - " + t.Company
}

// LoopTestimonials repeats the list once so the track can scroll without a visible seam.
func LoopTestimonials(testimonials []Testimonial) []Testimonial {
	out := make([]Testimonial, 0, 2*len(testimonials))
	out = append(out, testimonials...)
	return append(out, testimonials...)
}

// IconClass falls back to DefaultQualificationIcon.
func (q Qualification) IconClass() string {
	if q.Icon == "" {
		return DefaultQualificationIcon
	}
	return q.Icon
}

// CertificateSlides keeps the certifications that have an image.
func CertificateSlides(certs []Certification) []Certification {
	var out []Certification
	for _, c := range certs {
		if c.Image != "" {
			out = append(out, c)
		}
	}
	return out
}

// Footer is the derived footer block.
type Footer struct {
	Brand       string
	Description string
	Location    string
	Year        int
	Social      []SocialLink
}

// BuildFooter derives the footer from hero.json: brand falls back to the first word of the
// title and the description to the hero description.
func BuildFooter(h Hero, now time.Time) Footer {
	brand := h.BrandName
	if brand == "" {
		brand = strings.SplitN(h.Title, " ", 2)[0]
	}
	description := h.FooterDescription
	if description == "" {
		description = h.Description
	}
	return Footer{
		Brand:       brand,
		Description: description,
		Location:    h.FooterLocation,
		Year:        now.Year(),
		Social:      h.SocialLinks.Active(),
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
