package domain

// Page is everything the site template renders. A nil pointer or empty slice means the
// section failed to load and is hidden.
type Page struct {
	Hero            *Hero
	HeaderWhatsApp  string
	FloatWhatsApp   string
	Counters        []Counter
	Timeline        []TimelineItem
	Clients         []Client
	Services        []Service
	FooterServices  []Service
	ServiceOptions  []Option
	Courses         []Course
	Trainings       []Training
	Projects        []Project
	Categories      []Category
	Featured        []Project
	Qualifications  []Qualification
	Certifications  []Certification
	CertSlides      []Certification
	Tools           []Tool
	Testimonials    []Testimonial
	TestimonialLoop []Testimonial
	Footer          *Footer

	// Carousels holds the current index of every carousel section, so the first paint
	// matches the server-side rotation.
	Carousels map[string]int
}

// CarouselIndex returns the current index of a carousel section, 0 when unknown.
func (p *Page) CarouselIndex(section string) int {
	if p == nil || p.Carousels == nil {
		return 0
	}
	return p.Carousels[section]
}
