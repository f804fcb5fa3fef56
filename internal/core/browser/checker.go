package browser

import (
	"context"
	"fmt"
	"sort"
	"time"

	"portfolio-site/internal/core/logger"
	"portfolio-site/internal/core/proxy"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

// Expectation is a CSS selector that must match at least Min elements on the rendered page.
type Expectation struct {
	Name     string
	Selector string
	Min      int
}

// DefaultExpectations covers the sections and carousels of the home page.
var DefaultExpectations = []Expectation{
	{Name: "hero", Selector: "#hero", Min: 1},
	{Name: "experience", Selector: "#experience", Min: 1},
	{Name: "clients", Selector: "#clients", Min: 1},
	{Name: "services", Selector: "#services", Min: 1},
	{Name: "courses", Selector: "#courses", Min: 1},
	{Name: "portfolio", Selector: "#portfolio", Min: 1},
	{Name: "qualifications", Selector: "#qualifications", Min: 1},
	{Name: "certifications", Selector: "#certifications", Min: 1},
	{Name: "contact form", Selector: "#contactForm", Min: 1},
	{Name: "footer", Selector: "#footerCopyright", Min: 1},
	{Name: "featured-projects carousel", Selector: `[data-carousel="featured-projects"] .carousel-item`, Min: 1},
	{Name: "trainings carousel", Selector: `[data-carousel="trainings"] .carousel-item`, Min: 1},
	{Name: "certificates carousel", Selector: `[data-carousel="certificates"] .carousel-item`, Min: 1},
	{Name: "testimonials carousel", Selector: `[data-carousel="testimonials"] .carousel-item`, Min: 1},
}

// Report is the outcome of one page check.
type Report struct {
	URL       string         `json:"url"`
	Title     string         `json:"title"`
	Counts    map[string]int `json:"counts"`
	Missing   []string       `json:"missing"`
	CheckedAt time.Time      `json:"checked_at"`
}

// OK reports whether every expectation was met.
func (r *Report) OK() bool {
	return len(r.Missing) == 0
}

// Evaluate builds a report from the element counts found per expectation name.
// Missing names are sorted.
func Evaluate(pageURL string, counts map[string]int, expectations []Expectation) *Report {
	report := &Report{
		URL:     pageURL,
		Counts:  make(map[string]int, len(expectations)),
		Missing: []string{},
	}
	for _, e := range expectations {
		n := counts[e.Name]
		report.Counts[e.Name] = n
		want := e.Min
		if want <= 0 {
			want = 1
		}
		if n < want {
			report.Missing = append(report.Missing, e.Name)
		}
	}
	sort.Strings(report.Missing)
	return report
}

// Checker loads a page in headless Chromium and counts the elements behind each expectation.
type Checker struct {
	proxy   proxy.Settings
	timeout time.Duration
	logger  *zap.Logger
	now     func() time.Time
}

// NewChecker creates a checker. A zero proxy.Settings connects directly.
func NewChecker(p proxy.Settings, timeout time.Duration) *Checker {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Checker{
		proxy:   p,
		timeout: timeout,
		logger:  logger.Named("browser"),
		now:     time.Now,
	}
}

// Check renders pageURL and evaluates the expectations against the live DOM.
func (c *Checker) Check(ctx context.Context, pageURL string, expectations []Expectation) (*Report, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.logger.Debug("Launching browser...",
		zap.String("url", pageURL),
		zap.Bool("proxy_enabled", c.proxy.HasProxy()),
		zap.String("proxy_host", c.proxy.HostPort()),
	)

	l := launcher.New().
		Context(ctx).
		Headless(true).
		NoSandbox(true)

	if c.proxy.HasProxy() {
		proxyAddr := c.proxy.HostPort()
		if c.proxy.HasCredentials() {
			fp, err := proxy.NewForwardingProxy(c.proxy)
			if err != nil {
				return nil, err
			}
			if proxyAddr, err = fp.Start(); err != nil {
				return nil, err
			}
			defer fp.Stop()
		}
		l = l.Proxy(proxyAddr)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}
	defer l.Cleanup()

	browser := rod.New().Context(ctx).ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{URL: pageURL})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", pageURL, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("page did not load: %w", err)
	}

	counts := make(map[string]int, len(expectations))
	for _, e := range expectations {
		els, err := page.Elements(e.Selector)
		if err != nil {
			return nil, fmt.Errorf("query %q: %w", e.Selector, err)
		}
		counts[e.Name] = len(els)
	}

	report := Evaluate(pageURL, counts, expectations)
	report.CheckedAt = c.now()
	if info, err := page.Info(); err == nil {
		report.Title = info.Title
	}

	if !report.OK() {
		c.logger.Warn("Page is missing expected elements",
			zap.String("url", pageURL),
			zap.Strings("missing", report.Missing),
		)
	}
	return report, nil
}
