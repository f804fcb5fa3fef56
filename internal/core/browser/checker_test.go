package browser

import (
	"testing"
	"time"

	"portfolio-site/internal/core/proxy"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	expectations := []Expectation{
		{Name: "hero", Selector: "#hero", Min: 1},
		{Name: "testimonials", Selector: ".testimonial", Min: 2},
		{Name: "footer", Selector: "footer"},
	}

	report := Evaluate("http://localhost:8080/", map[string]int{"hero": 1, "testimonials": 1}, expectations)

	assert.False(t, report.OK())
	assert.Equal(t, []string{"footer", "testimonials"}, report.Missing)
	assert.Equal(t, map[string]int{"hero": 1, "testimonials": 1, "footer": 0}, report.Counts)
}

func TestEvaluate_AllPresent(t *testing.T) {
	counts := make(map[string]int)
	for _, e := range DefaultExpectations {
		counts[e.Name] = 3
	}

	report := Evaluate("http://localhost:8080/", counts, DefaultExpectations)
	assert.True(t, report.OK())
	assert.Empty(t, report.Missing)
}

func TestNewChecker_Defaults(t *testing.T) {
	c := NewChecker(proxy.Settings{}, 0)
	assert.Equal(t, 60*time.Second, c.timeout)
	assert.False(t, c.proxy.HasProxy())
}
