package proxy

import (
	"fmt"
	"net/url"
	"strconv"
)

// Settings describes an upstream HTTP proxy for the headless browser.
type Settings struct {
	Hostname string
	Port     int
	Username string
	Password string
}

// Parse reads a proxy URL of the form http://[user:pass@]host:port. An empty string
// yields zero Settings, meaning no proxy.
func Parse(raw string) (Settings, error) {
	if raw == "" {
		return Settings{}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid proxy URL: %w", err)
	}
	if u.Scheme != "http" {
		return Settings{}, fmt.Errorf("invalid proxy URL: unsupported scheme %q", u.Scheme)
	}

	port, err := strconv.Atoi(u.Port())
	if err != nil || port <= 0 {
		return Settings{}, fmt.Errorf("invalid proxy URL: missing port in %q", raw)
	}

	s := Settings{Hostname: u.Hostname(), Port: port}
	if u.User != nil {
		s.Username = u.User.Username()
		s.Password, _ = u.User.Password()
	}
	return s, nil
}

// HasProxy reports whether a proxy is configured.
func (p Settings) HasProxy() bool {
	return p.Hostname != "" && p.Port > 0
}

// HasCredentials reports whether the proxy needs authentication.
func (p Settings) HasCredentials() bool {
	return p.Username != "" && p.Password != ""
}

// HostPort returns the proxy address without credentials, e.g. "http://proxy.local:3128".
func (p Settings) HostPort() string {
	if !p.HasProxy() {
		return ""
	}
	return fmt.Sprintf("http://%s:%d", p.Hostname, p.Port)
}

// FullURL returns the proxy address with credentials when present.
func (p Settings) FullURL() string {
	if !p.HasProxy() {
		return ""
	}
	if !p.HasCredentials() {
		return p.HostPort()
	}
	u := url.URL{
		Scheme: "http",
		User:   url.UserPassword(p.Username, p.Password),
		Host:   fmt.Sprintf("%s:%d", p.Hostname, p.Port),
	}
	return u.String()
}
