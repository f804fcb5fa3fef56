package proxy

import (
	"bufio"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"portfolio-site/internal/core/logger"

	"github.com/elazarl/goproxy"
	"go.uber.org/zap"
)

// dialTimeout bounds the connection to the upstream proxy.
const dialTimeout = 30 * time.Second

// ForwardingProxy is a local unauthenticated proxy that tunnels every connection through
// an authenticated upstream. Chromium cannot take proxy credentials on its command line,
// so the browser is pointed at this forwarder instead.
type ForwardingProxy struct {
	upstream Settings
	log      *zap.Logger

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
	running  bool
}

// NewForwardingProxy creates a forwarder for upstream.
func NewForwardingProxy(upstream Settings) (*ForwardingProxy, error) {
	if !upstream.HasProxy() {
		return nil, errors.New("forwarding proxy: upstream is not configured")
	}
	return &ForwardingProxy{
		upstream: upstream,
		log:      logger.Named("proxy"),
	}, nil
}

// Start listens on a random loopback port and returns the address for the browser,
// e.g. "http://127.0.0.1:41234". Calling Start again returns the same address.
func (fp *ForwardingProxy) Start() (string, error) {
	fp.mu.Lock()
	defer fp.mu.Unlock()

	if fp.running {
		return fp.localAddr(), nil
	}

	server := goproxy.NewProxyHttpServer()
	server.ConnectDial = fp.dial
	server.Tr = &http.Transport{
		Dial: fp.dial,
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", fmt.Errorf("forwarding proxy: failed to listen: %w", err)
	}
	fp.listener = listener
	fp.server = &http.Server{
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := fp.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fp.log.Error("Local proxy server error", zap.Error(err))
		}
	}()

	fp.running = true
	fp.log.Debug("Forwarding proxy started",
		zap.String("local_addr", fp.localAddr()),
		zap.String("upstream", fp.upstream.HostPort()),
	)
	return fp.localAddr(), nil
}

// Stop shuts the forwarder down.
func (fp *ForwardingProxy) Stop() error {
	fp.mu.Lock()
	defer fp.mu.Unlock()

	if !fp.running {
		return nil
	}
	fp.running = false

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := fp.server.Shutdown(ctx); err != nil {
		fp.listener.Close()
		return fmt.Errorf("forwarding proxy: shutdown: %w", err)
	}
	return nil
}

// IsRunning reports whether the forwarder is accepting connections.
func (fp *ForwardingProxy) IsRunning() bool {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	return fp.running
}

func (fp *ForwardingProxy) localAddr() string {
	return "http://" + fp.listener.Addr().String()
}

// dial opens a CONNECT tunnel to addr through the upstream proxy.
func (fp *ForwardingProxy) dial(network, addr string) (net.Conn, error) {
	upstream := net.JoinHostPort(fp.upstream.Hostname, fmt.Sprint(fp.upstream.Port))

	conn, err := net.DialTimeout("tcp", upstream, dialTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to upstream proxy %s: %w", upstream, err)
	}

	req := fmt.Sprintf("CONNECT %s HTTP/1.1\r\nHost: %s\r\n", addr, addr)
	if fp.upstream.HasCredentials() {
		token := base64.StdEncoding.EncodeToString([]byte(fp.upstream.Username + ":" + fp.upstream.Password))
		req += "Proxy-Authorization: Basic " + token + "\r\n"
	}
	req += "\r\n"

	if _, err := conn.Write([]byte(req)); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to send CONNECT request: %w", err)
	}

	resp, err := http.ReadResponse(bufio.NewReader(conn), &http.Request{Method: http.MethodConnect})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to read CONNECT response: %w", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		conn.Close()
		fp.log.Warn("Upstream proxy rejected CONNECT",
			zap.Int("status", resp.StatusCode),
			zap.String("target", addr),
		)
		return nil, fmt.Errorf("upstream proxy CONNECT failed with status: %d", resp.StatusCode)
	}

	return conn, nil
}
