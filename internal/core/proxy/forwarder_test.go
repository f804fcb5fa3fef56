package proxy

import (
	"bufio"
	"encoding/base64"
	"io"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startUpstream runs a minimal CONNECT proxy that echoes tunneled bytes back.
func startUpstream(t *testing.T, user, pass string) Settings {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	want := "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(conn net.Conn) {
				defer conn.Close()
				br := bufio.NewReader(conn)
				req, err := http.ReadRequest(br)
				if err != nil {
					return
				}
				if req.Method != http.MethodConnect || req.Header.Get("Proxy-Authorization") != want {
					io.WriteString(conn, "HTTP/1.1 407 Proxy Authentication Required\r\nContent-Length: 0\r\n\r\n")
					return
				}
				io.WriteString(conn, "HTTP/1.1 200 Connection established\r\n\r\n")
				io.Copy(conn, br)
			}(conn)
		}
	}()

	port := ln.Addr().(*net.TCPAddr).Port
	return Settings{Hostname: "127.0.0.1", Port: port, Username: user, Password: pass}
}

func TestNewForwardingProxy_RequiresUpstream(t *testing.T) {
	_, err := NewForwardingProxy(Settings{})
	assert.Error(t, err)
}

func TestForwardingProxy_Dial(t *testing.T) {
	upstream := startUpstream(t, "user", "secret")

	fp, err := NewForwardingProxy(upstream)
	require.NoError(t, err)

	conn, err := fp.dial("tcp", "portfolio.example:443")
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte("hello"))
	require.NoError(t, err)

	buf := make([]byte, 5)
	_, err = io.ReadFull(conn, buf)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(buf))
}

func TestForwardingProxy_DialRejected(t *testing.T) {
	upstream := startUpstream(t, "user", "secret")
	upstream.Password = "wrong"

	fp, err := NewForwardingProxy(upstream)
	require.NoError(t, err)

	_, err = fp.dial("tcp", "portfolio.example:443")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "407")
}

func TestForwardingProxy_StartStop(t *testing.T) {
	fp, err := NewForwardingProxy(Settings{Hostname: "127.0.0.1", Port: 3128})
	require.NoError(t, err)

	addr, err := fp.Start()
	require.NoError(t, err)
	assert.Contains(t, addr, "http://127.0.0.1:")
	assert.True(t, fp.IsRunning())

	again, err := fp.Start()
	require.NoError(t, err)
	assert.Equal(t, addr, again)

	require.NoError(t, fp.Stop())
	assert.False(t, fp.IsRunning())
	require.NoError(t, fp.Stop())
}
