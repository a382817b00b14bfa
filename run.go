package portico

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/portico-dev/portico/internal/reload"
)

// Development-server defaults, overridable via environment or arguments.
const (
	defaultHost = "127.0.0.1"
	defaultPort = "8050"
)

// Run starts the development server and blocks in its listen loop. Empty
// host/port fall back to the HOST and PORT environment variables, then to
// 127.0.0.1:8050. A .env file in the working directory is loaded first if
// present. With debug enabled, a live-reload endpoint is mounted and the
// shared assets directory is watched for changes.
//
// This is not a production entry point: run the Handler under a real HTTP
// server and reverse proxy for deployment.
func (m *Manager) Run(host, port string, debug bool) error {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	addr, err := resolveAddr(host, port)
	if err != nil {
		return err
	}

	display := "http://" + addr
	if proxy := os.Getenv("DASH_PROXY"); proxy != "" {
		display, err = resolveProxy(proxy, addr)
		if err != nil {
			return err
		}
	}

	if debug {
		m.reload = reload.NewServer()
		m.router.Get(reload.Path, m.reload.HandleWebSocket)
		if m.config.AssetsDir != "" {
			watcher, err := reload.Watch(m.config.AssetsDir, m.reload, m.logger)
			if err != nil {
				m.logger.Warn("asset watcher unavailable", "dir", m.config.AssetsDir, "error", err)
			} else {
				defer watcher.Close()
			}
		}
	}

	m.logger.Info("portico serving", "url", display, "debug", debug)
	return http.ListenAndServe(addr, m.Handler())
}

// resolveAddr applies environment defaults and validates the port.
func resolveAddr(host, port string) (string, error) {
	if host == "" {
		host = os.Getenv("HOST")
	}
	if host == "" {
		host = defaultHost
	}
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = defaultPort
	}

	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return "", fmt.Errorf("expecting an integer from 1 to 65535, found port %q", port)
	}

	return host + ":" + strconv.Itoa(n), nil
}

// resolveProxy validates a DASH_PROXY value of the form "bind::public". The
// bind half must match the address the server resolved; the public half is
// what gets displayed.
func resolveProxy(proxy, addr string) (string, error) {
	parts := strings.SplitN(proxy, "::", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("DASH_PROXY %q is not of the form bind::public", proxy)
	}
	bind, public := parts[0], parts[1]
	if stripScheme(bind) != addr {
		return "", fmt.Errorf("DASH_PROXY bind %q does not match server address %q", bind, addr)
	}
	return public, nil
}

func stripScheme(u string) string {
	if i := strings.Index(u, "://"); i >= 0 {
		return u[i+3:]
	}
	return u
}
