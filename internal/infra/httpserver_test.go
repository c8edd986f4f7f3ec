package infra

import (
	"net/http"
	"testing"
	"time"
)

func TestNewHTTPServerAppliesConfiguredTimeouts(t *testing.T) {
	cfg := &Config{
		Port:                  "9090",
		HTTPReadTimeout:       11 * time.Second,
		HTTPReadHeaderTimeout: 3 * time.Second,
		HTTPWriteTimeout:      22 * time.Second,
		HTTPIdleTimeout:       33 * time.Second,
	}
	srv := NewHTTPServer(cfg, http.NotFoundHandler())

	if srv.Addr() != ":9090" {
		t.Fatalf("addr = %q, want :9090", srv.Addr())
	}
	if srv.server.ReadTimeout != cfg.HTTPReadTimeout {
		t.Fatalf("read timeout = %v, want %v", srv.server.ReadTimeout, cfg.HTTPReadTimeout)
	}
	if srv.server.ReadHeaderTimeout != cfg.HTTPReadHeaderTimeout {
		t.Fatalf("read header timeout = %v, want %v", srv.server.ReadHeaderTimeout, cfg.HTTPReadHeaderTimeout)
	}
	if srv.server.WriteTimeout != cfg.HTTPWriteTimeout {
		t.Fatalf("write timeout = %v, want %v", srv.server.WriteTimeout, cfg.HTTPWriteTimeout)
	}
	if srv.server.IdleTimeout != cfg.HTTPIdleTimeout {
		t.Fatalf("idle timeout = %v, want %v", srv.server.IdleTimeout, cfg.HTTPIdleTimeout)
	}
}
