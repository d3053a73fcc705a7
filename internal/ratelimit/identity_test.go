package ratelimit

import (
	"net/http/httptest"
	"testing"
)

func TestClientIdentity_ForwardedForFirstHop(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1, 10.0.0.2")
	r.RemoteAddr = "10.0.0.3:4567"

	if got := ClientIdentity(r); got != "203.0.113.7" {
		t.Errorf("Expected first forwarded hop, got %q", got)
	}
}

func TestClientIdentity_ForwardedForTrimsWhitespace(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Forwarded-For", "  203.0.113.7 ,10.0.0.1")

	if got := ClientIdentity(r); got != "203.0.113.7" {
		t.Errorf("Expected trimmed forwarded hop, got %q", got)
	}
}

func TestClientIdentity_FallsBackToRemoteAddr(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.0.2.8:51234"

	if got := ClientIdentity(r); got != "192.0.2.8" {
		t.Errorf("Expected remote host, got %q", got)
	}
}

func TestClientIdentity_RemoteAddrWithoutPort(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.0.2.8"

	if got := ClientIdentity(r); got != "192.0.2.8" {
		t.Errorf("Expected raw remote address, got %q", got)
	}
}

func TestClientIdentity_Unknown(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = ""

	if got := ClientIdentity(r); got != "unknown" {
		t.Errorf("Expected unknown identity, got %q", got)
	}
}
