package profile

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"name":"steve"}`)
	}))
	defer srv.Close()

	var out struct {
		Name string `json:"name"`
	}
	if err := NewRequester("test", time.Second).GetJSON(context.Background(), srv.URL, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Name != "steve" {
		t.Errorf("expected steve, got %q", out.Name)
	}
}

func TestPostJSONSendsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		b, _ := io.ReadAll(r.Body)
		if string(b) != `{"q":"x"}` {
			t.Errorf("unexpected body %s", b)
		}
		io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	var out map[string]any
	err := NewRequester("test", time.Second).PostJSON(context.Background(), srv.URL, map[string]string{"q": "x"}, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRequesterFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		reason Reason
		code   int
	}{
		{"not found", http.StatusNotFound, `{"error":"nope"}`, ReasonNotFound, 404},
		{"server error", http.StatusBadGateway, "bad gateway", ReasonStatus, 502},
		{"bad json", http.StatusOK, "<html>", ReasonDecode, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			var out map[string]any
			err := NewRequester("test", time.Second).GetJSON(context.Background(), srv.URL, &out)

			var fe *FetchError
			if !errors.As(err, &fe) {
				t.Fatalf("expected *FetchError, got %T (%v)", err, err)
			}
			if fe.Reason != tt.reason {
				t.Errorf("expected reason %s, got %s", tt.reason, fe.Reason)
			}
			if fe.StatusCode() != tt.code {
				t.Errorf("expected status %d, got %d", tt.code, fe.StatusCode())
			}
			if fe.Game != "test" {
				t.Errorf("expected game tag, got %q", fe.Game)
			}
		})
	}
}

func TestRequesterTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	var out map[string]any
	err := NewRequester("test", time.Second).GetJSON(context.Background(), url, &out)
	if ReasonOf(err) != ReasonTransport {
		t.Fatalf("expected transport failure, got %v", err)
	}
}

func TestFetchErrorMessage(t *testing.T) {
	err := statusError("roblox", http.StatusInternalServerError, []byte(strings.Repeat("x", 300)))
	msg := err.Error()
	if !strings.HasPrefix(msg, "roblox profile: status (http 500)") {
		t.Errorf("unexpected message %q", msg)
	}
	if !strings.HasSuffix(msg, "...") {
		t.Errorf("expected truncated body in %q", msg)
	}
	if ReasonOf(errors.New("plain")) != "" {
		t.Error("plain errors carry no reason")
	}
}

func TestResponseBodyIsBounded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"name":"`)
		io.WriteString(w, strings.Repeat("x", MaxResponseBytes))
		io.WriteString(w, `"}`)
	}))
	defer srv.Close()

	var out struct {
		Name string `json:"name"`
	}
	err := NewRequester("test", 5*time.Second).GetJSON(context.Background(), srv.URL, &out)
	if ReasonOf(err) != ReasonDecode {
		t.Fatalf("expected decode failure for truncated body, got %v", err)
	}
}
