package minecraft

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"profile-bot/internal/profile"
)

const playerJSON = `{
	"success": true,
	"data": {
		"uuid": "0b6a7c1e4d2f4c7a9e3b5d1f2a4c6e8b",
		"username": "Shir0haru",
		"skins": [{"id": "a1b2c3"}],
		"capes": [{"id": 17}],
		"location": {"code": "jp", "country": "Japan"},
		"views_monthly": 12,
		"views_lifetime": 3400
	}
}`

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/players/Shir0haru" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		io.WriteString(w, playerJSON)
	}))
	defer srv.Close()

	p, err := NewClient(srv.URL, time.Second).Fetch(context.Background(), "Shir0haru")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checks := map[string][2]string{
		"uuid":     {p.UUID, "0b6a7c1e4d2f4c7a9e3b5d1f2a4c6e8b"},
		"profile":  {p.ProfileURL, "https://crafty.gg/@Shir0haru"},
		"page":     {p.PageURL, "https://crafty.gg/player/0b6a7c1e4d2f4c7a9e3b5d1f2a4c6e8b"},
		"skin":     {p.SkinURL, "https://minotar.net/helm/0b6a7c1e4d2f4c7a9e3b5d1f2a4c6e8b/512.png"},
		"preview":  {p.PreviewSkin, "https://crafty.gg/skins/a1b2c3"},
		"cape":     {p.PreviewCape, "https://crafty.gg/capes/17"},
		"location": {p.Location, "🇯🇵 Japan"},
		"download": {p.DownloadSkin, "https://minecraft.tools/download-skin/Shir0haru"},
	}
	for name, c := range checks {
		if c[0] != c[1] {
			t.Errorf("%s: got %q, want %q", name, c[0], c[1])
		}
	}
	if p.MonthlyViews != 12 || p.LifetimeViews != 3400 {
		t.Errorf("unexpected views %d/%d", p.MonthlyViews, p.LifetimeViews)
	}
}

func TestFetchWithoutTextures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":true,"data":{"uuid":"abc","username":"Steve","skins":[],"capes":[]}}`)
	}))
	defer srv.Close()

	p, err := NewClient(srv.URL, time.Second).Fetch(context.Background(), "Steve")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PreviewSkin != "" || p.PreviewCape != "" {
		t.Errorf("expected no previews, got %q / %q", p.PreviewSkin, p.PreviewCape)
	}
	if p.Location != "🌍 Unknown" {
		t.Errorf("unexpected location %q", p.Location)
	}
}

func TestFetchNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"success":false}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Fetch(context.Background(), "ghost")
	if profile.ReasonOf(err) != profile.ReasonNotFound {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestFetchEmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":false,"data":null}`)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Fetch(context.Background(), "ghost")
	if profile.ReasonOf(err) != profile.ReasonNotFound {
		t.Fatalf("expected not_found, got %v", err)
	}
}
