package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func releaseServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		current string
		want    string
	}{
		{"newer", http.StatusOK, `{"tag_name":"v1.2.0"}`, "1.1.0", "1.2.0"},
		{"newer major", http.StatusOK, `{"tag_name":"v2.0.0"}`, "v1.9.9", "2.0.0"},
		{"same", http.StatusOK, `{"tag_name":"v1.2.0"}`, "v1.2.0", ""},
		{"older", http.StatusOK, `{"tag_name":"v1.0.0"}`, "1.2.0", ""},
		{"numeric not lexical", http.StatusOK, `{"tag_name":"v1.10.0"}`, "1.9.0", "1.10.0"},
		{"prerelease current", http.StatusOK, `{"tag_name":"v1.2.0"}`, "1.1.0-rc1", "1.2.0"},
		{"empty tag", http.StatusOK, `{}`, "1.0.0", ""},
		{"not found", http.StatusNotFound, `{"message":"Not Found"}`, "1.0.0", ""},
		{"bad json", http.StatusOK, `{`, "1.0.0", ""},
	}
	for _, tt := range tests {
		srv := releaseServer(t, tt.status, tt.body)
		got := check(context.Background(), srv.Client(), srv.URL, tt.current)
		if tt.want == "" {
			if got != nil {
				t.Errorf("%s: expected nil, got %+v", tt.name, got)
			}
			continue
		}
		if got == nil || got.LatestVersion != tt.want {
			t.Errorf("%s: expected %s, got %+v", tt.name, tt.want, got)
		}
	}
}

func TestCheckSkipsDevBuilds(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"tag_name":"v9.0.0"}`))
	}))
	defer srv.Close()

	if got := check(context.Background(), srv.Client(), srv.URL, "dev"); got != nil {
		t.Errorf("expected nil for dev build, got %+v", got)
	}
	if hits.Load() != 0 {
		t.Errorf("expected no request for dev build, got %d", hits.Load())
	}
}

func TestCheckUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if got := check(context.Background(), http.DefaultClient, url, "1.0.0"); got != nil {
		t.Errorf("expected nil for unreachable server, got %+v", got)
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want [3]int
		ok   bool
	}{
		{"v1.2.3", [3]int{1, 2, 3}, true},
		{"1.2", [3]int{1, 2, 0}, true},
		{"2.0.0+build.5", [3]int{2, 0, 0}, true},
		{"dev", [3]int{}, false},
		{"", [3]int{}, false},
		{"1.2.3.4", [3]int{}, false},
	}
	for _, tt := range tests {
		got, ok := parseVersion(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("parseVersion(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
