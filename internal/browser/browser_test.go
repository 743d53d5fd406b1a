package browser

import (
	"reflect"
	"testing"
)

func TestCommandRejectsNonHTTP(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://cs50.harvard.edu/python/2022/weeks/0/", false},
		{"http://example.com", false},
		{"file:///etc/passwd", true},
		{"javascript:alert(1)", true},
		{"ftp://example.com", true},
		{"", true},
	}

	for _, tt := range tests {
		_, _, err := command("linux", "", tt.url)
		if tt.wantErr && err == nil {
			t.Errorf("command(%q): expected error, got nil", tt.url)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("command(%q): unexpected error: %v", tt.url, err)
		}
	}
}

func TestCommandPerOS(t *testing.T) {
	const u = "https://cs50.harvard.edu/python/2022/weeks/1/"
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{"darwin", "open", []string{u}},
		{"linux", "xdg-open", []string{u}},
		{"freebsd", "xdg-open", []string{u}},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", u}},
	}
	for _, tt := range tests {
		name, args, err := command(tt.goos, "", u)
		if err != nil {
			t.Fatalf("command(%s): %v", tt.goos, err)
		}
		if name != tt.wantName || !reflect.DeepEqual(args, tt.wantArgs) {
			t.Errorf("command(%s) = %s %v, want %s %v", tt.goos, name, args, tt.wantName, tt.wantArgs)
		}
	}
}

func TestCommandBrowserOverride(t *testing.T) {
	const u = "https://cs50.harvard.edu/python/2022/weeks/2/"
	name, args, err := command("linux", "firefox --new-tab", u)
	if err != nil {
		t.Fatalf("command: %v", err)
	}
	if name != "firefox" || !reflect.DeepEqual(args, []string{"--new-tab", u}) {
		t.Errorf("command = %s %v, want firefox [--new-tab %s]", name, args, u)
	}

	if _, _, err := command("linux", "firefox", "file:///etc/passwd"); err == nil {
		t.Error("expected the scheme check to apply with an override")
	}
}

func TestOpenRejectsBeforeLaunching(t *testing.T) {
	if err := Open("file:///etc/passwd"); err == nil {
		t.Error("expected error for file:// URL")
	}
}
