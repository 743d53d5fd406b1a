package browser

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Open launches the system browser on a week page. Only http and https
// URLs are accepted. $BROWSER, when set, takes precedence over the OS opener.
func Open(rawURL string) error {
	name, args, err := command(runtime.GOOS, os.Getenv("BROWSER"), rawURL)
	if err != nil {
		return err
	}
	return exec.Command(name, args...).Start()
}

func command(goos, override, rawURL string) (string, []string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", nil, fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", nil, fmt.Errorf("refusing to open URL with scheme %q (only http/https allowed)", u.Scheme)
	}

	if fields := strings.Fields(override); len(fields) > 0 {
		return fields[0], append(fields[1:], rawURL), nil
	}

	switch goos {
	case "darwin":
		return "open", []string{rawURL}, nil
	case "windows":
		// rundll32 avoids cmd /c start interpreting the URL
		return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}, nil
	default:
		return "xdg-open", []string{rawURL}, nil
	}
}
