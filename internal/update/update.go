package update

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	releasesURL  = "https://api.github.com/repos/kakimtched/cs50p-final-project/releases/latest"
	checkTimeout = 5 * time.Second
)

// Result names a release newer than the running build.
type Result struct {
	LatestVersion string
}

type release struct {
	TagName string `json:"tag_name"`
}

// Check reports the latest release when it is newer than currentVersion.
// Development builds and every failure yield nil.
func Check(ctx context.Context, currentVersion string) *Result {
	return check(ctx, http.DefaultClient, releasesURL, currentVersion)
}

func check(ctx context.Context, client *http.Client, url, currentVersion string) *Result {
	current, ok := parseVersion(currentVersion)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "cs50p/"+currentVersion)

	resp, err := client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil
	}
	latest, ok := parseVersion(rel.TagName)
	if !ok || !newer(latest, current) {
		return nil
	}
	return &Result{LatestVersion: strings.TrimPrefix(rel.TagName, "v")}
}

// parseVersion reads "v1.2.3" or "1.2" into numeric parts. Pre-release and
// build suffixes are ignored.
func parseVersion(s string) ([3]int, bool) {
	var v [3]int
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if i := strings.IndexAny(s, "-+"); i >= 0 {
		s = s[:i]
	}
	parts := strings.Split(s, ".")
	if s == "" || len(parts) > 3 {
		return v, false
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return v, false
		}
		v[i] = n
	}
	return v, true
}

func newer(a, b [3]int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return false
}
