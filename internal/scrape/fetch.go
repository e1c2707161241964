package scrape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"techready-engine/internal/scrape/util"
)

// Browser-like request signature. Some ATS hosts serve bot-detector stubs to
// anything that doesn't look like a desktop browser.
const (
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	browserAccept    = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"
	browserAcceptLng = "en-US,en;q=0.5"
)

// maxBodyBytes caps how much of a job posting page we read.
const maxBodyBytes = 8 << 20

// ErrInvalidURL reports a request URL that is not an absolute http(s) URL.
var ErrInvalidURL = errors.New("invalid url")

// FetchError is a non-2xx upstream response. The handler mirrors StatusCode
// back to the caller.
type FetchError struct {
	StatusCode int
	Status     string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch status %d %s", e.StatusCode, e.Status)
}

// Fetcher retrieves raw job-posting HTML with a browser-like signature.
// A single attempt, no retries; transient failures propagate to the caller.
type Fetcher struct {
	hc      *http.Client
	limiter *util.HostLimiter
}

func NewFetcher(timeout time.Duration, limiter *util.HostLimiter) *Fetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Fetcher{
		hc:      &http.Client{Timeout: timeout},
		limiter: limiter,
	}
}

// ValidateURL checks rawURL is a well-formed absolute http(s) URL.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return ErrInvalidURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrInvalidURL
	}
	return nil
}

// Fetch GETs rawURL and returns the response body as text. A non-2xx status
// yields a *FetchError; network failures come back wrapped.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if err := ValidateURL(rawURL); err != nil {
		return "", err
	}

	if f.limiter != nil {
		if err := f.limiter.WaitURL(ctx, rawURL); err != nil {
			return "", fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", browserAccept)
	req.Header.Set("Accept-Language", browserAcceptLng)

	res, err := f.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", rawURL, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", &FetchError{StatusCode: res.StatusCode, Status: http.StatusText(res.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(body), nil
}
