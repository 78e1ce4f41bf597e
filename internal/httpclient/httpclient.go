// Package httpclient provides the shared HTTP client and request defaults.
package httpclient

import (
	"net/http"
	"time"
)

// HTTPClient is an interface that defines a single method, Do, for executing
// an HTTP request and returning the response or an error. It allows for easy
// mocking or swapping of different HTTP client implementations.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the HTTP client used for all remote calls (Steam app list,
// PCGamingWiki pages). It can be set to any implementation of the HTTPClient
// interface; tests replace it with a stub.
var Client HTTPClient

// InitClient initializes the shared HTTP client with a sane timeout. Both
// endpoints we talk to are anonymous, so no cookie jar is needed.
func InitClient() error {
	Client = &http.Client{
		Timeout: 30 * time.Second,
	}
	return nil
}

// NewRequest builds a GET request for the target URL with browser-like
// headers; some wikis serve reduced markup to unknown user agents.
// Note: Do NOT set Accept-Encoding - Go's http.Client handles gzip automatically.
func NewRequest(targetURL string) (*http.Request, error) {
	req, err := http.NewRequest("GET", targetURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,application/json;q=0.8,*/*;q=0.7")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Connection", "keep-alive")

	return req, nil
}
