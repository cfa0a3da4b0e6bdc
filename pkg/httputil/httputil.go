package httputil

import (
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"go.uber.org/ratelimit"
)

// Client is a rate-limited HTTP client shared by the external provider
// services.
type Client struct {
	inner   *http.Client
	limiter ratelimit.Limiter
}

// NewClient returns a Client capped at requestsPerSecond outgoing requests.
func NewClient(requestsPerSecond int) *Client {
	return &Client{
		inner: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: ratelimit.New(requestsPerSecond),
	}
}

// NewHTTPRequest sends a request and returns the response status code along
// with the raw body.
func (c *Client) NewHTTPRequest(
	method, url, bodyString string, headers map[string]string,
) (int, string, error) {
	status, resp, _, err := c.NewHTTPRequestWithHeader(method, url, bodyString, headers)
	return status, resp, err
}

// NewHTTPRequestWithHeader behaves like NewHTTPRequest but also returns the
// response headers, for endpoints that report metadata out of band.
func (c *Client) NewHTTPRequestWithHeader(
	method, url, bodyString string, headers map[string]string,
) (int, string, http.Header, error) {
	c.limiter.Take()

	req, err := http.NewRequest(method, url, strings.NewReader(bodyString))
	if err != nil {
		return 0, "", nil, err
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.inner.Do(req)
	if err != nil {
		return 0, "", nil, err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return 0, "", nil, err
	}

	return resp.StatusCode, string(data), resp.Header, nil
}
