package xkcd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// StatusError reports a non-success upstream response.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream responded with %s", e.Status)
}

// Client fetches comic payloads from the xkcd JSON API. Every call performs
// exactly one request; there are no retries and no timeout beyond the HTTP
// client default below.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Latest fetches the most recent comic.
func (c *Client) Latest(ctx context.Context) (json.RawMessage, error) {
	return c.fetch(ctx, "/info.0.json")
}

// Comic fetches the comic with the given number. The number is passed through
// unvalidated; a nonexistent comic surfaces as the upstream 404.
func (c *Client) Comic(ctx context.Context, num int) (json.RawMessage, error) {
	return c.fetch(ctx, fmt.Sprintf("/%d/info.0.json", num))
}

func (c *Client) fetch(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var payload json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode comic payload: %w", err)
	}
	return payload, nil
}

// LatestNum extracts the ordinal number from a comic payload. It bounds the
// random endpoint's draw.
func LatestNum(payload json.RawMessage) (int, error) {
	num := gjson.GetBytes(payload, "num")
	if !num.Exists() {
		return 0, fmt.Errorf("comic payload has no num field")
	}
	n := int(num.Int())
	if n < 1 {
		return 0, fmt.Errorf("comic payload has invalid num %d", n)
	}
	return n, nil
}
