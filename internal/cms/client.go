package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/iaamonline/member-portal/internal/metrics"
)

// Client talks to the CMS REST API. Reads fail open: upstream failures
// degrade to empty results so a page still renders without the section.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    http.DefaultClient,
	}
}

// WithHTTPClient overrides the transport, used by tests.
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.http = h
	return c
}

// envelope is the CMS response wrapper: {data, meta}.
type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta Meta            `json:"meta"`
}

type Meta struct {
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

type upstreamError struct {
	status int
	path   string
}

func (e *upstreamError) Error() string {
	return fmt.Sprintf("cms: %s returned status %d", e.path, e.status)
}

// get issues an authenticated GET and decodes the raw response body into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, c.token, out)
}

// getData issues a GET and unwraps the {data, meta} envelope.
func (c *Client) getData(ctx context.Context, path string, query url.Values, out any) (Meta, error) {
	var env envelope
	if err := c.get(ctx, path, query, &env); err != nil {
		return Meta{}, err
	}
	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return env.Meta, fmt.Errorf("cms: decode %s data: %w", path, err)
		}
	}
	return env.Meta, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, bearer string, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("cms: encode %s body: %w", path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("cms: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.CMSFailures.WithLabelValues("transport").Inc()
		return fmt.Errorf("cms: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.CMSFailures.WithLabelValues("status").Inc()
		io.Copy(io.Discard, resp.Body)
		return &upstreamError{status: resp.StatusCode, path: path}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cms: decode %s response: %w", path, err)
	}
	return nil
}

// logDegrade records a fail-open read. Callers substitute the empty result.
func logDegrade(path string, err error) {
	log.Warn().Err(err).Str("path", path).Msg("cms fetch failed, serving empty result")
}
