package bitbucket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/marcelsud/webhookconfig-repository/metrics"
	"github.com/rs/zerolog"
)

const (
	DefaultAPIEndpoint = "https://api.bitbucket.org"
	DefaultAPIVersion  = "2.0"
)

/* Client talks to the repository webhook endpoints of the Bitbucket Cloud REST API
 * Uses pointer semantics as it's an API, not data
 * Each call issues exactly one request, there is no retry
 */
type Client struct {
	baseURL    string
	httpClient *http.Client
	recorder   metrics.Recorder
}

// NewClient creates a client for endpoint and version, empty values fall back to the public API
// httpClient may be nil, in which case http.DefaultClient is used
func NewClient(endpoint, version string, httpClient *http.Client, recorder metrics.Recorder) *Client {
	if endpoint == "" {
		endpoint = DefaultAPIEndpoint
	}
	if version == "" {
		version = DefaultAPIVersion
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &Client{
		baseURL:    strings.TrimRight(endpoint, "/") + "/" + strings.Trim(version, "/"),
		httpClient: httpClient,
		recorder:   recorder,
	}
}

// CreateHook registers hook on repo: POST /repositories/{workspace}/{repo}/hooks
func (c *Client) CreateHook(ctx context.Context, creds Credentials, repo Repository, hook Hook) (HookResponse, error) {
	var created HookResponse
	if err := c.do(ctx, http.MethodPost, hooksPath(repo), creds, hook, &created); err != nil {
		return HookResponse{}, fmt.Errorf("creating hook: %w", err)
	}
	return created, nil
}

// UpdateHook replaces the hook with id: PUT /repositories/{workspace}/{repo}/hooks/{id}
func (c *Client) UpdateHook(ctx context.Context, creds Credentials, repo Repository, id string, hook Hook) (HookResponse, error) {
	var updated HookResponse
	if err := c.do(ctx, http.MethodPut, hookPath(repo, id), creds, hook, &updated); err != nil {
		return HookResponse{}, fmt.Errorf("updating hook: %w", err)
	}
	return updated, nil
}

// DeleteHook removes the hook with id: DELETE /repositories/{workspace}/{repo}/hooks/{id}
func (c *Client) DeleteHook(ctx context.Context, creds Credentials, repo Repository, id string) error {
	if err := c.do(ctx, http.MethodDelete, hookPath(repo, id), creds, nil, nil); err != nil {
		return fmt.Errorf("deleting hook: %w", err)
	}
	return nil
}

// GetHook fetches the hook with id: GET /repositories/{workspace}/{repo}/hooks/{id}
func (c *Client) GetHook(ctx context.Context, creds Credentials, repo Repository, id string) (HookResponse, error) {
	var hook HookResponse
	if err := c.do(ctx, http.MethodGet, hookPath(repo, id), creds, nil, &hook); err != nil {
		return HookResponse{}, fmt.Errorf("getting hook: %w", err)
	}
	return hook, nil
}

func (c *Client) do(ctx context.Context, method, path string, creds Credentials, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", creds.Header())

	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("method", method).Str("path", path).Msg("HTTP request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recorder.RecordRequest(ctx, method, 0, time.Since(start))
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()
	c.recorder.RecordRequest(ctx, method, resp.StatusCode, time.Since(start))

	return interpretResponse(resp, logger, out)
}

func hooksPath(repo Repository) string {
	return "/repositories/" + url.PathEscape(repo.Workspace) + "/" + url.PathEscape(repo.Slug) + "/hooks"
}

func hookPath(repo Repository, id string) string {
	return hooksPath(repo) + "/" + url.PathEscape(id)
}
