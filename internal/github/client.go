// Package github implements the four read-only GitHub REST lookups the tool
// catalog exposes. It is deliberately not a general GitHub client: no writes,
// no pagination, no rate-limit handling.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const DefaultBaseURL = "https://api.github.com"

const defaultTimeout = 30 * time.Second

// acceptHeader is sent on every request so pull-request file listings include
// patch text alongside the JSON metadata.
const acceptHeader = "application/vnd.github.v3.diff"

// Client performs authenticated GETs against the GitHub REST API.
type Client struct {
	baseURL string
	http    *resty.Client
}

// NewClient returns a client for api.github.com; baseURL may be overridden
// for tests or GitHub Enterprise hosts ("" means the default).
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	hc := resty.New()
	hc.SetTimeout(defaultTimeout)
	hc.SetRetryCount(1)
	hc.SetRetryWaitTime(500 * time.Millisecond)
	hc.SetRetryMaxWaitTime(2 * time.Second)
	// Retry transport failures only; a 4xx/5xx answer is final.
	hc.AddRetryCondition(func(r *resty.Response, err error) bool {
		return err != nil
	})

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    hc,
	}
}

// SetTransport swaps the underlying HTTP transport. Intended for tests.
func (c *Client) SetTransport(rt http.RoundTripper) {
	c.http.SetTransport(rt)
}

// GetUserData fetches a user's profile: GET /users/{username}.
func (c *Client) GetUserData(ctx context.Context, token, username string) (string, error) {
	return c.get(ctx, token, "/users/"+url.PathEscape(username))
}

// GetRepositoryData fetches a user's repositories: GET /users/{username}/repos.
func (c *Client) GetRepositoryData(ctx context.Context, token, username string) (string, error) {
	return c.get(ctx, token, "/users/"+url.PathEscape(username)+"/repos")
}

// GetCommitHistory fetches a repository's commits:
// GET /repos/{username}/{repoName}/commits.
func (c *Client) GetCommitHistory(ctx context.Context, token, username, repoName string) (string, error) {
	return c.get(ctx, token, "/repos/"+url.PathEscape(username)+"/"+url.PathEscape(repoName)+"/commits")
}

// GetPullRequestDiff fetches a pull request's changed files:
// GET /repos/{username}/{repoName}/pulls/{pullRequestNumber}/files.
func (c *Client) GetPullRequestDiff(ctx context.Context, token, username, repoName string, pullRequestNumber int) (string, error) {
	return c.get(ctx, token,
		"/repos/"+url.PathEscape(username)+"/"+url.PathEscape(repoName)+
			"/pulls/"+strconv.Itoa(pullRequestNumber)+"/files")
}

// get performs one GET and re-serializes the JSON body to compact text, so
// tool results carry a normalized representation into the transcript.
func (c *Client) get(ctx context.Context, token, path string) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "token "+token).
		SetHeader("Accept", acceptHeader).
		Get(c.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("github: GET %s: %w", path, err)
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return "", fmt.Errorf("GitHub API request failed: %s", http.StatusText(resp.StatusCode()))
	}

	var body any
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("github: decode %s response: %w", path, err)
	}
	out, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("github: encode %s response: %w", path, err)
	}
	return string(out), nil
}
