package issues

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v47/github"

	"github.com/scan-io-git/gctl/pkg/shared/errors"
	"github.com/scan-io-git/gctl/pkg/shared/httpclient"
)

const (
	githubMediaType  = "application/vnd.github+json"
	githubAPIVersion = "2022-11-28"
)

// Target identifies the repository issues are filed against.
type Target struct {
	APIURL string
	Owner  string
	Repo   string
	Token  string
}

// GitHubClient implements Tracker on top of the REST issues endpoints.
type GitHubClient struct {
	transport httpclient.Transport
	target    Target
}

func NewGitHubClient(transport httpclient.Transport, target Target) *GitHubClient {
	if target.APIURL == "" {
		target.APIURL = "https://api.github.com"
	}
	return &GitHubClient{transport: transport, target: target}
}

func (c *GitHubClient) issuesURL() string {
	return fmt.Sprintf("%s/repos/%s/%s/issues",
		strings.TrimRight(c.target.APIURL, "/"),
		url.PathEscape(c.target.Owner),
		url.PathEscape(c.target.Repo))
}

func (c *GitHubClient) headers() http.Header {
	h := http.Header{}
	h.Set("Accept", githubMediaType)
	h.Set("Authorization", "Bearer "+c.target.Token)
	h.Set("X-GitHub-Api-Version", githubAPIVersion)
	return h
}

// ListIssues fetches one page of the repository's open issues.
func (c *GitHubClient) ListIssues(ctx context.Context, page, perPage int) ([]Issue, error) {
	reqURL := fmt.Sprintf("%s?per_page=%d&page=%d", c.issuesURL(), perPage, page)

	var raw []*github.Issue
	if err := c.do(ctx, http.MethodGet, reqURL, nil, &raw); err != nil {
		return nil, err
	}

	issues := make([]Issue, 0, len(raw))
	for _, iss := range raw {
		if iss == nil {
			continue
		}
		issues = append(issues, convertIssue(iss))
	}
	return issues, nil
}

// CreateIssue files c and returns the issue as created by the tracker.
func (c *GitHubClient) CreateIssue(ctx context.Context, cand Candidate) (*Issue, error) {
	reqURL := c.issuesURL()
	body, err := json.Marshal(cand)
	if err != nil {
		return nil, errors.NewRemoteError(http.MethodPost, reqURL, 0, fmt.Errorf("failed to encode issue: %w", err))
	}

	var raw github.Issue
	if err := c.do(ctx, http.MethodPost, reqURL, body, &raw); err != nil {
		return nil, err
	}
	issue := convertIssue(&raw)
	return &issue, nil
}

func (c *GitHubClient) do(ctx context.Context, method, reqURL string, body []byte, out interface{}) error {
	h := c.headers()
	if body != nil {
		h.Set("Content-Type", "application/json")
	}

	resp, err := c.transport.Send(ctx, httpclient.Request{
		Method: method,
		URL:    reqURL,
		Header: h,
		Body:   body,
	})
	if err != nil {
		return errors.NewRemoteError(method, reqURL, 0, err)
	}
	if !resp.IsSuccess() {
		return errors.NewRemoteError(method, reqURL, resp.StatusCode, fmt.Errorf("%s", errorMessage(resp.Body)))
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return errors.NewRemoteError(method, reqURL, resp.StatusCode, fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

// errorMessage extracts the "message" of a GitHub error payload, falling back to the raw body.
func errorMessage(body []byte) string {
	var er github.ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Message != "" {
		return er.Message
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200] + "..."
	}
	if msg == "" {
		return "empty response body"
	}
	return msg
}

// convertIssue converts a GitHub Issue object to an Issue.
func convertIssue(iss *github.Issue) Issue {
	return Issue{
		ID:     iss.GetID(),
		Number: iss.GetNumber(),
		Title:  iss.GetTitle(),
		State:  iss.GetState(),
		URL:    iss.GetURL(),
	}
}
