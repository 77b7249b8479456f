package issues

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/scan-io-git/gctl/pkg/shared/errors"
	"github.com/scan-io-git/gctl/pkg/shared/httpclient"
)

// fakeTransport replays canned responses and records every request.
type fakeTransport struct {
	requests  []httpclient.Request
	responses []*httpclient.Response
	err       error
}

func (f *fakeTransport) Send(_ context.Context, req httpclient.Request) (*httpclient.Response, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.responses) == 0 {
		return nil, fmt.Errorf("unexpected request %s %s", req.Method, req.URL)
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

func jsonResponse(status int, v interface{}) *httpclient.Response {
	body, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return &httpclient.Response{StatusCode: status, Body: body}
}

// fakeTracker is an in-memory issue tracker serving fixed-size pages.
type fakeTracker struct {
	issues     []Issue
	listCalls  int
	created    []Candidate
	createErr  error
	listErr    error
	nextNumber int
}

func (f *fakeTracker) ListIssues(_ context.Context, page, perPage int) ([]Issue, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	start := (page - 1) * perPage
	if start >= len(f.issues) {
		return nil, nil
	}
	end := start + perPage
	if end > len(f.issues) {
		end = len(f.issues)
	}
	return append([]Issue(nil), f.issues[start:end]...), nil
}

func (f *fakeTracker) CreateIssue(_ context.Context, c Candidate) (*Issue, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextNumber++
	f.created = append(f.created, c)
	issue := Issue{ID: int64(1000 + f.nextNumber), Number: f.nextNumber, Title: c.Title, State: "open"}
	f.issues = append(f.issues, issue)
	return &issue, nil
}

func (f *fakeTracker) createdTitles() []string {
	titles := make([]string, 0, len(f.created))
	for _, c := range f.created {
		titles = append(titles, c.Title)
	}
	return titles
}

func numberedIssues(n int, prefix string) []Issue {
	out := make([]Issue, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Issue{ID: int64(i), Number: i, Title: fmt.Sprintf("%s-%d", prefix, i), State: "open"})
	}
	return out
}

// mapReader serves documents from memory; unknown paths are read from disk.
type mapReader map[string]string

func (m mapReader) Read(_ context.Context, path string) ([]byte, error) {
	if doc, ok := m[path]; ok {
		return []byte(doc), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIoError(path, err)
	}
	return data, nil
}

func sarifDocument(ruleIDs ...string) string {
	return sarifDocumentWithCatalog(ruleIDs, ruleIDs...)
}

// sarifDocumentWithCatalog declares catalog as the driver's rules and emits one result per ruleID.
func sarifDocumentWithCatalog(catalog []string, ruleIDs ...string) string {
	rules := make([]string, 0, len(catalog))
	for _, id := range catalog {
		rules = append(rules, fmt.Sprintf(`{"id":%q,"help":{"markdown":"help %s"}}`, id, id))
	}
	results := make([]string, 0, len(ruleIDs))
	for _, id := range ruleIDs {
		results = append(results, fmt.Sprintf(
			`{"ruleId":%q,"message":{"text":"msg %s"},"locations":[{"physicalLocation":{"artifactLocation":{"uri":"go.mod"}}}]}`, id, id))
	}
	return fmt.Sprintf(`{"version":"2.1.0","runs":[{"tool":{"driver":{"name":"Trivy","rules":[%s]}},"results":[%s]}]}`,
		strings.Join(rules, ","), strings.Join(results, ","))
}

