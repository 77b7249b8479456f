package issues

import (
	"context"

	"github.com/scan-io-git/gctl/internal/sarif"
)

// Issue mirrors the tracker's issue representation.
type Issue struct {
	ID     int64  `json:"id"`
	Number int    `json:"number"`
	Title  string `json:"title"`
	State  string `json:"state"`
	URL    string `json:"url"`
}

// Candidate is the payload of an issue that may have to be created.
// Title is the dedup key within one repository.
type Candidate struct {
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	Assignees []string `json:"assignees"`
	Milestone *int     `json:"milestone"`
	Labels    []string `json:"labels"`
}

// NewCandidate builds the candidate for a finding.
func NewCandidate(f sarif.Finding, assignees, labels []string) Candidate {
	return Candidate{
		Title:     f.Title,
		Body:      f.Body(),
		Assignees: nonNil(assignees),
		Milestone: nil,
		Labels:    nonNil(labels),
	}
}

// Tracker is the remote issue API used by the Reconciler.
type Tracker interface {
	// ListIssues returns one page of open issues; an empty page ends the listing.
	ListIssues(ctx context.Context, page, perPage int) ([]Issue, error)
	CreateIssue(ctx context.Context, c Candidate) (*Issue, error)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
