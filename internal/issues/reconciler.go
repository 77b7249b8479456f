package issues

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/gctl/pkg/shared/errors"
)

// Status is the result of reconciling one candidate.
type Status int

const (
	Skipped Status = iota
	Created
)

func (s Status) String() string {
	switch s {
	case Skipped:
		return "skipped"
	case Created:
		return "created"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome reports what EnsureCreated did. Issue is only set for Created.
type Outcome struct {
	Status Status
	Issue  Issue
}

const (
	DefaultPerPage  = 50
	DefaultMaxPages = 1000
)

// ReconcilerOptions tunes the listing. MaxPages 0 disables the page cap.
type ReconcilerOptions struct {
	PerPage  int
	MaxPages int
}

// Reconciler keeps the title -> issue store of one repository for the
// lifetime of a process and creates only the candidates it does not know.
// It is not safe for concurrent use.
type Reconciler struct {
	tracker  Tracker
	logger   hclog.Logger
	perPage  int
	maxPages int

	store  map[string]Issue
	seeded bool
}

func NewReconciler(tracker Tracker, opts ReconcilerOptions, logger hclog.Logger) *Reconciler {
	if opts.PerPage <= 0 {
		opts.PerPage = DefaultPerPage
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Reconciler{
		tracker:  tracker,
		logger:   logger,
		perPage:  opts.PerPage,
		maxPages: opts.MaxPages,
		store:    make(map[string]Issue),
	}
}

// EnsureCreated creates c unless an issue with the same title is already known.
// The first call seeds the store with a full listing; a known title costs no request.
func (r *Reconciler) EnsureCreated(ctx context.Context, c Candidate) (Outcome, error) {
	if err := r.seed(ctx); err != nil {
		return Outcome{}, err
	}

	if existing, ok := r.store[c.Title]; ok {
		r.logger.Debug("issue already exists", "title", c.Title, "number", existing.Number)
		return Outcome{Status: Skipped}, nil
	}

	issue, err := r.tracker.CreateIssue(ctx, c)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to create issue %q: %w", c.Title, err)
	}
	r.store[issue.Title] = *issue
	return Outcome{Status: Created, Issue: *issue}, nil
}

// Known returns the number of titles in the store.
func (r *Reconciler) Known() int {
	return len(r.store)
}

func (r *Reconciler) seed(ctx context.Context) error {
	if r.seeded {
		return nil
	}

	existing, err := r.ListAll(ctx)
	if err != nil {
		return err
	}
	for _, issue := range existing {
		r.store[issue.Title] = issue
	}
	r.seeded = true
	r.logger.Debug("seeded issue store", "issues", len(existing), "titles", len(r.store))
	return nil
}

// ListAll walks the listing page by page until the tracker returns an empty page.
func (r *Reconciler) ListAll(ctx context.Context) ([]Issue, error) {
	var all []Issue
	for page := 1; ; page++ {
		if r.maxPages > 0 && page > r.maxPages {
			return nil, &errors.PaginationLimitError{Pages: r.maxPages}
		}

		batch, err := r.tracker.ListIssues(ctx, page, r.perPage)
		if err != nil {
			return nil, fmt.Errorf("failed to list issues (page %d): %w", page, err)
		}
		r.logger.Trace("fetched issues page", "page", page, "count", len(batch))
		if len(batch) == 0 {
			return all, nil
		}
		all = append(all, batch...)
	}
}
