package issues

import (
	"context"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/gctl/internal/sarif"
	"github.com/scan-io-git/gctl/internal/source"
)

// Summary counts what a workflow run did.
type Summary struct {
	Files      int
	Candidates int
	Created    int
	Skipped    int
}

// Workflow files issues for the findings of a batch of documents, strictly in order.
type Workflow struct {
	reader     source.Reader
	reconciler *Reconciler
	logger     hclog.Logger
	assignees  []string
	labels     []string
}

// WorkflowOptions carries the fixed fields of every created issue.
type WorkflowOptions struct {
	Assignees []string
	Labels    []string
}

func NewWorkflow(reader source.Reader, reconciler *Reconciler, opts WorkflowOptions, logger hclog.Logger) *Workflow {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Workflow{
		reader:     reader,
		reconciler: reconciler,
		logger:     logger,
		assignees:  opts.Assignees,
		labels:     opts.Labels,
	}
}

// Run processes paths in order. The first read, parse or tracker error stops
// the run; the returned Summary covers the work done until then.
func (w *Workflow) Run(ctx context.Context, paths []string) (Summary, error) {
	var summary Summary
	lg := w.logger.With("run_id", uuid.NewString())

	for _, path := range paths {
		report, err := sarif.ReadReport(ctx, w.reader, path, lg)
		if err != nil {
			lg.Error("failed to read SARIF report", "path", path, "error", err)
			return summary, err
		}
		summary.Files++

		findings := report.Findings()
		lg.Info("processing SARIF report", "path", path, "findings", len(findings))

		for _, f := range findings {
			summary.Candidates++
			outcome, err := w.reconciler.EnsureCreated(ctx, NewCandidate(f, w.assignees, w.labels))
			if err != nil {
				lg.Error("failed to reconcile issue", "title", f.Title, "rule_id", f.RuleID, "error", err)
				return summary, err
			}

			switch outcome.Status {
			case Created:
				summary.Created++
				lg.Info("created issue", "title", outcome.Issue.Title, "number", outcome.Issue.Number)
			case Skipped:
				summary.Skipped++
				lg.Info("issue already exists, skipping", "title", f.Title)
			}
		}
	}

	return summary, nil
}
