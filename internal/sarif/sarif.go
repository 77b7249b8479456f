package sarif

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/scan-io-git/gctl/internal/source"
	"github.com/scan-io-git/gctl/pkg/shared/errors"
)

// Report is a decoded findings document.
type Report struct {
	*sarif.Report
	logger hclog.Logger
	path   string
}

// Parse decodes a SARIF document. Unknown fields are ignored and absent ones
// stay at their zero value; anything that is not valid JSON of the SARIF shape
// is a *errors.MalformedInputError.
func Parse(data []byte) (*Report, error) {
	report, err := sarif.FromBytes(data)
	if err != nil {
		return nil, &errors.MalformedInputError{Err: err}
	}
	return &Report{Report: report, logger: hclog.NewNullLogger()}, nil
}

// ReadReport reads the document at path through reader and parses it.
func ReadReport(ctx context.Context, reader source.Reader, path string, logger hclog.Logger) (*Report, error) {
	data, err := reader.Read(ctx, path)
	if err != nil {
		return nil, err
	}

	report, err := Parse(data)
	if err != nil {
		if mErr, ok := err.(*errors.MalformedInputError); ok {
			mErr.Path = path
		}
		return nil, err
	}
	if logger != nil {
		report.logger = logger
	}
	report.path = path

	report.logger.Debug("parsed SARIF report", "path", path, "version", report.Version, "runs", len(report.Runs), "tools", report.ToolNames())
	return report, nil
}

// Path returns the location the report was read from, empty for Parse.
func (r *Report) Path() string {
	return r.path
}

// ToolNames lists the driver name of every run, in run order.
func (r *Report) ToolNames() []string {
	names := make([]string, 0, len(r.Runs))
	for _, run := range r.Runs {
		if run == nil || run.Tool.Driver == nil {
			continue
		}
		names = append(names, run.Tool.Driver.Name)
	}
	return names
}
