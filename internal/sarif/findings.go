package sarif

import (
	"fmt"
	"strings"

	"github.com/owenrumney/go-sarif/v2/sarif"
)

// Finding is one result of a run flattened together with the metadata of the rule it references.
// RuleID is the id the result references; Title is the id of the catalog rule it resolved to,
// empty when the reference is dangling.
type Finding struct {
	RuleID   string
	Title    string
	Driver   string
	Location string
	Message  string
	Help     string
}

// Body renders the Markdown issue body for the finding.
func (f Finding) Body() string {
	return fmt.Sprintf("%s\n | Tool | Location |\n| --- | --- |\n|%s|%s|\n\n%s\n\n%s\n", f.Title, f.Driver, f.Location, f.Message, f.Help)
}

type ruleMeta struct {
	id     string
	driver string
	help   string
}

// Findings returns one Finding per result, in run order then result order.
// A result whose ruleId is not in the run's rule table keeps empty Title, Driver and Help.
func (r *Report) Findings() []Finding {
	var findings []Finding

	for _, run := range r.Runs {
		if run == nil {
			continue
		}
		rules := rulesByID(run)

		for _, res := range run.Results {
			if res == nil {
				continue
			}

			f := Finding{
				RuleID:   stringValue(res.RuleID),
				Location: joinLocations(res.Locations),
				Message:  stringValue(res.Message.Text),
			}
			if meta, ok := rules[f.RuleID]; ok {
				f.Title = meta.id
				f.Driver = meta.driver
				f.Help = meta.help
			} else {
				r.logger.Debug("result references unknown rule", "rule_id", f.RuleID)
			}
			findings = append(findings, f)
		}
	}

	return findings
}

func rulesByID(run *sarif.Run) map[string]ruleMeta {
	if run.Tool.Driver == nil {
		return map[string]ruleMeta{}
	}

	driver := run.Tool.Driver
	rules := make(map[string]ruleMeta, len(driver.Rules))
	for _, rule := range driver.Rules {
		if rule == nil {
			continue
		}
		meta := ruleMeta{id: rule.ID, driver: driver.Name}
		if rule.Help != nil {
			meta.help = stringValue(rule.Help.Markdown)
		}
		rules[rule.ID] = meta
	}
	return rules
}

func joinLocations(locations []*sarif.Location) string {
	uris := make([]string, 0, len(locations))
	for _, loc := range locations {
		uri := ""
		if loc != nil && loc.PhysicalLocation != nil && loc.PhysicalLocation.ArtifactLocation != nil {
			uri = stringValue(loc.PhysicalLocation.ArtifactLocation.URI)
		}
		uris = append(uris, uri)
	}
	return strings.Join(uris, ",")
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
