// Package validate checks generated dashboards and rule files for PromQL
// syntax errors and references to metrics finn-client does not export.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/finn-client/tools/dashgen/rules"
)

// Histogram and summary series share the base metric name.
var seriesSuffixes = []string{"_bucket", "_sum", "_count"}

// Result collects validation findings. Errors fail generation, warnings
// are informational.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// panelJSON is the subset of the Grafana panel model the validator reads.
// Rows carry their children in Panels.
type panelJSON struct {
	Type    string      `json:"type"`
	Title   string      `json:"title"`
	Targets []struct {
		Expr string `json:"expr"`
	} `json:"targets"`
	Panels []panelJSON `json:"panels"`
}

// Dashboard validates every query target in the dashboard against known.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	raw, err := json.Marshal(dash)
	if err != nil {
		res.errorf("marshaling dashboard: %v", err)
		return res
	}

	var doc struct {
		Panels []panelJSON `json:"panels"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		res.errorf("decoding dashboard panels: %v", err)
		return res
	}

	for _, p := range doc.Panels {
		walkPanel(&res, p, known)
	}
	return res
}

func walkPanel(res *Result, p panelJSON, known map[string]bool) {
	if p.Type == "row" {
		if len(p.Panels) == 0 {
			res.warnf("row %q has no panels", p.Title)
		}
		for _, child := range p.Panels {
			walkPanel(res, child, known)
		}
		return
	}

	if len(p.Targets) == 0 {
		res.warnf("panel %q has no query targets", p.Title)
	}
	for _, t := range p.Targets {
		checkExpr(res, "panel "+p.Title, t.Expr, known)
	}
}

// Rules validates every expression in the rule CR.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result

	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			if name == "" {
				res.errorf("group %s: rule without record or alert name", g.Name)
				continue
			}
			checkExpr(&res, "rule "+name, r.Expr, known)
		}
	}
	return res
}

func checkExpr(res *Result, where, expr string, known map[string]bool) {
	if strings.TrimSpace(expr) == "" {
		res.errorf("%s: empty expression", where)
		return
	}

	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		res.errorf("%s: invalid PromQL %q: %v", where, expr, err)
		return
	}

	for _, name := range MetricNames(parsed) {
		if !known[name] && !known[baseName(name)] {
			res.errorf("%s: unknown metric %q", where, name)
		}
	}
}

// MetricNames returns the metric names selected by expr, in order of
// appearance and without duplicates.
func MetricNames(expr parser.Expr) []string {
	var names []string
	seen := map[string]bool{}

	parser.Inspect(expr, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok || vs.Name == "" || seen[vs.Name] {
			return nil
		}
		seen[vs.Name] = true
		names = append(names, vs.Name)
		return nil
	})
	return names
}

func baseName(name string) string {
	for _, suffix := range seriesSuffixes {
		if trimmed, ok := strings.CutSuffix(name, suffix); ok {
			return trimmed
		}
	}
	return name
}
