// Command dashgen generates the Grafana dashboard and Prometheus rule files
// for finn-client from Go builders.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/finn-client/tools/dashgen/dashboards"
	"github.com/donaldgifford/finn-client/tools/dashgen/rules"
	"github.com/donaldgifford/finn-client/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by tools/dashgen. DO NOT EDIT.\n"

// Output file locations relative to Config.OutputDir.
var (
	dashboardPath = filepath.Join("grafana", "data", dashboards.OverviewUID+".json")
	recordingPath = filepath.Join("prometheus", "finn-recording-rules.yaml")
	alertsPath    = filepath.Join("prometheus", "finn-alerts.yaml")
	ruleFilePath  = filepath.Join("prometheus", "rules", "finn.yaml")
)

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// artifact is a generated file and its destination under the output dir.
type artifact struct {
	path string
	data []byte
}

func run(cfg Config, validateOnly bool) error {
	arts, err := generate(cfg)
	if err != nil {
		return err
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	for _, a := range arts {
		dst := filepath.Join(cfg.OutputDir, a.path)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
		}
		if err := os.WriteFile(dst, a.data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", dst, err)
		}
		fmt.Printf("dashgen: wrote %s\n", dst)
	}
	return nil
}

// generate builds and validates every enabled artifact.
func generate(cfg Config) ([]artifact, error) {
	var arts []artifact

	if cfg.DashboardEnabled {
		dash, err := dashboards.BuildOverview().Build()
		if err != nil {
			return nil, fmt.Errorf("building overview dashboard: %w", err)
		}
		if res := validate.Dashboard(dash, KnownMetrics); !res.Ok() {
			return nil, fmt.Errorf("overview dashboard: %w", joinFindings(res.Errors))
		}

		data, err := json.MarshalIndent(dash, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling overview dashboard: %w", err)
		}
		arts = append(arts, artifact{path: dashboardPath, data: append(data, '\n')})
	}

	if cfg.RulesEnabled {
		recording, alerts := rules.RecordingRules(), rules.AlertRules()

		for _, r := range []struct {
			path string
			cr   rules.PrometheusRule
		}{
			{path: recordingPath, cr: recording},
			{path: alertsPath, cr: alerts},
		} {
			if res := validate.Rules(r.cr, KnownMetrics); !res.Ok() {
				return nil, fmt.Errorf("%s: %w", r.cr.Metadata.Name, joinFindings(res.Errors))
			}

			data, err := yaml.Marshal(r.cr)
			if err != nil {
				return nil, fmt.Errorf("marshaling %s: %w", r.cr.Metadata.Name, err)
			}
			arts = append(arts, artifact{path: r.path, data: append([]byte(generatedHeader), data...)})
		}

		data, err := yaml.Marshal(rules.Flatten(recording, alerts))
		if err != nil {
			return nil, fmt.Errorf("marshaling rule file: %w", err)
		}
		arts = append(arts, artifact{path: ruleFilePath, data: append([]byte(generatedHeader), data...)})
	}

	return arts, nil
}

func joinFindings(findings []string) error {
	errs := make([]error, 0, len(findings))
	for _, f := range findings {
		errs = append(errs, errors.New(f))
	}
	return errors.Join(errs...)
}
