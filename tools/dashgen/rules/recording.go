package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "finn-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "finn-recording",
					Rules: []Rule{
						{
							Record: "finn:http_requests:rate5m",
							Expr:   `sum(rate(finn_http_requests_total[5m]))`,
						},
						{
							Record: "finn:http_errors:rate5m",
							Expr:   `sum(rate(finn_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "finn:api_requests:rate5m",
							Expr:   `sum by (outcome) (rate(finn_api_requests_total[5m]))`,
						},
						{
							Record: "finn:api_failures:rate5m",
							Expr:   `sum(rate(finn_api_requests_total{outcome!="ok"}[5m]))`,
						},
						{
							Record: "finn:listings_parsed:rate5m",
							Expr:   `rate(finn_listings_parsed_total[5m])`,
						},
						{
							Record: "finn:parse_errors:rate5m",
							Expr:   `sum by (document) (rate(finn_parse_errors_total[5m]))`,
						},
					},
				},
			},
		},
	}
}
