package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// finn-client operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "finn-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "finn-alerts",
					Rules: []Rule{
						{
							Alert: "FinnClientDown",
							Expr:  `absent(up{job="finn-client"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "finn-client is down",
								"description": "The finn-client job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "FinnClientUnhealthy",
							Expr:  `finn_healthz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "finn-client health check is failing",
								"description": "The liveness probe has been reporting failure for more than 2 minutes.",
							},
						},
						{
							Alert: "FinnClientHighErrorRate",
							Expr:  `finn:http_errors:rate5m / finn:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on finn-client",
								"description": "More than 5% of proxy requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "FinnUpstreamFailures",
							Expr:  `finn:api_failures:rate5m > 0.1`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "FINN API requests are failing",
								"description": "FINN round-trips have been unavailable or malformed at more than 0.1/s for 5 minutes.",
							},
						},
						{
							Alert: "FinnParseErrors",
							Expr:  `sum(finn:parse_errors:rate5m) > 0`,
							For:   "15m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "FINN documents fail to parse",
								"description": "FINN has been returning malformed XML for more than 15 minutes. The feed format may have changed.",
							},
						},
						{
							Alert: "FinnDailyLimitReached",
							Expr:  `increase(finn_api_daily_limit_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "FINN daily request limit has been reached",
								"description": "The configured daily request limit is exhausted. Requests are refused until the rolling window frees up.",
							},
						},
					},
				},
			},
		},
	}
}
