// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/finn-client/tools/dashgen/panels"
)

// OverviewUID is the stable Grafana UID of the overview dashboard.
const OverviewUID = "finn-overview"

// BuildOverview constructs the finn-client overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("FINN Client Overview").
		Uid(OverviewUID).
		Tags([]string{"finn", "finn-client"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.UpstreamRequestsStat()).
		WithPanel(panels.ParseErrorsStat()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("FINN API").
		WithPanel(panels.APIRequestRate()).
		WithPanel(panels.APILatency()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.LimitHits()))

	b.WithRow(dashboard.NewRowBuilder("Parsing").
		WithPanel(panels.ListingsParsedRate()).
		WithPanel(panels.ParseErrorsRate()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
