package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ListingsParsedRate returns a timeseries panel showing listings decoded per
// second.
func ListingsParsedRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Listings Parsed").
		Description("Listings decoded from FINN documents per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`finn:listings_parsed:rate5m`, "listings/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ParseErrorsRate returns a timeseries panel showing malformed documents per
// second by document kind.
func ParseErrorsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Parse Errors").
		Description("Malformed FINN documents per second by kind").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`finn:parse_errors:rate5m`, "{{document}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
