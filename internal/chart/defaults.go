package chart

import "github.com/bnema/chartdeck/internal/domain/entity"

// DefaultSource is the synthetic data a chart shows when its slot declares
// no source.
func DefaultSource(t entity.ChartType) entity.DataSourceRef {
	switch t.Normalize() {
	case entity.ChartBar:
		return entity.DataSourceRef{URI: "expr:", Params: map[string]string{
			"n": "24",
			"y": "Math.max(0, 0.6 + 0.18 * (Math.random() + Math.random() + Math.random() - 1.5) * 2)",
		}}
	case entity.ChartArea:
		return entity.DataSourceRef{URI: "wave:", Params: map[string]string{"n": "90", "period": "11", "amp": "0.25"}}
	case entity.ChartSpark:
		return entity.DataSourceRef{URI: "wave:", Params: map[string]string{"n": "100", "period": "9,13", "amp": "0.35,0.28"}}
	case entity.ChartTrend, "bike-line":
		return entity.DataSourceRef{URI: "wave:", Params: map[string]string{
			"n":      "2190",
			"step":   "24h",
			"start":  "2019-01-01",
			"period": "120,150,90",
			"amp":    "80,60,40",
			"base":   "300",
			"noise":  "120",
		}}
	default:
		return entity.DataSourceRef{URI: "wave:", Params: map[string]string{"n": "80", "period": "7", "amp": "0.35"}}
	}
}
