package snapdomain

import (
	"fmt"
	"strconv"
	"strings"
)

const GranularityDay = "DAY"

var (
	SpendFields       = []string{"spend"}
	ImpressionsFields = []string{"impressions"}

	// DeliveryFields são as métricas pedidas nos stats de anúncios e ad squads
	DeliveryFields = []string{
		"android_installs", "attachment_avg_view_time_millis", "attachment_impressions",
		"attachment_quartile_1", "attachment_quartile_2", "attachment_quartile_3",
		"attachment_total_view_time_millis", "attachment_view_completion",
		"avg_screen_time_millis", "avg_view_time_millis", "impressions", "ios_installs",
		"quartile_1", "quartile_2", "quartile_3", "screen_time_millis", "spend",
		"swipe_up_percent", "swipes", "total_installs", "video_views", "view_completion",
		"view_time_millis", "conversion_purchases", "conversion_purchases_value",
		"conversion_save", "conversion_start_checkout", "conversion_add_cart",
		"conversion_view_content", "conversion_add_billing", "conversion_searches",
		"conversion_level_completes", "conversion_app_opens", "conversion_page_views",
		"attachment_frequency", "attachment_uniques", "frequency", "uniques",
	}
)

type TimeseriesStatsResponse struct {
	RequestStatus   string                    `json:"request_status"`
	RequestID       string                    `json:"request_id"`
	TimeseriesStats []TimeseriesStatsEnvelope `json:"timeseries_stats"`
}

type TimeseriesStatsEnvelope struct {
	SubRequestStatus string          `json:"sub_request_status"`
	TimeseriesStat   *TimeseriesStat `json:"timeseries_stat"`
}

type TimeseriesStat struct {
	ID          string            `json:"id"`
	Type        string            `json:"type"`
	Granularity string            `json:"granularity"`
	StartTime   string            `json:"start_time"`
	EndTime     string            `json:"end_time"`
	Timeseries  []TimeseriesPoint `json:"timeseries"`
}

type TimeseriesPoint struct {
	StartTime string         `json:"start_time"`
	EndTime   string         `json:"end_time"`
	Stats     map[string]any `json:"stats"`
}

// Metric lê uma métrica numérica do ponto; ok=false quando ausente
func (p TimeseriesPoint) Metric(name string) (float64, bool, error) {
	v, ok := p.Stats[name]
	if !ok || v == nil {
		return 0, false, nil
	}

	f, err := toFloat(v)
	if err != nil {
		return 0, true, fmt.Errorf("snapdomain: metric %q: %w", name, err)
	}
	return f, true, nil
}

// Sum soma a métrica em todos os pontos; ausência em um ponto é erro
func (s *TimeseriesStat) Sum(name string) (float64, error) {
	var total float64
	for i, point := range s.Timeseries {
		v, ok, err := point.Metric(name)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, fmt.Errorf("snapdomain: metric %q missing in timeseries[%d] of %s", name, i, s.ID)
		}
		total += v
	}
	return total, nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case interface{ Float64() (float64, error) }:
		return n.Float64()
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(n), 64)
	}
	return 0, fmt.Errorf("unexpected type %T", v)
}
