package snapclient

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	snapdomain "github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snap-ads-api/pkg/utils"
)

// GetStats busca a série diária de métricas de uma entidade e devolve o
// primeiro timeseries_stat da resposta
func (c *SnapClient) GetStats(ctx context.Context, accessToken string, entity snapdomain.EntityType, id string, window utils.DateRange, fields []string) (*snapdomain.TimeseriesStat, error) {
	path := fmt.Sprintf("%s/%s/stats", entity, url.PathEscape(id))

	params := url.Values{}
	params.Set("granularity", snapdomain.GranularityDay)
	params.Set("start_time", window.Start)
	params.Set("end_time", window.End)
	params.Set("fields", strings.Join(fields, ","))

	body, err := c.get(ctx, accessToken, path, params)
	if err != nil {
		return nil, err
	}

	stat, err := decodeStats(path, body)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"path":  path,
			"start": window.Start,
			"end":   window.End,
		}).WithError(err).Error("snapclient: failed to decode stats")
		return nil, err
	}

	return stat, nil
}

func decodeStats(path string, body []byte) (*snapdomain.TimeseriesStat, error) {
	var envelope snapdomain.Object
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &ShapeError{Path: path, Key: "timeseries_stats", Err: err}
	}

	if envelope.Field("timeseries_stats").State != snapdomain.FieldPresent {
		return nil, newShapeError(path, "timeseries_stats", envelope)
	}

	var response snapdomain.TimeseriesStatsResponse
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(&response); err != nil {
		return nil, &ShapeError{Path: path, Key: "timeseries_stats", Err: err}
	}

	if len(response.TimeseriesStats) == 0 {
		return nil, newShapeError(path, "timeseries_stats[0]", envelope)
	}

	stat := response.TimeseriesStats[0].TimeseriesStat
	if stat == nil {
		return nil, newShapeError(path, "timeseries_stats[0].timeseries_stat", envelope)
	}

	if stat.Timeseries == nil {
		return nil, newShapeError(path, "timeseries_stats[0].timeseries_stat.timeseries", envelope)
	}

	for i, point := range stat.Timeseries {
		if point.Stats == nil {
			return nil, &ShapeError{Path: path, Key: fmt.Sprintf("timeseries[%d].stats", i)}
		}
	}

	return stat, nil
}
