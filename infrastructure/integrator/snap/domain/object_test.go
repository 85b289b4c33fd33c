package snapdomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_FieldStates(t *testing.T) {
	var obj Object
	require.NoError(t, json.Unmarshal([]byte(`{"id":"c1","name":null,"budget":5000000,"spec":{"ios_app_id":"123"},"measurement_spec":null}`), &obj))

	assert.Equal(t, FieldPresent, obj.Field("id").State)
	assert.Equal(t, FieldNull, obj.Field("name").State)
	assert.Equal(t, FieldAbsent, obj.Field("status").State)
	assert.Equal(t, "c1", obj.ID())

	v, err := obj.Value("name")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = obj.Value("budget")
	require.NoError(t, err)
	assert.Equal(t, "5000000", v.(interface{ String() string }).String())

	_, ok := obj.Field("budget").String()
	assert.False(t, ok)

	spec, err := obj.Object("spec")
	require.NoError(t, err)
	appID, ok := spec.Field("ios_app_id").String()
	assert.True(t, ok)
	assert.Equal(t, "123", appID)

	assert.Equal(t, FieldNull, obj.Field("measurement_spec").State)
	nullObject, err := obj.Object("measurement_spec")
	require.NoError(t, err)
	assert.Nil(t, nullObject)

	missing, err := obj.Object("tracking_spec")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = obj.Object("id")
	assert.Error(t, err)
}

func TestTimeseriesStat_Sum(t *testing.T) {
	stat := &TimeseriesStat{
		ID: "c1",
		Timeseries: []TimeseriesPoint{
			{Stats: map[string]any{"spend": 1000000.0}},
			{Stats: map[string]any{"spend": "2000000"}},
		},
	}

	total, err := stat.Sum("spend")
	require.NoError(t, err)
	assert.Equal(t, 3000000.0, total)

	_, err = stat.Sum("impressions")
	assert.Error(t, err)
}

func TestErrorResponse_IsStatsWindowTooLarge(t *testing.T) {
	resp := &ErrorResponse{
		DebugMessage: "Unsupported Stats Query: Timeseries queries with DAY granularity cannot query time intervals of more than 32 days",
	}
	assert.True(t, resp.IsStatsWindowTooLarge())
	assert.False(t, (&ErrorResponse{DebugMessage: "invalid token"}).IsStatsWindowTooLarge())
}
