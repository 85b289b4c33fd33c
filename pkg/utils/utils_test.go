package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rowLike map[string]any

func TestFlattenJSON(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want map[string]any
	}{
		{
			name: "nested map and list",
			in: map[string]any{
				"a": map[string]any{
					"b": 1,
					"c": []any{2, 3},
				},
			},
			want: map[string]any{"a_b": 1, "a_c_0": 2, "a_c_1": 3},
		},
		{
			name: "list of maps",
			in: []any{
				map[string]any{"id": "x"},
				map[string]any{"id": "y", "tags": []any{"t"}},
			},
			want: map[string]any{"0_id": "x", "1_id": "y", "1_tags_0": "t"},
		},
		{
			name: "null leaf is kept",
			in:   map[string]any{"a": nil},
			want: map[string]any{"a": nil},
		},
		{
			name: "empty containers produce nothing",
			in:   map[string]any{"a": map[string]any{}, "b": []any{}},
			want: map[string]any{},
		},
		{
			name: "typed containers",
			in: map[string]any{
				"a": map[string]string{"b": "c"},
				"l": []string{"x", "y"},
				"m": []map[string]any{{"id": 1}},
				"n": [2]int{7, 8},
			},
			want: map[string]any{"a_b": "c", "l_0": "x", "l_1": "y", "m_0_id": 1, "n_0": 7, "n_1": 8},
		},
		{
			name: "named map type",
			in:   []rowLike{{"id": "c1", "tags": []string{"t"}}},
			want: map[string]any{"0_id": "c1", "0_tags_0": "t"},
		},
		{
			name: "non string keys stay as leaf",
			in:   map[string]any{"a": map[int]string{1: "x"}},
			want: map[string]any{"a": map[int]string{1: "x"}},
		},
		{
			name: "scalar at the root",
			in:   "value",
			want: map[string]any{"": "value"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FlattenJSON(tt.in))
		})
	}
}

func TestFlattenJSON_DeepNesting(t *testing.T) {
	var in any = 42
	for i := 0; i < 50; i++ {
		in = map[string]any{"k": []any{in}}
	}

	out := FlattenJSON(in)
	require.Len(t, out, 1)
	for key, value := range out {
		assert.Equal(t, 42, value)
		assert.Equal(t, 50, strings.Count(key, "k_0"))
	}
}

func TestFlattenJSON_CollisionLastWriteWins(t *testing.T) {
	in := map[string]any{
		"a":   map[string]any{"b": 1},
		"a_b": 2,
	}

	out := FlattenJSON(in)
	assert.Len(t, out, 1)
	assert.Equal(t, 2, out["a_b"])
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2019-04-28T07:25:39.668Z", SnapTimestampLayout)
	require.NoError(t, err)
	assert.Equal(t, "2019-04-28", got)

	got, err = ParseDate("2019-04-12T00:00:00.000-07:00", SnapStatsTimeLayout)
	require.NoError(t, err)
	assert.Equal(t, "2019-04-12", got)

	_, err = ParseDate("28/04/2019", SnapTimestampLayout)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
}

func TestParseDateRegex(t *testing.T) {
	got, err := ParseDateRegex("2019-04-12T00:00:00.000-07:00")
	require.NoError(t, err)
	assert.Equal(t, "2019-04-12", got)

	_, err = ParseDateRegex("no date here")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
}

func TestCreateDatesAt(t *testing.T) {
	now := time.Date(2024, 3, 15, 22, 10, 0, 0, time.UTC)

	dates := CreateDatesAt(now, DefaultLookbackDays, 0)
	assert.Equal(t, "2024-03-15T00:00:00.000000-0700", dates.End)
	assert.Equal(t, "2024-02-15T00:00:00.000000-0700", dates.Start)

	dates = CreateDatesAt(now, 7, 2)
	assert.Equal(t, "2024-03-13T00:00:00.000000-0700", dates.End)
	assert.Equal(t, "2024-03-06T00:00:00.000000-0700", dates.Start)
}

func TestCreateDates_UsesCurrentUTCDate(t *testing.T) {
	today := time.Now().UTC()
	dates := CreateDates(DefaultLookbackDays, 0)

	end, err := time.Parse("2006-01-02T15:04:05.000000-0700", dates.End)
	require.NoError(t, err)
	start, err := time.Parse("2006-01-02T15:04:05.000000-0700", dates.Start)
	require.NoError(t, err)

	// Tolerância para a virada de dia durante o teste
	endDate := dates.End[:10]
	if endDate != today.Format(time.DateOnly) {
		assert.Equal(t, time.Now().UTC().Format(time.DateOnly), endDate)
	}
	assert.Equal(t, end.AddDate(0, 0, -DefaultLookbackDays).Format(time.DateOnly), dates.Start[:10])

	_, offset := end.Zone()
	assert.Equal(t, -7*60*60, offset)
	assert.Equal(t, 0, end.Hour()+end.Minute()+end.Second()+end.Nanosecond())
	assert.Equal(t, 0, start.Hour()+start.Minute()+start.Second()+start.Nanosecond())
}

func TestMicroToUnit(t *testing.T) {
	assert.Equal(t, 3.0, MicroToUnit(1_000_000)+MicroToUnit(2_000_000))
	assert.Equal(t, 12.35, RoundWithTwoDecimalPlace(12.3456))
}

func TestGenerateState(t *testing.T) {
	a, err := GenerateState()
	require.NoError(t, err)
	b, err := GenerateState()
	require.NoError(t, err)

	assert.Len(t, a, stateLength)
	assert.NotEqual(t, a, b)
}
