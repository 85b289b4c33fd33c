package sink

import (
	"bufio"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	snapdomain "github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/domain"
)

func TestJSONLinesWriter_WriteRows(t *testing.T) {
	out := &bytes.Buffer{}
	writer := NewJSONLinesWriter(out)

	rows := []snapdomain.Row{
		{"ad_id": "ad1", "spend": 1500000.0, "start_time": "2024-02-09"},
		{"ad_id": "ad2", "spend": 0.0, "conversion": map[string]any{"purchases": 2.0}},
	}

	require.NoError(t, writer.WriteRows(context.Background(), "ad_stats", rows))

	scanner := bufio.NewScanner(out)
	var records []map[string]any
	for scanner.Scan() {
		var record map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &record))
		records = append(records, record)
	}

	require.Len(t, records, 2)
	assert.Equal(t, "ad_stats", records[0]["_table"])
	assert.Equal(t, "ad1", records[0]["ad_id"])
	assert.Equal(t, 1500000.0, records[0]["spend"])
	assert.Equal(t, 2.0, records[1]["conversion_purchases"])
}

func TestJSONLinesWriter_EmptyRows(t *testing.T) {
	out := &bytes.Buffer{}
	writer := NewJSONLinesWriter(out)

	require.NoError(t, writer.WriteRows(context.Background(), "ads", nil))
	assert.Zero(t, out.Len())
}

func TestJSONLinesWriter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	writer := NewJSONLinesWriter(&bytes.Buffer{})
	err := writer.WriteRows(ctx, "ads", []snapdomain.Row{{"ad_id": "ad1"}})

	assert.ErrorIs(t, err, context.Canceled)
}
