package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.Len(t, id, 36)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestKeepField(t *testing.T) {
	tests := []struct {
		key      string
		expected bool
	}{
		{key: "correlation_id", expected: true},
		{key: "account_id", expected: true},
		{key: "client_name", expected: true},
		{key: "user_agent", expected: false},
		{key: "query", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, keepField(tt.key))
		})
	}
}

func TestWithFields_DevelopmentFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	base := &logger{entry: L.(*logger).entry}
	filtered := base.WithFields(Fields{"user_agent": "curl", "remote_addr": "127.0.0.1"})
	assert.Same(t, base, filtered)

	kept := base.WithFields(Fields{"path": "/v1/adaccounts", "user_agent": "curl"}).(*logger)
	assert.Equal(t, "/v1/adaccounts", kept.entry.Data["path"])
	assert.NotContains(t, kept.entry.Data, "user_agent")

	t.Setenv("APP_ENV", "production")
	all := base.WithFields(Fields{"user_agent": "curl"}).(*logger)
	assert.Equal(t, "curl", all.entry.Data["user_agent"])
}
