package messaging

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/carehub-api/pkg/logger"
)

func TestRecordingBrokerKeepsMessages(t *testing.T) {
	b := NewRecordingBroker(logger.Nop())

	require.NoError(t, b.Publish(context.Background(), "note.created", json.RawMessage(`{"id":"n1"}`)))
	require.NoError(t, b.Ping(context.Background()))

	got := b.Published()
	require.Len(t, got, 1)
	assert.Equal(t, "note.created", got[0].Type)
}

func TestLogBrokerHonoursCancelledContext(t *testing.T) {
	b := NewLogBroker(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, b.Publish(ctx, "note.created", nil), context.Canceled)
	assert.Empty(t, b.Published())
}
