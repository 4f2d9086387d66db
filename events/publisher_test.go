package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaPublisherCloseIdle(t *testing.T) {
	// Close must be safe before any message was written; the shutdown path
	// calls it unconditionally.
	p := NewKafkaPublisher("localhost:9092", "admin-events")
	assert.NoError(t, p.Close())
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	err := p.Publish(context.Background(), "key", Event{Type: TypeApplicationSubmitted, At: time.Now()})
	require.NoError(t, err)
	require.NoError(t, p.Close())
}
