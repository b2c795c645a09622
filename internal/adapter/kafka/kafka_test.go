package kafka

import (
	"testing"
	"time"

	"github.com/couchcryptid/seismic-site-response/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestMapMessageToRawEvent(t *testing.T) {
	now := time.Now()
	msg := kafkago.Message{
		Key:       []byte("bh-1"),
		Value:     []byte(`{"id":"bh-1","layers":[]}`),
		Topic:     "layer-profiles",
		Partition: 2,
		Offset:    42,
		Time:      now,
		Headers: []kafkago.Header{
			{Key: "source", Value: []byte("field-survey")},
		},
	}

	raw := mapMessageToRawEvent(msg)

	assert.Equal(t, []byte("bh-1"), raw.Key)
	assert.JSONEq(t, `{"id":"bh-1","layers":[]}`, string(raw.Value))
	assert.Equal(t, "layer-profiles", raw.Topic)
	assert.Equal(t, 2, raw.Partition)
	assert.Equal(t, int64(42), raw.Offset)
	assert.Equal(t, now, raw.Timestamp)
	assert.Equal(t, "field-survey", raw.Headers["source"])
	assert.Nil(t, raw.Commit)
}

func TestToMessage(t *testing.T) {
	event := domain.OutputEvent{
		Key:   []byte("bh-1"),
		Value: []byte(`{"id":"bh-1","ground_type":"III"}`),
		Headers: map[string]string{
			"processed_at": "2025-03-14T09:26:00Z",
			"ground_type":  "III",
		},
	}

	msg := toMessage(event)

	assert.Equal(t, []byte("bh-1"), msg.Key)
	assert.Contains(t, string(msg.Value), `"ground_type":"III"`)
	assert.Len(t, msg.Headers, 2)
	assert.Equal(t, "ground_type", msg.Headers[0].Key)
	assert.Equal(t, []byte("III"), msg.Headers[0].Value)
	assert.Equal(t, "processed_at", msg.Headers[1].Key)
	assert.Equal(t, []byte("2025-03-14T09:26:00Z"), msg.Headers[1].Value)
}

func TestToMessage_NoHeaders(t *testing.T) {
	msg := toMessage(domain.OutputEvent{Key: []byte("k"), Value: []byte("{}")})
	assert.Empty(t, msg.Headers)
}
