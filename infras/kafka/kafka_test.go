package kafka_test

import (
	"context"
	"resort/config"
	"resort/infras/kafka"
	"resort/infras/otel/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	Type string `json:"type"`
	Code string `json:"code"`
}

func TestMessageRoundTrip(t *testing.T) {
	msg := kafka.Message{
		Key:     "b-1",
		Value:   event{Type: "booking.created", Code: "SC-20260301-AB12"},
		Headers: map[string]string{"event": "booking.created"},
	}

	encoded, err := msg.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("b-1"), encoded.Key)
	require.Len(t, encoded.Headers, 1)
	assert.Equal(t, "event", encoded.Headers[0].Key)

	decoded, err := kafka.DecodeKafkaMessage[event](encoded)
	require.NoError(t, err)
	assert.Equal(t, "SC-20260301-AB12", decoded.Code)
}

func TestDisabledClientDropsMessages(t *testing.T) {
	client := kafka.New(&config.Config{}, mocks.NewOtel())

	err := client.SendMessages(context.Background(), "booking.events", kafka.Message{Key: "b-1", Value: event{}})

	assert.NoError(t, err)
	assert.NoError(t, client.Close())
}
