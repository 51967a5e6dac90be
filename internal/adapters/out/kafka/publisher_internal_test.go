package kafka

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"cardapio/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeMessage(t *testing.T) {
	msg := ports.OrderEventMessage{
		Name:     "pedido-pronto",
		Audience: "waiter",
		OrderID:  "5b0c7c2e-8a41-4d1c-9a55-0f8e6b3c1d2a",
		Data:     []byte(`{"id":"5b0c7c2e-8a41-4d1c-9a55-0f8e6b3c1d2a","status":"READY"}`),
	}

	m, err := encodeMessage(msg)
	require.NoError(t, err)

	assert.Equal(t, msg.OrderID, string(m.Key))
	require.Len(t, m.Headers, 1)
	assert.Equal(t, "event", m.Headers[0].Key)
	assert.Equal(t, "pedido-pronto", string(m.Headers[0].Value))

	var decoded struct {
		Event    string         `json:"event"`
		Audience string         `json:"audience"`
		Order    map[string]any `json:"order"`
	}
	require.NoError(t, json.Unmarshal(m.Value, &decoded))
	assert.Equal(t, "pedido-pronto", decoded.Event)
	assert.Equal(t, "waiter", decoded.Audience)
	assert.Equal(t, "READY", decoded.Order["status"])
}

func TestEncodeMessage_EmptyData(t *testing.T) {
	m, err := encodeMessage(ports.OrderEventMessage{Name: "novo-pedido", Audience: "kitchen", OrderID: "x"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"novo-pedido","audience":"kitchen","order":null}`, string(m.Value))
}

func TestEncodeMessage_InvalidData(t *testing.T) {
	_, err := encodeMessage(ports.OrderEventMessage{Name: "novo-pedido", OrderID: "x", Data: []byte("{not json")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "novo-pedido")
}

func TestNewOrderEventPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := NewOrderEventPublisher([]string{"localhost:9092"}, "order-events", logger)

	assert.Equal(t, "order-events", p.writer.Topic)
	assert.True(t, p.writer.Async)
	assert.NotNil(t, p.writer.Completion)
	require.NoError(t, p.Close())
}
