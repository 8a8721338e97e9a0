package events

import (
	"context"
	"testing"
	"time"

	"github.com/Falokut/tickets_analyzer_service/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketsAnalyzedMessage(t *testing.T) {
	report := models.Report{
		Route:        models.Route{Origin: "VVO", Destination: "TLV"},
		TicketsCount: 3,
		MinDurations: []models.CarrierDuration{{Carrier: "S7", Minutes: 390}, {Carrier: "TK", Minutes: 330}},
		MeanPrice:    13300,
		MedianPrice:  13100,
		PriceGap:     200,
	}
	analyzedAt := time.Date(2024, 3, 1, 15, 4, 5, 0, time.FixedZone("VLAT", 10*60*60))

	msg, err := newTicketsAnalyzedMessage(report, analyzedAt)
	require.NoError(t, err)
	assert.Equal(t, "VVO_TLV", string(msg.Key))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &payload))

	id, ok := payload["id"].(string)
	require.True(t, ok)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
	delete(payload, "id")

	assert.Equal(t, map[string]any{
		"analyzed_at":   "2024-03-01T05:04:05Z",
		"route":         map[string]any{"origin": "VVO", "destination": "TLV"},
		"tickets_count": float64(3),
		"min_durations": []any{
			map[string]any{"carrier": "S7", "minutes": float64(390)},
			map[string]any{"carrier": "TK", "minutes": float64(330)},
		},
		"mean_price":   float64(13300),
		"median_price": float64(13100),
		"price_gap":    float64(200),
	}, payload)
}

func TestNewTicketsAnalyzedMessage_UniqueIDs(t *testing.T) {
	first, err := newTicketsAnalyzedMessage(models.Report{}, time.Now())
	require.NoError(t, err)
	second, err := newTicketsAnalyzedMessage(models.Report{}, time.Now())
	require.NoError(t, err)

	assert.NotEqual(t, string(first.Value), string(second.Value))
}

func TestNewAnalysisEvents_Topic(t *testing.T) {
	logger, _ := test.NewNullLogger()
	testCases := []struct {
		name     string
		topic    string
		expected string
	}{
		{name: "default", topic: "", expected: "tickets_analyzed"},
		{name: "configured", topic: "vvo_tlv_reports", expected: "vvo_tlv_reports"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := NewAnalysisEvents(KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: tc.topic}, logger)
			defer e.Shutdown()
			assert.Equal(t, tc.expected, e.eventsWriter.Topic)
		})
	}
}

func TestNopAnalysisEvents(t *testing.T) {
	assert.NoError(t, NewNopAnalysisEvents().TicketsAnalyzed(context.Background(), models.Report{}))
}
