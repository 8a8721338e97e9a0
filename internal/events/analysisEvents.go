package events

import (
	"context"
	"time"

	"github.com/Falokut/tickets_analyzer_service/internal/models"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

const defaultTicketsAnalyzedTopic = "tickets_analyzed"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type analysisEvents struct {
	eventsWriter *kafka.Writer
	logger       *logrus.Logger
}

func NewAnalysisEvents(cfg KafkaConfig, logger *logrus.Logger) *analysisEvents {
	topic := cfg.Topic
	if topic == "" {
		topic = defaultTicketsAnalyzedTopic
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  topic,
		Logger:                 logger,
		ErrorLogger:            kafka.LoggerFunc(logger.Errorf),
		AllowAutoTopicCreation: true,
	}
	return &analysisEvents{eventsWriter: w, logger: logger}
}

func (e *analysisEvents) Shutdown() error {
	return e.eventsWriter.Close()
}

type ticketsAnalyzed struct {
	ID           string                   `json:"id"`
	AnalyzedAt   time.Time                `json:"analyzed_at"`
	Route        models.Route             `json:"route"`
	TicketsCount int                      `json:"tickets_count"`
	MinDurations []models.CarrierDuration `json:"min_durations"`
	MeanPrice    float64                  `json:"mean_price"`
	MedianPrice  float64                  `json:"median_price"`
	PriceGap     float64                  `json:"price_gap"`
}

func newTicketsAnalyzedMessage(report models.Report, analyzedAt time.Time) (kafka.Message, error) {
	event := ticketsAnalyzed{
		ID:           uuid.NewString(),
		AnalyzedAt:   analyzedAt.UTC(),
		Route:        report.Route,
		TicketsCount: report.TicketsCount,
		MinDurations: report.MinDurations,
		MeanPrice:    report.MeanPrice,
		MedianPrice:  report.MedianPrice,
		PriceGap:     report.PriceGap,
	}

	body, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(report.Route.Origin + "_" + report.Route.Destination),
		Value: body,
	}, nil
}

func (e *analysisEvents) TicketsAnalyzed(ctx context.Context, report models.Report) error {
	msg, err := newTicketsAnalyzedMessage(report, time.Now())
	if err != nil {
		return err
	}

	return e.eventsWriter.WriteMessages(ctx, msg)
}

type nopAnalysisEvents struct{}

// NewNopAnalysisEvents is used when no brokers are configured.
func NewNopAnalysisEvents() nopAnalysisEvents {
	return nopAnalysisEvents{}
}

func (nopAnalysisEvents) TicketsAnalyzed(context.Context, models.Report) error {
	return nil
}
