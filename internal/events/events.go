package events

import (
	"context"

	"github.com/Falokut/tickets_analyzer_service/internal/models"
)

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type AnalysisEventsMQ interface {
	TicketsAnalyzed(ctx context.Context, report models.Report) error
}
