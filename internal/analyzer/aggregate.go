package analyzer

import (
	"github.com/Falokut/tickets_analyzer_service/internal/models"
	"github.com/Falokut/tickets_analyzer_service/pkg/sliceutils"
)

// MinDurationByCarrier returns the shortest flight duration for every carrier.
// Map iteration order is random, use sliceutils.SortedKeys for a stable order.
func MinDurationByCarrier(tickets []models.Ticket) map[string]int {
	return sliceutils.GroupReduce(tickets,
		func(t models.Ticket) string { return t.Carrier },
		func(t models.Ticket) int { return t.FlightDuration },
		func(minDuration int, t models.Ticket) int { return min(minDuration, t.FlightDuration) },
	)
}
