package analyzer

import (
	"github.com/Falokut/tickets_analyzer_service/internal/models"
	"github.com/Falokut/tickets_analyzer_service/pkg/sliceutils"
)

// Analyze builds tickets from the raw records, keeps the ones flying the route and computes
// the report. A single unparsable ticket fails the whole analysis.
func Analyze(raw []models.RawTicket, route models.Route) (models.Report, error) {
	tickets := make([]models.Ticket, 0, len(raw))
	for i := range raw {
		ticket, err := NewTicket(raw[i])
		if err != nil {
			return models.Report{}, err
		}
		tickets = append(tickets, ticket)
	}

	routeTickets := FilterByRoute(tickets, route)
	report := models.Report{
		Route:        route,
		TicketsCount: len(routeTickets),
	}
	if len(routeTickets) == 0 {
		return report, nil
	}

	minDurations := MinDurationByCarrier(routeTickets)
	carriers := sliceutils.SortedKeys(minDurations)
	report.MinDurations = make([]models.CarrierDuration, 0, len(carriers))
	for _, carrier := range carriers {
		report.MinDurations = append(report.MinDurations, models.CarrierDuration{
			Carrier: carrier,
			Minutes: minDurations[carrier],
		})
	}

	priceStats := CalculatePriceStatistics(sliceutils.Map(routeTickets,
		func(t models.Ticket) int { return t.Price }))
	report.MeanPrice = priceStats.Mean
	report.MedianPrice = priceStats.Median
	report.PriceGap = priceStats.Gap

	return report, nil
}
