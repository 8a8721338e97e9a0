package analyzer

import (
	"strings"

	"github.com/Falokut/tickets_analyzer_service/internal/models"
	"github.com/Falokut/tickets_analyzer_service/pkg/sliceutils"
)

func FilterByRoute(tickets []models.Ticket, route models.Route) []models.Ticket {
	return sliceutils.Filter(tickets, func(t models.Ticket) bool {
		return strings.EqualFold(t.Origin, route.Origin) &&
			strings.EqualFold(t.Destination, route.Destination)
	})
}
