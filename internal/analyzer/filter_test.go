package analyzer_test

import (
	"testing"

	"github.com/Falokut/tickets_analyzer_service/internal/analyzer"
	"github.com/Falokut/tickets_analyzer_service/internal/models"
	"github.com/stretchr/testify/assert"
)

var vvoTlv = models.Route{Origin: "VVO", Destination: "TLV"}

func TestFilterByRoute(t *testing.T) {
	tickets := []models.Ticket{
		{Origin: "VVO", Destination: "TLV", Carrier: "S7"},
		{Origin: "vvo", Destination: "tlv", Carrier: "SU"},
		{Origin: "Vvo", Destination: "TLV", Carrier: "TK"},
		{Origin: "TLV", Destination: "VVO", Carrier: "S7"},
		{Origin: "VVO", Destination: "UFA", Carrier: "S7"},
		{Origin: "LRN", Destination: "TLV", Carrier: "BA"},
	}

	got := analyzer.FilterByRoute(tickets, vvoTlv)

	assert.Equal(t, tickets[:3], got)
}

func TestFilterByRoute_Empty(t *testing.T) {
	tickets := []models.Ticket{{Origin: "TLV", Destination: "VVO", Carrier: "S7"}}
	assert.Empty(t, analyzer.FilterByRoute(tickets, vvoTlv))
	assert.Empty(t, analyzer.FilterByRoute(nil, vvoTlv))
}
