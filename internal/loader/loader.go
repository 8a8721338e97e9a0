package loader

import (
	"math"
	"strconv"
	"strings"

	"github.com/Falokut/tickets_analyzer_service/internal/models"
	jsoniter "github.com/json-iterator/go"
)

const (
	ticketsField       = "tickets"
	originField        = "origin"
	destinationField   = "destination"
	carrierField       = "carrier"
	priceField         = "price"
	departureTimeField = "departure_time"
	arrivalTimeField   = "arrival_time"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Load parses a document of the form {"tickets": [...]}.
// It stops at the first invalid record, no partial result is returned.
func Load(document []byte) ([]models.RawTicket, error) {
	if !json.Valid(document) {
		return nil, &models.MalformedInputError{Reason: "document is not a valid JSON"}
	}

	root := json.Get(document)
	if root.ValueType() != jsoniter.ObjectValue {
		return nil, &models.MalformedInputError{Reason: "document root is not an object"}
	}

	ticketsNode := root.Get(ticketsField)
	if ticketsNode.ValueType() != jsoniter.ArrayValue {
		return nil, &models.MalformedInputError{Reason: "tickets node is missing or not an array"}
	}

	// split once, Get(i) on a lazy array rescans it from the start
	var records []jsoniter.RawMessage
	ticketsNode.ToVal(&records)
	tickets := make([]models.RawTicket, 0, len(records))
	for i, record := range records {
		ticket, err := parseTicket(i, json.Get(record))
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	return tickets, nil
}

func parseTicket(index int, node jsoniter.Any) (ticket models.RawTicket, err error) {
	p := ticketParser{index: index, node: node}
	ticket = models.RawTicket{
		Origin:        p.text(originField),
		Destination:   p.text(destinationField),
		Carrier:       p.text(carrierField),
		Price:         p.integer(priceField),
		DepartureTime: p.text(departureTimeField),
		ArrivalTime:   p.text(arrivalTimeField),
	}
	if p.err != nil {
		return models.RawTicket{}, p.err
	}
	return ticket, nil
}

// ticketParser keeps the first error, later calls are no-ops.
type ticketParser struct {
	index int
	node  jsoniter.Any
	err   error
}

func (p *ticketParser) field(name string) (jsoniter.Any, bool) {
	if p.err != nil {
		return nil, false
	}

	value := p.node.Get(name)
	switch value.ValueType() {
	case jsoniter.InvalidValue, jsoniter.NilValue:
		p.err = &models.MissingFieldError{Index: p.index, Field: name}
		return nil, false
	}
	return value, true
}

func (p *ticketParser) text(name string) string {
	value, ok := p.field(name)
	if !ok {
		return ""
	}

	switch value.ValueType() {
	case jsoniter.StringValue, jsoniter.NumberValue, jsoniter.BoolValue:
		return value.ToString()
	default:
		p.err = &models.TypeMismatchError{Index: p.index, Field: name, Value: value.ToString()}
		return ""
	}
}

// integer accepts JSON numbers (fractions are truncated) and strings holding a base 10 integer.
func (p *ticketParser) integer(name string) int {
	value, ok := p.field(name)
	if !ok {
		return 0
	}

	var (
		res    int
		parsed bool
	)
	switch value.ValueType() {
	case jsoniter.NumberValue:
		res, parsed = parseNumber(value.ToString())
	case jsoniter.StringValue:
		n, err := strconv.Atoi(strings.TrimSpace(value.ToString()))
		res, parsed = n, err == nil
	}

	if !parsed {
		p.err = &models.TypeMismatchError{Index: p.index, Field: name, Value: value.ToString()}
		return 0
	}
	return res
}

func parseNumber(raw string) (int, bool) {
	if n, err := strconv.Atoi(raw); err == nil {
		return n, true
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	f = math.Trunc(f)
	if f >= math.MaxInt || f < math.MinInt {
		return 0, false
	}
	return int(f), true
}
