package analyzer

import (
	"time"

	"github.com/Falokut/tickets_analyzer_service/internal/models"
)

const (
	// hour may be given without a leading zero, minutes always take two digits
	clockLayout  = "15:04"
	minutesInDay = 24 * 60
)

// ComputeDuration returns the flight duration in minutes between two clock times.
// An arrival earlier than the departure is treated as the next day, so flights
// lasting a day or longer can't be represented.
func ComputeDuration(departure, arrival string) (int, error) {
	dep, err := parseClockMinutes(departure)
	if err != nil {
		return 0, err
	}
	arr, err := parseClockMinutes(arrival)
	if err != nil {
		return 0, err
	}

	duration := arr - dep
	if duration < 0 {
		duration += minutesInDay
	}
	return duration, nil
}

func parseClockMinutes(clock string) (int, error) {
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return 0, &models.TimeParseError{Value: clock, Err: err}
	}
	return t.Hour()*60 + t.Minute(), nil
}

func NewTicket(raw models.RawTicket) (models.Ticket, error) {
	duration, err := ComputeDuration(raw.DepartureTime, raw.ArrivalTime)
	if err != nil {
		return models.Ticket{}, err
	}

	return models.Ticket{
		Origin:         raw.Origin,
		Destination:    raw.Destination,
		Carrier:        raw.Carrier,
		Price:          raw.Price,
		DepartureTime:  raw.DepartureTime,
		ArrivalTime:    raw.ArrivalTime,
		FlightDuration: duration,
	}, nil
}
