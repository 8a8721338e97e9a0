package models

// RawTicket is a ticket record as it comes from the dataset, before any derived values are computed.
type RawTicket struct {
	Origin        string `json:"origin" bson:"origin"`
	Destination   string `json:"destination" bson:"destination"`
	Carrier       string `json:"carrier" bson:"carrier"`
	Price         int    `json:"price" bson:"price"`
	DepartureTime string `json:"departure_time" bson:"departure_time"`
	ArrivalTime   string `json:"arrival_time" bson:"arrival_time"`
}

type Ticket struct {
	Origin        string
	Destination   string
	Carrier       string
	Price         int
	DepartureTime string
	ArrivalTime   string
	// in minutes, always in [0, 1439]
	FlightDuration int
}

type Route struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}
