package models

type CarrierDuration struct {
	Carrier string `json:"carrier"`
	Minutes int    `json:"minutes"`
}

type Report struct {
	Route        Route             `json:"route"`
	TicketsCount int               `json:"tickets_count"`
	MinDurations []CarrierDuration `json:"min_durations"`
	MeanPrice    float64           `json:"mean_price"`
	MedianPrice  float64           `json:"median_price"`
	PriceGap     float64           `json:"price_gap"`
}

// Empty reports whether no tickets matched the route.
func (r Report) Empty() bool {
	return r.TicketsCount == 0
}
