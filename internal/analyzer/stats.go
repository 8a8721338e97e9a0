package analyzer

import (
	"github.com/montanaflynn/stats"
)

type PriceStatistics struct {
	Mean   float64
	Median float64
	// Mean - Median, may be negative
	Gap float64
}

// CalculatePriceStatistics returns zero statistics for an empty input.
func CalculatePriceStatistics(prices []int) PriceStatistics {
	if len(prices) == 0 {
		return PriceStatistics{}
	}

	data := stats.LoadRawData(prices)
	// errors are returned only for an empty input
	mean, _ := stats.Mean(data)
	median, _ := stats.Median(data)

	return PriceStatistics{
		Mean:   mean,
		Median: median,
		Gap:    mean - median,
	}
}
