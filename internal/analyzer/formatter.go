package analyzer

import (
	"math"
	"strconv"
	"strings"

	"github.com/Falokut/tickets_analyzer_service/internal/models"
)

const (
	NoTicketsMessage = "Нет билетов между Владивостоком и Тель-Авивом."

	minDurationsHeader = "Минимальное время полета для каждого авиаперевозчика:\n"
	durationUnit       = " минут\n"
	priceGapPrefix     = "\nРазница между средней ценой и медианой: "
	priceGapUnit       = " рублей"
)

// FormatReport renders the report in the layout existing consumers parse, so the strings
// and line breaks must not change.
func FormatReport(report models.Report) string {
	if report.Empty() {
		return NoTicketsMessage
	}

	var sb strings.Builder
	sb.WriteString(minDurationsHeader)
	for _, d := range report.MinDurations {
		sb.WriteString(d.Carrier)
		sb.WriteString(": ")
		sb.WriteString(strconv.Itoa(d.Minutes))
		sb.WriteString(durationUnit)
	}
	sb.WriteString(priceGapPrefix)
	sb.WriteString(formatDouble(report.PriceGap))
	sb.WriteString(priceGapUnit)
	return sb.String()
}

// formatDouble renders a float the way the JVM does: plain notation with at least one
// fractional digit for magnitudes in [1e-3, 1e7), computerized scientific notation otherwise.
func formatDouble(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(v, 'E', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	e, _ := strconv.Atoi(exp)
	return mantissa + "E" + strconv.Itoa(e)
}
