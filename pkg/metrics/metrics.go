package metrics

import (
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics interface {
	IncHits(status int, method, path string)
	ObserveResponseTime(status int, method, path string, observeTime float64)
	ObserveAnalysis(routeTickets int, observeTime float64)
	IncAnalysisErrors(code string)
}

type MetricsServerConfig struct {
	Host string `yaml:"host" env:"PROMETHEUS_SERVER_HOST"`
	Port string `yaml:"port" env:"PROMETHEUS_SERVER_PORT"`
}

type PrometheusMetrics struct {
	HitsTotal      prometheus.Counter
	Hits           *prometheus.CounterVec
	Times          *prometheus.HistogramVec
	AnalysisTimes  prometheus.Histogram
	RouteTickets   prometheus.Gauge
	AnalysisErrors *prometheus.CounterVec
}

func CreateMetrics(name string) (Metrics, error) {
	return createMetrics(name, prometheus.DefaultRegisterer)
}

func createMetrics(name string, registerer prometheus.Registerer) (*PrometheusMetrics, error) {
	var metr PrometheusMetrics
	metr.HitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: name + "_hits_total",
	})

	metr.Hits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name + "_hits",
		},
		[]string{"status", "method", "path"},
	)

	metr.Times = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: name + "_times",
		},
		[]string{"status", "method", "path"},
	)

	metr.AnalysisTimes = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: name + "_analysis_times",
		Help: "time spent on fetching and analyzing the tickets dataset, seconds",
	})

	metr.RouteTickets = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: name + "_route_tickets",
		Help: "tickets matched the route during the last analysis",
	})

	metr.AnalysisErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name + "_analysis_errors",
		},
		[]string{"code"},
	)

	collectors := []prometheus.Collector{
		metr.HitsTotal,
		metr.Hits,
		metr.Times,
		metr.AnalysisTimes,
		metr.RouteTickets,
		metr.AnalysisErrors,
	}
	for _, c := range collectors {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}

	return &metr, nil
}

func (metr *PrometheusMetrics) IncHits(status int, method, path string) {
	metr.HitsTotal.Inc()
	metr.Hits.WithLabelValues(strconv.Itoa(status), method, path).Inc()
}

func (metr *PrometheusMetrics) ObserveResponseTime(status int, method, path string, observeTime float64) {
	metr.Times.WithLabelValues(strconv.Itoa(status), method, path).Observe(observeTime)
}

func (metr *PrometheusMetrics) ObserveAnalysis(routeTickets int, observeTime float64) {
	metr.AnalysisTimes.Observe(observeTime)
	metr.RouteTickets.Set(float64(routeTickets))
}

func (metr *PrometheusMetrics) IncAnalysisErrors(code string) {
	metr.AnalysisErrors.WithLabelValues(code).Inc()
}

func RunMetricServer(cfg MetricsServerConfig) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(net.JoinHostPort(cfg.Host, cfg.Port), mux)
}
