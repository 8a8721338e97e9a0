package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/Falokut/tickets_analyzer_service/internal/handler"
	"github.com/Falokut/tickets_analyzer_service/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serviceMock struct {
	report models.Report
	err    error
}

func (s serviceMock) AnalyzeTickets(context.Context) (models.Report, error) {
	return s.report, s.err
}

type hit struct {
	status int
	method string
	path   string
}

type metricsMock struct {
	mu   sync.Mutex
	Hits []hit
}

func (m *metricsMock) IncHits(status int, method, path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Hits = append(m.Hits, hit{status: status, method: method, path: path})
}

func (m *metricsMock) ObserveResponseTime(int, string, string, float64) {}

func (m *metricsMock) ObserveAnalysis(int, float64) {}

func (m *metricsMock) IncAnalysisErrors(string) {}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newRouter(s serviceMock, metr *metricsMock) *echo.Echo {
	logger := newLogger()
	return handler.NewRouter(logger, handler.NewTicketsAnalyzerHandler(logger, s), metr)
}

func doGet(t *testing.T, e *echo.Echo, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeTickets(t *testing.T) {
	metr := &metricsMock{}
	e := newRouter(serviceMock{report: models.Report{
		TicketsCount: 2,
		MinDurations: []models.CarrierDuration{{Carrier: "S7", Minutes: 90}},
		PriceGap:     -12.5,
	}}, metr)

	rec := doGet(t, e, handler.AnalyzeTicketsPath)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMETextPlainCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, "Минимальное время полета для каждого авиаперевозчика:\n"+
		"S7: 90 минут\n"+
		"\nРазница между средней ценой и медианой: -12.5 рублей", rec.Body.String())
	assert.Equal(t, []hit{{status: http.StatusOK, method: http.MethodGet, path: handler.AnalyzeTicketsPath}}, metr.Hits)
}

func TestAnalyzeTickets_NoTickets(t *testing.T) {
	e := newRouter(serviceMock{}, &metricsMock{})

	rec := doGet(t, e, handler.AnalyzeTicketsPath)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Нет билетов между Владивостоком и Тель-Авивом.", rec.Body.String())
}

func TestAnalyzeTickets_Error(t *testing.T) {
	metr := &metricsMock{}
	e := newRouter(serviceMock{err: models.Wrap(models.InvalidData,
		&models.MissingFieldError{Index: 3, Field: "carrier"})}, metr)

	rec := doGet(t, e, handler.AnalyzeTicketsPath)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "carrier")
	require.Len(t, metr.Hits, 1)
	assert.Equal(t, http.StatusInternalServerError, metr.Hits[0].status)
}

func TestAnalyzeTickets_PlainError(t *testing.T) {
	e := newRouter(serviceMock{err: errors.New("boom")}, &metricsMock{})

	rec := doGet(t, e, handler.AnalyzeTicketsPath)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealth(t *testing.T) {
	e := newRouter(serviceMock{}, &metricsMock{})

	rec := doGet(t, e, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	metr := &metricsMock{}
	e := newRouter(serviceMock{}, metr)

	rec := doGet(t, e, "/api/tickets/unknown")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.Len(t, metr.Hits, 1)
	assert.Equal(t, http.StatusNotFound, metr.Hits[0].status)
}
