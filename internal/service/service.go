package service

import (
	"context"
	"errors"
	"time"

	"github.com/Falokut/tickets_analyzer_service/internal/analyzer"
	"github.com/Falokut/tickets_analyzer_service/internal/events"
	"github.com/Falokut/tickets_analyzer_service/internal/loader"
	"github.com/Falokut/tickets_analyzer_service/internal/models"
	"github.com/Falokut/tickets_analyzer_service/internal/repository"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/sirupsen/logrus"
)

type TicketsAnalyzerService interface {
	AnalyzeTickets(ctx context.Context) (models.Report, error)
}

type Metrics interface {
	ObserveAnalysis(routeTickets int, observeTime float64)
	IncAnalysisErrors(code string)
}

type ticketsAnalyzerService struct {
	logger         *logrus.Logger
	source         repository.TicketsSource
	route          models.Route
	analysisEvents events.AnalysisEventsMQ
	metrics        Metrics
}

func NewTicketsAnalyzerService(logger *logrus.Logger,
	source repository.TicketsSource,
	route models.Route,
	analysisEvents events.AnalysisEventsMQ,
	metrics Metrics,
) *ticketsAnalyzerService {
	return &ticketsAnalyzerService{
		logger:         logger,
		source:         source,
		route:          route,
		analysisEvents: analysisEvents,
		metrics:        metrics,
	}
}

// AnalyzeTickets reads the whole dataset on every call and fails on the first invalid ticket.
func (s *ticketsAnalyzerService) AnalyzeTickets(ctx context.Context) (report models.Report, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "TicketsAnalyzerService.AnalyzeTickets")
	defer span.Finish()
	defer s.handleError(&err, span, "AnalyzeTickets")

	start := time.Now()
	document, err := s.source.FetchTickets(ctx)
	if err != nil {
		return
	}

	raw, err := loader.Load(document)
	if err != nil {
		return
	}
	span.SetTag("tickets.total", len(raw))

	report, err = analyzer.Analyze(raw, s.route)
	if err != nil {
		return
	}
	span.SetTag("tickets.route", report.TicketsCount)
	s.metrics.ObserveAnalysis(report.TicketsCount, time.Since(start).Seconds())

	if report.Empty() {
		s.logger.WithFields(logrus.Fields{
			"route.origin":      s.route.Origin,
			"route.destination": s.route.Destination,
		}).Info("no tickets found for the route")
		return report, nil
	}

	if err := s.analysisEvents.TicketsAnalyzed(ctx, report); err != nil {
		s.logger.WithField("error.msg", err.Error()).Warn("error while publishing tickets analyzed event")
	}

	return report, nil
}

func (s *ticketsAnalyzerService) handleError(err *error, span opentracing.Span, functionName string) {
	if err == nil || *err == nil {
		return
	}

	var (
		malformedErr *models.MalformedInputError
		missingErr   *models.MissingFieldError
		mismatchErr  *models.TypeMismatchError
		timeErr      *models.TimeParseError
		serviceErr   *models.ServiceError
	)
	switch {
	case errors.As(*err, &serviceErr):
	case errors.As(*err, &malformedErr), errors.As(*err, &missingErr),
		errors.As(*err, &mismatchErr), errors.As(*err, &timeErr):
		*err = models.Wrap(models.InvalidData, *err)
	default:
		*err = models.Wrap(models.Internal, *err)
	}

	code := models.Code(*err)
	ext.Error.Set(span, true)
	span.SetTag("error.code", code.String())
	s.metrics.IncAnalysisErrors(code.String())
	s.logger.WithFields(
		logrus.Fields{
			"error.function.name": functionName,
			"error.msg":           (*err).Error(),
			"error.code":          code,
		},
	).Error("tickets analyzer service error occurred")
}
