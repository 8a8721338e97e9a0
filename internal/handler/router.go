package handler

import (
	"net/http"
	"time"

	"github.com/Falokut/tickets_analyzer_service/pkg/metrics"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/sirupsen/logrus"
)

const AnalyzeTicketsPath = "/api/tickets/analyze"

func NewRouter(logger *logrus.Logger, handler *TicketsAnalyzerHandler, metr metrics.Metrics) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(tracingMiddleware)
	e.Use(loggingMiddleware(logger))
	e.Use(metricsMiddleware(metr))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET(AnalyzeTicketsPath, handler.AnalyzeTickets)

	return e
}

func tracingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		tracer := opentracing.GlobalTracer()
		spanCtx, _ := tracer.Extract(opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(req.Header))
		span := tracer.StartSpan(req.Method+" "+c.Path(), ext.RPCServerOption(spanCtx))
		defer span.Finish()

		ext.HTTPMethod.Set(span, req.Method)
		ext.HTTPUrl.Set(span, req.URL.String())
		c.SetRequest(req.WithContext(opentracing.ContextWithSpan(req.Context(), span)))

		err := next(c)
		ext.HTTPStatusCode.Set(span, uint16(c.Response().Status))
		return err
	}
}

func metricsMiddleware(metr metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			metr.IncHits(status, c.Request().Method, c.Path())
			metr.ObserveResponseTime(status, c.Request().Method, c.Path(), time.Since(start).Seconds())
			return nil
		}
	}
}

func loggingMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			logger.WithFields(logrus.Fields{
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
				"method":     c.Request().Method,
				"path":       c.Request().URL.Path,
				"status":     c.Response().Status,
				"latency":    time.Since(start).String(),
			}).Info("Handling a request")
			return err
		}
	}
}
