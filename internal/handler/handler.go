package handler

import (
	"net/http"

	"github.com/Falokut/tickets_analyzer_service/internal/analyzer"
	"github.com/Falokut/tickets_analyzer_service/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type TicketsAnalyzerHandler struct {
	logger  *logrus.Logger
	service service.TicketsAnalyzerService
}

func NewTicketsAnalyzerHandler(logger *logrus.Logger, service service.TicketsAnalyzerService) *TicketsAnalyzerHandler {
	return &TicketsAnalyzerHandler{logger: logger, service: service}
}

func (h *TicketsAnalyzerHandler) AnalyzeTickets(c echo.Context) error {
	report, err := h.service.AnalyzeTickets(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.String(http.StatusOK, analyzer.FormatReport(report))
}

// no diagnostics are exposed to the caller, the details are in the service logs
func (h *TicketsAnalyzerHandler) handleError(c echo.Context, err error) error {
	h.logger.WithFields(logrus.Fields{
		"request.path": c.Path(),
		"error.msg":    err.Error(),
	}).Debug("request failed")

	return c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
