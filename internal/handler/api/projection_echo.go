package api

import (
	"time"

	"FinPlan/internal/domain/models"
	domsvc "FinPlan/internal/domain/service"
	"FinPlan/internal/service/metrics"
	"FinPlan/internal/services/projection"
	xhttp "FinPlan/pkg/http"
	xlogger "FinPlan/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ProjectionEchoHandler serves the compound-interest calculators and plan builders.
type ProjectionEchoHandler struct {
	logger  *xlogger.Logger
	planner domsvc.Planner
	metrics *metrics.Endpoint
}

func NewProjectionEchoHandler(logger *xlogger.Logger, planner domsvc.Planner, m *metrics.Endpoint) *ProjectionEchoHandler {
	if logger == nil {
		logger = xlogger.NewNop()
	}
	return &ProjectionEchoHandler{logger: logger.Component("projection_api"), planner: planner, metrics: m}
}

func (h *ProjectionEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/projection")
	g.POST("/future-value", h.FutureValue)
	g.POST("/required-payment", h.RequiredPayment)
	g.POST("/plans", h.Plans)
	g.POST("/timeline", h.Timeline)
}

func (h *ProjectionEchoHandler) FutureValue(c echo.Context) error {
	start := time.Now()
	req := &models.FutureValueRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	fv, err := projection.FutureValue(req.Principal, req.MonthlyContribution, req.AnnualRate, req.Years)
	h.metrics.Observe("future_value", start, err)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	contributed := req.Principal + req.MonthlyContribution*req.Years*12
	return xhttp.SuccessResponse(c, models.FutureValueResponse{
		FutureValue:      projection.RoundMoney(fv),
		TotalContributed: projection.RoundMoney(contributed),
		TotalGains:       projection.RoundMoney(fv - contributed),
	})
}

func (h *ProjectionEchoHandler) RequiredPayment(c echo.Context) error {
	start := time.Now()
	req := &models.RequiredPaymentRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	pmt, err := projection.RequiredMonthlyPayment(req.Target, req.Principal, req.AnnualRate, req.Years)
	h.metrics.Observe("required_payment", start, err)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, models.RequiredPaymentResponse{MonthlyPayment: projection.RoundMoney(pmt)})
}

func (h *ProjectionEchoHandler) Plans(c echo.Context) error {
	start := time.Now()
	req := &models.PlanRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.planner.BuildPlans(c.Request().Context(), *req)
	h.metrics.Observe("plans", start, err)
	if err != nil {
		h.logger.Warn("plans usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *ProjectionEchoHandler) Timeline(c echo.Context) error {
	start := time.Now()
	req := &models.TimelineRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.planner.RealisticTimeline(c.Request().Context(), *req)
	h.metrics.Observe("timeline", start, err)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}
