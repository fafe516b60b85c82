package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"FinPlan/internal/domain/models"
	domsvc "FinPlan/internal/domain/service"
	"FinPlan/internal/service/metrics"
	xhttp "FinPlan/pkg/http"
	xlogger "FinPlan/pkg/logger"
	"FinPlan/pkg/util"

	"github.com/labstack/echo/v4"
)

// MaxQuoteSymbols bounds one /api/quotes request.
const MaxQuoteSymbols = 20

// MarketEchoHandler serves the market data accessors and the market context.
type MarketEchoHandler struct {
	logger  *xlogger.Logger
	data    domsvc.MarketData
	ctx     domsvc.MarketContextProvider
	metrics *metrics.Endpoint
}

func NewMarketEchoHandler(logger *xlogger.Logger, data domsvc.MarketData, mc domsvc.MarketContextProvider, m *metrics.Endpoint) *MarketEchoHandler {
	if logger == nil {
		logger = xlogger.NewNop()
	}
	return &MarketEchoHandler{logger: logger.Component("market_api"), data: data, ctx: mc, metrics: m}
}

func (h *MarketEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/quote", h.Quote)
	g.GET("/quotes", h.Quotes)
	g.GET("/forex", h.Forex)
	g.GET("/inflation", h.Inflation)
	g.GET("/indicators", h.Indicators)
	g.GET("/sentiment", h.Sentiment)
	g.GET("/benchmarks", h.Benchmarks)
	g.GET("/market/context", h.Context)
	g.GET("/market/narrative", h.Narrative)
}

func (h *MarketEchoHandler) Quote(c echo.Context) error {
	start := time.Now()
	req := &models.QuoteRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.data.GetStockQuote(c.Request().Context(), req.Symbol)
	h.metrics.Observe("quote", start, err)
	if err != nil {
		return h.fail(c, "quote", err)
	}
	setCacheControl(c, res.Origin)
	return xhttp.SuccessResponse(c, res)
}

func (h *MarketEchoHandler) Quotes(c echo.Context) error {
	start := time.Now()
	req := &models.QuotesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	symbols := util.SplitList(req.Symbols)
	if len(symbols) == 0 {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("symbols must list at least one symbol"))
	}
	if len(symbols) > MaxQuoteSymbols {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestErrorf("at most %d symbols per request", MaxQuoteSymbols))
	}

	res := h.data.GetMultipleStocks(c.Request().Context(), symbols)
	h.metrics.Observe("quotes", start, nil)
	return xhttp.SuccessResponse(c, res)
}

func (h *MarketEchoHandler) Forex(c echo.Context) error {
	start := time.Now()
	req := &models.ForexRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.data.GetForexRate(c.Request().Context(), req.From, req.To)
	h.metrics.Observe("forex", start, err)
	if err != nil {
		return h.fail(c, "forex", err)
	}
	setCacheControl(c, res.Origin)
	return xhttp.SuccessResponse(c, res)
}

func (h *MarketEchoHandler) Inflation(c echo.Context) error {
	return h.byCountry(c, "inflation", func(ctx context.Context, country string) (interface{}, error) {
		return h.data.GetInflationRate(ctx, country)
	})
}

func (h *MarketEchoHandler) Indicators(c echo.Context) error {
	return h.byCountry(c, "indicators", func(ctx context.Context, country string) (interface{}, error) {
		return h.data.GetEconomicIndicators(ctx, country)
	})
}

func (h *MarketEchoHandler) Sentiment(c echo.Context) error {
	start := time.Now()
	res := h.data.GetCryptoSentimentIndex(c.Request().Context())
	h.metrics.Observe("sentiment", start, nil)
	setCacheControl(c, res.Origin)
	return xhttp.SuccessResponse(c, res)
}

func (h *MarketEchoHandler) Benchmarks(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")
	return xhttp.SuccessResponse(c, h.data.GetFinancialBenchmarks())
}

func (h *MarketEchoHandler) Context(c echo.Context) error {
	return h.byCountry(c, "market_context", func(ctx context.Context, country string) (interface{}, error) {
		return h.ctx.GetMarketContext(ctx, country), nil
	})
}

func (h *MarketEchoHandler) Narrative(c echo.Context) error {
	return h.byCountry(c, "market_narrative", func(ctx context.Context, country string) (interface{}, error) {
		return models.NarrativeResponse{
			Country:   strings.ToUpper(country),
			Narrative: h.ctx.GetMarketNarrative(ctx, country),
		}, nil
	})
}

func (h *MarketEchoHandler) byCountry(c echo.Context, endpoint string, fn func(context.Context, string) (interface{}, error)) error {
	start := time.Now()
	req := &models.CountryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := fn(c.Request().Context(), req.Country)
	h.metrics.Observe(endpoint, start, err)
	if err != nil {
		return h.fail(c, endpoint, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *MarketEchoHandler) fail(c echo.Context, endpoint string, err error) error {
	appErr := xhttp.FromDomainError(err)
	if appErr.Status >= http.StatusInternalServerError {
		h.logger.Error(endpoint+" usecase error", xlogger.Error(err))
	} else {
		h.logger.Debug(endpoint+" rejected", xlogger.Error(err))
	}
	return xhttp.AppErrorResponse(c, err)
}

// setCacheControl lets clients reuse live and cached values briefly; degraded ones are not cached.
func setCacheControl(c echo.Context, origin models.Origin) {
	switch origin {
	case models.OriginLive, models.OriginCache:
		c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=60")
	default:
		c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	}
}
