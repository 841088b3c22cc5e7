package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/agendadesk/backend/pkg/httpcontext"
	bookingUC "github.com/agendadesk/backend/usecase/booking"
)

type BookingHandler struct {
	baseHandler
	uc *bookingUC.UseCase
}

func NewBookingHandler(uc *bookingUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List booked events
// @Tags booking
// @Router /api/v1/events [get]
func (h *BookingHandler) GetEvents(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	producerID := string(ctx.QueryArgs().Peek("producer_id"))
	if producerID != "" {
		events, err := h.uc.ListEventsByProducer(stdCtx, producerID)
		if err != nil {
			h.respondError(ctx, err)
			return
		}
		h.respondSuccess(ctx, http.StatusOK, events)
		return
	}

	events, err := h.uc.ListEvents(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, events)
}

// @Summary List producers
// @Tags booking
// @Router /api/v1/producers [get]
func (h *BookingHandler) GetProducers(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	producers, err := h.uc.ListProducers(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, producers)
}

// @Summary List payments
// @Tags booking
// @Router /api/v1/payments [get]
func (h *BookingHandler) GetPayments(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	payments, err := h.uc.ListPayments(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, payments)
}

// @Summary List pending payments
// @Tags booking
// @Router /api/v1/payments/pending [get]
func (h *BookingHandler) GetPendingPayments(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	payments, err := h.uc.ListPendingPayments(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, payments)
}

// @Summary List contracts
// @Tags booking
// @Router /api/v1/contracts [get]
func (h *BookingHandler) GetContracts(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	contracts, err := h.uc.ListContracts(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, contracts)
}

// @Summary Aggregated dashboard metrics
// @Tags booking
// @Router /api/v1/dashboard/metrics [get]
func (h *BookingHandler) GetDashboardMetrics(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	metrics, err := h.uc.DashboardMetrics(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, metrics)
}
