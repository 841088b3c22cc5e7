package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/agendadesk/backend/internal/services/djagenda"
	"github.com/agendadesk/backend/pkg/httpcontext"
	bookingUC "github.com/agendadesk/backend/usecase/booking"
)

type DJHandler struct {
	baseHandler
	uc     *bookingUC.UseCase
	loader *djagenda.Loader
}

func NewDJHandler(uc *bookingUC.UseCase, loader *djagenda.Loader, adapter *httpcontext.Adapter, logger *zap.Logger) *DJHandler {
	return &DJHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
		loader:      loader,
	}
}

// @Summary List DJs on the roster
// @Tags djs
// @Router /api/v1/djs [get]
func (h *DJHandler) GetDJs(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	djs, err := h.uc.ListDJs(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, djs)
}

// @Summary Agenda of a single DJ
// @Tags djs
// @Router /api/v1/djs/{id}/agenda [get]
func (h *DJHandler) GetDJAgenda(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing dj id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if _, err := h.uc.GetDJ(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}

	snapshot := h.loader.Get(stdCtx, id)
	h.respondSuccess(ctx, http.StatusOK, snapshot)
}
