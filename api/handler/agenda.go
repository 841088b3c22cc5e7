package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/agendadesk/backend/api/transport"
	"github.com/agendadesk/backend/domain"
	"github.com/agendadesk/backend/pkg/httpcontext"
	agendaUC "github.com/agendadesk/backend/usecase/agenda"
)

const dayQueryLayout = "2006-01-02"

type AgendaHandler struct {
	baseHandler
	svc *agendaUC.Service
}

func NewAgendaHandler(svc *agendaUC.Service, adapter *httpcontext.Adapter, logger *zap.Logger) *AgendaHandler {
	return &AgendaHandler{
		baseHandler: newBaseHandler(adapter, logger),
		svc:         svc,
	}
}

// @Summary Personal agenda in list order
// @Tags agenda
// @Router /api/v1/agenda/personal [get]
func (h *AgendaHandler) GetPersonal(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, h.svc.ListView())
}

// @Summary Personal agenda for one day
// @Tags agenda
// @Router /api/v1/agenda/personal/day [get]
func (h *AgendaHandler) GetDay(ctx *fasthttp.RequestCtx) {
	raw := string(ctx.QueryArgs().Peek("date"))
	day, err := time.Parse(dayQueryLayout, raw)
	if err != nil {
		h.respondInvalid(ctx, "date must be YYYY-MM-DD")
		return
	}
	h.respondSuccess(ctx, http.StatusOK, h.svc.DayView(day))
}

// @Summary Calendar grid for a month
// @Tags agenda
// @Router /api/v1/agenda/personal/grid [get]
func (h *AgendaHandler) GetMonthGrid(ctx *fasthttp.RequestCtx) {
	year := parseInt(string(ctx.QueryArgs().Peek("year")), 0)
	month := parseInt(string(ctx.QueryArgs().Peek("month")), 0)
	if year < 1 || month < 1 || month > 12 {
		h.respondInvalid(ctx, "year and month query params are required")
		return
	}
	h.respondSuccess(ctx, http.StatusOK, h.svc.MonthGrid(year, time.Month(month)))
}

// @Summary Content-plan items
// @Tags agenda
// @Router /api/v1/agenda/content [get]
func (h *AgendaHandler) GetContent(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, h.svc.Content())
}

// @Summary Kanban projection of the content plan
// @Tags agenda
// @Router /api/v1/agenda/content/kanban [get]
func (h *AgendaHandler) GetKanban(ctx *fasthttp.RequestCtx) {
	payload := map[string]interface{}{
		"settings": h.svc.Settings(),
		"columns":  h.svc.KanbanView(),
	}
	h.respondSuccess(ctx, http.StatusOK, payload)
}

// @Summary Create agenda item
// @Tags agenda
// @Router /api/v1/agenda/items [post]
func (h *AgendaHandler) CreateItem(ctx *fasthttp.RequestCtx) {
	var req transport.AgendaItemRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	draft := agendaUC.ItemDraft{
		Title:         req.Title,
		Description:   req.Description,
		Date:          req.Date,
		Time:          req.Time,
		Status:        domain.Status(req.Status),
		Priority:      domain.Priority(req.Priority),
		Category:      domain.Category(req.Category),
		SharedWithDJs: req.SharedWithDJs,
		DJID:          req.DJID,
	}

	created, err := h.svc.CreateItem(draft)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Patch agenda item fields
// @Tags agenda
// @Router /api/v1/agenda/items/{id} [patch]
func (h *AgendaHandler) UpdateItem(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing item id")
		return
	}

	var req transport.AgendaItemPatchRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	updated, err := h.svc.UpdateFields(id, patchFromRequest(req))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Move agenda item to another status
// @Tags agenda
// @Router /api/v1/agenda/items/{id}/status [patch]
func (h *AgendaHandler) UpdateItemStatus(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing item id")
		return
	}

	var req transport.StatusRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.Status == "" {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	updated, err := h.svc.UpdateStatus(id, domain.Status(req.Status))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete agenda item
// @Tags agenda
// @Router /api/v1/agenda/items/{id} [delete]
func (h *AgendaHandler) DeleteItem(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing item id")
		return
	}

	if err := h.svc.DeleteItem(id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Switch the kanban grouping dimension
// @Tags agenda
// @Router /api/v1/agenda/kanban/group-by [put]
func (h *AgendaHandler) SetGroupBy(ctx *fasthttp.RequestCtx) {
	var req transport.GroupByRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.GroupBy == "" {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	settings, err := h.svc.SetGroupBy(domain.GroupBy(req.GroupBy))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, settings)
}

func patchFromRequest(req transport.AgendaItemPatchRequest) agendaUC.ItemPatch {
	patch := agendaUC.ItemPatch{
		Title:         req.Title,
		Description:   req.Description,
		Date:          req.Date,
		Time:          req.Time,
		SharedWithDJs: req.SharedWithDJs,
		DJID:          req.DJID,
	}
	if req.Status != nil {
		s := domain.Status(*req.Status)
		patch.Status = &s
	}
	if req.Priority != nil {
		p := domain.Priority(*req.Priority)
		patch.Priority = &p
	}
	if req.Category != nil {
		c := domain.Category(*req.Category)
		patch.Category = &c
	}
	return patch
}
