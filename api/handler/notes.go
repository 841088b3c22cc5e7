package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/agendadesk/backend/api/transport"
	"github.com/agendadesk/backend/domain"
	"github.com/agendadesk/backend/pkg/httpcontext"
	"github.com/agendadesk/backend/repository"
	notesUC "github.com/agendadesk/backend/usecase/notes"
)

type NotesHandler struct {
	baseHandler
	uc *notesUC.UseCase
}

func NewNotesHandler(uc *notesUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *NotesHandler {
	return &NotesHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List notes
// @Tags notes
// @Router /api/v1/notes [get]
func (h *NotesHandler) GetNotes(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	notes, err := h.uc.ListNotes(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, notes)
}

// @Summary Create note
// @Tags notes
// @Router /api/v1/notes [post]
func (h *NotesHandler) CreateNote(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.NoteRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	note, err := h.uc.CreateNote(stdCtx, userID, req.Title, req.Content)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, note)
}

// @Summary Patch note
// @Tags notes
// @Router /api/v1/notes/{id} [patch]
func (h *NotesHandler) UpdateNote(ctx *fasthttp.RequestCtx) {
	if h.userID(ctx) == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing note id")
		return
	}

	var req transport.NotePatchRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	note, err := h.uc.UpdateNote(stdCtx, id, repository.NotePatch{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, note)
}

// @Summary Delete note
// @Tags notes
// @Router /api/v1/notes/{id} [delete]
func (h *NotesHandler) DeleteNote(ctx *fasthttp.RequestCtx) {
	if h.userID(ctx) == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing note id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteNote(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *NotesHandler) userID(ctx *fasthttp.RequestCtx) string {
	userID := string(ctx.Request.Header.Peek("X-User-ID"))
	if userID == "" {
		h.respondJSON(ctx, http.StatusUnauthorized, transport.NewError(string(domain.ErrCodeUnauthorized), "missing user id", nil))
	}
	return userID
}
