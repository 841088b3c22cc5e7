package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/agendadesk/backend/api/handler"
)

type Handlers struct {
	Auth    *apiHandler.AuthHandler
	Agenda  *apiHandler.AgendaHandler
	Notes   *apiHandler.NotesHandler
	DJ      *apiHandler.DJHandler
	Booking *apiHandler.BookingHandler
	Health  *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/api/v1/auth/login", handlers.Auth.Login)
	r.POST("/api/v1/auth/refresh", handlers.Auth.Refresh)
	r.POST("/api/v1/auth/logout", authMiddleware(handlers.Auth.Logout))

	// Agenda routes
	r.GET("/api/v1/agenda/personal", authMiddleware(handlers.Agenda.GetPersonal))
	r.GET("/api/v1/agenda/personal/day", authMiddleware(handlers.Agenda.GetDay))
	r.GET("/api/v1/agenda/personal/grid", authMiddleware(handlers.Agenda.GetMonthGrid))
	r.GET("/api/v1/agenda/content", authMiddleware(handlers.Agenda.GetContent))
	r.GET("/api/v1/agenda/content/kanban", authMiddleware(handlers.Agenda.GetKanban))
	r.POST("/api/v1/agenda/items", authMiddleware(handlers.Agenda.CreateItem))
	r.PATCH("/api/v1/agenda/items/{id}", authMiddleware(handlers.Agenda.UpdateItem))
	r.PATCH("/api/v1/agenda/items/{id}/status", authMiddleware(handlers.Agenda.UpdateItemStatus))
	r.DELETE("/api/v1/agenda/items/{id}", authMiddleware(handlers.Agenda.DeleteItem))
	r.PUT("/api/v1/agenda/kanban/group-by", authMiddleware(handlers.Agenda.SetGroupBy))

	// Roster and bookings
	r.GET("/api/v1/djs", authMiddleware(handlers.DJ.GetDJs))
	r.GET("/api/v1/djs/{id}/agenda", authMiddleware(handlers.DJ.GetDJAgenda))
	r.GET("/api/v1/events", authMiddleware(handlers.Booking.GetEvents))
	r.GET("/api/v1/producers", authMiddleware(handlers.Booking.GetProducers))
	r.GET("/api/v1/payments", authMiddleware(handlers.Booking.GetPayments))
	r.GET("/api/v1/payments/pending", authMiddleware(handlers.Booking.GetPendingPayments))
	r.GET("/api/v1/contracts", authMiddleware(handlers.Booking.GetContracts))
	r.GET("/api/v1/dashboard/metrics", authMiddleware(handlers.Booking.GetDashboardMetrics))

	// Notes
	r.GET("/api/v1/notes", authMiddleware(handlers.Notes.GetNotes))
	r.POST("/api/v1/notes", authMiddleware(handlers.Notes.CreateNote))
	r.PATCH("/api/v1/notes/{id}", authMiddleware(handlers.Notes.UpdateNote))
	r.DELETE("/api/v1/notes/{id}", authMiddleware(handlers.Notes.DeleteNote))

	return r
}
