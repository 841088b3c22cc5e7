package repository

import (
	"context"

	"github.com/agendadesk/backend/domain"
)

// BookingRepository exposes the read-mostly queries of the agency's relational
// data: DJs, events, producers, payments and contracts.
type BookingRepository interface {
	ListDJs(ctx context.Context) ([]domain.DJ, error)
	GetDJ(ctx context.Context, id string) (*domain.DJ, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	ListEventsByDJ(ctx context.Context, djID string) ([]domain.Event, error)
	ListEventsByProducer(ctx context.Context, producerID string) ([]domain.Event, error)
	ListProducers(ctx context.Context) ([]domain.Producer, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	ListPendingPayments(ctx context.Context) ([]domain.Payment, error)
	ListContracts(ctx context.Context) ([]domain.Contract, error)
	DashboardMetrics(ctx context.Context) (*domain.DashboardMetrics, error)
}
