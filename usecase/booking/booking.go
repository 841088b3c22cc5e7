package booking

import (
	"context"

	"go.uber.org/zap"

	"github.com/agendadesk/backend/domain"
	"github.com/agendadesk/backend/repository"
)

// UseCase serves the portal's read-mostly booking data.
type UseCase struct {
	bookings repository.BookingRepository
	logger   *zap.Logger
}

func New(bookings repository.BookingRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		bookings: bookings,
		logger:   logger,
	}
}

func (uc *UseCase) ListDJs(ctx context.Context) ([]domain.DJ, error) {
	return uc.bookings.ListDJs(ctx)
}

func (uc *UseCase) GetDJ(ctx context.Context, id string) (*domain.DJ, error) {
	return uc.bookings.GetDJ(ctx, id)
}

func (uc *UseCase) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return uc.bookings.ListEvents(ctx)
}

func (uc *UseCase) ListEventsByProducer(ctx context.Context, producerID string) ([]domain.Event, error) {
	return uc.bookings.ListEventsByProducer(ctx, producerID)
}

func (uc *UseCase) ListProducers(ctx context.Context) ([]domain.Producer, error) {
	return uc.bookings.ListProducers(ctx)
}

func (uc *UseCase) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return uc.bookings.ListPayments(ctx)
}

func (uc *UseCase) ListPendingPayments(ctx context.Context) ([]domain.Payment, error) {
	return uc.bookings.ListPendingPayments(ctx)
}

func (uc *UseCase) ListContracts(ctx context.Context) ([]domain.Contract, error) {
	return uc.bookings.ListContracts(ctx)
}

func (uc *UseCase) DashboardMetrics(ctx context.Context) (*domain.DashboardMetrics, error) {
	return uc.bookings.DashboardMetrics(ctx)
}
