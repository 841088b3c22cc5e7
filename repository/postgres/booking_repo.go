package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agendadesk/backend/domain"
	"github.com/agendadesk/backend/repository"
)

type bookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository returns a Postgres-backed implementation of BookingRepository.
func NewBookingRepository(pool *pgxpool.Pool) repository.BookingRepository {
	return &bookingRepository{pool: pool}
}

func (r *bookingRepository) ListDJs(ctx context.Context) ([]domain.DJ, error) {
	const query = `
	SELECT d.id, d.artist_name, d.real_name, d.email, d.genre, d.base_price,
	       d.instagram_url, d.youtube_url, d.tiktok_url, d.soundcloud_url,
	       d.avatar_url, d.birth_date, d.status, d.is_active,
	       COUNT(DISTINCT e.id) AS event_count, d.created_at
	FROM djs d
	LEFT JOIN events e ON d.id = e.dj_id
	GROUP BY d.id
	ORDER BY d.artist_name ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var djs []domain.DJ
	for rows.Next() {
		dj, err := scanDJ(rows)
		if err != nil {
			return nil, err
		}
		djs = append(djs, *dj)
	}
	return djs, rows.Err()
}

func (r *bookingRepository) GetDJ(ctx context.Context, id string) (*domain.DJ, error) {
	const query = `
	SELECT d.id, d.artist_name, d.real_name, d.email, d.genre, d.base_price,
	       d.instagram_url, d.youtube_url, d.tiktok_url, d.soundcloud_url,
	       d.avatar_url, d.birth_date, d.status, d.is_active,
	       COUNT(DISTINCT e.id) AS event_count, d.created_at
	FROM djs d
	LEFT JOIN events e ON d.id = e.dj_id
	WHERE d.id = $1
	GROUP BY d.id
	`
	dj, err := scanDJ(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, domain.ErrDJNotFound
		}
		return nil, err
	}
	return dj, nil
}

const eventColumns = `
	e.id, e.title, e.event_name, e.event_date, e.fee, e.cache_value,
	e.payment_status, e.payment_proof, e.dj_id, d.name, d.artist_name,
	e.producer_id, p.name, p.company_name, e.created_at`

func (r *bookingRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	const query = `
	SELECT ` + eventColumns + `
	FROM events e
	LEFT JOIN djs d ON e.dj_id = d.id
	LEFT JOIN producers p ON e.producer_id = p.id
	ORDER BY e.event_date DESC
	`
	return r.queryEvents(ctx, query)
}

func (r *bookingRepository) ListEventsByDJ(ctx context.Context, djID string) ([]domain.Event, error) {
	const query = `
	SELECT ` + eventColumns + `
	FROM events e
	LEFT JOIN djs d ON e.dj_id = d.id
	LEFT JOIN producers p ON e.producer_id = p.id
	WHERE e.dj_id = $1
	ORDER BY e.event_date DESC
	`
	return r.queryEvents(ctx, query, djID)
}

func (r *bookingRepository) ListEventsByProducer(ctx context.Context, producerID string) ([]domain.Event, error) {
	const query = `
	SELECT ` + eventColumns + `
	FROM events e
	LEFT JOIN djs d ON e.dj_id = d.id
	LEFT JOIN producers p ON e.producer_id = p.id
	WHERE e.producer_id = $1
	ORDER BY e.event_date DESC
	`
	return r.queryEvents(ctx, query, producerID)
}

func (r *bookingRepository) queryEvents(ctx context.Context, query string, args ...interface{}) ([]domain.Event, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var ev domain.Event
		var (
			title, eventName, paymentStatus, paymentProof      *string
			djID, djName, artistName, producerID, producerName *string
			companyName                                        *string
			fee, cacheValue                                    *float64
		)
		if err := rows.Scan(
			&ev.ID, &title, &eventName, &ev.EventDate, &fee, &cacheValue,
			&paymentStatus, &paymentProof, &djID, &djName, &artistName,
			&producerID, &producerName, &companyName, &ev.CreatedAt,
		); err != nil {
			return nil, err
		}
		ev.Title = deref(title)
		ev.EventName = deref(eventName)
		ev.Fee = derefFloat(fee)
		ev.CacheValue = derefFloat(cacheValue)
		ev.PaymentStatus = deref(paymentStatus)
		ev.PaymentProof = deref(paymentProof)
		ev.DJID = deref(djID)
		ev.DJName = deref(djName)
		ev.DJArtistName = deref(artistName)
		ev.ProducerID = deref(producerID)
		ev.ProducerName = deref(producerName)
		ev.CompanyName = deref(companyName)
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (r *bookingRepository) ListProducers(ctx context.Context) ([]domain.Producer, error) {
	const query = `
	SELECT p.id, p.name, p.company_name, p.email, p.phone,
	       COUNT(DISTINCT e.id) AS event_count, p.created_at
	FROM producers p
	LEFT JOIN events e ON p.id = e.producer_id
	GROUP BY p.id
	ORDER BY p.created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var producers []domain.Producer
	for rows.Next() {
		var p domain.Producer
		var companyName, email, phone *string
		if err := rows.Scan(&p.ID, &p.Name, &companyName, &email, &phone, &p.EventCount, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.CompanyName = deref(companyName)
		p.Email = deref(email)
		p.Phone = deref(phone)
		producers = append(producers, p)
	}
	return producers, rows.Err()
}

func (r *bookingRepository) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	const query = `
	SELECT pay.id, pay.event_id, pay.amount, pay.status,
	       e.title, e.event_date, p.name, p.company_name, d.name, pay.created_at
	FROM payments pay
	LEFT JOIN events e ON pay.event_id = e.id
	LEFT JOIN producers p ON e.producer_id = p.id
	LEFT JOIN djs d ON e.dj_id = d.id
	ORDER BY pay.created_at DESC
	`
	return r.queryPayments(ctx, query)
}

// ListPendingPayments applies the portal's pending rule: a payment proof was
// uploaded for the event but its status is not "pago" yet. The rule lives on
// the events table, not on settled payment rows.
func (r *bookingRepository) ListPendingPayments(ctx context.Context) ([]domain.Payment, error) {
	const query = `
	SELECT e.id, e.title, e.event_name, e.event_date,
	       COALESCE(e.cache_value, e.fee, 0), e.payment_proof, e.payment_status,
	       p.name, p.company_name, d.name, e.created_at
	FROM events e
	LEFT JOIN producers p ON e.producer_id = p.id
	LEFT JOIN djs d ON e.dj_id = d.id
	WHERE e.payment_proof IS NOT NULL
	  AND e.payment_status != 'pago'
	ORDER BY e.created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var pay domain.Payment
		var title, eventName, proof, status *string
		var producerName, companyName, djName *string
		if err := rows.Scan(
			&pay.EventID, &title, &eventName, &pay.EventDate,
			&pay.Amount, &proof, &status,
			&producerName, &companyName, &djName, &pay.CreatedAt,
		); err != nil {
			return nil, err
		}
		pay.ID = pay.EventID
		pay.EventTitle = deref(title)
		if pay.EventTitle == "" {
			pay.EventTitle = deref(eventName)
		}
		pay.PaymentProof = deref(proof)
		pay.Status = deref(status)
		pay.ProducerName = deref(producerName)
		pay.CompanyName = deref(companyName)
		pay.DJName = deref(djName)
		payments = append(payments, pay)
	}
	return payments, rows.Err()
}

func (r *bookingRepository) queryPayments(ctx context.Context, query string) ([]domain.Payment, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var pay domain.Payment
		var eventTitle, producerName, companyName, djName *string
		if err := rows.Scan(
			&pay.ID, &pay.EventID, &pay.Amount, &pay.Status,
			&eventTitle, &pay.EventDate, &producerName, &companyName, &djName, &pay.CreatedAt,
		); err != nil {
			return nil, err
		}
		pay.EventTitle = deref(eventTitle)
		pay.ProducerName = deref(producerName)
		pay.CompanyName = deref(companyName)
		pay.DJName = deref(djName)
		payments = append(payments, pay)
	}
	return payments, rows.Err()
}

func (r *bookingRepository) ListContracts(ctx context.Context) ([]domain.Contract, error) {
	const query = `
	SELECT c.id, c.event_id, c.status, e.title, e.event_date, e.cache_value,
	       d.name, p.name, p.company_name, c.created_at
	FROM contracts c
	LEFT JOIN events e ON c.event_id = e.id
	LEFT JOIN djs d ON e.dj_id = d.id
	LEFT JOIN producers p ON e.producer_id = p.id
	ORDER BY c.created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		var c domain.Contract
		var status, eventTitle, djName, producerName, companyName *string
		var cacheValue *float64
		if err := rows.Scan(
			&c.ID, &c.EventID, &status, &eventTitle, &c.EventDate, &cacheValue,
			&djName, &producerName, &companyName, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		c.Status = deref(status)
		c.EventTitle = deref(eventTitle)
		c.CacheValue = derefFloat(cacheValue)
		c.DJName = deref(djName)
		c.ProducerName = deref(producerName)
		c.CompanyName = deref(companyName)
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}

func (r *bookingRepository) DashboardMetrics(ctx context.Context) (*domain.DashboardMetrics, error) {
	const query = `
	SELECT
		(SELECT COUNT(*) FROM djs),
		(SELECT COUNT(*) FROM events),
		COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0)
	FROM payments
	`
	var m domain.DashboardMetrics
	if err := r.pool.QueryRow(ctx, query).Scan(&m.TotalDJs, &m.TotalEvents, &m.TotalPaid, &m.TotalPending); err != nil {
		return nil, err
	}
	return &m, nil
}

func scanDJ(row interface {
	Scan(dest ...interface{}) error
}) (*domain.DJ, error) {
	var dj domain.DJ
	var (
		realName, email, genre                             *string
		instagramURL, youtubeURL, tiktokURL, soundcloudURL *string
		avatarURL, status                                  *string
		basePrice                                          *float64
	)
	if err := row.Scan(
		&dj.ID, &dj.ArtistName, &realName, &email, &genre, &basePrice,
		&instagramURL, &youtubeURL, &tiktokURL, &soundcloudURL,
		&avatarURL, &dj.BirthDate, &status, &dj.IsActive,
		&dj.EventCount, &dj.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDJNotFound
		}
		return nil, err
	}
	dj.RealName = deref(realName)
	dj.Email = deref(email)
	dj.Genre = deref(genre)
	dj.BasePrice = derefFloat(basePrice)
	dj.InstagramURL = deref(instagramURL)
	dj.YoutubeURL = deref(youtubeURL)
	dj.TiktokURL = deref(tiktokURL)
	dj.SoundcloudURL = deref(soundcloudURL)
	dj.AvatarURL = deref(avatarURL)
	dj.Status = deref(status)
	return &dj, nil
}
