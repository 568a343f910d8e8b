package repository

import (
	"context"
	"fmt"

	"estate-marketplace/internal/data/entity"
	"estate-marketplace/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindForUser(ctx context.Context, userID uuid.UUID, status *entity.BookingStatus, limit, offset int) ([]*entity.Booking, error)
	CountForUser(ctx context.Context, userID uuid.UUID, status *entity.BookingStatus) (int64, error)

	// UpdateStatusGuarded applies a status transition only if the stored
	// status still equals expected. Returns entity.ErrConflict when a
	// concurrent writer got there first.
	UpdateStatusGuarded(ctx context.Context, bookingID uuid.UUID, expected, next entity.BookingStatus) error
	UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, status entity.PaymentStatus) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, service_id, seeker_id, provider_id, scheduled_at, duration_hours,
	status, total_price, payment_status, notes, contact_phone, service_location, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.ServiceID,
		&booking.SeekerID,
		&booking.ProviderID,
		&booking.ScheduledAt,
		&booking.DurationHours,
		&booking.Status,
		&booking.TotalPrice,
		&booking.PaymentStatus,
		&booking.Notes,
		&booking.ContactPhone,
		&booking.ServiceLocation,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, service_id, seeker_id, provider_id, scheduled_at, duration_hours,
			status, total_price, payment_status, notes, contact_phone, service_location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.ServiceID,
		booking.SeekerID,
		booking.ProviderID,
		booking.ScheduledAt,
		booking.DurationHours,
		booking.Status,
		booking.TotalPrice,
		booking.PaymentStatus,
		booking.Notes,
		booking.ContactPhone,
		booking.ServiceLocation,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("seeker_id", booking.SeekerID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

// FindForUser returns bookings where the user is on either side, newest
// first, with an optional status filter (the UI's status tabs).
func (r *bookingRepository) FindForUser(ctx context.Context, userID uuid.UUID, status *entity.BookingStatus, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE (seeker_id = $1 OR provider_id = $1)
		  AND ($2::text IS NULL OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, userID, status, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings for user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CountForUser(ctx context.Context, userID uuid.UUID, status *entity.BookingStatus) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE (seeker_id = $1 OR provider_id = $1)
		  AND ($2::text IS NULL OR status = $2)
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID, status).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings for user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings for user %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) UpdateStatusGuarded(ctx context.Context, bookingID uuid.UUID, expected, next entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`

	result, err := r.db.Exec(ctx, query, bookingID, expected, next)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("from", string(expected)),
			zap.String("to", string(next)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(next), err)
	}

	if result.RowsAffected() == 0 {
		// Either the row is gone or another actor transitioned it first;
		// look again to tell the two apart.
		existing, err := r.FindByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("booking %s not found", bookingID.String())
		}
		r.log.Warn("Booking status conflict",
			zap.String("booking_id", bookingID.String()),
			zap.String("expected", string(expected)),
			zap.String("actual", string(existing.Status)),
		)
		return fmt.Errorf("booking %s: %w", bookingID.String(), entity.ErrConflict)
	}

	return nil
}

func (r *bookingRepository) UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, status entity.PaymentStatus) error {
	query := `UPDATE bookings SET payment_status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("payment_status", string(status)),
		)
		return fmt.Errorf("update booking %s payment status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}
