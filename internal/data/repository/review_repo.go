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

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Review, error)
	FindByServiceID(ctx context.Context, serviceID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	CountByServiceID(ctx context.Context, serviceID uuid.UUID) (int64, error)
	GetServiceReviewStats(ctx context.Context, serviceID uuid.UUID) (float64, int64, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewColumns = `id, booking_id, service_id, seeker_id, rating, comment, created_at`

func scanReview(row pgx.Row) (*entity.Review, error) {
	var review entity.Review
	err := row.Scan(
		&review.ID,
		&review.BookingID,
		&review.ServiceID,
		&review.SeekerID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, booking_id, service_id, seeker_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.BookingID,
		review.ServiceID,
		review.SeekerID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("booking_id", review.BookingID.String()),
		)
		return fmt.Errorf("create review for booking %s: %w", review.BookingID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE booking_id = $1`

	review, err := scanReview(r.db.QueryRow(ctx, query, bookingID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find review by booking ID %s: %w", bookingID.String(), err)
	}

	return review, nil
}

func (r *reviewRepository) FindByServiceID(ctx context.Context, serviceID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE service_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, serviceID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by service ID",
			zap.Error(err),
			zap.String("service_id", serviceID.String()),
		)
		return nil, fmt.Errorf("find reviews by service ID %s: %w", serviceID.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

func (r *reviewRepository) CountByServiceID(ctx context.Context, serviceID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE service_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, serviceID).Scan(&count); err != nil {
		r.log.Error("Failed to count reviews by service ID",
			zap.Error(err),
			zap.String("service_id", serviceID.String()),
		)
		return 0, fmt.Errorf("count reviews by service ID %s: %w", serviceID.String(), err)
	}

	return count, nil
}

func (r *reviewRepository) GetServiceReviewStats(ctx context.Context, serviceID uuid.UUID) (float64, int64, error) {
	query := `SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM reviews WHERE service_id = $1`

	var avg float64
	var count int64
	if err := r.db.QueryRow(ctx, query, serviceID).Scan(&avg, &count); err != nil {
		r.log.Error("Failed to get review stats",
			zap.Error(err),
			zap.String("service_id", serviceID.String()),
		)
		return 0, 0, fmt.Errorf("get review stats for service %s: %w", serviceID.String(), err)
	}

	return avg, count, nil
}
