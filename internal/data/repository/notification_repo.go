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

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

type notificationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewNotificationRepository(db database.PgxIface, log *zap.Logger) NotificationRepository {
	return &notificationRepository{
		db:  db,
		log: log.With(zap.String("repository", "notification")),
	}
}

const notificationColumns = `id, user_id, booking_id, type, message, is_read, created_at`

func scanNotification(row pgx.Row) (*entity.Notification, error) {
	var n entity.Notification
	err := row.Scan(
		&n.ID,
		&n.UserID,
		&n.BookingID,
		&n.Type,
		&n.Message,
		&n.IsRead,
		&n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, booking_id, type, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		notification.ID,
		notification.UserID,
		notification.BookingID,
		notification.Type,
		notification.Message,
		notification.IsRead,
		notification.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create notification",
			zap.Error(err),
			zap.String("user_id", notification.UserID.String()),
		)
		return fmt.Errorf("create notification for user %s: %w", notification.UserID.String(), err)
	}

	return nil
}

func (r *notificationRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find notifications",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find notifications for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var notifications []*entity.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			r.log.Error("Failed to scan notification row", zap.Error(err))
			return nil, fmt.Errorf("scan notification row: %w", err)
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

func (r *notificationRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		r.log.Error("Failed to count notifications",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count notifications for user %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = false`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		r.log.Error("Failed to count unread notifications",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count unread notifications for user %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	// user_id in the predicate keeps users from flipping each other's rows
	query := `UPDATE notifications SET is_read = true WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		r.log.Error("Failed to mark notification read",
			zap.Error(err),
			zap.String("notification_id", id.String()),
		)
		return fmt.Errorf("mark notification %s read: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("notification %s not found", id.String())
	}

	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE notifications SET is_read = true WHERE user_id = $1 AND is_read = false`

	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		r.log.Error("Failed to mark all notifications read",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("mark all notifications read for user %s: %w", userID.String(), err)
	}

	return nil
}
