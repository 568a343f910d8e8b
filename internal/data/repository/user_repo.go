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

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByVerification(ctx context.Context, status entity.VerificationStatus, limit, offset int) ([]*entity.User, error)
	CountByVerification(ctx context.Context, status entity.VerificationStatus) (int64, error)
	UpdateVerification(ctx context.Context, userID uuid.UUID, status entity.VerificationStatus) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const userColumns = `id, username, email, password, phone, role, verification_status, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.Role,
		&user.Verification,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password, phone, role, verification_status, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Phone,
		user.Role,
		user.Verification,
		user.IsActive,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find user by username %s: %w", username, err)
	}

	return user, nil
}

func (r *userRepository) FindByVerification(ctx context.Context, status entity.VerificationStatus, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE role = 'provider' AND verification_status = $1
		ORDER BY created_at
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		r.log.Error("Failed to find users by verification status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("find users by verification %s: %w", string(status), err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			r.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}

	return users, nil
}

func (r *userRepository) CountByVerification(ctx context.Context, status entity.VerificationStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM users WHERE role = 'provider' AND verification_status = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, status).Scan(&count); err != nil {
		r.log.Error("Failed to count users by verification status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("count users by verification %s: %w", string(status), err)
	}

	return count, nil
}

func (r *userRepository) UpdateVerification(ctx context.Context, userID uuid.UUID, status entity.VerificationStatus) error {
	query := `UPDATE users SET verification_status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, userID, status)
	if err != nil {
		r.log.Error("Failed to update verification status",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update user %s verification to %s: %w", userID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", userID.String())
	}

	return nil
}
