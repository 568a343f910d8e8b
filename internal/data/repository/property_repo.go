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

type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)
	FindAll(ctx context.Context, limit, offset int, propertyType *string) ([]*entity.Property, error)
	CountAll(ctx context.Context, propertyType *string) (int64, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.Property, error)
	Update(ctx context.Context, property *entity.Property) error
	UpdateStatus(ctx context.Context, propertyID uuid.UUID, status entity.PropertyStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type propertyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPropertyRepository(db database.PgxIface, log *zap.Logger) PropertyRepository {
	return &propertyRepository{
		db:  db,
		log: log.With(zap.String("repository", "property")),
	}
}

const propertyColumns = `id, owner_id, title, description, property_type, status, price,
	address, bedrooms, bathrooms, area_sqm, created_at, updated_at`

func scanProperty(row pgx.Row) (*entity.Property, error) {
	var property entity.Property
	err := row.Scan(
		&property.ID,
		&property.OwnerID,
		&property.Title,
		&property.Description,
		&property.Type,
		&property.Status,
		&property.Price,
		&property.Address,
		&property.Bedrooms,
		&property.Bathrooms,
		&property.AreaSqm,
		&property.CreatedAt,
		&property.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	query := `
		INSERT INTO properties (id, owner_id, title, description, property_type, status, price,
			address, bedrooms, bathrooms, area_sqm, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		property.ID,
		property.OwnerID,
		property.Title,
		property.Description,
		property.Type,
		property.Status,
		property.Price,
		property.Address,
		property.Bedrooms,
		property.Bathrooms,
		property.AreaSqm,
		property.CreatedAt,
		property.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create property",
			zap.Error(err),
			zap.String("property_id", property.ID.String()),
			zap.String("owner_id", property.OwnerID.String()),
		)
		return fmt.Errorf("create property %s: %w", property.ID.String(), err)
	}

	return nil
}

func (r *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`

	property, err := scanProperty(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find property by ID",
			zap.Error(err),
			zap.String("property_id", id.String()),
		)
		return nil, fmt.Errorf("find property by ID %s: %w", id.String(), err)
	}

	return property, nil
}

func (r *propertyRepository) FindAll(ctx context.Context, limit, offset int, propertyType *string) ([]*entity.Property, error) {
	query := `
		SELECT ` + propertyColumns + `
		FROM properties
		WHERE status = 'available'
		  AND ($3::text IS NULL OR property_type = $3)
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset, propertyType)
	if err != nil {
		r.log.Error("Failed to find properties",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
			zap.Stringp("property_type", propertyType),
		)
		return nil, fmt.Errorf("find properties: %w", err)
	}
	defer rows.Close()

	var properties []*entity.Property
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			r.log.Error("Failed to scan property row", zap.Error(err))
			return nil, fmt.Errorf("scan property row: %w", err)
		}
		properties = append(properties, property)
	}

	return properties, nil
}

func (r *propertyRepository) CountAll(ctx context.Context, propertyType *string) (int64, error) {
	query := `SELECT COUNT(*) FROM properties WHERE status = 'available' AND ($1::text IS NULL OR property_type = $1)`

	var count int64
	if err := r.db.QueryRow(ctx, query, propertyType).Scan(&count); err != nil {
		r.log.Error("Failed to count properties", zap.Error(err))
		return 0, fmt.Errorf("count properties: %w", err)
	}

	return count, nil
}

func (r *propertyRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.Property, error) {
	query := `
		SELECT ` + propertyColumns + `
		FROM properties
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find properties by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find properties by owner %s: %w", ownerID.String(), err)
	}
	defer rows.Close()

	var properties []*entity.Property
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			r.log.Error("Failed to scan property row", zap.Error(err))
			return nil, fmt.Errorf("scan property row: %w", err)
		}
		properties = append(properties, property)
	}

	return properties, nil
}

func (r *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	query := `
		UPDATE properties
		SET title = $2, description = $3, price = $4, address = $5,
		    bedrooms = $6, bathrooms = $7, area_sqm = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		property.ID,
		property.Title,
		property.Description,
		property.Price,
		property.Address,
		property.Bedrooms,
		property.Bathrooms,
		property.AreaSqm,
		property.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update property",
			zap.Error(err),
			zap.String("property_id", property.ID.String()),
		)
		return fmt.Errorf("update property %s: %w", property.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("property %s not found", property.ID.String())
	}

	return nil
}

func (r *propertyRepository) UpdateStatus(ctx context.Context, propertyID uuid.UUID, status entity.PropertyStatus) error {
	query := `UPDATE properties SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, propertyID, status)
	if err != nil {
		r.log.Error("Failed to update property status",
			zap.Error(err),
			zap.String("property_id", propertyID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update property %s status to %s: %w", propertyID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("property %s not found", propertyID.String())
	}

	return nil
}

func (r *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM properties WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete property",
			zap.Error(err),
			zap.String("property_id", id.String()),
		)
		return fmt.Errorf("delete property %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("property %s not found", id.String())
	}

	r.log.Info("Property deleted", zap.String("property_id", id.String()))
	return nil
}
