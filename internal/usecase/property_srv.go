package usecase

import (
	"context"
	"fmt"
	"time"

	"estate-marketplace/internal/data/entity"
	"estate-marketplace/internal/data/repository"
	"estate-marketplace/internal/dto/request"
	"estate-marketplace/internal/dto/response"
	"estate-marketplace/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PropertyService interface {
	GetProperties(ctx context.Context, propertyType *string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PropertyResponse], error)
	GetPropertyByID(ctx context.Context, propertyID string) (*response.PropertyResponse, error)
	GetMyProperties(ctx context.Context, ownerID string, req *request.PaginatedRequest) ([]response.PropertyResponse, error)
	CreateProperty(ctx context.Context, ownerID string, req *request.PropertyRequest) (*response.PropertyResponse, error)
	UpdateProperty(ctx context.Context, ownerID, propertyID string, req *request.PropertyUpdateRequest) (*response.PropertyResponse, error)
	UpdatePropertyStatus(ctx context.Context, ownerID, propertyID string, req *request.PropertyStatusRequest) (*response.PropertyResponse, error)
	DeleteProperty(ctx context.Context, ownerID, propertyID string) error
}

type propertyService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPropertyService(repo *repository.Repository, log *zap.Logger) PropertyService {
	return &propertyService{
		repo: repo,
		log:  log.With(zap.String("service", "property")),
	}
}

func (s *propertyService) GetProperties(ctx context.Context, propertyType *string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PropertyResponse], error) {
	properties, err := s.repo.Property.FindAll(ctx, req.Limit(), req.Offset(), propertyType)
	if err != nil {
		s.log.Error("Failed to get properties", zap.Error(err))
		return nil, fmt.Errorf("get properties: %w", err)
	}

	total, err := s.repo.Property.CountAll(ctx, propertyType)
	if err != nil {
		s.log.Error("Failed to count properties", zap.Error(err))
		return nil, fmt.Errorf("count properties: %w", err)
	}

	propertyResponses := make([]response.PropertyResponse, len(properties))
	for i, p := range properties {
		propertyResponses[i] = response.PropertyToResponse(p)
	}

	return response.NewPaginatedResponse(propertyResponses, req.Page, req.PerPage, total), nil
}

func (s *propertyService) GetPropertyByID(ctx context.Context, propertyID string) (*response.PropertyResponse, error) {
	id, err := uuid.Parse(propertyID)
	if err != nil {
		return nil, fmt.Errorf("invalid property ID format %s: %w", propertyID, err)
	}

	property, err := s.repo.Property.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get property", zap.Error(err), zap.String("property_id", propertyID))
		return nil, fmt.Errorf("get property: %w", err)
	}
	if property == nil {
		return nil, fmt.Errorf("property %s not found", propertyID)
	}

	resp := response.PropertyToResponse(property)
	return &resp, nil
}

func (s *propertyService) GetMyProperties(ctx context.Context, ownerID string, req *request.PaginatedRequest) ([]response.PropertyResponse, error) {
	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID format %s: %w", ownerID, err)
	}

	properties, err := s.repo.Property.FindByOwnerID(ctx, ownerUUID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get owned properties", zap.Error(err), zap.String("owner_id", ownerID))
		return nil, fmt.Errorf("get owned properties: %w", err)
	}

	propertyResponses := make([]response.PropertyResponse, len(properties))
	for i, p := range properties {
		propertyResponses[i] = response.PropertyToResponse(p)
	}
	return propertyResponses, nil
}

func (s *propertyService) CreateProperty(ctx context.Context, ownerID string, req *request.PropertyRequest) (*response.PropertyResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create property validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID format %s: %w", ownerID, err)
	}

	owner, err := s.repo.User.FindByID(ctx, ownerUUID)
	if err != nil {
		s.log.Error("Failed to load owner", zap.Error(err), zap.String("owner_id", ownerID))
		return nil, fmt.Errorf("load owner: %w", err)
	}
	if owner == nil {
		return nil, fmt.Errorf("user %s not found", ownerID)
	}
	if !owner.IsVerifiedProvider() {
		return nil, fmt.Errorf("unauthorized: provider is not verified")
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return nil, fmt.Errorf("invalid price %s", req.Price)
	}

	now := time.Now()
	property := &entity.Property{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		OwnerID:     ownerUUID,
		Title:       req.Title,
		Description: req.Description,
		Type:        entity.PropertyType(req.Type),
		Status:      entity.PropertyStatusAvailable,
		Price:       price,
		Address:     req.Address,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		AreaSqm:     req.AreaSqm,
	}

	if err := s.repo.Property.Create(ctx, property); err != nil {
		s.log.Error("Failed to create property", zap.Error(err), zap.String("owner_id", ownerID))
		return nil, fmt.Errorf("create property: %w", err)
	}

	s.log.Info("Property created",
		zap.String("property_id", property.ID.String()),
		zap.String("owner_id", ownerID),
		zap.String("type", string(property.Type)),
	)

	resp := response.PropertyToResponse(property)
	return &resp, nil
}

func (s *propertyService) UpdateProperty(ctx context.Context, ownerID, propertyID string, req *request.PropertyUpdateRequest) (*response.PropertyResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update property validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	property, err := s.loadOwned(ctx, ownerID, propertyID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		property.Title = *req.Title
	}
	if req.Description != nil {
		property.Description = *req.Description
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil || price.IsNegative() {
			return nil, fmt.Errorf("invalid price %s", *req.Price)
		}
		property.Price = price
	}
	if req.Address != nil {
		property.Address = *req.Address
	}
	if req.Bedrooms != nil {
		property.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		property.Bathrooms = *req.Bathrooms
	}
	if req.AreaSqm != nil {
		property.AreaSqm = *req.AreaSqm
	}
	property.UpdatedAt = time.Now()

	if err := s.repo.Property.Update(ctx, property); err != nil {
		s.log.Error("Failed to update property", zap.Error(err), zap.String("property_id", propertyID))
		return nil, fmt.Errorf("update property: %w", err)
	}

	s.log.Info("Property updated", zap.String("property_id", propertyID))

	resp := response.PropertyToResponse(property)
	return &resp, nil
}

func (s *propertyService) UpdatePropertyStatus(ctx context.Context, ownerID, propertyID string, req *request.PropertyStatusRequest) (*response.PropertyResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Property status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	property, err := s.loadOwned(ctx, ownerID, propertyID)
	if err != nil {
		return nil, err
	}

	status, ok := entity.ParsePropertyStatus(req.Status)
	if !ok {
		return nil, fmt.Errorf("invalid property status %s", req.Status)
	}

	if err := s.repo.Property.UpdateStatus(ctx, property.ID, status); err != nil {
		s.log.Error("Failed to update property status", zap.Error(err), zap.String("property_id", propertyID))
		return nil, fmt.Errorf("update property status: %w", err)
	}

	property.Status = status
	property.UpdatedAt = time.Now()

	s.log.Info("Property status updated",
		zap.String("property_id", propertyID),
		zap.String("status", string(status)),
	)

	resp := response.PropertyToResponse(property)
	return &resp, nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, ownerID, propertyID string) error {
	property, err := s.loadOwned(ctx, ownerID, propertyID)
	if err != nil {
		return err
	}

	if err := s.repo.Property.Delete(ctx, property.ID); err != nil {
		s.log.Error("Failed to delete property", zap.Error(err), zap.String("property_id", propertyID))
		return fmt.Errorf("delete property: %w", err)
	}

	s.log.Info("Property deleted", zap.String("property_id", propertyID))
	return nil
}

func (s *propertyService) loadOwned(ctx context.Context, ownerID, propertyID string) (*entity.Property, error) {
	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID format %s: %w", ownerID, err)
	}

	id, err := uuid.Parse(propertyID)
	if err != nil {
		return nil, fmt.Errorf("invalid property ID format %s: %w", propertyID, err)
	}

	property, err := s.repo.Property.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load property", zap.Error(err), zap.String("property_id", propertyID))
		return nil, fmt.Errorf("load property: %w", err)
	}
	if property == nil {
		return nil, fmt.Errorf("property %s not found", propertyID)
	}
	if property.OwnerID != ownerUUID {
		return nil, fmt.Errorf("unauthorized to manage property %s", propertyID)
	}

	return property, nil
}
