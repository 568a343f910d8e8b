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

type ListingService interface {
	GetServices(ctx context.Context, category *string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ServiceResponse], error)
	GetServiceByID(ctx context.Context, serviceID string) (*response.ServiceResponse, error)
	GetMyServices(ctx context.Context, providerID string, req *request.PaginatedRequest) ([]response.ServiceResponse, error)
	CreateService(ctx context.Context, providerID string, req *request.ServiceRequest) (*response.ServiceResponse, error)
	UpdateService(ctx context.Context, providerID, serviceID string, req *request.ServiceUpdateRequest) (*response.ServiceResponse, error)
	DeleteService(ctx context.Context, providerID, serviceID string) error
}

type listingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewListingService(repo *repository.Repository, log *zap.Logger) ListingService {
	return &listingService{
		repo: repo,
		log:  log.With(zap.String("service", "listing")),
	}
}

func (s *listingService) GetServices(ctx context.Context, category *string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ServiceResponse], error) {
	services, err := s.repo.Service.FindAll(ctx, req.Limit(), req.Offset(), category)
	if err != nil {
		s.log.Error("Failed to get services", zap.Error(err))
		return nil, fmt.Errorf("get services: %w", err)
	}

	total, err := s.repo.Service.CountAll(ctx, category)
	if err != nil {
		s.log.Error("Failed to count services", zap.Error(err))
		return nil, fmt.Errorf("count services: %w", err)
	}

	serviceResponses := make([]response.ServiceResponse, len(services))
	for i, svc := range services {
		avg, count, err := s.repo.Review.GetServiceReviewStats(ctx, svc.ID)
		if err != nil {
			s.log.Warn("Failed to load review stats", zap.Error(err), zap.String("service_id", svc.ID.String()))
		}
		serviceResponses[i] = response.ServiceToResponse(svc, avg, int(count))
	}

	return response.NewPaginatedResponse(serviceResponses, req.Page, req.PerPage, total), nil
}

func (s *listingService) GetServiceByID(ctx context.Context, serviceID string) (*response.ServiceResponse, error) {
	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service ID format %s: %w", serviceID, err)
	}

	service, err := s.repo.Service.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get service", zap.Error(err), zap.String("service_id", serviceID))
		return nil, fmt.Errorf("get service: %w", err)
	}
	if service == nil {
		return nil, fmt.Errorf("service %s not found", serviceID)
	}

	avg, count, err := s.repo.Review.GetServiceReviewStats(ctx, service.ID)
	if err != nil {
		s.log.Warn("Failed to load review stats", zap.Error(err), zap.String("service_id", serviceID))
	}

	resp := response.ServiceToResponse(service, avg, int(count))
	return &resp, nil
}

func (s *listingService) GetMyServices(ctx context.Context, providerID string, req *request.PaginatedRequest) ([]response.ServiceResponse, error) {
	providerUUID, err := uuid.Parse(providerID)
	if err != nil {
		return nil, fmt.Errorf("invalid provider ID format %s: %w", providerID, err)
	}

	services, err := s.repo.Service.FindByProviderID(ctx, providerUUID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get owned services", zap.Error(err), zap.String("provider_id", providerID))
		return nil, fmt.Errorf("get owned services: %w", err)
	}

	serviceResponses := make([]response.ServiceResponse, len(services))
	for i, svc := range services {
		avg, count, _ := s.repo.Review.GetServiceReviewStats(ctx, svc.ID)
		serviceResponses[i] = response.ServiceToResponse(svc, avg, int(count))
	}
	return serviceResponses, nil
}

func (s *listingService) CreateService(ctx context.Context, providerID string, req *request.ServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	providerUUID, err := uuid.Parse(providerID)
	if err != nil {
		return nil, fmt.Errorf("invalid provider ID format %s: %w", providerID, err)
	}

	provider, err := s.repo.User.FindByID(ctx, providerUUID)
	if err != nil {
		s.log.Error("Failed to load provider", zap.Error(err), zap.String("provider_id", providerID))
		return nil, fmt.Errorf("load provider: %w", err)
	}
	if provider == nil {
		return nil, fmt.Errorf("user %s not found", providerID)
	}
	if !provider.IsVerifiedProvider() {
		return nil, fmt.Errorf("unauthorized: provider is not verified")
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return nil, fmt.Errorf("invalid price %s", req.Price)
	}

	now := time.Now()
	service := &entity.Service{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		ProviderID:  providerUUID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       price,
		Location:    req.Location,
		IsActive:    true,
	}

	if err := s.repo.Service.Create(ctx, service); err != nil {
		s.log.Error("Failed to create service", zap.Error(err), zap.String("provider_id", providerID))
		return nil, fmt.Errorf("create service: %w", err)
	}

	s.log.Info("Service created",
		zap.String("service_id", service.ID.String()),
		zap.String("provider_id", providerID),
		zap.String("category", service.Category),
	)

	resp := response.ServiceToResponse(service, 0, 0)
	return &resp, nil
}

func (s *listingService) UpdateService(ctx context.Context, providerID, serviceID string, req *request.ServiceUpdateRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	service, err := s.loadOwned(ctx, providerID, serviceID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		service.Title = *req.Title
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil || price.IsNegative() {
			return nil, fmt.Errorf("invalid price %s", *req.Price)
		}
		service.Price = price
	}
	if req.Location != nil {
		service.Location = req.Location
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}
	service.UpdatedAt = time.Now()

	if err := s.repo.Service.Update(ctx, service); err != nil {
		s.log.Error("Failed to update service", zap.Error(err), zap.String("service_id", serviceID))
		return nil, fmt.Errorf("update service: %w", err)
	}

	s.log.Info("Service updated", zap.String("service_id", serviceID))

	avg, count, _ := s.repo.Review.GetServiceReviewStats(ctx, service.ID)
	resp := response.ServiceToResponse(service, avg, int(count))
	return &resp, nil
}

func (s *listingService) DeleteService(ctx context.Context, providerID, serviceID string) error {
	service, err := s.loadOwned(ctx, providerID, serviceID)
	if err != nil {
		return err
	}

	if err := s.repo.Service.Delete(ctx, service.ID); err != nil {
		s.log.Error("Failed to delete service", zap.Error(err), zap.String("service_id", serviceID))
		return fmt.Errorf("delete service: %w", err)
	}

	s.log.Info("Service deleted", zap.String("service_id", serviceID))
	return nil
}

// loadOwned loads a service and verifies the caller owns it.
func (s *listingService) loadOwned(ctx context.Context, providerID, serviceID string) (*entity.Service, error) {
	providerUUID, err := uuid.Parse(providerID)
	if err != nil {
		return nil, fmt.Errorf("invalid provider ID format %s: %w", providerID, err)
	}

	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service ID format %s: %w", serviceID, err)
	}

	service, err := s.repo.Service.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load service", zap.Error(err), zap.String("service_id", serviceID))
		return nil, fmt.Errorf("load service: %w", err)
	}
	if service == nil {
		return nil, fmt.Errorf("service %s not found", serviceID)
	}
	if service.ProviderID != providerUUID {
		return nil, fmt.Errorf("unauthorized to manage service %s", serviceID)
	}

	return service, nil
}
