package company

import (
	"context"

	"go-ems/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Service interface {
	GetAll(ctx context.Context) ([]CompanyResponse, error)
	GetByID(ctx context.Context, id uint) (CompanyResponse, error)
	Create(ctx context.Context, req CompanyRequest) (CompanyResponse, error)
	Update(ctx context.Context, id uint, req CompanyRequest) (CompanyResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]CompanyResponse, error) {
	companies, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(companies), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (CompanyResponse, error) {
	comp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*comp), nil
}

func (s *service) Create(ctx context.Context, req CompanyRequest) (CompanyResponse, error) {
	comp := &Company{
		Name:    req.Name,
		Address: req.Address,
		Email:   req.Email,
	}

	if err := s.repo.Create(ctx, comp); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("create company failed", zap.Error(err))
		return CompanyResponse{}, mapRepositoryError(err)
	}

	contextutil.GetLogger(ctx, s.logger).Info("company created", zap.Uint("company_id", comp.ID))
	return mapToResponse(*comp), nil
}

func (s *service) Update(ctx context.Context, id uint, req CompanyRequest) (CompanyResponse, error) {
	comp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}

	comp.Name = req.Name
	comp.Address = req.Address
	comp.Email = req.Email

	if err := s.repo.Update(ctx, comp); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("update company failed", zap.Uint("company_id", id), zap.Error(err))
		return CompanyResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*comp), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	contextutil.GetLogger(ctx, s.logger).Info("company deleted", zap.Uint("company_id", id))
	return nil
}

func mapToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		Address:      c.Address,
		Email:        c.Email,
		CreationTime: c.CreationTime,
		LastUpdated:  c.LastUpdated,
	}
}

func mapToListResponse(companies []Company) []CompanyResponse {
	res := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		res[i] = mapToResponse(c)
	}
	return res
}
