package department

import (
	"context"

	"go-ems/internal/company"
	departmenterrors "go-ems/internal/department/errors"
	"go-ems/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Service interface {
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id uint) (DepartmentResponse, error)
	Create(ctx context.Context, req DepartmentRequest) (DepartmentResponse, error)
	Update(ctx context.Context, id uint, req DepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo      Repository
	companies company.Repository
	logger    *zap.Logger
}

func NewService(repo Repository, companies company.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{repo: repo, companies: companies, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	depts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err, 0)
	}
	return mapToListResponse(depts), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (DepartmentResponse, error) {
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err, 0)
	}
	return mapToResponse(*dept), nil
}

func (s *service) Create(ctx context.Context, req DepartmentRequest) (DepartmentResponse, error) {
	companyID := uint(req.Company)
	if err := s.ensureCompany(ctx, companyID); err != nil {
		return DepartmentResponse{}, err
	}

	dept := &Department{
		Name:        req.Name,
		Description: req.Description,
		CompanyID:   companyID,
	}

	if err := s.repo.Create(ctx, dept); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("create department failed", zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err, companyID)
	}

	contextutil.GetLogger(ctx, s.logger).Info("department created",
		zap.Uint("department_id", dept.ID),
		zap.Uint("company_id", dept.CompanyID),
	)
	return mapToResponse(*dept), nil
}

func (s *service) Update(ctx context.Context, id uint, req DepartmentRequest) (DepartmentResponse, error) {
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err, 0)
	}

	companyID := uint(req.Company)
	if err := s.ensureCompany(ctx, companyID); err != nil {
		return DepartmentResponse{}, err
	}

	dept.Name = req.Name
	dept.Description = req.Description
	dept.CompanyID = companyID

	if err := s.repo.Update(ctx, dept); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("update department failed", zap.Uint("department_id", id), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err, companyID)
	}

	return mapToResponse(*dept), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err, 0)
	}

	contextutil.GetLogger(ctx, s.logger).Info("department deleted", zap.Uint("department_id", id))
	return nil
}

func (s *service) ensureCompany(ctx context.Context, companyID uint) error {
	ok, err := s.companies.Exists(ctx, companyID)
	if err != nil {
		return err
	}
	if !ok {
		return departmenterrors.ErrUnknownCompany(companyID)
	}
	return nil
}

func mapToResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:           d.ID,
		Name:         d.Name,
		Description:  d.Description,
		Company:      d.CompanyID,
		CreationTime: d.CreationTime,
		LastUpdated:  d.LastUpdated,
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
