package employee

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, e *Employee) error
	FindByUserID(ctx context.Context, userID uint) (*Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

// Create inserts the profile only; Company and Department are references,
// never upserted. Constraint violations come back as field errors.
func (r *repository) Create(ctx context.Context, e *Employee) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(e).Error
	return mapRepositoryError(err, e)
}

// FindByUserID loads the profile with its company and department.
func (r *repository) FindByUserID(ctx context.Context, userID uint) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Department").
		Where("user_id = ?", userID).
		First(&e).Error
	if err != nil {
		return nil, mapRepositoryError(err, nil)
	}
	return &e, nil
}
