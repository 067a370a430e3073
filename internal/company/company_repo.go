package company

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/company_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, company *Company) error
	FindAll(ctx context.Context) ([]Company, error)
	FindByID(ctx context.Context, id uint) (*Company, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id uint) error
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

func (r *repository) Create(ctx context.Context, company *Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Company, error) {
	var companies []Company
	err := r.db.WithContext(ctx).Order("id").Find(&companies).Error
	return companies, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Company, error) {
	var company Company
	if err := r.db.WithContext(ctx).First(&company, id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *repository) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Company{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *repository) Update(ctx context.Context, company *Company) error {
	res := r.db.WithContext(ctx).
		Model(company).
		Select("name", "address", "email").
		Updates(company)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the row; departments and employees follow through
// ON DELETE CASCADE.
func (r *repository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&Company{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
