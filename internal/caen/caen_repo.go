package caen

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/caen_repo_mock.go -package=mock . Repository
type Repository interface {
	All(ctx context.Context) ([]CAEN, error)
	Search(ctx context.Context, query string) ([]CAEN, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) All(ctx context.Context) ([]CAEN, error) {
	var codes []CAEN
	err := r.db.WithContext(ctx).Order("code").Find(&codes).Error
	return codes, err
}

func (r *repository) Search(ctx context.Context, query string) ([]CAEN, error) {
	like := "%" + query + "%"
	var codes []CAEN
	err := r.db.WithContext(ctx).
		Where("code ILIKE ? OR name ILIKE ? OR division_code ILIKE ? OR division_name ILIKE ?",
			like, like, like, like).
		Order("code").
		Find(&codes).Error
	return codes, err
}
