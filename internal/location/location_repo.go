package location

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/location_repo_mock.go -package=mock . Repository
type Repository interface {
	FindByCode(ctx context.Context, code string) (*Location, error)
	FindCountyByCode(ctx context.Context, code string) (*Location, error)
	// FindCountyByName matches name, full name or an alias against an
	// anchored diacritic-flexible pattern.
	FindCountyByName(ctx context.Context, pattern string) (*Location, error)
	// FindCityByName is scoped to countyCode when one is given.
	FindCityByName(ctx context.Context, pattern, countyCode string) (*Location, error)
	Counties(ctx context.Context) ([]Location, error)
	SearchCounties(ctx context.Context, pattern string, limit int) ([]Location, error)
	CitiesByCounty(ctx context.Context, countyCode string) ([]Location, error)
	SearchCities(ctx context.Context, pattern, countyCode string, limit int) ([]Location, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Name, full name or alias matches the pattern. Aliases are a JSONB array.
const nameMatch = `(name ~* ? OR full_name ~* ? OR EXISTS (
	SELECT 1 FROM jsonb_array_elements_text(coalesce(aliases, '[]'::jsonb)) AS alias(v) WHERE alias.v ~* ?
))`

func (r *repository) one(q *gorm.DB) (*Location, error) {
	var loc Location
	err := q.First(&loc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *repository) FindByCode(ctx context.Context, code string) (*Location, error) {
	return r.one(r.db.WithContext(ctx).Where("code = ?", code))
}

func (r *repository) FindCountyByCode(ctx context.Context, code string) (*Location, error) {
	return r.one(r.db.WithContext(ctx).Where("code = ? AND is_county", code))
}

func (r *repository) FindCountyByName(ctx context.Context, pattern string) (*Location, error) {
	return r.one(r.db.WithContext(ctx).
		Where("is_county").
		Where(nameMatch, pattern, pattern, pattern))
}

func (r *repository) FindCityByName(ctx context.Context, pattern, countyCode string) (*Location, error) {
	q := r.db.WithContext(ctx).
		Where("NOT is_county").
		Where(nameMatch, pattern, pattern, pattern)
	if countyCode != "" {
		q = q.Where("county_code = ?", countyCode)
	}
	return r.one(q)
}

func (r *repository) Counties(ctx context.Context) ([]Location, error) {
	var locs []Location
	err := r.db.WithContext(ctx).
		Where("is_county").
		Order("name").
		Find(&locs).Error
	return locs, err
}

func (r *repository) SearchCounties(ctx context.Context, pattern string, limit int) ([]Location, error) {
	var locs []Location
	err := r.db.WithContext(ctx).
		Where("is_county").
		Where(nameMatch, pattern, pattern, pattern).
		Order("name").
		Limit(limit).
		Find(&locs).Error
	return locs, err
}

func (r *repository) CitiesByCounty(ctx context.Context, countyCode string) ([]Location, error) {
	var locs []Location
	err := r.db.WithContext(ctx).
		Where("NOT is_county AND county_code = ?", countyCode).
		Order("name").
		Find(&locs).Error
	return locs, err
}

func (r *repository) SearchCities(ctx context.Context, pattern, countyCode string, limit int) ([]Location, error) {
	q := r.db.WithContext(ctx).
		Where("NOT is_county").
		Where(nameMatch, pattern, pattern, pattern)
	if countyCode != "" {
		q = q.Where("county_code = ?", countyCode)
	}
	var locs []Location
	err := q.Order("name").Limit(limit).Find(&locs).Error
	return locs, err
}
