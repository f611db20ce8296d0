package location

import (
	"context"

	"github.com/TirlaP/lista-firme-backend/internal/cache"
	"github.com/TirlaP/lista-firme-backend/internal/shared/apperror"
)

const searchLimit = 20

//go:generate mockgen -destination=mock/location_service_mock.go -package=mock . Service
type Service interface {
	// ResolveCounty maps a code or a free-text name (diacritics optional) to
	// the county record. Returns nil without error when nothing matches; the
	// filter builder then falls back to raw address matching.
	ResolveCounty(ctx context.Context, term string) (*Location, error)
	// ResolveCity resolves a locality the same way, scoped to countyCode
	// when one is known.
	ResolveCity(ctx context.Context, term, countyCode string) (*Location, error)

	Counties(ctx context.Context) ([]Option, error)
	SearchCounties(ctx context.Context, query string) ([]Option, error)
	CitiesByCounty(ctx context.Context, countyCode string) ([]Option, error)
	SearchCities(ctx context.Context, query, countyCode string) ([]Option, error)

	// Warm pre-loads the county list into the cache at startup.
	Warm(ctx context.Context) error
}

type service struct {
	repo  Repository
	cache cache.Cache
}

func NewService(repo Repository, c cache.Cache) Service {
	return &service{repo: repo, cache: c}
}

func (s *service) ResolveCounty(ctx context.Context, term string) (*Location, error) {
	if term == "" {
		return nil, nil
	}

	cacheKey := "location:county:" + term
	var cached Location
	if ok, _ := s.cache.Get(ctx, cacheKey, &cached); ok {
		return &cached, nil
	}

	// Code first, then diacritic-insensitive exact name, then aliases. The
	// repo's name match covers name, full name and aliases in one pass.
	loc, err := s.repo.FindCountyByCode(ctx, term)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		loc, err = s.repo.FindCountyByName(ctx, FlexiblePattern(term, true))
		if err != nil {
			return nil, err
		}
	}
	if loc != nil {
		_ = s.cache.Set(ctx, cacheKey, loc, cache.TTLReference)
	}
	return loc, nil
}

func (s *service) ResolveCity(ctx context.Context, term, countyCode string) (*Location, error) {
	if term == "" {
		return nil, nil
	}

	cacheKey := "location:city:" + countyCode + ":" + term
	var cached Location
	if ok, _ := s.cache.Get(ctx, cacheKey, &cached); ok {
		return &cached, nil
	}

	loc, err := s.repo.FindByCode(ctx, term)
	if err != nil {
		return nil, err
	}
	if loc != nil && (loc.IsCounty || (countyCode != "" && loc.CountyCode != countyCode)) {
		loc = nil
	}
	if loc == nil {
		loc, err = s.repo.FindCityByName(ctx, FlexiblePattern(term, true), countyCode)
		if err != nil {
			return nil, err
		}
	}
	if loc != nil {
		_ = s.cache.Set(ctx, cacheKey, loc, cache.TTLReference)
	}
	return loc, nil
}

func (s *service) Counties(ctx context.Context) ([]Option, error) {
	cacheKey := "location:counties"
	var cached []Option
	if ok, _ := s.cache.Get(ctx, cacheKey, &cached); ok {
		return cached, nil
	}

	locs, err := s.repo.Counties(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeServiceUnavailable, "Failed to load counties", 503)
	}

	opts := toOptions(locs)
	_ = s.cache.Set(ctx, cacheKey, opts, cache.TTLReference)
	return opts, nil
}

func (s *service) SearchCounties(ctx context.Context, query string) ([]Option, error) {
	if query == "" {
		return s.Counties(ctx)
	}
	locs, err := s.repo.SearchCounties(ctx, FlexiblePattern(query, false), searchLimit)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeServiceUnavailable, "County search failed", 503)
	}
	return toOptions(locs), nil
}

func (s *service) CitiesByCounty(ctx context.Context, countyCode string) ([]Option, error) {
	county, err := s.repo.FindCountyByCode(ctx, countyCode)
	if err != nil {
		return nil, err
	}
	if county == nil {
		return nil, apperror.ErrNotFound
	}

	cacheKey := "location:cities:" + countyCode
	var cached []Option
	if ok, _ := s.cache.Get(ctx, cacheKey, &cached); ok {
		return cached, nil
	}

	locs, err := s.repo.CitiesByCounty(ctx, countyCode)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeServiceUnavailable, "Failed to load cities", 503)
	}

	opts := toOptions(locs)
	_ = s.cache.Set(ctx, cacheKey, opts, cache.TTLReference)
	return opts, nil
}

func (s *service) SearchCities(ctx context.Context, query, countyCode string) ([]Option, error) {
	if query == "" {
		if countyCode == "" {
			return []Option{}, nil
		}
		return s.CitiesByCounty(ctx, countyCode)
	}
	locs, err := s.repo.SearchCities(ctx, FlexiblePattern(query, false), countyCode, searchLimit)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeServiceUnavailable, "City search failed", 503)
	}
	return toOptions(locs), nil
}

func (s *service) Warm(ctx context.Context) error {
	_, err := s.Counties(ctx)
	return err
}
