package caen

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/TirlaP/lista-firme-backend/internal/cache"
	"github.com/TirlaP/lista-firme-backend/internal/shared/apperror"
)

// Option mirrors the dropdown shape the frontend expects.
type Option struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	Details struct {
		Division string `json:"division"`
		Section  string `json:"section"`
	} `json:"details"`
}

type Service interface {
	// Warm loads the full reference table into the in-memory map. Called
	// once at startup and again when the ingestion consumer signals a
	// reference update.
	Warm(ctx context.Context) error
	// Lookup is a read-only map hit; nil when the code is unknown. Unknown
	// codes are expected in the data and are not an error.
	Lookup(code string) *CAEN
	// List returns the full table as dropdown options, ordered by code.
	List(ctx context.Context) ([]Option, error)
	Search(ctx context.Context, query string) ([]Option, error)
	Get(ctx context.Context, code string) (*CAEN, error)
}

type service struct {
	repo  Repository
	cache cache.Cache

	mu    sync.RWMutex
	codes map[string]CAEN
}

func NewService(repo Repository, c cache.Cache) Service {
	return &service{
		repo:  repo,
		cache: c,
		codes: map[string]CAEN{},
	}
}

func (s *service) Warm(ctx context.Context) error {
	all, err := s.repo.All(ctx)
	if err != nil {
		return fmt.Errorf("warm caen codes: %w", err)
	}

	codes := make(map[string]CAEN, len(all))
	for _, c := range all {
		codes[c.Code] = c
	}

	s.mu.Lock()
	s.codes = codes
	s.mu.Unlock()
	return nil
}

func (s *service) Lookup(code string) *CAEN {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.codes[code]; ok {
		return &c
	}
	return nil
}

func (s *service) List(_ context.Context) ([]Option, error) {
	s.mu.RLock()
	codes := make([]CAEN, 0, len(s.codes))
	for _, c := range s.codes {
		codes = append(codes, c)
	}
	s.mu.RUnlock()

	sort.Slice(codes, func(i, j int) bool { return codes[i].Code < codes[j].Code })
	opts := make([]Option, 0, len(codes))
	for _, c := range codes {
		opts = append(opts, toOption(c))
	}
	return opts, nil
}

func (s *service) Search(ctx context.Context, query string) ([]Option, error) {
	cacheKey := "caen:search:" + query
	var cached []Option
	if ok, _ := s.cache.Get(ctx, cacheKey, &cached); ok {
		return cached, nil
	}

	results, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeServiceUnavailable, "CAEN search failed", 503)
	}

	opts := make([]Option, 0, len(results))
	for _, c := range results {
		opts = append(opts, toOption(c))
	}

	_ = s.cache.Set(ctx, cacheKey, opts, cache.TTLSearch)
	return opts, nil
}

func (s *service) Get(ctx context.Context, code string) (*CAEN, error) {
	if c := s.Lookup(code); c != nil {
		return c, nil
	}
	return nil, apperror.ErrNotFound
}

func toOption(c CAEN) Option {
	opt := Option{
		Value: c.Code,
		Label: fmt.Sprintf("%s - %s", c.Code, c.Name),
	}
	opt.Details.Division = fmt.Sprintf("%s - %s", c.DivisionCode, c.DivisionName)
	opt.Details.Section = fmt.Sprintf("%s - %s", c.SectionCode, c.SectionName)
	return opt
}
