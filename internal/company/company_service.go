package company

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/TirlaP/lista-firme-backend/internal/cache"
	"github.com/TirlaP/lista-firme-backend/internal/caen"
	companyerrors "github.com/TirlaP/lista-firme-backend/internal/company/errors"
	"github.com/TirlaP/lista-firme-backend/internal/location"
	"github.com/TirlaP/lista-firme-backend/internal/shared/response"
)

// ListResult is an offset page plus a marker for estimated totals, so the
// handler can emit the partial-results headers.
type ListResult struct {
	response.Page[CompanyView]
	CountIsEstimate bool `json:"-"`
}

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	Query(ctx context.Context, f Filter, opts PageOptions) (*ListResult, error)
	Search(ctx context.Context, q string, opts PageOptions) (*ListResult, error)
	Latest(ctx context.Context, timeRange, customStart, customEnd string, opts PageOptions) (*LatestPage, error)
	LatestStats(ctx context.Context, timeRange, customStart, customEnd string) (*LatestStatsView, error)
	GetByCUI(ctx context.Context, cui int64) (*CompanyView, error)
	Stats(ctx context.Context) (*StatsView, error)
	Connection(ctx context.Context, f Filter, opts ConnectionOptions) (*Connection, error)
	StreamViews(ctx context.Context, f Filter, sortBy string, maxRows int, fn func(v *CompanyView) error) error
	InvalidateCompany(ctx context.Context, cui int64) error
}

type service struct {
	repo      Repository
	caenSvc   caen.Service
	locations location.Service
	cache     cache.Cache
	log       *zap.Logger
	now       func() time.Time
}

func NewService(repo Repository, caenSvc caen.Service, locations location.Service, c cache.Cache) Service {
	return &service{
		repo:      repo,
		caenSvc:   caenSvc,
		locations: locations,
		cache:     c,
		log:       zap.L().Named("company.service"),
		now:       time.Now,
	}
}

func (s *service) Query(ctx context.Context, f Filter, opts PageOptions) (*ListResult, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	s.resolveLocations(ctx, &f)
	return s.offsetPage(ctx, f, opts)
}

// Search is the free-text endpoint. The length check runs before any store
// or cache access.
func (s *service) Search(ctx context.Context, q string, opts PageOptions) (*ListResult, error) {
	q = strings.TrimSpace(q)
	if len([]rune(q)) < 2 {
		return nil, companyerrors.ErrQueryTooShort
	}
	return s.offsetPage(ctx, Filter{Query: q}, opts)
}

func (s *service) Latest(ctx context.Context, timeRange, customStart, customEnd string, opts PageOptions) (*LatestPage, error) {
	from, to, err := s.resolveWindow(timeRange, customStart, customEnd)
	if err != nil {
		return nil, err
	}
	f := Filter{DateFrom: from, DateTo: to}
	if opts.SortBy == "" {
		opts.SortBy = "registration_date_desc"
	}
	page, err := s.offsetPage(ctx, f, opts)
	if err != nil {
		return nil, err
	}
	return &LatestPage{
		Results:      page.Results,
		Page:         page.Page.Page,
		Limit:        page.Limit,
		TotalPages:   page.TotalPages,
		TotalResults: page.TotalResults,
		TimeRange:    timeRange,
		DateRange:    DateRange{From: from, To: to},
	}, nil
}

func (s *service) LatestStats(ctx context.Context, timeRange, customStart, customEnd string) (*LatestStatsView, error) {
	from, to, err := s.resolveWindow(timeRange, customStart, customEnd)
	if err != nil {
		return nil, err
	}
	key := "companies:latest-stats:" + from + ":" + to
	var cached LatestStatsView
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}
	stats, err := s.repo.LatestStats(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, stats, cache.TTLSearch); err != nil {
		s.log.Warn("latest stats cache write failed", zap.Error(err))
	}
	return stats, nil
}

func (s *service) GetByCUI(ctx context.Context, cui int64) (*CompanyView, error) {
	if cui <= 0 {
		return nil, companyerrors.ErrInvalidCUI
	}
	key := companyCacheKey(cui)
	var cached CompanyView
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}
	c, err := s.repo.FindByCUI(ctx, cui)
	if err != nil {
		return nil, err
	}
	view := Transform(c, s.caenSvc)
	if err := s.cache.Set(ctx, key, view, cache.TTLEntity); err != nil {
		s.log.Warn("company cache write failed", zap.Int64("cui", cui), zap.Error(err))
	}
	return &view, nil
}

func (s *service) Stats(ctx context.Context) (*StatsView, error) {
	const key = "companies:stats"
	var cached StatsView
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, stats, cache.TTLStats); err != nil {
		s.log.Warn("stats cache write failed", zap.Error(err))
	}
	return stats, nil
}

// Connection serves the cursor-paginated surface. It fetches first+1 rows
// to decide hasNextPage without a second query, and ignores cursors minted
// under a different sort field.
func (s *service) Connection(ctx context.Context, f Filter, opts ConnectionOptions) (*Connection, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	s.resolveLocations(ctx, &f)

	first := ClampLimit(opts.First)
	sort := ParseSortBy(opts.SortBy)
	pred := f.BuildPredicate()

	var cursor *Cursor
	if c, ok := DecodeCursor(opts.After); ok && c.Field == sort.Field {
		cursor = c
	}

	rows, err := s.repo.List(ctx, ListOptions{
		Predicate: pred,
		Sort:      sort,
		Cursor:    cursor,
		Limit:     first + 1,
	})
	if err != nil {
		return nil, err
	}

	hasNext := len(rows) > first
	if hasNext {
		rows = rows[:first]
	}

	conn := &Connection{Edges: make([]Edge, 0, len(rows))}
	for i := range rows {
		c := &rows[i]
		conn.Edges = append(conn.Edges, Edge{
			Cursor: EncodeCursor(Cursor{Field: sort.Field, Value: cursorValue(c, sort.Field), CUI: c.CUI}),
			Node:   Transform(c, s.caenSvc),
		})
	}
	conn.PageInfo.HasNextPage = hasNext
	if n := len(conn.Edges); n > 0 {
		conn.PageInfo.EndCursor = conn.Edges[n-1].Cursor
	}

	total, estimate, err := s.countFor(ctx, pred)
	if err != nil {
		return nil, err
	}
	conn.TotalCount = total
	conn.CountIsEstimate = estimate
	return conn, nil
}

// StreamViews feeds transformed rows to fn in storage order, stopping at
// maxRows when it is positive. Export is the only caller.
func (s *service) StreamViews(ctx context.Context, f Filter, sortBy string, maxRows int, fn func(v *CompanyView) error) error {
	if err := f.Validate(); err != nil {
		return err
	}
	s.resolveLocations(ctx, &f)

	opts := ListOptions{
		Predicate: f.BuildPredicate(),
		Sort:      ParseSortBy(sortBy),
		Limit:     maxRows,
	}
	return s.repo.Stream(ctx, opts, func(c *Company) error {
		view := Transform(c, s.caenSvc)
		return fn(&view)
	})
}

// InvalidateCompany drops the cached entity and every derived count so the
// next read reflects the updated record.
func (s *service) InvalidateCompany(ctx context.Context, cui int64) error {
	if err := s.cache.Delete(ctx, companyCacheKey(cui)); err != nil {
		return err
	}
	if err := s.cache.DeletePattern(ctx, "companies:count:"); err != nil {
		return err
	}
	return s.cache.DeletePattern(ctx, "companies:stats")
}

func (s *service) offsetPage(ctx context.Context, f Filter, opts PageOptions) (*ListResult, error) {
	page := ClampPage(opts.Page)
	limit := ClampLimit(opts.Limit)
	pred := f.BuildPredicate()

	rows, err := s.repo.List(ctx, ListOptions{
		Predicate: pred,
		Sort:      ParseSortBy(opts.SortBy),
		Offset:    (page - 1) * limit,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}

	views := make([]CompanyView, 0, len(rows))
	for i := range rows {
		views = append(views, Transform(&rows[i], s.caenSvc))
	}

	total, estimate, err := s.countFor(ctx, pred)
	if err != nil {
		return nil, err
	}
	return &ListResult{
		Page:            response.NewPage(views, page, limit, total),
		CountIsEstimate: estimate,
	}, nil
}

// countFor returns the total for a predicate, serving the unfiltered case
// from planner statistics and caching exact counts briefly.
func (s *service) countFor(ctx context.Context, pred *Predicate) (int64, bool, error) {
	if pred.Empty() {
		total, err := s.repo.EstimatedCount(ctx)
		if err != nil {
			return 0, false, err
		}
		return total, true, nil
	}

	key := "companies:count:" + pred.Key()
	var cached int64
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, false, nil
	}
	total, err := s.repo.Count(ctx, pred)
	if err != nil {
		return 0, false, err
	}
	if err := s.cache.Set(ctx, key, total, cache.TTLCount); err != nil {
		s.log.Warn("count cache write failed", zap.Error(err))
	}
	return total, false, nil
}

// resolveLocations turns raw county and city names into diacritic-flexible
// match patterns. Unresolvable names fall back to a pattern over the raw
// input rather than failing the query.
func (s *service) resolveLocations(ctx context.Context, f *Filter) {
	if s.locations == nil {
		return
	}
	var countyCode string
	if f.Judet != "" && f.JudetPattern == "" {
		if loc, err := s.locations.ResolveCounty(ctx, f.Judet); err == nil && loc != nil {
			f.JudetPattern = location.FlexiblePattern(loc.Name, false)
			countyCode = loc.Code
		} else {
			f.JudetPattern = location.FlexiblePattern(f.Judet, false)
		}
	}
	if f.Oras != "" && f.OrasPattern == "" {
		if loc, err := s.locations.ResolveCity(ctx, f.Oras, countyCode); err == nil && loc != nil {
			f.OrasPattern = location.FlexiblePattern(loc.Name, false)
		} else {
			f.OrasPattern = location.FlexiblePattern(f.Oras, false)
		}
	}
}

var timeRanges = map[string]int{
	"today":      0,
	"yesterday":  1,
	"last7days":  7,
	"last30days": 30,
}

// resolveWindow turns either a named time range or a custom date pair into
// an inclusive [from, to] window of YYYY-MM-DD strings.
func (s *service) resolveWindow(timeRange, customStart, customEnd string) (string, string, error) {
	hasCustom := customStart != "" || customEnd != ""
	if timeRange != "" && hasCustom {
		return "", "", companyerrors.ErrConflictingWindow
	}
	if hasCustom {
		if customStart == "" || customEnd == "" {
			return "", "", companyerrors.ErrInvalidDateWindow
		}
		for _, d := range []string{customStart, customEnd} {
			if _, err := time.Parse("2006-01-02", d); err != nil {
				return "", "", companyerrors.ErrInvalidDateWindow
			}
		}
		if customStart > customEnd {
			return "", "", companyerrors.ErrInvalidDateWindow
		}
		return customStart, customEnd, nil
	}

	if timeRange == "" {
		timeRange = "last7days"
	}
	days, ok := timeRanges[timeRange]
	if !ok {
		return "", "", companyerrors.ErrInvalidTimeRange
	}
	today := s.now().Format("2006-01-02")
	switch timeRange {
	case "today":
		return today, today, nil
	case "yesterday":
		y := s.now().AddDate(0, 0, -1).Format("2006-01-02")
		return y, y, nil
	default:
		from := s.now().AddDate(0, 0, -days).Format("2006-01-02")
		return from, today, nil
	}
}

func cursorValue(c *Company, field SortField) string {
	switch field {
	case SortCUI:
		return fmt.Sprintf("%d", c.CUI)
	case SortName:
		return c.Denumire
	default:
		return c.DateGenerale.DataInregistrare
	}
}

func companyCacheKey(cui int64) string {
	return fmt.Sprintf("company:cui:%d", cui)
}
