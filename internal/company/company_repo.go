package company

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	companyerrors "github.com/TirlaP/lista-firme-backend/internal/company/errors"
)

// ListOptions is the repository-level query description: the predicate, a
// single sort with CUI tie-break, an optional resume cursor and either an
// offset or a plain limit.
type ListOptions struct {
	Predicate *Predicate
	Sort      Sort
	Cursor    *Cursor
	Offset    int
	Limit     int
}

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context, opts ListOptions) ([]Company, error)
	Count(ctx context.Context, p *Predicate) (int64, error)
	EstimatedCount(ctx context.Context) (int64, error)
	FindByCUI(ctx context.Context, cui int64) (*Company, error)
	Stats(ctx context.Context) (*StatsView, error)
	LatestStats(ctx context.Context, from, to string) (*LatestStatsView, error)
	Stream(ctx context.Context, opts ListOptions, fn func(c *Company) error) error
	BatchForRelabel(ctx context.Context, afterCUI int64, limit int) ([]Company, error)
	UpdateStatuses(ctx context.Context, labels map[int64]string) (int64, error)
	ReplaceStatusCounts(ctx context.Context) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// listQuery builds the shared SELECT for List and Stream. The cursor resume
// condition keeps the same shape for both directions, with CUI ascending as
// the stable tie-break.
func (r *repository) listQuery(ctx context.Context, opts ListOptions) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&Company{})

	if opts.Predicate != nil && !opts.Predicate.Empty() {
		where, args := opts.Predicate.SQL()
		q = q.Where(where, args...)
	}

	expr := opts.Sort.Field.columnExpr()
	dir := "ASC"
	if opts.Sort.Desc {
		dir = "DESC"
	}

	if c := opts.Cursor; c != nil {
		cmp := ">"
		if opts.Sort.Desc {
			cmp = "<"
		}
		// cui is bigint; bind the boundary with a matching type. A value
		// that does not parse makes the whole cursor unusable, so it is
		// dropped like any other undecodable token and the page restarts.
		var boundary any = c.Value
		usable := true
		if opts.Sort.Field == SortCUI {
			n, err := strconv.ParseInt(c.Value, 10, 64)
			if err != nil {
				usable = false
			} else {
				boundary = n
			}
		}
		if usable {
			q = q.Where(
				"("+expr+" "+cmp+" ? OR ("+expr+" = ? AND cui > ?))",
				boundary, boundary, c.CUI,
			)
		}
	}

	q = q.Order(expr + " " + dir).Order("cui ASC")

	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	return q
}

func (r *repository) List(ctx context.Context, opts ListOptions) ([]Company, error) {
	var out []Company
	if err := r.listQuery(ctx, opts).Find(&out).Error; err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (r *repository) Count(ctx context.Context, p *Predicate) (int64, error) {
	q := r.db.WithContext(ctx).Model(&Company{})
	if p != nil && !p.Empty() {
		where, args := p.SQL()
		q = q.Where(where, args...)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, classify(err)
	}
	return total, nil
}

// EstimatedCount reads planner statistics instead of scanning. Used for
// unfiltered totals where an exact count would dominate the request.
func (r *repository) EstimatedCount(ctx context.Context) (int64, error) {
	var estimate int64
	err := r.db.WithContext(ctx).
		Raw("SELECT reltuples::bigint FROM pg_class WHERE relname = 'companies'").
		Scan(&estimate).Error
	if err != nil {
		return 0, classify(err)
	}
	return estimate, nil
}

func (r *repository) FindByCUI(ctx context.Context, cui int64) (*Company, error) {
	var c Company
	err := r.db.WithContext(ctx).First(&c, "cui = ?", cui).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, companyerrors.ErrCompanyNotFound
	}
	if err != nil {
		return nil, classify(err)
	}
	return &c, nil
}

func (r *repository) Stats(ctx context.Context) (*StatsView, error) {
	var stats StatsView
	err := r.db.WithContext(ctx).
		Raw(`SELECT
			count(*) AS total,
			count(*) FILTER (WHERE stare_firma = ?) AS active,
			count(*) FILTER (WHERE `+websiteExpr+` <> '') AS with_website,
			count(*) FILTER (WHERE `+phoneExpr+` <> '' OR `+emailExpr+` <> '' OR `+websiteExpr+` <> '') AS with_contact
		FROM companies`, StatusFunctional).
		Scan(&stats).Error
	if err != nil {
		return nil, classify(err)
	}
	return &stats, nil
}

func (r *repository) LatestStats(ctx context.Context, from, to string) (*LatestStatsView, error) {
	out := &LatestStatsView{DateFrom: from, DateTo: to}
	window := r.db.WithContext(ctx).Model(&Company{}).
		Where(regDateExpr+" >= ? AND "+regDateExpr+" <= ?", from, to)

	if err := window.Count(&out.TotalNew).Error; err != nil {
		return nil, classify(err)
	}

	queries := []struct {
		dest *[]BucketView
		sql  string
	}{
		{&out.TopCAEN, `SELECT cod_caen AS key, count(*) AS count FROM companies
			WHERE ` + regDateExpr + ` >= ? AND ` + regDateExpr + ` <= ? AND cod_caen <> ''
			GROUP BY cod_caen ORDER BY count DESC LIMIT 10`},
		{&out.TopCounties, `SELECT coalesce(adresa_anaf->'sediu_social'->>'sdenumire_Judet', adresa->>'judet', '') AS key, count(*) AS count
			FROM companies
			WHERE ` + regDateExpr + ` >= ? AND ` + regDateExpr + ` <= ?
			GROUP BY 1 HAVING coalesce(adresa_anaf->'sediu_social'->>'sdenumire_Judet', adresa->>'judet', '') <> ''
			ORDER BY count DESC LIMIT 10`},
		{&out.DailyTrend, `SELECT ` + regDateExpr + ` AS key, count(*) AS count FROM companies
			WHERE ` + regDateExpr + ` >= ? AND ` + regDateExpr + ` <= ?
			GROUP BY 1 ORDER BY 1 ASC`},
	}
	for _, q := range queries {
		if err := r.db.WithContext(ctx).Raw(q.sql, from, to).Scan(q.dest).Error; err != nil {
			return nil, classify(err)
		}
	}
	return out, nil
}

// Stream walks the result set row by row on a server-side cursor, checking
// for context cancellation between rows so a disconnected client stops the
// scan instead of draining it.
func (r *repository) Stream(ctx context.Context, opts ListOptions, fn func(c *Company) error) error {
	rows, err := r.listQuery(ctx, opts).Rows()
	if err != nil {
		return classify(err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		var c Company
		if err := r.db.ScanRows(rows, &c); err != nil {
			return classify(err)
		}
		if err := fn(&c); err != nil {
			return err
		}
	}
	return classify(rows.Err())
}

func (r *repository) BatchForRelabel(ctx context.Context, afterCUI int64, limit int) ([]Company, error) {
	var out []Company
	err := r.db.WithContext(ctx).
		Select("cui", "stare_firma", "date_generale", "stare_inactiv").
		Where("cui > ?", afterCUI).
		Order("cui ASC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// UpdateStatuses bulk-writes new labels, one UPDATE per distinct label.
func (r *repository) UpdateStatuses(ctx context.Context, labels map[int64]string) (int64, error) {
	if len(labels) == 0 {
		return 0, nil
	}
	byLabel := make(map[string][]int64)
	for cui, label := range labels {
		byLabel[label] = append(byLabel[label], cui)
	}
	var changed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for label, cuis := range byLabel {
			res := tx.Model(&Company{}).
				Where("cui IN ?", cuis).
				Updates(map[string]any{"stare_firma": label, "updated_at": time.Now()})
			if res.Error != nil {
				return res.Error
			}
			changed += res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, classify(err)
	}
	return changed, nil
}

// ReplaceStatusCounts rewrites the company_stats snapshot from the live
// label column in one transaction.
func (r *repository) ReplaceStatusCounts(ctx context.Context) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM company_stats").Error; err != nil {
			return err
		}
		return tx.Exec(`INSERT INTO company_stats (status, total, computed_at)
			SELECT stare_firma, count(*), now() FROM companies GROUP BY stare_firma`).Error
	})
	return classify(err)
}

// classify folds driver-level failures into the domain's store error so
// handlers never leak connection detail.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return companyerrors.ErrStoreFailure
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return companyerrors.ErrCompanyNotFound
	}
	return companyerrors.ErrStoreFailure
}
