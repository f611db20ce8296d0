package company

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"time"

	companyerrors "github.com/TirlaP/lista-firme-backend/internal/company/errors"
)

// Filter is the structured query request after parameter parsing. Location
// names arrive raw; the service resolves them against the location registry
// and fills the *Pattern fields before BuildPredicate runs.
type Filter struct {
	Query string

	CAENCodes []string
	Status    string

	Judet        string
	Oras         string
	JudetPattern string
	OrasPattern  string

	HasWebsite       *bool
	HasContact       *bool
	HasEmail         *bool
	HasPhone         *bool
	HasAdministrator *bool

	MinRevenue   *int64
	MaxRevenue   *int64
	MinProfit    *int64
	MaxProfit    *int64
	MinEmployees *int
	MaxEmployees *int
	YearFrom     *int
	YearTo       *int

	// Registration-date window, inclusive, YYYY-MM-DD. Set by the latest
	// endpoints, never directly by clients.
	DateFrom string
	DateTo   string
}

// Validate rejects filters that can never match: an unknown status label or
// a malformed date window. Runs before any store access or response bytes.
func (f Filter) Validate() error {
	if f.Status != "" && !IsKnownStatus(f.Status) {
		return companyerrors.ErrInvalidStatus
	}
	if f.DateFrom != "" || f.DateTo != "" {
		if f.DateFrom == "" || f.DateTo == "" {
			return companyerrors.ErrInvalidDateWindow
		}
		for _, d := range []string{f.DateFrom, f.DateTo} {
			if _, err := time.Parse("2006-01-02", d); err != nil {
				return companyerrors.ErrInvalidDateWindow
			}
		}
		if f.DateFrom > f.DateTo {
			return companyerrors.ErrInvalidDateWindow
		}
	}
	return nil
}

// Predicate is an AND-combined list of SQL conditions with their arguments,
// ready to hand to the repository.
type Predicate struct {
	conds []string
	args  []any
}

func (p *Predicate) And(cond string, args ...any) {
	p.conds = append(p.conds, cond)
	p.args = append(p.args, args...)
}

// Empty reports whether no condition was added.
func (p *Predicate) Empty() bool {
	return len(p.conds) == 0
}

// SQL returns the combined WHERE fragment and its arguments. An empty
// predicate yields "TRUE" so callers can splice it unconditionally.
func (p *Predicate) SQL() (string, []any) {
	if len(p.conds) == 0 {
		return "TRUE", nil
	}
	return "(" + strings.Join(p.conds, ") AND (") + ")", p.args
}

// Key derives a deterministic short key from the predicate for cache
// composition. Equal filters produce equal keys regardless of build order
// of the argument values.
func (p *Predicate) Key() string {
	where, args := p.SQL()
	h := fnv.New64a()
	h.Write([]byte(where))
	for _, a := range args {
		fmt.Fprintf(h, "|%v", a)
	}
	return fmt.Sprintf("%x", h.Sum64())
}

const (
	websiteExpr = "coalesce(date_generale->>'website','')"
	emailExpr   = "coalesce(date_generale->>'email','')"
	phoneExpr   = "coalesce(date_generale->>'telefon','')"
	regDateExpr = "coalesce(date_generale->>'data_inregistrare','')"
	adminsExpr  = "coalesce(jsonb_array_length(coalesce(administratori,'[]'::jsonb)),0)"
)

// BuildPredicate translates the filter into SQL conditions. Multi-value
// CAEN and the contact flags OR internally; everything else ANDs. The
// derived-status filter reuses statusPredicate so list results agree with
// the labels the relabel job writes.
func (f Filter) BuildPredicate() *Predicate {
	p := &Predicate{}

	if f.Query != "" {
		like := "%" + f.Query + "%"
		p.And("(denumire ILIKE ? OR cui::text LIKE ? OR cod_inmatriculare ILIKE ?)", like, like, like)
	}

	if len(f.CAENCodes) > 0 {
		codes := append([]string(nil), f.CAENCodes...)
		sort.Strings(codes)
		p.And("cod_caen IN ?", codes)
	}

	if f.Status != "" {
		if cond := statusPredicate(f.Status); cond != "" {
			p.And(cond)
		}
	}

	if pat := f.countyPattern(); pat != "" {
		p.And(
			"(coalesce(adresa->>'judet','') ~* ? OR coalesce(adresa_anaf->'sediu_social'->>'sdenumire_Judet','') ~* ? OR coalesce(adresa_anaf->'domiciliu_fiscal'->>'ddenumire_Judet','') ~* ?)",
			pat, pat, pat,
		)
	}
	if pat := f.cityPattern(); pat != "" {
		p.And(
			"(coalesce(adresa->>'localitate','') ~* ? OR coalesce(adresa_anaf->'sediu_social'->>'sdenumire_Localitate','') ~* ? OR coalesce(adresa_anaf->'domiciliu_fiscal'->>'ddenumire_Localitate','') ~* ?)",
			pat, pat, pat,
		)
	}

	addFlag(p, f.HasWebsite, websiteExpr)
	addFlag(p, f.HasEmail, emailExpr)
	addFlag(p, f.HasPhone, phoneExpr)
	if f.HasContact != nil {
		if *f.HasContact {
			p.And("(" + phoneExpr + " <> '' OR " + emailExpr + " <> '' OR " + websiteExpr + " <> '')")
		} else {
			p.And("(" + phoneExpr + " = '' AND " + emailExpr + " = '' AND " + websiteExpr + " = '')")
		}
	}
	if f.HasAdministrator != nil {
		if *f.HasAdministrator {
			p.And(adminsExpr + " > 0")
		} else {
			p.And(adminsExpr + " = 0")
		}
	}

	addRangeI64(p, f.MinRevenue, f.MaxRevenue, "(bilant->>'cifra_afaceri')::bigint")
	addRangeI64(p, f.MinProfit, f.MaxProfit, "(bilant->>'profit')::bigint")
	if f.MinEmployees != nil {
		p.And("(bilant->>'angajati')::int >= ?", *f.MinEmployees)
	}
	if f.MaxEmployees != nil {
		p.And("(bilant->>'angajati')::int <= ?", *f.MaxEmployees)
	}
	if f.YearFrom != nil {
		p.And(regDateExpr+" >= ?", fmt.Sprintf("%04d-01-01", *f.YearFrom))
	}
	if f.YearTo != nil {
		p.And(regDateExpr+" <= ?", fmt.Sprintf("%04d-12-31", *f.YearTo))
	}

	if f.DateFrom != "" {
		p.And(regDateExpr+" >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		p.And(regDateExpr+" <= ?", f.DateTo)
	}

	return p
}

func (f Filter) countyPattern() string {
	if f.JudetPattern != "" {
		return f.JudetPattern
	}
	return ""
}

func (f Filter) cityPattern() string {
	if f.OrasPattern != "" {
		return f.OrasPattern
	}
	return ""
}

func addFlag(p *Predicate, flag *bool, expr string) {
	if flag == nil {
		return
	}
	if *flag {
		p.And(expr + " <> ''")
	} else {
		p.And(expr + " = ''")
	}
}

func addRangeI64(p *Predicate, min, max *int64, expr string) {
	if min != nil {
		p.And(expr+" >= ?", *min)
	}
	if max != nil {
		p.And(expr+" <= ?", *max)
	}
}

// ClampLimit forces the page size into [1, 100]; zero and negatives become
// the default of 10.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return 10
	}
	if limit > 100 {
		return 100
	}
	return limit
}

// ClampPage forces the page number to at least 1.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
