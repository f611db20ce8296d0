package company

// CompanyView is the canonical outward projection of a stored record.
type CompanyView struct {
	CUI              int64       `json:"cui"`
	Denumire         string      `json:"denumire"`
	CodInmatriculare string      `json:"cod_inmatriculare"`
	Stare            string      `json:"stare"`
	DataInregistrare string      `json:"data_inregistrare"`
	FormaJuridica    string      `json:"forma_juridica,omitempty"`
	Adresa           AddressView `json:"adresa"`
	Contact          ContactView `json:"contact"`
	CAEN             *CAENView   `json:"caen"`
	Bilant           *BilantView `json:"bilant,omitempty"`
	Administratori   []string    `json:"administratori,omitempty"`
}

type AddressView struct {
	Completa   string `json:"completa"`
	Strada     string `json:"strada"`
	Numar      string `json:"numar"`
	Detalii    string `json:"detalii,omitempty"`
	Localitate string `json:"localitate"`
	Judet      string `json:"judet"`
	CodPostal  string `json:"cod_postal"`
	Tara       string `json:"tara,omitempty"`
}

type ContactView struct {
	Telefon string `json:"telefon"`
	Fax     string `json:"fax,omitempty"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

type CAENView struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Division string `json:"division"`
	Section  string `json:"section"`
}

type BilantView struct {
	An           int   `json:"an"`
	CifraAfaceri int64 `json:"cifra_afaceri"`
	Profit       int64 `json:"profit"`
	Angajati     int   `json:"angajati"`
}

// PageOptions carries pagination inputs for the offset-style endpoints.
type PageOptions struct {
	Page   int
	Limit  int
	SortBy string
}

// ConnectionOptions carries pagination inputs for the cursor-style surface.
type ConnectionOptions struct {
	First  int
	After  string
	SortBy string
}

// Edge pairs one result with the cursor that resumes after it.
type Edge struct {
	Cursor string      `json:"cursor"`
	Node   CompanyView `json:"node"`
}

type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

// Connection is a cursor-paginated result page.
type Connection struct {
	Edges      []Edge   `json:"edges"`
	PageInfo   PageInfo `json:"pageInfo"`
	TotalCount int64    `json:"totalCount"`
	// CountIsEstimate is set when the total came from planner statistics
	// rather than an exact count.
	CountIsEstimate bool `json:"-"`
}

// StatsView is the headline aggregate block.
type StatsView struct {
	Total       int64 `json:"total"`
	Active      int64 `json:"active"`
	WithWebsite int64 `json:"withWebsite"`
	WithContact int64 `json:"withContact"`
}

// LatestStatsView summarizes registrations inside a date window.
type LatestStatsView struct {
	TotalNew    int64        `json:"totalNew"`
	DateFrom    string       `json:"dateFrom"`
	DateTo      string       `json:"dateTo"`
	TopCAEN     []BucketView `json:"topCAEN"`
	TopCounties []BucketView `json:"topCounties"`
	DailyTrend  []BucketView `json:"dailyTrend"`
}

// BucketView is one aggregation bucket: a grouping key and its count.
type BucketView struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// LatestPage is the offset page shape extended with the resolved window.
type LatestPage struct {
	Results      []CompanyView `json:"results"`
	Page         int           `json:"page"`
	Limit        int           `json:"limit"`
	TotalPages   int           `json:"totalPages"`
	TotalResults int64         `json:"totalResults"`
	TimeRange    string        `json:"timeRange,omitempty"`
	DateRange    DateRange     `json:"dateRange"`
}

type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}
