package company

import "time"

// Company is the raw stored record. Several historical field generations
// coexist: the legacy flat Adresa, the authority-sourced AdresaAnaf split
// into registered office and fiscal residence, and the DateGenerale blob
// carrying contact and registration metadata. The document-shaped parts
// stay JSONB in Postgres and are reconciled only by Transform.
type Company struct {
	CUI              int64  `gorm:"column:cui;primaryKey"`
	Denumire         string `gorm:"column:denumire"`
	CodInmatriculare string `gorm:"column:cod_inmatriculare"`
	// StareFirma is the derived status label written by the relabel job,
	// not computed at read time.
	StareFirma string `gorm:"column:stare_firma"`
	CodCAEN    string `gorm:"column:cod_caen"`

	Adresa         Adresa       `gorm:"column:adresa;serializer:json"`
	AdresaAnaf     AdresaAnaf   `gorm:"column:adresa_anaf;serializer:json"`
	DateGenerale   DateGenerale `gorm:"column:date_generale;serializer:json"`
	StareInactiv   StareInactiv `gorm:"column:stare_inactiv;serializer:json"`
	Bilant         Bilant       `gorm:"column:bilant;serializer:json"`
	Administratori []string     `gorm:"column:administratori;serializer:json"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Company) TableName() string {
	return "companies"
}

// Adresa is the legacy flat address shape from the first ingestion pass.
type Adresa struct {
	Completa   string `json:"completa,omitempty"`
	Tara       string `json:"tara,omitempty"`
	Localitate string `json:"localitate,omitempty"`
	Judet      string `json:"judet,omitempty"`
	Strada     string `json:"strada,omitempty"`
	Numar      string `json:"numar,omitempty"`
	CodPostal  string `json:"cod_postal,omitempty"`
	Sector     string `json:"sector,omitempty"`
}

// AdresaAnaf carries the authority-sourced addresses, field names exactly
// as delivered by the source registry.
type AdresaAnaf struct {
	SediuSocial     SediuSocial     `json:"sediu_social,omitempty"`
	DomiciliuFiscal DomiciliuFiscal `json:"domiciliu_fiscal,omitempty"`
}

type SediuSocial struct {
	Strada        string `json:"sdenumire_Strada,omitempty"`
	Numar         string `json:"snumar_Strada,omitempty"`
	Localitate    string `json:"sdenumire_Localitate,omitempty"`
	CodLocalitate string `json:"scod_Localitate,omitempty"`
	Judet         string `json:"sdenumire_Judet,omitempty"`
	CodJudet      string `json:"scod_Judet,omitempty"`
	CodJudetAuto  string `json:"scod_JudetAuto,omitempty"`
	Tara          string `json:"stara,omitempty"`
	Detalii       string `json:"sdetalii_Adresa,omitempty"`
	CodPostal     string `json:"scod_Postal,omitempty"`
}

type DomiciliuFiscal struct {
	Strada        string `json:"ddenumire_Strada,omitempty"`
	Numar         string `json:"dnumar_Strada,omitempty"`
	Localitate    string `json:"ddenumire_Localitate,omitempty"`
	CodLocalitate string `json:"dcod_Localitate,omitempty"`
	Judet         string `json:"ddenumire_Judet,omitempty"`
	CodJudet      string `json:"dcod_Judet,omitempty"`
	CodJudetAuto  string `json:"dcod_JudetAuto,omitempty"`
	Tara          string `json:"dtara,omitempty"`
	Detalii       string `json:"ddetalii_Adresa,omitempty"`
	CodPostal     string `json:"dcod_Postal,omitempty"`
}

type DateGenerale struct {
	CUI                int64  `json:"cui,omitempty"`
	Denumire           string `json:"denumire,omitempty"`
	Adresa             string `json:"adresa,omitempty"`
	NrRegCom           string `json:"nrRegCom,omitempty"`
	Telefon            string `json:"telefon,omitempty"`
	Fax                string `json:"fax,omitempty"`
	CodPostal          string `json:"codPostal,omitempty"`
	StareInregistrare  string `json:"stare_inregistrare,omitempty"`
	DataInregistrare   string `json:"data_inregistrare,omitempty"` // YYYY-MM-DD
	OrganFiscal        string `json:"organFiscalCompetent,omitempty"`
	FormaDeProprietate string `json:"forma_de_proprietate,omitempty"`
	FormaOrganizare    string `json:"forma_organizare,omitempty"`
	FormaJuridica      string `json:"forma_juridica,omitempty"`
	StatusROeFactura   bool   `json:"statusRO_e_Factura,omitempty"`
	Website            string `json:"website,omitempty"`
	Email              string `json:"email,omitempty"`
}

type StareInactiv struct {
	StatusInactivi bool   `json:"statusInactivi,omitempty"`
	DataInactivare string `json:"dataInactivare,omitempty"`
}

// Bilant holds the latest balance-sheet figures attached by ingestion.
type Bilant struct {
	An           int   `json:"an,omitempty"`
	CifraAfaceri int64 `json:"cifra_afaceri,omitempty"`
	Profit       int64 `json:"profit,omitempty"`
	Angajati     int   `json:"angajati,omitempty"`
}

// StatsSnapshot is a persisted aggregate row refreshed by the worker.
type StatsSnapshot struct {
	ID         int       `gorm:"column:id;primaryKey"`
	Status     string    `gorm:"column:status"`
	Total      int64     `gorm:"column:total"`
	ComputedAt time.Time `gorm:"column:computed_at"`
}

func (StatsSnapshot) TableName() string {
	return "company_stats"
}
