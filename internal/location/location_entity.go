package location

import "time"

// Location is one county or locality reference record. Bucharest sectors are
// stored as localities under the Bucharest county record.
type Location struct {
	Code       string   `gorm:"column:code;primaryKey" json:"code"`
	Name       string   `gorm:"column:name" json:"name"`
	FullName   string   `gorm:"column:full_name" json:"full_name"`
	CountyCode string   `gorm:"column:county_code" json:"county_code"`
	CountyName string   `gorm:"column:county_name" json:"county_name"`
	IsCounty   bool     `gorm:"column:is_county" json:"is_county"`
	Aliases    []string `gorm:"column:aliases;serializer:json" json:"aliases"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Location) TableName() string {
	return "locations"
}
