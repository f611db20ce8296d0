package caen

// CAEN is one entry of the economic-activity classification. The table is
// small and closed, so the whole of it is loaded into memory at startup.
type CAEN struct {
	Code         string `gorm:"column:code;primaryKey" json:"code"`
	Name         string `gorm:"column:name" json:"name"`
	DivisionCode string `gorm:"column:division_code" json:"division_code"`
	DivisionName string `gorm:"column:division_name" json:"division_name"`
	SectionCode  string `gorm:"column:section_code" json:"section_code"`
	SectionName  string `gorm:"column:section_name" json:"section_name"`
}

func (CAEN) TableName() string {
	return "caen_codes"
}
