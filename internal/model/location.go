package model

// Location is a physical room/area assets are assigned to
type Location struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
}

func (Location) TableName() string {
	return "locations"
}
