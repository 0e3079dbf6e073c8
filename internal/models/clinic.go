package models

// Clinic represents one of the teaching clinics students are assigned to.
type Clinic struct {
	BaseModel
	Name       string `gorm:"size:120;not null;uniqueIndex" json:"name"`
	Department string `gorm:"size:120" json:"department"`

	// Relations (not always preloaded)
	Students []User    `gorm:"foreignKey:ClinicID" json:"-"`
	Patients []Patient `gorm:"foreignKey:ClinicID" json:"-"`
}
