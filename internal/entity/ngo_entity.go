package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Ngo is a legal-aid organization listed in the directory.
type Ngo struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	EnglishName string
	Location    string
	Region      string `gorm:"index"`
	Speciality  string
	// Languages is a JSON array of language names the center can assist in.
	Languages datatypes.JSON
	Phone     string
	Whatsapp  string
	Website   string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
