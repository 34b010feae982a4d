package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Visitor represents a registered visitor of an inmate.
type Visitor struct {
	ID                   string    `gorm:"type:char(36);primaryKey" json:"id"`
	FullName             string    `gorm:"size:255;not null" json:"fullName"`
	RelationshipToInmate string    `gorm:"size:64;not null" json:"relationshipToInmate"`
	Phone                string    `gorm:"size:32" json:"phone,omitempty"`
	InmateRef            string    `gorm:"type:char(36);not null;index" json:"inmateId"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
	Inmate               *Inmate   `gorm:"foreignKey:InmateRef" json:"inmate,omitempty"`
	Visits               []Visit   `gorm:"foreignKey:VisitorRef" json:"visitHistory,omitempty"`
}

// Visit is one entry in a visitor's visit history. Inmate references may
// dangle after an inmate is deleted; readers must tolerate a nil Inmate.
type Visit struct {
	ID         string         `gorm:"type:char(36);primaryKey" json:"id"`
	VisitorRef string         `gorm:"type:char(36);not null;index" json:"visitorId"`
	Date       datatypes.Date `gorm:"not null" json:"date"`
	InmateRef  string         `gorm:"type:char(36);not null" json:"inmateId"`
	Status     string         `gorm:"size:32;not null" json:"visitStatus"`
	Notes      string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	Inmate     *Inmate        `gorm:"foreignKey:InmateRef" json:"inmate,omitempty"`
}

// BeforeCreate assigns the record id when one is not supplied.
func (v *Visitor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// BeforeCreate assigns the record id when one is not supplied.
func (v *Visit) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for Visitor
func (Visitor) TableName() string {
	return "visitors"
}

// TableName overrides the table name for Visit
func (Visit) TableName() string {
	return "visits"
}
