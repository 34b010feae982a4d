package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Crime represents a recorded offense. ConnectedInmates is the derived
// back-reference over Inmate.CrimeRef.
type Crime struct {
	ID               string    `gorm:"type:char(36);primaryKey" json:"id"`
	Nature           string    `gorm:"size:255;not null" json:"nature"`
	Severity         string    `gorm:"size:16;not null" json:"severity"`
	LegalReferences  string    `gorm:"size:255;not null" json:"legalReferences"`
	Description      string    `gorm:"type:text;not null" json:"description"`
	Evidence         string    `gorm:"size:512" json:"evidence,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
	ConnectedInmates []Inmate  `gorm:"foreignKey:CrimeRef" json:"connectedInmates,omitempty"`
}

// BeforeCreate assigns the record id when one is not supplied.
func (c *Crime) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for Crime
func (Crime) TableName() string {
	return "crimes"
}
