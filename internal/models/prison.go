package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Prison represents a correctional facility.
// CellBlocks is the derived back-reference: every Cell whose PrisonRef
// points at this record.
type Prison struct {
	ID            string    `gorm:"type:char(36);primaryKey" json:"id"`
	PrisonID      string    `gorm:"size:64;uniqueIndex;not null" json:"prisonID"`
	Location      string    `gorm:"size:255;not null" json:"location"`
	Capacity      int       `gorm:"not null" json:"capacity"`
	SecurityLevel string    `gorm:"size:16;not null" json:"securityLevel"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	CellBlocks    []Cell    `gorm:"foreignKey:PrisonRef" json:"cellBlocks,omitempty"`
}

// BeforeCreate assigns the record id when one is not supplied.
func (p *Prison) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for Prison
func (Prison) TableName() string {
	return "prisons"
}
