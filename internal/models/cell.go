package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cell represents a cell block within a prison. PrisonRef is the required
// forward reference; Inmates is the derived back-reference over
// Inmate.CellRef.
type Cell struct {
	ID            string    `gorm:"type:char(36);primaryKey" json:"id"`
	CellID        string    `gorm:"size:64;uniqueIndex;not null" json:"cellID"`
	Capacity      int       `gorm:"not null" json:"capacity"`
	SecurityLevel string    `gorm:"size:16;not null" json:"securityLevel"`
	PrisonRef     string    `gorm:"type:char(36);not null;index" json:"prisonId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Prison        *Prison   `gorm:"foreignKey:PrisonRef" json:"prison,omitempty"`
	Inmates       []Inmate  `gorm:"foreignKey:CellRef" json:"inmates,omitempty"`
}

// BeforeCreate assigns the record id when one is not supplied.
func (c *Cell) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for Cell
func (Cell) TableName() string {
	return "cells"
}
