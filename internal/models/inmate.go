package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inmate represents a person held in a cell block. CrimeRef and CellRef are
// required forward references to the crime committed and the assigned cell.
type Inmate struct {
	ID             string    `gorm:"type:char(36);primaryKey" json:"id"`
	InmateID       string    `gorm:"size:64;uniqueIndex;not null" json:"inmateId"`
	FullName       string    `gorm:"size:255;not null" json:"fullName"`
	DateOfBirth    string    `gorm:"size:32;not null" json:"dateOfBirth"`
	CrimeRef       string    `gorm:"type:char(36);not null;index" json:"crimeId"`
	CellRef        string    `gorm:"type:char(36);not null;index" json:"cellId"`
	MedicalHistory string    `gorm:"type:text" json:"medicalHistory,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Crime          *Crime    `gorm:"foreignKey:CrimeRef" json:"crimeCommitted,omitempty"`
	Cell           *Cell     `gorm:"foreignKey:CellRef" json:"cellBlock,omitempty"`
}

// BeforeCreate assigns the record id when one is not supplied.
func (i *Inmate) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for Inmate
func (Inmate) TableName() string {
	return "inmates"
}
