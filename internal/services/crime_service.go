package services

import (
	"github.com/wardenapp/corrections-api/internal/models"
	"github.com/wardenapp/corrections-api/internal/types"
	"gorm.io/gorm"
)

// CrimeInput carries the fields accepted on crime creation.
type CrimeInput struct {
	Nature          string
	Severity        string
	LegalReferences string
	Description     string
	Evidence        string
}

// CrimeUpdate is the typed partial-update set for a crime. The connected
// inmate set is derived from Inmate.CrimeRef and cannot be written directly.
type CrimeUpdate struct {
	Nature          *string
	Severity        *string
	LegalReferences *string
	Description     *string
	Evidence        *string
}

// CreateCrime persists a new crime record.
func CreateCrime(db *gorm.DB, in CrimeInput) (*models.Crime, error) {
	crime := models.Crime{
		Nature:          in.Nature,
		Severity:        in.Severity,
		LegalReferences: in.LegalReferences,
		Description:     in.Description,
		Evidence:        in.Evidence,
	}
	if err := db.Create(&crime).Error; err != nil {
		return nil, types.InternalError(err)
	}
	return &crime, nil
}

// ListCrimes returns all crimes with connected inmates expanded.
func ListCrimes(db *gorm.DB) ([]models.Crime, error) {
	var crimes []models.Crime
	if err := db.Preload("ConnectedInmates").Find(&crimes).Error; err != nil {
		return nil, types.InternalError(err)
	}
	return crimes, nil
}

// GetCrime returns one crime with connected inmates expanded.
func GetCrime(db *gorm.DB, id string) (*models.Crime, error) {
	var crime models.Crime
	if err := db.Preload("ConnectedInmates").Where("id = ?", id).First(&crime).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, types.NotFoundError("Crime")
		}
		return nil, types.InternalError(err)
	}
	return &crime, nil
}

// UpdateCrime applies a partial update.
func UpdateCrime(db *gorm.DB, id string, up CrimeUpdate) (*models.Crime, error) {
	var crime models.Crime
	if err := db.Where("id = ?", id).First(&crime).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, types.NotFoundError("Crime")
		}
		return nil, types.InternalError(err)
	}

	if up.Nature != nil {
		crime.Nature = *up.Nature
	}
	if up.Severity != nil {
		crime.Severity = *up.Severity
	}
	if up.LegalReferences != nil {
		crime.LegalReferences = *up.LegalReferences
	}
	if up.Description != nil {
		crime.Description = *up.Description
	}
	if up.Evidence != nil {
		crime.Evidence = *up.Evidence
	}

	if err := db.Save(&crime).Error; err != nil {
		return nil, types.InternalError(err)
	}
	return &crime, nil
}

// DeleteCrime removes the crime record. Inmates referencing it are left in
// place; their crime reference dangles by accepted design.
func DeleteCrime(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Crime{})
	if result.Error != nil {
		return types.InternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return types.NotFoundError("Crime")
	}
	return nil
}
