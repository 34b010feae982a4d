package services

import (
	"github.com/wardenapp/corrections-api/internal/models"
	"github.com/wardenapp/corrections-api/internal/types"
	"gorm.io/gorm"
)

// InmateInput carries the fields accepted on inmate creation. CellBlock and
// CrimeCommitted are record ids and must both resolve before anything is
// written.
type InmateInput struct {
	InmateID       string
	FullName       string
	DateOfBirth    string
	CrimeCommitted string
	CellBlock      string
	MedicalHistory string
}

// InmateUpdate is the typed partial-update set for an inmate.
type InmateUpdate struct {
	InmateID       *string
	FullName       *string
	DateOfBirth    *string
	CrimeCommitted *string
	CellBlock      *string
	MedicalHistory *string
}

// CreateInmate persists a new inmate after verifying the referenced cell
// block and crime exist and the inmateId is unique. All checks run before
// the write.
func CreateInmate(db *gorm.DB, in InmateInput) (*models.Inmate, error) {
	var inmate models.Inmate

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := EnsureUniqueField(tx, &models.Inmate{}, "inmate_id", in.InmateID, "", "Inmate ID"); err != nil {
			return err
		}
		if err := CheckCellRef(tx, in.CellBlock); err != nil {
			return err
		}
		if err := CheckCrimeRef(tx, in.CrimeCommitted); err != nil {
			return err
		}

		inmate = models.Inmate{
			InmateID:       in.InmateID,
			FullName:       in.FullName,
			DateOfBirth:    in.DateOfBirth,
			CrimeRef:       in.CrimeCommitted,
			CellRef:        in.CellBlock,
			MedicalHistory: in.MedicalHistory,
		}
		if err := tx.Create(&inmate).Error; err != nil {
			return err
		}

		return tx.Preload("Crime").Preload("Cell").Where("id = ?", inmate.ID).First(&inmate).Error
	})
	if err != nil {
		if _, ok := types.AsCustomError(err); ok {
			return nil, err
		}
		return nil, types.InternalError(err)
	}

	return &inmate, nil
}

// ListInmates returns all inmates with crime and cell block expanded.
func ListInmates(db *gorm.DB) ([]models.Inmate, error) {
	var inmates []models.Inmate
	if err := db.Preload("Crime").Preload("Cell").Find(&inmates).Error; err != nil {
		return nil, types.InternalError(err)
	}
	return inmates, nil
}

// GetInmate returns one inmate with crime and cell block expanded.
func GetInmate(db *gorm.DB, id string) (*models.Inmate, error) {
	var inmate models.Inmate
	if err := db.Preload("Crime").Preload("Cell").Where("id = ?", id).First(&inmate).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, types.NotFoundError("Inmate")
		}
		return nil, types.InternalError(err)
	}
	return &inmate, nil
}

// UpdateInmate applies a partial update. Changing the cell or crime
// reference is a reassignment: the new parent is verified inside the
// transaction, so the old assignment survives a failed attach. Issuing the
// same reassignment twice is a no-op the second time.
func UpdateInmate(db *gorm.DB, id string, up InmateUpdate) (*models.Inmate, error) {
	var inmate models.Inmate

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&inmate).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return types.NotFoundError("Inmate")
			}
			return err
		}

		if up.CellBlock != nil && *up.CellBlock != inmate.CellRef {
			if err := CheckCellRef(tx, *up.CellBlock); err != nil {
				return err
			}
			inmate.CellRef = *up.CellBlock
		}
		if up.CrimeCommitted != nil && *up.CrimeCommitted != inmate.CrimeRef {
			if err := CheckCrimeRef(tx, *up.CrimeCommitted); err != nil {
				return err
			}
			inmate.CrimeRef = *up.CrimeCommitted
		}
		if up.InmateID != nil && *up.InmateID != inmate.InmateID {
			if err := EnsureUniqueField(tx, &models.Inmate{}, "inmate_id", *up.InmateID, id, "Inmate ID"); err != nil {
				return err
			}
			inmate.InmateID = *up.InmateID
		}
		if up.FullName != nil {
			inmate.FullName = *up.FullName
		}
		if up.DateOfBirth != nil {
			inmate.DateOfBirth = *up.DateOfBirth
		}
		if up.MedicalHistory != nil {
			inmate.MedicalHistory = *up.MedicalHistory
		}

		if err := tx.Save(&inmate).Error; err != nil {
			return err
		}

		return tx.Preload("Crime").Preload("Cell").Where("id = ?", inmate.ID).First(&inmate).Error
	})
	if err != nil {
		if _, ok := types.AsCustomError(err); ok {
			return nil, err
		}
		return nil, types.InternalError(err)
	}

	return &inmate, nil
}

// DeleteInmate removes the inmate record. Visit history entries referencing
// it are left in place; readers tolerate the dangling reference.
func DeleteInmate(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Inmate{})
	if result.Error != nil {
		return types.InternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return types.NotFoundError("Inmate")
	}
	return nil
}
