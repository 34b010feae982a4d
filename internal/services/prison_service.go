package services

import (
	"github.com/wardenapp/corrections-api/internal/models"
	"github.com/wardenapp/corrections-api/internal/types"
	"gorm.io/gorm"
)

// PrisonInput carries the fields accepted on prison creation.
type PrisonInput struct {
	PrisonID      string
	Location      string
	Capacity      int
	SecurityLevel string
}

// PrisonUpdate is the typed partial-update set for a prison. Nil fields are
// left unchanged.
type PrisonUpdate struct {
	PrisonID      *string
	Location      *string
	Capacity      *int
	SecurityLevel *string
}

// CreatePrison persists a new prison after the prisonID uniqueness pre-check.
func CreatePrison(db *gorm.DB, in PrisonInput) (*models.Prison, error) {
	if err := EnsureUniqueField(db, &models.Prison{}, "prison_id", in.PrisonID, "", "Prison ID"); err != nil {
		return nil, err
	}

	prison := models.Prison{
		PrisonID:      in.PrisonID,
		Location:      in.Location,
		Capacity:      in.Capacity,
		SecurityLevel: in.SecurityLevel,
	}
	if err := db.Create(&prison).Error; err != nil {
		return nil, types.InternalError(err)
	}
	return &prison, nil
}

// ListPrisons returns all prisons with their cell blocks expanded.
func ListPrisons(db *gorm.DB) ([]models.Prison, error) {
	var prisons []models.Prison
	if err := db.Preload("CellBlocks").Find(&prisons).Error; err != nil {
		return nil, types.InternalError(err)
	}
	return prisons, nil
}

// GetPrison returns one prison with its cell blocks expanded.
func GetPrison(db *gorm.DB, id string) (*models.Prison, error) {
	var prison models.Prison
	if err := db.Preload("CellBlocks").Where("id = ?", id).First(&prison).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, types.NotFoundError("Prison")
		}
		return nil, types.InternalError(err)
	}
	return &prison, nil
}

// UpdatePrison applies a partial update, re-running the uniqueness pre-check
// when the natural key changes.
func UpdatePrison(db *gorm.DB, id string, up PrisonUpdate) (*models.Prison, error) {
	var prison models.Prison

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&prison).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return types.NotFoundError("Prison")
			}
			return err
		}

		if up.PrisonID != nil && *up.PrisonID != prison.PrisonID {
			if err := EnsureUniqueField(tx, &models.Prison{}, "prison_id", *up.PrisonID, id, "Prison ID"); err != nil {
				return err
			}
			prison.PrisonID = *up.PrisonID
		}
		if up.Location != nil {
			prison.Location = *up.Location
		}
		if up.Capacity != nil {
			prison.Capacity = *up.Capacity
		}
		if up.SecurityLevel != nil {
			prison.SecurityLevel = *up.SecurityLevel
		}

		return tx.Save(&prison).Error
	})
	if err != nil {
		if _, ok := types.AsCustomError(err); ok {
			return nil, err
		}
		return nil, types.InternalError(err)
	}

	return &prison, nil
}

// DeletePrison cascade-deletes the prison, its cells, and their inmates.
func DeletePrison(db *gorm.DB, id string) error {
	return CascadeDeletePrison(db, id)
}
