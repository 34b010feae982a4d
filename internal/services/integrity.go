// integrity.go
//
// Referential-integrity layer for the corrections records service. Keeps
// forward references (Inmate -> Cell, Cell -> Prison, ...) and their derived
// back-reference collections consistent across create, update and delete.
// Every operation checks referenced records before any write occurs.

package services

import (
	"fmt"

	"github.com/wardenapp/corrections-api/internal/models"
	"github.com/wardenapp/corrections-api/internal/types"
	"gorm.io/gorm"
)

// CheckPrisonRef fails with a reference error when the prison id does not
// resolve to a live record.
func CheckPrisonRef(db *gorm.DB, id string) error {
	return checkRef(db, &models.Prison{}, id, "Prison")
}

// CheckCellRef fails with a reference error when the cell id does not
// resolve to a live record.
func CheckCellRef(db *gorm.DB, id string) error {
	return checkRef(db, &models.Cell{}, id, "CellBlock")
}

// CheckCrimeRef fails with a reference error when the crime id does not
// resolve to a live record.
func CheckCrimeRef(db *gorm.DB, id string) error {
	return checkRef(db, &models.Crime{}, id, "Crime")
}

// CheckInmateRef fails with a reference error when the inmate id does not
// resolve to a live record.
func CheckInmateRef(db *gorm.DB, id string) error {
	return checkRef(db, &models.Inmate{}, id, "Inmate")
}

func checkRef(db *gorm.DB, model interface{}, id, entity string) error {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return types.InternalError(err)
	}
	if count == 0 {
		return types.ReferenceNotFoundError(entity)
	}
	return nil
}

// EnsureUniqueField is the uniqueness pre-check for natural keys. It fails
// with a duplicate-key error when any record OTHER than excludeID already
// holds value in column. The check is advisory: a race between check and
// write is possible and closed only by the column's unique index.
func EnsureUniqueField(db *gorm.DB, model interface{}, column, value, excludeID, field string) error {
	query := db.Model(model).Where(fmt.Sprintf("%s = ?", column), value)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return types.InternalError(err)
	}
	if count > 0 {
		return types.DuplicateKeyError(field)
	}
	return nil
}

// CascadeDeletePrison deletes a prison together with its cells and the
// inmates housed in those cells, bottom-up, in one transaction. A childless
// prison is just a single deletion.
func CascadeDeletePrison(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var prison models.Prison
		if err := tx.Where("id = ?", id).First(&prison).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return types.NotFoundError("Prison")
			}
			return err
		}

		var cellIDs []string
		if err := tx.Model(&models.Cell{}).Where("prison_ref = ?", id).
			Pluck("id", &cellIDs).Error; err != nil {
			return err
		}

		if len(cellIDs) > 0 {
			if err := tx.Where("cell_ref IN ?", cellIDs).Delete(&models.Inmate{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", cellIDs).Delete(&models.Cell{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&prison).Error
	})
}

// CascadeDeleteCell deletes a cell block and every inmate assigned to it.
// The parent prison's cell set is derived, so no detach write is needed.
func CascadeDeleteCell(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var cell models.Cell
		if err := tx.Where("id = ?", id).First(&cell).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return types.NotFoundError("Cell Block")
			}
			return err
		}

		if err := tx.Where("cell_ref = ?", id).Delete(&models.Inmate{}).Error; err != nil {
			return err
		}

		return tx.Delete(&cell).Error
	})
}
