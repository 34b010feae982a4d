package services

import (
	"github.com/wardenapp/corrections-api/internal/models"
	"github.com/wardenapp/corrections-api/internal/types"
	"gorm.io/gorm"
)

// CellInput carries the fields accepted on cell creation. Prison is the id
// of the parent prison and must resolve before anything is written.
type CellInput struct {
	CellID        string
	Capacity      int
	SecurityLevel string
	Prison        string
}

// CellUpdate is the typed partial-update set for a cell block.
type CellUpdate struct {
	CellID        *string
	Capacity      *int
	SecurityLevel *string
	Prison        *string
}

// CreateCell persists a new cell block after verifying the parent prison
// exists and the cellID is unique. Nothing is written when either check
// fails.
func CreateCell(db *gorm.DB, in CellInput) (*models.Cell, error) {
	var cell models.Cell

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := CheckPrisonRef(tx, in.Prison); err != nil {
			return err
		}
		if err := EnsureUniqueField(tx, &models.Cell{}, "cell_id", in.CellID, "", "Cell ID"); err != nil {
			return err
		}

		cell = models.Cell{
			CellID:        in.CellID,
			Capacity:      in.Capacity,
			SecurityLevel: in.SecurityLevel,
			PrisonRef:     in.Prison,
		}
		if err := tx.Create(&cell).Error; err != nil {
			return err
		}

		return tx.Preload("Prison").Where("id = ?", cell.ID).First(&cell).Error
	})
	if err != nil {
		if _, ok := types.AsCustomError(err); ok {
			return nil, err
		}
		return nil, types.InternalError(err)
	}

	return &cell, nil
}

// ListCells returns all cell blocks with the referenced prison expanded.
func ListCells(db *gorm.DB) ([]models.Cell, error) {
	var cells []models.Cell
	if err := db.Preload("Prison").Find(&cells).Error; err != nil {
		return nil, types.InternalError(err)
	}
	return cells, nil
}

// GetCell returns one cell block with the prison and housed inmates expanded.
func GetCell(db *gorm.DB, id string) (*models.Cell, error) {
	var cell models.Cell
	if err := db.Preload("Prison").Preload("Inmates").Where("id = ?", id).First(&cell).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, types.NotFoundError("Cell Block")
		}
		return nil, types.InternalError(err)
	}
	return &cell, nil
}

// UpdateCell applies a partial update. Changing the prison reference is a
// reassignment: the new prison is verified inside the transaction, so a
// failed attach leaves the old assignment intact.
func UpdateCell(db *gorm.DB, id string, up CellUpdate) (*models.Cell, error) {
	var cell models.Cell

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&cell).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return types.NotFoundError("Cell Block")
			}
			return err
		}

		if up.Prison != nil && *up.Prison != cell.PrisonRef {
			if err := CheckPrisonRef(tx, *up.Prison); err != nil {
				return err
			}
			cell.PrisonRef = *up.Prison
		}
		if up.CellID != nil && *up.CellID != cell.CellID {
			if err := EnsureUniqueField(tx, &models.Cell{}, "cell_id", *up.CellID, id, "Cell ID"); err != nil {
				return err
			}
			cell.CellID = *up.CellID
		}
		if up.Capacity != nil {
			cell.Capacity = *up.Capacity
		}
		if up.SecurityLevel != nil {
			cell.SecurityLevel = *up.SecurityLevel
		}

		if err := tx.Save(&cell).Error; err != nil {
			return err
		}

		return tx.Preload("Prison").Where("id = ?", cell.ID).First(&cell).Error
	})
	if err != nil {
		if _, ok := types.AsCustomError(err); ok {
			return nil, err
		}
		return nil, types.InternalError(err)
	}

	return &cell, nil
}

// DeleteCell deletes the cell block and every inmate it houses.
func DeleteCell(db *gorm.DB, id string) error {
	return CascadeDeleteCell(db, id)
}
