package services

import (
	"time"

	"github.com/wardenapp/corrections-api/internal/models"
	"github.com/wardenapp/corrections-api/internal/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// VisitorInput carries the fields accepted on visitor creation. Inmate is
// the id of the inmate the visitor is registered for.
type VisitorInput struct {
	FullName             string
	RelationshipToInmate string
	Phone                string
	Inmate               string
}

// VisitorUpdate is the typed partial-update set for a visitor.
type VisitorUpdate struct {
	FullName             *string
	RelationshipToInmate *string
	Phone                *string
	Inmate               *string
}

// VisitInput carries one visit-history entry. The visit date is assigned
// server-side at record time.
type VisitInput struct {
	Inmate string
	Status string
	Notes  string
}

// visitOrder preloads visit history in chronological order.
func visitOrder(db *gorm.DB) *gorm.DB {
	return db.Order("visits.date ASC").Order("visits.created_at ASC")
}

// CreateVisitor persists a new visitor after verifying the referenced
// inmate exists.
func CreateVisitor(db *gorm.DB, in VisitorInput) (*models.Visitor, error) {
	if err := CheckInmateRef(db, in.Inmate); err != nil {
		return nil, err
	}

	visitor := models.Visitor{
		FullName:             in.FullName,
		RelationshipToInmate: in.RelationshipToInmate,
		Phone:                in.Phone,
		InmateRef:            in.Inmate,
	}
	if err := db.Create(&visitor).Error; err != nil {
		return nil, types.InternalError(err)
	}
	return &visitor, nil
}

// ListVisitors returns all visitors with inmate and visit history expanded.
func ListVisitors(db *gorm.DB) ([]models.Visitor, error) {
	var visitors []models.Visitor
	err := db.Preload("Inmate").
		Preload("Visits", visitOrder).
		Preload("Visits.Inmate").
		Find(&visitors).Error
	if err != nil {
		return nil, types.InternalError(err)
	}
	return visitors, nil
}

// GetVisitor returns one visitor with inmate and visit history expanded.
func GetVisitor(db *gorm.DB, id string) (*models.Visitor, error) {
	var visitor models.Visitor
	err := db.Preload("Inmate").
		Preload("Visits", visitOrder).
		Preload("Visits.Inmate").
		Where("id = ?", id).First(&visitor).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, types.NotFoundError("Visitor")
		}
		return nil, types.InternalError(err)
	}
	return &visitor, nil
}

// UpdateVisitor applies a partial update. Reassigning the visitor to a
// different inmate verifies the new inmate inside the transaction.
func UpdateVisitor(db *gorm.DB, id string, up VisitorUpdate) (*models.Visitor, error) {
	var visitor models.Visitor

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&visitor).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return types.NotFoundError("Visitor")
			}
			return err
		}

		if up.Inmate != nil && *up.Inmate != visitor.InmateRef {
			if err := CheckInmateRef(tx, *up.Inmate); err != nil {
				return err
			}
			visitor.InmateRef = *up.Inmate
		}
		if up.FullName != nil {
			visitor.FullName = *up.FullName
		}
		if up.RelationshipToInmate != nil {
			visitor.RelationshipToInmate = *up.RelationshipToInmate
		}
		if up.Phone != nil {
			visitor.Phone = *up.Phone
		}

		return tx.Save(&visitor).Error
	})
	if err != nil {
		if _, ok := types.AsCustomError(err); ok {
			return nil, err
		}
		return nil, types.InternalError(err)
	}

	return &visitor, nil
}

// AddVisit appends one entry to the visitor's visit history after verifying
// both the visitor and the visited inmate exist. Returns the visitor with
// the updated history expanded.
func AddVisit(db *gorm.DB, visitorID string, in VisitInput) (*models.Visitor, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var visitor models.Visitor
		if err := tx.Where("id = ?", visitorID).First(&visitor).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return types.NotFoundError("Visitor")
			}
			return err
		}

		if err := CheckInmateRef(tx, in.Inmate); err != nil {
			return err
		}

		visit := models.Visit{
			VisitorRef: visitorID,
			Date:       datatypes.Date(time.Now().UTC()),
			InmateRef:  in.Inmate,
			Status:     in.Status,
			Notes:      in.Notes,
		}
		return tx.Create(&visit).Error
	})
	if err != nil {
		if _, ok := types.AsCustomError(err); ok {
			return nil, err
		}
		return nil, types.InternalError(err)
	}

	return GetVisitor(db, visitorID)
}

// DeleteVisitor removes the visitor together with its visit history, which
// exists only in relation to it.
func DeleteVisitor(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var visitor models.Visitor
		if err := tx.Where("id = ?", id).First(&visitor).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return types.NotFoundError("Visitor")
			}
			return err
		}

		if err := tx.Where("visitor_ref = ?", id).Delete(&models.Visit{}).Error; err != nil {
			return err
		}

		return tx.Delete(&visitor).Error
	})
}
