package helpers

import (
	"testing"

	"github.com/wardenapp/corrections-api/internal/models"
	"gorm.io/gorm"
)

// CreateTestPrison creates a prison record
func CreateTestPrison(t *testing.T, db *gorm.DB, prisonID string) *models.Prison {
	t.Helper()
	prison := models.Prison{
		PrisonID:      prisonID,
		Location:      "Test Location",
		Capacity:      500,
		SecurityLevel: "Medium",
	}
	if err := db.Create(&prison).Error; err != nil {
		t.Fatalf("Failed to create prison: %v", err)
	}
	return &prison
}

// CreateTestCell creates a cell block inside the given prison
func CreateTestCell(t *testing.T, db *gorm.DB, cellID, prisonRef string) *models.Cell {
	t.Helper()
	cell := models.Cell{
		CellID:        cellID,
		Capacity:      20,
		SecurityLevel: "Medium",
		PrisonRef:     prisonRef,
	}
	if err := db.Create(&cell).Error; err != nil {
		t.Fatalf("Failed to create cell: %v", err)
	}
	return &cell
}

// CreateTestCrime creates a crime record
func CreateTestCrime(t *testing.T, db *gorm.DB, nature string) *models.Crime {
	t.Helper()
	crime := models.Crime{
		Nature:   nature,
		Severity: "High",
	}
	if err := db.Create(&crime).Error; err != nil {
		t.Fatalf("Failed to create crime: %v", err)
	}
	return &crime
}

// CreateTestInmate creates an inmate assigned to the given cell and crime
func CreateTestInmate(t *testing.T, db *gorm.DB, inmateID, crimeRef, cellRef string) *models.Inmate {
	t.Helper()
	inmate := models.Inmate{
		InmateID:    inmateID,
		FullName:    "Test Inmate",
		DateOfBirth: "1990-01-15",
		CrimeRef:    crimeRef,
		CellRef:     cellRef,
	}
	if err := db.Create(&inmate).Error; err != nil {
		t.Fatalf("Failed to create inmate: %v", err)
	}
	return &inmate
}

// CreateTestVisitor creates a visitor registered for the given inmate
func CreateTestVisitor(t *testing.T, db *gorm.DB, fullName, inmateRef string) *models.Visitor {
	t.Helper()
	visitor := models.Visitor{
		FullName:             fullName,
		RelationshipToInmate: "family",
		Phone:                "555-0100",
		InmateRef:            inmateRef,
	}
	if err := db.Create(&visitor).Error; err != nil {
		t.Fatalf("Failed to create visitor: %v", err)
	}
	return &visitor
}
