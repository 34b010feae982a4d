package services_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/wardenapp/corrections-api/internal/models"
	"github.com/wardenapp/corrections-api/internal/services"
	"github.com/wardenapp/corrections-api/internal/types"
	"github.com/wardenapp/corrections-api/tests/helpers"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Prison{},
		&models.Crime{},
		&models.Cell{},
		&models.Inmate{},
		&models.Visitor{},
		&models.Visit{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// TestCascadeDeletePrison verifies that deleting a prison removes its cells
// and every inmate housed in them, and nothing else.
func TestCascadeDeletePrison(t *testing.T) {
	db := setupTestDB(t)

	prison := helpers.CreateTestPrison(t, db, "P-100")
	other := helpers.CreateTestPrison(t, db, "P-200")
	crime := helpers.CreateTestCrime(t, db, "Theft")

	cellA := helpers.CreateTestCell(t, db, "A-1", prison.ID)
	cellB := helpers.CreateTestCell(t, db, "B-1", prison.ID)
	otherCell := helpers.CreateTestCell(t, db, "C-1", other.ID)

	helpers.CreateTestInmate(t, db, "I-1", crime.ID, cellA.ID)
	helpers.CreateTestInmate(t, db, "I-2", crime.ID, cellA.ID)
	helpers.CreateTestInmate(t, db, "I-3", crime.ID, cellB.ID)
	survivor := helpers.CreateTestInmate(t, db, "I-4", crime.ID, otherCell.ID)

	if err := services.CascadeDeletePrison(db, prison.ID); err != nil {
		t.Fatalf("Cascade delete failed: %v", err)
	}

	var cellCount, inmateCount int64
	db.Model(&models.Cell{}).Count(&cellCount)
	db.Model(&models.Inmate{}).Count(&inmateCount)

	if cellCount != 1 {
		t.Errorf("Expected 1 surviving cell, got %d", cellCount)
	}
	if inmateCount != 1 {
		t.Errorf("Expected 1 surviving inmate, got %d", inmateCount)
	}

	var check models.Inmate
	if err := db.Where("id = ?", survivor.ID).First(&check).Error; err != nil {
		t.Errorf("Inmate in another prison should survive: %v", err)
	}
}

// TestCascadeDeletePrisonNotFound verifies the second delete of the same
// prison reports not found.
func TestCascadeDeletePrisonNotFound(t *testing.T) {
	db := setupTestDB(t)

	prison := helpers.CreateTestPrison(t, db, "P-100")

	if err := services.CascadeDeletePrison(db, prison.ID); err != nil {
		t.Fatalf("First delete failed: %v", err)
	}

	err := services.CascadeDeletePrison(db, prison.ID)
	if err == nil {
		t.Fatal("Expected error on second delete")
	}
	ce, ok := types.AsCustomError(err)
	if !ok || ce.Code != 404 {
		t.Errorf("Expected 404 error, got %v", err)
	}
}

// TestCascadeDeleteCell verifies that deleting a cell removes its inmates and
// leaves inmates in other cells intact.
func TestCascadeDeleteCell(t *testing.T) {
	db := setupTestDB(t)

	prison := helpers.CreateTestPrison(t, db, "P-100")
	crime := helpers.CreateTestCrime(t, db, "Fraud")
	cellA := helpers.CreateTestCell(t, db, "A-1", prison.ID)
	cellB := helpers.CreateTestCell(t, db, "B-1", prison.ID)

	helpers.CreateTestInmate(t, db, "I-1", crime.ID, cellA.ID)
	helpers.CreateTestInmate(t, db, "I-2", crime.ID, cellA.ID)
	survivor := helpers.CreateTestInmate(t, db, "I-3", crime.ID, cellB.ID)

	if err := services.CascadeDeleteCell(db, cellA.ID); err != nil {
		t.Fatalf("Cascade delete failed: %v", err)
	}

	var inmates []models.Inmate
	db.Find(&inmates)
	if len(inmates) != 1 || inmates[0].ID != survivor.ID {
		t.Errorf("Expected only inmate %s to survive, got %d inmates", survivor.ID, len(inmates))
	}
}

// TestCheckRefs verifies the existence pre-checks fail with a reference error
// for absent ids.
func TestCheckRefs(t *testing.T) {
	db := setupTestDB(t)

	prison := helpers.CreateTestPrison(t, db, "P-100")

	if err := services.CheckPrisonRef(db, prison.ID); err != nil {
		t.Errorf("Existing prison should pass the check: %v", err)
	}

	err := services.CheckPrisonRef(db, "no-such-id")
	ce, ok := types.AsCustomError(err)
	if !ok {
		t.Fatalf("Expected a typed error, got %v", err)
	}
	if ce.Type != types.ErrTypeReference || ce.Code != 404 {
		t.Errorf("Expected 404 reference error, got %+v", ce)
	}
	if ce.Message != "Prison not found" {
		t.Errorf("Unexpected message: %s", ce.Message)
	}
}

// TestEnsureUniqueField verifies the duplicate pre-check, including the
// exclusion of the record being updated.
func TestEnsureUniqueField(t *testing.T) {
	db := setupTestDB(t)

	prison := helpers.CreateTestPrison(t, db, "P-100")

	err := services.EnsureUniqueField(db, &models.Prison{}, "prison_id", "P-100", "", "Prison ID")
	ce, ok := types.AsCustomError(err)
	if !ok {
		t.Fatalf("Expected a typed error, got %v", err)
	}
	if ce.Type != types.ErrTypeDuplicate || ce.Code != 400 {
		t.Errorf("Expected 400 duplicate error, got %+v", ce)
	}
	if ce.Message != "Prison ID already exists" {
		t.Errorf("Unexpected message: %s", ce.Message)
	}

	// A record keeping its own natural key is not a duplicate.
	if err := services.EnsureUniqueField(db, &models.Prison{}, "prison_id", "P-100", prison.ID, "Prison ID"); err != nil {
		t.Errorf("Self-match should not be a duplicate: %v", err)
	}

	if err := services.EnsureUniqueField(db, &models.Prison{}, "prison_id", "P-999", "", "Prison ID"); err != nil {
		t.Errorf("Unused key should pass: %v", err)
	}
}
