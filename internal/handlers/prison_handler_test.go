package handlers_test

import (
	"net/http/httptest"
	"testing"

	"github.com/wardenapp/corrections-api/internal/handlers"
	"github.com/wardenapp/corrections-api/internal/models"
	"github.com/wardenapp/corrections-api/tests/helpers"
)

// TestPrisonCellExpansion creates a prison, adds a cell block, and verifies
// the prison comes back with the cell block expanded.
func TestPrisonCellExpansion(t *testing.T) {
	db := setupTestDB(t)

	app := newTestApp()
	prisonHandler := &handlers.PrisonHandler{DB: db}
	cellHandler := &handlers.CellHandler{DB: db}
	app.Post("/prison/add", prisonHandler.Create)
	app.Get("/prison/get/:id", prisonHandler.Get)
	app.Post("/cell/add", cellHandler.Create)

	var prison models.Prison
	status := doJSON(t, app, "POST", "/prison/add", map[string]interface{}{
		"prisonID":      "P-100",
		"location":      "North Ridge",
		"capacity":      800,
		"securityLevel": "Maximum",
	}, &prison)
	if status != 200 {
		t.Fatalf("Expected 200, got %d", status)
	}
	if prison.ID == "" {
		t.Fatal("Expected generated prison id")
	}

	var cell models.Cell
	status = doJSON(t, app, "POST", "/cell/add", map[string]interface{}{
		"cellID":        "A-1",
		"capacity":      24,
		"securityLevel": "Maximum",
		"prison":        prison.ID,
	}, &cell)
	if status != 200 {
		t.Fatalf("Expected 200, got %d", status)
	}
	if cell.Prison == nil || cell.Prison.PrisonID != "P-100" {
		t.Error("Expected parent prison expanded in the create response")
	}

	var fetched models.Prison
	status = doJSON(t, app, "GET", "/prison/get/"+prison.ID, nil, &fetched)
	if status != 200 {
		t.Fatalf("Expected 200, got %d", status)
	}
	if len(fetched.CellBlocks) != 1 || fetched.CellBlocks[0].CellID != "A-1" {
		t.Errorf("Expected one expanded cell block, got %+v", fetched.CellBlocks)
	}
}

// TestPrisonCreateStatus verifies record creation responds 200. Only user
// registration returns 201.
func TestPrisonCreateStatus(t *testing.T) {
	db := setupTestDB(t)

	app := newTestApp()
	handler := &handlers.PrisonHandler{DB: db}
	app.Post("/prison/add", handler.Create)

	var prison models.Prison
	status := doJSON(t, app, "POST", "/prison/add", map[string]interface{}{
		"prisonID":      "P-200",
		"location":      "West Hollow",
		"capacity":      250,
		"securityLevel": "Low",
	}, &prison)
	if status != 200 {
		t.Fatalf("Expected 200, got %d", status)
	}
	if prison.PrisonID != "P-200" {
		t.Errorf("Unexpected prison in response: %+v", prison)
	}
}

// TestPrisonDuplicateID verifies the natural-key collision response.
func TestPrisonDuplicateID(t *testing.T) {
	db := setupTestDB(t)
	helpers.CreateTestPrison(t, db, "P-100")

	app := newTestApp()
	handler := &handlers.PrisonHandler{DB: db}
	app.Post("/prison/add", handler.Create)

	var result map[string]interface{}
	status := doJSON(t, app, "POST", "/prison/add", map[string]interface{}{
		"prisonID":      "P-100",
		"location":      "South Gate",
		"capacity":      300,
		"securityLevel": "Low",
	}, &result)
	if status != 400 {
		t.Fatalf("Expected 400, got %d", status)
	}
	if result["message"] != "Prison ID already exists" {
		t.Errorf("Unexpected message: %v", result["message"])
	}
	if result["type"] != "duplicate" {
		t.Errorf("Expected duplicate type tag, got %v", result["type"])
	}
}

// TestPrisonValidation verifies field validation on create.
func TestPrisonValidation(t *testing.T) {
	db := setupTestDB(t)

	app := newTestApp()
	handler := &handlers.PrisonHandler{DB: db}
	app.Post("/prison/add", handler.Create)

	cases := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"missing prisonID", map[string]interface{}{
			"location": "X", "capacity": 10, "securityLevel": "Low",
		}},
		{"zero capacity", map[string]interface{}{
			"prisonID": "P-1", "location": "X", "capacity": 0, "securityLevel": "Low",
		}},
		{"bad security level", map[string]interface{}{
			"prisonID": "P-1", "location": "X", "capacity": 10, "securityLevel": "Extreme",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var result map[string]interface{}
			status := doJSON(t, app, "POST", "/prison/add", tc.payload, &result)
			if status != 400 {
				t.Errorf("Expected 400, got %d", status)
			}
			if result["type"] != "validation" {
				t.Errorf("Expected validation type tag, got %v", result["type"])
			}
		})
	}
}

// TestPrisonCascadeDelete verifies the delete confirmation and that cells
// and inmates go with the prison.
func TestPrisonCascadeDelete(t *testing.T) {
	db := setupTestDB(t)

	prison := helpers.CreateTestPrison(t, db, "P-100")
	crime := helpers.CreateTestCrime(t, db, "Smuggling")
	cell := helpers.CreateTestCell(t, db, "A-1", prison.ID)
	helpers.CreateTestInmate(t, db, "I-1", crime.ID, cell.ID)

	app := newTestApp()
	handler := &handlers.PrisonHandler{DB: db}
	app.Delete("/prison/delete/:id", handler.Delete)

	var result map[string]interface{}
	status := doJSON(t, app, "DELETE", "/prison/delete/"+prison.ID, nil, &result)
	if status != 200 {
		t.Fatalf("Expected 200, got %d", status)
	}
	if result["message"] != "Prison and all associated records removed" {
		t.Errorf("Unexpected message: %v", result["message"])
	}

	var cellCount, inmateCount int64
	db.Model(&models.Cell{}).Count(&cellCount)
	db.Model(&models.Inmate{}).Count(&inmateCount)
	if cellCount != 0 || inmateCount != 0 {
		t.Errorf("Expected cascade to remove children, got %d cells, %d inmates", cellCount, inmateCount)
	}

	// Second delete reports not found.
	req := httptest.NewRequest("DELETE", "/prison/delete/"+prison.ID, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 404)
}
