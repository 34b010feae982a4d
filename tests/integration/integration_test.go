package integration_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/wardenapp/corrections-api/internal/config"
	"github.com/wardenapp/corrections-api/internal/database"
	"github.com/wardenapp/corrections-api/internal/services"
	"github.com/wardenapp/corrections-api/internal/types"
	"github.com/wardenapp/corrections-api/tests/helpers"
	"gorm.io/gorm"
)

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// TestWithMariaDB tests the service with a real MariaDB container
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        getEnvDefault("DB_IMAGE", "mariadb:11"),
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	cfg := &config.Config{
		DBType:            "mysql",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	// Wait for database to be ready
	time.Sleep(5 * time.Second)

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	runRecordTests(t, db)

	t.Run("HealthCheck", func(t *testing.T) {
		result := services.HealthCheck(cfg, db)
		if result.Status != "healthy" {
			t.Errorf("Expected healthy, got: %+v", result)
		}
		if result.Database != "ok" {
			t.Errorf("Expected database ok, got: %s", result.Database)
		}
	})
}

// TestWithPostgreSQL tests the service with a real PostgreSQL container
func TestWithPostgreSQL(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	postgresContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        getEnvDefault("POSTGRES_IMAGE", "postgres:16"),
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_USER":     "testuser",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}()

	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := postgresContainer.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	cfg := &config.Config{
		DBType:            "postgres",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	// Wait for database to be ready
	time.Sleep(2 * time.Second)

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	runRecordTests(t, db)
}

// runRecordTests exercises the record hierarchy against a real database.
func runRecordTests(t *testing.T, db *gorm.DB) {
	t.Run("CreateHierarchyAndExpand", func(t *testing.T) {
		testCreateHierarchyAndExpand(t, db)
	})

	t.Run("UniquenessChecks", func(t *testing.T) {
		testUniquenessChecks(t, db)
	})

	t.Run("CascadeDelete", func(t *testing.T) {
		testCascadeDelete(t, db)
	})
}

func testCreateHierarchyAndExpand(t *testing.T, db *gorm.DB) {
	prison, err := services.CreatePrison(db, services.PrisonInput{
		PrisonID:      "INT-P-1",
		Location:      "East Bay",
		Capacity:      400,
		SecurityLevel: "High",
	})
	if err != nil {
		t.Fatalf("Failed to create prison: %v", err)
	}

	cell, err := services.CreateCell(db, services.CellInput{
		CellID:        "INT-C-1",
		Capacity:      16,
		SecurityLevel: "High",
		Prison:        prison.ID,
	})
	if err != nil {
		t.Fatalf("Failed to create cell: %v", err)
	}
	if cell.Prison == nil || cell.Prison.ID != prison.ID {
		t.Error("Expected parent prison expanded on the created cell")
	}

	crime, err := services.CreateCrime(db, services.CrimeInput{
		Nature:   "Tax evasion",
		Severity: "Medium",
	})
	if err != nil {
		t.Fatalf("Failed to create crime: %v", err)
	}

	inmate, err := services.CreateInmate(db, services.InmateInput{
		InmateID:       "INT-I-1",
		FullName:       "Rob Banks",
		DateOfBirth:    "1978-02-09",
		CrimeCommitted: crime.ID,
		CellBlock:      cell.ID,
	})
	if err != nil {
		t.Fatalf("Failed to create inmate: %v", err)
	}
	if inmate.Crime == nil || inmate.Cell == nil {
		t.Error("Expected crime and cell expanded on the created inmate")
	}

	got, err := services.GetPrison(db, prison.ID)
	if err != nil {
		t.Fatalf("Failed to get prison: %v", err)
	}
	if len(got.CellBlocks) != 1 {
		t.Errorf("Expected 1 cell block, got %d", len(got.CellBlocks))
	}
}

func testUniquenessChecks(t *testing.T, db *gorm.DB) {
	_, err := services.CreatePrison(db, services.PrisonInput{
		PrisonID:      "INT-P-1",
		Location:      "Duplicate Town",
		Capacity:      100,
		SecurityLevel: "Low",
	})
	ce, ok := types.AsCustomError(err)
	if !ok || ce.Type != types.ErrTypeDuplicate {
		t.Errorf("Expected duplicate error, got %v", err)
	}
}

func testCascadeDelete(t *testing.T, db *gorm.DB) {
	prison := helpers.CreateTestPrison(t, db, "INT-P-DEL")
	crime := helpers.CreateTestCrime(t, db, "Poaching")
	cell := helpers.CreateTestCell(t, db, "INT-C-DEL", prison.ID)
	inmate := helpers.CreateTestInmate(t, db, "INT-I-DEL", crime.ID, cell.ID)

	if err := services.DeletePrison(db, prison.ID); err != nil {
		t.Fatalf("Cascade delete failed: %v", err)
	}

	if _, err := services.GetCell(db, cell.ID); err == nil {
		t.Error("Expected cell removed by cascade")
	}
	if _, err := services.GetInmate(db, inmate.ID); err == nil {
		t.Error("Expected inmate removed by cascade")
	}
	// The crime record is not part of the prison hierarchy.
	if _, err := services.GetCrime(db, crime.ID); err != nil {
		t.Errorf("Crime should survive the cascade: %v", err)
	}
}
