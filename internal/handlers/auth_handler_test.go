package handlers_test

import (
	"net/http/httptest"
	"testing"

	"github.com/wardenapp/corrections-api/internal/handlers"
	"github.com/wardenapp/corrections-api/internal/middleware"
	"github.com/wardenapp/corrections-api/tests/helpers"
)

// TestRegisterAndLogin runs the full register/login flow and uses the issued
// token against a protected route.
func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	tokens := helpers.NewTestTokenIssuer()

	app := newTestApp()
	authHandler := &handlers.AuthHandler{DB: db, Tokens: tokens, BcryptCost: 4}
	prisonHandler := &handlers.PrisonHandler{DB: db}
	app.Post("/auth/register", authHandler.Register)
	app.Post("/auth/login", authHandler.Login)
	app.Get("/prison/getAll", middleware.RequireAuth(db, tokens), prisonHandler.List)

	password := helpers.GeneratePassword()

	var registered map[string]interface{}
	status := doJSON(t, app, "POST", "/auth/register", map[string]interface{}{
		"name":     "Ada Warden",
		"gender":   "Female",
		"email":    "ada@example.com",
		"password": password,
		"role":     "Wardon",
	}, &registered)
	if status != 201 {
		t.Fatalf("Expected 201, got %d: %v", status, registered)
	}
	if registered["msg"] != "User created successfully" {
		t.Errorf("Unexpected message: %v", registered["msg"])
	}
	user, ok := registered["user"].(map[string]interface{})
	if !ok {
		t.Fatal("Expected user in response")
	}
	if _, leaked := user["password"]; leaked {
		t.Error("Password hash must not appear in responses")
	}

	var login map[string]interface{}
	status = doJSON(t, app, "POST", "/auth/login", map[string]interface{}{
		"email":    "ada@example.com",
		"password": password,
	}, &login)
	if status != 200 {
		t.Fatalf("Expected 200, got %d: %v", status, login)
	}
	token, _ := login["token"].(string)
	if token == "" {
		t.Fatal("Expected a bearer token")
	}

	// Token opens the protected route.
	req := httptest.NewRequest("GET", "/prison/getAll", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)
}

// TestLoginBadCredentials verifies unknown email and wrong password are
// indistinguishable.
func TestLoginBadCredentials(t *testing.T) {
	db := setupTestDB(t)
	tokens := helpers.NewTestTokenIssuer()
	helpers.SeedUser(t, db, tokens, "known@example.com", "Wardon")

	app := newTestApp()
	authHandler := &handlers.AuthHandler{DB: db, Tokens: tokens, BcryptCost: 4}
	app.Post("/auth/login", authHandler.Login)

	for _, email := range []string{"known@example.com", "unknown@example.com"} {
		var result map[string]interface{}
		status := doJSON(t, app, "POST", "/auth/login", map[string]interface{}{
			"email":    email,
			"password": "wrong-password",
		}, &result)
		if status != 401 {
			t.Errorf("Expected 401 for %s, got %d", email, status)
		}
		if result["message"] != "Invalid credentials" {
			t.Errorf("Unexpected message for %s: %v", email, result["message"])
		}
	}
}

// TestProtectedRouteWithoutToken verifies requests without a bearer token are
// rejected.
func TestProtectedRouteWithoutToken(t *testing.T) {
	db := setupTestDB(t)
	tokens := helpers.NewTestTokenIssuer()

	app := newTestApp()
	prisonHandler := &handlers.PrisonHandler{DB: db}
	app.Get("/prison/getAll", middleware.RequireAuth(db, tokens), prisonHandler.List)

	req := httptest.NewRequest("GET", "/prison/getAll", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 401)

	req = httptest.NewRequest("GET", "/prison/getAll", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 401)
}

// TestUserRoutesRequireAdmin verifies the Wardon role cannot reach user
// management while Admin can.
func TestUserRoutesRequireAdmin(t *testing.T) {
	db := setupTestDB(t)
	tokens := helpers.NewTestTokenIssuer()

	_, wardonToken := helpers.SeedUser(t, db, tokens, "wardon@example.com", "Wardon")
	_, adminToken := helpers.SeedUser(t, db, tokens, "admin@example.com", "Admin")

	app := newTestApp()
	authHandler := &handlers.AuthHandler{DB: db, Tokens: tokens, BcryptCost: 4}
	app.Get("/auth/users", middleware.RequireAuth(db, tokens), middleware.RequireAdmin(), authHandler.ListUsers)

	req := httptest.NewRequest("GET", "/auth/users", nil)
	req.Header.Set("Authorization", "Bearer "+wardonToken)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 403)

	var envelope map[string]interface{}
	helpers.ParseJSON(t, resp, &envelope)
	if envelope["message"] != "Access Denied" {
		t.Errorf("Unexpected message: %v", envelope["message"])
	}

	req = httptest.NewRequest("GET", "/auth/users", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)
}

// TestRegisterDuplicateEmail verifies the email uniqueness pre-check.
func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	tokens := helpers.NewTestTokenIssuer()
	helpers.SeedUser(t, db, tokens, "taken@example.com", "Wardon")

	app := newTestApp()
	authHandler := &handlers.AuthHandler{DB: db, Tokens: tokens, BcryptCost: 4}
	app.Post("/auth/register", authHandler.Register)

	var result map[string]interface{}
	status := doJSON(t, app, "POST", "/auth/register", map[string]interface{}{
		"name":     "Copy Cat",
		"gender":   "Male",
		"email":    "taken@example.com",
		"password": helpers.GeneratePassword(),
		"role":     "Wardon",
	}, &result)
	if status != 400 {
		t.Fatalf("Expected 400, got %d", status)
	}
	if result["message"] != "Email already exists" {
		t.Errorf("Unexpected message: %v", result["message"])
	}
}
