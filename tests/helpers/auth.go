package helpers

import (
	"crypto/rand"
	"math/big"
	"testing"
	"time"

	"github.com/wardenapp/corrections-api/internal/auth"
	"github.com/wardenapp/corrections-api/internal/models"
	"gorm.io/gorm"
)

// TestJWTSecret signs tokens in tests. Never use outside a test process.
const TestJWTSecret = "test-signing-secret"

// NewTestTokenIssuer returns a token issuer wired with the test secret.
func NewTestTokenIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer([]byte(TestJWTSecret), time.Hour)
}

func randInt(max int) int {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max)))
	return int(n.Int64())
}

// GeneratePassword generates a 10 character password with a capital and special char
func GeneratePassword() string {
	const (
		lower   = "abcdefghijklmnopqrstuvwxyz"
		upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		special = "!@#$%^&*"
		numbers = "0123456789"
		all     = lower + upper + special + numbers
	)

	password := make([]byte, 10)
	password[0] = upper[randInt(len(upper))]
	password[1] = special[randInt(len(special))]
	password[2] = numbers[randInt(len(numbers))]

	for i := 3; i < 10; i++ {
		password[i] = all[randInt(len(all))]
	}

	for i := range password {
		j := randInt(len(password))
		password[i], password[j] = password[j], password[i]
	}

	return string(password)
}

// SeedUser creates a user with the given role and returns it together with a
// signed bearer token. The bcrypt cost is kept at the library minimum to keep
// tests fast.
func SeedUser(t *testing.T, db *gorm.DB, tokens *auth.TokenIssuer, email, role string) (*models.User, string) {
	t.Helper()

	hash, err := auth.HashPassword(GeneratePassword(), 4)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := models.User{
		Name:     "Test User",
		Gender:   "Other",
		Email:    email,
		Password: hash,
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	token, err := tokens.Generate(user.ID)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	return &user, token
}
