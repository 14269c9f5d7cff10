//go:build ignore

// This script generates the staff secret hash, JWT signing key and an API key.
// Run with: go run scripts/generate_keys.go [store-secret]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bytes), nil
}

func fail(what string, err error) {
	fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", what, err)
	os.Exit(1)
}

func main() {
	fmt.Println("=== Order Service Key Generator ===")
	fmt.Println()

	// The store secret staff type in to get a token; generated when not given.
	secret := ""
	if len(os.Args) > 1 {
		secret = os.Args[1]
	}
	if secret == "" {
		s, err := generateSecureKey(12)
		if err != nil {
			fail("store secret", err)
		}
		secret = s
		fmt.Printf("Generated store secret: %s\n\n", secret)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		fail("staff secret hash", err)
	}

	// 32 bytes = 256 bits
	jwtSecret, err := generateSecureKey(32)
	if err != nil {
		fail("JWT secret", err)
	}

	apiKey, err := generateSecureKey(24)
	if err != nil {
		fail("API key", err)
	}

	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("# Staff authentication")
	fmt.Printf("STAFF_SECRET_HASH='%s'\n", hash)
	fmt.Printf("JWT_SECRET_KEY=%s\n", jwtSecret)
	fmt.Println()
	fmt.Println("# API Key (optional, for kiosk and script access to staff routes)")
	fmt.Printf("API_KEYS=%s\n", apiKey)
	fmt.Println()
	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these keys to version control")
	fmt.Println("- Use different keys for each environment (dev, staging, prod)")
	fmt.Println("- Share the store secret only with staff")
}
