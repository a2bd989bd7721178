package utils

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost is used by the server; tests lower it through SetBcryptCost.
const DefaultBcryptCost = 12

var bcryptCost = DefaultBcryptCost

// SetBcryptCost overrides the hashing cost.
func SetBcryptCost(cost int) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	bcryptCost = cost
}

// HashPassword generates a bcrypt hash from a plain text password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// ComparePassword compares a bcrypt hashed password with plain text password
func ComparePassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
