package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordLength is the bcrypt input limit in bytes.
const MaxPasswordLength = 72

var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

type HashServiceInterface interface {
	HashPassword(password string) (string, error)
	ComparePassword(hashedPassword, password string) bool
}

type HashService struct {
	Cost int
}

func (b *HashService) HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	if len(password) > MaxPasswordLength {
		return "", ErrPasswordTooLong
	}

	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (b *HashService) ComparePassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
