package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashSenha hashes a plaintext password with bcrypt.
func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CompararSenha compares a stored bcrypt hash against a plaintext candidate.
func CompararSenha(hash, senha string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha))
}
