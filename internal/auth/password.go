package auth

import (
	"crypto/rand"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCharset is the alphabet used for generated passwords.
const PasswordCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*"

// HashPassword hashes a plaintext password with bcrypt. A record must
// never be persisted if hashing fails.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
func CheckPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// GeneratePassword returns a random password of the given length drawn
// from PasswordCharset.
func GeneratePassword(length int) (string, error) {
	randomValues := make([]byte, length)
	if _, err := rand.Read(randomValues); err != nil {
		return "", err
	}

	password := make([]byte, length)
	for i, b := range randomValues {
		password[i] = PasswordCharset[int(b)%len(PasswordCharset)]
	}
	return string(password), nil
}
